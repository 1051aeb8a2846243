package action

// Wrap adapts a caller-defined recognition function into an Action
// directly, for cases no provided primitive covers (e.g. invoking an
// external regex engine — spec.md's scope deliberately keeps regex
// integration out of the core and treats it as exactly this kind of
// external collaborator).
func Wrap[S, H any](exec Func[S, H]) Action[S, H] {
	return New[S, H](exec)
}
