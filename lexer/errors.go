package lexer

import "github.com/lexforge/lexforge/lexerr"

// Error and Misuse are re-exported from lexerr so callers only need to
// import package lexer. See lexerr's doc comment for why the types
// themselves live in a smaller shared package.
type (
	Error  = lexerr.Error
	Misuse = lexerr.Misuse
)
