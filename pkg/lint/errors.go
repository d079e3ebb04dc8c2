package lint

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrMalformedTree is returned when the host-provided tree violates
	// a shape invariant (for example a function definition with no
	// parameter list node). The file under analysis fails fast; other
	// files are unaffected because no state is shared between runs.
	ErrMalformedTree = errors.New("malformed syntax tree")

	// ErrDuplicateRule is returned by NewRegistry when two definitions
	// share a violation code.
	ErrDuplicateRule = errors.New("duplicate rule code")

	// ErrInvalidRule is returned by NewRegistry for definitions missing
	// a code, a check function, or kind subscriptions.
	ErrInvalidRule = errors.New("invalid rule definition")
)
