package resolve

import "fmt"

// Validation error codes.
const (
	CodeUndefinedType    = "undefined_type"
	CodeDuplicateType    = "duplicate_type"
	CodeDuplicateField   = "duplicate_field"
	CodeDuplicateVariant = "duplicate_variant"
	CodeEmptyEnum        = "empty_enum"
)

// ValidationError reports a semantic problem found while building the type
// model. Path locates the offending declaration without re-parsing, e.g.
// "Player.inventory" or "GameEvent.ScoreUpdated[1]".
type ValidationError struct {
	Path    string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

func errf(path, code, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal note produced during resolution, currently only for
// fixed-length arrays downgraded to dynamic lists.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return w.Path + ": " + w.Message
}
