package lumos

import (
	"github.com/lumos-lang/lumos/gen"
	"github.com/lumos-lang/lumos/parser"
	"github.com/lumos-lang/lumos/resolve"
)

// The three error kinds of the pipeline, re-exported so callers can match
// them with errors.As without importing stage packages.
type (
	// SyntaxError reports malformed grammar with source position.
	SyntaxError = parser.SyntaxError
	// ValidationError reports undefined references, duplicate names or
	// empty enums, with a dotted location path.
	ValidationError = resolve.ValidationError
	// UnsupportedShapeError reports a model shape a target cannot render.
	UnsupportedShapeError = gen.UnsupportedShapeError
	// Warning is a non-fatal resolver note.
	Warning = resolve.Warning
)

// Validation error codes, mirrored from the resolver.
const (
	CodeUndefinedType    = resolve.CodeUndefinedType
	CodeDuplicateType    = resolve.CodeDuplicateType
	CodeDuplicateField   = resolve.CodeDuplicateField
	CodeDuplicateVariant = resolve.CodeDuplicateVariant
	CodeEmptyEnum        = resolve.CodeEmptyEnum
)
