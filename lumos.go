package lumos

import (
	"github.com/lumos-lang/lumos/ast"
	"github.com/lumos-lang/lumos/borsh"
	"github.com/lumos-lang/lumos/gen/rustgen"
	"github.com/lumos-lang/lumos/gen/tsgen"
	"github.com/lumos-lang/lumos/ir"
	"github.com/lumos-lang/lumos/parser"
	"github.com/lumos-lang/lumos/resolve"
)

// Parse parses schema source into a syntax tree. On malformed input it
// returns a *SyntaxError with the offending line and column.
func Parse(source string) (*ast.File, error) {
	return parser.Parse(source)
}

// Resolve validates a syntax tree and builds the type model. On failure it
// returns a *ValidationError naming the offending declaration path.
func Resolve(file *ast.File) (*ir.TypeModel, []Warning, error) {
	return resolve.Resolve(file)
}

// GenerateRust renders the model as a Rust source file.
func GenerateRust(model *ir.TypeModel) (string, error) {
	return rustgen.Generate(model)
}

// GenerateTypeScript renders the model as a TypeScript source file together
// with the wire descriptor for client-side serialization.
func GenerateTypeScript(model *ir.TypeModel) (string, *borsh.FileDescriptor, error) {
	return tsgen.Generate(model)
}

// Output is the result of one complete compile.
type Output struct {
	Rust       string
	TypeScript string
	Descriptor *borsh.FileDescriptor
	Model      *ir.TypeModel
	Warnings   []Warning
}

// Compile runs the whole pipeline over one schema source. It is a pure
// function: compiling the same source twice yields byte-identical outputs.
func Compile(source string) (*Output, error) {
	file, err := Parse(source)
	if err != nil {
		return nil, err
	}
	model, warnings, err := Resolve(file)
	if err != nil {
		return nil, err
	}
	rust, err := GenerateRust(model)
	if err != nil {
		return nil, err
	}
	ts, desc, err := GenerateTypeScript(model)
	if err != nil {
		return nil, err
	}
	return &Output{
		Rust:       rust,
		TypeScript: ts,
		Descriptor: desc,
		Model:      model,
		Warnings:   warnings,
	}, nil
}
