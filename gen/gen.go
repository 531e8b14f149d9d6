// Package gen holds pieces shared by the code generators: the unsupported
// shape error, the generated-file banner, and model traversal helpers.
package gen

import (
	"fmt"

	"github.com/lumos-lang/lumos/ir"
)

// Header is the first line of every generated source file.
const Header = "// Code generated by lumos. DO NOT EDIT."

// UnsupportedShapeError reports a type model shape a specific target cannot
// render. A model built from the supported grammar never triggers it; it is
// reserved for deliberately unsupported constructs.
type UnsupportedShapeError struct {
	Target string
	Type   string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%s target cannot render type %q", e.Target, e.Type)
}

// WalkTypes calls fn for every type expression in the model, including the
// elements of list and optional wrappers.
func WalkTypes(model *ir.TypeModel, fn func(ir.TypeInfo)) {
	var walk func(ir.TypeInfo)
	walk = func(info ir.TypeInfo) {
		fn(info)
		switch t := info.(type) {
		case *ir.Array:
			walk(t.Elem)
		case *ir.Option:
			walk(t.Elem)
		}
	}
	for _, def := range model.Definitions {
		switch d := def.(type) {
		case *ir.StructDefinition:
			for _, f := range d.Fields {
				walk(f.Type)
			}
		case *ir.EnumDefinition:
			for _, v := range d.Variants {
				switch vd := v.(type) {
				case *ir.TupleVariant:
					for _, t := range vd.Types {
						walk(t)
					}
				case *ir.StructVariant:
					for _, f := range vd.Fields {
						walk(f.Type)
					}
				}
			}
		}
	}
}

// UsesPrimitive reports whether any type expression in the model mentions the
// named primitive.
func UsesPrimitive(model *ir.TypeModel, name string) bool {
	found := false
	WalkTypes(model, func(info ir.TypeInfo) {
		if p, ok := info.(*ir.Primitive); ok && p.Name == name {
			found = true
		}
	})
	return found
}
