// Package tsgen renders a type model as a TypeScript source file with
// @coral-xyz/borsh layout constants, plus the wire descriptor consumed by
// client runtimes.
//
// Like the Rust generator, emission is two-pass: the model is scanned as a
// whole before any item is rendered, so imports and conventions are decided
// file-wide rather than per item.
package tsgen

import (
	"strconv"
	"strings"

	"github.com/lumos-lang/lumos/borsh"
	"github.com/lumos-lang/lumos/gen"
	"github.com/lumos-lang/lumos/ir"
)

// Generate renders the whole model as one TypeScript source file and builds
// the matching wire descriptor.
func Generate(model *ir.TypeModel) (string, *borsh.FileDescriptor, error) {
	desc, err := borsh.DescribeModel(model)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString(gen.Header)
	b.WriteString("\n\n")

	if len(model.Definitions) == 0 {
		return b.String(), desc, nil
	}

	b.WriteString("import * as borsh from '@coral-xyz/borsh';\n")
	if gen.UsesPrimitive(model, "PublicKey") {
		b.WriteString("import { PublicKey } from '@solana/web3.js';\n")
	}

	for _, def := range model.Definitions {
		b.WriteString("\n")
		var rendered string
		switch d := def.(type) {
		case *ir.StructDefinition:
			rendered, err = generateStruct(d)
		case *ir.EnumDefinition:
			rendered, err = generateEnum(d)
		}
		if err != nil {
			return "", nil, err
		}
		b.WriteString(rendered)
	}
	return b.String(), desc, nil
}

func generateStruct(def *ir.StructDefinition) (string, error) {
	var b strings.Builder
	b.WriteString("export interface " + def.Name + " {\n")
	for _, f := range def.Fields {
		line, err := fieldDecl(f, "  ")
		if err != nil {
			return "", err
		}
		b.WriteString(line)
	}
	b.WriteString("}\n\n")

	b.WriteString("export const " + def.Name + "Schema = borsh.struct([\n")
	for _, f := range def.Fields {
		layout, err := layoutFor(f.Type, f.Name)
		if err != nil {
			return "", err
		}
		b.WriteString("  " + layout + ",\n")
	}
	b.WriteString("]);\n")
	return b.String(), nil
}

// generateEnum renders the tagged union as a discriminated TypeScript union:
// every variant carries a literal `kind` tag equal to the variant name, so
// client code can narrow on it. The layout constant keeps the integer
// discriminant of the wire encoding.
func generateEnum(def *ir.EnumDefinition) (string, error) {
	var b strings.Builder
	b.WriteString("export type " + def.Name + " =\n")
	for i, v := range def.Variants {
		arm, err := variantArm(v)
		if err != nil {
			return "", err
		}
		b.WriteString("  | " + arm)
		if i == len(def.Variants)-1 {
			b.WriteString(";")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("export const " + def.Name + "Schema = borsh.rustEnum([\n")
	for _, v := range def.Variants {
		layout, err := variantLayout(v)
		if err != nil {
			return "", err
		}
		b.WriteString("  " + layout + ",\n")
	}
	b.WriteString("]);\n")
	return b.String(), nil
}

func variantArm(v ir.VariantDefinition) (string, error) {
	switch vd := v.(type) {
	case *ir.UnitVariant:
		return "{ kind: '" + vd.Name + "' }", nil
	case *ir.TupleVariant:
		parts := make([]string, 0, len(vd.Types))
		for _, t := range vd.Types {
			ts, err := tsType(t)
			if err != nil {
				return "", err
			}
			parts = append(parts, ts)
		}
		return "{ kind: '" + vd.Name + "'; value: [" + strings.Join(parts, ", ") + "] }", nil
	case *ir.StructVariant:
		var b strings.Builder
		b.WriteString("{ kind: '" + vd.Name + "'")
		for _, f := range vd.Fields {
			ts, err := tsFieldType(f)
			if err != nil {
				return "", err
			}
			sep := ": "
			if f.Optional {
				sep = "?: "
			}
			b.WriteString("; " + f.Name + sep + ts)
		}
		b.WriteString(" }")
		return b.String(), nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "typescript", Type: v.VariantName()}
	}
}

// variantLayout renders one rustEnum arm. Tuple payload elements are laid out
// under their positional index.
func variantLayout(v ir.VariantDefinition) (string, error) {
	switch vd := v.(type) {
	case *ir.UnitVariant:
		return "borsh.struct([], '" + vd.Name + "')", nil
	case *ir.TupleVariant:
		parts := make([]string, 0, len(vd.Types))
		for i, t := range vd.Types {
			layout, err := layoutFor(t, strconv.Itoa(i))
			if err != nil {
				return "", err
			}
			parts = append(parts, layout)
		}
		return "borsh.struct([" + strings.Join(parts, ", ") + "], '" + vd.Name + "')", nil
	case *ir.StructVariant:
		parts := make([]string, 0, len(vd.Fields))
		for _, f := range vd.Fields {
			layout, err := layoutFor(f.Type, f.Name)
			if err != nil {
				return "", err
			}
			parts = append(parts, layout)
		}
		return "borsh.struct([" + strings.Join(parts, ", ") + "], '" + vd.Name + "')", nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "typescript", Type: v.VariantName()}
	}
}

func fieldDecl(f ir.FieldDefinition, indent string) (string, error) {
	ts, err := tsFieldType(f)
	if err != nil {
		return "", err
	}
	if f.Optional {
		return indent + f.Name + "?: " + ts + ";\n", nil
	}
	return indent + f.Name + ": " + ts + ";\n", nil
}

// tsFieldType renders a field's type; optional fields render the element
// type unioned with undefined.
func tsFieldType(f ir.FieldDefinition) (string, error) {
	if opt, ok := f.Type.(*ir.Option); ok {
		inner, err := tsType(opt.Elem)
		if err != nil {
			return "", err
		}
		return inner + " | undefined", nil
	}
	return tsType(f.Type)
}

// tsType maps a resolved type to its TypeScript rendering.
func tsType(info ir.TypeInfo) (string, error) {
	switch t := info.(type) {
	case *ir.Primitive:
		return tsPrimitive(t.Name)
	case *ir.Custom:
		return t.Name, nil
	case *ir.Array:
		inner, err := tsType(t.Elem)
		if err != nil {
			return "", err
		}
		if strings.ContainsAny(inner, " |") {
			inner = "(" + inner + ")"
		}
		return inner + "[]", nil
	case *ir.Option:
		inner, err := tsType(t.Elem)
		if err != nil {
			return "", err
		}
		return inner + " | undefined", nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "typescript", Type: info.String()}
	}
}

func tsPrimitive(name string) (string, error) {
	switch name {
	case "u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "f32", "f64":
		return "number", nil
	case "u128", "i128":
		// bigint keeps full 128-bit precision in client code
		return "bigint", nil
	case "bool":
		return "boolean", nil
	case "String", "Signature", "Keypair":
		return "string", nil
	case "PublicKey":
		return "PublicKey", nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "typescript", Type: name}
	}
}

// layoutFor renders the borsh layout for one named property.
func layoutFor(info ir.TypeInfo, prop string) (string, error) {
	if c, ok := info.(*ir.Custom); ok {
		return c.Name + "Schema.replicate('" + prop + "')", nil
	}
	expr, err := layoutExpr(info)
	if err != nil {
		return "", err
	}
	return expr + "('" + prop + "')", nil
}

// layoutExpr renders a property-less layout expression for use inside vec and
// option combinators.
func layoutExpr(info ir.TypeInfo) (string, error) {
	switch t := info.(type) {
	case *ir.Primitive:
		return layoutPrimitive(t.Name)
	case *ir.Custom:
		return t.Name + "Schema", nil
	case *ir.Array:
		inner, err := layoutExpr(t.Elem)
		if err != nil {
			return "", err
		}
		return "borsh.vec(" + inner + ")", nil
	case *ir.Option:
		inner, err := layoutExpr(t.Elem)
		if err != nil {
			return "", err
		}
		return "borsh.option(" + inner + ")", nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "typescript", Type: info.String()}
	}
}

func layoutPrimitive(name string) (string, error) {
	switch name {
	case "u8", "u16", "u32", "u64", "u128", "i8", "i16", "i32", "i64", "i128", "f32", "f64", "bool":
		return "borsh." + name, nil
	case "String", "Signature", "Keypair":
		return "borsh.string", nil
	case "PublicKey":
		return "borsh.publicKey", nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "typescript", Type: name}
	}
}
