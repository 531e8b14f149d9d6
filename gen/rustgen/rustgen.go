// Package rustgen renders a type model as a Rust source file with Borsh
// serialization, targeting Anchor programs when the model declares account
// structs.
//
// Emission is two-pass: the whole model is scanned first to decide the
// file-wide serialization convention, then every item is rendered with that
// decision threaded through. Deciding per item instead would emit colliding
// imports when account and non-account types share a file.
package rustgen

import (
	"strings"

	"github.com/lumos-lang/lumos/gen"
	"github.com/lumos-lang/lumos/ir"
)

// Generate renders the whole model as one Rust source file.
func Generate(model *ir.TypeModel) (string, error) {
	anchor := model.UsesAccountConventions()

	var b strings.Builder
	b.WriteString(gen.Header)
	b.WriteString("\n\n")

	if len(model.Definitions) == 0 {
		return b.String(), nil
	}

	if anchor {
		b.WriteString("use anchor_lang::prelude::*;\n")
	} else {
		b.WriteString("use borsh::{BorshDeserialize, BorshSerialize};\n")
		if gen.UsesPrimitive(model, "PublicKey") {
			b.WriteString("use solana_program::pubkey::Pubkey;\n")
		}
	}

	for _, def := range model.Definitions {
		b.WriteString("\n")
		var rendered string
		var err error
		switch d := def.(type) {
		case *ir.StructDefinition:
			rendered, err = generateStruct(d, anchor)
		case *ir.EnumDefinition:
			rendered, err = generateEnum(d, anchor)
		}
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}

func generateStruct(def *ir.StructDefinition, anchor bool) (string, error) {
	var b strings.Builder
	switch {
	case anchor && def.IsAccount():
		// #[account] supplies the serialization derives.
		b.WriteString("#[account]\n")
	case anchor:
		b.WriteString("#[derive(AnchorSerialize, AnchorDeserialize, Clone, Debug)]\n")
	default:
		b.WriteString("#[derive(BorshSerialize, BorshDeserialize, Clone, Debug)]\n")
	}
	b.WriteString("pub struct " + def.Name + " {\n")
	for _, f := range def.Fields {
		ft, err := rustType(f.Type)
		if err != nil {
			return "", err
		}
		b.WriteString("    pub " + f.Name + ": " + ft + ",\n")
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func generateEnum(def *ir.EnumDefinition, anchor bool) (string, error) {
	var b strings.Builder
	if anchor {
		b.WriteString("#[derive(AnchorSerialize, AnchorDeserialize, Clone, Debug, PartialEq)]\n")
	} else {
		b.WriteString("#[derive(BorshSerialize, BorshDeserialize, Clone, Debug, PartialEq)]\n")
	}
	b.WriteString("pub enum " + def.Name + " {\n")
	for _, v := range def.Variants {
		switch vd := v.(type) {
		case *ir.UnitVariant:
			b.WriteString("    " + vd.Name + ",\n")
		case *ir.TupleVariant:
			parts := make([]string, 0, len(vd.Types))
			for _, t := range vd.Types {
				rt, err := rustType(t)
				if err != nil {
					return "", err
				}
				parts = append(parts, rt)
			}
			b.WriteString("    " + vd.Name + "(" + strings.Join(parts, ", ") + "),\n")
		case *ir.StructVariant:
			b.WriteString("    " + vd.Name + " {\n")
			for _, f := range vd.Fields {
				ft, err := rustType(f.Type)
				if err != nil {
					return "", err
				}
				b.WriteString("        " + f.Name + ": " + ft + ",\n")
			}
			b.WriteString("    },\n")
		}
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// rustType maps a resolved type to its Rust rendering.
func rustType(info ir.TypeInfo) (string, error) {
	switch t := info.(type) {
	case *ir.Primitive:
		return rustPrimitive(t.Name)
	case *ir.Custom:
		return t.Name, nil
	case *ir.Array:
		inner, err := rustType(t.Elem)
		if err != nil {
			return "", err
		}
		return "Vec<" + inner + ">", nil
	case *ir.Option:
		inner, err := rustType(t.Elem)
		if err != nil {
			return "", err
		}
		return "Option<" + inner + ">", nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "rust", Type: info.String()}
	}
}

func rustPrimitive(name string) (string, error) {
	switch name {
	case "PublicKey":
		return "Pubkey", nil
	case "Signature", "Keypair":
		// base-58 external representation
		return "String", nil
	case "u8", "u16", "u32", "u64", "u128",
		"i8", "i16", "i32", "i64", "i128",
		"f32", "f64", "bool", "String":
		return name, nil
	default:
		return "", &gen.UnsupportedShapeError{Target: "rust", Type: name}
	}
}
