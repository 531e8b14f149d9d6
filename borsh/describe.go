package borsh

import (
	"fmt"

	"github.com/lumos-lang/lumos/ir"
)

// DescribeModel builds the wire descriptor for a validated type model.
// Definitions and variants keep declaration order; variant discriminants are
// their 0-based declaration index.
func DescribeModel(model *ir.TypeModel) (*FileDescriptor, error) {
	file := &FileDescriptor{}
	for _, def := range model.Definitions {
		switch d := def.(type) {
		case *ir.StructDefinition:
			fields, err := describeFields(d.Fields)
			if err != nil {
				return nil, err
			}
			file.Types = append(file.Types, DefinedDescriptor{
				Name:   d.Name,
				Kind:   "struct",
				Fields: fields,
			})
		case *ir.EnumDefinition:
			variants, err := describeVariants(d.Variants)
			if err != nil {
				return nil, err
			}
			file.Types = append(file.Types, DefinedDescriptor{
				Name:     d.Name,
				Kind:     "enum",
				Variants: variants,
			})
		}
	}
	return file, nil
}

func describeFields(fields []ir.FieldDefinition) ([]FieldDescriptor, error) {
	out := make([]FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		td, err := DescribeType(f.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, FieldDescriptor{Name: f.Name, Type: *td})
	}
	return out, nil
}

func describeVariants(variants []ir.VariantDefinition) ([]VariantDescriptor, error) {
	out := make([]VariantDescriptor, 0, len(variants))
	for i, v := range variants {
		vd := VariantDescriptor{Name: v.VariantName(), Discriminant: i}
		switch iv := v.(type) {
		case *ir.TupleVariant:
			for _, t := range iv.Types {
				td, err := DescribeType(t)
				if err != nil {
					return nil, err
				}
				vd.Tuple = append(vd.Tuple, *td)
			}
		case *ir.StructVariant:
			fields, err := describeFields(iv.Fields)
			if err != nil {
				return nil, err
			}
			vd.Fields = fields
		}
		out = append(out, vd)
	}
	return out, nil
}

// DescribeType builds the descriptor for a single type expression.
func DescribeType(info ir.TypeInfo) (*TypeDescriptor, error) {
	switch t := info.(type) {
	case *ir.Primitive:
		return describePrimitive(t.Name)
	case *ir.Custom:
		return &TypeDescriptor{Kind: KindDefined, Defined: t.Name}, nil
	case *ir.Array:
		inner, err := DescribeType(t.Elem)
		if err != nil {
			return nil, err
		}
		return &TypeDescriptor{Kind: KindVec, Inner: inner}, nil
	case *ir.Option:
		inner, err := DescribeType(t.Elem)
		if err != nil {
			return nil, err
		}
		return &TypeDescriptor{Kind: KindOption, Inner: inner}, nil
	default:
		return nil, fmt.Errorf("borsh: unsupported type %v", info)
	}
}

func describePrimitive(name string) (*TypeDescriptor, error) {
	switch name {
	case "bool":
		return &TypeDescriptor{Kind: KindBool}, nil
	case "String", "Signature", "Keypair":
		// Signature and Keypair travel as base-58 strings on the wire.
		return &TypeDescriptor{Kind: KindString}, nil
	case "PublicKey":
		return &TypeDescriptor{Kind: KindPublicKey}, nil
	}
	shape, ok := ir.PrimitiveShape(name)
	if !ok {
		return nil, fmt.Errorf("borsh: unknown primitive %q", name)
	}
	if shape.Float {
		return &TypeDescriptor{Kind: KindFloat, Width: shape.Bits}, nil
	}
	return &TypeDescriptor{Kind: KindInteger, Width: shape.Bits, Signed: shape.Signed}, nil
}
