// Package resolve transforms the syntax tree into the validated type model.
//
// Resolution copies each item into the corresponding IR definition in
// declaration order, normalizes type aliases, extracts marker metadata, and
// then verifies referential integrity: every bare type name must resolve to a
// declared item, at any nesting depth. Failures are terminal; no partial
// model is returned.
package resolve

import (
	"fmt"

	"github.com/lumos-lang/lumos/ast"
	"github.com/lumos-lang/lumos/ir"
)

// Resolve builds a type model from a parsed file. Warnings accompany a
// successful model (e.g. fixed-length arrays downgraded to dynamic lists);
// on validation failure the model and warnings are nil.
func Resolve(file *ast.File) (*ir.TypeModel, []Warning, error) {
	r := &resolver{}
	model := &ir.TypeModel{}

	seen := map[string]bool{}
	for _, item := range file.Items {
		name := item.ItemName()
		if seen[name] {
			return nil, nil, errf(name, CodeDuplicateType, "type %q is declared more than once", name)
		}
		seen[name] = true

		switch it := item.(type) {
		case *ast.StructDef:
			def, err := r.resolveStruct(it)
			if err != nil {
				return nil, nil, err
			}
			model.Definitions = append(model.Definitions, def)
		case *ast.EnumDef:
			def, err := r.resolveEnum(it)
			if err != nil {
				return nil, nil, err
			}
			model.Definitions = append(model.Definitions, def)
		}
	}

	if err := validateReferences(model); err != nil {
		return nil, nil, err
	}
	return model, r.warnings, nil
}

type resolver struct {
	warnings []Warning
}

func (r *resolver) resolveStruct(def *ast.StructDef) (*ir.StructDefinition, error) {
	fields, err := r.resolveFields(def.Fields, def.Name)
	if err != nil {
		return nil, err
	}
	return &ir.StructDefinition{
		Name:   def.Name,
		Fields: fields,
		Meta:   metadataFrom(def.Attrs),
	}, nil
}

func (r *resolver) resolveEnum(def *ast.EnumDef) (*ir.EnumDefinition, error) {
	if len(def.Variants) == 0 {
		return nil, errf(def.Name, CodeEmptyEnum, "enum %q has no variants", def.Name)
	}
	seen := map[string]bool{}
	variants := make([]ir.VariantDefinition, 0, len(def.Variants))
	for _, v := range def.Variants {
		name := v.VariantName()
		if seen[name] {
			return nil, errf(def.Name+"."+name, CodeDuplicateVariant,
				"variant %q is declared more than once in enum %q", name, def.Name)
		}
		seen[name] = true

		switch av := v.(type) {
		case *ast.UnitVariant:
			variants = append(variants, &ir.UnitVariant{Name: name})
		case *ast.TupleVariant:
			types := make([]ir.TypeInfo, 0, len(av.Types))
			for i, t := range av.Types {
				path := fmt.Sprintf("%s.%s[%d]", def.Name, name, i)
				info, err := r.resolveType(t, path)
				if err != nil {
					return nil, err
				}
				types = append(types, info)
			}
			variants = append(variants, &ir.TupleVariant{Name: name, Types: types})
		case *ast.StructVariant:
			fields, err := r.resolveFields(av.Fields, def.Name+"."+name)
			if err != nil {
				return nil, err
			}
			variants = append(variants, &ir.StructVariant{Name: name, Fields: fields})
		}
	}
	return &ir.EnumDefinition{
		Name:     def.Name,
		Variants: variants,
		Meta:     metadataFrom(def.Attrs),
	}, nil
}

// resolveFields converts a field list, checking name uniqueness within the
// enclosing scope. scope is the dotted path prefix for error reporting.
func (r *resolver) resolveFields(defs []ast.FieldDef, scope string) ([]ir.FieldDefinition, error) {
	seen := map[string]bool{}
	fields := make([]ir.FieldDefinition, 0, len(defs))
	for _, f := range defs {
		if seen[f.Name] {
			return nil, errf(scope+"."+f.Name, CodeDuplicateField,
				"field %q is declared more than once in %q", f.Name, scope)
		}
		seen[f.Name] = true

		info, err := r.resolveType(f.Type, scope+"."+f.Name)
		if err != nil {
			return nil, err
		}
		_, optional := info.(*ir.Option)
		fields = append(fields, ir.FieldDefinition{Name: f.Name, Type: info, Optional: optional})
	}
	return fields, nil
}

// resolveType converts a type expression, normalizing aliases and splitting
// names into primitives and custom references. Fixed-length arrays are
// downgraded to dynamic lists with a warning; the systems target could carry
// them natively but the client wire format has no fixed-length sequence.
func (r *resolver) resolveType(t ast.Type, path string) (ir.TypeInfo, error) {
	switch at := t.(type) {
	case *ast.NamedType:
		if ir.IsPrimitive(at.Name) {
			return &ir.Primitive{Name: ir.CanonicalPrimitive(at.Name)}, nil
		}
		return &ir.Custom{Name: at.Name}, nil
	case *ast.ListType:
		elem, err := r.resolveType(at.Elem, path)
		if err != nil {
			return nil, err
		}
		return &ir.Array{Elem: elem}, nil
	case *ast.FixedListType:
		elem, err := r.resolveType(at.Elem, path)
		if err != nil {
			return nil, err
		}
		r.warnings = append(r.warnings, Warning{
			Path:    path,
			Message: fmt.Sprintf("fixed-length array %s treated as dynamic list [%s]", at.String(), at.Elem.String()),
		})
		return &ir.Array{Elem: elem}, nil
	case *ast.OptionType:
		elem, err := r.resolveType(at.Elem, path)
		if err != nil {
			return nil, err
		}
		return &ir.Option{Elem: elem}, nil
	default:
		return nil, errf(path, CodeUndefinedType, "unsupported type expression %v", t)
	}
}

func metadataFrom(attrs []ast.Attribute) ir.Metadata {
	meta := ir.Metadata{
		Solana:  ast.HasAttribute(attrs, "solana"),
		Account: ast.HasAttribute(attrs, "account"),
	}
	for _, a := range attrs {
		meta.Attributes = append(meta.Attributes, a.Name)
	}
	return meta
}

// validateReferences walks every type expression in the model and verifies
// that custom references name a declared definition. Forward, self and
// mutual references are legal; only undefined names fail.
func validateReferences(model *ir.TypeModel) error {
	defined := map[string]bool{}
	for _, def := range model.Definitions {
		defined[def.DefName()] = true
	}

	for _, def := range model.Definitions {
		switch d := def.(type) {
		case *ir.StructDefinition:
			for _, f := range d.Fields {
				if err := checkTypeInfo(f.Type, defined, d.Name+"."+f.Name); err != nil {
					return err
				}
			}
		case *ir.EnumDefinition:
			for _, v := range d.Variants {
				switch vd := v.(type) {
				case *ir.TupleVariant:
					for i, t := range vd.Types {
						path := fmt.Sprintf("%s.%s[%d]", d.Name, vd.Name, i)
						if err := checkTypeInfo(t, defined, path); err != nil {
							return err
						}
					}
				case *ir.StructVariant:
					for _, f := range vd.Fields {
						path := fmt.Sprintf("%s.%s.%s", d.Name, vd.Name, f.Name)
						if err := checkTypeInfo(f.Type, defined, path); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

func checkTypeInfo(info ir.TypeInfo, defined map[string]bool, path string) error {
	switch t := info.(type) {
	case *ir.Custom:
		if !defined[t.Name] {
			return errf(path, CodeUndefinedType, "undefined type %q referenced in %q", t.Name, path)
		}
	case *ir.Array:
		return checkTypeInfo(t.Elem, defined, path)
	case *ir.Option:
		return checkTypeInfo(t.Elem, defined, path)
	}
	return nil
}
