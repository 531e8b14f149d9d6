// Package ir defines the language-agnostic type model consumed by the code
// generators. The model is produced once per compile by the resolver and is
// immutable afterwards; generators hold read-only references.
package ir

// TypeModel is the validated set of type definitions from one schema file.
// Declaration order is preserved: it determines binary field layout and enum
// discriminant values.
type TypeModel struct {
	Definitions []TypeDefinition
}

// Lookup returns the definition with the given name, or nil.
func (m *TypeModel) Lookup(name string) TypeDefinition {
	for _, def := range m.Definitions {
		if def.DefName() == name {
			return def
		}
	}
	return nil
}

// UsesAccountConventions reports whether any struct in the model is marked as
// a managed storage account. Both generators consult this module-wide flag
// before emitting any single item: when it is true, account structs rely on
// the framework's implicit serialization and every other type in the file
// uses the framework's derive convention instead of the plain one.
func (m *TypeModel) UsesAccountConventions() bool {
	for _, def := range m.Definitions {
		if s, ok := def.(*StructDefinition); ok && s.IsAccount() {
			return true
		}
	}
	return false
}

// TypeDefinition is a struct or enum definition.
type TypeDefinition interface {
	DefName() string
	Metadata() *Metadata
}

// StructDefinition is a record with ordered named fields.
type StructDefinition struct {
	Name   string
	Fields []FieldDefinition
	Meta   Metadata
}

func (s *StructDefinition) DefName() string     { return s.Name }
func (s *StructDefinition) Metadata() *Metadata { return &s.Meta }

// IsAccount reports whether the struct carries the storage-account marker.
func (s *StructDefinition) IsAccount() bool { return s.Meta.Account }

// EnumDefinition is a tagged union. The i-th declared variant (0-indexed) is
// assigned discriminant i in the wire encoding.
type EnumDefinition struct {
	Name     string
	Variants []VariantDefinition
	Meta     Metadata
}

func (e *EnumDefinition) DefName() string     { return e.Name }
func (e *EnumDefinition) Metadata() *Metadata { return &e.Meta }

// IsUnitOnly reports whether every variant carries no payload.
func (e *EnumDefinition) IsUnitOnly() bool {
	for _, v := range e.Variants {
		if _, ok := v.(*UnitVariant); !ok {
			return false
		}
	}
	return true
}

// VariantDefinition is one of the three variant shapes.
type VariantDefinition interface {
	VariantName() string
}

// UnitVariant has no payload.
type UnitVariant struct {
	Name string
}

func (v *UnitVariant) VariantName() string { return v.Name }

// TupleVariant has an ordered, unnamed payload.
type TupleVariant struct {
	Name  string
	Types []TypeInfo
}

func (v *TupleVariant) VariantName() string { return v.Name }

// StructVariant has named fields, identical in shape to a struct body.
type StructVariant struct {
	Name   string
	Fields []FieldDefinition
}

func (v *StructVariant) VariantName() string { return v.Name }

// FieldDefinition is a named field with its resolved type.
type FieldDefinition struct {
	Name     string
	Type     TypeInfo
	Optional bool
}

// Metadata carries the advisory markers attached to a definition. Only the
// account flag changes generator behavior; everything else is preserved
// verbatim for downstream tooling.
type Metadata struct {
	Solana     bool
	Account    bool
	Attributes []string
}
