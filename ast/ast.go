// Package ast defines the syntax tree produced by the parser for .lumos
// schema files. The tree is a direct representation of the parsed syntax,
// before resolution into the IR.
package ast

// Pos is a 1-indexed source position.
type Pos struct {
	Line   int
	Column int
}

// File is a complete parsed schema file. A file may declare any number of
// items, including zero.
type File struct {
	Items []Item
}

// Item is a top-level declaration: a struct or an enum.
type Item interface {
	// ItemName returns the declared name.
	ItemName() string
	// Attributes returns the markers attached to the declaration.
	Attributes() []Attribute
	item()
}

// StructDef is a struct declaration.
type StructDef struct {
	Name   string
	Attrs  []Attribute
	Fields []FieldDef
	Pos    Pos
}

func (s *StructDef) ItemName() string        { return s.Name }
func (s *StructDef) Attributes() []Attribute { return s.Attrs }
func (s *StructDef) item()                   {}

// EnumDef is an enum declaration.
type EnumDef struct {
	Name     string
	Attrs    []Attribute
	Variants []Variant
	Pos      Pos
}

func (e *EnumDef) ItemName() string        { return e.Name }
func (e *EnumDef) Attributes() []Attribute { return e.Attrs }
func (e *EnumDef) item()                   {}

// Variant is one of the three enum variant shapes.
type Variant interface {
	VariantName() string
	variant()
}

// UnitVariant is a variant with no payload, e.g. `Active`.
type UnitVariant struct {
	Name string
	Pos  Pos
}

func (v *UnitVariant) VariantName() string { return v.Name }
func (v *UnitVariant) variant()            {}

// TupleVariant carries an ordered payload, e.g. `ScoreUpdated(PublicKey, u64)`.
type TupleVariant struct {
	Name  string
	Types []Type
	Pos   Pos
}

func (v *TupleVariant) VariantName() string { return v.Name }
func (v *TupleVariant) variant()            {}

// StructVariant carries named fields, e.g. `Initialize { authority: PublicKey }`.
type StructVariant struct {
	Name   string
	Fields []FieldDef
	Pos    Pos
}

func (v *StructVariant) VariantName() string { return v.Name }
func (v *StructVariant) variant()            {}

// FieldDef is a named field inside a struct or a struct variant.
type FieldDef struct {
	Name  string
	Type  Type
	Attrs []Attribute
	Pos   Pos
}

// HasAttribute reports whether the field carries the named marker.
func (f *FieldDef) HasAttribute(name string) bool {
	for _, a := range f.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Attribute is a bracketed marker such as `#[solana]`, `#[account]` or
// `#[max(32)]`. Value is nil for bare markers.
type Attribute struct {
	Name  string
	Value *AttrValue
	Pos   Pos
}

// AttrValue is the parenthesized argument of a marker. Exactly one of the
// fields is meaningful, selected by Kind.
type AttrValue struct {
	Kind AttrValueKind
	Str  string
	Int  uint64
	Bool bool
}

// AttrValueKind discriminates AttrValue.
type AttrValueKind int

const (
	AttrString AttrValueKind = iota
	AttrInt
	AttrBool
)

// HasAttribute reports whether any attribute in attrs has the given name.
func HasAttribute(attrs []Attribute, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
