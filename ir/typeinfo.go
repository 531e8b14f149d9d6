package ir

// TypeKind identifies a TypeInfo node.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindCustom
	KindArray
	KindOption
)

// TypeInfo is a validated type expression. Every Custom reference names an
// existing definition in the same model; the resolver guarantees this.
type TypeInfo interface {
	Kind() TypeKind
	String() string
}

// Primitive is a built-in type, identified by its canonical name (see
// primitives.go for the full set).
type Primitive struct {
	Name string
}

func (p *Primitive) Kind() TypeKind { return KindPrimitive }
func (p *Primitive) String() string { return p.Name }

// Custom references another definition in the same model.
type Custom struct {
	Name string
}

func (c *Custom) Kind() TypeKind { return KindCustom }
func (c *Custom) String() string { return c.Name }

// Array is a dynamic, length-prefixed list.
type Array struct {
	Elem TypeInfo
}

func (a *Array) Kind() TypeKind { return KindArray }
func (a *Array) String() string { return "[" + a.Elem.String() + "]" }

// Option is an optional value: a 1-byte presence tag followed by the value
// when present.
type Option struct {
	Elem TypeInfo
}

func (o *Option) Kind() TypeKind { return KindOption }
func (o *Option) String() string { return "Option<" + o.Elem.String() + ">" }
