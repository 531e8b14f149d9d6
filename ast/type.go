package ast

import (
	"fmt"
	"strconv"
)

// TypeKind identifies a type expression node.
type TypeKind int

const (
	KindNamed TypeKind = iota
	KindList
	KindFixedList
	KindOption
)

// Type is a type expression as written in the source. The parser does not
// distinguish primitives from references to other items; that split happens
// during resolution.
type Type interface {
	Kind() TypeKind
	String() string
}

// NamedType is a bare type name: a primitive keyword or an item reference.
type NamedType struct {
	Name string
}

func (t *NamedType) Kind() TypeKind { return KindNamed }
func (t *NamedType) String() string { return t.Name }

// ListType is a dynamic list, written `[T]`.
type ListType struct {
	Elem Type
}

func (t *ListType) Kind() TypeKind { return KindList }
func (t *ListType) String() string { return "[" + t.Elem.String() + "]" }

// FixedListType is a fixed-length array, written `[T; N]`.
type FixedListType struct {
	Elem Type
	Len  uint64
}

func (t *FixedListType) Kind() TypeKind { return KindFixedList }
func (t *FixedListType) String() string {
	return fmt.Sprintf("[%s; %s]", t.Elem.String(), strconv.FormatUint(t.Len, 10))
}

// OptionType is an optional wrapper, written `Option<T>`.
type OptionType struct {
	Elem Type
}

func (t *OptionType) Kind() TypeKind { return KindOption }
func (t *OptionType) String() string { return "Option<" + t.Elem.String() + ">" }
