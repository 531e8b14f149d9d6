// Package borsh describes the Borsh wire layout of a type model as plain
// data. The descriptor is consumed by client runtimes to encode and decode
// values without generated parsing code; it is not meant to be hand-edited.
package borsh

import (
	gojson "github.com/goccy/go-json"
)

// Kind identifies a type descriptor node.
type Kind string

const (
	KindInteger   Kind = "integer"   // fixed-width integer, Width bits
	KindFloat     Kind = "float"     // IEEE-754, Width bits
	KindBool      Kind = "bool"      // 1 byte
	KindString    Kind = "string"    // u32 length prefix + UTF-8 bytes
	KindPublicKey Kind = "publicKey" // 32 raw bytes
	KindVec       Kind = "vec"       // u32 length prefix + Inner repeated
	KindOption    Kind = "option"    // 1-byte presence tag + Inner when present
	KindDefined   Kind = "defined"   // reference to a named definition
)

// TypeDescriptor describes the layout of one value.
type TypeDescriptor struct {
	Kind   Kind            `json:"kind"`
	Width  int             `json:"width,omitempty"`
	Signed bool            `json:"signed,omitempty"`
	Inner  *TypeDescriptor `json:"inner,omitempty"`
	// Defined names the referenced definition for KindDefined.
	Defined string `json:"defined,omitempty"`
}

// FieldDescriptor is a named field layout.
type FieldDescriptor struct {
	Name string         `json:"name"`
	Type TypeDescriptor `json:"type"`
}

// VariantDescriptor is one enum variant. Exactly one of Fields and Tuple is
// set for struct and tuple variants; both are empty for unit variants. The
// discriminant is the variant's 0-based declaration index and is written as a
// single byte before the payload.
type VariantDescriptor struct {
	Name         string            `json:"name"`
	Discriminant int               `json:"discriminant"`
	Fields       []FieldDescriptor `json:"fields,omitempty"`
	Tuple        []TypeDescriptor  `json:"tuple,omitempty"`
}

// DefinedDescriptor is the layout of one named definition.
type DefinedDescriptor struct {
	Name string `json:"name"`
	// Kind is "struct" or "enum".
	Kind     string              `json:"kind"`
	Fields   []FieldDescriptor   `json:"fields,omitempty"`
	Variants []VariantDescriptor `json:"variants,omitempty"`
}

// FileDescriptor is the wire schema for a whole type model, in declaration
// order.
type FileDescriptor struct {
	Types []DefinedDescriptor `json:"types"`
}

// Lookup returns the descriptor for a named definition, or nil.
func (f *FileDescriptor) Lookup(name string) *DefinedDescriptor {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i]
		}
	}
	return nil
}

// JSON renders the descriptor as indented JSON.
func (f *FileDescriptor) JSON() ([]byte, error) {
	return gojson.MarshalIndent(f, "", "  ")
}
