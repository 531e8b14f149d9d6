package ir

// PrimitiveInfo describes the wire shape of a built-in type.
type PrimitiveInfo struct {
	// Bits is the width of fixed-width integers and floats, 0 otherwise.
	Bits int
	// Signed is set for signed integers.
	Signed bool
	// Float is set for f32/f64.
	Float bool
	// FixedBytes is the encoded size for fixed-size non-numeric types
	// (bool, PublicKey); 0 for variable-size types.
	FixedBytes int
}

// primitives is the closed set of built-in type names and their wire shapes.
// String, Signature and Keypair encode as length-prefixed UTF-8.
var primitives = map[string]PrimitiveInfo{
	"u8":   {Bits: 8},
	"u16":  {Bits: 16},
	"u32":  {Bits: 32},
	"u64":  {Bits: 64},
	"u128": {Bits: 128},
	"i8":   {Bits: 8, Signed: true},
	"i16":  {Bits: 16, Signed: true},
	"i32":  {Bits: 32, Signed: true},
	"i64":  {Bits: 64, Signed: true},
	"i128": {Bits: 128, Signed: true},
	"f32":  {Bits: 32, Float: true},
	"f64":  {Bits: 64, Float: true},

	"bool":   {FixedBytes: 1},
	"String": {},

	"PublicKey": {FixedBytes: 32},
	"Signature": {},
	"Keypair":   {},
}

// typeAliases maps the TypeScript-friendly spellings accepted in schema
// source to canonical primitive names.
var typeAliases = map[string]string{
	"number":  "u64",
	"string":  "String",
	"boolean": "bool",
}

// IsPrimitive reports whether name is a built-in type or one of its aliases.
func IsPrimitive(name string) bool {
	if _, ok := primitives[name]; ok {
		return true
	}
	_, ok := typeAliases[name]
	return ok
}

// CanonicalPrimitive maps aliases to canonical names. Non-alias names are
// returned unchanged.
func CanonicalPrimitive(name string) string {
	if canon, ok := typeAliases[name]; ok {
		return canon
	}
	return name
}

// PrimitiveShape returns the wire shape of a canonical primitive name.
func PrimitiveShape(name string) (PrimitiveInfo, bool) {
	info, ok := primitives[name]
	return info, ok
}
