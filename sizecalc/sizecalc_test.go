package sizecalc_test

import (
	"strings"
	"testing"

	"github.com/lumos-lang/lumos/ir"
	"github.com/lumos-lang/lumos/parser"
	"github.com/lumos-lang/lumos/resolve"
	"github.com/lumos-lang/lumos/sizecalc"
)

func modelOf(t *testing.T, src string) *ir.TypeModel {
	t.Helper()
	file, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	model, _, err := resolve.Resolve(file)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return model
}

func sizeOf(t *testing.T, src, name string) sizecalc.DefinitionSize {
	t.Helper()
	for _, s := range sizecalc.New(modelOf(t, src)).CalculateAll() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("definition %s not found", name)
	return sizecalc.DefinitionSize{}
}

func TestFixedStructSize(t *testing.T) {
	s := sizeOf(t, `
struct Point {
    x: u64,
    y: u64,
    tag: u8,
}
`, "Point")
	if s.Total.Variable {
		t.Fatalf("Point should have a fixed size")
	}
	if s.Total.Min != 17 {
		t.Fatalf("want 17 bytes, got %d", s.Total.Min)
	}
}

func TestAccountDiscriminatorAdded(t *testing.T) {
	s := sizeOf(t, `
#[account]
struct Counter { value: u64 }
`, "Counter")
	if !s.IsAccount {
		t.Fatalf("Counter should be an account")
	}
	if s.Total.Min != 8+8 {
		t.Fatalf("want 16 bytes including discriminator, got %d", s.Total.Min)
	}
	if s.Fields[0].Name != "discriminator" || s.Fields[0].Size.Min != 8 {
		t.Fatalf("first row should be the 8-byte discriminator: %+v", s.Fields[0])
	}
	if s.RentSOL <= 0 {
		t.Fatalf("account should carry a rent estimate, got %f", s.RentSOL)
	}
}

func TestVariableSizeReportsReason(t *testing.T) {
	s := sizeOf(t, "struct S { name: String, level: u8 }", "S")
	if !s.Total.Variable {
		t.Fatalf("String field should make the struct variable")
	}
	// 4-byte length prefix + 1 byte
	if s.Total.Min != 5 {
		t.Fatalf("want minimum 5 bytes, got %d", s.Total.Min)
	}
	if !strings.Contains(s.Total.Reason, "name") {
		t.Fatalf("reason should name the variable field: %q", s.Total.Reason)
	}
	if got := s.Total.String(); !strings.HasPrefix(got, "5+ bytes") {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestOptionAddsPresenceByte(t *testing.T) {
	s := sizeOf(t, "struct S { maybe: Option<u64> }", "S")
	if s.Total.Min != 9 {
		t.Fatalf("want 9 bytes (tag + u64), got %d", s.Total.Min)
	}
}

func TestEnumSizeIsTagPlusLargestVariant(t *testing.T) {
	s := sizeOf(t, `
enum E {
    A,
    B(u64),
    C { x: u32 },
}
`, "E")
	// 1-byte tag + 8-byte largest payload
	if s.Total.Min != 9 {
		t.Fatalf("want 9 bytes, got %d", s.Total.Min)
	}
	if s.Total.Variable {
		t.Fatalf("all payloads are fixed, size should be fixed")
	}
	if s.Fields[0].Name != "discriminant" || s.Fields[0].Size.Min != 1 {
		t.Fatalf("first row should be the 1-byte discriminant: %+v", s.Fields[0])
	}
}

func TestNestedStructDropsDiscriminator(t *testing.T) {
	s := sizeOf(t, `
#[account]
struct Outer { inner: Inner }

#[account]
struct Inner { x: u64 }
`, "Outer")
	// 8 (outer discriminator) + 8 (inner payload, no nested discriminator)
	if s.Total.Min != 16 {
		t.Fatalf("want 16 bytes, got %d", s.Total.Min)
	}
}

func TestRecursiveTypeIsVariable(t *testing.T) {
	s := sizeOf(t, "struct Node { next: Option<Node>, value: u64 }", "Node")
	if !s.Total.Variable {
		t.Fatalf("recursive type should be variable")
	}
}

func TestPublicKeySize(t *testing.T) {
	s := sizeOf(t, "struct S { key: PublicKey }", "S")
	if s.Total.Min != 32 {
		t.Fatalf("want 32 bytes, got %d", s.Total.Min)
	}
}
