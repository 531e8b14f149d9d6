package gen_test

import (
	"testing"

	"github.com/lumos-lang/lumos/gen"
	"github.com/lumos-lang/lumos/ir"
)

func TestWalkTypesVisitsNestedElements(t *testing.T) {
	model := &ir.TypeModel{Definitions: []ir.TypeDefinition{
		&ir.StructDefinition{Name: "S", Fields: []ir.FieldDefinition{
			{Name: "xs", Type: &ir.Array{Elem: &ir.Option{Elem: &ir.Primitive{Name: "u8"}}}},
		}},
		&ir.EnumDefinition{Name: "E", Variants: []ir.VariantDefinition{
			&ir.TupleVariant{Name: "A", Types: []ir.TypeInfo{&ir.Primitive{Name: "u64"}}},
			&ir.StructVariant{Name: "B", Fields: []ir.FieldDefinition{
				{Name: "k", Type: &ir.Primitive{Name: "PublicKey"}},
			}},
		}},
	}}

	var visited []string
	gen.WalkTypes(model, func(info ir.TypeInfo) {
		visited = append(visited, info.String())
	})
	want := []string{"[Option<u8>]", "Option<u8>", "u8", "u64", "PublicKey"}
	if len(visited) != len(want) {
		t.Fatalf("want %d visits, got %d: %v", len(want), len(visited), visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visit %d: want %s, got %s", i, want[i], visited[i])
		}
	}
}

func TestUsesPrimitive(t *testing.T) {
	model := &ir.TypeModel{Definitions: []ir.TypeDefinition{
		&ir.StructDefinition{Name: "S", Fields: []ir.FieldDefinition{
			{Name: "k", Type: &ir.Option{Elem: &ir.Primitive{Name: "PublicKey"}}},
		}},
	}}
	if !gen.UsesPrimitive(model, "PublicKey") {
		t.Fatalf("PublicKey is used inside an option")
	}
	if gen.UsesPrimitive(model, "u64") {
		t.Fatalf("u64 is not used")
	}
}

func TestUnsupportedShapeError(t *testing.T) {
	err := &gen.UnsupportedShapeError{Target: "rust", Type: "Weird"}
	if got := err.Error(); got != `rust target cannot render type "Weird"` {
		t.Fatalf("unexpected message %q", got)
	}
}
