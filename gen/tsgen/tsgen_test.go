package tsgen_test

import (
	"strings"
	"testing"

	"github.com/lumos-lang/lumos/gen/tsgen"
	"github.com/lumos-lang/lumos/ir"
	"github.com/lumos-lang/lumos/parser"
	"github.com/lumos-lang/lumos/resolve"
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

func generate(t *testing.T, src string) string {
	t.Helper()
	out, _, err := tsgen.Generate(modelOf(t, src))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return out
}

func TestGenerateInterfaceAndSchema(t *testing.T) {
	out := generate(t, `
#[solana]
#[account]
struct PlayerAccount {
    wallet: PublicKey,
    username: String,
    level: u8,
    experience: u64,
    is_active: bool,
}
`)
	for _, want := range []string{
		"// Code generated by lumos. DO NOT EDIT.",
		"import * as borsh from '@coral-xyz/borsh';",
		"import { PublicKey } from '@solana/web3.js';",
		"export interface PlayerAccount {",
		"  wallet: PublicKey;",
		"  username: string;",
		"  level: number;",
		"  experience: number;",
		"  is_active: boolean;",
		"export const PlayerAccountSchema = borsh.struct([",
		"  borsh.publicKey('wallet'),",
		"  borsh.string('username'),",
		"  borsh.u8('level'),",
		"  borsh.u64('experience'),",
		"  borsh.bool('is_active'),",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateNoPublicKeyImport(t *testing.T) {
	out := generate(t, "struct S { x: u8 }")
	if strings.Contains(out, "@solana/web3.js") {
		t.Fatalf("no PublicKey in model, web3 import unexpected:\n%s", out)
	}
}

func TestGenerateDiscriminatedUnion(t *testing.T) {
	out := generate(t, `
enum E {
    A,
    B(u64),
    C { x: u32 },
}
`)
	for _, want := range []string{
		"export type E =\n",
		"  | { kind: 'A' }\n",
		"  | { kind: 'B'; value: [number] }\n",
		"  | { kind: 'C'; x: number };\n",
		"export const ESchema = borsh.rustEnum([",
		"  borsh.struct([], 'A'),",
		"  borsh.struct([borsh.u64('0')], 'B'),",
		"  borsh.struct([borsh.u32('x')], 'C'),",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateOptionalField(t *testing.T) {
	out := generate(t, "struct S { nickname: Option<String> }")
	if !strings.Contains(out, "  nickname?: string | undefined;") {
		t.Fatalf("want optional field rendering:\n%s", out)
	}
	if !strings.Contains(out, "  borsh.option(borsh.string)('nickname'),") {
		t.Fatalf("want option layout:\n%s", out)
	}
}

func TestGenerateVecLayout(t *testing.T) {
	out := generate(t, "struct S { items: [u64], tags: [String] }")
	for _, want := range []string{
		"  items: number[];",
		"  tags: string[];",
		"  borsh.vec(borsh.u64)('items'),",
		"  borsh.vec(borsh.string)('tags'),",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateArrayOfUnionsParenthesized(t *testing.T) {
	out := generate(t, "struct S { xs: [Option<u8>] }")
	if !strings.Contains(out, "  xs: (number | undefined)[];") {
		t.Fatalf("want parenthesized union element:\n%s", out)
	}
}

func TestGenerateCustomTypeReplicate(t *testing.T) {
	out := generate(t, `
struct Item { id: u64 }
struct Bag { first: Item, rest: [Item] }
`)
	for _, want := range []string{
		"  first: Item;",
		"  rest: Item[];",
		"  ItemSchema.replicate('first'),",
		"  borsh.vec(ItemSchema)('rest'),",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateBigintFor128Bit(t *testing.T) {
	out := generate(t, "struct S { big: u128, sbig: i128 }")
	for _, want := range []string{
		"  big: bigint;",
		"  sbig: bigint;",
		"  borsh.u128('big'),",
		"  borsh.i128('sbig'),",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateDescriptorAlongside(t *testing.T) {
	_, desc, err := tsgen.Generate(modelOf(t, `
struct S { x: u8 }
enum E { A, B }
`))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if desc == nil || len(desc.Types) != 2 {
		t.Fatalf("want descriptor with 2 types, got %+v", desc)
	}
	if desc.Types[0].Name != "S" || desc.Types[1].Name != "E" {
		t.Fatalf("descriptor order should follow declaration order: %+v", desc.Types)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	src := `
struct Item { id: u64 }
enum E { A, B(Item), C { xs: [Item] } }
`
	first := generate(t, src)
	for i := 0; i < 3; i++ {
		if got := generate(t, src); got != first {
			t.Fatalf("output not deterministic on run %d", i)
		}
	}
}
