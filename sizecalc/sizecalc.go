// Package sizecalc computes the Borsh-encoded byte size of every definition
// in a type model, with a per-field breakdown and a rent-exemption estimate
// for account structs.
package sizecalc

import (
	"fmt"

	"github.com/lumos-lang/lumos/ir"
)

const (
	// anchorDiscriminatorBytes precede account data in Anchor accounts.
	anchorDiscriminatorBytes = 8
	// enumTagBytes is the wire size of the variant discriminant.
	enumTagBytes = 1

	maxAccountBytes   = 10 * 1024 * 1024
	warnAccountBytes  = 1 * 1024 * 1024
	lamportsPerByte   = 6.96
	rentMetadataBytes = 128
)

// Size is a byte count that may be variable; Min is the minimum encoded size
// and Reason explains variability.
type Size struct {
	Min      int
	Variable bool
	Reason   string
}

func fixed(n int) Size { return Size{Min: n} }

func variable(min int, reason string) Size {
	return Size{Min: min, Variable: true, Reason: reason}
}

// String renders "N bytes" or "N+ bytes (reason)".
func (s Size) String() string {
	if s.Variable {
		return fmt.Sprintf("%d+ bytes (%s)", s.Min, s.Reason)
	}
	return fmt.Sprintf("%d bytes", s.Min)
}

// FieldSize is one line of the per-field breakdown.
type FieldSize struct {
	Name        string
	Size        Size
	Description string
}

// DefinitionSize is the computed size of one definition.
type DefinitionSize struct {
	Name      string
	Total     Size
	Fields    []FieldSize
	IsAccount bool
	// RentSOL estimates the rent-exempt balance for account structs.
	RentSOL  float64
	Warnings []string
}

// Calculator resolves sizes across a model, caching user-defined type sizes.
type Calculator struct {
	model *ir.TypeModel
	cache map[string]Size
	// inProgress guards against recursive type definitions.
	inProgress map[string]bool
}

// New returns a calculator over the given model.
func New(model *ir.TypeModel) *Calculator {
	return &Calculator{
		model:      model,
		cache:      map[string]Size{},
		inProgress: map[string]bool{},
	}
}

// CalculateAll computes sizes for every definition in declaration order.
func (c *Calculator) CalculateAll() []DefinitionSize {
	out := make([]DefinitionSize, 0, len(c.model.Definitions))
	for _, def := range c.model.Definitions {
		switch d := def.(type) {
		case *ir.StructDefinition:
			out = append(out, c.structSize(d))
		case *ir.EnumDefinition:
			out = append(out, c.enumSize(d))
		}
	}
	return out
}

func (c *Calculator) structSize(def *ir.StructDefinition) DefinitionSize {
	res := DefinitionSize{Name: def.Name, IsAccount: def.IsAccount()}
	total := 0
	isVariable := false
	reason := ""

	if def.IsAccount() {
		res.Fields = append(res.Fields, FieldSize{
			Name:        "discriminator",
			Size:        fixed(anchorDiscriminatorBytes),
			Description: "Anchor account discriminator",
		})
		total += anchorDiscriminatorBytes
	}

	for _, f := range def.Fields {
		size := c.typeSize(f.Type)
		total += size.Min
		if size.Variable {
			isVariable = true
			if reason != "" {
				reason += ", "
			}
			reason += f.Name + ": " + size.Reason
		}
		res.Fields = append(res.Fields, FieldSize{
			Name:        f.Name,
			Size:        size,
			Description: f.Type.String(),
		})
	}

	if total > maxAccountBytes {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"account exceeds the 10MB limit (%.2f MB); consider splitting into multiple accounts",
			float64(total)/(1024*1024)))
	} else if total > warnAccountBytes {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"large account size (%.2f KB); consider optimization", float64(total)/1024))
	}

	if isVariable {
		res.Total = variable(total, reason)
	} else {
		res.Total = fixed(total)
	}
	res.RentSOL = rentEstimate(total)
	return res
}

func (c *Calculator) enumSize(def *ir.EnumDefinition) DefinitionSize {
	res := DefinitionSize{Name: def.Name}
	res.Fields = append(res.Fields, FieldSize{
		Name:        "discriminant",
		Size:        fixed(enumTagBytes),
		Description: "enum variant discriminant",
	})

	maxVariant := 0
	isVariable := false
	for _, v := range def.Variants {
		variantSize := 0
		switch vd := v.(type) {
		case *ir.UnitVariant:
			res.Fields = append(res.Fields, FieldSize{
				Name:        vd.Name,
				Size:        fixed(0),
				Description: "unit variant (no data)",
			})
		case *ir.TupleVariant:
			for i, t := range vd.Types {
				size := c.typeSize(t)
				variantSize += size.Min
				if size.Variable {
					isVariable = true
				}
				res.Fields = append(res.Fields, FieldSize{
					Name:        fmt.Sprintf("%s.%d", vd.Name, i),
					Size:        size,
					Description: t.String(),
				})
			}
		case *ir.StructVariant:
			for _, f := range vd.Fields {
				size := c.typeSize(f.Type)
				variantSize += size.Min
				if size.Variable {
					isVariable = true
				}
				res.Fields = append(res.Fields, FieldSize{
					Name:        vd.Name + "." + f.Name,
					Size:        size,
					Description: f.Type.String(),
				})
			}
		}
		if variantSize > maxVariant {
			maxVariant = variantSize
		}
	}

	total := enumTagBytes + maxVariant
	if isVariable {
		res.Total = variable(total, "variable-size variant payload")
	} else {
		res.Total = fixed(total)
	}
	res.RentSOL = rentEstimate(total)
	return res
}

func (c *Calculator) typeSize(info ir.TypeInfo) Size {
	switch t := info.(type) {
	case *ir.Primitive:
		return primitiveSize(t.Name)
	case *ir.Custom:
		return c.definedSize(t.Name)
	case *ir.Array:
		return variable(4, "vec length prefix + elements ("+t.Elem.String()+")")
	case *ir.Option:
		inner := c.typeSize(t.Elem)
		inner.Min++
		return inner
	}
	return variable(0, "unknown type")
}

func (c *Calculator) definedSize(name string) Size {
	if cached, ok := c.cache[name]; ok {
		return cached
	}
	if c.inProgress[name] {
		return variable(0, "recursive type "+name)
	}
	def := c.model.Lookup(name)
	if def == nil {
		return variable(0, "unknown type "+name)
	}

	c.inProgress[name] = true
	var size Size
	switch d := def.(type) {
	case *ir.StructDefinition:
		// nested structs never carry the account discriminator
		inner := *d
		inner.Meta.Account = false
		size = c.structSize(&inner).Total
	case *ir.EnumDefinition:
		size = c.enumSize(d).Total
	}
	delete(c.inProgress, name)
	c.cache[name] = size
	return size
}

func primitiveSize(name string) Size {
	switch name {
	case "u8", "i8", "bool":
		return fixed(1)
	case "u16", "i16":
		return fixed(2)
	case "u32", "i32", "f32":
		return fixed(4)
	case "u64", "i64", "f64":
		return fixed(8)
	case "u128", "i128":
		return fixed(16)
	case "PublicKey":
		return fixed(32)
	case "String", "Signature", "Keypair":
		return variable(4, "string length prefix + UTF-8 bytes")
	}
	return variable(0, "unknown primitive "+name)
}

func rentEstimate(totalBytes int) float64 {
	lamports := float64(totalBytes+rentMetadataBytes) * lamportsPerByte
	return lamports / 1_000_000_000
}
