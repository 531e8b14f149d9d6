// Package parser turns .lumos schema source into a syntax tree.
//
// The parser performs no semantic checks beyond grammar: attribute markers
// attach to the next item or field, comments are discarded, and type names
// are not checked against declared items (that is the resolver's job).
package parser

import (
	"strconv"
	"strings"

	"github.com/lumos-lang/lumos/ast"
)

// Parse parses schema source text into a syntax tree. An empty file yields
// a file with no items. On malformed input it returns a *SyntaxError.
func Parse(source string) (*ast.File, error) {
	p := &parser{lex: newLexer(source)}
	if err := p.bump(); err != nil {
		return nil, err
	}
	file := &ast.File{}
	for p.tok.Type != tokEOF {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		file.Items = append(file.Items, item)
	}
	return file, nil
}

type parser struct {
	lex *lexer
	tok token
}

// bump advances to the next token.
func (p *parser) bump() *SyntaxError {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(tt tokenType, what string) (token, *SyntaxError) {
	if p.tok.Type != tt {
		return token{}, errExpected(p.tok, what)
	}
	tok := p.tok
	if err := p.bump(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) parseItem() (ast.Item, error) {
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	switch p.tok.Type {
	case tokStruct:
		return p.parseStruct(attrs)
	case tokEnum:
		return p.parseEnum(attrs)
	default:
		return nil, errExpected(p.tok, "'struct' or 'enum'")
	}
}

// parseAttributes consumes zero or more stacked `#[...]` markers.
func (p *parser) parseAttributes() ([]ast.Attribute, *SyntaxError) {
	var attrs []ast.Attribute
	for p.tok.Type == tokHash {
		pos := ast.Pos{Line: p.tok.Line, Column: p.tok.Col}
		if err := p.bump(); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLBracket, "'['"); err != nil {
			return nil, err
		}
		name, err := p.expect(tokIdent, "attribute name")
		if err != nil {
			return nil, err
		}
		attr := ast.Attribute{Name: name.Lexeme, Pos: pos}
		if p.tok.Type == tokLParen {
			if err := p.bump(); err != nil {
				return nil, err
			}
			val, err := p.parseAttrValue()
			if err != nil {
				return nil, err
			}
			attr.Value = val
			if _, err := p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func (p *parser) parseAttrValue() (*ast.AttrValue, *SyntaxError) {
	switch p.tok.Type {
	case tokInt:
		n, err := strconv.ParseUint(strings.ReplaceAll(p.tok.Lexeme, "_", ""), 10, 64)
		if err != nil {
			return nil, errAt(p.tok.Line, p.tok.Col, "invalid integer %q", p.tok.Lexeme)
		}
		if err := p.bump(); err != nil {
			return nil, err
		}
		return &ast.AttrValue{Kind: ast.AttrInt, Int: n}, nil
	case tokString:
		s := p.tok.Lexeme
		if err := p.bump(); err != nil {
			return nil, err
		}
		return &ast.AttrValue{Kind: ast.AttrString, Str: s}, nil
	case tokIdent:
		if p.tok.Lexeme == "true" || p.tok.Lexeme == "false" {
			b := p.tok.Lexeme == "true"
			if err := p.bump(); err != nil {
				return nil, err
			}
			return &ast.AttrValue{Kind: ast.AttrBool, Bool: b}, nil
		}
		s := p.tok.Lexeme
		if err := p.bump(); err != nil {
			return nil, err
		}
		return &ast.AttrValue{Kind: ast.AttrString, Str: s}, nil
	default:
		return nil, errExpected(p.tok, "attribute value")
	}
}

func (p *parser) parseStruct(attrs []ast.Attribute) (*ast.StructDef, error) {
	pos := ast.Pos{Line: p.tok.Line, Column: p.tok.Col}
	if err := p.bump(); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent, "struct name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	fields, ferr := p.parseFieldList(tokRBrace)
	if ferr != nil {
		return nil, ferr
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return &ast.StructDef{Name: name.Lexeme, Attrs: attrs, Fields: fields, Pos: pos}, nil
}

// parseFieldList parses `name: Type` entries separated by commas, with an
// optional trailing comma, until the closing token.
func (p *parser) parseFieldList(close tokenType) ([]ast.FieldDef, *SyntaxError) {
	var fields []ast.FieldDef
	for p.tok.Type != close {
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		name, err := p.expect(tokIdent, "field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokColon, "':'"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.FieldDef{
			Name:  name.Lexeme,
			Type:  typ,
			Attrs: attrs,
			Pos:   ast.Pos{Line: name.Line, Column: name.Col},
		})
		if p.tok.Type == tokComma {
			if err := p.bump(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return fields, nil
}

func (p *parser) parseEnum(attrs []ast.Attribute) (*ast.EnumDef, error) {
	pos := ast.Pos{Line: p.tok.Line, Column: p.tok.Col}
	if err := p.bump(); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent, "enum name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	var variants []ast.Variant
	for p.tok.Type != tokRBrace {
		v, verr := p.parseVariant()
		if verr != nil {
			return nil, verr
		}
		variants = append(variants, v)
		if p.tok.Type == tokComma {
			if err := p.bump(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return &ast.EnumDef{Name: name.Lexeme, Attrs: attrs, Variants: variants, Pos: pos}, nil
}

func (p *parser) parseVariant() (ast.Variant, *SyntaxError) {
	name, err := p.expect(tokIdent, "variant name")
	if err != nil {
		return nil, err
	}
	pos := ast.Pos{Line: name.Line, Column: name.Col}
	switch p.tok.Type {
	case tokLParen:
		if err := p.bump(); err != nil {
			return nil, err
		}
		var types []ast.Type
		for p.tok.Type != tokRParen {
			typ, terr := p.parseType()
			if terr != nil {
				return nil, terr
			}
			types = append(types, typ)
			if p.tok.Type == tokComma {
				if err := p.bump(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return &ast.TupleVariant{Name: name.Lexeme, Types: types, Pos: pos}, nil
	case tokLBrace:
		if err := p.bump(); err != nil {
			return nil, err
		}
		fields, ferr := p.parseFieldList(tokRBrace)
		if ferr != nil {
			return nil, ferr
		}
		if _, err := p.expect(tokRBrace, "'}'"); err != nil {
			return nil, err
		}
		return &ast.StructVariant{Name: name.Lexeme, Fields: fields, Pos: pos}, nil
	default:
		return &ast.UnitVariant{Name: name.Lexeme, Pos: pos}, nil
	}
}

// parseType parses a type expression: a bare name, `Option<T>`, `[T]` or
// `[T; N]`.
func (p *parser) parseType() (ast.Type, *SyntaxError) {
	switch p.tok.Type {
	case tokLBracket:
		if err := p.bump(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.tok.Type == tokSemi {
			if err := p.bump(); err != nil {
				return nil, err
			}
			lenTok, lerr := p.expect(tokInt, "array length")
			if lerr != nil {
				return nil, lerr
			}
			n, perr := strconv.ParseUint(strings.ReplaceAll(lenTok.Lexeme, "_", ""), 10, 64)
			if perr != nil {
				return nil, errAt(lenTok.Line, lenTok.Col, "invalid array length %q", lenTok.Lexeme)
			}
			if _, err := p.expect(tokRBracket, "']'"); err != nil {
				return nil, err
			}
			return &ast.FixedListType{Elem: elem, Len: n}, nil
		}
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		return &ast.ListType{Elem: elem}, nil

	case tokIdent:
		name := p.tok
		if err := p.bump(); err != nil {
			return nil, err
		}
		if name.Lexeme == "Option" {
			if _, err := p.expect(tokLAngle, "'<'"); err != nil {
				return nil, err
			}
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRAngle, "'>'"); err != nil {
				return nil, err
			}
			return &ast.OptionType{Elem: elem}, nil
		}
		return &ast.NamedType{Name: name.Lexeme}, nil

	default:
		return nil, errExpected(p.tok, "type")
	}
}
