package hfx

import "github.com/gogpu/hfx/lexer"

// declarationProperties parses `properties { Name("ui", Type[(args)])
// [= default]; ... }`, per spec.md §4.5.
func (p *Parser) declarationProperties() {
	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		p.declarationProperty(tok.Text)
		if p.lex.HasError() {
			return
		}
	}
}

func (p *Parser) declarationProperty(name string) {
	prop := Property{Name: name}

	if !p.lex.Expect(lexer.OpenParen) {
		return
	}
	if !p.lex.Expect(lexer.String) {
		return
	}
	prop.UIName = unquote(p.lex.Last().Text)
	if !p.lex.Expect(lexer.Comma) {
		return
	}

	kind, ok := p.parsePropertyKind()
	if !ok {
		return
	}
	prop.Kind = kind

	if p.lex.Equals(lexer.OpenParen) {
		for !p.lex.Equals(lexer.CloseParen) {
			t := p.lex.Last()
			if p.lex.HasError() {
				return
			}
			if t.Kind == lexer.Identifier || t.Kind == lexer.String {
				prop.UIArguments = append(prop.UIArguments, t.Text)
			}
		}
		// The loop above consumed the ui_args' closing paren; the outer
		// Name(...) group still needs its own closing paren.
		if !p.lex.Expect(lexer.CloseParen) {
			return
		}
	} else {
		// Equals already consumed a non-'(' token; it must be the
		// outer group's own closing paren.
		if !p.lex.Check(lexer.CloseParen) {
			return
		}
	}

	if p.lex.Equals(lexer.Equals) {
		p.parsePropertyDefault(&prop)
	} else {
		if !p.lex.Check(lexer.Semicolon) {
			return
		}
		p.Shader.Properties = append(p.Shader.Properties, prop)
		return
	}

	if !p.lex.Expect(lexer.Semicolon) {
		return
	}
	p.Shader.Properties = append(p.Shader.Properties, prop)
}

// parsePropertyKind reads a property type name. Texture1D/2D/3D are
// split by the lexer's number grammar into a leading Number token
// ("1","2","3") followed by an Identifier "D" — this re-joins them,
// per spec.md §4.5.
func (p *Parser) parsePropertyKind() (PropertyKind, bool) {
	tok := p.lex.Next()
	switch tok.Kind {
	case lexer.Identifier:
		switch tok.Text {
		case "Float":
			return PropertyFloat, true
		case "Int":
			return PropertyInt, true
		case "Range":
			return PropertyRange, true
		case "Color":
			return PropertyColor, true
		case "Vector":
			return PropertyVector, true
		case "Volume":
			return PropertyTextureVolume, true
		default:
			return PropertyUnknown, false
		}
	case lexer.Number:
		digit := tok.Text
		next := p.lex.Next()
		if next.Kind != lexer.Identifier || next.Text != "D" {
			return PropertyUnknown, false
		}
		switch digit {
		case "1":
			return PropertyTexture1D, true
		case "2":
			return PropertyTexture2D, true
		case "3":
			return PropertyTexture3D, true
		default:
			return PropertyUnknown, false
		}
	default:
		return PropertyUnknown, false
	}
}

func (p *Parser) parsePropertyDefault(prop *Property) {
	switch prop.Kind {
	case PropertyFloat, PropertyInt, PropertyRange:
		tok := p.lex.Next()
		if tok.Kind != lexer.Number {
			return
		}
		prop.HasDefaultNumber = true
		prop.DefaultNumber = uint32(p.data.Len() - 1)
	case PropertyTexture1D, PropertyTexture2D, PropertyTexture3D, PropertyTextureVolume:
		tok := p.lex.Next()
		if tok.Kind != lexer.String {
			return
		}
		prop.DefaultTexture = unquote(tok.Text)
	default:
		// Color/Vector defaults are parsed but never emitted in v1, per
		// spec.md §9 open question (d). Consume the single token that
		// follows '=' as a no-op placeholder.
		p.lex.Next()
	}
}
