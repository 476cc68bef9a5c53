package hfx

import "github.com/gogpu/hfx/lexer"

// declarationRenderStates parses `render_states { state name { ... }
// ... }`, per spec.md §4.5.
func (p *Parser) declarationRenderStates() {
	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind == lexer.Identifier && tok.Text == "state" {
			p.declarationRenderState()
		}
	}
}

func (p *Parser) declarationRenderState() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	state := RenderState{Name: name}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		switch tok.Text {
		case "Cull":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			state.Cull = cullModeFromName(p.lex.Last().Text)
			state.ActiveStates++
		case "ZTest":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			state.ZTest = comparisonFromName(p.lex.Last().Text)
			state.ActiveStates++
		case "ZWrite":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			state.ZWrite = p.lex.Last().Text == "On"
			state.ActiveStates++
		case "BlendMode":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			state.Blend = blendModeFromName(p.lex.Last().Text)
			state.ActiveStates++
		}
	}

	p.Shader.RenderStates = append(p.Shader.RenderStates, state)
}

// declarationSamplerStates parses `sampler_states { state name { ...
// } ... }`, per spec.md §4.5.
func (p *Parser) declarationSamplerStates() {
	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind == lexer.Identifier && tok.Text == "state" {
			p.declarationSamplerState()
		}
	}
}

func (p *Parser) declarationSamplerState() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	st := SamplerState{Name: name}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		switch tok.Text {
		case "Filter":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			st.Filter = filterFromName(p.lex.Last().Text)
		case "AddressU":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			st.AddressU = addressFromName(p.lex.Last().Text)
		case "AddressV":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			st.AddressV = addressFromName(p.lex.Last().Text)
		case "AddressW":
			if !p.lex.Expect(lexer.Identifier) {
				return
			}
			st.AddressW = addressFromName(p.lex.Last().Text)
		}
	}

	p.Shader.SamplerStates = append(p.Shader.SamplerStates, st)
}
