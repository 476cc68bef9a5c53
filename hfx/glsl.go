package hfx

import (
	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/lexer"
)

// declarationCodeFragment parses `glsl name { raw-text }`, capturing
// the body verbatim while still tokenizing it to discover #-directives
// and implicit uniform resources, per spec.md §4.5/§4.9.
func (p *Parser) declarationCodeFragment() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	frag := CodeFragment{Name: name, CurrentStage: gfx.StageCount}
	for i := range frag.StageIfdefDepth {
		frag.StageIfdefDepth[i] = NoDepth
	}

	bodyStart := p.lex.Pos()
	bodyEnd := bodyStart
	depth := 1
	for depth > 0 {
		tok := p.lex.Next()
		if tok.Kind == lexer.EndOfStream {
			break
		}
		switch {
		case tok.Kind == lexer.OpenBrace:
			depth++
		case tok.Kind == lexer.CloseBrace:
			depth--
			if depth == 0 {
				continue
			}
		case tok.Kind == lexer.Hash:
			p.scanDirective(&frag)
		case tok.Kind == lexer.Identifier && tok.Text == "uniform":
			p.scanUniformResource(&frag)
		}
		if depth > 0 {
			bodyEnd = p.lex.Pos()
		}
	}
	frag.Code = p.lex.Source()[bodyStart:bodyEnd]

	p.Shader.CodeFragments = append(p.Shader.CodeFragments, frag)
}

func (p *Parser) scanDirective(frag *CodeFragment) {
	tok := p.lex.Next()
	if tok.Kind != lexer.Identifier {
		return
	}
	switch tok.Text {
	case "if":
		p.scanIfDefined(frag)
	case "endif":
		p.scanEndif(frag)
	case "pragma":
		p.scanPragma(frag)
	}
}

func (p *Parser) scanIfDefined(frag *CodeFragment) {
	tok := p.lex.Next()
	if tok.Kind != lexer.Identifier || tok.Text != "defined" {
		return
	}
	stageTok := p.lex.Next()
	if stageTok.Kind != lexer.Identifier {
		return
	}
	stage, ok := stageNameFromDirective(stageTok.Text)
	if !ok {
		return
	}

	frag.IfdefDepth++
	if slot, ok := stageSlot(stage); ok {
		frag.StageIfdefDepth[slot] = frag.IfdefDepth
	}
	frag.CurrentStage = stage
}

func (p *Parser) scanEndif(frag *CodeFragment) {
	for slot := range frag.StageIfdefDepth {
		if frag.StageIfdefDepth[slot] == frag.IfdefDepth {
			frag.StageIfdefDepth[slot] = NoDepth
			frag.CurrentStage = gfx.StageCount
		}
	}
	if frag.IfdefDepth > 0 {
		frag.IfdefDepth--
	}
}

func (p *Parser) scanPragma(frag *CodeFragment) {
	tok := p.lex.Next()
	if tok.Kind != lexer.Identifier {
		return
	}
	switch tok.Text {
	case "include":
		p.scanPragmaInclude(frag, false)
	case "include_hfx":
		p.scanPragmaInclude(frag, true)
	}
}

func (p *Parser) scanPragmaInclude(frag *CodeFragment, local bool) {
	tok := p.lex.Next()
	if tok.Kind != lexer.String {
		return
	}
	path := unquote(tok.Text)
	frag.Includes = append(frag.Includes, path)
	frag.IncludeFlags = append(frag.IncludeFlags, MakeIncludeFlags(frag.CurrentStage, local))
}

func (p *Parser) scanUniformResource(frag *CodeFragment) {
	typeTok := p.lex.Next()
	if typeTok.Kind != lexer.Identifier {
		return
	}

	var resourceKind gfx.ResourceKind
	switch typeTok.Text {
	case "image2D":
		resourceKind = gfx.ResourceKindTextureRW
	case "sampler2D":
		resourceKind = gfx.ResourceKindTexture
	default:
		return
	}

	nameTok := p.lex.Next()
	if nameTok.Kind != lexer.Identifier {
		return
	}

	frag.Resources = append(frag.Resources, FragmentResource{Kind: resourceKind, Name: nameTok.Text})
}
