package hfx

import (
	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/lexer"
)

// declarationLayout parses `layout { list name { ... } | vertex name
// { ... } }`, per spec.md §4.5.
func (p *Parser) declarationLayout() {
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
		switch tok.Text {
		case "list":
			p.declarationResourceList()
		case "vertex":
			p.declarationVertexLayout()
		}
		if p.lex.HasError() {
			return
		}
	}
}

func (p *Parser) declarationResourceList() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	list := ResourceList{Name: name}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}

		var kind gfx.ResourceKind
		switch tok.Text {
		case "cbuffer":
			kind = gfx.ResourceKindConstants
		case "texture2D":
			kind = gfx.ResourceKindTexture
		case "texture2Drw":
			kind = gfx.ResourceKindTextureRW
		case "sampler2D":
			kind = gfx.ResourceKindSampler
		default:
			continue
		}

		if !p.lex.Expect(lexer.Identifier) {
			return
		}
		list.Resources = append(list.Resources, ResourceBinding{Kind: kind, Name: p.lex.Last().Text})
		list.Flags = append(list.Flags, 0)
	}

	p.Shader.ResourceLists = append(p.Shader.ResourceLists, list)
}

func (p *Parser) declarationVertexLayout() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	layout := VertexLayout{Name: name}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		switch tok.Text {
		case "attribute":
			p.vertexAttribute(&layout)
		case "binding":
			p.vertexBinding(&layout)
		}
		if p.lex.HasError() {
			return
		}
	}

	p.Shader.VertexLayouts = append(p.Shader.VertexLayouts, layout)
}

// vertexAttribute parses "attribute type name binding location offset
// rate". The trailing rate token is applied to the stream declared
// for that binding index, if one has been parsed already; VertexAttribute
// itself carries no per-attribute rate field, per spec.md §3.
func (p *Parser) vertexAttribute(layout *VertexLayout) {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	formatName := p.lex.Last().Text

	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	binding, ok := p.expectUint32()
	if !ok {
		return
	}
	location, ok := p.expectUint32()
	if !ok {
		return
	}
	offset, ok := p.expectUint32()
	if !ok {
		return
	}

	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	rate := vertexInputRateFromName(p.lex.Last().Text)

	layout.Attributes = append(layout.Attributes, VertexAttribute{
		Name:     name,
		Format:   vertexFormatFromName(formatName),
		Binding:  binding,
		Location: location,
		Offset:   offset,
	})

	for i := range layout.Streams {
		if layout.Streams[i].Binding == binding {
			layout.Streams[i].InputRate = rate
			break
		}
	}
}

// vertexBinding parses "binding index stride".
func (p *Parser) vertexBinding(layout *VertexLayout) {
	index, ok := p.expectUint32()
	if !ok {
		return
	}
	stride, ok := p.expectUint32()
	if !ok {
		return
	}
	layout.Streams = append(layout.Streams, VertexStream{
		Binding:   index,
		Stride:    stride,
		InputRate: gfx.InputRatePerVertex,
	})
}

func (p *Parser) expectUint32() (uint32, bool) {
	if !p.lex.Expect(lexer.Number) {
		return 0, false
	}
	return uint32(p.data.Get(uint32(p.data.Len() - 1))), true
}
