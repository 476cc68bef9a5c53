package hfxgen

import (
	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/hfx"
)

// binaryHeaderMagic is the fixed 32-byte staleness stamp written into
// Header.binary_header_magic: the source file's modification time in
// the first 8 bytes, a 64-bit content hash in the next 8, the
// remaining 16 reserved and zero.
func binaryHeaderMagic(stamp hfx.FileStamp) []byte {
	w := newBinWriter()
	w.I64(stamp.ModUnixNano)
	w.U64(stamp.ContentHash)
	w.RawBytes(make([]byte, nameWidth-16))
	return w.Bytes()
}

// WriteBinary assembles the bit-exact binary effect container for the
// generator's shader, per spec.md §6. sourcePath is the original .hfx
// file, read again only to stamp the header's staleness magic.
func (g *Generator) WriteBinary(sourcePath string) ([]byte, error) {
	stamp, err := g.FS.Stat(sourcePath)
	if err != nil {
		stamp = hfx.FileStamp{}
	}

	passSections := make([][]byte, len(g.Shader.Passes))
	for i := range g.Shader.Passes {
		passSections[i] = g.buildPassSection(&g.Shader.Passes[i])
	}

	w := newBinWriter()
	headerSlot := w.Reserve(sizeHeader)
	passOffsetsSlot := w.Reserve(4 * len(passSections))

	passAbsOffsets := make([]uint32, len(passSections))
	for i, section := range passSections {
		passAbsOffsets[i] = uint32(w.Len())
		w.RawBytes(section)
	}

	resourceDefaultsOffset := uint32(w.Len())
	w.U32(1) // v1 always writes exactly one ResourceDefaults entry
	w.RawBytes(g.local.Defaults)

	propertiesOffset := uint32(w.Len())
	g.writeProperties(w)

	header := newBinWriter()
	header.U32(uint32(len(g.Shader.Passes)))
	header.U32(resourceDefaultsOffset)
	header.U32(propertiesOffset)
	header.FixedString(g.Shader.Name, nameWidth)
	header.RawBytes(binaryHeaderMagic(stamp))
	header.FixedString(g.Shader.PipelineName, nameWidth)
	w.WriteAt(headerSlot, header.Bytes())

	for i, off := range passAbsOffsets {
		offW := newBinWriter()
		offW.U32(off)
		w.WriteAt(passOffsetsSlot+4*i, offW.Bytes())
	}

	return w.Bytes(), nil
}

func (g *Generator) writeProperties(w *binWriter) {
	props := g.Shader.Properties
	w.U32(uint32(len(props)))
	for i, prop := range props {
		w.U32(uint32(prop.Kind))
		offset := uint16(0)
		if prop.Kind == hfx.PropertyFloat {
			offset = uint16(g.local.Offsets[i])
		}
		w.U16(offset)
		w.FixedString(prop.Name, 64)
	}
}

// buildPassSection assembles one PassSection: PassHeader, optional
// RenderStates, optional VertexInput, ShaderChunkList, ShaderBodies,
// ResourceLayouts, per spec.md §6.
func (g *Generator) buildPassSection(pass *hfx.Pass) []byte {
	renderStates := g.buildRenderStates(pass)
	vertexInput, numAttrs, numStreams := g.buildVertexInput(pass)

	// chunkBodiesBase is the pass-relative byte offset ShaderBodies
	// starts at, computed before the bodies themselves so each chunk's
	// list entry can record a pass-relative start, per spec.md §6.
	numChunks := len(pass.ShaderStages)
	chunkListSize := numChunks * 8
	chunkBodiesBase := sizePassHeader + len(renderStates) + len(vertexInput) + chunkListSize

	chunkList, chunkBodies := g.buildShaderChunks(pass, chunkBodiesBase)
	resourceLayouts, numLayouts := g.buildResourceLayouts(pass)

	shaderListOffset := uint16(len(renderStates) + len(vertexInput))
	resourceTableOffset := uint32(sizePassHeader + len(renderStates) + len(vertexInput) + len(chunkList) + len(chunkBodies))

	hasResourceState := uint16(0)
	if len(renderStates) > 0 {
		hasResourceState = 1
	}

	h := newBinWriter()
	h.U8(uint8(numChunks))
	h.U8(uint8(numStreams))
	h.U8(uint8(numAttrs))
	h.U8(uint8(numLayouts))
	h.U16(hasResourceState)
	h.U16(shaderListOffset)
	h.U32(resourceTableOffset)
	h.FixedString(pass.Name, nameWidth)
	h.FixedString(pass.StageName, nameWidth)

	h.RawBytes(renderStates)
	h.RawBytes(vertexInput)
	h.RawBytes(chunkList)
	h.RawBytes(chunkBodies)
	h.RawBytes(resourceLayouts)
	return h.Bytes()
}

func (g *Generator) buildRenderStates(pass *hfx.Pass) []byte {
	if pass.RenderState == hfx.NoID {
		return nil
	}
	rs := g.Shader.RenderStates[pass.RenderState]
	if rs.ActiveStates == 0 {
		return nil
	}

	w := newBinWriter()
	// Rasterization: cull, fill (always solid in v1), front_ccw, pad.
	w.U8(uint8(rs.Cull))
	w.U8(uint8(gfx.FillSolid))
	w.U8(0)
	w.U8(0)

	// DepthStencil: z_test, z_write, pad:u16.
	zWrite := uint8(0)
	if rs.ZWrite {
		zWrite = 1
	}
	w.U8(uint8(rs.ZTest))
	w.U8(zWrite)
	w.U16(0)

	// BlendState: blend_mode, pad[3].
	w.U8(uint8(rs.Blend))
	w.U8(0)
	w.U8(0)
	w.U8(0)

	return w.Bytes()
}

func (g *Generator) buildVertexInput(pass *hfx.Pass) (data []byte, numAttrs, numStreams int) {
	if pass.VertexLayout == hfx.NoID {
		return nil, 0, 0
	}
	layout := g.Shader.VertexLayouts[pass.VertexLayout]

	w := newBinWriter()
	for _, attr := range layout.Attributes {
		w.U16(uint16(attr.Format))
		w.U16(uint16(attr.Binding))
		w.U16(uint16(attr.Location))
		w.U16(uint16(attr.Offset))
		w.FixedString(attr.Name, nameWidth)
	}
	for _, stream := range layout.Streams {
		w.U16(uint16(stream.Binding))
		w.U16(uint16(stream.Stride))
		w.U16(uint16(stream.InputRate))
		w.U16(0)
	}
	return w.Bytes(), len(layout.Attributes), len(layout.Streams)
}

// buildShaderChunks writes the ShaderBodies for pass and the
// ShaderChunkList entries pointing into them. chunkBodiesBase is the
// pass-relative offset ShaderBodies starts at, so each entry's `start`
// is pass-relative (`pass.base + start` locates the chunk directly),
// per spec.md §6.
func (g *Generator) buildShaderChunks(pass *hfx.Pass, chunkBodiesBase int) (list, bodies []byte) {
	type chunk struct {
		start uint32
		code  []byte
	}
	chunks := make([]chunk, 0, len(pass.ShaderStages))
	bodiesW := newBinWriter()
	for _, ps := range pass.ShaderStages {
		frag := &g.Shader.CodeFragments[ps.Fragment]
		code := g.finalizeCode(frag, ps.Stage, true)

		chunkStart := uint32(chunkBodiesBase + bodiesW.Len())
		bodiesW.U32(uint32(len(code)))
		bodiesW.I8(int8(ps.Stage))
		bodiesW.RawBytes(code)

		chunks = append(chunks, chunk{start: chunkStart, code: code})
	}

	listW := newBinWriter()
	for _, c := range chunks {
		listW.U32(c.start)
		listW.U32(uint32(sizeChunkHeader + len(c.code)))
	}
	return listW.Bytes(), bodiesW.Bytes()
}

func (g *Generator) buildResourceLayouts(pass *hfx.Pass) ([]byte, int) {
	lists := g.resourceListsForPass(pass)

	w := newBinWriter()
	for _, list := range lists {
		w.U8(uint8(len(list.Resources)))
		for i, binding := range list.Resources {
			w.U16(uint16(binding.Kind))
			w.U16(uint16(i)) // start
			w.U16(1)         // count
			w.U16(0)         // set
			w.FixedString(binding.Name, nameWidth)
		}
	}
	return w.Bytes(), len(lists)
}
