// Package effect implements the Effect Reader: read-only access to the
// bit-exact binary effect container hfxgen writes, per spec.md §4.8/§6.
// Every accessor treats an out-of-range offset defensively, returning
// an empty view or zeroed default, and never traps.
package effect

import (
	"encoding/binary"

	"github.com/gogpu/hfx/gfx"
)

const nameWidth = 32

const (
	sizeHeader     = 4 + 4 + 4 + nameWidth + nameWidth + nameWidth
	sizePassHeader = 1 + 1 + 1 + 1 + 2 + 2 + 4 + nameWidth + nameWidth

	sizeRasterization = 4
	sizeDepthStencil  = 4
	sizeBlendState    = 4
	sizeRenderStates  = sizeRasterization + sizeDepthStencil + sizeBlendState

	sizeVertexAttribute = 2 + 2 + 2 + 2 + nameWidth
	sizeVertexStream    = 2 + 2 + 2 + 2

	sizeChunkHeader = 4 + 1

	sizeBinding = 2 + 2 + 2 + 2 + nameWidth

	sizeMaterialProperty = 4 + 2 + 64
)

// Header is the fixed-size file header at offset 0.
type Header struct {
	NumPasses             uint32
	ResourceDefaultsOffset uint32
	PropertiesOffset      uint32
	Name                  string
	PipelineName          string
}

// PassHeader describes one pass's fixed-size section header, plus the
// absolute file offset its section starts at (needed by every other
// accessor, since shader_list_offset/resource_table_offset/chunk
// starts are all pass-relative).
type PassHeader struct {
	NumShaderChunks     uint8
	NumVertexStreams    uint8
	NumVertexAttributes uint8
	NumResourceLayouts  uint8
	HasResourceState    uint16
	ShaderListOffset    uint16
	ResourceTableOffset uint32
	Name                string
	StageName           string

	base int // absolute offset of this pass's section
}

// ShaderCreation is the result of shader_creation(pass, i).
type ShaderCreation struct {
	Stage    gfx.ShaderStage
	CodeSize uint32
	Code     []byte // NUL-terminated source, including the terminator
}

// VertexAttribute mirrors the on-disk record.
type VertexAttribute struct {
	Format   gfx.VertexComponentFormat
	Binding  uint16
	Location uint16
	Offset   uint16
	Name     string
}

// VertexStream mirrors the on-disk record.
type VertexStream struct {
	Binding   uint16
	Stride    uint16
	InputRate gfx.VertexInputRate
}

// VertexInput is the result of vertex_input(pass).
type VertexInput struct {
	Attributes []VertexAttribute
	Streams    []VertexStream
}

// Rasterization mirrors the on-disk RenderStates sub-record.
type Rasterization struct {
	Cull gfx.CullMode
}

// DepthStencil mirrors the on-disk RenderStates sub-record.
type DepthStencil struct {
	ZTest  gfx.ComparisonFunction
	ZWrite bool
}

// BlendState mirrors the on-disk RenderStates sub-record.
type BlendState struct {
	BlendMode uint8
}

// PipelineSpec is the result of pipeline(pass).
type PipelineSpec struct {
	Name             string
	StageName        string
	Shaders          []ShaderCreation
	VertexInput      VertexInput
	HasRenderState   bool
	Rasterization    Rasterization
	DepthStencil     DepthStencil
	Blend            BlendState
	NumActiveLayouts int
}

// Binding mirrors the on-disk resource-layout binding record.
type Binding struct {
	Kind  gfx.ResourceKind
	Start uint16
	Count uint16
	Set   uint16
	Name  string
}

// MaterialProperty mirrors the on-disk PropertiesBlock entry.
type MaterialProperty struct {
	Kind   uint32
	Offset uint16
	Name   string
}

// Reader provides defensive, offset-based access to an in-memory
// binary effect container.
type Reader struct {
	data []byte
}

// New wraps data for reading. data is not copied or validated eagerly;
// every access is bounds-checked independently.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

func readString(data []byte, offset, width int) string {
	if offset < 0 || offset+width > len(data) {
		return ""
	}
	raw := data[offset : offset+width]
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}

func readU16(data []byte, offset int) uint16 {
	if offset < 0 || offset+2 > len(data) {
		return 0
	}
	return binary.LittleEndian.Uint16(data[offset:])
}

func readU32(data []byte, offset int) uint32 {
	if offset < 0 || offset+4 > len(data) {
		return 0
	}
	return binary.LittleEndian.Uint32(data[offset:])
}

func readU8(data []byte, offset int) uint8 {
	if offset < 0 || offset >= len(data) {
		return 0
	}
	return data[offset]
}

// Header reads the fixed-size file header at offset 0.
func (r *Reader) Header() Header {
	d := r.data
	return Header{
		NumPasses:              readU32(d, 0),
		ResourceDefaultsOffset: readU32(d, 4),
		PropertiesOffset:       readU32(d, 8),
		Name:                   readString(d, 8+4, nameWidth),
		PipelineName:           readString(d, 8+4+nameWidth+nameWidth, nameWidth),
	}
}

// Pass reads the PassHeader for pass index. Out-of-range index returns
// the zero PassHeader.
func (r *Reader) Pass(index int) PassHeader {
	hdr := r.Header()
	if index < 0 || uint32(index) >= hdr.NumPasses {
		return PassHeader{}
	}
	offsetSlot := sizeHeader + index*4
	if offsetSlot+4 > len(r.data) {
		return PassHeader{}
	}
	base := int(readU32(r.data, offsetSlot))
	return r.passHeaderAt(base)
}

func (r *Reader) passHeaderAt(base int) PassHeader {
	d := r.data
	if base < 0 || base+sizePassHeader > len(d) {
		return PassHeader{}
	}
	return PassHeader{
		NumShaderChunks:     readU8(d, base+0),
		NumVertexStreams:    readU8(d, base+1),
		NumVertexAttributes: readU8(d, base+2),
		NumResourceLayouts:  readU8(d, base+3),
		HasResourceState:    readU16(d, base+4),
		ShaderListOffset:    readU16(d, base+6),
		ResourceTableOffset: readU32(d, base+8),
		Name:                readString(d, base+12, nameWidth),
		StageName:           readString(d, base+12+nameWidth, nameWidth),
		base:                base,
	}
}

// renderStatesSize returns the byte size of the optional RenderStates
// block that sits immediately after the fixed PassHeader (0 if absent).
func renderStatesSize(pass PassHeader) int {
	if pass.HasResourceState == 0 {
		return 0
	}
	return sizeRenderStates
}

// vertexInputStart returns the absolute offset of the optional
// VertexInput block.
func vertexInputStart(pass PassHeader) int {
	return pass.base + sizePassHeader + renderStatesSize(pass)
}

// chunkListStart returns the absolute offset of the ShaderChunkList,
// derived from the pass-relative shader_list_offset.
func chunkListStart(pass PassHeader) int {
	return pass.base + sizePassHeader + int(pass.ShaderListOffset)
}

// ShaderCreation implements shader_creation(pass, i): walk the chunk
// list at pass + sizeof(PassHeader) + shader_list_offset, and read the
// i-th chunk. The chunk list's `start` field is itself pass-relative,
// per spec.md §6, so the chunk's absolute offset is simply pass.base
// + start.
func (r *Reader) ShaderCreation(pass PassHeader, i int) ShaderCreation {
	if i < 0 || i >= int(pass.NumShaderChunks) {
		return ShaderCreation{}
	}
	entryOffset := chunkListStart(pass) + i*8
	chunkStart := int(readU32(r.data, entryOffset))

	chunkAbs := pass.base + chunkStart

	codeSize := readU32(r.data, chunkAbs)
	stage := gfx.ShaderStage(int8(readU8(r.data, chunkAbs+4)))

	codeStart := chunkAbs + sizeChunkHeader
	codeEnd := codeStart + int(codeSize)
	if codeStart < 0 || codeEnd > len(r.data) {
		return ShaderCreation{Stage: stage, CodeSize: codeSize}
	}
	return ShaderCreation{Stage: stage, CodeSize: codeSize, Code: r.data[codeStart:codeEnd]}
}

// VertexInput implements vertex_input(pass).
func (r *Reader) VertexInput(pass PassHeader) VertexInput {
	base := vertexInputStart(pass)
	d := r.data

	var out VertexInput
	offset := base
	for i := 0; i < int(pass.NumVertexAttributes); i++ {
		out.Attributes = append(out.Attributes, VertexAttribute{
			Format:   gfx.VertexComponentFormat(readU16(d, offset)),
			Binding:  readU16(d, offset+2),
			Location: readU16(d, offset+4),
			Offset:   readU16(d, offset+6),
			Name:     readString(d, offset+8, nameWidth),
		})
		offset += sizeVertexAttribute
	}
	for i := 0; i < int(pass.NumVertexStreams); i++ {
		out.Streams = append(out.Streams, VertexStream{
			Binding:   readU16(d, offset),
			Stride:    readU16(d, offset+2),
			InputRate: gfx.VertexInputRate(readU16(d, offset+4)),
		})
		offset += sizeVertexStream
	}
	return out
}

// Pipeline implements pipeline(pass): shader stages, vertex input,
// optional rasterization/depth/blend state, and the active-layout
// count, all from one pass header.
func (r *Reader) Pipeline(pass PassHeader) PipelineSpec {
	spec := PipelineSpec{
		Name:             pass.Name,
		StageName:        pass.StageName,
		VertexInput:      r.VertexInput(pass),
		HasRenderState:   pass.HasResourceState != 0,
		NumActiveLayouts: int(pass.NumResourceLayouts),
	}
	for i := 0; i < int(pass.NumShaderChunks); i++ {
		spec.Shaders = append(spec.Shaders, r.ShaderCreation(pass, i))
	}
	if spec.HasRenderState {
		base := pass.base + sizePassHeader
		spec.Rasterization = Rasterization{Cull: gfx.CullMode(readU8(r.data, base))}
		spec.DepthStencil = DepthStencil{
			ZTest:  gfx.ComparisonFunction(readU8(r.data, base+4)),
			ZWrite: readU8(r.data, base+5) != 0,
		}
		spec.Blend = BlendState{BlendMode: readU8(r.data, base+8)}
	}
	return spec
}

// PassLayoutBindings implements pass_layout_bindings(pass, layout_index):
// walk layout_index layouts starting at pass + pass.resource_table_offset
// to reach the target layout's bindings.
func (r *Reader) PassLayoutBindings(pass PassHeader, layoutIndex int) []Binding {
	if layoutIndex < 0 || layoutIndex >= int(pass.NumResourceLayouts) {
		return nil
	}
	offset := pass.base + int(pass.ResourceTableOffset)
	for i := 0; i < layoutIndex; i++ {
		count := int(readU8(r.data, offset))
		offset += 1 + count*sizeBinding
	}
	count := int(readU8(r.data, offset))
	offset++

	bindings := make([]Binding, 0, count)
	for i := 0; i < count; i++ {
		bindings = append(bindings, Binding{
			Kind:  gfx.ResourceKind(readU16(r.data, offset)),
			Start: readU16(r.data, offset+2),
			Count: readU16(r.data, offset+4),
			Set:   readU16(r.data, offset+6),
			Name:  readString(r.data, offset+8, nameWidth),
		})
		offset += sizeBinding
	}
	return bindings
}

// Property implements property(properties_data, i), where
// properties_data is the file-absolute PropertiesBlock offset from the
// file header.
func (r *Reader) Property(propertiesOffset uint32, i int) MaterialProperty {
	base := int(propertiesOffset)
	count := int(readU32(r.data, base))
	if i < 0 || i >= count {
		return MaterialProperty{}
	}
	offset := base + 4 + i*sizeMaterialProperty
	return MaterialProperty{
		Kind:   readU32(r.data, offset),
		Offset: readU16(r.data, offset+4),
		Name:   readString(r.data, offset+6, 64),
	}
}
