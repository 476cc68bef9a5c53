package hfxgen

// Byte sizes of the binary effect container's fixed-width records, per
// spec.md §6. All multi-byte fields are little-endian; name fields are
// fixed-width with trailing zeros.
const (
	nameWidth = 32

	sizeHeader = 4 + 4 + 4 + nameWidth + nameWidth + nameWidth // num_passes, resource_defaults_offset, properties_offset, name, magic, pipeline_name

	sizePassHeader = 1 + 1 + 1 + 1 + 2 + 2 + 4 + nameWidth + nameWidth

	sizeRasterization = 4 // cull:u8, fill:u8, front_ccw:u8, pad:u8
	sizeDepthStencil  = 4 // z_test:u8, z_write:u8, pad:u16
	sizeBlendState    = 4 // blend_mode:u8, pad[3]
	sizeRenderStates  = sizeRasterization + sizeDepthStencil + sizeBlendState

	sizeVertexAttribute = 2 + 2 + 2 + 2 + nameWidth // format, binding, location, offset, name
	sizeVertexStream     = 2 + 2 + 2 + 2             // binding, stride, input_rate, pad

	sizeShaderChunkListEntry = 4 + 4 // start, size
	sizeChunkHeader          = 4 + 1 // code_size, shader_stage

	sizeBinding = 2 + 2 + 2 + 2 + nameWidth // kind, start, count, set, name

	sizeMaterialProperty = 4 + 2 + 64 // kind, offset, name[64]
)
