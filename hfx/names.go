package hfx

import "github.com/gogpu/hfx/gfx"

// The mapping helpers below translate HFX's textual state names onto
// the shared gfx vocabulary. Unrecognized names fall back to a zero
// value rather than an error: per spec.md's non-goals, this module
// does no type-checking beyond what the lexer's token grammar forces.

func stageNameFromDirective(name string) (gfx.ShaderStage, bool) {
	switch name {
	case "VERTEX":
		return gfx.StageVertex, true
	case "FRAGMENT":
		return gfx.StageFragment, true
	case "COMPUTE":
		return gfx.StageCompute, true
	default:
		return gfx.StageCount, false
	}
}

func cullModeFromName(name string) gfx.CullMode {
	switch name {
	case "Front":
		return gfx.CullFront
	case "Back":
		return gfx.CullBack
	default:
		return gfx.CullNone
	}
}

func comparisonFromName(name string) gfx.ComparisonFunction {
	switch name {
	case "Less":
		return gfx.ComparisonLess
	case "Greater":
		return gfx.ComparisonGreater
	case "LEqual":
		return gfx.ComparisonLessEqual
	case "GEqual":
		return gfx.ComparisonGreaterEqual
	case "Equal":
		return gfx.ComparisonEqual
	case "NotEqual":
		return gfx.ComparisonNotEqual
	case "Always":
		return gfx.ComparisonAlways
	default:
		return gfx.ComparisonNever
	}
}

func blendModeFromName(name string) BlendMode {
	switch name {
	case "Alpha":
		return BlendModeAlpha
	case "Premultiplied":
		return BlendModePremultiplied
	case "Additive":
		return BlendModeAdditive
	default:
		return BlendModeNone
	}
}

func filterFromName(name string) gfx.TextureFilter {
	switch name {
	case "MinMagMipLinear":
		return gfx.FilterLinear
	default:
		return gfx.FilterNearest
	}
}

func addressFromName(name string) gfx.TextureAddressMode {
	switch name {
	case "Clamp":
		return gfx.AddressClampEdge
	case "Border":
		return gfx.AddressClampBorder
	case "Mirror":
		return gfx.AddressMirroredRepeat
	default:
		return gfx.AddressRepeat
	}
}

func vertexFormatFromName(name string) gfx.VertexComponentFormat {
	switch name {
	case "float2":
		return gfx.VertexFormatFloat2
	case "float3":
		return gfx.VertexFormatFloat3
	case "float4":
		return gfx.VertexFormatFloat4
	case "byte":
		return gfx.VertexFormatByte
	case "byte4n":
		return gfx.VertexFormatByte4N
	case "ubyte":
		return gfx.VertexFormatUByte
	case "ubyte4n":
		return gfx.VertexFormatUByte4N
	case "short2":
		return gfx.VertexFormatShort2
	case "short2n":
		return gfx.VertexFormatShort2N
	case "short4":
		return gfx.VertexFormatShort4
	case "short4n":
		return gfx.VertexFormatShort4N
	default:
		return gfx.VertexFormatFloat
	}
}

func vertexInputRateFromName(name string) gfx.VertexInputRate {
	if name == "instance" {
		return gfx.InputRatePerInstance
	}
	return gfx.InputRatePerVertex
}

// unquote strips the surrounding quotes a lexer String token always
// carries (its Text includes them, per lexer.scanString). Escaped
// characters are copied through verbatim; HFX string literals only
// ever hold file paths and UI labels, never control characters that
// would need interpreting.
func unquote(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
