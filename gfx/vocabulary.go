// Package gfx holds the graphics-device enum vocabulary shared between
// the HFX front-end and whatever 3D backend eventually consumes a
// compiled effect. It is frozen and deliberately shallow — no method
// here talks to a device, a window, or a command buffer; it only names
// the concepts those collaborators deal in.
package gfx

//go:generate true

// Blend enumerates blend factors.
type Blend uint8

const (
	BlendZero Blend = iota
	BlendOne
	BlendSrcColor
	BlendInvSrcColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDestAlpha
	BlendInvDestAlpha
	BlendDestColor
	BlendInvDestColor
	BlendSrcAlphaSat
	BlendSrc1Color
	BlendInvSrc1Color
	BlendSrc1Alpha
	BlendInvSrc1Alpha
	BlendCount
)

var blendNames = [...]string{
	"Zero", "One", "SrcColor", "InvSrcColor", "SrcAlpha", "InvSrcAlpha",
	"DestAlpha", "InvDestAlpha", "DestColor", "InvDestColor", "SrcAlphaSat",
	"Src1Color", "InvSrc1Color", "Src1Alpha", "InvSrc1Alpha", "Count",
}

func (b Blend) String() string { return nameOrUnknown(blendNames[:], int(b)) }

// BlendOperation enumerates blend combine operations.
type BlendOperation uint8

const (
	BlendOperationAdd BlendOperation = iota
	BlendOperationSubtract
	BlendOperationRevSubtract
	BlendOperationMin
	BlendOperationMax
	BlendOperationCount
)

var blendOperationNames = [...]string{"Add", "Subtract", "RevSubtract", "Min", "Max", "Count"}

func (b BlendOperation) String() string { return nameOrUnknown(blendOperationNames[:], int(b)) }

// ColorWriteMask enumerates the RGBA channel write mask.
type ColorWriteMask uint8

const (
	ColorWriteRed   ColorWriteMask = 1 << 0
	ColorWriteGreen ColorWriteMask = 1 << 1
	ColorWriteBlue  ColorWriteMask = 1 << 2
	ColorWriteAlpha ColorWriteMask = 1 << 3
	ColorWriteAll   ColorWriteMask = ColorWriteRed | ColorWriteGreen | ColorWriteBlue | ColorWriteAlpha
)

// ComparisonFunction enumerates depth/stencil comparison functions.
type ComparisonFunction uint8

const (
	ComparisonNever ComparisonFunction = iota
	ComparisonLess
	ComparisonEqual
	ComparisonLessEqual
	ComparisonGreater
	ComparisonNotEqual
	ComparisonGreaterEqual
	ComparisonAlways
	ComparisonCount
)

var comparisonNames = [...]string{
	"Never", "Less", "Equal", "LessEqual", "Greater", "NotEqual", "GreaterEqual", "Always", "Count",
}

func (c ComparisonFunction) String() string { return nameOrUnknown(comparisonNames[:], int(c)) }

// CullMode enumerates rasterizer face culling.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullCount
)

var cullModeNames = [...]string{"None", "Front", "Back", "Count"}

func (c CullMode) String() string { return nameOrUnknown(cullModeNames[:], int(c)) }

// DepthWriteMask enumerates whether a depth-stencil state writes depth.
type DepthWriteMask uint8

const (
	DepthWriteZero DepthWriteMask = iota
	DepthWriteAll
	DepthWriteCount
)

// FillMode enumerates rasterizer polygon fill modes.
type FillMode uint8

const (
	FillWireframe FillMode = iota
	FillSolid
	FillPoint
	FillCount
)

// FrontClockwise selects the winding order considered front-facing.
type FrontClockwise uint8

const (
	FrontClockwiseTrue FrontClockwise = iota
	FrontClockwiseFalse
	FrontClockwiseCount
)

// StencilOperation enumerates stencil-buffer update operations.
type StencilOperation uint8

const (
	StencilKeep StencilOperation = iota
	StencilZero
	StencilReplace
	StencilIncrSat
	StencilDecrSat
	StencilInvert
	StencilIncr
	StencilDecr
	StencilCount
)

// TextureFormat enumerates pixel formats. This is a representative
// subset of the source toolchain's DXGI-style format table — every
// format actually referenced by a render-state, vertex-attribute, or
// resource-binding block in this module is present; the long tail of
// block-compressed and typeless variants is not, since nothing here
// emits or reads them.
type TextureFormat uint16

const (
	FormatUnknown TextureFormat = iota
	FormatR32G32B32A32Float
	FormatR32G32B32Float
	FormatR16G16B16A16Float
	FormatR32G32Float
	FormatR10G10B10A2Unorm
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8UnormSRGB
	FormatR16G16Float
	FormatR32Float
	FormatR8G8Unorm
	FormatR16Float
	FormatR8Unorm
	FormatD32Float
	FormatD24UnormS8Uint
	FormatD16Unorm
	FormatB8G8R8A8Unorm
	FormatCount
)

// TopologyType enumerates primitive topologies.
type TopologyType uint8

const (
	TopologyUnknown TopologyType = iota
	TopologyPoint
	TopologyLine
	TopologyTriangle
	TopologyPatch
	TopologyCount
)

// BufferType enumerates buffer usages.
type BufferType uint8

const (
	BufferVertex BufferType = iota
	BufferIndex
	BufferConstant
	BufferIndirect
	BufferCount
)

// ResourceUsageType enumerates resource update frequency.
type ResourceUsageType uint8

const (
	UsageImmutable ResourceUsageType = iota
	UsageDynamic
	UsageStream
	UsageCount
)

// IndexType enumerates index-buffer element widths.
type IndexType uint8

const (
	IndexUint16 IndexType = iota
	IndexUint32
	IndexCount
)

// TextureType enumerates texture dimensionality.
type TextureType uint8

const (
	TextureType1D TextureType = iota
	TextureType2D
	TextureType3D
	TextureType1DArray
	TextureType2DArray
	TextureTypeCubeArray
	TextureTypeCount
)

// ShaderStage enumerates pipeline stages. Its low-nibble encoding is
// reused verbatim by hfx.CodeFragment's include-flag packing.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageGeometry
	StageCompute
	StageHull
	StageDomain
	StageCount
)

var shaderStageNames = [...]string{"Vertex", "Fragment", "Geometry", "Compute", "Hull", "Domain", "Count"}

func (s ShaderStage) String() string { return nameOrUnknown(shaderStageNames[:], int(s)) }

// Extension returns the per-stage shader source file extension used by
// generated per-stage text files, per spec.md §4.6.
func (s ShaderStage) Extension() string {
	switch s {
	case StageVertex:
		return ".vert"
	case StageFragment:
		return ".frag"
	case StageGeometry:
		return ".geom"
	case StageCompute:
		return ".comp"
	case StageHull:
		return ".tesc"
	case StageDomain:
		return ".tese"
	default:
		return ".h"
	}
}

// Define returns the stage preprocessor define emitted in the finalize
// step of per-stage code generation, per spec.md §4.6 step 3.
func (s ShaderStage) Define() string {
	switch s {
	case StageVertex:
		return "#define VERTEX\r\n"
	case StageFragment:
		return "#define FRAGMENT\r\n"
	case StageGeometry:
		return "#define GEOMETRY\r\n"
	case StageCompute:
		return "#define COMPUTE\r\n"
	case StageHull:
		return "#define HULL\r\n"
	case StageDomain:
		return "#define DOMAIN\r\n"
	default:
		return "\r\n"
	}
}

// TextureFilter enumerates minification/magnification filtering.
type TextureFilter uint8

const (
	FilterNearest TextureFilter = iota
	FilterLinear
	FilterCount
)

// TextureMipFilter enumerates mip-level filtering.
type TextureMipFilter uint8

const (
	MipFilterNearest TextureMipFilter = iota
	MipFilterLinear
	MipFilterCount
)

// TextureAddressMode enumerates texture coordinate wrap behavior.
type TextureAddressMode uint8

const (
	AddressRepeat TextureAddressMode = iota
	AddressMirroredRepeat
	AddressClampEdge
	AddressClampBorder
	AddressCount
)

// VertexComponentFormat enumerates vertex attribute element formats.
type VertexComponentFormat uint8

const (
	VertexFormatFloat VertexComponentFormat = iota
	VertexFormatFloat2
	VertexFormatFloat3
	VertexFormatFloat4
	VertexFormatByte
	VertexFormatByte4N
	VertexFormatUByte
	VertexFormatUByte4N
	VertexFormatShort2
	VertexFormatShort2N
	VertexFormatShort4
	VertexFormatShort4N
	VertexFormatCount
)

// VertexInputRate enumerates per-vertex vs per-instance stepping.
type VertexInputRate uint8

const (
	InputRatePerVertex VertexInputRate = iota
	InputRatePerInstance
	InputRateCount
)

// LogicOperation enumerates framebuffer logic ops.
type LogicOperation uint8

const (
	LogicClear LogicOperation = iota
	LogicSet
	LogicCopy
	LogicCopyInverted
	LogicNoop
	LogicInvert
	LogicAnd
	LogicNand
	LogicOr
	LogicNor
	LogicXor
	LogicEquiv
	LogicAndReverse
	LogicAndInverted
	LogicOrReverse
	LogicOrInverted
	LogicCount
)

// QueueType enumerates the device queue a command list targets.
type QueueType uint8

const (
	QueueGraphics QueueType = iota
	QueueCompute
	QueueCopyTransfer
	QueueCount
)

// ResourceKind enumerates binding-table and resource-defaults record
// kinds. ResourceKindConstants is the tag written at the head of every
// resource-defaults entry by hfxgen's local-constants synthesis.
type ResourceKind uint32

const (
	ResourceKindSampler ResourceKind = iota
	ResourceKindTexture
	ResourceKindTextureRW
	ResourceKindConstants
	ResourceKindBuffer
	ResourceKindBufferRW
	ResourceKindCount
)

var resourceKindNames = [...]string{"Sampler", "Texture", "TextureRW", "Constants", "Buffer", "BufferRW", "Count"}

func (r ResourceKind) String() string { return nameOrUnknown(resourceKindNames[:], int(r)) }

func nameOrUnknown(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

// GraphicsDevice is the narrow collaborator interface a generated
// LocalConstantsBuffer calls into. This module never implements it —
// the 3D backend is an external collaborator per spec.md §1 — but the
// generated header needs a named type to compile against.
type GraphicsDevice interface {
	CreateConstantBuffer(sizeBytes int, initialData []byte) (BufferHandle, error)
	DestroyBuffer(handle BufferHandle)
	UpdateBuffer(handle BufferHandle, data []byte) error
}

// BufferHandle is an opaque device-side buffer reference.
type BufferHandle struct {
	ID uint32
}
