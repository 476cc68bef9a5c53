// Package hfx implements the HFX shader-effect language: parsing
// shaders (passes, properties, resource lists, vertex layouts, render
// and sampler states, and embedded code fragments) into an AST, with
// `includes { }` resolution performed by recursively re-parsing
// included HFX files and merging their fragments into the parent.
// `#pragma include` paths inside code fragments are only recorded here.
package hfx

import "github.com/gogpu/hfx/gfx"

// FragmentID, ResourceListID, VertexLayoutID, RenderStateID, and
// SamplerStateID index into their owning Shader's arenas. They are
// never resolved to pointers until a code-gen read site projects them,
// per the arena-by-index strategy — this is what makes re-entrant
// include parsing (which appends to these same arenas) safe.
type FragmentID int
type ResourceListID int
type VertexLayoutID int
type RenderStateID int
type SamplerStateID int

// NoID marks an unset optional reference.
const NoID = -1

// PropertyKind classifies a material property's editor/binding shape.
type PropertyKind uint8

const (
	PropertyUnknown PropertyKind = iota
	PropertyFloat
	PropertyInt
	PropertyRange
	PropertyColor
	PropertyVector
	PropertyTexture1D
	PropertyTexture2D
	PropertyTexture3D
	PropertyTextureVolume
)

// Property is one entry of a shader's `properties { }` block.
type Property struct {
	Name        string
	UIName      string
	UIArguments []string
	Kind        PropertyKind

	// Scalar defaults (Float, Int, Range) record the NumberBuffer index
	// of the parsed default literal.
	HasDefaultNumber  bool
	DefaultNumber     uint32
	DefaultTexture    string // Texture* kinds: the default asset path literal
	OffsetInBytes     uint32 // not written by the parser or hfxgen; hfxgen keeps block offsets in its own table
	DataIndex         uint32
}

// FragmentResource is an implicitly-detected resource, discovered by
// scanning a code fragment's raw text for `uniform image2D`/`uniform
// sampler2D` declarations.
type FragmentResource struct {
	Kind gfx.ResourceKind
	Name string
}

// IncludeFlags packs the target stage into the low nibble and whether
// the include is a local (include_hfx) reference into bit 4.
type IncludeFlags uint32

const localIncludeBit IncludeFlags = 1 << 4

func MakeIncludeFlags(stage gfx.ShaderStage, local bool) IncludeFlags {
	f := IncludeFlags(stage) & 0xF
	if local {
		f |= localIncludeBit
	}
	return f
}

func (f IncludeFlags) Stage() gfx.ShaderStage { return gfx.ShaderStage(f & 0xF) }
func (f IncludeFlags) IsLocal() bool          { return f&localIncludeBit != 0 }

// stageSlot maps the three ifdef-trackable stages onto a dense index
// for CodeFragment.StageIfdefDepth, per spec.md §3/§4.9's STAGE_COUNT.
const stageIfdefSlots = 3

func stageSlot(s gfx.ShaderStage) (int, bool) {
	switch s {
	case gfx.StageVertex:
		return 0, true
	case gfx.StageFragment:
		return 1, true
	case gfx.StageCompute:
		return 2, true
	default:
		return 0, false
	}
}

// NoDepth marks an unset stage-ifdef-depth slot.
const NoDepth uint32 = 0xFFFFFFFF

// CodeFragment is a named, verbatim block of shader source captured
// from a `glsl name { }` declaration, plus the includes and implicit
// resources discovered while scanning it.
type CodeFragment struct {
	Name         string
	Includes     []string
	IncludeFlags []IncludeFlags
	Resources    []FragmentResource
	Code         string

	CurrentStage      gfx.ShaderStage
	IfdefDepth        uint32
	StageIfdefDepth   [stageIfdefSlots]uint32
}

// ResourceBinding is one entry of a resource list.
type ResourceBinding struct {
	Kind gfx.ResourceKind
	Name string
}

// ResourceList is a named, ordered set of resource bindings. Flags is
// a parallel per-binding reserved word, always zero in this version —
// the HFX grammar has no per-entry qualifier syntax.
type ResourceList struct {
	Name      string
	Resources []ResourceBinding
	Flags     []uint32
}

// VertexStream describes one vertex-buffer binding slot.
type VertexStream struct {
	Binding   uint32
	Stride    uint32
	InputRate gfx.VertexInputRate
}

// VertexAttribute describes one vertex shader input.
type VertexAttribute struct {
	Name     string
	Format   gfx.VertexComponentFormat
	Binding  uint32
	Location uint32
	Offset   uint32
}

// VertexLayout is a named group of streams and attributes.
type VertexLayout struct {
	Name       string
	Streams    []VertexStream
	Attributes []VertexAttribute
}

// BlendMode is the reduced v1 blend-state vocabulary accepted by
// `render_states { }`; Premultiplied and Additive are parsed but
// reserved placeholders, per spec.md §4.5.
type BlendMode uint8

const (
	BlendModeNone BlendMode = iota
	BlendModeAlpha
	BlendModePremultiplied
	BlendModeAdditive
)

// RenderState is a named rasterizer/depth-stencil/blend bundle.
// ActiveStates counts how many of Cull/ZTest/ZWrite/BlendMode were
// actually set in the source; a pass's has_resource_state bit in the
// binary container is true only when ActiveStates > 0.
type RenderState struct {
	Name         string
	Cull         gfx.CullMode
	ZTest        gfx.ComparisonFunction
	ZWrite       bool
	Blend        BlendMode
	ActiveStates int
}

// SamplerState is a named texture sampling configuration.
type SamplerState struct {
	Name     string
	Filter   gfx.TextureFilter
	AddressU gfx.TextureAddressMode
	AddressV gfx.TextureAddressMode
	AddressW gfx.TextureAddressMode
}

// PassStage binds one shader stage of a Pass to a code fragment.
type PassStage struct {
	Fragment FragmentID
	Stage    gfx.ShaderStage
}

// Pass is a named group of shader stages plus the bindings, vertex
// layout, and render state it uses.
type Pass struct {
	Name            string
	StageName       string
	ShaderStages    []PassStage
	ResourceLists   []ResourceListID
	VertexLayout    VertexLayoutID
	RenderState     RenderStateID
}

// Shader is the root of a parsed HFX AST.
type Shader struct {
	Name                 string
	PipelineName         string
	Passes               []Pass
	Properties           []Property
	ResourceLists        []ResourceList
	VertexLayouts        []VertexLayout
	RenderStates         []RenderState
	SamplerStates        []SamplerState
	CodeFragments        []CodeFragment
	HasLocalResourceList bool
}

// FindCodeFragment performs a linear scan by name, per spec.md §4.5.
func (s *Shader) FindCodeFragment(name string) (FragmentID, bool) {
	for i := range s.CodeFragments {
		if s.CodeFragments[i].Name == name {
			return FragmentID(i), true
		}
	}
	return 0, false
}

// FindResourceList performs a linear scan by name.
func (s *Shader) FindResourceList(name string) (ResourceListID, bool) {
	for i := range s.ResourceLists {
		if s.ResourceLists[i].Name == name {
			return ResourceListID(i), true
		}
	}
	return 0, false
}

// FindProperty performs a linear scan by name.
func (s *Shader) FindProperty(name string) (int, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// FindVertexLayout performs a linear scan by name.
func (s *Shader) FindVertexLayout(name string) (VertexLayoutID, bool) {
	for i := range s.VertexLayouts {
		if s.VertexLayouts[i].Name == name {
			return VertexLayoutID(i), true
		}
	}
	return 0, false
}

// FindRenderState performs a linear scan by name.
func (s *Shader) FindRenderState(name string) (RenderStateID, bool) {
	for i := range s.RenderStates {
		if s.RenderStates[i].Name == name {
			return RenderStateID(i), true
		}
	}
	return 0, false
}

// FindSamplerState performs a linear scan by name.
func (s *Shader) FindSamplerState(name string) (SamplerStateID, bool) {
	for i := range s.SamplerStates {
		if s.SamplerStates[i].Name == name {
			return SamplerStateID(i), true
		}
	}
	return 0, false
}
