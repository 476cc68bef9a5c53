package hfxgen

import (
	"fmt"
	"strings"

	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/hfx"
)

// localConstants holds the result of synthesizing a shader's std140
// uniform block and parallel defaults blob, per spec.md §4.7.
type localConstants struct {
	GLSL     string
	Defaults []byte
	Size     uint32
	// Offsets[i] is the byte offset of Properties[i] inside the block,
	// valid only when Properties[i].Kind == hfx.PropertyFloat.
	Offsets []uint32
}

// synthesizeLocalConstants walks props in declaration order, emitting
// a `float` field plus default value for every scalar-Float property;
// other kinds are reserved placeholders in v1, per spec.md §4.7/§9(d).
func (g *Generator) synthesizeLocalConstants() localConstants {
	props := g.Shader.Properties
	offsets := make([]uint32, len(props))

	if len(props) == 0 {
		return localConstants{Defaults: u32Bytes(0), Offsets: offsets}
	}

	var glsl strings.Builder
	glsl.WriteString("layout (std140, binding=7) uniform LocalConstants {\n")

	blob := newBinWriter()
	blob.U32(uint32(gfx.ResourceKindConstants))
	sizeSlot := blob.Len()
	blob.U32(0) // back-patched below

	gpuAlign := uint32(0)
	for i, prop := range props {
		if prop.Kind != hfx.PropertyFloat {
			continue
		}
		fmt.Fprintf(&glsl, "\tfloat %s;\n", prop.Name)

		value := float32(0)
		if prop.HasDefaultNumber {
			value = float32(g.Data.Get(prop.DefaultNumber))
		}
		blob.F32(value)

		offsets[i] = gpuAlign * 4
		gpuAlign++
	}

	tailPadding := 4 - (gpuAlign % 4)
	fmt.Fprintf(&glsl, "\tfloat pad_tail[%d];\n", tailPadding)
	glsl.WriteString("};\n")

	for i := uint32(0); i < tailPadding; i++ {
		blob.F32(0)
	}

	size := (gpuAlign + tailPadding) * 4
	blob.U32At(sizeSlot, size)

	return localConstants{GLSL: glsl.String(), Defaults: blob.Bytes(), Size: size, Offsets: offsets}
}

func u32Bytes(v uint32) []byte {
	w := newBinWriter()
	w.U32(v)
	return w.Bytes()
}
