package hfxgen

import (
	"bytes"
	"path/filepath"

	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/hfx"
)

// finalizeCode assembles one shader stage's source text, per spec.md
// §4.6 steps 2-6 (step 1, the ChunkHeader, belongs to the binary
// embedding path and is written by the caller, not here).
func (g *Generator) finalizeCode(frag *hfx.CodeFragment, stage gfx.ShaderStage, embedded bool) []byte {
	var out bytes.Buffer

	for i, inc := range frag.Includes {
		flag := frag.IncludeFlags[i]
		if flag.Stage() != stage && flag.Stage() != gfx.StageCount {
			continue
		}
		if flag.IsLocal() {
			incID, ok := g.Shader.FindCodeFragment(inc)
			if !ok {
				g.Logger.Printf("hfxgen: local include %q not found in shader %q", inc, g.Shader.Name)
				continue
			}
			out.WriteString(g.Shader.CodeFragments[incID].Code)
			continue
		}
		data, err := g.FS.ReadFile(filepath.Join(g.InputDir, inc))
		if err != nil {
			g.Logger.Printf("hfxgen: include %q not found", inc)
			continue
		}
		out.Write(data)
	}

	out.WriteString("\n\t\t")
	out.WriteString(stage.Define())

	out.WriteString(g.local.GLSL)

	out.WriteString("\r\n\t\t")
	out.WriteString(frag.Code)

	if embedded {
		out.WriteByte(0)
	}

	return out.Bytes()
}

// perStageFileName returns "<shader>_<fragment>.<ext>", per spec.md §4.6.
func perStageFileName(shaderName string, frag *hfx.CodeFragment, stage gfx.ShaderStage) string {
	return shaderName + "_" + frag.Name + stage.Extension()
}
