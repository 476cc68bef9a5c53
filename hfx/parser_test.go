package hfx

import (
	"bytes"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

// mapFileSystem is an in-memory FileSystem for tests that need to
// resolve includes without touching disk.
type mapFileSystem map[string][]byte

func (m mapFileSystem) ReadFile(path string) ([]byte, error) {
	if data, ok := m[path]; ok {
		return data, nil
	}
	return nil, errNotFound(path)
}
func (m mapFileSystem) WriteFile(path string, data []byte) error { m[path] = data; return nil }
func (m mapFileSystem) Stat(path string) (FileStamp, error)      { return FileStamp{}, errNotFound(path) }

type errNotFound string

func (e errNotFound) Error() string { return "not found: " + string(e) }

func parse(t *testing.T, src string, fs FileSystem) *Parser {
	t.Helper()
	nb := numbuf.New()
	lx := lexer.New(src, nb)
	if fs == nil {
		fs = mapFileSystem{}
	}
	p := NewParser(lx, nb, fs, ".", log.New(&bytes.Buffer{}, "", 0))
	p.GenerateAST()
	return p
}

func TestOnePropertyOnePass(t *testing.T) {
	src := `shader Tint {
		properties {
			scale("Scale", Float) = 2.0;
		}
		glsl tint_frag {
			uniform sampler2D albedo;
			void main() {}
		}
		pass main {
			fragment = tint_frag
			stage = opaque
		}
	}`
	p := parse(t, src, nil)
	if p.lex.HasError() {
		t.Fatalf("unexpected sticky error at line %d", p.lex.ErrorLine())
	}
	if len(p.Shader.Properties) != 1 {
		t.Fatalf("properties = %v", p.Shader.Properties)
	}
	prop := p.Shader.Properties[0]
	if prop.Kind != PropertyFloat || !prop.HasDefaultNumber {
		t.Fatalf("property = %+v", prop)
	}
	if got := p.data.Get(prop.DefaultNumber); got != 2.0 {
		t.Fatalf("default = %v, want 2.0", got)
	}

	fragID, ok := p.Shader.FindCodeFragment("tint_frag")
	if !ok {
		t.Fatal("tint_frag not found")
	}
	frag := p.Shader.CodeFragments[fragID]
	if len(frag.Resources) != 1 || frag.Resources[0].Kind != gfx.ResourceKindTexture || frag.Resources[0].Name != "albedo" {
		t.Fatalf("resources = %v", frag.Resources)
	}

	if len(p.Shader.Passes) != 1 {
		t.Fatalf("passes = %v", p.Shader.Passes)
	}
	pass := p.Shader.Passes[0]
	if pass.StageName != "opaque" || len(pass.ShaderStages) != 1 {
		t.Fatalf("pass = %+v", pass)
	}
	if pass.ShaderStages[0].Fragment != fragID || pass.ShaderStages[0].Stage != gfx.StageFragment {
		t.Fatalf("pass stage = %+v", pass.ShaderStages[0])
	}
}

func TestIfdefBalance(t *testing.T) {
	src := `shader S {
		glsl body {
			#if defined VERTEX
			vec4 pos;
			#endif
			#if defined FRAGMENT
			vec4 col;
			#endif
		}
	}`
	p := parse(t, src, nil)
	frag := p.Shader.CodeFragments[0]
	if frag.IfdefDepth != 0 {
		t.Fatalf("ifdef_depth = %d, want 0", frag.IfdefDepth)
	}
	for slot, depth := range frag.StageIfdefDepth {
		if depth != NoDepth {
			t.Fatalf("stage_ifdef_depth[%d] = %d, want NoDepth", slot, depth)
		}
	}
	if frag.CurrentStage != gfx.StageCount {
		t.Fatalf("current_stage = %v, want Count", frag.CurrentStage)
	}
}

func TestPragmaIncludeFlags(t *testing.T) {
	src := `shader S {
		glsl body {
			#if defined FRAGMENT
			#pragma include "common.glsl"
			#pragma include_hfx "lib_chunk"
			#endif
		}
	}`
	p := parse(t, src, nil)
	frag := p.Shader.CodeFragments[0]
	if len(frag.Includes) != 2 {
		t.Fatalf("includes = %v", frag.Includes)
	}
	if frag.Includes[0] != "common.glsl" || frag.IncludeFlags[0].IsLocal() {
		t.Fatalf("include 0 = %q flags=%v", frag.Includes[0], frag.IncludeFlags[0])
	}
	if frag.Includes[1] != "lib_chunk" || !frag.IncludeFlags[1].IsLocal() {
		t.Fatalf("include 1 = %q flags=%v", frag.Includes[1], frag.IncludeFlags[1])
	}
	if frag.IncludeFlags[0].Stage() != gfx.StageFragment {
		t.Fatalf("include 0 stage = %v", frag.IncludeFlags[0].Stage())
	}
}

func TestIncludesMergeRenaming(t *testing.T) {
	fs := mapFileSystem{
		"lib.hfx": []byte(`shader Lib {
			glsl lib_fragment { void main() {} }
		}`),
	}
	src := `shader P {
		includes { "lib.hfx" }
	}`
	p := parse(t, src, fs)
	if _, ok := p.Shader.FindCodeFragment("lib_fragment"); ok {
		t.Fatal("bare name should not be reachable after merge")
	}
	if _, ok := p.Shader.FindCodeFragment("P.lib_fragment"); !ok {
		t.Fatal("P.lib_fragment should be reachable after merge")
	}
}

func TestRenderStateActiveStates(t *testing.T) {
	src := `shader S {
		render_states {
			state Opaque {
				Cull Back
				ZWrite On
			}
		}
	}`
	p := parse(t, src, nil)
	id, ok := p.Shader.FindRenderState("Opaque")
	if !ok {
		t.Fatal("Opaque not found")
	}
	rs := p.Shader.RenderStates[id]
	if rs.ActiveStates != 2 || rs.Cull != gfx.CullBack || !rs.ZWrite {
		t.Fatalf("render state = %+v", rs)
	}
}

func TestTexture2DPropertyDefault(t *testing.T) {
	src := `shader S {
		properties {
			albedo("Albedo", 2D(wrap)) = "white.png";
		}
	}`
	p := parse(t, src, nil)
	if len(p.Shader.Properties) != 1 {
		t.Fatalf("properties = %v", p.Shader.Properties)
	}
	prop := p.Shader.Properties[0]
	if prop.Kind != PropertyTexture2D || prop.DefaultTexture != "white.png" {
		t.Fatalf("property = %+v", prop)
	}
	if len(prop.UIArguments) != 1 || prop.UIArguments[0] != "wrap" {
		t.Fatalf("ui args = %v", prop.UIArguments)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := `shader S {
		properties {
			scale("Scale", Float) = 2.0;
		}
		glsl body {
			uniform sampler2D albedo;
			void main() {}
		}
		pass main {
			fragment = body
			stage = opaque
		}
	}`
	a := parse(t, src, nil).Shader
	b := parse(t, src, nil).Shader
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("parsing the same source twice produced different ASTs (-first +second):\n%s", diff)
	}
}

func TestStickyErrorAbandonsPass(t *testing.T) {
	src := `shader S {
		pass broken {
			fragment missing_equals
		}
	}`
	p := parse(t, src, nil)
	if !p.lex.HasError() {
		t.Fatal("expected sticky lexer error")
	}
}
