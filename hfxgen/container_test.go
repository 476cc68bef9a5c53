package hfxgen

import (
	"bytes"
	"log"
	"testing"

	"github.com/gogpu/hfx/effect"
	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/hfx"
	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

type fakeFS map[string][]byte

func (f fakeFS) ReadFile(path string) ([]byte, error) {
	if data, ok := f[path]; ok {
		return data, nil
	}
	return nil, errNotFoundTest(path)
}
func (f fakeFS) WriteFile(path string, data []byte) error { f[path] = data; return nil }
func (f fakeFS) Stat(path string) (hfx.FileStamp, error) {
	return hfx.FileStamp{ModUnixNano: 1700000000, ContentHash: 0xdeadbeef}, nil
}

type errNotFoundTest string

func (e errNotFoundTest) Error() string { return "not found: " + string(e) }

func parseShader(t *testing.T, src string) (*hfx.Shader, *numbuf.Buffer) {
	t.Helper()
	nb := numbuf.New()
	lx := lexer.New(src, nb)
	p := hfx.NewParser(lx, nb, fakeFS{}, ".", log.New(&bytes.Buffer{}, "", 0))
	p.GenerateAST()
	return p.Shader, nb
}

func TestWriteBinaryRoundTrip(t *testing.T) {
	src := `shader Tint {
		properties {
			scale("Scale", Float) = 2.0;
			power("Power", Float) = 4.0;
		}
		glsl tint_frag {
			uniform sampler2D albedo;
			void main() {}
		}
		render_states {
			state Opaque {
				Cull Back
				ZWrite On
			}
		}
		pass main {
			fragment = tint_frag
			render_states = Opaque
			stage = opaque
		}
	}`
	shader, data := parseShader(t, src)

	fs := fakeFS{}
	g := NewGenerator(shader, data, fs, ".", "out", log.New(&bytes.Buffer{}, "", 0))

	bin, err := g.WriteBinary("tint.hfx")
	if err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	r := effect.New(bin)
	hdr := r.Header()
	if hdr.NumPasses != 1 {
		t.Fatalf("num_passes = %d, want 1", hdr.NumPasses)
	}
	if hdr.Name != "Tint" {
		t.Fatalf("name = %q, want Tint", hdr.Name)
	}

	pass := r.Pass(0)
	if pass.Name != "main" || pass.StageName != "opaque" {
		t.Fatalf("pass = %+v", pass)
	}
	if pass.NumShaderChunks != 1 {
		t.Fatalf("num_shader_chunks = %d, want 1", pass.NumShaderChunks)
	}
	if pass.HasResourceState == 0 {
		t.Fatal("expected has_resource_state set")
	}

	chunk := r.ShaderCreation(pass, 0)
	if chunk.Stage != gfx.StageFragment {
		t.Fatalf("stage = %v, want Fragment", chunk.Stage)
	}
	if len(chunk.Code) == 0 || chunk.Code[len(chunk.Code)-1] != 0 {
		t.Fatalf("code not NUL-terminated: %q", chunk.Code)
	}
	if !bytes.Contains(chunk.Code, []byte("#define FRAGMENT\r\n")) {
		t.Fatalf("missing stage define: %q", chunk.Code)
	}
	if !bytes.Contains(chunk.Code, []byte("LocalConstants")) {
		t.Fatalf("missing local constants block: %q", chunk.Code)
	}

	pipeline := r.Pipeline(pass)
	if !pipeline.HasRenderState || pipeline.Rasterization.Cull != gfx.CullBack {
		t.Fatalf("pipeline render state = %+v", pipeline)
	}
	if !pipeline.DepthStencil.ZWrite {
		t.Fatal("expected z_write true")
	}

	bindings := r.PassLayoutBindings(pass, 0)
	if len(bindings) != 2 {
		t.Fatalf("bindings = %v, want 2 (LocalConstants + albedo)", bindings)
	}
	if bindings[0].Name != "LocalConstants" || bindings[0].Kind != gfx.ResourceKindConstants {
		t.Fatalf("binding 0 = %+v", bindings[0])
	}
	if bindings[1].Name != "albedo" || bindings[1].Kind != gfx.ResourceKindTexture {
		t.Fatalf("binding 1 = %+v", bindings[1])
	}

	prop0 := r.Property(hdr.PropertiesOffset, 0)
	if prop0.Name != "scale" || prop0.Kind != uint32(hfx.PropertyFloat) {
		t.Fatalf("property 0 = %+v", prop0)
	}
	prop1 := r.Property(hdr.PropertiesOffset, 1)
	if prop1.Name != "power" || prop1.Offset == prop0.Offset {
		t.Fatalf("property 1 = %+v", prop1)
	}

	if out := r.Property(hdr.PropertiesOffset, 99); out != (effect.MaterialProperty{}) {
		t.Fatalf("out-of-range property should be zero value, got %+v", out)
	}
}

func TestAutoLayoutIncludesLocalConstants(t *testing.T) {
	src := `shader S {
		glsl f {
			uniform sampler2D tex;
			void main() {}
		}
		pass p {
			fragment = f
			stage = opaque
		}
	}`
	shader, data := parseShader(t, src)
	g := NewGenerator(shader, data, fakeFS{}, ".", "out", log.New(&bytes.Buffer{}, "", 0))

	list := g.autoLayoutResources(&shader.Passes[0])
	if len(list.Resources) != 2 {
		t.Fatalf("auto layout resources = %v", list.Resources)
	}
	if list.Resources[0].Name != "LocalConstants" {
		t.Fatalf("resources[0] = %+v", list.Resources[0])
	}
	if list.Resources[1].Name != "tex" || list.Resources[1].Kind != gfx.ResourceKindTexture {
		t.Fatalf("resources[1] = %+v", list.Resources[1])
	}
}
