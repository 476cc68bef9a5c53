package hfxgen

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"testing"

	"github.com/gogpu/hfx/gfx"
)

func TestSynthesizeLocalConstantsLayout(t *testing.T) {
	src := `shader S {
		properties {
			scale("Scale", Float) = 2.0;
			power("Power", Float) = 4.0;
			albedo("Albedo", 2D(wrap)) = "white.png";
		}
	}`
	shader, data := parseShader(t, src)
	g := NewGenerator(shader, data, fakeFS{}, ".", "out", log.New(&bytes.Buffer{}, "", 0))

	if !bytes.Contains([]byte(g.local.GLSL), []byte("float scale;")) {
		t.Fatalf("glsl missing scale field:\n%s", g.local.GLSL)
	}
	if !bytes.Contains([]byte(g.local.GLSL), []byte("float power;")) {
		t.Fatalf("glsl missing power field:\n%s", g.local.GLSL)
	}
	if bytes.Contains([]byte(g.local.GLSL), []byte("albedo")) {
		t.Fatalf("non-Float property should not get a GLSL field:\n%s", g.local.GLSL)
	}

	// Two Float members plus 2 words of tail padding to reach a
	// multiple of 4, per spec.md §4.7.
	wantTailPadding := uint32(2)
	wantSize := (2 + wantTailPadding) * 4
	if g.local.Size != wantSize {
		t.Fatalf("size = %d, want %d", g.local.Size, wantSize)
	}

	if g.local.Offsets[0] != 0 {
		t.Fatalf("scale offset = %d, want 0", g.local.Offsets[0])
	}
	if g.local.Offsets[1] != 4 {
		t.Fatalf("power offset = %d, want 4", g.local.Offsets[1])
	}

	defaults := g.local.Defaults
	kind := binary.LittleEndian.Uint32(defaults[0:4])
	if kind != uint32(gfx.ResourceKindConstants) {
		t.Fatalf("defaults kind = %d, want %d", kind, gfx.ResourceKindConstants)
	}
	size := binary.LittleEndian.Uint32(defaults[4:8])
	if size != wantSize {
		t.Fatalf("defaults size field = %d, want %d", size, wantSize)
	}

	scaleBits := binary.LittleEndian.Uint32(defaults[8:12])
	if got := math.Float32frombits(scaleBits); got != 2.0 {
		t.Fatalf("scale default = %v, want 2.0", got)
	}
	powerBits := binary.LittleEndian.Uint32(defaults[12:16])
	if got := math.Float32frombits(powerBits); got != 4.0 {
		t.Fatalf("power default = %v, want 4.0", got)
	}
}

func TestSynthesizeLocalConstantsEmpty(t *testing.T) {
	shader, data := parseShader(t, `shader S { }`)
	g := NewGenerator(shader, data, fakeFS{}, ".", "out", log.New(&bytes.Buffer{}, "", 0))

	if g.local.GLSL != "" {
		t.Fatalf("expected no GLSL block for a shader with no properties, got:\n%s", g.local.GLSL)
	}
	if len(g.local.Defaults) != 4 {
		t.Fatalf("defaults = %d bytes, want 4 (num_resources=0 only)", len(g.local.Defaults))
	}
}

// tailPaddingNeverZero documents that tailPadding = 4 - (gpuAlign % 4)
// always lands in [1,4], never 0, for every property count up to 8.
func TestTailPaddingNeverZero(t *testing.T) {
	for n := 0; n <= 8; n++ {
		gpuAlign := uint32(n)
		tailPadding := 4 - (gpuAlign % 4)
		if tailPadding == 0 || tailPadding > 4 {
			t.Fatalf("n=%d: tailPadding = %d, want in [1,4]", n, tailPadding)
		}
	}
}
