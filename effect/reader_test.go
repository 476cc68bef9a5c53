package effect

import "testing"

func TestReaderOnEmptyBuffer(t *testing.T) {
	r := New(nil)

	if hdr := r.Header(); hdr != (Header{}) {
		t.Fatalf("Header() on empty data = %+v, want zero value", hdr)
	}
	if pass := r.Pass(0); pass != (PassHeader{}) {
		t.Fatalf("Pass(0) on empty data = %+v, want zero value", pass)
	}
}

func TestReaderOnTruncatedBuffer(t *testing.T) {
	// A header claiming one pass, but with no bytes behind it: every
	// accessor must fall back to a zero value rather than index past
	// the slice.
	data := make([]byte, sizeHeader)
	data[0] = 1 // num_passes = 1, little-endian

	r := New(data)
	hdr := r.Header()
	if hdr.NumPasses != 1 {
		t.Fatalf("num_passes = %d, want 1", hdr.NumPasses)
	}

	pass := r.Pass(0)
	if pass != (PassHeader{}) {
		t.Fatalf("Pass(0) with a dangling offset = %+v, want zero value", pass)
	}

	if out := r.ShaderCreation(pass, 0); len(out.Code) != 0 {
		t.Fatalf("ShaderCreation on a zero pass returned code: %+v", out)
	}
	if out := r.PassLayoutBindings(pass, 0); out != nil {
		t.Fatalf("PassLayoutBindings on a zero pass = %v, want nil", out)
	}
	if out := r.Property(0, 0); out != (MaterialProperty{}) {
		t.Fatalf("Property with no PropertiesBlock = %+v, want zero value", out)
	}
}

func TestReaderOutOfRangeIndices(t *testing.T) {
	data := make([]byte, sizeHeader)
	r := New(data)

	pass := r.Pass(5) // only 0 passes declared
	if pass != (PassHeader{}) {
		t.Fatalf("Pass(5) on a header with 0 passes = %+v, want zero value", pass)
	}
	if out := r.ShaderCreation(pass, -1); out.CodeSize != 0 || len(out.Code) != 0 {
		t.Fatalf("ShaderCreation(-1) = %+v, want zero value", out)
	}
	if out := r.PassLayoutBindings(pass, -1); out != nil {
		t.Fatalf("PassLayoutBindings(-1) = %v, want nil", out)
	}
}
