package lexer

import (
	"testing"

	"github.com/gogpu/hfx/numbuf"
)

func TestPunctuation(t *testing.T) {
	src := "(){}[]<>:;*=#,"
	want := []Kind{
		OpenParen, CloseParen, OpenBrace, CloseBrace,
		OpenBracket, CloseBracket, OpenAngle, CloseAngle,
		Colon, Semicolon, Asterisk, Equals, Hash, Comma, EndOfStream,
	}
	l := New(src, numbuf.New())
	for i, k := range want {
		tok := l.Next()
		if tok.Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tok.Kind, k)
		}
	}
}

func TestIdentifierAndString(t *testing.T) {
	l := New(`hello_world "a string \" with escape"`, numbuf.New())
	tok := l.Next()
	if tok.Kind != Identifier || tok.Text != "hello_world" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	tok = l.Next()
	if tok.Kind != String {
		t.Fatalf("got %v, want String", tok.Kind)
	}
}

func TestNumberLiteralFidelity(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"-1.5", -1.5},
		{"003.14", 3.14},
		{"42", 42.0},
	}
	for _, c := range cases {
		nb := numbuf.New()
		l := New(c.src, nb)
		tok := l.Next()
		if tok.Kind != Number {
			t.Fatalf("%q: got kind %v, want Number", c.src, tok.Kind)
		}
		got := nb.Get(uint32(nb.Len() - 1))
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.src, got, c.want)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	src := "a // line comment\nb /* block\ncomment */ c"
	l := New(src, numbuf.New())
	var idents []string
	for {
		tok := l.Next()
		if tok.Kind == EndOfStream {
			break
		}
		idents = append(idents, tok.Text)
	}
	want := []string{"a", "b", "c"}
	if len(idents) != len(want) {
		t.Fatalf("got %v, want %v", idents, want)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("idents[%d] = %q, want %q", i, idents[i], want[i])
		}
	}
}

func TestStickyError(t *testing.T) {
	l := New("( ; {", numbuf.New())
	if !l.Expect(OpenParen) {
		t.Fatal("expected OpenParen to succeed")
	}
	if l.Expect(OpenBrace) {
		t.Fatal("expected mismatch against Semicolon to fail")
	}
	if !l.HasError() {
		t.Fatal("expected sticky error to be set")
	}
	firstErrorLine := l.ErrorLine()

	// Subsequent Expect calls succeed trivially without advancing.
	if !l.Expect(OpenBracket) {
		t.Fatal("expected sticky success")
	}
	if !l.Expect(Colon) {
		t.Fatal("expected sticky success")
	}
	if l.ErrorLine() != firstErrorLine {
		t.Fatalf("error line changed: got %d, want %d", l.ErrorLine(), firstErrorLine)
	}
}

func TestLexerIdempotence(t *testing.T) {
	src := `shader Test { properties { scale("Scale", Float) = 2.0; } }`
	collect := func() []string {
		nb := numbuf.New()
		l := New(src, nb)
		var out []string
		for {
			tok := l.Next()
			if tok.Kind == EndOfStream {
				break
			}
			if tok.Kind == Identifier || tok.Kind == Number {
				out = append(out, tok.Text)
			}
		}
		return out
	}
	a := collect()
	b := collect()
	if len(a) != len(b) {
		t.Fatalf("len mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("token %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}
