package hdf

import (
	"strings"
	"testing"

	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

func parse(t *testing.T, src string) *Parser {
	t.Helper()
	nb := numbuf.New()
	lx := lexer.New(src, nb)
	p := NewParser(lx, nb, 32)
	p.GenerateAST()
	return p
}

func TestEmptyEnumSkipped(t *testing.T) {
	p := parse(t, `enum Empty : int { }`)
	gen := NewCodeGen(CodeGenOptions{EmitReflection: false})
	out := gen.Generate(p.Table)
	if strings.Contains(out, "Empty") {
		t.Fatalf("expected no output for empty enum, got:\n%s", out)
	}
}

func TestStructTwoFields(t *testing.T) {
	p := parse(t, `struct Vec2 { float x; float y; }`)
	id, ok := p.FindType("Vec2")
	if !ok {
		t.Fatal("Vec2 not found in type table")
	}
	entry := p.Table.At(id)
	if entry.Kind != KindStruct {
		t.Fatalf("kind = %v, want KindStruct", entry.Kind)
	}
	if len(entry.MemberNames) != 2 || entry.MemberNames[0] != "x" || entry.MemberNames[1] != "y" {
		t.Fatalf("members = %v", entry.MemberNames)
	}
	for _, mt := range entry.MemberTypes {
		if p.Table.At(mt).Primitive != Float {
			t.Fatalf("expected float members")
		}
	}

	gen := NewCodeGen(DefaultCodeGenOptions())
	out := gen.Generate(p.Table)
	if !strings.Contains(out, "type Vec2 struct {") {
		t.Fatalf("missing struct decl:\n%s", out)
	}
	if !strings.Contains(out, "X float32") || !strings.Contains(out, "Y float32") {
		t.Fatalf("missing fields:\n%s", out)
	}
	if !strings.Contains(out, "ReflectMembers") {
		t.Fatalf("missing reflection scaffolding:\n%s", out)
	}
}

func TestEnumBitmaskAndStrings(t *testing.T) {
	p := parse(t, `enum CullMode { Back, Front, None }`)
	gen := NewCodeGen(CodeGenOptions{})
	out := gen.Generate(p.Table)
	for _, want := range []string{
		"CullModeBack", "CullModeFront", "CullModeNone", "CullModeCount",
		"CullModeBackMask", "CullModeNames", "func (v CullModeEnum) String()",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCommand(t *testing.T) {
	p := parse(t, `command Draw {
		Triangle { int32 count; }
		Line { int32 count; }
	}`)
	id, ok := p.FindType("Draw")
	if !ok {
		t.Fatal("Draw not found")
	}
	entry := p.Table.At(id)
	if entry.Kind != KindCommand {
		t.Fatalf("kind = %v, want KindCommand", entry.Kind)
	}
	if len(entry.CaseNames) != 2 {
		t.Fatalf("cases = %v", entry.CaseNames)
	}
	for _, caseID := range entry.CaseTypes {
		if p.Table.At(caseID).Exportable {
			t.Fatalf("case struct should not be exportable")
		}
	}

	gen := NewCodeGen(CodeGenOptions{})
	out := gen.Generate(p.Table)
	if !strings.Contains(out, "DrawTypeTriangle") || !strings.Contains(out, "func (Triangle) GetType() DrawType") {
		t.Fatalf("missing command scaffolding:\n%s", out)
	}
}

func TestStickyErrorAbandonsDeclaration(t *testing.T) {
	// Missing semicolon after first member: the declaration is
	// abandoned, and the sticky flag prevents cascading damage.
	p := parse(t, `struct Bad { float x int32 y; }`)
	if !p.lex.HasError() {
		t.Fatal("expected sticky lexer error")
	}
}
