package hdf

import (
	"fmt"
	"strings"
)

var primitiveGoNames = [numPrimitives]string{
	"int32", "uint32", "int16", "uint16", "int8", "uint8",
	"int64", "uint64", "float32", "float64", "bool",
}

// scalarReflectable reports whether a primitive kind gets a numeric
// input widget in reflect_members (every primitive except Bool, which
// gets a checkbox instead).
func scalarReflectable(p PrimitiveKind) bool { return p != Bool }

// CodeGenOptions controls optional output of CodeGen.Generate.
type CodeGenOptions struct {
	// EmitReflection emits a ReflectMembers/ReflectUI pair per struct,
	// calling into a UI collaborator rather than a concrete widget
	// toolkit — the UI layer itself is out of scope for this module.
	EmitReflection bool
}

// DefaultCodeGenOptions mirrors the source toolchain's default of
// always generating the UI reflection scaffolding.
func DefaultCodeGenOptions() CodeGenOptions {
	return CodeGenOptions{EmitReflection: true}
}

// CodeGen emits a single Go source text mirroring the exportable
// entries of a Table: structs become records, enums become a value
// set plus bitmask plus a name table, and commands become a tagged
// union namespace.
type CodeGen struct {
	Options CodeGenOptions
}

// NewCodeGen returns a CodeGen with the given options.
func NewCodeGen(opts CodeGenOptions) *CodeGen {
	return &CodeGen{Options: opts}
}

// Generate emits Go source text for every exportable entry in table,
// in declaration order. Non-exportable entries (command case structs)
// are emitted inline as part of their owning command.
func (g *CodeGen) Generate(table *Table) string {
	var out strings.Builder
	for i := range table.Entries {
		e := &table.Entries[i]
		if !e.Exportable {
			continue
		}
		switch e.Kind {
		case KindStruct:
			g.writeStruct(&out, table, e)
		case KindEnum:
			g.writeEnum(&out, e)
		case KindCommand:
			g.writeCommand(&out, table, e)
		}
	}
	return out.String()
}

func (g *CodeGen) writeStruct(out *strings.Builder, table *Table, e *Entry) {
	var ui strings.Builder
	if g.Options.EmitReflection {
		fmt.Fprintf(&ui, "func (v *%s) ReflectMembers(ui UIReflector) {\n", e.Name)
	}

	fmt.Fprintf(out, "type %s struct {\n", e.Name)
	for i, memberName := range e.MemberNames {
		member := table.At(e.MemberTypes[i])
		switch member.Kind {
		case KindPrimitive:
			fmt.Fprintf(out, "\t%s %s\n", title(memberName), primitiveGoNames[member.Primitive])
			if g.Options.EmitReflection {
				if scalarReflectable(member.Primitive) {
					fmt.Fprintf(&ui, "\tui.InputScalar(%q, &v.%s)\n", memberName, title(memberName))
				} else {
					fmt.Fprintf(&ui, "\tui.Checkbox(%q, &v.%s)\n", memberName, title(memberName))
				}
			}
		case KindEnum:
			fmt.Fprintf(out, "\t%s %sEnum\n", title(memberName), member.Name)
			if g.Options.EmitReflection {
				fmt.Fprintf(&ui, "\tui.Combo(%q, (*int32)(&v.%s), %sNames[:])\n", memberName, title(memberName), member.Name)
			}
		case KindStruct:
			fmt.Fprintf(out, "\t%s %s\n", title(memberName), member.Name)
			if g.Options.EmitReflection {
				fmt.Fprintf(&ui, "\tui.Text(%q)\n\tv.%s.ReflectMembers(ui)\n", memberName, title(memberName))
			}
		}
	}
	out.WriteString("}\n\n")

	if g.Options.EmitReflection {
		ui.WriteString("}\n\n")
		fmt.Fprintf(&ui, "func (v *%s) ReflectUI(ui UIReflector) {\n\tui.Begin(%q)\n\tv.ReflectMembers(ui)\n\tui.End()\n}\n\n", e.Name, e.Name)
		out.WriteString(ui.String())
	}
}

// writeEnum emits (a) a typed value set plus Count, (b) a parallel
// bitmask, (c) a string table, (d) a String method. Empty enums are
// skipped entirely.
func (g *CodeGen) writeEnum(out *strings.Builder, e *Entry) {
	if len(e.MemberNames) == 0 {
		return
	}

	fmt.Fprintf(out, "type %sEnum int32\n\n", e.Name)
	fmt.Fprintf(out, "const (\n")
	for i, name := range e.MemberNames {
		if i == 0 {
			fmt.Fprintf(out, "\t%s%s %sEnum = iota\n", e.Name, name, e.Name)
		} else {
			fmt.Fprintf(out, "\t%s%s\n", e.Name, name)
		}
	}
	fmt.Fprintf(out, "\t%sCount\n)\n\n", e.Name)

	fmt.Fprintf(out, "const (\n")
	for i, name := range e.MemberNames {
		fmt.Fprintf(out, "\t%s%sMask %sEnum = 1 << %d\n", e.Name, name, e.Name, i)
	}
	fmt.Fprintf(out, "\t%sCountMask %sEnum = 1 << %d\n)\n\n", e.Name, e.Name, len(e.MemberNames))

	fmt.Fprintf(out, "var %sNames = [...]string{\n", e.Name)
	for _, name := range e.MemberNames {
		fmt.Fprintf(out, "\t%q,\n", name)
	}
	out.WriteString("}\n\n")

	fmt.Fprintf(out, "func (v %sEnum) String() string {\n\treturn %sNames[v]\n}\n\n", e.Name, e.Name)
}

// writeCommand emits a namespace-shaped group of declarations: a Type
// enum naming each case, one struct per case, and a GetType method
// on each case returning its own tag.
func (g *CodeGen) writeCommand(out *strings.Builder, table *Table, e *Entry) {
	fmt.Fprintf(out, "type %sType uint32\n\n", e.Name)
	fmt.Fprintf(out, "const (\n")
	for i, name := range e.CaseNames {
		if i == 0 {
			fmt.Fprintf(out, "\t%sType%s %sType = iota\n", e.Name, name, e.Name)
		} else {
			fmt.Fprintf(out, "\t%sType%s\n", e.Name, name)
		}
	}
	out.WriteString(")\n\n")

	for i, caseID := range e.CaseTypes {
		caseEntry := table.At(caseID)
		fmt.Fprintf(out, "type %s struct {\n", caseEntry.Name)
		for j, memberName := range caseEntry.MemberNames {
			member := table.At(caseEntry.MemberTypes[j])
			switch member.Kind {
			case KindPrimitive:
				fmt.Fprintf(out, "\t%s %s\n", title(memberName), primitiveGoNames[member.Primitive])
			case KindEnum:
				fmt.Fprintf(out, "\t%s %sEnum\n", title(memberName), member.Name)
			case KindStruct:
				fmt.Fprintf(out, "\t%s %s\n", title(memberName), member.Name)
			}
		}
		out.WriteString("}\n\n")
		fmt.Fprintf(out, "func (%s) GetType() %sType { return %sType%s }\n\n",
			caseEntry.Name, e.Name, e.Name, e.CaseNames[i])
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
