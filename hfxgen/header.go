package hfxgen

import (
	"fmt"
	"strings"

	"github.com/gogpu/hfx/hfx"
)

// GenerateHeader renders the generated host-language header for the
// generator's shader: a LocalConstants struct mirroring the std140
// block, a LocalConstantsUI editing struct, a reflect_members/
// reflect_ui pair, and a LocalConstantsBuffer façade over gfx.GraphicsDevice.
func (g *Generator) GenerateHeader() []byte {
	var b strings.Builder

	name := g.Shader.Name
	fmt.Fprintf(&b, "// Code generated by hfxc from %s.hfx; DO NOT EDIT.\n\n", name)
	fmt.Fprintf(&b, "package %s\n\n", strings.ToLower(name))
	b.WriteString("import (\n\t\"encoding/binary\"\n\t\"math\"\n\n\t\"github.com/gogpu/hfx/gfx\"\n)\n\n")

	g.writeLocalConstantsStruct(&b)
	g.writeLocalConstantsUI(&b)
	g.writeReflection(&b)
	g.writeBufferFacade(&b)

	return []byte(b.String())
}

func (g *Generator) writeLocalConstantsStruct(b *strings.Builder) {
	b.WriteString("// LocalConstants mirrors the std140 uniform block at binding 7.\n")
	b.WriteString("type LocalConstants struct {\n")
	tail := 0
	for _, prop := range g.Shader.Properties {
		if prop.Kind != hfx.PropertyFloat {
			continue
		}
		fmt.Fprintf(b, "\t%s float32\n", exportedName(prop.Name))
		tail++
	}
	padding := 4 - (tail % 4)
	fmt.Fprintf(b, "\tPadTail [%d]float32\n", padding)
	b.WriteString("}\n\n")
}

func (g *Generator) writeLocalConstantsUI(b *strings.Builder) {
	b.WriteString("// LocalConstantsUI holds editable values for each property, by UI name.\n")
	b.WriteString("type LocalConstantsUI struct {\n")
	for _, prop := range g.Shader.Properties {
		fmt.Fprintf(b, "\t%s float32 // %s\n", exportedName(prop.Name), prop.UIName)
	}
	b.WriteString("}\n\n")
}

func (g *Generator) writeReflection(b *strings.Builder) {
	fmt.Fprintf(b, "// ReflectMembers%s lists every numeric field for editor scaffolding.\n", g.Shader.Name)
	fmt.Fprintf(b, "func ReflectMembers%s() []string {\n\treturn []string{\n", g.Shader.Name)
	for _, prop := range g.Shader.Properties {
		if prop.Kind != hfx.PropertyFloat {
			continue
		}
		fmt.Fprintf(b, "\t\t%q,\n", prop.Name)
	}
	b.WriteString("\t}\n}\n\n")

	fmt.Fprintf(b, "// ReflectUI%s renders one numeric-input widget call per property.\n", g.Shader.Name)
	fmt.Fprintf(b, "// Widgets are stub calls into the out-of-scope UI collaborator.\n")
	fmt.Fprintf(b, "func ReflectUI%s(ui *LocalConstantsUI) {\n", g.Shader.Name)
	for _, prop := range g.Shader.Properties {
		if prop.Kind != hfx.PropertyFloat {
			continue
		}
		fmt.Fprintf(b, "\t// ui.InputFloat(%q, &ui.%s)\n", prop.UIName, exportedName(prop.Name))
	}
	b.WriteString("}\n\n")
}

func (g *Generator) writeBufferFacade(b *strings.Builder) {
	b.WriteString("// LocalConstantsBuffer wraps a device-side constant buffer.\n")
	b.WriteString("type LocalConstantsBuffer struct {\n")
	b.WriteString("\thandle gfx.BufferHandle\n")
	b.WriteString("\tdevice gfx.GraphicsDevice\n")
	b.WriteString("}\n\n")

	b.WriteString("// Create allocates the device-side buffer from the generated defaults.\n")
	b.WriteString("func (buf *LocalConstantsBuffer) Create(device gfx.GraphicsDevice, defaults []byte) error {\n")
	b.WriteString("\thandle, err := device.CreateConstantBuffer(len(defaults), defaults)\n")
	b.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
	b.WriteString("\tbuf.device = device\n\tbuf.handle = handle\n\treturn nil\n")
	b.WriteString("}\n\n")

	b.WriteString("// Destroy releases the device-side buffer.\n")
	b.WriteString("func (buf *LocalConstantsBuffer) Destroy() {\n\tbuf.device.DestroyBuffer(buf.handle)\n}\n\n")

	g.writeUpdateUI(b)
}

// writeUpdateUI emits UpdateUI, which packs the UI struct's fields
// into the same std140 byte layout as the generated defaults blob and
// pushes it to the device.
func (g *Generator) writeUpdateUI(b *strings.Builder) {
	floatCount := 0
	for _, prop := range g.Shader.Properties {
		if prop.Kind == hfx.PropertyFloat {
			floatCount++
		}
	}
	padding := 4 - (floatCount % 4)
	total := floatCount + padding

	b.WriteString("// UpdateUI packs edited UI values into the std140 layout and pushes them to the device.\n")
	b.WriteString("func (buf *LocalConstantsBuffer) UpdateUI(ui *LocalConstantsUI) error {\n")
	fmt.Fprintf(b, "\tvar raw [%d]byte\n", total*4)
	offset := 0
	for _, prop := range g.Shader.Properties {
		if prop.Kind != hfx.PropertyFloat {
			continue
		}
		fmt.Fprintf(b, "\tbinary.LittleEndian.PutUint32(raw[%d:], math.Float32bits(ui.%s))\n", offset, exportedName(prop.Name))
		offset += 4
	}
	b.WriteString("\treturn buf.device.UpdateBuffer(buf.handle, raw[:])\n")
	b.WriteString("}\n")
}

// exportedName capitalizes the first letter of an HFX property name so
// it can be used as a Go struct field.
func exportedName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
