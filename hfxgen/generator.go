// Package hfxgen implements the HFX code generator: per-stage shader
// text, the binary effect container, and the generated host-language
// local-constants header, per spec.md §4.6-§4.7 and §6.
package hfxgen

import (
	"log"
	"path/filepath"

	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/hfx"
	"github.com/gogpu/hfx/numbuf"
)

// Generator turns a parsed hfx.Shader into per-stage shader files, a
// binary effect container, and a generated host-language header. It
// borrows the AST read-only; all of its own state (the synthesized
// local-constants block) is derived once at construction.
type Generator struct {
	Shader   *hfx.Shader
	Data     *numbuf.Buffer
	FS       hfx.FileSystem
	InputDir string
	OutDir   string
	Logger   *log.Logger

	local localConstants
}

// NewGenerator returns a Generator for shader, synthesizing its local
// constants block immediately since every per-stage file and the
// binary container both need it.
func NewGenerator(shader *hfx.Shader, data *numbuf.Buffer, fs hfx.FileSystem, inputDir, outDir string, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	g := &Generator{Shader: shader, Data: data, FS: fs, InputDir: inputDir, OutDir: outDir, Logger: logger}
	g.local = g.synthesizeLocalConstants()
	return g
}

// WritePerStageFiles emits one text file per shader stage of every
// pass and returns the paths written.
func (g *Generator) WritePerStageFiles() ([]string, error) {
	var written []string
	for pi := range g.Shader.Passes {
		pass := &g.Shader.Passes[pi]
		for _, ps := range pass.ShaderStages {
			frag := &g.Shader.CodeFragments[ps.Fragment]
			code := g.finalizeCode(frag, ps.Stage, false)
			path := filepath.Join(g.OutDir, perStageFileName(g.Shader.Name, frag, ps.Stage))
			if err := g.FS.WriteFile(path, code); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// autoLayoutResources synthesizes the implicit resource list for a
// pass that declares none explicitly: the local-constants buffer plus
// every uniform-derived texture discovered across the pass's stages,
// per the glossary's "Auto-layout" entry.
func (g *Generator) autoLayoutResources(pass *hfx.Pass) hfx.ResourceList {
	list := hfx.ResourceList{Name: pass.Name + ".auto"}
	list.Resources = append(list.Resources, hfx.ResourceBinding{Kind: gfx.ResourceKindConstants, Name: "LocalConstants"})
	list.Flags = append(list.Flags, 0)

	seen := map[string]bool{"LocalConstants": true}
	for _, ps := range pass.ShaderStages {
		frag := &g.Shader.CodeFragments[ps.Fragment]
		for _, res := range frag.Resources {
			if seen[res.Name] {
				continue
			}
			seen[res.Name] = true
			list.Resources = append(list.Resources, hfx.ResourceBinding{Kind: res.Kind, Name: res.Name})
			list.Flags = append(list.Flags, 0)
		}
	}
	return list
}

// resourceListsForPass resolves a pass's declared resource lists by
// index, or synthesizes the auto-layout if it declared none.
func (g *Generator) resourceListsForPass(pass *hfx.Pass) []hfx.ResourceList {
	if len(pass.ResourceLists) == 0 {
		return []hfx.ResourceList{g.autoLayoutResources(pass)}
	}
	lists := make([]hfx.ResourceList, 0, len(pass.ResourceLists))
	for _, id := range pass.ResourceLists {
		lists = append(lists, g.Shader.ResourceLists[id])
	}
	return lists
}
