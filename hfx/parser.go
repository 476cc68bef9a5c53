package hfx

import (
	"log"
	"path/filepath"

	"github.com/gogpu/hfx/gfx"
	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

// Parser consumes tokens from a Lexer and builds a Shader AST. Like
// the HDF parser, it never propagates errors: an Expect miss abandons
// the current declaration and resumes at the top level, relying on
// the lexer's sticky error flag to halt useful work without crashing.
type Parser struct {
	lex    *lexer.Lexer
	data   *numbuf.Buffer
	fs     FileSystem
	inputDir string
	logger *log.Logger

	Shader *Shader
}

// NewParser returns a Parser reading from lex. fs and inputDir are
// used to resolve `includes { "path" }` references; `#pragma include
// "path"` references are only recorded on the code fragment and read
// later by hfxgen. logger receives a line for each `includes` path that
// can't be found, per spec.md §7's "log and continue" policy.
func NewParser(lex *lexer.Lexer, data *numbuf.Buffer, fs FileSystem, inputDir string, logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{lex: lex, data: data, fs: fs, inputDir: inputDir, logger: logger}
}

// GenerateAST consumes the full token stream. A well-formed HFX file
// has exactly one top-level `shader name { ... }` declaration.
func (p *Parser) GenerateAST() {
	for {
		tok := p.lex.Next()
		if tok.Kind == lexer.EndOfStream {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		if tok.Text == "shader" {
			p.declarationShader()
		}
	}
}

// HasError reports whether the underlying lexer raised a sticky error
// while parsing, per spec.md §7's error policy.
func (p *Parser) HasError() bool { return p.lex.HasError() }

// ErrorLine returns the line of the first Expect mismatch, or 0 if none.
func (p *Parser) ErrorLine() uint32 { return p.lex.ErrorLine() }

func (p *Parser) declarationShader() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	p.Shader = &Shader{Name: name}
	p.shaderBody()
}

// shaderBody dispatches the keywords valid inside a shader's braces,
// per spec.md §4.5's top-level keyword list (minus "shader" itself,
// which does not nest).
func (p *Parser) shaderBody() {
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		switch tok.Text {
		case "sampler_states":
			p.declarationSamplerStates()
		case "glsl":
			p.declarationCodeFragment()
		case "pass":
			p.declarationPass()
		case "properties":
			p.declarationProperties()
		case "pipeline":
			p.declarationPipeline()
		case "layout":
			p.declarationLayout()
		case "includes":
			p.declarationIncludes()
		case "render_states":
			p.declarationRenderStates()
		}
		if p.lex.HasError() {
			return
		}
	}
}

func (p *Parser) declarationPipeline() {
	if !p.lex.Expect(lexer.Equals) {
		return
	}
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	p.Shader.PipelineName = p.lex.Last().Text
}

// declarationPass parses `pass name { ... }`.
func (p *Parser) declarationPass() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	pass := Pass{Name: name, VertexLayout: NoID, RenderState: NoID}

	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		switch tok.Text {
		case "compute":
			p.passStage(&pass, gfx.StageCompute)
		case "vertex":
			p.passStage(&pass, gfx.StageVertex)
		case "fragment":
			p.passStage(&pass, gfx.StageFragment)
		case "resources":
			p.passResources(&pass)
		case "vertex_layout":
			p.passVertexLayout(&pass)
		case "render_states":
			p.passRenderState(&pass)
		case "stage":
			p.passStageName(&pass)
		}
		if p.lex.HasError() {
			return
		}
	}

	p.Shader.Passes = append(p.Shader.Passes, pass)
}

func (p *Parser) passStage(pass *Pass, stage gfx.ShaderStage) {
	if !p.lex.Expect(lexer.Equals) {
		return
	}
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	fragID, ok := p.Shader.FindCodeFragment(p.lex.Last().Text)
	if !ok {
		return
	}
	pass.ShaderStages = append(pass.ShaderStages, PassStage{Fragment: fragID, Stage: stage})
}

func (p *Parser) passResources(pass *Pass) {
	if !p.lex.Expect(lexer.Equals) {
		return
	}
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	id, ok := p.Shader.FindResourceList(p.lex.Last().Text)
	if !ok {
		return
	}
	pass.ResourceLists = append(pass.ResourceLists, id)
}

func (p *Parser) passVertexLayout(pass *Pass) {
	if !p.lex.Expect(lexer.Equals) {
		return
	}
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	id, ok := p.Shader.FindVertexLayout(p.lex.Last().Text)
	if !ok {
		return
	}
	pass.VertexLayout = id
}

func (p *Parser) passRenderState(pass *Pass) {
	if !p.lex.Expect(lexer.Equals) {
		return
	}
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	id, ok := p.Shader.FindRenderState(p.lex.Last().Text)
	if !ok {
		return
	}
	pass.RenderState = id
}

func (p *Parser) passStageName(pass *Pass) {
	if !p.lex.Expect(lexer.Equals) {
		return
	}
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	pass.StageName = p.lex.Last().Text
}

// declarationIncludes parses `includes { "path" ... }`, merging every
// resource list and code fragment from each referenced file into the
// current shader under the name `<shader>.<original>`. Properties,
// passes, vertex layouts, and render/sampler states from the include
// are not merged, per spec.md §4.5.
func (p *Parser) declarationIncludes() {
	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}
	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if p.lex.HasError() {
			return
		}
		if tok.Kind == lexer.String {
			p.mergeInclude(unquote(tok.Text))
		}
	}
}

func (p *Parser) mergeInclude(path string) {
	full := filepath.Join(p.inputDir, path)
	src, err := p.fs.ReadFile(full)
	if err != nil {
		p.logger.Printf("hfx: include %q not found", path)
		return
	}

	childData := numbuf.New()
	childLex := lexer.New(string(src), childData)
	child := NewParser(childLex, childData, p.fs, filepath.Dir(full), p.logger)
	child.GenerateAST()
	if child.Shader == nil {
		return
	}

	prefix := p.Shader.Name + "."
	for _, rl := range child.Shader.ResourceLists {
		rl.Name = prefix + rl.Name
		p.Shader.ResourceLists = append(p.Shader.ResourceLists, rl)
	}
	for _, cf := range child.Shader.CodeFragments {
		cf.Name = prefix + cf.Name
		p.Shader.CodeFragments = append(p.Shader.CodeFragments, cf)
	}
}
