// Command hfxc is the HFX shader-effect compiler CLI.
//
// Usage:
//
//	hfxc [options] <input.hfx>
//
// Examples:
//
//	hfxc shader.hfx                        # Compile to shader.hfxb in the input's directory
//	hfxc -o out -name shader shader.hfx    # Compile to out/shader.hfxb plus per-stage text files
//	hfxc -permutations -o out shader.hfx   # Emit only the per-stage permutation files
//	hfxc -project build.toml               # Batch-compile every shader listed in a manifest
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/hfx/hfx"
	"github.com/gogpu/hfx/hfxgen"
	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

var (
	outDir       = flag.String("o", "", "output directory (default: input file's directory)")
	outName      = flag.String("name", "", "output base name (default: input file's base name)")
	project      = flag.String("project", "", "path to a TOML project manifest for batch compilation")
	permutations = flag.Bool("permutations", false, "emit only the per-stage permutation files, skip the binary container")
)

// manifest is the -project batch-compile input format.
type manifest struct {
	OutDir  string          `toml:"out_dir"`
	Shaders []manifestEntry `toml:"shader"`
}

type manifestEntry struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

func main() {
	flag.Usage = usage
	flag.Parse()

	logger := log.New(os.Stderr, "hfxc: ", 0)

	if *project != "" {
		if !runProject(*project, logger) {
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}
	inputPath := args[0]

	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	name := *outName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	var ok bool
	if *permutations {
		ok = generateHFXPermutations(inputPath, dir, logger)
	} else {
		ok = compileHFX(inputPath, dir, name, logger)
	}
	if !ok {
		os.Exit(1)
	}
}

func runProject(path string, logger *log.Logger) bool {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		logger.Printf("failed to read project manifest %q: %v", path, err)
		return false
	}

	projectDir := filepath.Dir(path)
	ok := true
	for _, entry := range m.Shaders {
		input := filepath.Join(projectDir, entry.Input)
		dir := filepath.Join(projectDir, m.OutDir)
		name := entry.Output
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(entry.Input), filepath.Ext(entry.Input))
		}
		if !compileHFX(input, dir, name, logger) {
			ok = false
		}
	}
	return ok
}

// compileHFX parses inputPath, and writes the per-stage shader files,
// the generated host-language header, and the binary effect container
// named "<outFilename>.hfxb" into outDir.
func compileHFX(inputPath, outDir, outFilename string, logger *log.Logger) bool {
	fs := hfx.OSFileSystem{}

	source, err := fs.ReadFile(inputPath)
	if err != nil {
		logger.Printf("reading %q: %v", inputPath, err)
		return false
	}

	shader, data, ok := parseShader(string(source), inputPath, fs, logger)
	if !ok {
		return false
	}

	gen := hfxgen.NewGenerator(shader, data, fs, filepath.Dir(inputPath), outDir, logger)

	if _, err := gen.WritePerStageFiles(); err != nil {
		logger.Printf("writing per-stage files for %q: %v", inputPath, err)
		return false
	}

	header := gen.GenerateHeader()
	headerPath := filepath.Join(outDir, outFilename+".go")
	if err := fs.WriteFile(headerPath, header); err != nil {
		logger.Printf("writing generated header %q: %v", headerPath, err)
		return false
	}

	binary, err := gen.WriteBinary(inputPath)
	if err != nil {
		logger.Printf("building binary container for %q: %v", inputPath, err)
		return false
	}
	binPath := filepath.Join(outDir, outFilename+".hfxb")
	if err := fs.WriteFile(binPath, binary); err != nil {
		logger.Printf("writing binary container %q: %v", binPath, err)
		return false
	}

	fmt.Printf("compiled %s -> %s (%d bytes)\n", inputPath, binPath, len(binary))
	return true
}

// generateHFXPermutations parses inputPath and writes every pass/stage
// permutation's shader text into outDir, skipping the binary container.
func generateHFXPermutations(inputPath, outDir string, logger *log.Logger) bool {
	fs := hfx.OSFileSystem{}

	source, err := fs.ReadFile(inputPath)
	if err != nil {
		logger.Printf("reading %q: %v", inputPath, err)
		return false
	}

	shader, data, ok := parseShader(string(source), inputPath, fs, logger)
	if !ok {
		return false
	}

	gen := hfxgen.NewGenerator(shader, data, fs, filepath.Dir(inputPath), outDir, logger)
	written, err := gen.WritePerStageFiles()
	if err != nil {
		logger.Printf("writing permutations for %q: %v", inputPath, err)
		return false
	}

	fmt.Printf("generated %d permutation file(s) for %s\n", len(written), inputPath)
	return true
}

func parseShader(source, inputPath string, fs hfx.FileSystem, logger *log.Logger) (*hfx.Shader, *numbuf.Buffer, bool) {
	data := numbuf.New()
	lx := lexer.New(source, data)
	p := hfx.NewParser(lx, data, fs, filepath.Dir(inputPath), logger)
	p.GenerateAST()
	if p.Shader == nil {
		logger.Printf("%q: no shader declaration found", inputPath)
		return nil, nil, false
	}
	if p.HasError() {
		logger.Printf("%q: parse error at line %d", inputPath, p.ErrorLine())
	}
	return p.Shader, data, true
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hfxc [options] <input.hfx>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  hfxc shader.hfx                      Compile in place\n")
	fmt.Fprintf(os.Stderr, "  hfxc -o out -name fx shader.hfx       Compile to out/fx.hfxb\n")
	fmt.Fprintf(os.Stderr, "  hfxc -permutations -o out shader.hfx  Emit per-stage files only\n")
	fmt.Fprintf(os.Stderr, "  hfxc -project build.toml              Batch-compile a manifest\n")
}
