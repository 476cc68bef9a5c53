// Command hdfc is the HDF data-description compiler CLI.
//
// Usage:
//
//	hdfc [options] <input.hdf>
//
// Examples:
//
//	hdfc types.hdf                   # Compile to types.go in the input's directory
//	hdfc -o gen -package mygame types.hdf
//	hdfc -no-reflection types.hdf    # Skip the ReflectMembers/ReflectUI scaffolding
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/hfx/hdf"
	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

var (
	outDir       = flag.String("o", "", "output directory (default: input file's directory)")
	packageName  = flag.String("package", "", "generated package name (default: input file's base name)")
	maxTypes     = flag.Int("max-types", 256, "type-table capacity hint")
	noReflection = flag.Bool("no-reflection", false, "skip ReflectMembers/ReflectUI scaffolding")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}
	inputPath := args[0]

	if !compileHDF(inputPath) {
		os.Exit(1)
	}
}

// compileHDF reads inputPath, parses it into an hdf.Table, and writes
// the generated Go source to "<package>.go" in the output directory.
func compileHDF(inputPath string) bool {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return false
	}

	data := numbuf.New()
	lx := lexer.New(string(source), data)
	p := hdf.NewParser(lx, data, *maxTypes)
	p.GenerateAST()

	if p.Table == nil || len(p.Table.Entries) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no declarations found in %s\n", inputPath)
		return false
	}

	opts := hdf.DefaultCodeGenOptions()
	if *noReflection {
		opts.EmitReflection = false
	}
	gen := hdf.NewCodeGen(opts)
	body := gen.Generate(p.Table)

	pkg := *packageName
	if pkg == "" {
		pkg = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "// Code generated by hdfc from %s; DO NOT EDIT.\n\n", filepath.Base(inputPath))
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	out.WriteString(body)

	outPath := filepath.Join(dir, pkg+".go")
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			return false
		}
	}
	if err := os.WriteFile(outPath, []byte(out.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return false
	}

	fmt.Printf("compiled %s -> %s\n", inputPath, outPath)
	return true
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hdfc [options] <input.hdf>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  hdfc types.hdf                        Compile in place\n")
	fmt.Fprintf(os.Stderr, "  hdfc -o gen -package mygame types.hdf Compile to gen/mygame.go\n")
}
