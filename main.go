// Command x64c compiles a source file through the pkg/compiler pipeline and
// writes the resulting x86-64 NASM assembly text to an output file. It is
// thin glue around pkg/compiler: argument parsing, file I/O, and writing
// the emitted .asm file are all this program does; assembling and linking
// are left to the external nasm/ld toolchain.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"x64c/pkg/compiler"
)

const defaultSourcePath = "program.x64"

func main() {
	showTokens := flag.Bool("tokens", false, "echo the token stream to stderr before compiling")
	showAST := flag.Bool("ast", false, "echo the parsed program to stderr before compiling")
	outPath := flag.String("out", "", "output assembly file path (default: input with .asm extension)")
	flag.Parse()

	inPath := defaultSourcePath
	if flag.NArg() > 0 {
		inPath = flag.Arg(0)
	}

	source, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read source file %q: %v\n", inPath, err)
		os.Exit(1)
	}

	diag := &compiler.Diagnostics{}

	if *showTokens {
		tokens := compiler.Lex(string(source), diag)
		for _, tok := range tokens {
			fmt.Fprintln(os.Stderr, tok)
		}
	}

	if *showAST {
		tokens := compiler.Lex(string(source), &compiler.Diagnostics{})
		prog, err := compiler.Parse(tokens, &compiler.Diagnostics{})
		if err == nil {
			for _, stmt := range prog.Stmts {
				fmt.Fprintln(os.Stderr, stmt)
			}
		}
	}

	asm, diags, err := compiler.Compile(string(source))
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "compilation failed: %v\n", err)
		os.Exit(1)
	}

	output := *outPath
	if output == "" {
		output = defaultOutputPath(inPath)
	}

	if err := os.WriteFile(output, []byte(asm), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write assembly file %q: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("compiled %s -> %s\n", inPath, output)
}

func defaultOutputPath(inPath string) string {
	if idx := strings.LastIndex(inPath, "."); idx > strings.LastIndexByte(inPath, '/') {
		return inPath[:idx] + ".asm"
	}
	return inPath + ".asm"
}
