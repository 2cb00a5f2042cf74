package compiler

import "fmt"

// Compile runs the full pipeline — lex, parse, generate — over src and
// returns the resulting NASM assembly text along with every diagnostic
// recorded along the way, in source order. Compilation stops at the first
// parse error; lexing and code generation never fail outright, they only
// ever add warnings to diag.
func Compile(src string) (asm string, diags []Diagnostic, err error) {
	diag := &Diagnostics{}

	tokens := Lex(src, diag)

	prog, err := Parse(tokens, diag)
	if err != nil {
		return "", diag.Entries(), fmt.Errorf("parse error: %w", err)
	}

	asm = Generate(prog, diag)
	return asm, diag.Entries(), nil
}
