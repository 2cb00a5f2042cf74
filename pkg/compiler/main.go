// Package compiler provides a lexer, parser, and code generator for a
// small imperative language of integers, arrays, conditionals, and loops.
//
// Pipeline: source text → Lex → Parse → Generate → x86-64 NASM assembly text
package compiler
