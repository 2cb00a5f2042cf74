package compiler

import "fmt"

// DiagnosticKind classifies a Diagnostic. KindWarning covers the degraded
// (but still valid) behaviors the lexer and generator fall back to instead
// of aborting; KindError marks the single failure that stops a parse.
type DiagnosticKind int

const (
	KindWarning DiagnosticKind = iota
	KindError
)

func (k DiagnosticKind) String() string {
	if k == KindError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one short textual message produced by a compilation stage.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Diagnostics collects the diagnostic channel's output for one compilation
// in source order, so callers (tests, or the CLI driver) can inspect it
// instead of every stage writing straight to os.Stderr.
type Diagnostics struct {
	entries []Diagnostic
}

func (d *Diagnostics) Warn(format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{Kind: KindWarning, Message: fmt.Sprintf(format, args...)})
}

func (d *Diagnostics) Error(format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{Kind: KindError, Message: fmt.Sprintf(format, args...)})
}

// Entries returns the diagnostics recorded so far, in source order.
func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}

// HasErrors reports whether any KindError diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, e := range d.entries {
		if e.Kind == KindError {
			return true
		}
	}
	return false
}
