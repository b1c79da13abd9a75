package compiler

import "fmt"

// Phase tags a diagnostic with the pipeline stage that produced it.
type Phase int

const (
	PhaseLexical Phase = iota + 1
	PhaseSyntax
	PhaseSemantic
)

func (p Phase) String() string {
	switch p {
	case PhaseLexical:
		return "Lexical"
	case PhaseSyntax:
		return "Syntax"
	case PhaseSemantic:
		return "Semantic"
	}
	return "Unknown"
}

// Diagnostic is a positioned, phase-tagged compiler message. Line and
// Col are 1-based; Col is 0 only when a statement has no finer position.
type Diagnostic struct {
	Phase   Phase
	Message string
	Line    int
	Col     int
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[Line %d, Col %d] %s Error: %s", d.Line, d.Col, d.Phase, d.Message)
}

// SemanticErr builds a semantic diagnostic at the given position.
func SemanticErr(line int, col int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Phase:   PhaseSemantic,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Col:     col,
	}
}
