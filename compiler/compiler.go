// compiler is composed of a lexer and parser. These modules work in
// order to generate a statement list from a source string. The statement
// list is then passed to the analyzer.
package compiler

// Result is the front half of a compilation run: the raw token stream,
// the statements that parsed cleanly, and the lexical then syntax
// diagnostics in source order.
type Result struct {
	Tokens     []Token
	Statements []Stmt
	Diags      []Diagnostic
}

// Compile lexes and parses src. Illegal tokens are dropped before
// parsing; their lexical diagnostics are kept. Compile never fails
// outright, a broken input produces diagnostics and whatever statements
// survived recovery.
func Compile(src string) Result {
	tokens, diags := NewLexer(src).Lex()
	valid := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == tkIllegal {
			continue
		}
		valid = append(valid, t)
	}
	statements, parseDiags := NewParser(valid).Parse()
	return Result{
		Tokens:     tokens,
		Statements: statements,
		Diags:      append(diags, parseDiags...),
	}
}
