package analyzer

import "minisqlc/compiler"

// checkCondition validates a WHERE tree recursively: a comparison is
// valid when its column exists and its literal is compatible with the
// column's declared type, a binary node when both children are, NOT when
// its operand is. The walk short-circuits left before right, so the
// first invalid subnode in source order carries the failure position.
// Valid comparisons are annotated with the resolved column type.
func (a *Analyzer) checkCondition(table string, cond compiler.Cond) error {
	switch c := cond.(type) {
	case *compiler.Compare:
		ct, ok := a.catalog.ColumnType(table, c.Column.Lexeme)
		if !ok {
			return compiler.SemanticErr(c.Column.Line, c.Column.Col,
				"Column '%s' in WHERE clause not found.", c.Column.Lexeme)
		}
		c.Type = ct
		if !literalCompatible(ct, c.Literal) {
			return compiler.SemanticErr(c.Literal.Line, c.Literal.Col,
				"Type Mismatch in WHERE. Column '%s' is %s but compared with %s.",
				c.Column.Lexeme, ct, c.Literal.Kind())
		}
		return nil
	case *compiler.And:
		if err := a.checkCondition(table, c.Left); err != nil {
			return err
		}
		return a.checkCondition(table, c.Right)
	case *compiler.Or:
		if err := a.checkCondition(table, c.Left); err != nil {
			return err
		}
		return a.checkCondition(table, c.Right)
	case *compiler.Not:
		return a.checkCondition(table, c.Operand)
	}
	return nil
}
