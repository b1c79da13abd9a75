package analyzer

import "minisqlc/compiler"

func (a *Analyzer) checkUpdate(s *compiler.Update) error {
	if !a.catalog.TableExists(s.Table) {
		return compiler.SemanticErr(s.Pos(), 0, "Table '%s' not found.", s.Table)
	}
	// Each assignment is checked like one insert value, keyed by column
	// name instead of position.
	for _, assign := range s.Assignments {
		ct, ok := a.catalog.ColumnType(s.Table, assign.Column.Lexeme)
		if !ok {
			return compiler.SemanticErr(assign.Column.Line, assign.Column.Col,
				"Column '%s' not found in table '%s'.", assign.Column.Lexeme, s.Table)
		}
		if !literalCompatible(ct, assign.Value) {
			return compiler.SemanticErr(assign.Value.Line, assign.Value.Col,
				"Type Mismatch at column '%s'. Expected %s.", assign.Column.Lexeme, ct)
		}
	}
	if s.Where != nil {
		return a.checkCondition(s.Table, s.Where)
	}
	return nil
}
