package analyzer

import "minisqlc/compiler"

func (a *Analyzer) checkSelect(s *compiler.Select) error {
	if !a.catalog.TableExists(s.Table) {
		return compiler.SemanticErr(s.Pos(), 0, "Table '%s' not found.", s.Table)
	}
	for _, col := range s.Columns {
		if _, ok := a.catalog.ColumnType(s.Table, col.Lexeme); !ok {
			return compiler.SemanticErr(col.Line, col.Col,
				"Column '%s' not found in table '%s'.", col.Lexeme, s.Table)
		}
	}
	if s.Where != nil {
		return a.checkCondition(s.Table, s.Where)
	}
	return nil
}
