package analyzer

import "minisqlc/compiler"

func (a *Analyzer) checkInsert(s *compiler.Insert) error {
	if !a.catalog.TableExists(s.Table) {
		return compiler.SemanticErr(s.Pos(), 0, "Table '%s' not found.", s.Table)
	}
	cols, _ := a.catalog.Columns(s.Table)
	if len(cols) != len(s.Values) {
		return compiler.SemanticErr(s.Pos(), 0,
			"Column count mismatch. Expected %d, got %d.", len(cols), len(s.Values))
	}
	for i, val := range s.Values {
		if !literalCompatible(cols[i].Type, val) {
			return compiler.SemanticErr(val.Line, val.Col,
				"Type Mismatch at column %d. Expected %s.", i+1, cols[i].Type)
		}
	}
	return nil
}
