package analyzer

import "minisqlc/compiler"

func (a *Analyzer) checkDelete(s *compiler.Delete) error {
	if !a.catalog.TableExists(s.Table) {
		return compiler.SemanticErr(s.Pos(), 0, "Table '%s' not found.", s.Table)
	}
	if s.Where != nil {
		return a.checkCondition(s.Table, s.Where)
	}
	return nil
}
