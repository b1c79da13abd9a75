package analyzer

import "minisqlc/compiler"

func (a *Analyzer) checkGrant(s *compiler.Grant) error {
	if !a.users.Exists(s.User) {
		return compiler.SemanticErr(s.Pos(), 0, "User '%s' not found.", s.User)
	}
	if !a.catalog.TableExists(s.Table) {
		return compiler.SemanticErr(s.Pos(), 0, "Table '%s' not found.", s.Table)
	}
	// Re-granting a held pair is a notice, not an error, and adds no
	// duplicate entry.
	if !a.users.Grant(s.User, s.Table, s.Privilege) {
		a.notices = append(a.notices, compiler.SemanticErr(s.Pos(), 0,
			"User '%s' already has %s on %s.", s.User, s.Privilege, s.Table))
	}
	return nil
}
