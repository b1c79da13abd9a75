package analyzer

import (
	"minisqlc/catalog"
	"minisqlc/compiler"
)

func (a *Analyzer) checkCreateTable(s *compiler.CreateTable) error {
	if a.catalog.TableExists(s.Table) {
		return compiler.SemanticErr(s.Pos(), 0, "Table '%s' already exists.", s.Table)
	}
	cols := []catalog.Column{}
	for _, def := range s.Columns {
		for _, existing := range cols {
			if existing.Name == def.Name {
				return compiler.SemanticErr(s.Pos(), 0,
					"Duplicate column '%s' in table '%s'.", def.Name, s.Table)
			}
		}
		cols = append(cols, catalog.Column{
			Name: def.Name,
			Type: catalog.TypeFromLexeme(def.Type),
		})
	}
	a.catalog.CreateTable(s.Table, cols)
	return nil
}

func (a *Analyzer) checkCreateUser(s *compiler.CreateUser) error {
	if a.users.Exists(s.Username) {
		return compiler.SemanticErr(s.Pos(), 0, "User '%s' already exists.", s.Username)
	}
	a.users.Create(s.Username, s.Password)
	return nil
}
