// analyzer validates parsed statements against an evolving schema and
// privilege model. One analyzer instance owns the schema and user tables
// for exactly one run; statements are processed in source order, so a
// table must be defined before a later statement references it.
package analyzer

import (
	"strings"

	"minisqlc/catalog"
	"minisqlc/compiler"
)

type Analyzer struct {
	catalog *catalog.Catalog
	users   *catalog.Users
	// notices are non-fatal findings, currently only duplicate grants.
	notices []compiler.Diagnostic
}

func New() *Analyzer {
	return &Analyzer{
		catalog: catalog.NewCatalog(),
		users:   catalog.NewUsers(),
	}
}

// Result is the outcome of an analysis run: the input statements with
// resolved types annotated in place, the final schema and user tables,
// and any non-fatal notices.
type Result struct {
	Statements []compiler.Stmt
	Catalog    *catalog.Catalog
	Users      *catalog.Users
	Notices    []compiler.Diagnostic
}

// Analyze checks every statement in order, mutating the schema and user
// tables as definitions are seen. The first semantic error halts the
// run; the returned Result still carries whatever was built before the
// stop.
func (a *Analyzer) Analyze(statements []compiler.Stmt) (*Result, error) {
	checked := []compiler.Stmt{}
	for _, s := range statements {
		var err error
		switch s := s.(type) {
		case *compiler.CreateTable:
			err = a.checkCreateTable(s)
		case *compiler.CreateUser:
			err = a.checkCreateUser(s)
		case *compiler.Grant:
			err = a.checkGrant(s)
		case *compiler.Insert:
			err = a.checkInsert(s)
		case *compiler.Select:
			err = a.checkSelect(s)
		case *compiler.Update:
			err = a.checkUpdate(s)
		case *compiler.Delete:
			err = a.checkDelete(s)
		}
		if err != nil {
			return a.result(checked), err
		}
		checked = append(checked, s)
	}
	return a.result(checked), nil
}

func (a *Analyzer) result(checked []compiler.Stmt) *Result {
	return &Result{
		Statements: checked,
		Catalog:    a.catalog,
		Users:      a.users,
		Notices:    a.notices,
	}
}

// literalCompatible is the single type compatibility rule: INT takes a
// numeric literal with no decimal point, FLOAT takes any numeric
// literal, TEXT takes a string literal.
func literalCompatible(ct catalog.ColumnType, lit compiler.Token) bool {
	switch ct {
	case catalog.Int:
		return lit.IsNumber() && !strings.Contains(lit.Lexeme, ".")
	case catalog.Float:
		return lit.IsNumber()
	case catalog.Text:
		return lit.IsString()
	}
	return false
}
