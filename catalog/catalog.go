// catalog holds the schema and user tables built up during a single
// analysis run. A run starts with an empty catalog and mutates it in
// statement order, so tables and users must be defined before they are
// referenced.
package catalog

type ColumnType int

const (
	Unknown ColumnType = iota
	Int
	Float
	Text
)

func (t ColumnType) String() string {
	switch t {
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case Text:
		return "TEXT"
	}
	return "UNKNOWN"
}

// TypeFromLexeme maps a type keyword lexeme to its ColumnType. Unknown
// lexemes map to Unknown.
func TypeFromLexeme(lexeme string) ColumnType {
	switch lexeme {
	case "INT":
		return Int
	case "FLOAT":
		return Float
	case "TEXT":
		return Text
	}
	return Unknown
}

// Column is a single column definition. Column order within a table is
// declaration order.
type Column struct {
	Name string
	Type ColumnType
}

// Catalog holds information about the schema defined by a run.
type Catalog struct {
	tables map[string][]Column
	// names preserves table definition order for deterministic output.
	names []string
}

func NewCatalog() *Catalog {
	return &Catalog{tables: map[string][]Column{}}
}

// CreateTable registers a table with its ordered column definitions.
// Uniqueness of the table name is the caller's check via TableExists.
func (c *Catalog) CreateTable(name string, cols []Column) {
	if _, ok := c.tables[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tables[name] = cols
}

func (c *Catalog) TableExists(name string) bool {
	_, ok := c.tables[name]
	return ok
}

// Columns returns the ordered column definitions for a table.
func (c *Catalog) Columns(name string) ([]Column, bool) {
	cols, ok := c.tables[name]
	return cols, ok
}

// ColumnType returns the declared type of a column, or Unknown and false
// when the table or column does not exist.
func (c *Catalog) ColumnType(table string, column string) (ColumnType, bool) {
	cols, ok := c.tables[table]
	if !ok {
		return Unknown, false
	}
	for _, col := range cols {
		if col.Name == column {
			return col.Type, true
		}
	}
	return Unknown, false
}

// Tables returns table names in definition order.
func (c *Catalog) Tables() []string {
	return c.names
}
