package compiler

import "minisqlc/catalog"

// ast defines the statement and condition trees produced by the parser.
// Both are closed sums: every variant carries a marker method so a type
// switch over them is exhaustive by construction.

// Stmt is a parsed statement. Line is the source line of the statement's
// leading keyword, for diagnostics.
type Stmt interface {
	stmtNode()
	Pos() int
}

type stmt struct {
	Line int
}

func (s *stmt) stmtNode() {}

func (s *stmt) Pos() int { return s.Line }

// ColumnDef is a (name, declared type) pair in a CREATE TABLE statement.
// The type is the keyword lexeme, INT, FLOAT, or TEXT.
type ColumnDef struct {
	Name string
	Type string
}

type CreateTable struct {
	stmt
	Table string
	// Columns is in declaration order.
	Columns []ColumnDef
}

type Insert struct {
	stmt
	Table string
	// Values holds the literal tokens in source order so the analyzer
	// can check kind and exact lexeme per position.
	Values []Token
}

type Select struct {
	stmt
	Table string
	// All is true for SELECT *. Columns is empty in that case.
	All bool
	// Columns holds the selected column identifier tokens.
	Columns []Token
	// Where may be nil when there is no WHERE clause.
	Where Cond
}

// Assignment is one column = literal pair in an UPDATE set list.
type Assignment struct {
	Column Token
	Value  Token
}

type Update struct {
	stmt
	Table       string
	Assignments []Assignment
	Where       Cond
}

type Delete struct {
	stmt
	Table string
	Where Cond
}

type CreateUser struct {
	stmt
	Username string
	// Password is the string literal's text without quotes.
	Password string
}

type Grant struct {
	stmt
	// Privilege is the statement keyword lexeme, for example SELECT.
	Privilege string
	Table     string
	User      string
}

// Cond is a WHERE condition node. The tree is finite and acyclic; binary
// operators are left-associative so a OR b OR c parses as Or(Or(a,b),c).
type Cond interface {
	condNode()
}

// Compare is a single column-operator-literal comparison. Type is filled
// in by the semantic analyzer with the resolved column type.
type Compare struct {
	Column   Token
	Operator string
	Literal  Token
	Type     catalog.ColumnType
}

func (c *Compare) condNode() {}

type And struct {
	Left  Cond
	Right Cond
}

func (a *And) condNode() {}

type Or struct {
	Left  Cond
	Right Cond
}

func (o *Or) condNode() {}

type Not struct {
	Operand Cond
}

func (n *Not) condNode() {}
