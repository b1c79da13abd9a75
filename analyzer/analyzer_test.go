package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minisqlc/catalog"
	"minisqlc/compiler"
)

// compile parses a source string expected to be free of lexical and
// syntax errors.
func compile(t *testing.T, src string) []compiler.Stmt {
	t.Helper()
	res := compiler.Compile(src)
	require.Empty(t, res.Diags)
	return res.Statements
}

func TestCreateTableRegistersColumnsInOrder(t *testing.T) {
	res, err := New().Analyze(compile(t,
		"CREATE TABLE students (id INT, name TEXT, grade FLOAT);"))
	require.NoError(t, err)

	cols, ok := res.Catalog.Columns("students")
	require.True(t, ok)
	assert.Equal(t, []catalog.Column{
		{Name: "id", Type: catalog.Int},
		{Name: "name", Type: catalog.Text},
		{Name: "grade", Type: catalog.Float},
	}, cols)
}

func TestCreateTableDuplicateTable(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nCREATE TABLE t (id INT);"))
	require.Error(t, err)
	assert.Equal(t, "[Line 2, Col 0] Semantic Error: Table 't' already exists.", err.Error())
}

func TestCreateTableDuplicateColumn(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT, id TEXT);"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate column 'id' in table 't'.")
}

func TestInsertUnknownTable(t *testing.T) {
	_, err := New().Analyze(compile(t, "INSERT INTO nope VALUES (1);"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Table 'nope' not found.")
}

func TestInsertArityMismatch(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT, name TEXT, grade FLOAT);\n"+
			"INSERT INTO t VALUES (1,'x');"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Column count mismatch. Expected 3, got 2.")
}

// A TEXT literal in an INT position fails at the 1-based column
// position, naming the expected type.
func TestInsertTypeMismatchPosition(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT, name TEXT, grade FLOAT);\n"+
			"INSERT INTO t VALUES ('Ali', 1, 85.5);"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type Mismatch at column 1. Expected INT.")
}

func TestInsertTypeRules(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		valid bool
	}{
		{
			name:  "int rejects decimal literal",
			src:   "CREATE TABLE t (n INT);\nINSERT INTO t VALUES (85.5);",
			valid: false,
		},
		{
			name:  "float accepts whole number literal",
			src:   "CREATE TABLE t (n FLOAT);\nINSERT INTO t VALUES (85);",
			valid: true,
		},
		{
			name:  "text rejects number literal",
			src:   "CREATE TABLE t (n TEXT);\nINSERT INTO t VALUES (85);",
			valid: false,
		},
		{
			name:  "int rejects string literal",
			src:   "CREATE TABLE t (n INT);\nINSERT INTO t VALUES ('85');",
			valid: false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New().Analyze(compile(t, c.src))
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSelectUnknownColumn(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nSELECT id, nope FROM t;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Column 'nope' not found in table 't'.")
}

func TestSelectWildcardSkipsColumnCheck(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nSELECT * FROM t;"))
	assert.NoError(t, err)
}

func TestUpdateUnknownSetColumn(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nUPDATE t SET nope = 1;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Column 'nope' not found in table 't'.")
}

func TestUpdateTypeMismatchByColumnName(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT, name TEXT);\nUPDATE t SET name = 5;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type Mismatch at column 'name'. Expected TEXT.")
}

func TestDeleteUnknownTable(t *testing.T) {
	_, err := New().Analyze(compile(t, "DELETE FROM nope;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Table 'nope' not found.")
}

func TestCreateUserAndGrant(t *testing.T) {
	res, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\n"+
			"CREATE USER bob IDENTIFIED BY 'pw';\n"+
			"GRANT SELECT ON t TO bob;"))
	require.NoError(t, err)

	user, ok := res.Users.Get("bob")
	require.True(t, ok)
	assert.Equal(t, "pw", user.Password)
	assert.Equal(t, []catalog.Privilege{{Table: "t", Action: "SELECT"}}, user.Grants)
	assert.Empty(t, res.Notices)
}

func TestDuplicateUser(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE USER bob IDENTIFIED BY 'pw';\nCREATE USER bob IDENTIFIED BY 'pw2';"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User 'bob' already exists.")
}

func TestGrantUnknownUser(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nGRANT SELECT ON t TO nobody;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User 'nobody' not found.")
}

func TestGrantUnknownTable(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE USER bob IDENTIFIED BY 'pw';\nGRANT SELECT ON nope TO bob;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Table 'nope' not found.")
}

// Granting the same pair twice keeps one entry and emits a non-fatal
// duplicate notice instead of an error.
func TestDuplicateGrantIsNotice(t *testing.T) {
	res, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\n"+
			"CREATE USER bob IDENTIFIED BY 'pw';\n"+
			"GRANT SELECT ON t TO bob;\n"+
			"GRANT SELECT ON t TO bob;"))
	require.NoError(t, err)

	user, _ := res.Users.Get("bob")
	assert.Len(t, user.Grants, 1)
	require.Len(t, res.Notices, 1)
	assert.Contains(t, res.Notices[0].Message, "already has SELECT on t")
}

func TestWhereUnknownColumn(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nSELECT * FROM t WHERE nope = 1;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Column 'nope' in WHERE clause not found.")
}

func TestWhereTypeMismatch(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (name TEXT);\nSELECT * FROM t WHERE name > 5;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"Type Mismatch in WHERE. Column 'name' is TEXT but compared with NUMBER.")
}

// Negation does not alter the referenced column's compatibility check.
func TestWhereNotOverCompound(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nSELECT * FROM t WHERE NOT (id = 1 OR id = 2);"))
	assert.NoError(t, err)
}

// The condition walk short-circuits left before right: only the first
// invalid subnode is reported.
func TestWhereShortCircuitsLeftFirst(t *testing.T) {
	_, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\nSELECT * FROM t WHERE bad1 = 1 AND bad2 = 2;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad1")
	assert.NotContains(t, err.Error(), "bad2")
}

func TestCompareAnnotatedWithResolvedType(t *testing.T) {
	statements := compile(t,
		"CREATE TABLE t (id INT, grade FLOAT);\n"+
			"SELECT * FROM t WHERE NOT (id = 1 OR grade > 80.0);")
	_, err := New().Analyze(statements)
	require.NoError(t, err)

	or := statements[1].(*compiler.Select).Where.(*compiler.Not).Operand.(*compiler.Or)
	assert.Equal(t, catalog.Int, or.Left.(*compiler.Compare).Type)
	assert.Equal(t, catalog.Float, or.Right.(*compiler.Compare).Type)
}

// The analyzer halts on the first semantic error; the result carries the
// statements and schema built before the stop.
func TestHaltsOnFirstSemanticError(t *testing.T) {
	res, err := New().Analyze(compile(t,
		"CREATE TABLE t (id INT);\n"+
			"INSERT INTO missing VALUES (1);\n"+
			"INSERT INTO also_missing VALUES (2);"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Table 'missing' not found.")

	require.NotNil(t, res)
	assert.Len(t, res.Statements, 1)
	assert.True(t, res.Catalog.TableExists("t"))
}

func TestTableMustBeDeclaredBeforeUse(t *testing.T) {
	// Source order matters: the SELECT runs before the CREATE TABLE.
	_, err := New().Analyze(compile(t,
		"SELECT * FROM t;\nCREATE TABLE t (id INT);"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Table 't' not found.")
}
