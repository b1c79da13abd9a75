package compiler

type tokenType int

const (
	tkEOF tokenType = iota
	tkIllegal
	tkSelect
	tkFrom
	tkWhere
	tkInsert
	tkInto
	tkValues
	tkUpdate
	tkSet
	tkDelete
	tkCreate
	tkTable
	tkUser
	tkIdentified
	tkBy
	tkGrant
	tkOn
	tkTo
	tkAnd
	tkOr
	tkNot
	// tkType is one of the declared type keywords INT, FLOAT, or TEXT.
	// The lexeme tells which.
	tkType
	tkIdentifier
	tkNumber
	tkString
	tkEqual
	tkNotEqual
	tkLessThan
	tkLessEqual
	tkGreaterThan
	tkGreaterEqual
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkLeftParen
	tkRightParen
	tkComma
	tkSemicolon
)

func (t tokenType) String() string {
	return [...]string{
		"EOF",
		"ILLEGAL",
		"SELECT",
		"FROM",
		"WHERE",
		"INSERT",
		"INTO",
		"VALUES",
		"UPDATE",
		"SET",
		"DELETE",
		"CREATE",
		"TABLE",
		"USER",
		"IDENTIFIED",
		"BY",
		"GRANT",
		"ON",
		"TO",
		"AND",
		"OR",
		"NOT",
		"TYPE",
		"IDENTIFIER",
		"NUMBER",
		"STRING",
		"EQUAL",
		"NOT_EQUAL",
		"LESS_THAN",
		"LESS_EQUAL",
		"GREATER_THAN",
		"GREATER_EQUAL",
		"PLUS",
		"MINUS",
		"STAR",
		"SLASH",
		"LEFT_PAREN",
		"RIGHT_PAREN",
		"COMMA",
		"SEMICOLON",
	}[int(t)]
}

// keywords are case-sensitive. The declared types map to a single tkType
// token distinguished by lexeme.
var keywords = map[string]tokenType{
	"SELECT":     tkSelect,
	"FROM":       tkFrom,
	"WHERE":      tkWhere,
	"INSERT":     tkInsert,
	"INTO":       tkInto,
	"VALUES":     tkValues,
	"UPDATE":     tkUpdate,
	"SET":        tkSet,
	"DELETE":     tkDelete,
	"CREATE":     tkCreate,
	"TABLE":      tkTable,
	"USER":       tkUser,
	"IDENTIFIED": tkIdentified,
	"BY":         tkBy,
	"GRANT":      tkGrant,
	"ON":         tkOn,
	"TO":         tkTo,
	"AND":        tkAnd,
	"OR":         tkOr,
	"NOT":        tkNot,
	"INT":        tkType,
	"FLOAT":      tkType,
	"TEXT":       tkType,
}

// Token is a single lexed token. Lexeme is the exact source text the
// token was derived from, so string tokens keep their quotes and numbers
// are never renormalized. Line and Col are 1-based.
type Token struct {
	Type   tokenType
	Lexeme string
	Line   int
	Col    int
}

// Kind returns the token's type name, for diagnostics.
func (t Token) Kind() string {
	return t.Type.String()
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool {
	return t.Type == tkNumber
}

// IsString reports whether the token is a string literal.
func (t Token) IsString() bool {
	return t.Type == tkString
}

// Text returns the token's value with string quotes stripped.
func (t Token) Text() string {
	if t.Type == tkString && len(t.Lexeme) >= 2 {
		return t.Lexeme[1 : len(t.Lexeme)-1]
	}
	return t.Lexeme
}
