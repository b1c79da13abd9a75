package compiler

// parser takes tokens from the lexer and produces a list of statement
// nodes. It is a recursive descent parser: one method per grammar
// production, each returning either a completed node or a syntax error
// positioned at the offending token. The top-level loop recovers from
// syntax errors in panic mode so a malformed statement does not abort
// the batch.

import "fmt"

type parser struct {
	tokens  []Token
	current int
	diags   []Diagnostic
}

func NewParser(tokens []Token) *parser {
	return &parser{tokens: tokens}
}

// Parse parses the whole token stream. It returns every statement that
// parsed cleanly plus the accumulated syntax diagnostics; a run can end
// with any number of each.
func (p *parser) Parse() ([]Stmt, []Diagnostic) {
	statements := []Stmt{}
	for !p.atEnd() {
		s, err := p.parseStatement()
		if err != nil {
			p.diags = append(p.diags, err.(Diagnostic))
			p.synchronize()
			continue
		}
		statements = append(statements, s)
	}
	return statements, p.diags
}

// synchronize discards tokens until a statement boundary: either the
// just-consumed token was a semicolon or the next token begins a
// statement. At least one token is always consumed so the parse loop is
// guaranteed to make progress.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == tkSemicolon {
			return
		}
		switch p.peek().Type {
		case tkCreate, tkInsert, tkSelect, tkUpdate, tkDelete, tkGrant:
			return
		}
		p.advance()
	}
}

func (p *parser) parseStatement() (Stmt, error) {
	switch {
	case p.match(tkCreate):
		line := p.previous().Line
		if p.match(tkUser) {
			return p.parseCreateUser(line)
		}
		return p.parseCreateTable(line)
	case p.match(tkInsert):
		return p.parseInsert()
	case p.match(tkSelect):
		return p.parseSelect()
	case p.match(tkUpdate):
		return p.parseUpdate()
	case p.match(tkDelete):
		return p.parseDelete()
	case p.match(tkGrant):
		return p.parseGrant()
	}
	return nil, p.errorAt(p.peek(), "Expected statement keyword (CREATE, INSERT, SELECT, UPDATE, DELETE, GRANT)")
}

// parseCreateTable parses
// CREATE TABLE id '(' (id TYPE (',' id TYPE)*)? ')' ';'
// with CREATE already consumed.
func (p *parser) parseCreateTable(line int) (Stmt, error) {
	if _, err := p.consume(tkTable, "Expected 'TABLE' after 'CREATE'"); err != nil {
		return nil, err
	}
	name, err := p.consume(tkIdentifier, "Expected table name after 'TABLE'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkLeftParen, "Expected '(' after table name"); err != nil {
		return nil, err
	}
	columns := []ColumnDef{}
	if !p.check(tkRightParen) {
		for {
			colName, err := p.consume(tkIdentifier, "Expected column name")
			if err != nil {
				return nil, err
			}
			colType, err := p.consume(tkType, "Expected data type (INT, FLOAT, TEXT)")
			if err != nil {
				return nil, err
			}
			columns = append(columns, ColumnDef{Name: colName.Lexeme, Type: colType.Lexeme})
			if !p.match(tkComma) {
				break
			}
		}
	}
	if _, err := p.consume(tkRightParen, "Expected ')' after column definitions"); err != nil {
		return nil, err
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of CREATE TABLE statement"); err != nil {
		return nil, err
	}
	return &CreateTable{stmt: stmt{Line: line}, Table: name.Lexeme, Columns: columns}, nil
}

// parseCreateUser parses
// CREATE USER id IDENTIFIED BY string ';'
// with CREATE USER already consumed.
func (p *parser) parseCreateUser(line int) (Stmt, error) {
	name, err := p.consume(tkIdentifier, "Expected username after 'USER'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkIdentified, "Expected 'IDENTIFIED' after username"); err != nil {
		return nil, err
	}
	if _, err := p.consume(tkBy, "Expected 'BY' after 'IDENTIFIED'"); err != nil {
		return nil, err
	}
	password, err := p.consume(tkString, "Expected password string after 'BY'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of CREATE USER statement"); err != nil {
		return nil, err
	}
	return &CreateUser{stmt: stmt{Line: line}, Username: name.Lexeme, Password: password.Text()}, nil
}

// parseInsert parses
// INSERT INTO id VALUES '(' literal (',' literal)* ')' ';'
// with INSERT already consumed.
func (p *parser) parseInsert() (Stmt, error) {
	line := p.previous().Line
	if _, err := p.consume(tkInto, "Expected 'INTO' after 'INSERT'"); err != nil {
		return nil, err
	}
	name, err := p.consume(tkIdentifier, "Expected table name after 'INTO'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkValues, "Expected 'VALUES' after table name"); err != nil {
		return nil, err
	}
	if _, err := p.consume(tkLeftParen, "Expected '(' after 'VALUES'"); err != nil {
		return nil, err
	}
	values := []Token{}
	for {
		v, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if !p.match(tkComma) {
			break
		}
	}
	if _, err := p.consume(tkRightParen, "Expected ')' after value list"); err != nil {
		return nil, err
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of INSERT statement"); err != nil {
		return nil, err
	}
	return &Insert{stmt: stmt{Line: line}, Table: name.Lexeme, Values: values}, nil
}

// parseSelect parses
// SELECT ('*' | id (',' id)*) FROM id (WHERE Condition)? ';'
// with SELECT already consumed.
func (p *parser) parseSelect() (Stmt, error) {
	line := p.previous().Line
	sel := &Select{stmt: stmt{Line: line}}
	if p.match(tkStar) {
		sel.All = true
	} else {
		for {
			col, err := p.consume(tkIdentifier, "Expected identifier in SELECT list")
			if err != nil {
				return nil, err
			}
			sel.Columns = append(sel.Columns, col)
			if !p.match(tkComma) {
				break
			}
		}
	}
	if _, err := p.consume(tkFrom, "Expected 'FROM' after select list"); err != nil {
		return nil, err
	}
	name, err := p.consume(tkIdentifier, "Expected table name after 'FROM'")
	if err != nil {
		return nil, err
	}
	sel.Table = name.Lexeme
	if p.match(tkWhere) {
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		sel.Where = cond
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of SELECT statement"); err != nil {
		return nil, err
	}
	return sel, nil
}

// parseUpdate parses
// UPDATE id SET id '=' literal (',' id '=' literal)* (WHERE Condition)? ';'
// with UPDATE already consumed.
func (p *parser) parseUpdate() (Stmt, error) {
	line := p.previous().Line
	name, err := p.consume(tkIdentifier, "Expected table name after 'UPDATE'")
	if err != nil {
		return nil, err
	}
	upd := &Update{stmt: stmt{Line: line}, Table: name.Lexeme}
	if _, err := p.consume(tkSet, "Expected 'SET' after table name in UPDATE"); err != nil {
		return nil, err
	}
	for {
		col, err := p.consume(tkIdentifier, "Expected column name in SET list")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tkEqual, "Expected '=' in assignment"); err != nil {
			return nil, err
		}
		val, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		upd.Assignments = append(upd.Assignments, Assignment{Column: col, Value: val})
		if !p.match(tkComma) {
			break
		}
	}
	if p.match(tkWhere) {
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		upd.Where = cond
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of UPDATE statement"); err != nil {
		return nil, err
	}
	return upd, nil
}

// parseDelete parses
// DELETE FROM id (WHERE Condition)? ';'
// with DELETE already consumed.
func (p *parser) parseDelete() (Stmt, error) {
	line := p.previous().Line
	if _, err := p.consume(tkFrom, "Expected 'FROM' after 'DELETE'"); err != nil {
		return nil, err
	}
	name, err := p.consume(tkIdentifier, "Expected table name after 'FROM'")
	if err != nil {
		return nil, err
	}
	del := &Delete{stmt: stmt{Line: line}, Table: name.Lexeme}
	if p.match(tkWhere) {
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		del.Where = cond
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of DELETE statement"); err != nil {
		return nil, err
	}
	return del, nil
}

// parseGrant parses
// GRANT privilege ON id TO id ';'
// with GRANT already consumed. The privilege is one of the statement
// keywords SELECT, INSERT, UPDATE, or DELETE.
func (p *parser) parseGrant() (Stmt, error) {
	line := p.previous().Line
	if !p.match(tkSelect, tkInsert, tkUpdate, tkDelete) {
		return nil, p.errorAt(p.peek(), "Expected privilege (SELECT, INSERT, UPDATE, DELETE) after 'GRANT'")
	}
	privilege := p.previous().Lexeme
	if _, err := p.consume(tkOn, "Expected 'ON' after privilege"); err != nil {
		return nil, err
	}
	table, err := p.consume(tkIdentifier, "Expected table name after 'ON'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkTo, "Expected 'TO' after table name"); err != nil {
		return nil, err
	}
	user, err := p.consume(tkIdentifier, "Expected username after 'TO'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tkSemicolon, "Expected ';' at end of GRANT statement"); err != nil {
		return nil, err
	}
	return &Grant{
		stmt:      stmt{Line: line},
		Privilege: privilege,
		Table:     table.Lexeme,
		User:      user.Lexeme,
	}, nil
}

// Condition grammar, precedence low to high: OR, AND, NOT. Each binary
// production loops on its own operator, building left-associative trees.

func (p *parser) parseCondition() (Cond, error) {
	return p.parseOrCondition()
}

func (p *parser) parseOrCondition() (Cond, error) {
	left, err := p.parseAndCondition()
	if err != nil {
		return nil, err
	}
	for p.match(tkOr) {
		right, err := p.parseAndCondition()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAndCondition() (Cond, error) {
	left, err := p.parseNotCondition()
	if err != nil {
		return nil, err
	}
	for p.match(tkAnd) {
		right, err := p.parseNotCondition()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNotCondition() (Cond, error) {
	if p.match(tkNot) {
		operand, err := p.parsePrimaryCondition()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	return p.parsePrimaryCondition()
}

func (p *parser) parsePrimaryCondition() (Cond, error) {
	if p.match(tkLeftParen) {
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tkRightParen, "Expected ')' after condition"); err != nil {
			return nil, err
		}
		return cond, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (Cond, error) {
	column, err := p.consume(tkIdentifier, "Expected column name in condition")
	if err != nil {
		return nil, err
	}
	var operator string
	switch {
	case p.match(tkEqual):
		operator = "="
	case p.match(tkNotEqual):
		operator = "!="
	case p.match(tkLessThan):
		operator = "<"
	case p.match(tkLessEqual):
		operator = "<="
	case p.match(tkGreaterThan):
		operator = ">"
	case p.match(tkGreaterEqual):
		operator = ">="
	default:
		return nil, p.errorAt(p.peek(), "Expected comparison operator (=, !=, <, <=, >, >=)")
	}
	literal, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &Compare{Column: column, Operator: operator, Literal: literal}, nil
}

func (p *parser) parseLiteral() (Token, error) {
	if p.match(tkNumber, tkString) {
		return p.previous(), nil
	}
	return Token{}, p.errorAt(p.peek(), "Expected literal (number or string)")
}

func (p *parser) atEnd() bool {
	return p.peek().Type == tkEOF
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(tt tokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *parser) match(types ...tokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(tt tokenType, message string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

// errorAt builds a syntax diagnostic at the offending token. End of
// input is reported specially since there is no lexeme to show.
func (p *parser) errorAt(t Token, message string) error {
	if t.Type == tkEOF {
		return Diagnostic{
			Phase:   PhaseSyntax,
			Message: fmt.Sprintf("%s (at end of input)", message),
			Line:    t.Line,
			Col:     t.Col,
		}
	}
	return Diagnostic{
		Phase:   PhaseSyntax,
		Message: fmt.Sprintf("%s. Found '%s' (%s)", message, t.Lexeme, t.Kind()),
		Line:    t.Line,
		Col:     t.Col,
	}
}
