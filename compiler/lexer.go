// lexer creates tokens from a source string. The tokens are fed into the
// parser.
package compiler

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	src  string
	pos  int
	line int
	col  int
	// diags collects lexical errors. The lexer always makes forward
	// progress past an offending character, so scanning never aborts.
	diags []Diagnostic
}

func NewLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// Lex scans the whole source and returns the token stream, terminated by
// a single EOF token, together with any lexical diagnostics. Invalid
// characters and unclosed strings become tkIllegal tokens; whitespace
// and comments produce no tokens.
func (l *lexer) Lex() ([]Token, []Diagnostic) {
	tokens := []Token{}
	for !l.atEnd() {
		if t, ok := l.scanToken(); ok {
			tokens = append(tokens, t)
		}
	}
	tokens = append(tokens, Token{Type: tkEOF, Line: l.line, Col: l.col})
	return tokens, l.diags
}

func (l *lexer) scanToken() (Token, bool) {
	startLine, startCol, start := l.line, l.col, l.pos
	emit := func(tt tokenType) (Token, bool) {
		return Token{
			Type:   tt,
			Lexeme: l.src[start:l.pos],
			Line:   startLine,
			Col:    startCol,
		}, true
	}

	r := l.next()
	switch {
	case r == '(':
		return emit(tkLeftParen)
	case r == ')':
		return emit(tkRightParen)
	case r == ',':
		return emit(tkComma)
	case r == ';':
		return emit(tkSemicolon)
	case r == '*':
		return emit(tkStar)
	case r == '+':
		return emit(tkPlus)
	case r == '/':
		return emit(tkSlash)
	case r == '=':
		return emit(tkEqual)
	case r == '!':
		if l.peek() == '=' {
			l.next()
			return emit(tkNotEqual)
		}
		l.reportf(startLine, startCol, "Invalid character '!'")
		return emit(tkIllegal)
	case r == '<':
		if l.peek() == '=' {
			l.next()
			return emit(tkLessEqual)
		}
		// <> is the alternate spelling of !=
		if l.peek() == '>' {
			l.next()
			return emit(tkNotEqual)
		}
		return emit(tkLessThan)
	case r == '>':
		if l.peek() == '=' {
			l.next()
			return emit(tkGreaterEqual)
		}
		return emit(tkGreaterThan)
	case r == '-':
		if l.peek() == '-' {
			l.skipLineComment()
			return Token{}, false
		}
		return emit(tkMinus)
	case r == '#':
		if l.peek() == '#' {
			l.skipBlockComment(startLine, startCol)
			return Token{}, false
		}
		l.reportf(startLine, startCol, "Invalid character '#'")
		return emit(tkIllegal)
	case r == '\'':
		return l.scanString(startLine, startCol, start)
	case unicode.IsSpace(r):
		return Token{}, false
	case unicode.IsDigit(r):
		return l.scanNumber(emit)
	case unicode.IsLetter(r):
		return l.scanWord(start, emit)
	}
	l.reportf(startLine, startCol, "Invalid character '%c'", r)
	return emit(tkIllegal)
}

func (l *lexer) scanWord(start int, emit func(tokenType) (Token, bool)) (Token, bool) {
	for !l.atEnd() {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.next()
	}
	if tt, ok := keywords[l.src[start:l.pos]]; ok {
		return emit(tt)
	}
	return emit(tkIdentifier)
}

func (l *lexer) scanNumber(emit func(tokenType) (Token, bool)) (Token, bool) {
	for !l.atEnd() && unicode.IsDigit(l.peek()) {
		l.next()
	}
	if !l.atEnd() && l.peek() == '.' {
		l.next()
		for !l.atEnd() && unicode.IsDigit(l.peek()) {
			l.next()
		}
	}
	return emit(tkNumber)
}

func (l *lexer) scanString(startLine int, startCol int, start int) (Token, bool) {
	for !l.atEnd() && l.peek() != '\'' {
		l.next()
	}
	if l.atEnd() {
		l.reportf(startLine, startCol, "Unclosed string literal")
		return Token{
			Type:   tkIllegal,
			Lexeme: l.src[start:l.pos],
			Line:   startLine,
			Col:    startCol,
		}, true
	}
	l.next() // closing quote, kept in the lexeme
	return Token{
		Type:   tkString,
		Lexeme: l.src[start:l.pos],
		Line:   startLine,
		Col:    startCol,
	}, true
}

func (l *lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.next()
	}
}

func (l *lexer) skipBlockComment(startLine int, startCol int) {
	l.next() // second opening #
	for !l.atEnd() {
		if l.next() == '#' && !l.atEnd() && l.peek() == '#' {
			l.next()
			return
		}
	}
	l.reportf(startLine, startCol, "Unterminated multi-line comment")
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) next() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *lexer) reportf(line int, col int, format string, args ...any) {
	l.diags = append(l.diags, Diagnostic{
		Phase:   PhaseLexical,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Col:     col,
	})
}
