package hdl

import (
	"strings"
	"unicode"

	"github.com/hdlsim/hdlsim/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Bits
	Section
	EOL
	Star
	Plus
	Slash
	LParen
	RParen
	Comma
	Equal
)

// Lexer returns a new lexer for circuit source text.
//
// Identifiers may carry trailing quotes (latch outputs such as L'). A run
// of decimal digits is emitted as a Bits token with its raw string value.
// Section keywords are introduced by a dot, comments by '#' and run to the
// end of the line. Newlines are significant and emitted as EOL.
//
func Lexer(input string) lex.Interface {
	return lex.New(strings.NewReader(input), lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case r == '\n':
		l.Emit(EOL, "end of line")
	case unicode.IsSpace(r):
		l.AcceptWhile(func(r rune) bool { return r != '\n' && unicode.IsSpace(r) })
	case r == '#':
		l.AcceptWhile(func(r rune) bool { return r != '\n' })
	case r == '.':
		return lexSection
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case '0' <= r && r <= '9':
		return lexBits
	case r == '*':
		l.Emit(Star, "*")
	case r == '+':
		l.Emit(Plus, "+")
	case r == '/':
		l.Emit(Slash, "/")
	case r == '(':
		l.Emit(LParen, "(")
	case r == ')':
		l.Emit(RParen, ")")
	case r == ',':
		l.Emit(Comma, ",")
	case r == '=':
		l.Emit(Equal, "=")
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexSection(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	r := l.Next()
	for unicode.IsLetter(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Section, buf.String())
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	for r == '\'' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

func lexBits(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	r := l.Next()
	for '0' <= r && r <= '9' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Bits, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
