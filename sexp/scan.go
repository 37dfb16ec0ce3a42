package sexp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories produced by the scanner.
const (
	tokEOF = iota
	tokQuote
	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
	tokSetBrace // '#{'
	tokString
	tokNum
	tokId
)

func tokName(typ int) string {
	switch typ {
	case tokEOF:
		return "EOF"
	case tokQuote:
		return "'"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokLBrack:
		return "["
	case tokRBrack:
		return "]"
	case tokLBrace:
		return "{"
	case tokRBrace:
		return "}"
	case tokSetBrace:
		return "#{"
	case tokString:
		return "STRING"
	case tokNum:
		return "NUM"
	case tokId:
		return "ID"
	}
	return "<unknown token>"
}

// A symbol may contain grammar punctuation, a namespace separator and
// inner apostrophes (f', args''), but may not start with an apostrophe:
// a leading apostrophe is the quote marker.
const idFirst = `[a-zA-Z_\+\-\*/=!<>\?&%\.:]`
const idRest = `[a-zA-Z0-9_'\+\-\*/=!<>\?&%\.:]`

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time DFA compilation

func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;[^\n]*\n?`), skip) // comments
		lexer.Add([]byte(`( |\t|\n|\r|,)+`), skip)
		lexer.Add([]byte(`\"[^"]*\"`), mkToken(tokString))
		lexer.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?`), mkToken(tokNum))
		lexer.Add([]byte(idFirst+idRest+`*`), mkToken(tokId))
		lexer.Add([]byte(`\#\{`), mkToken(tokSetBrace))
		lexer.Add([]byte(`'`), mkToken(tokQuote))
		lexer.Add([]byte(`\(`), mkToken(tokLParen))
		lexer.Add([]byte(`\)`), mkToken(tokRParen))
		lexer.Add([]byte(`\[`), mkToken(tokLBrack))
		lexer.Add([]byte(`\]`), mkToken(tokRBrack))
		lexer.Add([]byte(`\{`), mkToken(tokLBrace))
		lexer.Add([]byte(`\}`), mkToken(tokRBrace))
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
		}
	})
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func mkToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

// token is one scanned input token.
type token struct {
	typ    int
	lexeme string
}

func (t token) String() string {
	return tokName(t.typ) + "(" + t.lexeme + ")"
}

// scanner wraps a lexmachine scanner over one input string.
type scanner struct {
	s *lexmachine.Scanner
}

func newScanner(input string) (*scanner, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &scanner{s: s}, nil
}

// next returns the next token, or a tokEOF token at end of input.
// Unconsumable input is reported and skipped.
func (sc *scanner) next() (token, error) {
	tok, err, eof := sc.s.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			tracer().Errorf("scanner error: %v", err)
			sc.s.TC = ui.FailTC
			tok, err, eof = sc.s.Next()
			continue
		}
		return token{typ: tokEOF}, err
	}
	if eof {
		return token{typ: tokEOF}, nil
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("token %s(%s)", tokName(t.Type), string(t.Lexeme))
	return token{typ: t.Type, lexeme: string(t.Lexeme)}, nil
}
