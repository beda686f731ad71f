package main

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine-based tokenizer for command lines.

// Token categories. Command dispatch works on the lexeme, so words and
// the arrow both surface as their text.
const (
	tokWord = iota + 1
	tokArrow
)

type lexer struct {
	lx *lexmachine.Lexer
}

// newLexer compiles the DFA for the command-line tokens. It returns an
// error if compiling fails.
func newLexer() (*lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`->`), makeToken(tokArrow))
	lx.Add([]byte(`[a-zA-Z0-9_\.\-]+`), makeToken(tokWord))
	lx.Add([]byte(`( |\t)+`), skip)
	if err := lx.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &lexer{lx: lx}, nil
}

// Tokenize splits a command line into words.
func (l *lexer) Tokenize(line string) ([]string, error) {
	s, err := l.lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, 8)
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC // skip over unscannable input
				continue
			}
			return nil, err
		}
		if tok == nil {
			continue
		}
		token := tok.(*lexmachine.Token)
		words = append(words, string(token.Lexeme))
	}
	return words, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}
