package scan

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types produced by the tokenizer.
const (
	SymM = iota + 1 // a run of 'M'
	SymI            // a run of 'I'
	SymU            // a run of 'U'
)

// Token is one maximal run of a single MIU symbol.
type Token struct {
	Kind   int    // one of SymM, SymI, SymU
	Lexeme string // the run as it appeared in the input
	Pos    int    // byte position of the run's first symbol
}

func (t Token) String() string {
	return fmt.Sprintf("'%s'@%d", t.Lexeme, t.Pos)
}

// Tokenizer scans MIU symbol strings. The backing DFA is compiled once by
// NewTokenizer; a Tokenizer may be reused for any number of inputs.
type Tokenizer struct {
	lexer *lexmachine.Lexer
}

// NewTokenizer compiles the DFA for the MIU alphabet. It returns an error
// if compiling fails.
func NewTokenizer() (*Tokenizer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte("M+"), makeToken(SymM))
	lexer.Add([]byte("I+"), makeToken(SymI))
	lexer.Add([]byte("U+"), makeToken(SymU))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &Tokenizer{lexer: lexer}, nil
}

// makeToken is a lexmachine action wrapping a scanned match into a Token.
func makeToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: kind, Lexeme: string(m.Bytes), Pos: m.TC}, nil
	}
}

// Tokens splits input into runs of MIU symbols. The first character outside
// the alphabet aborts the scan with an error naming the character and its
// position.
func (t *Tokenizer) Tokens(input string) ([]Token, error) {
	scanner, err := t.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is && ui.FailTC < len(input) {
				return nil, fmt.Errorf("not a MIU symbol: %q at position %d",
					input[ui.FailTC], ui.FailTC)
			}
			return nil, err
		}
		token := tok.(Token)
		tracer().Debugf("tok is %v", token)
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Check verifies that input is a string over the alphabet {M, I, U}. The
// empty string passes trivially.
func (t *Tokenizer) Check(input string) error {
	_, err := t.Tokens(input)
	return err
}
