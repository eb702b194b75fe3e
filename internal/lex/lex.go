// Package lex is a reference tokenizer satisfying the caller-side
// tokenization contract: parentheses come out as standalone lexemes and
// every other run of non-space, non-paren characters comes out as one
// lexeme. Tokenization is a caller responsibility (index.Store.AddDocument
// and query.Parse both accept plain []string), so neither of them depends on
// this package; it exists for callers who want a ready-made tokenizer for
// query strings, and the root package re-exports it as invdex.Tokenize.
package lex

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Word", Pattern: `[^\s()]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// tokenStream captures a flat run of parens and words, in order.
type tokenStream struct {
	Tokens []string `parser:"( @Paren | @Word )*"`
}

var tokenParser = participle.MustBuild[tokenStream](
	participle.Lexer(tokenLexer),
	participle.Elide("Whitespace"),
)

// Tokenize splits a raw query string into lexemes suitable for query.Parse:
// "(" and ")" each come out as their own token, and every other maximal run
// of non-space, non-paren characters comes out as a single token.
func Tokenize(raw string) ([]string, error) {
	ts, err := tokenParser.ParseString("", raw)
	if err != nil {
		return nil, err
	}
	return ts.Tokens, nil
}
