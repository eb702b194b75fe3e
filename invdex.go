// Package invdex is an in-memory inverted-index search engine: it ingests
// (document-path, token-stream) pairs, builds per-term postings with
// per-document term frequency, and answers boolean queries written in a
// small infix language (AND, OR, ANDNOT, parentheses), ranked by a
// TF·IDF-style score in descending order.
package invdex

import (
	"github.com/arvolabs/invdex/internal/engine"
	"github.com/arvolabs/invdex/internal/index"
	"github.com/arvolabs/invdex/internal/lex"
)

// Result is a single scored hit returned from a query.
type Result = engine.Result

// Index is a corpus plus its term dictionary. The zero value is not usable;
// construct one with New.
type Index struct {
	store *index.Store
}

// New returns a ready-to-use, empty Index.
func New() *Index {
	return &Index{store: index.New()}
}

// AddDocument indexes tokens under path. Calling AddDocument twice with the
// same path counts it twice in the corpus size used for scoring, while the
// tokens of both calls accumulate into the postings of a single document (see
// DESIGN.md).
func (idx *Index) AddDocument(path string, tokens []string) {
	idx.store.AddDocument(path, tokens)
}

// HasTerm reports whether term has ever been indexed.
func (idx *Index) HasTerm(term string) bool {
	return idx.store.HasTerm(term)
}

// DocumentCount returns the number of AddDocument calls made so far,
// duplicates included.
func (idx *Index) DocumentCount() int {
	return idx.store.DocumentCount()
}

// Query parses tokens as a boolean query, evaluates it against the index,
// and returns the matching documents sorted by descending score. A malformed
// query returns a nil slice and a non-nil error whose Error() is one of the
// fixed diagnostic strings; an unparseable query is the only error case.
func (idx *Index) Query(tokens []string) ([]Result, error) {
	return engine.Execute(idx.store, tokens)
}

// Tokenize splits a raw query string into lexemes suitable for Query:
// parentheses are standalone tokens and every other run of non-space,
// non-paren characters is one token. Tokenization is a caller convenience,
// not a requirement (Query accepts any []string regardless of how it was
// produced).
func Tokenize(raw string) ([]string, error) {
	return lex.Tokenize(raw)
}
