// Package engine ties the parser and the index store together: parse the
// query, evaluate the AST against the store, score the candidate set, and
// return it sorted by descending score.
package engine

import (
	"math"
	"sort"

	"github.com/arvolabs/invdex/internal/index"
	"github.com/arvolabs/invdex/internal/query"
)

// Result is a single scored hit: a document path and its score.
type Result struct {
	Path  string
	Score float64
}

// Execute parses tokens, evaluates the resulting AST against s, scores the
// matched documents by summing log(tf)·log(idf) over the raw query token
// list, and returns the hits sorted by descending score. A parse failure is
// returned as-is (a query.ParseError) with a nil result slice.
func Execute(s *index.Store, tokens []string) ([]Result, error) {
	node, err := query.Parse(tokens)
	if err != nil {
		return nil, err
	}

	matched := node.Evaluate(s)
	results := make([]Result, 0, matched.Count())
	for id, ok := matched.NextSet(0); ok; id, ok = matched.NextSet(id + 1) {
		results = append(results, Result{
			Path:  s.PathByID(uint32(id)),
			Score: score(s, uint32(id), tokens),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// score sums s(d, w) over the raw query token sequence, reserved words and
// all, with no special-casing. A reserved word contributes 0 unless some
// document was indexed with that same token, in which case it is scored like
// any other term.
func score(s *index.Store, doc uint32, tokens []string) float64 {
	n := float64(s.DocumentCount())
	var total float64
	for _, w := range tokens {
		p, ok := s.GetPosting(w)
		if !ok {
			continue
		}
		tf := p.TermFrequency(doc)
		if tf == 0 {
			continue
		}
		df := float64(p.DocFrequency())
		total += math.Log(float64(tf)) * math.Log(n/df)
	}
	return total
}
