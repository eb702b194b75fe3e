package query

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/arvolabs/invdex/internal/index"
)

// Node is a query AST node: a Word leaf or one of the three binary set
// operators. Evaluate walks the node post-order, producing the set of
// document IDs matched against s.
type Node interface {
	Evaluate(s *index.Store) *bitset.BitSet
	String() string
}

// Word is a leaf node naming a single term.
type Word struct {
	Term string
}

func (w Word) Evaluate(s *index.Store) *bitset.BitSet {
	p, ok := s.GetPosting(w.Term)
	if !ok {
		return bitset.New(0)
	}
	// Evaluation never mutates postings; hand back a copy.
	return p.IDs().Clone()
}

func (w Word) String() string { return w.Term }

// Or matches documents in either operand.
type Or struct {
	Left, Right Node
}

func (n Or) Evaluate(s *index.Store) *bitset.BitSet {
	return n.Left.Evaluate(s).Union(n.Right.Evaluate(s))
}

func (n Or) String() string {
	return "( " + n.Left.String() + " OR " + n.Right.String() + " )"
}

// And matches documents in both operands.
type And struct {
	Left, Right Node
}

func (n And) Evaluate(s *index.Store) *bitset.BitSet {
	return n.Left.Evaluate(s).Intersection(n.Right.Evaluate(s))
}

func (n And) String() string {
	return "( " + n.Left.String() + " AND " + n.Right.String() + " )"
}

// AndNot matches documents in Left but not in Right.
type AndNot struct {
	Left, Right Node
}

func (n AndNot) Evaluate(s *index.Store) *bitset.BitSet {
	return n.Left.Evaluate(s).Difference(n.Right.Evaluate(s))
}

func (n AndNot) String() string {
	return "( " + n.Left.String() + " ANDNOT " + n.Right.String() + " )"
}
