package index

import "github.com/bits-and-blooms/bitset"

// Posting is the per-term record of which documents contain the term and
// how many times each one does. The two halves are kept in lockstep: a
// document ID is in ids iff it has a nonzero entry in tf.
type Posting struct {
	ids *bitset.BitSet
	tf  map[uint32]uint32
}

func newPosting() *Posting {
	return &Posting{
		ids: bitset.New(0),
		tf:  make(map[uint32]uint32),
	}
}

// add records one occurrence of the posting's term in document id.
func (p *Posting) add(id uint32) {
	if p.tf[id] == 0 {
		p.ids.Set(uint(id))
	}
	p.tf[id]++
}

// IDs returns the set of document IDs containing the term. The caller must
// not mutate the result; it is owned by the posting.
func (p *Posting) IDs() *bitset.BitSet {
	return p.ids
}

// DocFrequency is the number of distinct documents containing the term.
func (p *Posting) DocFrequency() uint {
	return p.ids.Count()
}

// TermFrequency is the number of occurrences of the term in document id,
// or 0 if the term never occurs there.
func (p *Posting) TermFrequency(id uint32) uint32 {
	return p.tf[id]
}
