// Package index holds the corpus and the term dictionary: postings and
// per-document term frequency, without the query language built on top of it.
package index

// Store owns the corpus membership (the ordered sequence of document paths
// that have been added, duplicates allowed) and the term dictionary mapping
// each term to its posting.
//
// A Store is build-once/query-many: AddDocument is the only mutator, and it
// is not safe to call concurrently with itself or with any read. Concurrent
// readers are fine once writes have stopped.
type Store struct {
	terms map[string]*Posting

	pathToID map[string]uint32 // first-sight ID for each distinct path
	idToPath []string          // distinct paths, index == document ID

	allPaths []string // every AddDocument call, duplicates included
}

// New returns an empty index.
func New() *Store {
	return &Store{
		terms:    make(map[string]*Posting),
		pathToID: make(map[string]uint32),
	}
}

// AddDocument indexes tokens under path. path is appended to the corpus
// regardless of whether it has been seen before; calling AddDocument twice
// with the same path does not deduplicate it, so it is counted twice in the
// corpus size n of the log(n/df) factor used by scoring.
//
// tokens may be empty: that still adds path to the corpus without touching
// any posting. Order within tokens does not affect the resulting state,
// only the multiplicity of each distinct term.
func (s *Store) AddDocument(path string, tokens []string) {
	id, ok := s.pathToID[path]
	if !ok {
		id = uint32(len(s.idToPath))
		s.pathToID[path] = id
		s.idToPath = append(s.idToPath, path)
	}
	s.allPaths = append(s.allPaths, path)

	for _, term := range tokens {
		p, ok := s.terms[term]
		if !ok {
			p = newPosting()
			s.terms[term] = p
		}
		p.add(id)
	}
}

// HasTerm reports whether term has ever been indexed.
func (s *Store) HasTerm(term string) bool {
	_, ok := s.terms[term]
	return ok
}

// GetPosting returns the posting for term, if any.
func (s *Store) GetPosting(term string) (*Posting, bool) {
	p, ok := s.terms[term]
	return p, ok
}

// DocumentCount is the size of the corpus, including duplicate paths: this
// is the n in the log(n/df) factor used in scoring.
func (s *Store) DocumentCount() int {
	return len(s.allPaths)
}

// PathByID returns the document path for a document ID produced by
// evaluating an AST against this store.
func (s *Store) PathByID(id uint32) string {
	return s.idToPath[id]
}
