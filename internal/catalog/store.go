package catalog

// Store holds the canonical idea collection. It is populated once and never
// mutated afterwards; every read hands out copies so callers can reorder
// freely.
type Store struct {
	ideas []Idea
	byID  map[string]int
}

// NewStore builds a read-only store over the given collection, preserving
// declaration order. Pass nil to use the built-in dataset.
func NewStore(ideas []Idea) *Store {
	if ideas == nil {
		ideas = Dataset()
	}
	byID := make(map[string]int, len(ideas))
	for i, idea := range ideas {
		if _, dup := byID[idea.ID]; !dup {
			byID[idea.ID] = i
		}
	}
	return &Store{ideas: ideas, byID: byID}
}

// GetByID looks up an idea by its primary key. Unknown ids report false,
// never an error; callers render a not-found state.
func (s *Store) GetByID(id string) (Idea, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Idea{}, false
	}
	return s.ideas[i], true
}

// All returns the full collection in stable declaration order. The returned
// slice is a copy.
func (s *Store) All() []Idea {
	out := make([]Idea, len(s.ideas))
	copy(out, s.ideas)
	return out
}

// Len reports the collection size.
func (s *Store) Len() int {
	return len(s.ideas)
}
