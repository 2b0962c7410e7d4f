package wordset

// Set is a string set that remembers insertion order.
type Set struct {
	index map[string]struct{}
	items []string
}

func New(capacity int) *Set {
	return &Set{
		index: make(map[string]struct{}, capacity),
		items: make([]string, 0, capacity),
	}
}

func Of(items ...string) *Set {
	s := New(len(items))
	s.AddAll(items...)
	return s
}

// Add inserts item and reports whether it was not already present.
func (s *Set) Add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}

	s.index[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

func (s *Set) AddAll(items ...string) {
	for _, item := range items {
		s.Add(item)
	}
}

func (s *Set) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

func (s *Set) Len() int {
	return len(s.items)
}

// Slice returns a copy of the members in insertion order.
func (s *Set) Slice() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
