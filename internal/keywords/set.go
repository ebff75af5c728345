package keywords

import "strings"

// OrderedSet is a duplicate-free string collection that remembers insertion order.
type OrderedSet struct {
	index  map[string]struct{}
	values []string
}

// NewOrderedSet creates an empty set
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{index: make(map[string]struct{})}
}

// Add inserts v unless it is already present and reports whether v was new.
func (s *OrderedSet) Add(v string) bool {
	if _, exists := s.index[v]; exists {
		return false
	}
	s.index[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// AddAll inserts every value in order
func (s *OrderedSet) AddAll(values ...string) {
	for _, v := range values {
		s.Add(v)
	}
}

// Contains reports whether v is in the set
func (s *OrderedSet) Contains(v string) bool {
	_, exists := s.index[v]
	return exists
}

// Len returns the number of values, including an empty string if one was added
func (s *OrderedSet) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in insertion order
func (s *OrderedSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Slice returns the values in insertion order with blank strings dropped
func (s *OrderedSet) Slice() []string {
	out := make([]string, 0, len(s.values))
	for _, v := range s.values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
