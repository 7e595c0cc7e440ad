// Package survey: observation and category-set types.

package survey

import "fmt"

// Observation is one survey record reduced to the two variables under
// analysis: its row category (e.g. organization type) and column category
// (e.g. education level).
type Observation struct {
	Row string
	Col string
}

// CategorySet is a closed, ordered set of category labels for one variable.
// Order is preserved: it becomes the row/column order of the resulting
// contingency table and of every report artifact.
type CategorySet struct {
	name   string
	order  []string
	lookup map[string]int
}

// NewCategorySet builds a validated category set.
// Labels must be non-empty and unique. Complexity: O(n).
func NewCategorySet(name string, labels []string) (*CategorySet, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("NewCategorySet(%s): %w", name, ErrEmptyInput)
	}

	s := &CategorySet{
		name:   name,
		order:  append([]string(nil), labels...),
		lookup: make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if _, dup := s.lookup[l]; dup {
			return nil, fmt.Errorf("NewCategorySet(%s): %q: %w", name, l, ErrDuplicateCategory)
		}
		s.lookup[l] = i
	}

	return s, nil
}

// Name returns the variable name the set belongs to.
func (s *CategorySet) Name() string { return s.name }

// Len returns the number of categories.
func (s *CategorySet) Len() int { return len(s.order) }

// Labels returns a copy of the category labels in declared order.
func (s *CategorySet) Labels() []string { return append([]string(nil), s.order...) }

// Index returns the position of label in the declared order, or
// ErrUnknownCategory if the label is not a member.
func (s *CategorySet) Index(label string) (int, error) {
	i, ok := s.lookup[label]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", s.name, label, ErrUnknownCategory)
	}

	return i, nil
}

// Contains reports membership without error plumbing.
func (s *CategorySet) Contains(label string) bool {
	_, ok := s.lookup[label]

	return ok
}
