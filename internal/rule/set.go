package rule

import "fmt"

// Set is a rule set: a lookup table from rule id to rule, preserving
// insertion order for listing. A Set is mutable while being built and must
// be treated as read-only once verification starts; concurrent
// verifications may then share it freely.
type Set struct {
	byID  map[string]*Rule
	order []string
}

// NewSet builds a rule set from the given rules, failing on a duplicate id.
func NewSet(rules ...*Rule) (*Set, error) {
	s := &Set{byID: make(map[string]*Rule, len(rules))}
	for _, r := range rules {
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNewSet is NewSet for statically known rule sets.
func MustNewSet(rules ...*Rule) *Set {
	s, err := NewSet(rules...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add inserts a rule, rejecting duplicate ids.
func (s *Set) Add(r *Rule) error {
	if _, ok := s.byID[r.ID]; ok {
		return fmt.Errorf("duplicate rule id %q", r.ID)
	}
	s.byID[r.ID] = r
	s.order = append(s.order, r.ID)
	return nil
}

// Lookup returns the rule with the given id, or nil.
func (s *Set) Lookup(id string) *Rule {
	return s.byID[id]
}

// IDs returns the rule ids in insertion order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.order) }

// Unsound returns the ids of rules that fail the semantic soundness check,
// in insertion order. Intended as a declaration-time diagnostic.
func (s *Set) Unsound() []string {
	var out []string
	for _, id := range s.order {
		if !s.byID[id].IsSound() {
			out = append(out, id)
		}
	}
	return out
}
