// Package rule represents inference rules of a propositional proof system
// and their instantiation against concrete formulas. A rule is a named
// schema of assumption patterns and a conclusion pattern; an axiom is a rule
// with no assumptions. Rule sets are explicit values passed into every
// verification, never process state.
package rule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/table"
)

// Rule is an inference rule schema: assumptions ⊢ conclusion. Rules are
// immutable once built.
type Rule struct {
	ID          string
	Assumptions []formula.Formula
	Conclusion  formula.Formula
}

// New builds a rule, rejecting an empty id.
func New(id string, assumptions []formula.Formula, conclusion formula.Formula) (*Rule, error) {
	if id == "" {
		return nil, fmt.Errorf("rule id must not be empty")
	}
	if conclusion == nil {
		return nil, fmt.Errorf("rule %s has no conclusion", id)
	}
	return &Rule{ID: id, Assumptions: assumptions, Conclusion: conclusion}, nil
}

// Axiom builds a zero-assumption rule.
func Axiom(id string, conclusion formula.Formula) (*Rule, error) {
	return New(id, nil, conclusion)
}

// MustNew is New for statically known rules, such as the built-in systems.
func MustNew(id string, assumptions []formula.Formula, conclusion formula.Formula) *Rule {
	r, err := New(id, assumptions, conclusion)
	if err != nil {
		panic(err)
	}
	return r
}

// Arity is the number of assumptions.
func (r *Rule) Arity() int { return len(r.Assumptions) }

// IsAxiom reports whether the rule has no assumptions.
func (r *Rule) IsAxiom() bool { return len(r.Assumptions) == 0 }

// String renders the rule in sequent form.
func (r *Rule) String() string {
	parts := make([]string, len(r.Assumptions))
	for i, a := range r.Assumptions {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s: %s ⊢ %s", r.ID, strings.Join(parts, ", "), r.Conclusion)
}

// AssumptionVars returns the variable names of the assumptions, sorted.
func (r *Rule) AssumptionVars() []string {
	set := make(map[string]struct{})
	for _, a := range r.Assumptions {
		for name := range formula.VarSet(a) {
			set[name] = struct{}{}
		}
	}
	return sortedNames(set)
}

// ConclusionVars returns the variable names of the conclusion, sorted.
func (r *Rule) ConclusionVars() []string {
	return formula.Vars(r.Conclusion)
}

// Vars returns the variable names of assumptions and conclusion, sorted.
func (r *Rule) Vars() []string {
	set := formula.VarSet(r.Conclusion)
	for _, a := range r.Assumptions {
		for name := range formula.VarSet(a) {
			set[name] = struct{}{}
		}
	}
	return sortedNames(set)
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CoverageError reports a binding that does not instantiate every variable
// of the rule.
type CoverageError struct {
	RuleID  string
	Missing []string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("binding for rule %s leaves variables unbound: %s",
		e.RuleID, strings.Join(e.Missing, ", "))
}

// ArityError reports a candidate count different from the rule's assumption
// count.
type ArityError struct {
	RuleID    string
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("rule %s takes %d assumptions, got %d", e.RuleID, e.Want, e.Got)
}

// Apply instantiates the conclusion under the binding. The binding must
// cover every variable of the rule (assumptions included); a partial
// instantiation is a CoverageError, not a partial result.
func (r *Rule) Apply(b formula.Binding) (formula.Formula, error) {
	if missing := b.Missing(r.Vars()); len(missing) > 0 {
		return nil, &CoverageError{RuleID: r.ID, Missing: missing}
	}
	return formula.Substitute(r.Conclusion, b), nil
}

// MatchAssumptions unifies the rule's assumption patterns against the
// candidate formulas in order, merging the bindings. Candidates must match
// the arity exactly; a variable bound differently by two assumptions is a
// conflict, never a silent override.
func (r *Rule) MatchAssumptions(candidates []formula.Formula) (formula.Binding, error) {
	if len(candidates) != len(r.Assumptions) {
		return nil, &ArityError{RuleID: r.ID, Want: len(r.Assumptions), Got: len(candidates)}
	}
	merged := make(formula.Binding)
	for i, pattern := range r.Assumptions {
		b, err := formula.Unify(pattern, candidates[i])
		if err != nil {
			return nil, fmt.Errorf("assumption %d of rule %s: %w", i, r.ID, err)
		}
		merged, err = merged.Merge(b)
		if err != nil {
			return nil, fmt.Errorf("assumption %d of rule %s: %w", i, r.ID, err)
		}
	}
	return merged, nil
}

// IsSound reports whether the rule is coherent with the truth-table
// semantics: the conjunction of its assumptions implies its conclusion in
// every row. Soundness is a declaration-time diagnostic; the proof verifier
// trusts the rule set it is given.
func (r *Rule) IsSound() bool {
	var f formula.Formula = formula.True
	for _, a := range r.Assumptions {
		f = formula.Conj(f, a)
	}
	return table.IsTautology(formula.Imply(f, r.Conclusion))
}

// Specialize returns a copy of the rule with the binding applied to every
// assumption and the conclusion.
func (r *Rule) Specialize(id string, b formula.Binding) *Rule {
	assumptions := make([]formula.Formula, len(r.Assumptions))
	for i, a := range r.Assumptions {
		assumptions[i] = formula.Substitute(a, b)
	}
	return &Rule{
		ID:          id,
		Assumptions: assumptions,
		Conclusion:  formula.Substitute(r.Conclusion, b),
	}
}

// IsSpecializationOf reports whether r can be obtained from other by a
// single consistent substitution.
func (r *Rule) IsSpecializationOf(other *Rule) bool {
	if len(r.Assumptions) != len(other.Assumptions) {
		return false
	}
	merged := make(formula.Binding)
	for i := range other.Assumptions {
		b, err := formula.Unify(other.Assumptions[i], r.Assumptions[i])
		if err != nil {
			return false
		}
		if merged, err = merged.Merge(b); err != nil {
			return false
		}
	}
	b, err := formula.Unify(other.Conclusion, r.Conclusion)
	if err != nil {
		return false
	}
	if _, err = merged.Merge(b); err != nil {
		return false
	}
	return true
}
