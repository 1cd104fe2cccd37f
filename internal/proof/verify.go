package proof

import (
	"errors"
	"fmt"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/rule"
)

// Verdict is the outcome of verifying one proof.
type Verdict int

const (
	// Failed means some step was rejected, or the goal was not reached.
	Failed Verdict = iota
	// Partial means every checked step succeeded but the proof contains an
	// incompleteness marker.
	Partial
	// Verified means every step succeeded and the last established formula
	// is the goal.
	Verified
)

func (v Verdict) String() string {
	switch v {
	case Verified:
		return "VERIFIED"
	case Partial:
		return "PARTIAL"
	case Failed:
		return "FAILED"
	default:
		return "?"
	}
}

// FailKind classifies a verification failure.
type FailKind int

const (
	FailNone FailKind = iota
	// FailUnknownRule: a step references a rule id absent from the rule set.
	FailUnknownRule
	// FailNotAnAxiom: an axiom specialization references a rule with
	// assumptions.
	FailNotAnAxiom
	// FailMalformedBinding: a binding does not cover every rule variable.
	FailMalformedBinding
	// FailArityMismatch: reference count differs from the rule's assumption
	// count.
	FailArityMismatch
	// FailUnification: an assumption pattern does not match its candidate.
	FailUnification
	// FailBindingConflict: one variable required to bind two different
	// formulas.
	FailBindingConflict
	// FailDanglingReference: a reference is out of range, forward, self or
	// to an unestablished step.
	FailDanglingReference
	// FailGoalMismatch: all steps succeeded but the final formula is not the
	// goal.
	FailGoalMismatch
)

func (k FailKind) String() string {
	switch k {
	case FailNone:
		return "none"
	case FailUnknownRule:
		return "unknown rule"
	case FailNotAnAxiom:
		return "not an axiom"
	case FailMalformedBinding:
		return "malformed binding"
	case FailArityMismatch:
		return "arity mismatch"
	case FailUnification:
		return "unification failure"
	case FailBindingConflict:
		return "binding conflict"
	case FailDanglingReference:
		return "dangling reference"
	case FailGoalMismatch:
		return "goal mismatch"
	default:
		return "?"
	}
}

// StepError is a verification failure located at one step.
type StepError struct {
	Index  int // step index, not combined index; -1 for the goal check
	Kind   FailKind
	RuleID string
	Err    error
}

func (e *StepError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("step %d: %s: %v", e.Index, e.Kind, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result is the outcome of replaying a proof. Established holds one entry
// per checked step, index-aligned with the proof's steps; entries for
// incomplete steps are nil. Inputs are never modified.
type Result struct {
	Verdict     Verdict
	Established []formula.Formula
	Failure     *StepError
}

// Verify replays the proof against the rule set, left to right, in a single
// pass. Every binding must be supplied or derivable from the referenced
// formulas; the verifier never searches for an alternative unification. The
// first failure aborts verification.
//
// The rule set is read-only here; concurrent verifications may share it.
func Verify(rules *rule.Set, p *Proof) Result {
	// guards proofs built as struct literals; New rejects this at
	// construction
	if len(p.Steps) == 0 {
		return Result{
			Verdict: Failed,
			Failure: &StepError{
				Index: -1,
				Kind:  FailGoalMismatch,
				Err:   fmt.Errorf("proof has no steps to establish goal %s", p.Goal),
			},
		}
	}

	established := make([]formula.Formula, 0, len(p.Steps))
	incomplete := false

	fail := func(i int, kind FailKind, ruleID string, err error) Result {
		return Result{
			Verdict:     Failed,
			Established: established,
			Failure:     &StepError{Index: i, Kind: kind, RuleID: ruleID, Err: err},
		}
	}

	for i, step := range p.Steps {
		switch s := step.(type) {
		case AxiomSpecialization:
			r := rules.Lookup(s.RuleID)
			if r == nil {
				return fail(i, FailUnknownRule, s.RuleID, fmt.Errorf("rule %q not in rule set", s.RuleID))
			}
			if !r.IsAxiom() {
				return fail(i, FailNotAnAxiom, s.RuleID,
					fmt.Errorf("rule %s has %d assumptions", r.ID, r.Arity()))
			}
			f, err := r.Apply(s.Binding)
			if err != nil {
				return fail(i, classify(err), s.RuleID, err)
			}
			established = append(established, f)

		case RuleApplication:
			r := rules.Lookup(s.RuleID)
			if r == nil {
				return fail(i, FailUnknownRule, s.RuleID, fmt.Errorf("rule %q not in rule set", s.RuleID))
			}
			candidates := make([]formula.Formula, len(s.Refs))
			for j, ref := range s.Refs {
				f, err := p.lineAt(established, i, ref)
				if err != nil {
					return fail(i, FailDanglingReference, s.RuleID, err)
				}
				candidates[j] = f
			}
			derived, err := r.MatchAssumptions(candidates)
			if err != nil {
				return fail(i, classify(err), s.RuleID, err)
			}
			merged := derived
			if s.Binding != nil {
				merged, err = derived.Merge(s.Binding)
				if err != nil {
					return fail(i, FailBindingConflict, s.RuleID, err)
				}
			}
			f, err := r.Apply(merged)
			if err != nil {
				return fail(i, classify(err), s.RuleID, err)
			}
			established = append(established, f)

		case Incomplete:
			incomplete = true
			established = append(established, nil)

		default:
			return fail(i, FailNone, "", fmt.Errorf("unknown step shape %T", step))
		}
	}

	if incomplete {
		return Result{Verdict: Partial, Established: established}
	}
	last := established[len(established)-1]
	if !formula.Equal(last, p.Goal) {
		return Result{
			Verdict:     Failed,
			Established: established,
			Failure: &StepError{
				Index: -1,
				Kind:  FailGoalMismatch,
				Err:   fmt.Errorf("final formula %s differs from goal %s", last, p.Goal),
			},
		}
	}
	return Result{Verdict: Verified, Established: established}
}

// lineAt resolves a combined index during verification of step i. Only
// hypotheses and strictly earlier, established steps are addressable.
func (p *Proof) lineAt(established []formula.Formula, i, ref int) (formula.Formula, error) {
	k := len(p.Hypotheses)
	switch {
	case ref < 0 || ref >= p.NumLines():
		return nil, fmt.Errorf("reference %d out of range [0, %d)", ref, p.NumLines())
	case ref < k:
		return p.Hypotheses[ref], nil
	case ref >= k+i:
		return nil, fmt.Errorf("reference %d is not strictly before step %d", ref, i)
	default:
		f := established[ref-k]
		if f == nil {
			return nil, fmt.Errorf("reference %d addresses an incomplete step", ref)
		}
		return f, nil
	}
}

// classify maps kernel errors to failure kinds.
func classify(err error) FailKind {
	var (
		coverage *rule.CoverageError
		arity    *rule.ArityError
		conflict *formula.ConflictError
		unify    *formula.UnifyError
	)
	switch {
	case errors.As(err, &coverage):
		return FailMalformedBinding
	case errors.As(err, &arity):
		return FailArityMismatch
	case errors.As(err, &conflict):
		return FailBindingConflict
	case errors.As(err, &unify):
		return FailUnification
	default:
		return FailNone
	}
}
