// Package proof represents machine-checkable proofs and verifies them. A
// proof is a goal, a list of hypotheses and an ordered list of steps; the
// verifier replays the steps against an explicit rule set and either
// establishes one formula per step or rejects the proof with a typed,
// step-indexed failure.
//
// Steps address earlier formulas through a single combined index space: the
// hypotheses occupy indices 0..len(hypotheses)-1, the formula established by
// step i sits at index len(hypotheses)+i. Forward and self references are
// rejected, never followed.
package proof

import (
	"fmt"
	"strings"

	"github.com/prooflang/tproof/internal/formula"
)

// Step is one line of a proof. The set of step shapes is closed: an axiom
// specialization, a rule application or an explicit incompleteness marker.
type Step interface {
	isStep()
	String() string
}

// AxiomSpecialization instantiates a zero-assumption rule under an explicit
// binding.
type AxiomSpecialization struct {
	RuleID  string
	Binding formula.Binding
}

func (AxiomSpecialization) isStep() {}

func (s AxiomSpecialization) String() string {
	return fmt.Sprintf("axiom %s %s", s.RuleID, s.Binding)
}

// RuleApplication applies a rule to formulas referenced by their combined
// indices. Binding is optional: when present it is cross-checked against
// the binding derived from matching the referenced formulas, and may bind
// conclusion variables that no assumption mentions.
type RuleApplication struct {
	RuleID  string
	Refs    []int
	Binding formula.Binding
}

func (RuleApplication) isStep() {}

func (s RuleApplication) String() string {
	refs := make([]string, len(s.Refs))
	for i, r := range s.Refs {
		refs[i] = fmt.Sprintf("%d", r)
	}
	out := fmt.Sprintf("rule %s %s", s.RuleID, strings.Join(refs, ","))
	if s.Binding != nil {
		out += " " + s.Binding.String()
	}
	return out
}

// Incomplete marks a step whose formula has not been established yet. A
// proof containing one can at best be partially checked.
type Incomplete struct{}

func (Incomplete) isStep() {}

func (Incomplete) String() string { return "incomplete" }

// Proof is a claimed derivation of Goal from Hypotheses by Steps. Proofs
// are built once by the parser and never mutated; verification output lives
// in a separate Result.
type Proof struct {
	Hypotheses []formula.Formula
	Goal       formula.Formula
	Steps      []Step
}

// New builds a proof, rejecting an empty step list or a missing goal.
func New(hypotheses []formula.Formula, goal formula.Formula, steps []Step) (*Proof, error) {
	if goal == nil {
		return nil, fmt.Errorf("proof has no goal")
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("proof has no steps")
	}
	return &Proof{Hypotheses: hypotheses, Goal: goal, Steps: steps}, nil
}

// MustNew is New for statically known proofs.
func MustNew(hypotheses []formula.Formula, goal formula.Formula, steps []Step) *Proof {
	p, err := New(hypotheses, goal, steps)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the proof as a sequent.
func (p *Proof) String() string {
	parts := make([]string, len(p.Hypotheses))
	for i, h := range p.Hypotheses {
		parts[i] = h.String()
	}
	return fmt.Sprintf("%s ⊢ %s", strings.Join(parts, ", "), p.Goal)
}

// NumLines returns the size of the combined index space: hypotheses plus
// steps.
func (p *Proof) NumLines() int {
	return len(p.Hypotheses) + len(p.Steps)
}

// IsHypothesis reports whether the combined index addresses a hypothesis.
func (p *Proof) IsHypothesis(i int) bool {
	return i >= 0 && i < len(p.Hypotheses)
}

// StepDependencies returns the set of combined indices the line at combined
// index i transitively depends on. Hypotheses and axiom specializations
// have no dependencies.
func (p *Proof) StepDependencies(i int) map[int]struct{} {
	deps := make(map[int]struct{})
	p.collectDeps(i, deps)
	return deps
}

func (p *Proof) collectDeps(i int, deps map[int]struct{}) {
	if p.IsHypothesis(i) || i >= p.NumLines() {
		return
	}
	step, ok := p.Steps[i-len(p.Hypotheses)].(RuleApplication)
	if !ok {
		return
	}
	for _, ref := range step.Refs {
		if _, seen := deps[ref]; seen {
			continue
		}
		deps[ref] = struct{}{}
		p.collectDeps(ref, deps)
	}
}
