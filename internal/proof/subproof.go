package proof

import (
	"fmt"
	"sort"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/rule"
)

// Subproof extracts the minimal proof establishing the line at combined
// index i: only the hypotheses and steps that line transitively depends on
// survive, reindexed. The proof must verify first; a proof with failures or
// incomplete steps has no well-defined subproofs.
func (p *Proof) Subproof(rules *rule.Set, i int) (*Proof, error) {
	if i < 0 || i >= p.NumLines() {
		return nil, fmt.Errorf("line %d out of range [0, %d)", i, p.NumLines())
	}
	if p.IsHypothesis(i) {
		return nil, fmt.Errorf("line %d is a hypothesis, not a step", i)
	}
	res := Verify(rules, p)
	if res.Verdict == Failed {
		return nil, fmt.Errorf("cannot extract a subproof from a failing proof: %w", res.Failure)
	}

	k := len(p.Hypotheses)
	deps := p.StepDependencies(i)
	deps[i] = struct{}{}
	lines := make([]int, 0, len(deps))
	for line := range deps {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	reindex := make(map[int]int, len(lines))
	var hypotheses []formula.Formula
	var steps []Step
	for newIdx, oldIdx := range lines {
		reindex[oldIdx] = newIdx
		if p.IsHypothesis(oldIdx) {
			hypotheses = append(hypotheses, p.Hypotheses[oldIdx])
			continue
		}
		switch s := p.Steps[oldIdx-k].(type) {
		case AxiomSpecialization:
			steps = append(steps, s)
		case RuleApplication:
			refs := make([]int, len(s.Refs))
			for j, ref := range s.Refs {
				refs[j] = reindex[ref]
			}
			steps = append(steps, RuleApplication{RuleID: s.RuleID, Refs: refs, Binding: s.Binding})
		case Incomplete:
			return nil, fmt.Errorf("line %d depends on an incomplete step", i)
		}
	}

	goal := res.Established[i-k]
	if goal == nil {
		return nil, fmt.Errorf("line %d is an incomplete step", i)
	}
	return New(hypotheses, goal, steps)
}

// SuperfluousHypothesis reports whether the hypothesis is unused: either it
// does not occur in the proof's hypotheses at all, or the final line does
// not depend on it.
func (p *Proof) SuperfluousHypothesis(hyp formula.Formula) bool {
	idx := -1
	for i, h := range p.Hypotheses {
		if formula.Equal(h, hyp) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return true
	}
	deps := p.StepDependencies(p.NumLines() - 1)
	_, used := deps[idx]
	return !used
}

// DropSuperfluousHypotheses returns the subproof of the final line, which
// keeps exactly the hypotheses the conclusion depends on.
func (p *Proof) DropSuperfluousHypotheses(rules *rule.Set) (*Proof, error) {
	return p.Subproof(rules, p.NumLines()-1)
}
