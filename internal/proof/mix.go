package proof

import (
	"github.com/prooflang/tproof/internal/formula"
)

// Mix concatenates two proofs into one proving b's goal. Hypotheses are
// deduplicated by structural equality, a's steps come first, and every
// reference is reindexed into the merged combined index space. Lines a
// establishes stay addressable, so a mixed proof is the usual way to feed
// one proof's conclusion into another's hypotheses-free derivation.
func Mix(a, b *Proof) (*Proof, error) {
	hypotheses := make([]formula.Formula, 0, len(a.Hypotheses)+len(b.Hypotheses))
	hypLine := func(f formula.Formula) int {
		for i, h := range hypotheses {
			if formula.Equal(h, f) {
				return i
			}
		}
		hypotheses = append(hypotheses, f)
		return len(hypotheses) - 1
	}

	aHyp := make([]int, len(a.Hypotheses))
	for i, h := range a.Hypotheses {
		aHyp[i] = hypLine(h)
	}
	bHyp := make([]int, len(b.Hypotheses))
	for i, h := range b.Hypotheses {
		bHyp[i] = hypLine(h)
	}

	k := len(hypotheses)
	remap := func(p *Proof, hyp []int, stepBase int) []Step {
		out := make([]Step, 0, len(p.Steps))
		for _, step := range p.Steps {
			s, ok := step.(RuleApplication)
			if !ok {
				out = append(out, step)
				continue
			}
			refs := make([]int, len(s.Refs))
			for j, ref := range s.Refs {
				if ref < len(p.Hypotheses) {
					refs[j] = hyp[ref]
				} else {
					refs[j] = k + stepBase + (ref - len(p.Hypotheses))
				}
			}
			out = append(out, RuleApplication{RuleID: s.RuleID, Refs: refs, Binding: s.Binding})
		}
		return out
	}

	steps := remap(a, aHyp, 0)
	steps = append(steps, remap(b, bHyp, len(a.Steps))...)
	return New(hypotheses, b.Goal, steps)
}
