package systems

import (
	"fmt"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/proof"
)

// DeductionTheorem transforms a verified Hilbert proof of Γ, hyp ⊢ φ into a
// proof of Γ ⊢ hyp → φ, discharging the hypothesis. The construction is the
// standard induction over proof lines: lines equal to hyp become the f → f
// schema, other hypotheses and axioms are weakened through AX1, and every
// modus ponens application is rebuilt through AX2 and two modus ponens
// steps.
//
// Only proofs in the Hilbert system qualify: a step applying any inference
// rule other than modus ponens is rejected.
func DeductionTheorem(p *proof.Proof, hyp formula.Formula) (*proof.Proof, error) {
	h := -1
	for i, f := range p.Hypotheses {
		if formula.Equal(f, hyp) {
			h = i
			break
		}
	}
	if h < 0 {
		return nil, fmt.Errorf("formula %s is not a hypothesis of %s", hyp, p)
	}

	rules := Hilbert()
	res := proof.Verify(rules, p)
	if res.Verdict != proof.Verified {
		return nil, fmt.Errorf("cannot discharge a hypothesis of a %s proof", res.Verdict)
	}

	k := len(p.Hypotheses)
	kept := make([]formula.Formula, 0, k-1)
	keptLine := make(map[int]int, k-1)
	for i, f := range p.Hypotheses {
		if i == h {
			continue
		}
		keptLine[i] = len(kept)
		kept = append(kept, f)
	}

	var steps []proof.Step
	emit := func(s proof.Step) int {
		steps = append(steps, s)
		return len(kept) + len(steps) - 1
	}
	lineFormula := func(i int) formula.Formula {
		if p.IsHypothesis(i) {
			return p.Hypotheses[i]
		}
		return res.Established[i-k]
	}

	// memo maps old combined indices to the new combined index where
	// hyp → (old line) is established.
	memo := make(map[int]int)
	var discharge func(old int) (int, error)
	discharge = func(old int) (int, error) {
		if line, ok := memo[old]; ok {
			return line, nil
		}
		f := lineFormula(old)
		var line int
		switch {
		case formula.Equal(f, hyp):
			base := len(kept) + len(steps)
			steps = append(steps, impliesSelfSteps(f, base)...)
			line = base + 4

		case p.IsHypothesis(old):
			weaken := emit(proof.AxiomSpecialization{
				RuleID:  Axiom1,
				Binding: formula.Binding{"A": hyp, "B": f},
			})
			line = emit(proof.RuleApplication{
				RuleID: ModusPonens,
				Refs:   []int{keptLine[old], weaken},
			})

		default:
			switch s := p.Steps[old-k].(type) {
			case proof.AxiomSpecialization:
				self := emit(s)
				weaken := emit(proof.AxiomSpecialization{
					RuleID:  Axiom1,
					Binding: formula.Binding{"A": hyp, "B": f},
				})
				line = emit(proof.RuleApplication{
					RuleID: ModusPonens,
					Refs:   []int{self, weaken},
				})

			case proof.RuleApplication:
				if s.RuleID != ModusPonens {
					return 0, fmt.Errorf("step %d applies rule %s, only %s can be discharged",
						old-k, s.RuleID, ModusPonens)
				}
				premise := lineFormula(s.Refs[0])
				m1, err := discharge(s.Refs[0])
				if err != nil {
					return 0, err
				}
				m2, err := discharge(s.Refs[1])
				if err != nil {
					return 0, err
				}
				// (hyp → (premise → f)) → ((hyp → premise) → (hyp → f))
				dist := emit(proof.AxiomSpecialization{
					RuleID:  Axiom2,
					Binding: formula.Binding{"A": hyp, "B": premise, "C": f},
				})
				inner := emit(proof.RuleApplication{
					RuleID: ModusPonens,
					Refs:   []int{m2, dist},
				})
				line = emit(proof.RuleApplication{
					RuleID: ModusPonens,
					Refs:   []int{m1, inner},
				})

			default:
				return 0, fmt.Errorf("step %d has no formula to discharge", old-k)
			}
		}
		memo[old] = line
		return line, nil
	}

	if _, err := discharge(p.NumLines() - 1); err != nil {
		return nil, err
	}
	return proof.New(kept, formula.Imply(hyp, p.Goal), steps)
}
