package systems

import (
	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/proof"
	"github.com/prooflang/tproof/internal/rule"
)

// Rule ids of the Hilbert system. Modus ponens is the only inference rule;
// everything else is an axiom schema.
const (
	Axiom1 = "AX1"
	Axiom2 = "AX2"
	Axiom3 = "AX3"
)

var varC = formula.MustVar("C")

// Hilbert builds the Hilbert rule set: modus ponens plus the three
// Łukasiewicz axiom schemas
//
//	AX1: B → (A → B)
//	AX2: (A → (B → C)) → ((A → B) → (A → C))
//	AX3: (¬B → ¬A) → ((¬B → A) → B)
func Hilbert() *rule.Set {
	return rule.MustNewSet(
		rule.MustNew(ModusPonens,
			[]formula.Formula{varA, formula.Imply(varA, varB)}, varB),
		rule.MustNew(Axiom1, nil,
			formula.Imply(varB, formula.Imply(varA, varB))),
		rule.MustNew(Axiom2, nil,
			formula.Imply(
				formula.Imply(varA, formula.Imply(varB, varC)),
				formula.Imply(
					formula.Imply(varA, varB),
					formula.Imply(varA, varC)))),
		rule.MustNew(Axiom3, nil,
			formula.Imply(
				formula.Imply(formula.Not(varB), formula.Not(varA)),
				formula.Imply(
					formula.Imply(formula.Not(varB), varA),
					varB))),
	)
}

// impliesSelfSteps is the classic five-step derivation of f → f from AX1
// and AX2 alone. base is the combined index the first step will occupy in
// the surrounding proof.
func impliesSelfSteps(f formula.Formula, base int) []proof.Step {
	ff := formula.Imply(f, f)
	return []proof.Step{
		// f → (f → f)
		proof.AxiomSpecialization{RuleID: Axiom1, Binding: formula.Binding{"A": f, "B": f}},
		// f → ((f → f) → f)
		proof.AxiomSpecialization{RuleID: Axiom1, Binding: formula.Binding{"A": ff, "B": f}},
		// (f → ((f → f) → f)) → ((f → (f → f)) → (f → f))
		proof.AxiomSpecialization{RuleID: Axiom2, Binding: formula.Binding{"A": f, "B": ff, "C": f}},
		// (f → (f → f)) → (f → f)
		proof.RuleApplication{RuleID: ModusPonens, Refs: []int{base + 1, base + 2}},
		// f → f
		proof.RuleApplication{RuleID: ModusPonens, Refs: []int{base + 0, base + 3}},
	}
}

// ImpliesSelf proves f → f in the Hilbert system under the given
// hypotheses. The hypotheses are carried but unused.
func ImpliesSelf(f formula.Formula, hypotheses []formula.Formula) *proof.Proof {
	return proof.MustNew(hypotheses, formula.Imply(f, f),
		impliesSelfSteps(f, len(hypotheses)))
}
