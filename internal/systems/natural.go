// Package systems ships the built-in proof systems: a small natural
// deduction fragment and the Hilbert axiom system for the implicational
// fragment, with the deduction theorem as a proof transformation.
package systems

import (
	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/rule"
)

var (
	varA = formula.MustVar("A")
	varB = formula.MustVar("B")
)

// Rule ids of the natural deduction fragment.
const (
	ConjElimLeft   = "E∧1"
	ConjElimRight  = "E∧2"
	ModusPonens    = "MP"
	DoubleNegElim  = "E¬¬"
	DisjIntroLeft  = "I∨1"
	DisjIntroRight = "I∨2"
	ConjIntro      = "I∧"
)

// Natural builds the natural deduction rule set. Every rule is sound for
// the truth-table semantics; there are no axioms, so proofs in this system
// always work from hypotheses.
func Natural() *rule.Set {
	return rule.MustNewSet(
		rule.MustNew(ConjElimLeft,
			[]formula.Formula{formula.Conj(varA, varB)}, varA),
		rule.MustNew(ConjElimRight,
			[]formula.Formula{formula.Conj(varA, varB)}, varB),
		rule.MustNew(ModusPonens,
			[]formula.Formula{varA, formula.Imply(varA, varB)}, varB),
		rule.MustNew(DoubleNegElim,
			[]formula.Formula{formula.Not(formula.Not(varA))}, varA),
		rule.MustNew(DisjIntroLeft,
			[]formula.Formula{varA}, formula.Disj(varA, varB)),
		rule.MustNew(DisjIntroRight,
			[]formula.Formula{varB}, formula.Disj(varA, varB)),
		rule.MustNew(ConjIntro,
			[]formula.Formula{varA, varB}, formula.Conj(varA, varB)),
	)
}
