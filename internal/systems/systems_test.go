package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/proof"
)

var (
	fX = formula.MustVar("X")
	fY = formula.MustVar("Y")
)

func TestBuiltinSystemsAreSound(t *testing.T) {
	assert.Empty(t, Natural().Unsound())
	assert.Empty(t, Hilbert().Unsound())
}

func TestNaturalRuleIDs(t *testing.T) {
	ids := Natural().IDs()
	assert.Len(t, ids, 7)
	assert.Contains(t, ids, ModusPonens)
	assert.Contains(t, ids, ConjIntro)
}

func TestNaturalConjunctionCommutes(t *testing.T) {
	rules := Natural()
	// X∧Y ⊢ Y∧X
	p := proof.MustNew(
		[]formula.Formula{formula.Conj(fX, fY)},
		formula.Conj(fY, fX),
		[]proof.Step{
			proof.RuleApplication{RuleID: ConjElimRight, Refs: []int{0}}, // Y
			proof.RuleApplication{RuleID: ConjElimLeft, Refs: []int{0}},  // X
			proof.RuleApplication{RuleID: ConjIntro, Refs: []int{1, 2}},
		},
	)

	res := proof.Verify(rules, p)
	assert.Equal(t, proof.Verified, res.Verdict)
}

func TestDisjunctionIntroNeedsExplicitBinding(t *testing.T) {
	rules := Natural()
	goal := formula.Disj(fX, fY)

	p := proof.MustNew([]formula.Formula{fX}, goal, []proof.Step{
		proof.RuleApplication{RuleID: DisjIntroLeft, Refs: []int{0}},
	})
	res := proof.Verify(rules, p)
	assert.Equal(t, proof.Failed, res.Verdict)
	assert.Equal(t, proof.FailMalformedBinding, res.Failure.Kind)

	p = proof.MustNew([]formula.Formula{fX}, goal, []proof.Step{
		proof.RuleApplication{
			RuleID:  DisjIntroLeft,
			Refs:    []int{0},
			Binding: formula.Binding{"B": fY},
		},
	})
	res = proof.Verify(rules, p)
	assert.Equal(t, proof.Verified, res.Verdict)
}

func TestImpliesSelf(t *testing.T) {
	rules := Hilbert()

	for _, f := range []formula.Formula{
		fX,
		formula.Imply(fX, fY),
		formula.Not(formula.Conj(fX, fY)),
	} {
		p := ImpliesSelf(f, nil)
		res := proof.Verify(rules, p)
		assert.Equal(t, proof.Verified, res.Verdict, "⊢ %s → %s", f, f)
		assert.True(t, formula.Equal(p.Goal, formula.Imply(f, f)))
	}
}

func TestImpliesSelfUnderHypotheses(t *testing.T) {
	rules := Hilbert()
	p := ImpliesSelf(fX, []formula.Formula{fY, formula.Not(fX)})

	res := proof.Verify(rules, p)
	assert.Equal(t, proof.Verified, res.Verdict)
	assert.True(t, p.SuperfluousHypothesis(fY))
}

func TestDeductionTheorem(t *testing.T) {
	rules := Hilbert()
	// X, X→Y ⊢ Y
	p := proof.MustNew(
		[]formula.Formula{fX, formula.Imply(fX, fY)},
		fY,
		[]proof.Step{proof.RuleApplication{RuleID: ModusPonens, Refs: []int{0, 1}}},
	)

	d, err := DeductionTheorem(p, fX)
	require.NoError(t, err)
	require.Len(t, d.Hypotheses, 1)
	assert.True(t, formula.Equal(d.Hypotheses[0], formula.Imply(fX, fY)))
	assert.True(t, formula.Equal(d.Goal, formula.Imply(fX, fY)))

	res := proof.Verify(rules, d)
	assert.Equal(t, proof.Verified, res.Verdict)
}

func TestDeductionTheoremTwice(t *testing.T) {
	rules := Hilbert()
	imp := formula.Imply(fX, fY)
	p := proof.MustNew(
		[]formula.Formula{fX, imp},
		fY,
		[]proof.Step{proof.RuleApplication{RuleID: ModusPonens, Refs: []int{0, 1}}},
	)

	// X, X→Y ⊢ Y becomes ⊢ X → ((X→Y) → Y)
	d, err := DeductionTheorem(p, imp)
	require.NoError(t, err)
	d, err = DeductionTheorem(d, fX)
	require.NoError(t, err)

	assert.Empty(t, d.Hypotheses)
	assert.True(t, formula.Equal(d.Goal,
		formula.Imply(fX, formula.Imply(imp, fY))))

	res := proof.Verify(rules, d)
	assert.Equal(t, proof.Verified, res.Verdict)
}

func TestDeductionTheoremWithAxiomLines(t *testing.T) {
	rules := Hilbert()
	// X ⊢ Y → X, through AX1 and one modus ponens
	p := proof.MustNew(
		[]formula.Formula{fX},
		formula.Imply(fY, fX),
		[]proof.Step{
			proof.AxiomSpecialization{
				RuleID:  Axiom1,
				Binding: formula.Binding{"A": fY, "B": fX},
			},
			proof.RuleApplication{RuleID: ModusPonens, Refs: []int{0, 1}},
		},
	)
	require.Equal(t, proof.Verified, proof.Verify(rules, p).Verdict)

	d, err := DeductionTheorem(p, fX)
	require.NoError(t, err)
	assert.Empty(t, d.Hypotheses)
	assert.True(t, formula.Equal(d.Goal,
		formula.Imply(fX, formula.Imply(fY, fX))))

	res := proof.Verify(rules, d)
	assert.Equal(t, proof.Verified, res.Verdict)
}

func TestDeductionTheoremRejections(t *testing.T) {
	p := proof.MustNew(
		[]formula.Formula{fX, formula.Imply(fX, fY)},
		fY,
		[]proof.Step{proof.RuleApplication{RuleID: ModusPonens, Refs: []int{0, 1}}},
	)
	_, err := DeductionTheorem(p, fY)
	assert.Error(t, err, "not a hypothesis")

	// natural deduction steps are not discharged
	nd := proof.MustNew(
		[]formula.Formula{formula.Conj(fX, fY)},
		fX,
		[]proof.Step{proof.RuleApplication{RuleID: ConjElimLeft, Refs: []int{0}}},
	)
	_, err = DeductionTheorem(nd, formula.Conj(fX, fY))
	assert.Error(t, err)

	partial := proof.MustNew(
		[]formula.Formula{fX},
		fY,
		[]proof.Step{proof.Incomplete{}},
	)
	_, err = DeductionTheorem(partial, fX)
	assert.Error(t, err)
}
