package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflang/tproof/internal/formula"
)

var (
	vA = formula.MustVar("A")
	vB = formula.MustVar("B")
	vP = formula.MustVar("P")
	vQ = formula.MustVar("Q")
	vR = formula.MustVar("R")
	vX = formula.MustVar("X")
)

func modusPonens() *Rule {
	return MustNew("MP", []formula.Formula{vP, formula.Imply(vP, vQ)}, vQ)
}

func TestNew(t *testing.T) {
	_, err := New("", nil, vA)
	assert.Error(t, err)
	_, err = New("r", nil, nil)
	assert.Error(t, err)

	r, err := Axiom("excluded-middle", formula.Disj(vA, formula.Not(vA)))
	require.NoError(t, err)
	assert.True(t, r.IsAxiom())
	assert.Equal(t, 0, r.Arity())

	mp := modusPonens()
	assert.False(t, mp.IsAxiom())
	assert.Equal(t, 2, mp.Arity())
}

func TestVars(t *testing.T) {
	r := MustNew("r", []formula.Formula{formula.Conj(vP, vQ)}, formula.Disj(vQ, vR))
	assert.Equal(t, []string{"P", "Q"}, r.AssumptionVars())
	assert.Equal(t, []string{"Q", "R"}, r.ConclusionVars())
	assert.Equal(t, []string{"P", "Q", "R"}, r.Vars())
}

func TestApply(t *testing.T) {
	mp := modusPonens()

	got, err := mp.Apply(formula.Binding{"P": vA, "Q": formula.Not(vB)})
	require.NoError(t, err)
	assert.True(t, formula.Equal(got, formula.Not(vB)))

	// missing Q
	_, err = mp.Apply(formula.Binding{"P": vA})
	var cerr *CoverageError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"Q"}, cerr.Missing)
}

func TestMatchAssumptions(t *testing.T) {
	mp := modusPonens()
	f1 := formula.Conj(vA, vB)
	f2 := formula.Not(vA)

	b, err := mp.MatchAssumptions([]formula.Formula{f1, formula.Imply(f1, f2)})
	require.NoError(t, err)
	assert.True(t, formula.Equal(b["P"], f1))
	assert.True(t, formula.Equal(b["Q"], f2))

	conclusion, err := mp.Apply(b)
	require.NoError(t, err)
	assert.True(t, formula.Equal(conclusion, f2))
}

func TestMatchAssumptionsArity(t *testing.T) {
	mp := modusPonens()
	_, err := mp.MatchAssumptions([]formula.Formula{vA})
	var aerr *ArityError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, 2, aerr.Want)
	assert.Equal(t, 1, aerr.Got)
}

func TestMatchAssumptionsConflict(t *testing.T) {
	// P appears in both assumptions and must bind identically
	r := MustNew("contr", []formula.Formula{vP, formula.Not(vP)}, vQ)
	_, err := r.MatchAssumptions([]formula.Formula{vA, formula.Not(vB)})
	var cerr *formula.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "P", cerr.Name)
}

func TestMatchAssumptionsUnifyFailure(t *testing.T) {
	mp := modusPonens()
	// second candidate is not an implication
	_, err := mp.MatchAssumptions([]formula.Formula{vA, formula.Conj(vA, vB)})
	var uerr *formula.UnifyError
	assert.ErrorAs(t, err, &uerr)
}

func TestIsSound(t *testing.T) {
	sound := []*Rule{
		modusPonens(),
		MustNew("E∧1", []formula.Formula{formula.Conj(vA, vB)}, vA),
		MustNew("E∧2", []formula.Formula{formula.Conj(vA, vB)}, vB),
		MustNew("E¬¬", []formula.Formula{formula.Not(formula.Not(vA))}, vA),
		MustNew("I∨1", []formula.Formula{vA}, formula.Disj(vA, vB)),
		MustNew("I∧", []formula.Formula{vA, vB}, formula.Conj(vA, vB)),
		MustNew("taut", nil, formula.Disj(vA, formula.Not(vA))),
	}
	for _, r := range sound {
		assert.True(t, r.IsSound(), "rule %s", r)
	}

	unsound := []*Rule{
		MustNew("bad", []formula.Formula{vA}, vB),
		MustNew("bad-ax", nil, vA),
	}
	for _, r := range unsound {
		assert.False(t, r.IsSound(), "rule %s", r)
	}
}

func TestSpecialize(t *testing.T) {
	r1 := MustNew("E¬¬", []formula.Formula{formula.Not(formula.Not(vP))}, vP)
	r2 := r1.Specialize("spec", formula.Binding{"P": formula.Imply(vQ, vR)})
	assert.True(t, r2.IsSpecializationOf(r1))

	r3 := MustNew("r", []formula.Formula{formula.Imply(vQ, vP), formula.Not(vP)}, formula.Not(vQ))
	r4 := r3.Specialize("spec", formula.Binding{"Q": formula.Not(vR), "P": formula.Imply(vX, vA)})
	assert.True(t, r4.IsSpecializationOf(r3))

	// not specializations
	assert.False(t, r3.IsSpecializationOf(r1))
	mp := modusPonens()
	general := MustNew("general", []formula.Formula{vR, formula.Imply(vP, vQ)}, vQ)
	assert.True(t, mp.IsSpecializationOf(general))
	assert.False(t, general.IsSpecializationOf(mp))
}

func TestSet(t *testing.T) {
	mp := modusPonens()
	ax := MustNew("AX", nil, formula.Imply(vA, vA))

	s, err := NewSet(mp, ax)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"MP", "AX"}, s.IDs())
	assert.Same(t, mp, s.Lookup("MP"))
	assert.Nil(t, s.Lookup("nope"))

	err = s.Add(MustNew("MP", []formula.Formula{vA}, vA))
	assert.Error(t, err)

	_, err = NewSet(mp, mp)
	assert.Error(t, err)
}

func TestSetUnsound(t *testing.T) {
	s := MustNewSet(
		modusPonens(),
		MustNew("bogus", []formula.Formula{vA}, vB),
	)
	assert.Equal(t, []string{"bogus"}, s.Unsound())
}
