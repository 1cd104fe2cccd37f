package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflang/tproof/internal/formula"
)

func TestNewRewrite(t *testing.T) {
	_, err := NewRewrite(vP, formula.Conj(vP, vQ))
	assert.Error(t, err, "body variable Q does not occur in head")

	rw, err := NewRewrite(formula.Not(formula.Not(vP)), vP)
	require.NoError(t, err)
	assert.Equal(t, "¬¬P ⇒ P", rw.String())
}

func TestRewriteClassification(t *testing.T) {
	doubleNeg := MustNewRewrite(formula.Not(formula.Not(vP)), vP)
	assert.True(t, doubleNeg.IsImp())
	assert.True(t, doubleNeg.IsEquiv())

	weaken := MustNewRewrite(formula.Conj(vP, vQ), vP)
	assert.True(t, weaken.IsImp())
	assert.False(t, weaken.IsEquiv())

	_, err := weaken.Inverse()
	assert.Error(t, err)

	inv, err := doubleNeg.Inverse()
	require.NoError(t, err)
	assert.True(t, formula.Equal(inv.Head, vP))
}

func TestRewriteMatches(t *testing.T) {
	doubleNeg := MustNewRewrite(formula.Not(formula.Not(vP)), vP)
	f := formula.Conj(formula.Not(formula.Not(vA)), vB)

	matches := doubleNeg.Matches(f)
	require.Len(t, matches, formula.Len(f))
	// breadth-first: 0=∧ 1=¬¬A 2=B 3=¬A 4=A
	assert.Nil(t, matches[0])
	require.NotNil(t, matches[1])
	assert.True(t, formula.Equal(matches[1]["P"], vA))
	assert.Nil(t, matches[2])
}

func TestRewriteApplyAt(t *testing.T) {
	doubleNeg := MustNewRewrite(formula.Not(formula.Not(vP)), vP)
	f := formula.Conj(formula.Not(formula.Not(vA)), vB)

	got, err := doubleNeg.ApplyAt(f, 1)
	require.NoError(t, err)
	assert.True(t, formula.Equal(got, formula.Conj(vA, vB)))

	_, err = doubleNeg.ApplyAt(f, 0)
	assert.Error(t, err)
	_, err = doubleNeg.ApplyAt(f, 99)
	assert.Error(t, err)
}

func TestRewriteApplyAll(t *testing.T) {
	doubleNeg := MustNewRewrite(formula.Not(formula.Not(vP)), vP)
	f := formula.Not(formula.Not(formula.Not(formula.Not(vA))))

	got, err := doubleNeg.ApplyAll(f)
	require.NoError(t, err)
	assert.True(t, formula.Equal(got, vA))

	// a head matching its own body must be rejected
	loop := MustNewRewrite(formula.Not(vP), formula.Not(formula.Not(vP)))
	_, err = loop.ApplyAll(vA)
	assert.Error(t, err)
}

func TestApplyRewrites(t *testing.T) {
	doubleNeg := MustNewRewrite(formula.Not(formula.Not(vP)), vP)
	deMorgan := MustNewRewrite(
		formula.Not(formula.Conj(vP, vQ)),
		formula.Disj(formula.Not(vP), formula.Not(vQ)),
	)

	f := formula.Not(formula.Conj(formula.Not(formula.Not(vA)), vB))
	got, err := ApplyRewrites([]*Rewrite{doubleNeg, deMorgan}, f)
	require.NoError(t, err)
	assert.True(t, formula.Equal(got, formula.Disj(formula.Not(vA), formula.Not(vB))))
}
