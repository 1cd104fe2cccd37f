package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflang/tproof/internal/formula"
)

func TestMix(t *testing.T) {
	rules := testRules(t)
	// A, A→B ⊢ B and B, B→C ⊢ C share the hypothesis space after mixing
	a := MustNew(
		[]formula.Formula{vA, formula.Imply(vA, vB)},
		vB,
		[]Step{RuleApplication{RuleID: "MP", Refs: []int{0, 1}}},
	)
	b := MustNew(
		[]formula.Formula{vB, formula.Imply(vB, vC)},
		vC,
		[]Step{RuleApplication{RuleID: "MP", Refs: []int{0, 1}}},
	)

	mixed, err := Mix(a, b)
	require.NoError(t, err)
	assert.Len(t, mixed.Hypotheses, 4)
	assert.Len(t, mixed.Steps, 2)
	assert.True(t, formula.Equal(mixed.Goal, vC))

	res := Verify(rules, mixed)
	assert.Equal(t, Verified, res.Verdict)
}

func TestMixDeduplicatesHypotheses(t *testing.T) {
	rules := testRules(t)
	a := MustNew(
		[]formula.Formula{vA, formula.Imply(vA, vB)},
		vB,
		[]Step{RuleApplication{RuleID: "MP", Refs: []int{0, 1}}},
	)
	b := MustNew(
		[]formula.Formula{vA, formula.Not(vA)},
		vC,
		[]Step{RuleApplication{
			RuleID:  "EXPLODE",
			Refs:    []int{0, 1},
			Binding: formula.Binding{"Q": vC},
		}},
	)

	mixed, err := Mix(a, b)
	require.NoError(t, err)
	// A occurs once, shared by both halves
	require.Len(t, mixed.Hypotheses, 3)
	assert.True(t, formula.Equal(mixed.Hypotheses[0], vA))

	res := Verify(rules, mixed)
	assert.Equal(t, Verified, res.Verdict)
	require.Len(t, res.Established, 2)
	assert.True(t, formula.Equal(res.Established[0], vB))
	assert.True(t, formula.Equal(res.Established[1], vC))
}
