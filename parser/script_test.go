package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/proof"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
system: natural
rules:
  - id: CONTRA
    assumptions: ["A", "~A"]
    conclusion: "B"
proofs:
  - name: swap-conjunction
    hypotheses: ["A & B"]
    goal: "B & A"
    steps:
      - rule: "E∧2"
        refs: [0]
      - rule: "E∧1"
        refs: [0]
      - rule: "I∧"
        refs: [1, 2]
`))
	require.NoError(t, err)

	assert.NotNil(t, script.Rules.Lookup("CONTRA"))
	assert.NotNil(t, script.Rules.Lookup("MP"), "base system rules are kept")
	require.Len(t, script.Proofs, 1)

	np := script.Proofs[0]
	assert.Equal(t, "swap-conjunction", np.Name)
	res := proof.Verify(script.Rules, np.Proof)
	assert.Equal(t, proof.Verified, res.Verdict)
}

func TestParseScriptStepForms(t *testing.T) {
	script, err := ParseScript([]byte(`
system: hilbert
proofs:
  - name: weaken
    hypotheses: ["A"]
    goal: "B -> A"
    steps:
      - axiom: AX1
        binding: {A: "B", B: "A"}
      - rule: MP
        refs: [0, 1]
  - name: unfinished
    goal: "A -> A"
    steps:
      - incomplete: true
`))
	require.NoError(t, err)
	require.Len(t, script.Proofs, 2)

	res := proof.Verify(script.Rules, script.Proofs[0].Proof)
	assert.Equal(t, proof.Verified, res.Verdict)

	step, ok := script.Proofs[0].Proof.Steps[0].(proof.AxiomSpecialization)
	require.True(t, ok)
	assert.Equal(t, "AX1", step.RuleID)
	assert.True(t, formula.Equal(step.Binding["B"], formula.MustVar("A")))

	res = proof.Verify(script.Rules, script.Proofs[1].Proof)
	assert.Equal(t, proof.Partial, res.Verdict)
}

func TestParseScriptBaseSystems(t *testing.T) {
	tests := []struct {
		system  string
		ruleID  string
		present bool
	}{
		{"", "MP", true},
		{"natural", "I∧", true},
		{"hilbert", "AX2", true},
		{"hilbert", "I∧", false},
		{"none", "MP", false},
	}
	for _, tt := range tests {
		t.Run(tt.system+"/"+tt.ruleID, func(t *testing.T) {
			script, err := ParseScript([]byte("system: " + tt.system))
			require.NoError(t, err)
			got := script.Rules.Lookup(tt.ruleID) != nil
			assert.Equal(t, tt.present, got)
		})
	}

	_, err := ParseScript([]byte("system: sequent"))
	assert.Error(t, err)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not yaml", "rules: ["},
		{"bad rule formula", "rules:\n  - id: X\n    conclusion: \"A &\""},
		{"duplicate rule id", "rules:\n  - id: MP\n    conclusion: \"A\""},
		{"bad goal", "proofs:\n  - name: p\n    goal: \"(\"\n    steps:\n      - incomplete: true"},
		{"step with two forms", "proofs:\n  - name: p\n    goal: \"A\"\n    steps:\n      - axiom: AX1\n        rule: MP"},
		{"step with no form", "proofs:\n  - name: p\n    goal: \"A\"\n    steps:\n      - refs: [0]"},
		{"axiom with refs", "proofs:\n  - name: p\n    goal: \"A\"\n    steps:\n      - axiom: AX1\n        refs: [0]"},
		{"incomplete with refs", "proofs:\n  - name: p\n    goal: \"A\"\n    steps:\n      - incomplete: true\n        refs: [0]"},
		{"proof without steps", "proofs:\n  - name: p\n    goal: \"A\""},
		{"bad binding formula", "proofs:\n  - name: p\n    goal: \"A\"\n    steps:\n      - axiom: AX1\n        binding: {A: \"&\"}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swap.proof.yaml")
	src := `
proofs:
  - name: swap
    hypotheses: ["A & B"]
    goal: "B & A"
    steps:
      - rule: "E∧2"
        refs: [0]
      - rule: "E∧1"
        refs: [0]
      - rule: "I∧"
        refs: [1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	require.Len(t, script.Proofs, 1)
	res := proof.Verify(script.Rules, script.Proofs[0].Proof)
	assert.Equal(t, proof.Verified, res.Verdict)

	_, err = LoadScript(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
