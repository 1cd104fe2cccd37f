package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prooflang/tproof/internal/formula"
	"github.com/prooflang/tproof/internal/proof"
	"github.com/prooflang/tproof/internal/rule"
	"github.com/prooflang/tproof/internal/systems"
)

// Script is a resolved script file: a rule set and the proofs claimed
// against it. The rule set is the named base system plus the script's own
// rule declarations.
type Script struct {
	Rules  *rule.Set
	Proofs []NamedProof
}

// NamedProof pairs a proof with its script-level name.
type NamedProof struct {
	Name  string
	Proof *proof.Proof
}

type scriptYAML struct {
	System string      `yaml:"system"`
	Rules  []ruleYAML  `yaml:"rules"`
	Proofs []proofYAML `yaml:"proofs"`
}

type ruleYAML struct {
	ID          string   `yaml:"id"`
	Assumptions []string `yaml:"assumptions"`
	Conclusion  string   `yaml:"conclusion"`
}

type proofYAML struct {
	Name       string     `yaml:"name"`
	Hypotheses []string   `yaml:"hypotheses"`
	Goal       string     `yaml:"goal"`
	Steps      []stepYAML `yaml:"steps"`
}

// stepYAML covers the three step forms. Exactly one of axiom, rule or
// incomplete must be set.
type stepYAML struct {
	Axiom      string            `yaml:"axiom"`
	Rule       string            `yaml:"rule"`
	Refs       []int             `yaml:"refs"`
	Binding    map[string]string `yaml:"binding"`
	Incomplete bool              `yaml:"incomplete"`
}

// baseSet resolves the script's base system name. The empty name defaults
// to natural deduction; "none" starts from an empty rule set.
func baseSet(system string) (*rule.Set, error) {
	switch system {
	case "", "natural":
		return systems.Natural(), nil
	case "hilbert":
		return systems.Hilbert(), nil
	case "none":
		return rule.MustNewSet(), nil
	default:
		return nil, fmt.Errorf("unknown system %q, want natural, hilbert or none", system)
	}
}

// ParseScript parses and resolves one script document.
func ParseScript(data []byte) (*Script, error) {
	var raw scriptYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}

	rules, err := baseSet(raw.System)
	if err != nil {
		return nil, err
	}
	for _, r := range raw.Rules {
		resolved, err := resolveRule(r)
		if err != nil {
			return nil, err
		}
		if err := rules.Add(resolved); err != nil {
			return nil, err
		}
	}

	script := &Script{Rules: rules}
	for _, p := range raw.Proofs {
		resolved, err := resolveProof(p)
		if err != nil {
			return nil, err
		}
		script.Proofs = append(script.Proofs, NamedProof{Name: p.Name, Proof: resolved})
	}
	return script, nil
}

// LoadScript reads and resolves a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

func resolveRule(r ruleYAML) (*rule.Rule, error) {
	assumptions := make([]formula.Formula, len(r.Assumptions))
	for i, s := range r.Assumptions {
		f, err := ParseFormula(s)
		if err != nil {
			return nil, fmt.Errorf("rule %s, assumption %d: %w", r.ID, i, err)
		}
		assumptions[i] = f
	}
	conclusion, err := ParseFormula(r.Conclusion)
	if err != nil {
		return nil, fmt.Errorf("rule %s, conclusion: %w", r.ID, err)
	}
	return rule.New(r.ID, assumptions, conclusion)
}

func resolveProof(p proofYAML) (*proof.Proof, error) {
	hypotheses := make([]formula.Formula, len(p.Hypotheses))
	for i, s := range p.Hypotheses {
		f, err := ParseFormula(s)
		if err != nil {
			return nil, fmt.Errorf("proof %s, hypothesis %d: %w", p.Name, i, err)
		}
		hypotheses[i] = f
	}
	goal, err := ParseFormula(p.Goal)
	if err != nil {
		return nil, fmt.Errorf("proof %s, goal: %w", p.Name, err)
	}
	steps := make([]proof.Step, len(p.Steps))
	for i, s := range p.Steps {
		step, err := resolveStep(s)
		if err != nil {
			return nil, fmt.Errorf("proof %s, step %d: %w", p.Name, i, err)
		}
		steps[i] = step
	}
	pr, err := proof.New(hypotheses, goal, steps)
	if err != nil {
		return nil, fmt.Errorf("proof %s: %w", p.Name, err)
	}
	return pr, nil
}

func resolveStep(s stepYAML) (proof.Step, error) {
	forms := 0
	if s.Axiom != "" {
		forms++
	}
	if s.Rule != "" {
		forms++
	}
	if s.Incomplete {
		forms++
	}
	if forms != 1 {
		return nil, fmt.Errorf("want exactly one of axiom, rule or incomplete")
	}

	binding, err := resolveBinding(s.Binding)
	if err != nil {
		return nil, err
	}
	switch {
	case s.Axiom != "":
		if len(s.Refs) > 0 {
			return nil, fmt.Errorf("axiom step takes no refs")
		}
		return proof.AxiomSpecialization{RuleID: s.Axiom, Binding: binding}, nil
	case s.Rule != "":
		return proof.RuleApplication{RuleID: s.Rule, Refs: s.Refs, Binding: binding}, nil
	default:
		if len(s.Refs) > 0 || binding != nil {
			return nil, fmt.Errorf("incomplete step takes no refs or binding")
		}
		return proof.Incomplete{}, nil
	}
}

func resolveBinding(m map[string]string) (formula.Binding, error) {
	if m == nil {
		return nil, nil
	}
	b := make(formula.Binding, len(m))
	for name, src := range m {
		f, err := ParseFormula(src)
		if err != nil {
			return nil, fmt.Errorf("binding for %s: %w", name, err)
		}
		b[name] = f
	}
	return b, nil
}
