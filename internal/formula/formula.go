package formula

import (
	"fmt"
	"sort"
)

// VarNames is the alphabet of admissible variable names. The letters T and F
// are reserved for the truth constants; U is reserved for rendering unknowns.
const VarNames = "ABCDEGHIJKLMNOPQRSVWXYZ"

// Formula is a propositional formula tree. The set of shapes is closed:
// Var, Const, Neg, And, Or and Imp. Trees are immutable once built; every
// operation on them returns a new tree.
type Formula interface {
	isFormula()

	// String returns the infix rendering, with every binary node
	// parenthesized.
	String() string

	// Polish returns the formula in prefix (polish) notation, tokens
	// separated by single spaces.
	Polish() string
}

// Var is a propositional variable.
type Var struct {
	Name string
}

// NewVar builds a variable, rejecting names outside the admissible alphabet.
func NewVar(name string) (Var, error) {
	if !ValidVarName(name) {
		return Var{}, fmt.Errorf("invalid variable name %q", name)
	}
	return Var{Name: name}, nil
}

// MustVar is NewVar for statically known names, such as rule declarations.
func MustVar(name string) Var {
	v, err := NewVar(name)
	if err != nil {
		panic(err)
	}
	return v
}

// ValidVarName reports whether name is a single letter from VarNames.
func ValidVarName(name string) bool {
	if len(name) != 1 {
		return false
	}
	for i := 0; i < len(VarNames); i++ {
		if VarNames[i] == name[0] {
			return true
		}
	}
	return false
}

func (Var) isFormula()       {}
func (v Var) String() string { return v.Name }
func (v Var) Polish() string { return v.Name }

// Const is one of the two truth constants.
type Const struct {
	Value bool
}

// The two truth constants.
var (
	True  = Const{Value: true}
	False = Const{Value: false}
)

func (Const) isFormula() {}

func (c Const) String() string {
	if c.Value {
		return "T"
	}
	return "F"
}

func (c Const) Polish() string { return c.String() }

// Neg is the negation of a formula.
type Neg struct {
	F Formula
}

func (Neg) isFormula()       {}
func (n Neg) String() string { return "¬" + n.F.String() }
func (n Neg) Polish() string { return "¬ " + n.F.Polish() }

// And is a conjunction. Operand order is significant for structural
// operations even though the connective is semantically commutative.
type And struct {
	L, R Formula
}

func (And) isFormula() {}
func (a And) String() string {
	return fmt.Sprintf("(%s∧%s)", a.L, a.R)
}
func (a And) Polish() string {
	return fmt.Sprintf("∧ %s %s", a.L.Polish(), a.R.Polish())
}

// Or is a disjunction.
type Or struct {
	L, R Formula
}

func (Or) isFormula() {}
func (o Or) String() string {
	return fmt.Sprintf("(%s∨%s)", o.L, o.R)
}
func (o Or) Polish() string {
	return fmt.Sprintf("∨ %s %s", o.L.Polish(), o.R.Polish())
}

// Imp is an implication, left operand implying the right.
type Imp struct {
	L, R Formula
}

func (Imp) isFormula() {}
func (i Imp) String() string {
	return fmt.Sprintf("(%s→%s)", i.L, i.R)
}
func (i Imp) Polish() string {
	return fmt.Sprintf("→ %s %s", i.L.Polish(), i.R.Polish())
}

// Not negates f.
func Not(f Formula) Formula { return Neg{F: f} }

// Conj builds the conjunction of l and r.
func Conj(l, r Formula) Formula { return And{L: l, R: r} }

// Disj builds the disjunction of l and r.
func Disj(l, r Formula) Formula { return Or{L: l, R: r} }

// Imply builds the implication from l to r.
func Imply(l, r Formula) Formula { return Imp{L: l, R: r} }

// Equal reports deep structural equality of two formulas. Operand order is
// respected; no normalization takes place, so A∧B and B∧A are not equal.
func Equal(a, b Formula) bool {
	switch fa := a.(type) {
	case Var:
		fb, ok := b.(Var)
		return ok && fa.Name == fb.Name
	case Const:
		fb, ok := b.(Const)
		return ok && fa.Value == fb.Value
	case Neg:
		fb, ok := b.(Neg)
		return ok && Equal(fa.F, fb.F)
	case And:
		fb, ok := b.(And)
		return ok && Equal(fa.L, fb.L) && Equal(fa.R, fb.R)
	case Or:
		fb, ok := b.(Or)
		return ok && Equal(fa.L, fb.L) && Equal(fa.R, fb.R)
	case Imp:
		fb, ok := b.(Imp)
		return ok && Equal(fa.L, fb.L) && Equal(fa.R, fb.R)
	default:
		return false
	}
}

// Substitute returns a new tree where every occurrence of a variable bound in
// b is replaced by its bound formula. Unbound variables and constants are
// left untouched. Substitution is total.
func Substitute(f Formula, b Binding) Formula {
	if len(b) == 0 {
		return f
	}
	switch ff := f.(type) {
	case Var:
		if repl, ok := b[ff.Name]; ok {
			return repl
		}
		return ff
	case Const:
		return ff
	case Neg:
		return Neg{F: Substitute(ff.F, b)}
	case And:
		return And{L: Substitute(ff.L, b), R: Substitute(ff.R, b)}
	case Or:
		return Or{L: Substitute(ff.L, b), R: Substitute(ff.R, b)}
	case Imp:
		return Imp{L: Substitute(ff.L, b), R: Substitute(ff.R, b)}
	default:
		panic(fmt.Sprintf("unknown formula shape %T", f))
	}
}

// VarSet collects the names of the variables occurring in f.
func VarSet(f Formula) map[string]struct{} {
	set := make(map[string]struct{})
	collectVars(f, set)
	return set
}

func collectVars(f Formula, set map[string]struct{}) {
	switch ff := f.(type) {
	case Var:
		set[ff.Name] = struct{}{}
	case Const:
	case Neg:
		collectVars(ff.F, set)
	case And:
		collectVars(ff.L, set)
		collectVars(ff.R, set)
	case Or:
		collectVars(ff.L, set)
		collectVars(ff.R, set)
	case Imp:
		collectVars(ff.L, set)
		collectVars(ff.R, set)
	}
}

// Vars returns the variable names of f, sorted and deduplicated.
func Vars(f Formula) []string {
	set := VarSet(f)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Consts collects the constants occurring in f.
func Consts(f Formula) []Const {
	seen := make(map[bool]bool)
	var walk func(Formula)
	walk = func(f Formula) {
		switch ff := f.(type) {
		case Const:
			seen[ff.Value] = true
		case Neg:
			walk(ff.F)
		case And:
			walk(ff.L)
			walk(ff.R)
		case Or:
			walk(ff.L)
			walk(ff.R)
		case Imp:
			walk(ff.L)
			walk(ff.R)
		}
	}
	walk(f)
	var out []Const
	if seen[false] {
		out = append(out, False)
	}
	if seen[true] {
		out = append(out, True)
	}
	return out
}

// Len returns the node count of the formula tree.
func Len(f Formula) int {
	switch ff := f.(type) {
	case Var, Const:
		return 1
	case Neg:
		return 1 + Len(ff.F)
	case And:
		return 1 + Len(ff.L) + Len(ff.R)
	case Or:
		return 1 + Len(ff.L) + Len(ff.R)
	case Imp:
		return 1 + Len(ff.L) + Len(ff.R)
	default:
		return 0
	}
}
