package formula

// Normal form transformations, each returning a semantically equivalent
// formula. Composed by CNF in the order: drop implications, push negations
// down, distribute disjunctions, simplify constants.

// SimplifyDoubleNeg removes every double negation from the tree.
func SimplifyDoubleNeg(f Formula) Formula {
	switch ff := f.(type) {
	case Var, Const:
		return ff
	case Neg:
		if inner, ok := ff.F.(Neg); ok {
			return SimplifyDoubleNeg(inner.F)
		}
		return Neg{F: SimplifyDoubleNeg(ff.F)}
	case And:
		return And{L: SimplifyDoubleNeg(ff.L), R: SimplifyDoubleNeg(ff.R)}
	case Or:
		return Or{L: SimplifyDoubleNeg(ff.L), R: SimplifyDoubleNeg(ff.R)}
	case Imp:
		return Imp{L: SimplifyDoubleNeg(ff.L), R: SimplifyDoubleNeg(ff.R)}
	default:
		return f
	}
}

// SubstImp rewrites every implication using A→B ≡ ¬A∨B.
func SubstImp(f Formula) Formula {
	switch ff := f.(type) {
	case Var, Const:
		return ff
	case Neg:
		return Neg{F: SubstImp(ff.F)}
	case And:
		return And{L: SubstImp(ff.L), R: SubstImp(ff.R)}
	case Or:
		return Or{L: SubstImp(ff.L), R: SubstImp(ff.R)}
	case Imp:
		return Or{L: Neg{F: SubstImp(ff.L)}, R: SubstImp(ff.R)}
	default:
		return f
	}
}

// PushNeg pushes negations down to the leaves with the De Morgan laws,
// eliminating double negations on the way. Implications under a negation are
// expanded via ¬(A→B) ≡ A∧¬B.
func PushNeg(f Formula) Formula {
	switch ff := f.(type) {
	case Var, Const:
		return ff
	case Neg:
		switch inner := ff.F.(type) {
		case Var, Const:
			return ff
		case Neg:
			return PushNeg(inner.F)
		case And:
			return Or{L: PushNeg(Neg{F: inner.L}), R: PushNeg(Neg{F: inner.R})}
		case Or:
			return And{L: PushNeg(Neg{F: inner.L}), R: PushNeg(Neg{F: inner.R})}
		case Imp:
			return And{L: PushNeg(inner.L), R: PushNeg(Neg{F: inner.R})}
		default:
			return ff
		}
	case And:
		return And{L: PushNeg(ff.L), R: PushNeg(ff.R)}
	case Or:
		return Or{L: PushNeg(ff.L), R: PushNeg(ff.R)}
	case Imp:
		return Imp{L: PushNeg(ff.L), R: PushNeg(ff.R)}
	default:
		return f
	}
}

// DistributeOr applies the distributive law A∨(B∧C) ≡ (A∨B)∧(A∨C) until a
// fixed point is reached.
func DistributeOr(f Formula) Formula {
	for {
		next := distributeOrStep(f)
		if Equal(next, f) {
			return f
		}
		f = next
	}
}

func distributeOrStep(f Formula) Formula {
	switch ff := f.(type) {
	case Var, Const:
		return ff
	case Neg:
		return Neg{F: distributeOrStep(ff.F)}
	case Or:
		if l, ok := ff.L.(And); ok {
			return And{
				L: Or{L: distributeOrStep(l.L), R: distributeOrStep(ff.R)},
				R: Or{L: distributeOrStep(l.R), R: distributeOrStep(ff.R)},
			}
		}
		if r, ok := ff.R.(And); ok {
			return And{
				L: Or{L: distributeOrStep(ff.L), R: distributeOrStep(r.L)},
				R: Or{L: distributeOrStep(ff.L), R: distributeOrStep(r.R)},
			}
		}
		return Or{L: distributeOrStep(ff.L), R: distributeOrStep(ff.R)}
	case And:
		return And{L: distributeOrStep(ff.L), R: distributeOrStep(ff.R)}
	case Imp:
		return Imp{L: distributeOrStep(ff.L), R: distributeOrStep(ff.R)}
	default:
		return f
	}
}

// SimplifyConst removes redundant constants (T∧A ≡ A, F∨A ≡ A, ¬T ≡ F and
// so on) until a fixed point is reached.
func SimplifyConst(f Formula) Formula {
	for {
		next := simplifyConstStep(f)
		if Equal(next, f) {
			return f
		}
		f = next
	}
}

func simplifyConstStep(f Formula) Formula {
	switch ff := f.(type) {
	case Var, Const:
		return ff
	case Neg:
		if c, ok := ff.F.(Const); ok {
			return Const{Value: !c.Value}
		}
		return Neg{F: simplifyConstStep(ff.F)}
	case And:
		if Equal(ff.L, True) {
			return simplifyConstStep(ff.R)
		}
		if Equal(ff.R, True) {
			return simplifyConstStep(ff.L)
		}
		if Equal(ff.L, False) || Equal(ff.R, False) {
			return False
		}
		return And{L: simplifyConstStep(ff.L), R: simplifyConstStep(ff.R)}
	case Or:
		if Equal(ff.L, True) || Equal(ff.R, True) {
			return True
		}
		if Equal(ff.L, False) {
			return simplifyConstStep(ff.R)
		}
		if Equal(ff.R, False) {
			return simplifyConstStep(ff.L)
		}
		return Or{L: simplifyConstStep(ff.L), R: simplifyConstStep(ff.R)}
	case Imp:
		if Equal(ff.L, True) {
			return simplifyConstStep(ff.R)
		}
		if Equal(ff.R, True) || Equal(ff.L, False) {
			return True
		}
		if Equal(ff.R, False) {
			return Neg{F: simplifyConstStep(ff.L)}
		}
		return Imp{L: simplifyConstStep(ff.L), R: simplifyConstStep(ff.R)}
	default:
		return f
	}
}

// CNF returns the conjunctive normal form of f.
func CNF(f Formula) Formula {
	return SimplifyConst(DistributeOr(PushNeg(SubstImp(f))))
}

// Literal is an element of a CNF clause: a variable, a negated variable or a
// constant.
type Literal struct {
	Name    string
	Negated bool
	IsConst bool
	Value   bool
}

// CNFClauses returns the CNF of f as a list of clauses, each clause the set
// of its literals. The outer list is a conjunction, each clause a
// disjunction.
func CNFClauses(f Formula) [][]Literal {
	cnf := CNF(f)
	var clauses [][]Literal
	var conj func(Formula)
	var disj func(Formula, *[]Literal)
	disj = func(f Formula, out *[]Literal) {
		switch ff := f.(type) {
		case Or:
			disj(ff.L, out)
			disj(ff.R, out)
		case Var:
			*out = append(*out, Literal{Name: ff.Name})
		case Const:
			*out = append(*out, Literal{IsConst: true, Value: ff.Value})
		case Neg:
			switch inner := ff.F.(type) {
			case Var:
				*out = append(*out, Literal{Name: inner.Name, Negated: true})
			case Const:
				*out = append(*out, Literal{IsConst: true, Value: !inner.Value})
			}
		}
	}
	conj = func(f Formula) {
		if a, ok := f.(And); ok {
			conj(a.L)
			conj(a.R)
			return
		}
		var clause []Literal
		disj(f, &clause)
		clauses = append(clauses, clause)
	}
	conj(cnf)
	return clauses
}

// IsTautologyCNF decides tautology syntactically: every CNF clause must
// contain the constant T or a complementary literal pair. This is the cheap
// alternative to enumerating a truth table.
func IsTautologyCNF(f Formula) bool {
	for _, clause := range CNFClauses(f) {
		if !clauseValid(clause) {
			return false
		}
	}
	return true
}

func clauseValid(clause []Literal) bool {
	pos := make(map[string]bool)
	neg := make(map[string]bool)
	for _, lit := range clause {
		if lit.IsConst {
			if lit.Value {
				return true
			}
			continue
		}
		if lit.Negated {
			neg[lit.Name] = true
		} else {
			pos[lit.Name] = true
		}
	}
	for name := range pos {
		if neg[name] {
			return true
		}
	}
	return false
}
