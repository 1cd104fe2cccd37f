package formula

import "fmt"

// UnifyError reports a structural mismatch between a pattern node and the
// concrete subformula it was matched against.
type UnifyError struct {
	Pattern  Formula
	Concrete Formula
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("cannot unify pattern %s with %s", e.Pattern, e.Concrete)
}

// Unify finds a binding b such that Substitute(pattern, b) is structurally
// equal to concrete. Matching is one-directional: only pattern variables
// bind, the concrete formula is taken literally. Repeated pattern variables
// must match structurally equal subformulas; a disagreement surfaces as a
// ConflictError.
func Unify(pattern, concrete Formula) (Binding, error) {
	b := make(Binding)
	if err := unify(pattern, concrete, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unify(pattern, concrete Formula, b Binding) error {
	switch p := pattern.(type) {
	case Var:
		return b.Bind(p.Name, concrete)
	case Const:
		if c, ok := concrete.(Const); ok && c.Value == p.Value {
			return nil
		}
		return &UnifyError{Pattern: pattern, Concrete: concrete}
	case Neg:
		c, ok := concrete.(Neg)
		if !ok {
			return &UnifyError{Pattern: pattern, Concrete: concrete}
		}
		return unify(p.F, c.F, b)
	case And:
		c, ok := concrete.(And)
		if !ok {
			return &UnifyError{Pattern: pattern, Concrete: concrete}
		}
		if err := unify(p.L, c.L, b); err != nil {
			return err
		}
		return unify(p.R, c.R, b)
	case Or:
		c, ok := concrete.(Or)
		if !ok {
			return &UnifyError{Pattern: pattern, Concrete: concrete}
		}
		if err := unify(p.L, c.L, b); err != nil {
			return err
		}
		return unify(p.R, c.R, b)
	case Imp:
		c, ok := concrete.(Imp)
		if !ok {
			return &UnifyError{Pattern: pattern, Concrete: concrete}
		}
		if err := unify(p.L, c.L, b); err != nil {
			return err
		}
		return unify(p.R, c.R, b)
	default:
		return fmt.Errorf("unknown pattern shape %T", pattern)
	}
}
