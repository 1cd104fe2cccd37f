package table

import "github.com/prooflang/tproof/internal/formula"

// Line computes the per-subformula truth values of one table row, in the
// left-to-right order of the rendered formula (operands around their
// connective), together with the index of the root connective's column. It
// backs the expanded table rendering where each connective gets its own
// column.
func Line(f formula.Formula, a Assignment) ([]bool, int, error) {
	switch ff := f.(type) {
	case formula.Var:
		v, ok := a[ff.Name]
		if !ok {
			return nil, 0, &UnassignedError{Name: ff.Name}
		}
		return []bool{v}, 0, nil
	case formula.Const:
		return []bool{ff.Value}, 0, nil
	case formula.Neg:
		line, pos, err := Line(ff.F, a)
		if err != nil {
			return nil, 0, err
		}
		return append([]bool{!line[pos]}, line...), 0, nil
	case formula.And:
		return binaryLine(ff.L, ff.R, a, func(l, r bool) bool { return l && r })
	case formula.Or:
		return binaryLine(ff.L, ff.R, a, func(l, r bool) bool { return l || r })
	case formula.Imp:
		return binaryLine(ff.L, ff.R, a, func(l, r bool) bool { return !l || r })
	default:
		v, err := Evaluate(f, a)
		return []bool{v}, 0, err
	}
}

func binaryLine(l, r formula.Formula, a Assignment, op func(bool, bool) bool) ([]bool, int, error) {
	left, lpos, err := Line(l, a)
	if err != nil {
		return nil, 0, err
	}
	right, rpos, err := Line(r, a)
	if err != nil {
		return nil, 0, err
	}
	value := op(left[lpos], right[rpos])
	line := make([]bool, 0, len(left)+1+len(right))
	line = append(line, left...)
	line = append(line, value)
	line = append(line, right...)
	return line, len(left), nil
}
