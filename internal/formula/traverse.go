package formula

import "fmt"

// Order selects a tree traversal order.
type Order int

const (
	// BreadthFirst visits nodes level by level, left child before right.
	BreadthFirst Order = iota
	// InOrder visits each node before its children, left subtree first.
	InOrder
)

// Traverse returns every subformula of f, including f itself, in the given
// order. Positions into this sequence are how rewrite rules address
// subformulas.
func Traverse(f Formula, order Order) []Formula {
	switch order {
	case InOrder:
		var out []Formula
		var walk func(Formula)
		walk = func(f Formula) {
			out = append(out, f)
			switch ff := f.(type) {
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
		return out
	default:
		var out []Formula
		queue := []Formula{f}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			out = append(out, cur)
			switch ff := cur.(type) {
			case Neg:
				queue = append(queue, ff.F)
			case And:
				queue = append(queue, ff.L, ff.R)
			case Or:
				queue = append(queue, ff.L, ff.R)
			case Imp:
				queue = append(queue, ff.L, ff.R)
			}
		}
		return out
	}
}

// ReplaceAt returns a new tree where the subformula at position pos of the
// traversal in the given order is replaced by repl. The position must be
// within range.
func ReplaceAt(f Formula, pos int, repl Formula, order Order) (Formula, error) {
	n := Len(f)
	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("position %d out of range (formula has %d nodes)", pos, n)
	}
	switch order {
	case InOrder:
		out, _ := replaceInOrder(f, pos, repl, 0)
		return out, nil
	default:
		return replaceBreadth(f, pos, repl), nil
	}
}

func replaceInOrder(f Formula, pos int, repl Formula, next int) (Formula, int) {
	if next == pos {
		return repl, next + 1
	}
	next++
	switch ff := f.(type) {
	case Neg:
		sub, n := replaceInOrder(ff.F, pos, repl, next)
		return Neg{F: sub}, n
	case And:
		l, n := replaceInOrder(ff.L, pos, repl, next)
		r, n := replaceInOrder(ff.R, pos, repl, n)
		return And{L: l, R: r}, n
	case Or:
		l, n := replaceInOrder(ff.L, pos, repl, next)
		r, n := replaceInOrder(ff.R, pos, repl, n)
		return Or{L: l, R: r}, n
	case Imp:
		l, n := replaceInOrder(ff.L, pos, repl, next)
		r, n := replaceInOrder(ff.R, pos, repl, n)
		return Imp{L: l, R: r}, n
	default:
		return f, next
	}
}

// replaceBreadth rebuilds the tree with the node at breadth-first position
// pos swapped for repl. Parents are addressed by their own breadth-first
// position so the child offsets can be computed level by level.
func replaceBreadth(f Formula, pos int, repl Formula) Formula {
	if pos == 0 {
		return repl
	}
	type slot struct {
		f   Formula
		idx int
	}
	// Find the path from the root to the target position.
	queue := []slot{{f: f, idx: 0}}
	parent := make(map[int]int)  // child position -> parent position
	childOf := make(map[int]int) // child position -> 0 (left/only) or 1 (right)
	nodes := make(map[int]Formula)
	next := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nodes[cur.idx] = cur.f
		var kids []Formula
		switch ff := cur.f.(type) {
		case Neg:
			kids = []Formula{ff.F}
		case And:
			kids = []Formula{ff.L, ff.R}
		case Or:
			kids = []Formula{ff.L, ff.R}
		case Imp:
			kids = []Formula{ff.L, ff.R}
		}
		for i, kid := range kids {
			parent[next] = cur.idx
			childOf[next] = i
			queue = append(queue, slot{f: kid, idx: next})
			next++
		}
	}
	// Rebuild along the path back to the root.
	cur := repl
	at := pos
	for at != 0 {
		p := parent[at]
		side := childOf[at]
		switch pf := nodes[p].(type) {
		case Neg:
			cur = Neg{F: cur}
		case And:
			if side == 0 {
				cur = And{L: cur, R: pf.R}
			} else {
				cur = And{L: pf.L, R: cur}
			}
		case Or:
			if side == 0 {
				cur = Or{L: cur, R: pf.R}
			} else {
				cur = Or{L: pf.L, R: cur}
			}
		case Imp:
			if side == 0 {
				cur = Imp{L: cur, R: pf.R}
			} else {
				cur = Imp{L: pf.L, R: cur}
			}
		}
		at = p
	}
	return cur
}
