package rule

import (
	"fmt"

	"github.com/prooflang/tproof/internal/formula"
)

// Rewrite is a substitution rule head ⇒ body: occurrences of the head
// pattern in a formula are replaced by the body instantiated under the
// matched binding. Distinct from inference rules, rewrites act on positions
// inside a formula rather than on whole proof lines.
type Rewrite struct {
	Head formula.Formula
	Body formula.Formula
}

// NewRewrite builds a rewrite rule. Every variable of the body must occur
// in the head, otherwise an application could invent subformulas.
func NewRewrite(head, body formula.Formula) (*Rewrite, error) {
	headVars := formula.VarSet(head)
	for name := range formula.VarSet(body) {
		if _, ok := headVars[name]; !ok {
			return nil, fmt.Errorf("rewrite body variable %s does not occur in the head", name)
		}
	}
	return &Rewrite{Head: head, Body: body}, nil
}

// MustNewRewrite is NewRewrite for statically known rewrites.
func MustNewRewrite(head, body formula.Formula) *Rewrite {
	rw, err := NewRewrite(head, body)
	if err != nil {
		panic(err)
	}
	return rw
}

func (rw *Rewrite) String() string {
	return fmt.Sprintf("%s ⇒ %s", rw.Head, rw.Body)
}

// IsImp reports whether the rewrite, read as an implication, is a
// tautology.
func (rw *Rewrite) IsImp() bool {
	return formula.IsTautologyCNF(formula.Imply(rw.Head, rw.Body))
}

// IsEquiv reports whether head and body are semantically equivalent.
func (rw *Rewrite) IsEquiv() bool {
	return formula.IsTautologyCNF(formula.Conj(
		formula.Imply(rw.Head, rw.Body),
		formula.Imply(rw.Body, rw.Head),
	))
}

// Inverse returns the rewrite with head and body swapped. Restricted to
// equivalences.
func (rw *Rewrite) Inverse() (*Rewrite, error) {
	if !rw.IsEquiv() {
		return nil, fmt.Errorf("rewrite %s is not an equivalence", rw)
	}
	return NewRewrite(rw.Body, rw.Head)
}

// Matches returns, for every breadth-first position of f, the binding under
// which the head matches the subformula there, or nil for positions where
// it does not match.
func (rw *Rewrite) Matches(f formula.Formula) []formula.Binding {
	subs := formula.Traverse(f, formula.BreadthFirst)
	out := make([]formula.Binding, len(subs))
	for i, sub := range subs {
		if b, err := formula.Unify(rw.Head, sub); err == nil {
			out[i] = b
		}
	}
	return out
}

// ApplyAt applies the rewrite at the given breadth-first position of f. It
// fails if the head does not match there.
func (rw *Rewrite) ApplyAt(f formula.Formula, pos int) (formula.Formula, error) {
	matches := rw.Matches(f)
	if pos < 0 || pos >= len(matches) {
		return nil, fmt.Errorf("position %d out of range", pos)
	}
	b := matches[pos]
	if b == nil {
		return nil, fmt.Errorf("rewrite %s does not match at position %d of %s", rw, pos, f)
	}
	return formula.ReplaceAt(f, pos, formula.Substitute(rw.Body, b), formula.BreadthFirst)
}

// ApplyFirst applies the rewrite at the first matching position, returning
// f unchanged and false when there is none.
func (rw *Rewrite) ApplyFirst(f formula.Formula) (formula.Formula, bool) {
	for pos, b := range rw.Matches(f) {
		if b == nil {
			continue
		}
		out, err := formula.ReplaceAt(f, pos, formula.Substitute(rw.Body, b), formula.BreadthFirst)
		if err != nil {
			continue
		}
		return out, true
	}
	return f, false
}

// ApplyAll applies the rewrite repeatedly until no position matches. To
// guarantee termination the head must not match inside the body.
func (rw *Rewrite) ApplyAll(f formula.Formula) (formula.Formula, error) {
	for _, b := range rw.Matches(rw.Body) {
		if b != nil {
			return nil, fmt.Errorf("rewrite %s head matches its own body, iteration would not terminate", rw)
		}
	}
	for {
		next, ok := rw.ApplyFirst(f)
		if !ok {
			return f, nil
		}
		f = next
	}
}

// ApplyRewrites applies every rewrite in the list exhaustively, looping over
// the list until a full pass changes nothing.
func ApplyRewrites(rws []*Rewrite, f formula.Formula) (formula.Formula, error) {
	for {
		before := f
		for _, rw := range rws {
			next, err := rw.ApplyAll(f)
			if err != nil {
				return nil, err
			}
			f = next
		}
		if formula.Equal(f, before) {
			return f, nil
		}
	}
}
