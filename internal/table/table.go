// Package table implements truth-table semantics for propositional formulas:
// evaluation under an assignment, full table enumeration and the tautology
// check. It is independent of proof checking and is used to sanity-check rule
// declarations.
//
// Table enumeration is exponential in the number of free variables (2^k
// rows). The package does not cap k; callers are expected to bound it.
package table

import (
	"fmt"

	"github.com/prooflang/tproof/internal/formula"
)

// Assignment maps variable names to truth values.
type Assignment map[string]bool

// UnassignedError reports evaluation of a formula whose free variable is
// missing from the assignment.
type UnassignedError struct {
	Name string
}

func (e *UnassignedError) Error() string {
	return fmt.Sprintf("variable %s has no assigned value", e.Name)
}

// Evaluate computes the truth value of f under the assignment using the
// standard two-valued semantics. It fails with an UnassignedError if a free
// variable of f is not assigned.
func Evaluate(f formula.Formula, a Assignment) (bool, error) {
	switch ff := f.(type) {
	case formula.Var:
		v, ok := a[ff.Name]
		if !ok {
			return false, &UnassignedError{Name: ff.Name}
		}
		return v, nil
	case formula.Const:
		return ff.Value, nil
	case formula.Neg:
		v, err := Evaluate(ff.F, a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case formula.And:
		l, err := Evaluate(ff.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(ff.R, a)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case formula.Or:
		l, err := Evaluate(ff.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(ff.R, a)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case formula.Imp:
		l, err := Evaluate(ff.L, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(ff.R, a)
		if err != nil {
			return false, err
		}
		return !l || r, nil
	default:
		return false, fmt.Errorf("unknown formula shape %T", f)
	}
}

// Row is one line of a truth table: an assignment and the value of the
// formula under it.
type Row struct {
	Assignment Assignment
	Value      bool
}

// Table is the full truth table of a formula. Rows are ordered
// deterministically: variables sorted by name, assignments enumerated by
// binary counting with false before true, the first variable most
// significant.
type Table struct {
	Formula formula.Formula
	Vars    []string
	Rows    []Row
}

// New enumerates the truth table of f.
func New(f formula.Formula) *Table {
	vars := formula.Vars(f)
	n := len(vars)
	rows := make([]Row, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		a := make(Assignment, n)
		for j, name := range vars {
			// most significant bit first, 0 = false
			a[name] = i&(1<<(n-1-j)) != 0
		}
		v, err := Evaluate(f, a)
		if err != nil {
			// free variables are assigned by construction
			panic(err)
		}
		rows = append(rows, Row{Assignment: a, Value: v})
	}
	return &Table{Formula: f, Vars: vars, Rows: rows}
}

// Values returns the main column of the table.
func (t *Table) Values() []bool {
	out := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Value
	}
	return out
}

// IsTautology reports whether every row of the table is true.
func (t *Table) IsTautology() bool {
	for _, row := range t.Rows {
		if !row.Value {
			return false
		}
	}
	return true
}

// IsTautology reports whether f evaluates to true under every assignment of
// its free variables.
func IsTautology(f formula.Formula) bool {
	return New(f).IsTautology()
}
