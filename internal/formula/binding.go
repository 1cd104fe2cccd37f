package formula

import (
	"fmt"
	"sort"
	"strings"
)

// Binding maps variable names to formulas. It is the result of unification
// and the input of substitution. Within one binding a variable maps to at
// most one formula; Merge enforces this.
type Binding map[string]Formula

// ConflictError reports an attempt to bind one variable to two structurally
// different formulas.
type ConflictError struct {
	Name     string
	Old, New Formula
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting binding for %s: %s vs %s", e.Name, e.Old, e.New)
}

// Clone returns a shallow copy of the binding. The formulas themselves are
// immutable and shared.
func (b Binding) Clone() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge combines two bindings into a fresh one. It fails with a
// ConflictError if both bind the same variable to structurally different
// formulas. Neither input is modified.
func (b Binding) Merge(other Binding) (Binding, error) {
	out := b.Clone()
	for name, f := range other {
		if old, ok := out[name]; ok {
			if !Equal(old, f) {
				return nil, &ConflictError{Name: name, Old: old, New: f}
			}
			continue
		}
		out[name] = f
	}
	return out, nil
}

// Bind adds a single variable assignment, failing on a conflicting rebind.
// The binding is modified in place; a consistent rebind is a no-op.
func (b Binding) Bind(name string, f Formula) error {
	if old, ok := b[name]; ok {
		if !Equal(old, f) {
			return &ConflictError{Name: name, Old: old, New: f}
		}
		return nil
	}
	b[name] = f
	return nil
}

// Covers reports whether every name in vars is bound.
func (b Binding) Covers(vars []string) bool {
	for _, name := range vars {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the names in vars that are not bound, sorted.
func (b Binding) Missing(vars []string) []string {
	var out []string
	for _, name := range vars {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// String renders the binding deterministically, ordered by variable name.
func (b Binding) String() string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", name, b[name])
	}
	sb.WriteByte('}')
	return sb.String()
}
