package formula

import "math/rand"

// GenerateVars returns the first n variables of the alphabet, in order.
func GenerateVars(n int) []Var {
	if n > len(VarNames) {
		n = len(VarNames)
	}
	out := make([]Var, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Var{Name: string(VarNames[i])})
	}
	return out
}

// Random generates a random formula over the first nVars variables with tree
// depth at most maxDepth. Used by tests to exercise structural operations on
// irregular trees.
func Random(rng *rand.Rand, nVars, maxDepth int, includeConsts bool) Formula {
	if maxDepth <= 1 {
		if includeConsts && rng.Intn(2) == 0 {
			return Const{Value: rng.Intn(2) == 0}
		}
		vars := GenerateVars(nVars)
		return vars[rng.Intn(len(vars))]
	}
	sub := func() Formula {
		return Random(rng, nVars, 1+rng.Intn(maxDepth-1), includeConsts)
	}
	switch rng.Intn(4) {
	case 0:
		return Neg{F: sub()}
	case 1:
		return And{L: sub(), R: sub()}
	case 2:
		return Or{L: sub(), R: sub()}
	default:
		return Imp{L: sub(), R: sub()}
	}
}
