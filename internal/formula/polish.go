package formula

import (
	"fmt"
	"strings"
)

// ParsePolish parses a formula written in prefix (polish) notation, the form
// produced by the Polish method. Operators may be the unicode connectives or
// their ASCII spellings: ¬/!, ∧/&, ∨/|, →/>. Tokens may be separated by any
// amount of whitespace; single-letter tokens need no separation at all.
func ParsePolish(s string) (Formula, error) {
	tokens := tokenizePolish(s)
	f, rest, err := parsePolish(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("trailing tokens after formula: %s", strings.Join(rest, " "))
	}
	return f, nil
}

func tokenizePolish(s string) []string {
	var tokens []string
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n':
		default:
			tokens = append(tokens, string(r))
		}
	}
	return tokens
}

func parsePolish(tokens []string) (Formula, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("unexpected end of input")
	}
	tok, rest := tokens[0], tokens[1:]
	switch tok {
	case "¬", "!":
		f, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		return Neg{F: f}, rest, nil
	case "∧", "&":
		l, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		r, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		return And{L: l, R: r}, rest, nil
	case "∨", "|":
		l, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		r, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		return Or{L: l, R: r}, rest, nil
	case "→", ">":
		l, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		r, rest, err := parsePolish(rest)
		if err != nil {
			return nil, nil, err
		}
		return Imp{L: l, R: r}, rest, nil
	case "T":
		return True, rest, nil
	case "F":
		return False, rest, nil
	default:
		v, err := NewVar(tok)
		if err != nil {
			return nil, nil, fmt.Errorf("unexpected token %q", tok)
		}
		return v, rest, nil
	}
}
