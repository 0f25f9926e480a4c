package solver

import "fmt"

// Scheme selects the finite difference approximation of the advective
// (1/r)*dC/dr term. It is a closed enumeration: the two switch sites in the
// assembly (interior advective term, symmetry boundary row) match on it
// exhaustively, so adding a scheme is a localized, compiler-checked change.
type Scheme int

const (
	// Forward approximates dC/dr with a first-order forward difference.
	Forward Scheme = iota
	// Central approximates dC/dr with a second-order central difference.
	Central
)

// ParseScheme maps a scheme name to its Scheme value. Unrecognized names are
// an error; there is no fallback default.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "forward":
		return Forward, nil
	case "central":
		return Central, nil
	}
	return 0, fmt.Errorf("unknown scheme %q (want forward or central)", name)
}

func (s Scheme) String() string {
	switch s {
	case Forward:
		return "forward"
	case Central:
		return "central"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// Order returns the formal order of accuracy of the scheme.
func (s Scheme) Order() int {
	if s == Central {
		return 2
	}
	return 1
}
