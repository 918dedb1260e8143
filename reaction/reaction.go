// Package reaction models chemical reactions and balances them by
// null-space search over the element/charge conservation matrix.
//
// Grounded on the same matrix-null-space idea used in the retrieved corpus's
// own linear-algebra-heavy repos (gonum/mat's Dense+SVD is used here for the
// rank check; the exact coefficient vector itself is computed with
// math/big.Rat Gaussian elimination, since a balanced-reaction coefficient
// must be an exact integer ratio and floating SVD output is not).
package reaction

import "github.com/chem-lang/cl/formula"

// Species is one term of a reaction: a formula with its (once balanced)
// positive integer coefficient. Coefficient is 0 in a skeleton.
type Species struct {
	Formula     formula.Formula
	Coefficient int
}

// Reaction is a two-sided equation. In a skeleton, Coefficients are zero or
// absent (treated as 1 for parsing purposes, irrelevant to balancing, since
// the balancer infers its own coefficients from conservation alone).
type Reaction struct {
	Reactants []Species
	Products  []Species
}

// Balanced reports whether every species carries a positive coefficient.
func (r Reaction) Balanced() bool {
	for _, s := range r.Reactants {
		if s.Coefficient <= 0 {
			return false
		}
	}
	for _, s := range r.Products {
		if s.Coefficient <= 0 {
			return false
		}
	}
	return true
}

// IndexOfReactant and IndexOfProduct locate a species by formula equality,
// used by the convert package to find the coefficient ratio between two
// species on opposite sides of a balanced reaction.
func (r Reaction) IndexOfReactant(f formula.Formula) (int, bool) {
	for i, s := range r.Reactants {
		if s.Formula.Equal(f) {
			return i, true
		}
	}
	return 0, false
}

func (r Reaction) IndexOfProduct(f formula.Formula) (int, bool) {
	for i, s := range r.Products {
		if s.Formula.Equal(f) {
			return i, true
		}
	}
	return 0, false
}

// String renders the reactant-side equation the way show_balanced_equation
// prints it: "a A + b B -> c C + d D".
func (r Reaction) String() string {
	return joinSide(r.Reactants) + " -> " + joinSide(r.Products)
}

func joinSide(side []Species) string {
	out := ""
	for i, s := range side {
		if i > 0 {
			out += " + "
		}
		if s.Coefficient != 1 {
			out += itoa(s.Coefficient) + " "
		}
		out += s.Formula.String()
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
