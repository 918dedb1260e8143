package reaction

import (
	"math/big"

	"github.com/chem-lang/cl/clerr"
	"gonum.org/v1/gonum/mat"
)

// Balance assigns smallest positive integer coefficients to a skeleton
// reaction by null-space search over its element/charge conservation
// matrix. Rows are elements present on either side plus (when any species
// carries a nonzero charge) a charge row; columns are species, reactants
// signed positive and products signed negative, so a zero of the matrix is
// exactly a conserved balance. Fails with clerr.UnbalanceableReaction when
// the null space isn't exactly one-dimensional, or when it is but mixes
// signs (no all-positive solution exists).
func Balance(skeleton Reaction) (Reaction, error) {
	species := make([]Species, 0, len(skeleton.Reactants)+len(skeleton.Products))
	species = append(species, skeleton.Reactants...)
	species = append(species, skeleton.Products...)
	nReactants := len(skeleton.Reactants)

	elements := elementUniverse(species)
	hasCharge := false
	for _, s := range species {
		if s.Formula.Charge() != 0 {
			hasCharge = true
			break
		}
	}
	rows := len(elements)
	if hasCharge {
		rows++
	}
	cols := len(species)

	a := make([][]int64, rows)
	for i := range a {
		a[i] = make([]int64, cols)
	}
	for j, s := range species {
		sign := int64(1)
		if j >= nReactants {
			sign = -1
		}
		for i, el := range elements {
			a[i][j] = sign * int64(s.Formula.ElementCount(el))
		}
		if hasCharge {
			a[rows-1][j] = sign * int64(s.Formula.Charge())
		}
	}

	if !nullityIsOne(a, rows, cols) {
		return Reaction{}, clerr.New(clerr.UnbalanceableReaction, "reaction does not have a unique balance")
	}

	vec, ok := rationalNullVector(a, rows, cols)
	if !ok {
		return Reaction{}, clerr.New(clerr.UnbalanceableReaction, "reaction does not have a unique balance")
	}

	coeffs, ok := toPositiveIntegers(vec)
	if !ok {
		return Reaction{}, clerr.New(clerr.UnbalanceableReaction, "reaction has no all-positive integer balance")
	}

	out := Reaction{
		Reactants: make([]Species, nReactants),
		Products:  make([]Species, len(species)-nReactants),
	}
	for j, s := range species {
		s.Coefficient = coeffs[j]
		if j < nReactants {
			out.Reactants[j] = s
		} else {
			out.Products[j-nReactants] = s
		}
	}
	return out, nil
}

func elementUniverse(species []Species) []string {
	seen := map[string]bool{}
	var order []string
	for _, s := range species {
		for _, el := range s.Formula.Elements() {
			if !seen[el] {
				seen[el] = true
				order = append(order, el)
			}
		}
	}
	return order
}

// nullityIsOne uses gonum's SVD to confirm the matrix's null space has
// dimension exactly 1 (cols - rank == 1): singular values below tolerance
// count as rank-deficient directions. The float-domain rank check is a
// sanity gate; the actual coefficient vector comes from exact rational
// elimination below, which floating SVD output is too imprecise to supply
// directly.
func nullityIsOne(a [][]int64, rows, cols int) bool {
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float64(a[i][j])
		}
	}
	m := mat.NewDense(rows, cols, data)
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return false
	}
	values := svd.Values(nil)
	const tol = 1e-9
	rank := 0
	for _, v := range values {
		if v > tol {
			rank++
		}
	}
	return cols-rank == 1
}

// rationalNullVector computes the exact 1-dimensional null space of a via
// Gauss-Jordan elimination over big.Rat. Returns ok=false if elimination
// finds zero or more than one free variable (shouldn't happen once
// nullityIsOne has passed, but elimination is the source of truth).
func rationalNullVector(a [][]int64, rows, cols int) ([]*big.Rat, bool) {
	m := make([][]*big.Rat, rows)
	for i := range m {
		m[i] = make([]*big.Rat, cols)
		for j := range m[i] {
			m[i][j] = new(big.Rat).SetInt64(a[i][j])
		}
	}

	pivotCol := make([]int, 0, rows)
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		sel := -1
		for r := row; r < rows; r++ {
			if m[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		m[row], m[sel] = m[sel], m[row]
		inv := new(big.Rat).Inv(m[row][col])
		for c := 0; c < cols; c++ {
			m[row][c].Mul(m[row][c], inv)
		}
		for r := 0; r < rows; r++ {
			if r == row || m[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(m[r][col])
			for c := 0; c < cols; c++ {
				tmp := new(big.Rat).Mul(factor, m[row][c])
				m[r][c].Sub(m[r][c], tmp)
			}
		}
		pivotCol = append(pivotCol, col)
		row++
	}

	isPivot := make([]bool, cols)
	for _, c := range pivotCol {
		isPivot[c] = true
	}
	free := -1
	freeCount := 0
	for c := 0; c < cols; c++ {
		if !isPivot[c] {
			freeCount++
			free = c
		}
	}
	if freeCount != 1 {
		return nil, false
	}

	vec := make([]*big.Rat, cols)
	for c := range vec {
		vec[c] = new(big.Rat)
	}
	vec[free].SetInt64(1)
	for i, c := range pivotCol {
		vec[c] = new(big.Rat).Neg(m[i][free])
	}
	return vec, true
}

// toPositiveIntegers clears denominators to the smallest common multiple,
// divides by the gcd of the resulting integers, and forces a uniform
// positive sign. Returns ok=false if the vector mixes signs (no all-positive
// solution) or any entry is zero (a species not actually involved).
func toPositiveIntegers(vec []*big.Rat) ([]int, bool) {
	lcd := big.NewInt(1)
	for _, r := range vec {
		d := r.Denom()
		g := new(big.Int).GCD(nil, nil, lcd, d)
		lcd.Mul(lcd, new(big.Int).Div(d, g))
	}

	ints := make([]*big.Int, len(vec))
	for i, r := range vec {
		n := new(big.Int).Mul(r.Num(), new(big.Int).Div(lcd, r.Denom()))
		ints[i] = n
	}

	gcd := new(big.Int)
	for _, n := range ints {
		abs := new(big.Int).Abs(n)
		if abs.Sign() == 0 {
			continue
		}
		if gcd.Sign() == 0 {
			gcd.Set(abs)
		} else {
			gcd.GCD(nil, nil, gcd, abs)
		}
	}
	if gcd.Sign() == 0 {
		return nil, false
	}
	for i, n := range ints {
		ints[i] = new(big.Int).Div(n, gcd)
	}

	allNonNeg, allNonPos := true, true
	for _, n := range ints {
		switch n.Sign() {
		case 0:
			return nil, false
		case 1:
			allNonPos = false
		case -1:
			allNonNeg = false
		}
	}
	if !allNonNeg && !allNonPos {
		return nil, false
	}
	flip := allNonPos && !allNonNeg

	out := make([]int, len(ints))
	for i, n := range ints {
		if flip {
			n = new(big.Int).Neg(n)
		}
		out[i] = int(n.Int64())
	}
	return out, true
}
