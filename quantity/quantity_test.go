package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/units"
)

func newQ(t *testing.T, reg *units.Registry, lit, unit string) Quantity {
	t.Helper()
	n, err := decimal.Parse(lit)
	require.NoError(t, err)
	u := reg.MustLookup(unit)
	return Quantity{Magnitude: n, Unit: u}
}

func TestAddConvertsRightOperandIntoLeftUnit(t *testing.T) {
	r := units.NewRegistry()
	km := newQ(t, r, "1", "km")
	m := newQ(t, r, "500", "m")
	out := km.Add(m)
	assert.Equal(t, r.MustLookup("km"), out.Unit)
	assert.Equal(t, 0, out.Magnitude.Cmp(decimal.MustParse("1.5")))
}

func TestAddHopsMassAndAmountOfTheSameFormula(t *testing.T) {
	r := units.NewRegistry()
	water := formula.MustParse("H2O")
	mass := newQ(t, r, "10.00", "g")
	mass.Formula = &water
	amount := newQ(t, r, "1.00", "mol")
	amount.Formula = &water

	out := mass.Add(amount)
	assert.Equal(t, r.MustLookup("g"), out.Unit)
	require.NotNil(t, out.Formula)
	assert.True(t, out.Formula.Equal(water))

	molar, err := water.MolarMass(amount.Magnitude.SigFigs)
	require.NoError(t, err)
	expected := mass.Magnitude.Add(amount.Magnitude.Mul(molar))
	assert.Equal(t, 0, out.Magnitude.Cmp(expected))
}

func TestAddIncompatibleUnitsPanics(t *testing.T) {
	r := units.NewRegistry()
	m := newQ(t, r, "1", "m")
	g := newQ(t, r, "1", "g")
	assert.Panics(t, func() { m.Add(g) })
}

func TestAddIncompatibleFormulasPanics(t *testing.T) {
	r := units.NewRegistry()
	a := newQ(t, r, "1", "g")
	b := newQ(t, r, "1", "g")
	fa := formula.MustParse("H2O")
	fb := formula.MustParse("NaCl")
	a.Formula, b.Formula = &fa, &fb
	assert.Panics(t, func() { a.Add(b) })
}

func TestMulFormulaSurvivesOnlyAgainstDimensionlessScalar(t *testing.T) {
	r := units.NewRegistry()
	water := formula.MustParse("H2O")
	mass := newQ(t, r, "18", "g")
	mass.Formula = &water
	two := Scalar(decimal.FromInt(2))
	out := mass.Mul(two)
	require.NotNil(t, out.Formula)
	assert.True(t, out.Formula.Equal(water))
}

func TestDivByZeroPanics(t *testing.T) {
	r := units.NewRegistry()
	a := newQ(t, r, "1", "g")
	zero := newQ(t, r, "0", "g")
	assert.Panics(t, func() { a.Div(zero) })
}

func TestPowIntegerPreservesFormulaOnlyAtExponentOne(t *testing.T) {
	r := units.NewRegistry()
	water := formula.MustParse("H2O")
	q := newQ(t, r, "2", "g")
	q.Formula = &water
	one := Scalar(decimal.FromInt(1))
	out := q.Pow(one)
	require.NotNil(t, out.Formula)

	two := Scalar(decimal.FromInt(2))
	out2 := q.Pow(two)
	assert.Nil(t, out2.Formula)
}

func TestPowNonIntegerRequiresDimensionlessBase(t *testing.T) {
	r := units.NewRegistry()
	q := newQ(t, r, "4", "g")
	half := Scalar(decimal.MustParse("0.5"))
	assert.Panics(t, func() { q.Pow(half) })
}

func TestCompareConvertsUnits(t *testing.T) {
	r := units.NewRegistry()
	km := newQ(t, r, "1", "km")
	m := newQ(t, r, "1000", "m")
	assert.True(t, km.Eq(m).Truthy())
}

func TestBoolOfAndTruthy(t *testing.T) {
	assert.True(t, BoolOf(true).Truthy())
	assert.False(t, BoolOf(false).Truthy())
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "fail", Fail.String())
}

func TestBitNotRequiresIntegerDimensionlessScalar(t *testing.T) {
	r := units.NewRegistry()
	m := newQ(t, r, "1", "m")
	assert.Panics(t, func() { m.BitNot() })

	n := Scalar(decimal.FromInt(5))
	out := n.BitNot()
	assert.Equal(t, 0, out.Magnitude.Cmp(decimal.FromInt(^int64(5))))
}

func TestIntervalBoundsRejectsNonIntegerOrUnitScalar(t *testing.T) {
	r := units.NewRegistry()
	m := newQ(t, r, "1", "m")
	five := Scalar(decimal.FromInt(5))
	_, _, ok := IntervalBounds(m, five)
	assert.False(t, ok)

	one := Scalar(decimal.FromInt(1))
	lo, hi, ok := IntervalBounds(one, five)
	require.True(t, ok)
	assert.Equal(t, int64(1), lo)
	assert.Equal(t, int64(5), hi)
}

func TestLogDefaultsToBaseTwo(t *testing.T) {
	eight := Scalar(decimal.FromInt(8))
	log := eight.Log()
	log2 := eight.Log2()
	assert.Equal(t, 0, log.Magnitude.Cmp(log2.Magnitude))
}

func TestStringFormatsMagnitudeUnitAndFormula(t *testing.T) {
	r := units.NewRegistry()
	water := formula.MustParse("H2O")
	q := newQ(t, r, "18.0", "g")
	q.Formula = &water
	assert.Equal(t, "18.0 g H₂O", q.String())
}
