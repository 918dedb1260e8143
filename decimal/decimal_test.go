package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSurfaceCounts(t *testing.T) {
	cases := []struct {
		lit        string
		sigFigs    int
		decimals   int
	}{
		{"2.0", 2, 1},
		{"1.2345", 5, 4},
		{"45", InfiniteSigFigs, 0},
		{"-45", InfiniteSigFigs, 0},
		{"0.0", 1, 1},
	}
	for _, c := range cases {
		n, err := Parse(c.lit)
		require.NoError(t, err)
		assert.Equal(t, c.sigFigs, n.SigFigs, "sig figs for %q", c.lit)
		assert.Equal(t, c.decimals, n.Decimals, "decimals for %q", c.lit)
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}

func TestAddUsesMinDecimals(t *testing.T) {
	a := MustParse("1.23")   // decimals=2
	b := MustParse("4.5")    // decimals=1
	sum := a.Add(b)
	assert.Equal(t, 1, sum.Decimals)
	assert.Equal(t, "5.7", sum.Format(), "the displayed string must actually be rounded to Decimals, not printed at full precision")
}

func TestAddDecimalsRoundsDisplayedString(t *testing.T) {
	a := MustParse("1.2345")
	b := MustParse("1.2")
	sum := a.Add(b)
	assert.Equal(t, 1, sum.Decimals)
	assert.Equal(t, "2.4", sum.Format())
}

func TestMulUsesMinSigFigs(t *testing.T) {
	a := MustParse("1.234")  // 4 sig figs
	b := MustParse("2.0")    // 2 sig figs
	product := a.Mul(b)
	assert.Equal(t, 2, product.SigFigs)
}

func TestMulWithIntegerLiteralIsUnconstrained(t *testing.T) {
	a := MustParse("1.234") // 4 sig figs
	two := FromInt(2)       // infinite sig figs
	product := a.Mul(two)
	assert.Equal(t, 4, product.SigFigs, "a literal integer multiplier must not shrink sig figs")
}

func TestDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		MustParse("1").Div(Zero)
	})
}

func TestModByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		MustParse("7").Mod(Zero)
	})
}

func TestFormatFixedPoint(t *testing.T) {
	n := MustParse("3.14")
	assert.Equal(t, "3.14", n.Format())
}

func TestFormatScientificForLargeMagnitude(t *testing.T) {
	n, err := Parse("6.022e23")
	require.NoError(t, err)
	out := n.Format()
	assert.Contains(t, out, "×10")
}

func TestIsIntegerAndInt64(t *testing.T) {
	n := MustParse("5")
	assert.True(t, n.IsInteger())
	v, ok := n.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	frac := MustParse("5.5")
	assert.False(t, frac.IsInteger())
}

func TestCmp(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2.5")
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(MustParse("1.50")))
}
