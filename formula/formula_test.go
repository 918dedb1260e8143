package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleFormula(t *testing.T) {
	f, err := Parse("H2O")
	require.NoError(t, err)
	assert.Equal(t, 2, f.ElementCount("H"))
	assert.Equal(t, 1, f.ElementCount("O"))
	assert.Equal(t, 0, f.Charge())
}

func TestParseParenthesizedGroup(t *testing.T) {
	f, err := Parse("Fe(NO3)_{2}")
	require.NoError(t, err)
	assert.Equal(t, 1, f.ElementCount("Fe"))
	assert.Equal(t, 2, f.ElementCount("N"))
	assert.Equal(t, 6, f.ElementCount("O"))
}

func TestParseCuOH2(t *testing.T) {
	f, err := Parse("Cu(OH)2")
	require.NoError(t, err)
	assert.Equal(t, 1, f.ElementCount("Cu"))
	assert.Equal(t, 2, f.ElementCount("O"))
	assert.Equal(t, 2, f.ElementCount("H"))
}

func TestParseCharge(t *testing.T) {
	f, err := Parse("H2O^{2+}")
	require.NoError(t, err)
	assert.Equal(t, 2, f.Charge())

	neg, err := Parse("SO4^2-")
	require.NoError(t, err)
	assert.Equal(t, -2, neg.Charge())
}

func TestParseUnknownElementFails(t *testing.T) {
	_, err := Parse("Xx2")
	require.Error(t, err)
}

func TestParseUnbalancedParenFails(t *testing.T) {
	_, err := Parse("Fe(NO3")
	require.Error(t, err)
}

func TestEqualIsOrderIndependentMultiset(t *testing.T) {
	a := MustParse("H2O")
	b, err := Parse("OH2")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestMolarMassClampsMinSigFigsToFour(t *testing.T) {
	f := MustParse("H2O")
	mass, err := f.MolarMass(2)
	require.NoError(t, err)
	assert.Equal(t, 4, mass.SigFigs)
}

func TestMolarMassPassesThroughHigherSigFigs(t *testing.T) {
	f := MustParse("H2O")
	mass, err := f.MolarMass(6)
	require.NoError(t, err)
	assert.Equal(t, 6, mass.SigFigs)
}

func TestStringRendersSubscriptsAndHillOrder(t *testing.T) {
	f := MustParse("C2H6O")
	assert.Equal(t, "C₂H₆O", f.String())
}

func TestStringRendersCharge(t *testing.T) {
	f := MustParse("SO4^2-")
	assert.Equal(t, "SO₄²⁻", f.String())
}
