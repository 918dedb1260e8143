package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/quantity"
	"github.com/chem-lang/cl/reaction"
	"github.com/chem-lang/cl/units"
)

func mustQuantity(t *testing.T, reg *units.Registry, lit, unit string) quantity.Quantity {
	t.Helper()
	n, err := decimal.Parse(lit)
	require.NoError(t, err)
	return quantity.Quantity{Magnitude: n, Unit: reg.MustLookup(unit)}
}

func TestConvertDirectUnit(t *testing.T) {
	reg := units.NewRegistry()
	km := mustQuantity(t, reg, "1", "km")
	m := reg.MustLookup("m")
	out, err := Convert(km, Target{Unit: &m}, nil, reg)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Magnitude.Cmp(decimal.MustParse("1000")))
}

func TestConvertDirectUnitIncompatibleDimensionsFails(t *testing.T) {
	reg := units.NewRegistry()
	m := mustQuantity(t, reg, "1", "m")
	g := reg.MustLookup("g")
	_, err := Convert(m, Target{Unit: &g}, nil, reg)
	require.Error(t, err)
}

func TestConvertFormulaMediatedMassToMoles(t *testing.T) {
	reg := units.NewRegistry()
	water := formula.MustParse("H2O")
	mass := mustQuantity(t, reg, "18.0", "g")
	mass.Formula = &water

	mol := reg.MustLookup("mol")
	out, err := Convert(mass, Target{Unit: &mol}, nil, reg)
	require.NoError(t, err)

	molar, err := water.MolarMass(mass.Magnitude.SigFigs)
	require.NoError(t, err)
	expected := mass.Magnitude.Div(molar)
	assert.Equal(t, 0, out.Magnitude.Cmp(expected))
	assert.Equal(t, mol, out.Unit)
	require.NotNil(t, out.Formula)
	assert.True(t, out.Formula.Equal(water))
}

func TestConvertFormulaMediatedRequiresFormula(t *testing.T) {
	reg := units.NewRegistry()
	mass := mustQuantity(t, reg, "18.0", "g")
	mol := reg.MustLookup("mol")
	_, err := Convert(mass, Target{Unit: &mol}, nil, reg)
	require.Error(t, err)
}

func TestConvertRelabelRequiresEqualFormula(t *testing.T) {
	reg := units.NewRegistry()
	water := formula.MustParse("H2O")
	mass := mustQuantity(t, reg, "18.0", "g")
	mass.Formula = &water

	sameAtomOrder := formula.MustParse("OH2")
	out, err := Convert(mass, Target{Formula: &sameAtomOrder}, nil, reg)
	require.NoError(t, err)
	assert.True(t, out.Formula.Equal(water))

	other := formula.MustParse("NaCl")
	_, err = Convert(mass, Target{Formula: &other}, nil, reg)
	require.Error(t, err)
}

func TestConvertViaReaction(t *testing.T) {
	reg := units.NewRegistry()
	skeleton := reaction.Reaction{
		Reactants: []reaction.Species{
			{Formula: formula.MustParse("CuSO4")},
			{Formula: formula.MustParse("NaOH")},
		},
		Products: []reaction.Species{
			{Formula: formula.MustParse("Cu(OH)2")},
			{Formula: formula.MustParse("Na2SO4")},
		},
	}
	balanced, err := reaction.Balance(skeleton)
	require.NoError(t, err)

	naoh := formula.MustParse("NaOH")
	src := mustQuantity(t, reg, "80.00", "g")
	src.Formula = &naoh

	cuso4 := formula.MustParse("CuSO4")
	g := reg.MustLookup("g")
	out, err := Convert(src, Target{Unit: &g, Formula: &cuso4}, &balanced, reg)
	require.NoError(t, err)
	require.NotNil(t, out.Formula)
	assert.True(t, out.Formula.Equal(cuso4))
	assert.True(t, out.Magnitude.Sign() > 0)
}

func TestConvertViaReactionRequiresSourceInReaction(t *testing.T) {
	reg := units.NewRegistry()
	skeleton := reaction.Reaction{
		Reactants: []reaction.Species{{Formula: formula.MustParse("H2")}, {Formula: formula.MustParse("O2")}},
		Products:  []reaction.Species{{Formula: formula.MustParse("H2O")}},
	}
	balanced, err := reaction.Balance(skeleton)
	require.NoError(t, err)

	unrelated := formula.MustParse("NaCl")
	src := mustQuantity(t, reg, "1", "g")
	src.Formula = &unrelated

	h2o := formula.MustParse("H2O")
	g := reg.MustLookup("g")
	_, err = Convert(src, Target{Unit: &g, Formula: &h2o}, &balanced, reg)
	require.Error(t, err)
}
