package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chem-lang/cl/formula"
)

func species(s string) Species {
	return Species{Formula: formula.MustParse(s)}
}

func TestBalanceSimpleCombustion(t *testing.T) {
	skeleton := Reaction{
		Reactants: []Species{species("H2"), species("O2")},
		Products:  []Species{species("H2O")},
	}
	balanced, err := Balance(skeleton)
	require.NoError(t, err)
	assert.True(t, balanced.Balanced())
	assert.Equal(t, 2, balanced.Reactants[0].Coefficient) // H2
	assert.Equal(t, 1, balanced.Reactants[1].Coefficient) // O2
	assert.Equal(t, 2, balanced.Products[0].Coefficient)  // H2O
}

func TestBalanceDoubleDisplacement(t *testing.T) {
	skeleton := Reaction{
		Reactants: []Species{species("CuSO4"), species("NaOH")},
		Products:  []Species{species("Cu(OH)2"), species("Na2SO4")},
	}
	balanced, err := Balance(skeleton)
	require.NoError(t, err)
	assert.Equal(t, 1, balanced.Reactants[0].Coefficient) // CuSO4
	assert.Equal(t, 2, balanced.Reactants[1].Coefficient) // NaOH
	assert.Equal(t, 1, balanced.Products[0].Coefficient)  // Cu(OH)2
	assert.Equal(t, 1, balanced.Products[1].Coefficient)  // Na2SO4
}

func TestBalanceUnbalanceableReactionErrors(t *testing.T) {
	skeleton := Reaction{
		Reactants: []Species{species("H2")},
		Products:  []Species{species("O2")},
	}
	_, err := Balance(skeleton)
	require.Error(t, err)
}

func TestIndexOfReactantAndProduct(t *testing.T) {
	r := Reaction{
		Reactants: []Species{{Formula: formula.MustParse("H2"), Coefficient: 2}},
		Products:  []Species{{Formula: formula.MustParse("H2O"), Coefficient: 2}},
	}
	i, ok := r.IndexOfReactant(formula.MustParse("H2"))
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = r.IndexOfProduct(formula.MustParse("O2"))
	assert.False(t, ok)
}

func TestStringRendersCoefficients(t *testing.T) {
	skeleton := Reaction{
		Reactants: []Species{species("H2"), species("O2")},
		Products:  []Species{species("H2O")},
	}
	balanced, err := Balance(skeleton)
	require.NoError(t, err)
	assert.Equal(t, "2 H₂ + O₂ -> 2 H₂O", balanced.String())
}
