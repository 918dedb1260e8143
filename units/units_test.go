package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chem-lang/cl/decimal"
)

func TestLookupBaseUnit(t *testing.T) {
	r := NewRegistry()
	u, ok := r.Lookup("g")
	require.True(t, ok)
	assert.True(t, u.IsMass())
}

func TestLookupSIPrefixed(t *testing.T) {
	r := NewRegistry()
	km, ok := r.Lookup("km")
	require.True(t, ok)
	m := r.MustLookup("m")
	assert.True(t, km.Convertible(m))
	assert.Equal(t, 0, km.RatioTo(m).Cmp(decimal.MustParse("1000")))
}

func TestLookupPrefixDoesNotApplyToImperialOrAtom(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("kin") // "k" + imperial "in" is not a real unit
	assert.False(t, ok)
	_, ok = r.Lookup("katom")
	assert.False(t, ok)
}

func TestLookupPlural(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("mols")
	assert.True(t, ok)
	atoms, ok := r.Lookup("atoms")
	require.True(t, ok)
	assert.True(t, atoms.IsAtom)
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustLookup("zorkmid")
	})
}

func TestConvertibleRequiresMatchingDimension(t *testing.T) {
	r := NewRegistry()
	g := r.MustLookup("g")
	m := r.MustLookup("m")
	assert.False(t, g.Convertible(m))
}

func TestUnitMulAddsDimensions(t *testing.T) {
	r := NewRegistry()
	m := r.MustLookup("m")
	product := m.Mul(m)
	assert.Equal(t, m.Dim.scale(2), product.Dim)
}

func TestUnitPowScalesDimension(t *testing.T) {
	r := NewRegistry()
	m := r.MustLookup("m")
	cubic := m.Pow(3)
	assert.Equal(t, m.Dim.scale(3), cubic.Dim)
}

func TestAtomIsDimensionless(t *testing.T) {
	r := NewRegistry()
	atom := r.MustLookup("atom")
	assert.True(t, atom.IsDimensionless())
	assert.True(t, atom.IsAtom)
}
