// Package units is CL's unit registry and dimension algebra: SI
// base units, their SI-prefixed derivatives, common imperial units, mol, L,
// and the atom pseudo-unit, plus the product/quotient/power algebra that
// builds composite units out of them.
//
// Grounded on the dimension-vector + scalar-factor design used throughout
// the retrieved corpus's own unit libraries (other_examples' imhotep-nb-units
// and maxnilz-calcu unit.go, and gofhir's UCUM table): a unit is a scale
// factor to SI base plus an exponent vector, and composing units just adds
// or subtracts exponent vectors and multiplies or divides scale factors.
package units

import (
	"strings"

	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/decimal"
)

// Unit is a scalar factor to SI base plus a Dimension vector. Two units
// are convertible iff their Dim match; equality is by Scale+Dim. IsAtom tags
// the pseudo-unit "atom": dimensionless like a scalar, but conversions
// across it go through Avogadro's number rather than a plain scale ratio;
// that special-casing lives in the convert package, not here.
type Unit struct {
	Symbol string
	Scale  decimal.Num
	Dim    Dimension
	IsAtom bool
}

// Scalar is the dimensionless unit "1".
var Scalar = Unit{Symbol: "", Scale: decimal.FromInt(1), Dim: Dimensionless}

// Convertible reports whether u and v share a dimension.
func (u Unit) Convertible(v Unit) bool { return u.Dim == v.Dim }

// Equal is scale+dimension equality.
func (u Unit) Equal(v Unit) bool { return u.Dim == v.Dim && u.Scale.Cmp(v.Scale) == 0 }

// RatioTo returns the multiplicative factor that converts a magnitude in u
// into the equivalent magnitude in v: the ratio of their scales. Caller
// must already know u and v are Convertible.
func (u Unit) RatioTo(v Unit) decimal.Num { return u.Scale.Div(v.Scale) }

// Mul, Div, Pow build composite units: products/quotients/powers of units
// produce composite units with added/subtracted exponent vectors and
// multiplied scales.
func (u Unit) Mul(v Unit) Unit {
	return Unit{Symbol: u.Symbol + "." + v.Symbol, Scale: u.Scale.Mul(v.Scale), Dim: u.Dim.add(v.Dim)}
}

func (u Unit) Div(v Unit) Unit {
	return Unit{Symbol: u.Symbol + "/" + v.Symbol, Scale: u.Scale.Div(v.Scale), Dim: u.Dim.sub(v.Dim)}
}

func (u Unit) Pow(n int) Unit {
	scale := u.Scale.Pow(int64(n))
	return Unit{Symbol: u.Symbol, Scale: scale, Dim: u.Dim.scale(int8(n))}
}

// IsDimensionless reports whether u has a zero dimension vector, true for
// plain scalars and for the atom pseudo-unit alike.
func (u Unit) IsDimensionless() bool { return u.Dim.isZero() }

// IsMass and IsAmount identify the two dimensions a formula-mediated
// conversion hops through on its way to or from moles.
func (u Unit) IsMass() bool   { return u.Dim == massDim() }
func (u Unit) IsAmount() bool { return u.Dim == amountDim() }

// baseUnit constructs a named base unit with the given dimension at scale 1.
func baseUnit(symbol string, dim Dimension) Unit {
	return Unit{Symbol: symbol, Scale: decimal.FromInt(1), Dim: dim}
}

func derived(symbol string, scale decimal.Num, dim Dimension) Unit {
	return Unit{Symbol: symbol, Scale: scale, Dim: dim}
}

func lenDim() Dimension    { var d Dimension; d[dimLength] = 1; return d }
func massDim() Dimension   { var d Dimension; d[dimMass] = 1; return d }
func timeDim() Dimension   { var d Dimension; d[dimTime] = 1; return d }
func amountDim() Dimension { var d Dimension; d[dimAmount] = 1; return d }

var siPrefixes = []struct {
	Symbol string
	Scale  string
}{
	{"Y", "1e24"}, {"Z", "1e21"}, {"E", "1e18"}, {"P", "1e15"}, {"T", "1e12"},
	{"G", "1e9"}, {"M", "1e6"}, {"k", "1e3"}, {"h", "1e2"}, {"da", "1e1"},
	{"d", "1e-1"}, {"c", "1e-2"}, {"m", "1e-3"}, {"µ", "1e-6"}, {"u", "1e-6"},
	{"n", "1e-9"}, {"p", "1e-12"}, {"f", "1e-15"}, {"a", "1e-18"},
	{"z", "1e-21"}, {"y", "1e-24"},
}

// Registry is the seeded unit table, keyed by canonical symbol.
type Registry struct {
	base map[string]Unit
}

// NewRegistry builds and seeds the unit table once; it is built once and
// read-only thereafter, the one piece of process-wide state the evaluator
// keeps outside an explicit Interpreter/Context value.
func NewRegistry() *Registry {
	r := &Registry{base: make(map[string]Unit)}
	r.seedSI()
	r.seedImperial()
	r.seedChemistry()
	return r
}

func (r *Registry) add(u Unit) { r.base[u.Symbol] = u }

func (r *Registry) seedSI() {
	r.add(baseUnit("m", lenDim()))
	r.add(baseUnit("g", massDim())) // gram, not kilogram, is the prefixable base.
	r.add(baseUnit("s", timeDim()))
	r.add(baseUnit("mol", amountDim()))
	var ampDim Dimension
	ampDim[dimCurrent] = 1
	r.add(baseUnit("A", ampDim))
	var kDim Dimension
	kDim[dimTemperature] = 1
	r.add(baseUnit("K", kDim))
	var cdDim Dimension
	cdDim[dimLuminosity] = 1
	r.add(baseUnit("cd", cdDim))
	// Litre: 1 L = 1e-3 m^3.
	r.add(derived("L", decimal.MustParse("1e-3"), lenDim().scale(3)))
}

func (r *Registry) seedImperial() {
	r.add(derived("in", decimal.MustParse("0.0254"), lenDim()))
	r.add(derived("ft", decimal.MustParse("0.3048"), lenDim()))
	r.add(derived("yd", decimal.MustParse("0.9144"), lenDim()))
	r.add(derived("mi", decimal.MustParse("1609.344"), lenDim()))
	r.add(derived("acre", decimal.MustParse("4046.8564224"), lenDim().scale(2)))
	r.add(derived("lb", decimal.MustParse("0.45359237"), massDim()))
	r.add(derived("oz", decimal.MustParse("0.028349523125"), massDim()))
}

// AvogadroNumber is Nₐ, used by the convert package for mole<->atom hops.
// Kept here alongside the registry since "atom" is a registry pseudo-unit,
// even though the multiplication itself is the convert package's job (keeps
// units from needing to know about Formula).
var AvogadroNumber = decimal.MustParse("6.02214076e23")

func (r *Registry) seedChemistry() {
	// atom: dimensionless like a scalar, tagged so convert knows to route a
	// mass/mole<->atom hop through Avogadro's number instead of treating it
	// as an ordinary dimensionless no-op.
	r.add(Unit{Symbol: "atom", Scale: decimal.FromInt(1), Dim: Dimensionless, IsAtom: true})
}

// Lookup resolves a unit identifier, honoring SI prefixes (for prefixable
// base units) and plural suffixes. Failure is reported by the caller as
// clerr.UnknownUnit; Lookup itself just reports ok=false.
func (r *Registry) Lookup(name string) (Unit, bool) {
	if u, ok := r.base[name]; ok {
		return u, true
	}
	if u, ok := r.lookupPrefixed(name); ok {
		return u, true
	}
	if singular, ok := stripPlural(name); ok {
		if u, ok := r.base[singular]; ok {
			return u, true
		}
		if u, ok := r.lookupPrefixed(singular); ok {
			return u, true
		}
	}
	return Unit{}, false
}

// MustLookup is Lookup but panics clerr.UnknownUnit on failure, the usual
// entry point from the quantity/convert/evaluator layers.
func (r *Registry) MustLookup(name string) Unit {
	u, ok := r.Lookup(name)
	if !ok {
		clerr.Panic(clerr.UnknownUnit, "unknown unit %q", name)
	}
	return u
}

func (r *Registry) lookupPrefixed(name string) (Unit, bool) {
	for _, p := range siPrefixes {
		if !strings.HasPrefix(name, p.Symbol) {
			continue
		}
		rest := name[len(p.Symbol):]
		if rest == "" {
			continue
		}
		base, ok := r.base[rest]
		if !ok || base.IsAtom {
			continue
		}
		if !prefixableBase(rest) {
			continue
		}
		factor := decimal.MustParse(p.Scale)
		return derived(p.Symbol+rest, base.Scale.Mul(factor), base.Dim), true
	}
	return Unit{}, false
}

// prefixableBase restricts SI prefixing to the SI base units and litre,
// not imperial units or atom.
func prefixableBase(symbol string) bool {
	switch symbol {
	case "m", "g", "s", "mol", "A", "K", "cd", "L":
		return true
	default:
		return false
	}
}

// stripPlural strips one of four plural suffixes, trying the longest
// suffix first so e.g. "leaves"-shaped endings resolve correctly before
// falling back to a bare "s".
func stripPlural(name string) (string, bool) {
	switch {
	case strings.HasSuffix(name, "ves") && len(name) > 3:
		return name[:len(name)-3] + "f", true
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y", true
	case strings.HasSuffix(name, "es") && len(name) > 2:
		return name[:len(name)-2], true
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1], true
	default:
		return "", false
	}
}
