// Package quantity implements CL's universal value and its operator
// semantics: a decimal magnitude, a unit, and an optional chemical formula
// traveling together through every arithmetic, comparison, and logical
// operator. Unit conversion across a dimension boundary (the "->" operator)
// is the convert package's job, not this one's; quantity only knows how to
// combine two Quantities that are already dimensionally compatible.
//
// Grounded on ivy's value/binary.go dispatch-table idiom: each operator is a
// plain method here, and the value package's evaluator wires them into its
// binary/unary dispatch the same way ivy wires its own operator table.
package quantity

import (
	"strings"

	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/units"
)

// Quantity is CL's only numeric value: a magnitude, the unit it's expressed
// in, and an optional formula tagging what substance it measures.
type Quantity struct {
	Magnitude decimal.Num
	Unit      units.Unit
	Formula   *formula.Formula

	// IsBool tags a Quantity produced by a comparison or logical operator so
	// String can print it as "pass"/"fail" rather than its bare magnitude;
	// an ordinary dimensionless literal "1" is not tagged and prints "1".
	IsBool bool
}

// Scalar builds a plain dimensionless, formula-less Quantity.
func Scalar(n decimal.Num) Quantity {
	return Quantity{Magnitude: n, Unit: units.Scalar}
}

// Pass and Fail are CL's booleans.
var Pass = Quantity{Magnitude: decimal.FromInt(1), Unit: units.Scalar, IsBool: true}
var Fail = Quantity{Magnitude: decimal.FromInt(0), Unit: units.Scalar, IsBool: true}

// BoolOf converts a host bool into Pass or Fail.
func BoolOf(b bool) Quantity {
	if b {
		return Pass
	}
	return Fail
}

// Truthy reports whether q is a nonzero scalar; any nonzero magnitude is
// truthy regardless of unit.
func (q Quantity) Truthy() bool { return !q.Magnitude.IsZero() }

func formulaEqual(a, b *formula.Formula) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// rescale converts m by ratio while keeping m's own sig_figs/decimals
// counters: a unit conversion is not itself a sig-fig-consuming
// multiplication, so the converted magnitude should read exactly as
// precisely as the value it came from.
func rescale(m decimal.Num, ratio decimal.Num) decimal.Num {
	out := m.Mul(ratio)
	out.SigFigs = m.SigFigs
	out.Decimals = m.Decimals
	return out
}

// Add implements the additive operator: the left operand sets the output
// unit and formula; the right operand is converted into the left's unit,
// using a formula hop (mass <-> moles via molar mass) when the two units
// differ in dimension but both operands carry the same formula.
func (a Quantity) Add(b Quantity) Quantity {
	if a.Unit.IsDimensionless() && a.Formula == nil && b.Unit.IsDimensionless() && b.Formula == nil {
		return Quantity{Magnitude: a.Magnitude.Add(b.Magnitude), Unit: units.Scalar}
	}
	if !a.Unit.Convertible(b.Unit) {
		hopped, ok := formulaHop(a, b)
		if !ok {
			clerr.Panic(clerr.IncompatibleUnits, "cannot add incompatible units %q and %q", a.Unit.Symbol, b.Unit.Symbol)
		}
		out := Quantity{Magnitude: a.Magnitude.Add(hopped), Unit: a.Unit, Formula: a.Formula}
		return out
	}
	if a.Formula != nil && b.Formula != nil && !a.Formula.Equal(*b.Formula) {
		clerr.Panic(clerr.IncompatibleFormulas, "cannot add incompatible formulas %s and %s", a.Formula, b.Formula)
	}
	converted := rescale(b.Magnitude, b.Unit.RatioTo(a.Unit))
	out := Quantity{Magnitude: a.Magnitude.Add(converted), Unit: a.Unit, Formula: a.Formula}
	if out.Formula == nil {
		out.Formula = b.Formula
	}
	return out
}

// formulaHop converts b's magnitude into a's unit via the molar mass of
// their shared formula, the mass<->mole bridge convert.formulaHop also
// implements; duplicated here (rather than imported) since convert already
// imports quantity, and importing back would cycle. Grams and moles are
// both scale-1 base units in the units package's scale-to-SI-base design,
// so the hop needs only a's and b's own Unit.Scale factors, not a registry
// lookup. Reports ok=false when the operands don't share a formula or
// neither unit is on the mass/amount side of the bridge.
func formulaHop(a, b Quantity) (decimal.Num, bool) {
	if a.Formula == nil || b.Formula == nil || !a.Formula.Equal(*b.Formula) {
		return decimal.Num{}, false
	}
	molar, err := a.Formula.MolarMass(b.Magnitude.SigFigs)
	if err != nil {
		return decimal.Num{}, false
	}
	var converted decimal.Num
	switch {
	case a.Unit.IsMass() && b.Unit.IsAmount():
		moles := b.Magnitude.Mul(b.Unit.Scale)
		grams := moles.Mul(molar)
		converted = grams.Div(a.Unit.Scale)
	case a.Unit.IsAmount() && b.Unit.IsMass():
		grams := b.Magnitude.Mul(b.Unit.Scale)
		moles := grams.Div(molar)
		converted = moles.Div(a.Unit.Scale)
	default:
		return decimal.Num{}, false
	}
	converted.SigFigs = b.Magnitude.SigFigs
	converted.Decimals = b.Magnitude.Decimals
	return converted, true
}

// Sub mirrors Add with the right operand negated first.
func (a Quantity) Sub(b Quantity) Quantity {
	neg := b
	neg.Magnitude = b.Magnitude.Neg()
	return a.Add(neg)
}

// Mul multiplies magnitudes and units; a formula survives only when the
// other operand is a dimensionless scalar.
func (a Quantity) Mul(b Quantity) Quantity {
	out := Quantity{Magnitude: a.Magnitude.Mul(b.Magnitude), Unit: a.Unit.Mul(b.Unit)}
	switch {
	case a.Formula != nil && b.Formula == nil && b.Unit.IsDimensionless():
		out.Formula = a.Formula
	case b.Formula != nil && a.Formula == nil && a.Unit.IsDimensionless():
		out.Formula = b.Formula
	}
	return out
}

// Div divides magnitudes and units; same formula-survival rule as Mul.
func (a Quantity) Div(b Quantity) Quantity {
	if b.Magnitude.IsZero() {
		clerr.Panic(clerr.DivisionByZero, "division by zero")
	}
	out := Quantity{Magnitude: a.Magnitude.Div(b.Magnitude), Unit: a.Unit.Div(b.Unit)}
	switch {
	case a.Formula != nil && b.Formula == nil && b.Unit.IsDimensionless():
		out.Formula = a.Formula
	case b.Formula != nil && a.Formula == nil && a.Unit.IsDimensionless():
		out.Formula = b.Formula
	}
	return out
}

// Mod requires exact unit and formula agreement; no stoichiometry applies.
func (a Quantity) Mod(b Quantity) Quantity {
	if !a.Unit.Equal(b.Unit) {
		clerr.Panic(clerr.IncompatibleUnits, "modulo requires matching units, got %q and %q", a.Unit.Symbol, b.Unit.Symbol)
	}
	if !formulaEqual(a.Formula, b.Formula) {
		clerr.Panic(clerr.IncompatibleFormulas, "modulo requires matching formulas")
	}
	return Quantity{Magnitude: a.Magnitude.Mod(b.Magnitude), Unit: a.Unit, Formula: a.Formula}
}

// Pow implements right-associative exponentiation: the exponent must be a
// dimensionless formula-less scalar. An integer-valued exponent scales the
// base's unit dimension vector and preserves the base's formula only when
// the exponent is exactly 1; a non-integer exponent requires a
// dimensionless base.
func (a Quantity) Pow(b Quantity) Quantity {
	if !b.Unit.IsDimensionless() || b.Formula != nil {
		clerr.Panic(clerr.TypeError, "exponent must be a dimensionless scalar")
	}
	if b.Magnitude.IsInteger() {
		n, ok := b.Magnitude.Int64()
		if !ok {
			clerr.Panic(clerr.TypeError, "exponent out of range")
		}
		mag := a.Magnitude.Pow(n)
		mag.SigFigs = decimal.MinSigFigs(a.Magnitude.SigFigs, b.Magnitude.SigFigs)
		out := Quantity{Magnitude: mag, Unit: a.Unit.Pow(int(n))}
		if n == 1 {
			out.Formula = a.Formula
		}
		return out
	}
	if !a.Unit.IsDimensionless() {
		clerr.Panic(clerr.TypeError, "non-integer exponent requires a dimensionless base")
	}
	return Quantity{Magnitude: a.Magnitude.PowDecimal(b.Magnitude), Unit: units.Scalar}
}

// compareMagnitude converts b into a's unit (the same rule Add uses) and
// returns the decimal comparison, or panics on incompatibility.
func (a Quantity) compareMagnitude(b Quantity) int {
	if !a.Unit.Convertible(b.Unit) {
		clerr.Panic(clerr.IncompatibleUnits, "cannot compare incompatible units %q and %q", a.Unit.Symbol, b.Unit.Symbol)
	}
	if a.Formula != nil && b.Formula != nil && !a.Formula.Equal(*b.Formula) {
		clerr.Panic(clerr.IncompatibleFormulas, "cannot compare incompatible formulas %s and %s", a.Formula, b.Formula)
	}
	converted := rescale(b.Magnitude, b.Unit.RatioTo(a.Unit))
	return a.Magnitude.Cmp(converted)
}

func (a Quantity) Eq(b Quantity) Quantity { return BoolOf(a.compareMagnitude(b) == 0) }
func (a Quantity) Ne(b Quantity) Quantity { return BoolOf(a.compareMagnitude(b) != 0) }
func (a Quantity) Lt(b Quantity) Quantity { return BoolOf(a.compareMagnitude(b) < 0) }
func (a Quantity) Le(b Quantity) Quantity { return BoolOf(a.compareMagnitude(b) <= 0) }
func (a Quantity) Gt(b Quantity) Quantity { return BoolOf(a.compareMagnitude(b) > 0) }
func (a Quantity) Ge(b Quantity) Quantity { return BoolOf(a.compareMagnitude(b) >= 0) }

// And, Or, Not combine truthiness into pass/fail. Short-circuiting (not
// evaluating the right operand when the left already decides the result)
// is the evaluator's job, since by the time two Quantities reach here both
// have already been evaluated.
func (a Quantity) And(b Quantity) Quantity { return BoolOf(a.Truthy() && b.Truthy()) }
func (a Quantity) Or(b Quantity) Quantity  { return BoolOf(a.Truthy() || b.Truthy()) }
func (a Quantity) Not() Quantity           { return BoolOf(!a.Truthy()) }

// Neg, Pos, BitNot are the unary operators.
func (a Quantity) Neg() Quantity { return Quantity{Magnitude: a.Magnitude.Neg(), Unit: a.Unit, Formula: a.Formula} }
func (a Quantity) Pos() Quantity { return a }

func (a Quantity) BitNot() Quantity {
	if !a.Unit.IsDimensionless() || a.Formula != nil || !a.Magnitude.IsInteger() {
		clerr.Panic(clerr.TypeError, "~ requires an integer-valued dimensionless scalar")
	}
	n, ok := a.Magnitude.Int64()
	if !ok {
		clerr.Panic(clerr.TypeError, "~ operand out of range")
	}
	return Scalar(decimal.FromInt(^n))
}

// IntervalBounds validates and extracts the half-open integer bounds of
// "a..b": both endpoints must be integer-valued dimensionless scalars.
// The lazy sequence itself is a value-package concern (Interval is a
// distinct Value variant), this just does the endpoint validation.
func IntervalBounds(a, b Quantity) (lo, hi int64, ok bool) {
	if !a.Unit.IsDimensionless() || a.Formula != nil || !a.Magnitude.IsInteger() {
		return 0, 0, false
	}
	if !b.Unit.IsDimensionless() || b.Formula != nil || !b.Magnitude.IsInteger() {
		return 0, 0, false
	}
	lo, aok := a.Magnitude.Int64()
	hi, bok := b.Magnitude.Int64()
	if !aok || !bok {
		return 0, 0, false
	}
	return lo, hi, true
}

func requireDimensionlessScalar(q Quantity, fn string) {
	if !q.Unit.IsDimensionless() || q.Formula != nil {
		clerr.Panic(clerr.TypeError, "%s requires a dimensionless scalar", fn)
	}
}

// Log is CL's default log, base 2 (per the documented README/demo
// convention); Log2 is the same function under its explicit name.
func (a Quantity) Log() Quantity {
	requireDimensionlessScalar(a, "log")
	return Scalar(a.Magnitude.Log2())
}

func (a Quantity) Log2() Quantity {
	requireDimensionlessScalar(a, "log2")
	return Scalar(a.Magnitude.Log2())
}

func (a Quantity) Log10() Quantity {
	requireDimensionlessScalar(a, "log10")
	return Scalar(a.Magnitude.Log10())
}

func (a Quantity) Ln() Quantity {
	requireDimensionlessScalar(a, "ln")
	return Scalar(a.Magnitude.Ln())
}

func (a Quantity) Sin() Quantity {
	requireDimensionlessScalar(a, "sin")
	return Scalar(a.Magnitude.Sin())
}

func (a Quantity) Cos() Quantity {
	requireDimensionlessScalar(a, "cos")
	return Scalar(a.Magnitude.Cos())
}

func (a Quantity) Tan() Quantity {
	requireDimensionlessScalar(a, "tan")
	return Scalar(a.Magnitude.Tan())
}

func (a Quantity) AbsFn() Quantity {
	requireDimensionlessScalar(a, "abs")
	return Scalar(a.Magnitude.Abs())
}

func (a Quantity) SqrtFn() Quantity {
	requireDimensionlessScalar(a, "sqrt")
	return Scalar(a.Magnitude.Sqrt())
}

// String prints "magnitude unit formula?": pass/fail print as the bare
// literal, a dimensionless formula-less Quantity prints just its magnitude.
func (q Quantity) String() string {
	if q.IsBool {
		if q.Truthy() {
			return "pass"
		}
		return "fail"
	}
	var b strings.Builder
	b.WriteString(q.Magnitude.Format())
	if q.Unit.Symbol != "" {
		b.WriteByte(' ')
		b.WriteString(q.Unit.Symbol)
	}
	if q.Formula != nil {
		b.WriteByte(' ')
		b.WriteString(q.Formula.String())
	}
	return b.String()
}
