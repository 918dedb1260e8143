package decimal

import (
	"math"

	gv "github.com/govalues/decimal"

	"github.com/chem-lang/cl/clerr"
)

// limb is the arithmetic carrier for Num: a single govalues/decimal.Decimal.
// Kept as its own unexported type (rather than embedding gv.Decimal directly
// in Num) so Num's sig-fig/decimal-place metadata can't accidentally leak
// into a raw govalues call that doesn't know about it.
type limb struct {
	d gv.Decimal
}

func limbFromInt(n int64) limb {
	return limb{d: gv.MustNew(n, 0)}
}

func parseLimb(s string) (limb, error) {
	d, err := gv.Parse(s)
	if err != nil {
		return limb{}, err
	}
	return limb{d: d}, nil
}

func mustFail(err error, kind clerr.Kind, format string, args ...interface{}) {
	if err != nil {
		clerr.Panic(kind, format, args...)
	}
}

func (l limb) add(m limb) limb {
	d, err := l.d.Add(m.d)
	mustFail(err, clerr.TypeError, "decimal overflow in addition")
	return limb{d: d}
}

func (l limb) sub(m limb) limb {
	d, err := l.d.Sub(m.d)
	mustFail(err, clerr.TypeError, "decimal overflow in subtraction")
	return limb{d: d}
}

func (l limb) mul(m limb) limb {
	d, err := l.d.Mul(m.d)
	mustFail(err, clerr.TypeError, "decimal overflow in multiplication")
	return limb{d: d}
}

func (l limb) quo(m limb) limb {
	d, err := l.d.Quo(m.d)
	mustFail(err, clerr.TypeError, "decimal overflow in division")
	return limb{d: d}
}

func (l limb) rem(m limb) limb {
	_, r, err := l.d.QuoRem(m.d)
	mustFail(err, clerr.TypeError, "decimal overflow in modulo")
	return limb{d: r}
}

func (l limb) neg() limb { return limb{d: l.d.Neg()} }
func (l limb) abs() limb { return limb{d: l.d.Abs()} }

func (l limb) powInt(exp int64) limb {
	if exp < math.MinInt || exp > math.MaxInt {
		clerr.Panic(clerr.TypeError, "exponent %d out of range", exp)
	}
	d, err := l.d.PowInt(int(exp))
	mustFail(err, clerr.TypeError, "decimal overflow in exponentiation")
	return limb{d: d}
}

func (l limb) pow(e limb) limb {
	d, err := l.d.Pow(e.d)
	mustFail(err, clerr.TypeError, "decimal overflow in exponentiation")
	return limb{d: d}
}

func (l limb) sqrt() limb {
	d, err := l.d.Sqrt()
	mustFail(err, clerr.TypeError, "sqrt of negative number")
	return limb{d: d}
}

func (l limb) log() limb {
	d, err := l.d.Log()
	mustFail(err, clerr.TypeError, "ln of non-positive number")
	return limb{d: d}
}

func (l limb) log2() limb {
	d, err := l.d.Log2()
	mustFail(err, clerr.TypeError, "log2 of non-positive number")
	return limb{d: d}
}

func (l limb) log10() limb {
	d, err := l.d.Log10()
	mustFail(err, clerr.TypeError, "log10 of non-positive number")
	return limb{d: d}
}

func (l limb) cmp(m limb) int { return l.d.Cmp(m.d) }
func (l limb) sign() int      { return l.d.Sign() }

func (l limb) isInteger() bool { return l.d.IsInt() }

func (l limb) int64() (int64, bool) {
	whole, frac, ok := l.d.Int64(0)
	if !ok || frac != 0 {
		return 0, false
	}
	return whole, true
}

func (l limb) float64() float64 {
	f, _ := l.d.Float64()
	return f
}

func fromFloat(f float64) limb {
	d, err := gv.NewFromFloat64(f)
	mustFail(err, clerr.TypeError, "value out of range")
	return limb{d: d}
}

// fromFloatOp applies a float64 math function to n, used only by the three
// trig functions that no corpus decimal library implements (see package doc).
func fromFloatOp(n Num, fn func(float64) float64) Num {
	return Num{limb: fromFloat(fn(n.limb.float64())), SigFigs: n.SigFigs, Decimals: 0}
}

func mathSin(x float64) float64 { return math.Sin(x) }
func mathCos(x float64) float64 { return math.Cos(x) }
func mathTan(x float64) float64 { return math.Tan(x) }

func (l limb) String() string { return l.d.String() }
