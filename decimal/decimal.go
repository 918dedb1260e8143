// Package decimal is CL's decimal engine: arbitrary-precision signed decimal
// arithmetic with two sig-fig/decimal-place counters that survive through
// arithmetic and are consulted only at display time.
//
// The underlying arithmetic is github.com/govalues/decimal, a correctly
// rounded decimal library capped at 19 digits of coefficient precision
// (govalues.MaxPrec). Chemistry-homework quantities (molar masses, mole
// counts, balanced-reaction coefficient ratios) never approach that depth,
// so WorkingPrecision below is pinned to the library's native maximum
// rather than a larger illustrative default; DESIGN.md records this as the
// one deliberate precision deviation, chosen so the engine is built on a
// real corpus decimal library instead of a hand-rolled big-int extension
// of it.
package decimal

import (
	"strings"

	"github.com/chem-lang/cl/clerr"
)

// WorkingPrecision is the number of significant digits Num values compute
// with internally (see the package doc for why this is 19 and not some
// larger illustrative default).
const WorkingPrecision = 19

// InfiniteSigFigs marks a literal (an unadorned integer constant) that does
// not limit the sig_figs of a multiplicative result, and prints at full
// internal precision with no display rounding applied at all.
const InfiniteSigFigs = -1

// DecimalsOnly marks a result with no sig-fig ceiling of its own (an
// addition or subtraction doesn't consume sig figs) that still carries a
// meaningful Decimals cap. It is distinct from InfiniteSigFigs: Format
// rounds a DecimalsOnly value to Decimals places, where InfiniteSigFigs
// means "don't round at all" (e.g. an exact integer-literal quotient like
// 7/2 must still print as the exact "3.5", not get truncated to Decimals).
const DecimalsOnly = -2

// Num is a decimal magnitude plus two display-time counters, sig_figs and
// decimals. Arithmetic always runs at full working precision; SigFigs and
// Decimals are metadata carried alongside, propagated through each operator,
// and consulted only by Format.
type Num struct {
	limb
	SigFigs  int // InfiniteSigFigs for integer literals
	Decimals int
}

// Zero is the additive identity, an integer literal (infinite sig figs, zero decimals).
var Zero = FromInt(0)

// FromInt builds an exact integer Num with infinite sig figs.
func FromInt(n int64) Num {
	return Num{limb: limbFromInt(n), SigFigs: InfiniteSigFigs, Decimals: 0}
}

// Parse parses a decimal literal exactly as written (e.g. "1.2345", "2.0",
// "-45"), computing sig_figs and decimals from its surface form: an integer
// literal gets InfiniteSigFigs and 0 decimals; "1.2345" gets sig_figs=5,
// decimals=4; "2.0" gets sig_figs=2, decimals=1.
func Parse(s string) (Num, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Num{}, clerr.New(clerr.ParseError, "empty decimal literal")
	}
	l, err := parseLimb(s)
	if err != nil {
		return Num{}, clerr.New(clerr.ParseError, "bad decimal literal %q: %v", s, err)
	}
	sig, dec := surfaceCounts(s)
	return Num{limb: l, SigFigs: sig, Decimals: dec}, nil
}

// MustParse is Parse but panics on error; used for compiled-in constants
// (periodic table weights, Avogadro's number) the same way govalues' own
// MustParse is used for such constants.
func MustParse(s string) Num {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// surfaceCounts computes sig_figs/decimals from the literal text as written
// (1.2345 -> 5,4; 2.0 -> 2,1; integers -> inf,0).
func surfaceCounts(s string) (sigFigs, decimals int) {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i] // exponent marker doesn't add significant digits
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return InfiniteSigFigs, 0
	}
	intPart, fracPart := s[:dot], s[dot+1:]
	decimals = len(fracPart)
	digits := strings.TrimLeft(intPart+fracPart, "0")
	sigFigs = len(digits)
	if sigFigs == 0 {
		sigFigs = 1 // "0.0" etc: one trustworthy (zero) digit
	}
	return sigFigs, decimals
}

// MinSigFigs is minSig exported for callers outside the package (the
// quantity package's exponent rule needs to combine a base's and an
// exponent's sig_figs the same way Mul does).
func MinSigFigs(a, b int) int { return minSig(a, b) }

// minSig treats either sentinel (InfiniteSigFigs or DecimalsOnly) as "no
// sig-fig ceiling of its own", deferring to whichever operand does carry
// one; if neither does, the result carries none either.
func minSig(a, b int) int {
	switch {
	case a < 0 && b < 0:
		return InfiniteSigFigs
	case a < 0:
		return b
	case b < 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

func minDecimals(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Add implements the additive rule: decimals of the result is the minimum
// of the operands' decimals (the caller is responsible for converting
// operands into a common unit first; Add itself is purely the decimal
// arithmetic plus counter propagation). The result carries no sig-fig
// ceiling of its own, but Decimals still bounds its display, so it's
// tagged DecimalsOnly rather than InfiniteSigFigs.
func (n Num) Add(m Num) Num {
	return Num{limb: n.limb.add(m.limb), SigFigs: DecimalsOnly, Decimals: minDecimals(n.Decimals, m.Decimals)}
}

func (n Num) Sub(m Num) Num {
	return Num{limb: n.limb.sub(m.limb), SigFigs: DecimalsOnly, Decimals: minDecimals(n.Decimals, m.Decimals)}
}

// Mul implements the multiplicative sig-fig rule: output sig_figs is the min
// of the operands'.
func (n Num) Mul(m Num) Num {
	return Num{limb: n.limb.mul(m.limb), SigFigs: minSig(n.SigFigs, m.SigFigs), Decimals: 0}
}

// Div panics a *clerr.Error(DivisionByZero) on a zero divisor.
func (n Num) Div(m Num) Num {
	if m.IsZero() {
		clerr.Panic(clerr.DivisionByZero, "division by zero")
	}
	return Num{limb: n.limb.quo(m.limb), SigFigs: minSig(n.SigFigs, m.SigFigs), Decimals: 0}
}

// Mod is remainder with the sign of the dividend.
func (n Num) Mod(m Num) Num {
	if m.IsZero() {
		clerr.Panic(clerr.DivisionByZero, "modulo by zero")
	}
	return Num{limb: n.limb.rem(m.limb), SigFigs: minSig(n.SigFigs, m.SigFigs), Decimals: 0}
}

// Neg, Abs.
func (n Num) Neg() Num { r := n; r.limb = n.limb.neg(); return r }
func (n Num) Abs() Num { r := n; r.limb = n.limb.abs(); return r }

// Pow raises n to an integer power by repeated multiplication; PowDecimal
// uses the library's general power for non-integer exponents.
func (n Num) Pow(exp int64) Num {
	return Num{limb: n.limb.powInt(exp), SigFigs: n.SigFigs, Decimals: 0}
}

func (n Num) PowDecimal(exp Num) Num {
	return Num{limb: n.limb.pow(exp.limb), SigFigs: n.SigFigs, Decimals: 0}
}

func (n Num) Sqrt() Num { return Num{limb: n.limb.sqrt(), SigFigs: n.SigFigs} }
func (n Num) Ln() Num   { return Num{limb: n.limb.log(), SigFigs: n.SigFigs} }
func (n Num) Log2() Num { return Num{limb: n.limb.log2(), SigFigs: n.SigFigs} }
func (n Num) Log10() Num { return Num{limb: n.limb.log10(), SigFigs: n.SigFigs} }

// Sin, Cos, Tan: no decimal library in the retrieved corpus implements
// decimal-precision trigonometry (govalues/decimal stops at log/exp/sqrt),
// so these three fall back to float64 math.Sin/Cos/Tan, the one spot in
// the decimal engine built on the standard library rather than a corpus
// dependency.
func (n Num) Sin() Num { return fromFloatOp(n, mathSin) }
func (n Num) Cos() Num { return fromFloatOp(n, mathCos) }
func (n Num) Tan() Num { return fromFloatOp(n, mathTan) }

// Cmp returns -1/0/1 comparing magnitudes.
func (n Num) Cmp(m Num) int { return n.limb.cmp(m.limb) }

func (n Num) Sign() int   { return n.limb.sign() }
func (n Num) IsZero() bool { return n.limb.sign() == 0 }

// IsInteger reports whether n's magnitude has no fractional part, used by
// the exponent/interval/bitwise-not operators.
func (n Num) IsInteger() bool { return n.limb.isInteger() }

// Int64 truncates n to an int64 for contexts that need a host integer
// (interval endpoints, shift-like counts); ok is false if n doesn't fit or
// isn't integer-valued.
func (n Num) Int64() (v int64, ok bool) { return n.limb.int64() }

// String renders the full-precision internal value (debug use); Format is
// what applies sig_figs-aware display rounding and scientific notation.
func (n Num) String() string { return n.limb.String() }
