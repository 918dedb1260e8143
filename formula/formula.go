// Package formula implements CL's chemical-formula model and parser: an
// ordered element-multiset plus a signed charge, parsed from strings like
// "Fe(NO3)_{2}", "Cu(OH)2", "H2O^{2+}", and a molar-mass evaluator driven by
// the built-in periodic table in elements.go.
package formula

import (
	"sort"
	"strings"

	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/decimal"
)

var weightBySymbol = func() map[string]decimal.Num {
	m := make(map[string]decimal.Num, len(PeriodicTable))
	for _, e := range PeriodicTable {
		m[e.Symbol] = decimal.MustParse(e.Weight)
	}
	return m
}()

var knownSymbol = func() map[string]bool {
	m := make(map[string]bool, len(PeriodicTable))
	for _, e := range PeriodicTable {
		m[e.Symbol] = true
	}
	return m
}()

// counts is an element symbol -> atom count multiset.
type counts map[string]int

// Formula is the parsed value: element counts plus charge. Equality is
// multiset equality including charge.
type Formula struct {
	counts counts
	charge int
	// text is the originally parsed surface form. String() reads it only for
	// the order in which elements first appear; counts and charge always
	// come from the counts/charge fields.
	text string
}

// Parse parses a compound string into its element counts and charge.
// Unknown element symbols and unbalanced parentheses fail with
// clerr.FormulaParseError.
func Parse(s string) (Formula, error) {
	p := &formulaParser{src: []rune(s), orig: s}
	c, err := p.parseCompound()
	if err != nil {
		return Formula{}, err
	}
	charge, err := p.parseCharge()
	if err != nil {
		return Formula{}, err
	}
	if p.pos != len(p.src) {
		return Formula{}, clerr.New(clerr.FormulaParseError, "unexpected %q in formula %q", string(p.src[p.pos:]), s)
	}
	return Formula{counts: c, charge: charge, text: s}, nil
}

// MustParse panics on a malformed formula; used for compiled-in literals.
func MustParse(s string) Formula {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

type formulaParser struct {
	src  []rune
	pos  int
	orig string
}

func (p *formulaParser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *formulaParser) parseCompound() (counts, error) {
	total := counts{}
	sawOne := false
	for {
		r := p.peek()
		switch {
		case r == 0 || r == ')' || r == '^':
			if !sawOne {
				return nil, clerr.New(clerr.FormulaParseError, "empty formula %q", p.orig)
			}
			return total, nil
		case r == '(':
			p.pos++
			inner, err := p.parseCompound()
			if err != nil {
				return nil, err
			}
			if p.peek() != ')' {
				return nil, clerr.New(clerr.FormulaParseError, "unbalanced parenthesis in formula %q", p.orig)
			}
			p.pos++
			n, err := p.parseCount()
			if err != nil {
				return nil, err
			}
			for el, c := range inner {
				total[el] += c * n
			}
			sawOne = true
		default:
			sym, err := p.parseElementSymbol()
			if err != nil {
				return nil, err
			}
			n, err := p.parseCount()
			if err != nil {
				return nil, err
			}
			total[sym] += n
			sawOne = true
		}
	}
}

// parseElementSymbol greedily matches a two-letter symbol before falling
// back to one letter, per the table in elements.go.
func (p *formulaParser) parseElementSymbol() (string, error) {
	if !isUpper(p.peek()) {
		return "", clerr.New(clerr.FormulaParseError, "expected element symbol in formula %q at position %d", p.orig, p.pos)
	}
	if p.pos+1 < len(p.src) && isLower(p.src[p.pos+1]) {
		two := string(p.src[p.pos : p.pos+2])
		if knownSymbol[two] {
			p.pos += 2
			return two, nil
		}
	}
	one := string(p.src[p.pos])
	if !knownSymbol[one] {
		return "", clerr.New(clerr.FormulaParseError, "unknown element symbol %q in formula %q", one, p.orig)
	}
	p.pos++
	return one, nil
}

// parseCount reads a subscript in any of three accepted forms: "_{n}",
// "_n", or a bare trailing integer. Absence means count 1.
func (p *formulaParser) parseCount() (int, error) {
	if p.peek() == '_' {
		p.pos++
		braced := p.peek() == '{'
		if braced {
			p.pos++
		}
		n, ok := p.readDigits()
		if !ok {
			return 0, clerr.New(clerr.FormulaParseError, "expected digits after '_' in formula %q", p.orig)
		}
		if braced {
			if p.peek() != '}' {
				return 0, clerr.New(clerr.FormulaParseError, "unbalanced '_{' in formula %q", p.orig)
			}
			p.pos++
		}
		return n, nil
	}
	if isDigit(p.peek()) {
		n, _ := p.readDigits()
		return n, nil
	}
	return 1, nil
}

// parseCharge reads an optional trailing "^{n+}"/"^{n-}" or "^n+"/"^n-".
func (p *formulaParser) parseCharge() (int, error) {
	if p.peek() != '^' {
		return 0, nil
	}
	p.pos++
	braced := p.peek() == '{'
	if braced {
		p.pos++
	}
	n, ok := p.readDigits()
	if !ok {
		n = 1 // bare "^{+}" means charge magnitude 1
	}
	sign := p.peek()
	switch sign {
	case '+':
		p.pos++
	case '-', '−':
		p.pos++
		n = -n
	default:
		return 0, clerr.New(clerr.FormulaParseError, "expected '+' or '-' in charge of formula %q", p.orig)
	}
	if braced {
		if p.peek() != '}' {
			return 0, clerr.New(clerr.FormulaParseError, "unbalanced '^{' in formula %q", p.orig)
		}
		p.pos++
	}
	return n, nil
}

func (p *formulaParser) readDigits() (int, bool) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n := 0
	for _, r := range p.src[start:p.pos] {
		n = n*10 + int(r-'0')
	}
	return n, true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Equal reports multiset+charge equality ("H2O == OH2").
func (f Formula) Equal(g Formula) bool {
	if f.charge != g.charge {
		return false
	}
	if len(f.counts) != len(g.counts) {
		return false
	}
	for el, n := range f.counts {
		if g.counts[el] != n {
			return false
		}
	}
	return true
}

// Charge returns the formula's signed charge.
func (f Formula) Charge() int { return f.charge }

// ElementCount returns the atom count for an element symbol (0 if absent).
func (f Formula) ElementCount(symbol string) int { return f.counts[symbol] }

// Elements returns the formula's distinct element symbols, sorted for
// deterministic iteration (used by the reaction balancer's conservation
// matrix).
func (f Formula) Elements() []string {
	els := make([]string, 0, len(f.counts))
	for el := range f.counts {
		els = append(els, el)
	}
	sort.Strings(els)
	return els
}

// MolarMass computes Σ count × standard atomic weight, with sig_figs
// clamped to a minimum of 4 (a formula-mediated conversion treats the molar
// mass as having sig_figs = max(4, sig_figs(source))). Callers pass the
// source quantity's sig_figs in so the returned Num already carries the
// right display precision for the conversion that requested it.
func (f Formula) MolarMass(minSigFigs int) (decimal.Num, error) {
	total := decimal.Zero
	for el, n := range f.counts {
		w, ok := weightBySymbol[el]
		if !ok {
			return decimal.Num{}, clerr.New(clerr.UnknownElement, "unknown element %q", el)
		}
		total = total.Add(w.Mul(decimal.FromInt(int64(n))))
	}
	if minSigFigs < 4 {
		minSigFigs = 4
	}
	total.SigFigs = minSigFigs
	return total, nil
}

// String renders the canonical printable form: elements in the order the
// parsed text first names them, subscript digits, and a superscript charge
// when nonzero. Parenthesized groups are flattened ("Cu(OH)2" prints as
// "CuO₂H₂").
func (f Formula) String() string {
	var b strings.Builder
	els := f.Elements()
	// A Formula with no source text falls back to a Hill-system-ish
	// ordering: Carbon first, Hydrogen second, remaining elements in
	// Elements() order; Elements() order alone when there's no carbon.
	ordered := hillOrder(els)
	if f.text != "" {
		ordered = nil
		seen := map[string]bool{}
		src := []rune(f.text)
		for i := 0; i < len(src); i++ {
			if !isUpper(src[i]) {
				continue
			}
			sym := string(src[i])
			if i+1 < len(src) && isLower(src[i+1]) && knownSymbol[string(src[i:i+2])] {
				sym = string(src[i : i+2])
			}
			if !seen[sym] {
				seen[sym] = true
				ordered = append(ordered, sym)
			}
		}
	}
	for _, el := range ordered {
		b.WriteString(el)
		n := f.counts[el]
		if n != 1 {
			b.WriteString(toSubscript(n))
		}
	}
	if f.charge != 0 {
		b.WriteString(toSuperscriptCharge(f.charge))
	}
	return b.String()
}

func hillOrder(els []string) []string {
	hasC := false
	for _, e := range els {
		if e == "C" {
			hasC = true
		}
	}
	if !hasC {
		return els
	}
	out := make([]string, 0, len(els))
	out = append(out, "C")
	if contains(els, "H") {
		out = append(out, "H")
	}
	for _, e := range els {
		if e != "C" && e != "H" {
			out = append(out, e)
		}
	}
	return out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

func toSubscript(n int) string {
	s := itoa(n)
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(subscriptDigits[c-'0'])
	}
	return b.String()
}

func toSuperscriptCharge(charge int) string {
	n := charge
	sign := "⁺"
	if n < 0 {
		sign = "⁻"
		n = -n
	}
	var mag string
	if n == 1 {
		mag = ""
	} else {
		mag = toSuperscriptDigits(n)
	}
	return mag + sign
}

var superDigits2 = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func toSuperscriptDigits(n int) string {
	s := itoa(n)
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(superDigits2[c-'0'])
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
