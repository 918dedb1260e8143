package value

import (
	"strings"

	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/quantity"
	"github.com/chem-lang/cl/reaction"
	"github.com/chem-lang/cl/units"
)

// NumberLit is a bare number or a number with a unit and/or formula
// attached: "50.00 g NaOH".
type NumberLit struct {
	Magnitude decimal.Num
	UnitName  string // "" for a dimensionless scalar
	Formula   *formula.Formula
}

func (n *NumberLit) Eval(ctx Context) Value {
	u := units.Scalar
	if n.UnitName != "" {
		u = ctx.Units().MustLookup(n.UnitName)
	}
	return Q(quantity.Quantity{Magnitude: n.Magnitude, Unit: u, Formula: n.Formula})
}

// BoolLit is the "pass"/"fail" literal.
type BoolLit bool

func (b BoolLit) Eval(ctx Context) Value { return Q(quantity.BoolOf(bool(b))) }

// StringLit is a plain, non-interpolating "..." literal.
type StringLit string

func (s StringLit) Eval(ctx Context) Value { return StringVal(s) }

// InterpExpr is one piece of an interpolated string's content: either
// literal text or an embedded expression to be formatted and substituted.
type InterpExpr struct {
	Lit  string
	Expr Expr // nil for a literal piece
}

// InterpStringExpr is an s"..." or doc...done literal, already split by
// the parser into alternating literal and {expr} pieces.
type InterpStringExpr struct {
	Parts []InterpExpr
}

func (e *InterpStringExpr) Eval(ctx Context) Value {
	var b strings.Builder
	for _, p := range e.Parts {
		if p.Expr == nil {
			b.WriteString(p.Lit)
			continue
		}
		b.WriteString(p.Expr.Eval(ctx).String())
	}
	return StringVal(b.String())
}

// PathLit is a |path| literal, the target of a "-> |path|" sink.
type PathLit string

func (p PathLit) Eval(ctx Context) Value { return PathVal(p) }

// VarExpr looks up a bound name.
type VarExpr struct {
	Name string
}

func (e *VarExpr) Eval(ctx Context) Value {
	v, ok := ctx.Lookup(e.Name)
	if !ok {
		ctx.Errorf("undefined identifier %q", e.Name)
	}
	return v
}

// CallExpr invokes a user-defined work by name.
type CallExpr struct {
	Name string
	Args []Expr
}

func (e *CallExpr) Eval(ctx Context) Value {
	if e.Name == "print" {
		return evalPrint(ctx, e.Args)
	}
	v, ok := ctx.Lookup(e.Name)
	if !ok {
		ctx.Errorf("undefined work %q", e.Name)
	}
	fn, ok := v.(*Function)
	if !ok {
		ctx.Errorf("%q is not a work", e.Name)
	}
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Eval(ctx)
	}
	return fn.Call(ctx, args)
}

// evalPrint is the print(...) builtin: each argument's printed form, joined
// with a space, one line to standard output. It isn't a *Function; there
// is no CL source to bind it to a name, so CallExpr recognizes it by name
// before ever consulting the environment.
func evalPrint(ctx Context, argExprs []Expr) Value {
	var parts []string
	var last Value
	for _, a := range argExprs {
		last = a.Eval(ctx)
		parts = append(parts, last.String())
	}
	ctx.Print(strings.Join(parts, " "))
	return last
}

// ReactionLit is a :A + B -> C + D: skeleton literal. Coefficients are not
// yet known; Balance fills them in, lazily, the first time the resulting
// ReactionVal is used.
type ReactionLit struct {
	Reactants []formula.Formula
	Products  []formula.Formula
}

func (e *ReactionLit) Eval(ctx Context) Value {
	skeleton := reaction.Reaction{
		Reactants: make([]reaction.Species, len(e.Reactants)),
		Products:  make([]reaction.Species, len(e.Products)),
	}
	for i, f := range e.Reactants {
		skeleton.Reactants[i] = reaction.Species{Formula: f}
	}
	for i, f := range e.Products {
		skeleton.Products[i] = reaction.Species{Formula: f}
	}
	return NewReactionVal(skeleton)
}
