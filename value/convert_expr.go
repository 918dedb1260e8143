package value

import (
	"github.com/chem-lang/cl/convert"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/reaction"
)

// ConvertStep is one "-> target" hop, optionally mediated by a reaction
// evaluated from Reaction (the inline ":R:" reaction literal written just
// before this step's arrow).
type ConvertStep struct {
	UnitName string
	Formula  *formula.Formula
	Reaction Expr
}

// ConvertExpr is a chained "a -> b -> c ...": each step is applied to the
// previous step's result, left to right, exactly as if the caller invoked
// convert.Convert once per arrow.
type ConvertExpr struct {
	Source Expr
	Steps  []ConvertStep
}

func (e *ConvertExpr) Eval(ctx Context) Value {
	q := AsQuantity(ctx, e.Source.Eval(ctx), "conversion source")
	for _, step := range e.Steps {
		target := convert.Target{Formula: step.Formula}
		if step.UnitName != "" {
			u := ctx.Units().MustLookup(step.UnitName)
			target.Unit = &u
		}
		var rxn *reaction.Reaction
		if step.Reaction != nil {
			rv, ok := step.Reaction.Eval(ctx).(*ReactionVal)
			if !ok {
				ctx.Errorf("conversion reaction must be a reaction value")
			}
			b, err := rv.Balanced()
			if err != nil {
				ctx.Errorf("%s", err.Error())
			}
			ctx.Debugf("balance", "balanced %s", b.String())
			if ctx.ShouldPrintBalance() {
				ctx.Print(b.String())
			}
			rxn = &b
		}
		out, err := convert.Convert(q, target, rxn, ctx.Units())
		if err != nil {
			ctx.Errorf("%s", err.Error())
		}
		q = out
	}
	return Q(q)
}
