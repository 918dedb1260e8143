package value

import "github.com/chem-lang/cl/quantity"

// BinaryExpr is a binary operator application. "and"/"or" short-circuit
// here, not inside quantity.Quantity.And/Or: the evaluator must not
// evaluate the right operand once the left side already decides the
// result, but Quantity's own And/Or have no notion of "don't evaluate".
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) Eval(ctx Context) Value {
	if b.Op == "=" {
		return Assign(ctx, b)
	}

	lhs := b.Left.Eval(ctx)

	if b.Op == "and" || b.Op == "or" {
		l := AsQuantity(ctx, lhs, "left operand of "+b.Op)
		if b.Op == "and" && !l.Truthy() {
			return Q(quantity.Fail)
		}
		if b.Op == "or" && l.Truthy() {
			return Q(quantity.Pass)
		}
		r := AsQuantity(ctx, b.Right.Eval(ctx), "right operand of "+b.Op)
		return Q(quantity.BoolOf(r.Truthy()))
	}

	rhs := b.Right.Eval(ctx)
	l := AsQuantity(ctx, lhs, "left operand of "+b.Op)
	r := AsQuantity(ctx, rhs, "right operand of "+b.Op)
	return Q(applyBinary(ctx, b.Op, l, r))
}

func applyBinary(ctx Context, op string, l, r quantity.Quantity) quantity.Quantity {
	switch op {
	case "+":
		return l.Add(r)
	case "-":
		return l.Sub(r)
	case "*":
		return l.Mul(r)
	case "/":
		return l.Div(r)
	case "%", "mod":
		return l.Mod(r)
	case "**":
		return l.Pow(r)
	case "==":
		return l.Eq(r)
	case "!=":
		return l.Ne(r)
	case "<":
		return l.Lt(r)
	case "<=":
		return l.Le(r)
	case ">":
		return l.Gt(r)
	case ">=":
		return l.Ge(r)
	default:
		ctx.Errorf("binary operator %q not implemented", op)
		return quantity.Quantity{}
	}
}
