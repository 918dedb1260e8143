package value

import "github.com/chem-lang/cl/quantity"

// UnaryExpr is a unary operator or named function application: "-x",
// "not x", "sqrt(x)".
type UnaryExpr struct {
	Op    string
	Right Expr
}

func (u *UnaryExpr) Eval(ctx Context) Value {
	r := AsQuantity(ctx, u.Right.Eval(ctx), "operand of "+u.Op)
	switch u.Op {
	case "-":
		return Q(r.Neg())
	case "+":
		return Q(r.Pos())
	case "not":
		return Q(r.Not())
	case "~":
		return Q(r.BitNot())
	case "abs":
		return Q(r.AbsFn())
	case "sqrt":
		return Q(r.SqrtFn())
	case "ln":
		return Q(r.Ln())
	case "log":
		return Q(r.Log())
	case "log2":
		return Q(r.Log2())
	case "log10":
		return Q(r.Log10())
	case "sin":
		return Q(r.Sin())
	case "cos":
		return Q(r.Cos())
	case "tan":
		return Q(r.Tan())
	default:
		ctx.Errorf("unary operator %q not implemented", u.Op)
		return Q(quantity.Quantity{})
	}
}
