package value

import (
	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/quantity"
)

// Block is a sequence of statements sharing one frame; its value is
// whatever its last statement evaluated to, or nil if it ran none.
type Block []Expr

func (b Block) Eval(ctx Context) Value {
	var last Value
	for _, stmt := range b {
		last = stmt.Eval(ctx)
	}
	return last
}

// IfStmt is "if cond: then else: else". Else may be nil.
type IfStmt struct {
	Cond Expr
	Then Block
	Else Block
}

func (s *IfStmt) Eval(ctx Context) Value {
	cond := AsQuantity(ctx, s.Cond.Eval(ctx), "if condition")
	ctx.PushFrame()
	defer ctx.PopFrame()
	if cond.Truthy() {
		return s.Then.Eval(ctx)
	}
	if s.Else != nil {
		return s.Else.Eval(ctx)
	}
	return nil
}

// LoopStmt is "loop x in a..b: body"; Range evaluates to an Interval. Each
// iteration gets its own frame so a "work" closed over inside the body
// sees a fresh binding per iteration.
type LoopStmt struct {
	Var   string
	Range Expr
	Body  Block
}

func (s *LoopStmt) Eval(ctx Context) Value {
	v := s.Range.Eval(ctx)
	iv, ok := v.(Interval)
	if !ok {
		ctx.Errorf("loop range must be an interval, got %s", v.String())
	}
	var last Value
	for i := iv.Lo; i <= iv.Hi; i++ {
		ctx.PushFrame()
		ctx.Bind(s.Var, Q(quantity.Scalar(decimal.FromInt(i))))
		last = s.Body.Eval(ctx)
		ctx.PopFrame()
	}
	return last
}

// WorkDef defines a named function and binds it in the current frame. The
// Function it builds captures the frame chain live at this point, so a
// work defined inside another call closes over that call's bindings even
// after the call returns.
type WorkDef struct {
	Name   string
	Params []string
	Body   Block
}

func (s *WorkDef) Eval(ctx Context) Value {
	fn := &Function{Name: s.Name, Params: s.Params, Body: s.Body, Env: ctx.CaptureFrame()}
	ctx.Bind(s.Name, fn)
	return fn
}

// RangeExpr is the "a..b" interval literal used as a loop header.
type RangeExpr struct {
	Lo, Hi Expr
}

func (e *RangeExpr) Eval(ctx Context) Value {
	lo := AsQuantity(ctx, e.Lo.Eval(ctx), "interval lower bound")
	hi := AsQuantity(ctx, e.Hi.Eval(ctx), "interval upper bound")
	loN, hiN, ok := quantity.IntervalBounds(lo, hi)
	if !ok {
		ctx.Errorf("interval bounds must be integer dimensionless scalars")
	}
	return Interval{Lo: loN, Hi: hiN}
}
