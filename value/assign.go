package value

// Assign implements "name = expr". A name not yet bound anywhere creates a
// new binding in the innermost frame; a name already bound, in this frame
// or an enclosing one, is mutated in place, so closures over an outer
// variable observe the new value. This is the resolution of the tension
// between persistent, structurally-shared scope frames and the
// expectation that reassignment is visible to anyone still holding the
// frame.
func Assign(ctx Context, b *BinaryExpr) Value {
	name, ok := b.Left.(*VarExpr)
	if !ok {
		ctx.Errorf("cannot assign to %v", b.Left)
	}
	rhs := b.Right.Eval(ctx)
	if !ctx.Assign(name.Name, rhs) {
		ctx.Bind(name.Name, rhs)
	}
	return rhs
}
