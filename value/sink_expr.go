package value

// SinkExpr is "expr -> |path|": evaluate Source and append its printed form
// to path. It is always the last step of a conversion chain; there is
// nothing useful to convert a file write into.
type SinkExpr struct {
	Source Expr
	Path   string
}

func (e *SinkExpr) Eval(ctx Context) Value {
	v := e.Source.Eval(ctx)
	ctx.WriteSink(e.Path, v.String())
	return v
}
