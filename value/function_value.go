package value

// Function is a user-defined "work", CL's only callable value. Env is the
// frame chain captured at the work's definition; Call reopens it as the
// parent of a fresh call frame instead of pushing onto whatever frame the
// caller happens to have on top, so a work returned out of an enclosing
// call still sees that call's bindings, the closure rule. Params bind
// positionally in the fresh call frame; Body runs as an ordinary statement
// list and the function's value is whatever its last expression statement
// evaluated to.
type Function struct {
	Name   string
	Params []string
	Body   []Expr
	Env    Frame
}

func (f *Function) String() string { return "work " + f.Name }
func (f *Function) Truthy() bool   { return true }

func (f *Function) Call(ctx Context, args []Value) Value {
	if len(args) != len(f.Params) {
		ctx.Errorf("%s expects %d argument(s), got %d", f.Name, len(f.Params), len(args))
	}
	saved := ctx.CaptureFrame()
	ctx.PushChild(f.Env)
	defer ctx.PopTo(saved)
	for i, p := range f.Params {
		ctx.Bind(p, args[i])
	}
	var last Value
	for _, stmt := range f.Body {
		last = stmt.Eval(ctx)
	}
	return last
}
