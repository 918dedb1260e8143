// Package value implements CL's evaluated-value sum type and the
// expression/statement AST that produces it. A Value is one of Quantity,
// *ReactionVal, *Function, Interval, StringVal, or PathVal, per the data
// model's "universal Quantity plus a handful of auxiliary value kinds"
// design. The Context interface lets this package describe evaluation
// without importing exec (which implements Context), the same
// cycle-avoidance split ivy's value/Expr and exec/Context have.
package value

import "github.com/chem-lang/cl/units"

// Value is anything an expression can evaluate to.
type Value interface {
	String() string
	Truthy() bool
}

// Pos is a source location attached to a runtime error.
type Pos struct {
	File string
	Line int
}

// Frame is an opaque handle on one scope link in Context's frame chain.
// value never looks inside it; it only ever passes a Frame it got from
// CaptureFrame back into PushChild or PopTo, so a *Function can hold the
// chain that was live at its own definition without value needing to know
// exec's concrete frame type.
type Frame interface{}

// Context is the evaluation environment: persistent, structurally-shared
// scope frames plus the process-wide unit registry. Bind always creates or
// overwrites a binding in the innermost frame; Assign mutates an existing
// binding in place wherever up the frame stack it was found, and reports
// false if the name isn't bound anywhere (the caller then falls back to
// Bind); this pair is how CL resolves the "new name creates a local,
// assignment to an existing name mutates in place" rule.
type Context interface {
	Lookup(name string) (Value, bool)
	Bind(name string, v Value)
	Assign(name string, v Value) bool
	PushFrame()
	PopFrame()
	Errorf(format string, args ...interface{})
	Units() *units.Registry
	SetPos(file string, line int)

	// CaptureFrame snapshots the innermost frame currently live, so a
	// *Function can reopen this exact scope chain later, after the frame
	// that was live at the call site has been popped.
	CaptureFrame() Frame

	// PushChild pushes a new frame whose parent is env, a Frame obtained
	// from an earlier CaptureFrame, rather than a child of whatever frame
	// happens to be on top when the push runs. This is what lets a
	// closure's call run against its definition-time environment instead
	// of the caller's dynamic one.
	PushChild(env Frame)

	// PopTo restores the frame chain to saved, a Frame obtained from an
	// earlier CaptureFrame, undoing any PushFrame/PushChild calls made
	// since regardless of how many there were.
	PopTo(saved Frame)

	// WriteSink appends text to path, opening it in append mode and
	// closing it again immediately; no handle is kept open between
	// writes, so two sinks to the same path never race on a shared fd.
	WriteSink(path, text string)

	// Print writes s followed by a newline to standard output, the
	// implementation behind the print(...) builtin.
	Print(s string)

	// ShouldPrintBalance reports the live value of show_balanced_equation,
	// consulted immediately before a reaction-mediated conversion applies
	// a freshly balanced reaction.
	ShouldPrintBalance() bool

	// Debugf logs a trace line under tag if that tag was enabled via
	// -debug, a no-op otherwise.
	Debugf(tag, format string, args ...interface{})
}

// Expr is a parsed, evaluatable piece of source.
type Expr interface {
	Eval(ctx Context) Value
}
