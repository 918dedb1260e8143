// Package exec is the only implementation of value.Context: persistent,
// structurally-shared scope frames, the process-wide unit registry, and
// the panic/recover error boundary every evaluation runs inside. Splitting
// Context's interface (in package value) from its implementation (here)
// avoids the import cycle that would otherwise exist, since value needs to
// describe evaluation against a Context without importing the package
// that implements it, the same split ivy's value.Context/exec.Context
// pair uses.
package exec

import (
	"fmt"
	"os"

	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/config"
	"github.com/chem-lang/cl/units"
	"github.com/chem-lang/cl/value"
)

// frame is one lexical scope: a set of name bindings plus a pointer to its
// enclosing frame. Frames are never copied, only pushed and popped, so a
// closure that captured an outer frame observes later mutations to it,
// the persistent/structurally-shared half of CL's scope design.
type frame struct {
	vars   map[string]value.Value
	parent *frame
}

func newFrame(parent *frame) *frame {
	return &frame{vars: make(map[string]value.Value), parent: parent}
}

// Context is CL's execution environment: a stack of frames rooted at the
// global frame, the unit registry, and the run's configuration.
type Context struct {
	config *config.Config
	units  *units.Registry
	top    *frame
	pos    value.Pos
}

// NewContext builds a fresh global frame and seeds the unit registry.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config: conf,
		units:  units.NewRegistry(),
		top:    newFrame(nil),
	}
}

func (c *Context) Units() *units.Registry { return c.units }

func (c *Context) Config() *config.Config { return c.config }

// Lookup searches frames from innermost to outermost.
func (c *Context) Lookup(name string) (value.Value, bool) {
	for f := c.top; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bind creates or overwrites a binding in the innermost frame.
func (c *Context) Bind(name string, v value.Value) {
	c.top.vars[name] = v
}

// Assign mutates an existing binding wherever up the frame chain it was
// found. Reports false (doing nothing) if name is unbound, so the caller
// falls back to Bind.
func (c *Context) Assign(name string, v value.Value) bool {
	for f := c.top; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return true
		}
	}
	return false
}

func (c *Context) PushFrame() { c.top = newFrame(c.top) }

func (c *Context) PopFrame() {
	if c.top.parent != nil {
		c.top = c.top.parent
	}
}

// CaptureFrame returns the live innermost frame as an opaque value.Frame,
// the handle a *value.Function stashes at definition time and a call later
// reopens or restores.
func (c *Context) CaptureFrame() value.Frame { return c.top }

// PushChild pushes a new frame parented on env (a value.Frame obtained
// from CaptureFrame) rather than on c.top, the mechanism that lets a
// closure's call run against its definition-time scope chain instead of
// whatever frame happens to be live at the call site.
func (c *Context) PushChild(env value.Frame) {
	parent, _ := env.(*frame)
	c.top = newFrame(parent)
}

// PopTo restores the frame chain to saved (a value.Frame obtained from an
// earlier CaptureFrame), undoing PushFrame/PushChild calls made since in
// one step regardless of how many there were.
func (c *Context) PopTo(saved value.Frame) {
	f, _ := saved.(*frame)
	c.top = f
}

func (c *Context) SetPos(file string, line int) {
	c.pos = value.Pos{File: file, Line: line}
}

// Errorf raises a *clerr.Error as a panic carrying the current source
// position, the mechanism every evaluation failure uses to unwind back to
// the REPL or script driver's recover point.
func (c *Context) Errorf(format string, args ...interface{}) {
	err := clerr.At(clerr.Pos{File: c.pos.File, Line: c.pos.Line}, clerr.TypeError, format, args...)
	panic(err)
}

// ShouldPrintBalance reflects the show_balanced_equation environment
// variable, re-read on every call (§6: "read at startup, re-read on
// reference").
func (c *Context) ShouldPrintBalance() bool { return c.config.ShowBalancedEquation() }

// Print implements the print(...) builtin.
func (c *Context) Print(s string) {
	fmt.Println(s)
}

// WriteSink appends text and a trailing newline to path, opening it fresh
// and closing it again on every call per the spec's always-consistent,
// no-buffered-state file sink.
func (c *Context) WriteSink(path, text string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		c.Errorf("cannot open %q: %v", path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, text); err != nil {
		c.Errorf("cannot write %q: %v", path, err)
	}
}

// Debugf logs a debug trace line when tag is enabled, the same
// config-gated fmt.Fprintf-to-stderr logging idiom the teacher uses.
func (c *Context) Debugf(tag, format string, args ...interface{}) {
	if !c.config.Debug(tag) {
		return
	}
	fmt.Fprintf(os.Stderr, "debug(%s): "+format+"\n", append([]interface{}{tag}, args...)...)
}
