package exec

import (
	"fmt"
	"io"
	"os"

	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/parse"
)

// Run drives parser to completion, evaluating one top-level statement at a
// time against ctx. A recovered *clerr.Error aborts only the statement that
// raised it; the REPL loop then prompts again, a script run records the
// failure and moves on, per the "errors are fatal to the expression, not
// the session" policy. Run reports whether every statement evaluated
// cleanly; the cmd/cl driver turns a false return into a nonzero exit code.
// Interactive runs echo each statement's resulting value, the same
// read-eval-print loop ivy's run() implements; file runs stay silent and
// rely on explicit print(...) calls for output.
func Run(ctx *Context, p *parse.Parser, w io.Writer, interactive bool) (clean bool) {
	clean = true
	for {
		if interactive {
			fmt.Fprint(w, ctx.Config().Prompt())
		}
		stmt, ok := evalNext(ctx, p, w, interactive)
		if !ok {
			return clean
		}
		if !stmt {
			clean = false
		}
	}
}

// evalNext parses and evaluates one statement, returning (ranCleanly,
// moreInput). Recovery happens per statement so one bad line doesn't take
// down the rest of a script.
func evalNext(ctx *Context, p *parse.Parser, w io.Writer, interactive bool) (ranCleanly, more bool) {
	ranCleanly = true
	more = true
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(*clerr.Error)
		if !ok {
			panic(r)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		ranCleanly = false
	}()

	line, ok := p.NextStatement()
	if !ok {
		return ranCleanly, false
	}
	ctx.SetPos(p.FileName(), p.Line())
	ctx.Debugf("eval", "%s:%d evaluating", p.FileName(), p.Line())
	v := line.Eval(ctx)
	if interactive && v != nil {
		fmt.Fprintln(w, v.String())
	}
	return ranCleanly, true
}
