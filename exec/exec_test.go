package exec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chem-lang/cl/config"
	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/parse"
	"github.com/chem-lang/cl/quantity"
	"github.com/chem-lang/cl/scan"
	"github.com/chem-lang/cl/value"
)

// runSource scans, parses, and runs src through a fresh Context, returning
// everything Run wrote to its output writer (the REPL echo of each
// statement's result) plus whether every statement evaluated cleanly.
func runSource(t *testing.T, src string, interactive bool) (string, bool) {
	t.Helper()
	conf := &config.Config{}
	sc := scan.New(conf, "test", strings.NewReader(src))
	p := parse.NewParser(sc, conf, "test")
	ctx := NewContext(conf)
	var buf bytes.Buffer
	clean := Run(ctx, p, &buf, interactive)
	return buf.String(), clean
}

func TestRunInteractiveEchoesEachStatementResult(t *testing.T) {
	out, clean := runSource(t, "1 + 1\n2 * 3\n", true)
	require.True(t, clean)
	assert.Equal(t, "cl> 2\ncl> 6\ncl> ", out)
}

func TestRunScriptModeStaysSilentWithoutPrint(t *testing.T) {
	out, clean := runSource(t, "1 + 1\n", false)
	require.True(t, clean)
	assert.Empty(t, out)
}

func TestRunRecoversPerStatementAndContinues(t *testing.T) {
	// dividing by zero raises mid-script; the next statement still runs.
	out, clean := runSource(t, "x = 1 / 0\ny = 5\n", true)
	assert.False(t, clean, "a failing statement must mark the run unclean")
	assert.Contains(t, out, "cl> ")
}

func TestContextLookupReportsUnboundName(t *testing.T) {
	ctx := NewContext(&config.Config{})
	v, ok := ctx.Lookup("undefined_name")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestContextPushPopFrameScopesBindings(t *testing.T) {
	ctx := NewContext(&config.Config{})
	ctx.PushFrame()
	ctx.Bind("local", value.Q(quantity.Scalar(decimal.FromInt(1))))
	ctx.PopFrame()
	_, ok := ctx.Lookup("local")
	assert.False(t, ok, "a binding made in a popped frame must not remain visible")
}

func TestAssignmentPersistsAcrossStatements(t *testing.T) {
	out, clean := runSource(t, "x = 40\nx + 2\n", true)
	require.True(t, clean)
	assert.Contains(t, out, "42")
}

func TestWorkDefinitionUsableInLaterStatement(t *testing.T) {
	src := "work double(n):\n  n * 2\ndouble(21)\n"
	out, clean := runSource(t, src, true)
	require.True(t, clean)
	assert.Contains(t, out, "42")
}

func TestUnitConversionEndToEnd(t *testing.T) {
	out, clean := runSource(t, "1 km -> m\n", true)
	require.True(t, clean)
	assert.Contains(t, out, "1000")
}
