package parse

import (
	"os"
	"strings"
	"testing"

	"github.com/chem-lang/cl/config"
	"github.com/chem-lang/cl/exec"
	"github.com/chem-lang/cl/scan"
)

// evalOne parses and evaluates a single statement, returning its printed
// result. Grounded on ivy's own run()-through-a-string test pattern.
func evalOne(t *testing.T, src string) string {
	t.Helper()
	conf := &config.Config{}
	sc := scan.New(conf, "test", strings.NewReader(src))
	p := NewParser(sc, conf, "test")
	stmt, ok := p.NextStatement()
	if !ok {
		t.Fatalf("expected a statement in %q, got none", src)
	}
	ctx := exec.NewContext(conf)
	return stmt.Eval(ctx).String()
}

func TestPrecedenceMulBeforeAdd(t *testing.T) {
	got := evalOne(t, "2 + 3 * 4\n")
	if got != "14" {
		t.Errorf("2 + 3 * 4 = %s, want 14", got)
	}
}

func TestPrecedencePowIsRightAssociative(t *testing.T) {
	got := evalOne(t, "2 ** 3 ** 2\n") // 2 ** (3 ** 2) = 2 ** 9 = 512
	if got != "512" {
		t.Errorf("2 ** 3 ** 2 = %s, want 512", got)
	}
}

func TestPrecedenceComparisonBelowArithmetic(t *testing.T) {
	got := evalOne(t, "1 + 1 == 2\n")
	if got != "pass" {
		t.Errorf("1 + 1 == 2 = %s, want pass", got)
	}
}

func TestPrecedenceAndOrNot(t *testing.T) {
	got := evalOne(t, "not pass and fail or pass\n")
	if got != "pass" {
		t.Errorf("not pass and fail or pass = %s, want pass", got)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	got := evalOne(t, "(2 + 3) * 4\n")
	if got != "20" {
		t.Errorf("(2 + 3) * 4 = %s, want 20", got)
	}
}

func TestUnaryMinusHasLowerPrecedenceThanPow(t *testing.T) {
	got := evalOne(t, "-2 ** 2\n") // -(2 ** 2), since unaryExpr recurses before falling to powExpr
	if got != "-4" {
		t.Errorf("-2 ** 2 = %s, want -4", got)
	}
}

func TestNamedMathFunctionCallSyntax(t *testing.T) {
	got := evalOne(t, "sqrt(16)\n")
	if got != "4" {
		t.Errorf("sqrt(16) = %s, want 4", got)
	}
}

func TestNumberWithUnitAndFormulaAttachesGreedily(t *testing.T) {
	got := evalOne(t, "18.0 g H2O\n")
	if got != "18.0 g H₂O" {
		t.Errorf("18.0 g H2O = %q, want \"18.0 g H₂O\"", got)
	}
}

func TestConversionChainAppliesLeftToRight(t *testing.T) {
	got := evalOne(t, "1 km -> m\n")
	if got != "1000 m" {
		t.Errorf("1 km -> m = %q, want \"1000 m\"", got)
	}
}

func TestReactionLiteralInConversion(t *testing.T) {
	got := evalOne(t, "80.00 g NaOH :CuSO4 + NaOH -> Cu(OH)2 + Na2SO4: -> g CuSO4\n")
	// 80.00 g NaOH is 2.000 mol; the balanced reaction's CuSO4:NaOH ratio is
	// 1:2, so 1.000 mol CuSO4 comes out — the element symbols Cu and S must
	// both appear in the formula-tagged result.
	if !strings.Contains(got, "Cu") || !strings.Contains(got, "S") {
		t.Errorf("reaction-mediated conversion = %q, want a CuSO4-labeled result", got)
	}
	if !strings.Contains(got, " g ") {
		t.Errorf("reaction-mediated conversion = %q, want a grams-unit result", got)
	}
}

func TestIfStatementOneLineForm(t *testing.T) {
	got := evalOne(t, "if pass: 1 else: 2\n")
	if got != "1" {
		t.Errorf("if pass: 1 else: 2 = %s, want 1", got)
	}
}

func TestSinkExprParsesFileTarget(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("os.Chdir: %v", err)
	}
	defer os.Chdir(wd)

	conf := &config.Config{}
	sc := scan.New(conf, "test", strings.NewReader("1 -> |out|\n"))
	p := NewParser(sc, conf, "test")
	stmt, ok := p.NextStatement()
	if !ok {
		t.Fatalf("expected a statement")
	}
	ctx := exec.NewContext(conf)
	got := stmt.Eval(ctx).String()
	if got != "1" {
		t.Errorf("1 -> |path| evaluates to %s, want 1", got)
	}
	data, err := os.ReadFile("out")
	if err != nil {
		t.Fatalf("reading sink file: %v", err)
	}
	if string(data) != "1\n" {
		t.Errorf("sink file contents = %q, want \"1\\n\"", data)
	}
}

func TestRangeExprParsesAsLoopHeader(t *testing.T) {
	conf := &config.Config{}
	sc := scan.New(conf, "test", strings.NewReader("loop i in 1..3:\n  i\n"))
	p := NewParser(sc, conf, "test")
	stmt, ok := p.NextStatement()
	if !ok {
		t.Fatalf("expected a statement")
	}
	ctx := exec.NewContext(conf)
	got := stmt.Eval(ctx).String()
	if got != "3" {
		t.Errorf("loop i in 1..3: i (last value) = %s, want 3", got)
	}
}

func TestSyntaxErrorSkipsToNextStatement(t *testing.T) {
	conf := &config.Config{}
	sc := scan.New(conf, "test", strings.NewReader("1 +\n2\n"))
	p := NewParser(sc, conf, "test")

	func() {
		defer func() { recover() }()
		p.NextStatement()
	}()

	stmt, ok := p.NextStatement()
	if !ok {
		t.Fatalf("expected a second statement to still be parseable")
	}
	ctx := exec.NewContext(conf)
	got := stmt.Eval(ctx).String()
	if got != "2" {
		t.Errorf("statement after a syntax error = %s, want 2", got)
	}
}
