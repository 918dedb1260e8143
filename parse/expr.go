package parse

import (
	"strings"

	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/scan"
	"github.com/chem-lang/cl/value"
)

// expression is the precedence-climbing entry point, lowest precedence
// (assignment) down to primary. A name followed by '=' is parsed as
// assignment; value.Assign later rejects anything else on the left.
func (p *Parser) expression() value.Expr {
	lhs := p.convertExpr()
	if p.peek().Type == scan.Assign {
		p.next()
		rhs := p.expression()
		return &value.BinaryExpr{Op: "=", Left: lhs, Right: rhs}
	}
	return lhs
}

// convertExpr is "orExpr ( (reactionLit)? '->' target )*", the chained
// conversion operator, lower precedence than every arithmetic/logical
// operator so "a + b -> c" converts the whole sum.
func (p *Parser) convertExpr() value.Expr {
	lhs := p.orExpr()
	var steps []value.ConvertStep
	for {
		if p.peek().Type == scan.Colon {
			rxn := p.reactionLiteral()
			p.expectArrow()
			step := p.convertTarget()
			step.Reaction = rxn
			steps = append(steps, step)
			continue
		}
		if p.atArrow() {
			p.next()
			if p.peek().Type == scan.Char && p.peek().Text == "|" {
				src := lhs
				if len(steps) > 0 {
					src = &value.ConvertExpr{Source: lhs, Steps: steps}
				}
				return &value.SinkExpr{Source: src, Path: p.pathTarget()}
			}
			steps = append(steps, p.convertTarget())
			continue
		}
		break
	}
	if len(steps) == 0 {
		return lhs
	}
	return &value.ConvertExpr{Source: lhs, Steps: steps}
}

func (p *Parser) atArrow() bool {
	t := p.peek()
	return t.Type == scan.Operator && t.Text == "->"
}

func (p *Parser) expectArrow() {
	if !p.atArrow() {
		p.errorf("expected -> after reaction, got %s", p.peek())
	}
	p.next()
}

// convertTarget parses one "-> target": an optional unit identifier, an
// optional formula, at least one of the two.
func (p *Parser) convertTarget() value.ConvertStep {
	var step value.ConvertStep
	if p.peek().Type == scan.Identifier {
		step.UnitName = p.next().Text
	}
	if p.peek().Type == scan.Formula {
		f, err := formula.Parse(p.next().Text)
		if err != nil {
			panic(err)
		}
		step.Formula = &f
	}
	if step.UnitName == "" && step.Formula == nil {
		p.errorf("expected conversion target, got %s", p.peek())
	}
	return step
}

// pathTarget parses "|name|", the already-consumed '->' having just been
// seen; the leading '|' is still pending.
func (p *Parser) pathTarget() string {
	p.expectChar("|")
	name := p.next()
	if name.Type != scan.Identifier && name.Type != scan.Formula {
		p.errorf("expected path name, got %s", name)
	}
	p.expectChar("|")
	return name.Text
}

func (p *Parser) expectChar(text string) {
	t := p.next()
	if t.Type != scan.Char || t.Text != text {
		p.errorf("expected %q, got %s", text, t)
	}
}

// reactionLiteral parses ":reactants -> products:", a dedicated
// sub-grammar so the '->' inside never gets read as a chained conversion.
func (p *Parser) reactionLiteral() *value.ReactionLit {
	p.expect(scan.Colon, ":")
	reactants := p.formulaList()
	p.expectArrow()
	products := p.formulaList()
	p.expect(scan.Colon, ":")
	return &value.ReactionLit{Reactants: reactants, Products: products}
}

func (p *Parser) formulaList() []formula.Formula {
	var out []formula.Formula
	for {
		tok := p.expect(scan.Formula, "species formula")
		f, err := formula.Parse(tok.Text)
		if err != nil {
			panic(err)
		}
		out = append(out, f)
		if p.peek().Type == scan.Operator && p.peek().Text == "+" {
			p.next()
			continue
		}
		break
	}
	return out
}

func (p *Parser) orExpr() value.Expr {
	lhs := p.andExpr()
	for p.peek().Type == scan.Operator && p.peek().Text == "or" {
		p.next()
		rhs := p.andExpr()
		lhs = &value.BinaryExpr{Op: "or", Left: lhs, Right: rhs}
	}
	return lhs
}

func (p *Parser) andExpr() value.Expr {
	lhs := p.notExpr()
	for p.peek().Type == scan.Operator && p.peek().Text == "and" {
		p.next()
		rhs := p.notExpr()
		lhs = &value.BinaryExpr{Op: "and", Left: lhs, Right: rhs}
	}
	return lhs
}

func (p *Parser) notExpr() value.Expr {
	if p.peek().Type == scan.Operator && p.peek().Text == "not" {
		p.next()
		return &value.UnaryExpr{Op: "not", Right: p.notExpr()}
	}
	return p.equalityExpr()
}

func (p *Parser) equalityExpr() value.Expr {
	lhs := p.relExpr()
	for {
		t := p.peek()
		if t.Type != scan.Operator || (t.Text != "==" && t.Text != "!=") {
			return lhs
		}
		p.next()
		rhs := p.relExpr()
		lhs = &value.BinaryExpr{Op: t.Text, Left: lhs, Right: rhs}
	}
}

func (p *Parser) relExpr() value.Expr {
	lhs := p.rangeExpr()
	for {
		t := p.peek()
		if t.Type != scan.Operator || !isRelOp(t.Text) {
			return lhs
		}
		p.next()
		rhs := p.rangeExpr()
		lhs = &value.BinaryExpr{Op: t.Text, Left: lhs, Right: rhs}
	}
}

func isRelOp(s string) bool {
	switch s {
	case "<", "<=", ">", ">=":
		return true
	}
	return false
}

func (p *Parser) rangeExpr() value.Expr {
	lo := p.addExpr()
	if p.peek().Type == scan.Operator && p.peek().Text == ".." {
		p.next()
		hi := p.addExpr()
		return &value.RangeExpr{Lo: lo, Hi: hi}
	}
	return lo
}

func (p *Parser) addExpr() value.Expr {
	lhs := p.mulExpr()
	for {
		t := p.peek()
		if t.Type != scan.Operator || (t.Text != "+" && t.Text != "-") {
			return lhs
		}
		p.next()
		rhs := p.mulExpr()
		lhs = &value.BinaryExpr{Op: t.Text, Left: lhs, Right: rhs}
	}
}

func (p *Parser) mulExpr() value.Expr {
	lhs := p.unaryExpr()
	for {
		t := p.peek()
		if t.Type != scan.Operator || (t.Text != "*" && t.Text != "/" && t.Text != "%" && t.Text != "mod") {
			return lhs
		}
		p.next()
		rhs := p.unaryExpr()
		lhs = &value.BinaryExpr{Op: t.Text, Left: lhs, Right: rhs}
	}
}

var unaryFuncNames = map[string]bool{
	"abs": true, "sqrt": true, "ln": true, "log": true, "log2": true,
	"log10": true, "sin": true, "cos": true, "tan": true,
}

func (p *Parser) unaryExpr() value.Expr {
	t := p.peek()
	if t.Type == scan.Operator && (t.Text == "-" || t.Text == "+" || t.Text == "~") {
		p.next()
		return &value.UnaryExpr{Op: t.Text, Right: p.unaryExpr()}
	}
	if t.Type == scan.Identifier && unaryFuncNames[t.Text] {
		p.next()
		p.expect(scan.LeftParen, "(")
		arg := p.expression()
		p.expect(scan.RightParen, ")")
		return &value.UnaryExpr{Op: t.Text, Right: arg}
	}
	return p.powExpr()
}

// powExpr is right-associative: "a ** b ** c" is "a ** (b ** c)".
func (p *Parser) powExpr() value.Expr {
	lhs := p.primary()
	if p.peek().Type == scan.Operator && p.peek().Text == "**" {
		p.next()
		rhs := p.unaryExpr()
		return &value.BinaryExpr{Op: "**", Left: lhs, Right: rhs}
	}
	return lhs
}

// primary parses a literal, a parenthesized expression, a variable
// reference, or a call, then greedily attaches a trailing unit identifier
// and/or formula to a number literal ("50.00 g NaOH").
func (p *Parser) primary() value.Expr {
	// A missing operand at end of line is reported before the newline is
	// consumed, so errorf stops there and the next line still parses.
	if t := p.peek(); t.Type == scan.Newline || t.Type == scan.EOF {
		p.errorf("unexpected %s", t)
	}
	t := p.next()
	switch t.Type {
	case scan.Number:
		n, err := decimal.Parse(t.Text)
		if err != nil {
			panic(err)
		}
		lit := &value.NumberLit{Magnitude: n}
		if p.peek().Type == scan.Identifier && !isBoolLit(p.peek().Text) {
			lit.UnitName = p.next().Text
		}
		if p.peek().Type == scan.Formula {
			f, err := formula.Parse(p.next().Text)
			if err != nil {
				panic(err)
			}
			lit.Formula = &f
		}
		return lit
	case scan.String:
		return value.StringLit(unquote(t.Text))
	case scan.InterpString:
		body := strings.TrimSuffix(strings.TrimPrefix(t.Text, `s"`), `"`)
		return p.interpString(unescapeQuotes(body))
	case scan.DocString:
		return p.interpString(t.Text)
	case scan.Identifier:
		return p.identifierExpr(t)
	case scan.LeftParen:
		e := p.expression()
		p.expect(scan.RightParen, ")")
		return e
	case scan.Formula:
		p.errorf("formula %q may only follow a number or appear in a reaction/conversion", t.Text)
	}
	p.errorf("unexpected %s", t)
	return nil
}

func isBoolLit(s string) bool { return s == "pass" || s == "fail" }

func (p *Parser) identifierExpr(t scan.Token) value.Expr {
	name := strings.Trim(t.Text, "`")
	switch name {
	case "pass":
		return value.BoolLit(true)
	case "fail":
		return value.BoolLit(false)
	}
	if p.peek().Type == scan.LeftParen {
		p.next()
		var args []value.Expr
		for p.peek().Type != scan.RightParen {
			args = append(args, p.expression())
			if p.peek().Type == scan.Comma {
				p.next()
				continue
			}
			break
		}
		p.expect(scan.RightParen, ")")
		return &value.CallExpr{Name: name, Args: args}
	}
	return &value.VarExpr{Name: name}
}

// unquote strips a String token's surrounding quotes and resolves its
// backslash escapes.
func unquote(text string) string {
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	return unescapeQuotes(text)
}

// unescapeQuotes resolves only \" and \\, not \{ or \}, which interpString
// resolves itself once it has split the text into literal/{expr} parts.
func unescapeQuotes(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && (text[i+1] == '"' || text[i+1] == '\\') {
			i++
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// interpString splits raw s"..."/doc...done text into literal/{expr} parts,
// re-invoking a nested scanner+parser on each {...} span. "\{" and "\}"
// escape a literal brace.
func (p *Parser) interpString(text string) *value.InterpStringExpr {
	var parts []value.InterpExpr
	var lit strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\\' && i+1 < len(text) && (text[i+1] == '{' || text[i+1] == '}'):
			lit.WriteByte(text[i+1])
			i += 2
		case c == '{':
			depth := 1
			j := i + 1
			for j < len(text) && depth > 0 {
				switch text[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				j++
			}
			if depth != 0 {
				p.errorf("unterminated {expr} in interpolated string")
			}
			if lit.Len() > 0 {
				parts = append(parts, value.InterpExpr{Lit: lit.String()})
				lit.Reset()
			}
			sub := text[i+1 : j-1]
			parts = append(parts, value.InterpExpr{Expr: p.parseSubExpr(sub)})
			i = j
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if lit.Len() > 0 {
		parts = append(parts, value.InterpExpr{Lit: lit.String()})
	}
	return &value.InterpStringExpr{Parts: parts}
}
