package parse

import (
	"strings"

	"github.com/chem-lang/cl/scan"
	"github.com/chem-lang/cl/value"
)

// statement parses one top-level or nested statement: a compound form
// (if/loop/work) or a bare expression statement.
func (p *Parser) statement() value.Expr {
	if p.peek().Type == scan.Identifier {
		switch p.peek().Text {
		case "if":
			return p.ifStmt()
		case "loop":
			return p.loopStmt()
		case "work":
			return p.workDef()
		}
	}
	e := p.expression()
	p.endOfStatement()
	return e
}

// endOfStatement consumes the Newline (or accepts EOF/Dedent, or a
// following "else", none of which it consumes), any of which terminate a
// one-line form embedded inside another construct, such as the "then" half
// of "if cond: then else: else").
func (p *Parser) endOfStatement() {
	t := p.peek()
	switch {
	case t.Type == scan.Newline:
		p.next()
	case t.Type == scan.EOF, t.Type == scan.Dedent:
		// nothing to consume
	case t.Type == scan.Identifier && t.Text == "else":
		// leave "else" for ifStmt to consume
	default:
		p.errorf("expected end of statement, got %s", t)
	}
}

// block parses either an indented suite (Colon Newline Indent stmt* Dedent)
// or a one-line form (Colon stmt), per §6's "one-line statement forms
// bypass indentation".
func (p *Parser) block() value.Block {
	p.expect(scan.Colon, ":")
	if p.peek().Type == scan.Newline {
		p.next()
		p.expect(scan.Indent, "indent")
		var stmts value.Block
		for p.peek().Type != scan.Dedent {
			for p.peek().Type == scan.Newline {
				p.next()
			}
			if p.peek().Type == scan.Dedent {
				break
			}
			stmts = append(stmts, p.statement())
		}
		p.next() // consume Dedent
		return stmts
	}
	return value.Block{p.statement()}
}

// ifStmt parses "if cond: THEN" with an optional "else: ELSE", either form
// using the one-line-or-indented block rule independently for THEN and
// ELSE.
func (p *Parser) ifStmt() value.Expr {
	p.next() // "if"
	// A condition is never an assignment or a conversion chain, so parsing
	// stops below convertExpr; otherwise the block's own opening ':'
	// would be misread as a reaction literal's leading colon.
	cond := p.orExpr()
	then := p.block()
	stmt := &value.IfStmt{Cond: cond, Then: then}
	if p.peek().Type == scan.Identifier && p.peek().Text == "else" {
		p.next()
		stmt.Else = p.block()
	}
	return stmt
}

// loopStmt parses "loop x in a..b: BODY".
func (p *Parser) loopStmt() value.Expr {
	p.next() // "loop"
	name := p.expect(scan.Identifier, "loop variable")
	if p.peek().Type != scan.Identifier || p.peek().Text != "in" {
		p.errorf("expected 'in', got %s", p.peek())
	}
	p.next()
	// Same reasoning as ifStmt's cond: a loop range is never an assignment
	// or conversion chain, so stop below convertExpr.
	rng := p.orExpr()
	body := p.block()
	return &value.LoopStmt{Var: strings.Trim(name.Text, "`"), Range: rng, Body: body}
}

// workDef parses "work name(p1, p2): BODY".
func (p *Parser) workDef() value.Expr {
	p.next() // "work"
	name := p.expect(scan.Identifier, "work name")
	p.expect(scan.LeftParen, "(")
	var params []string
	for p.peek().Type != scan.RightParen {
		param := p.expect(scan.Identifier, "parameter name")
		params = append(params, strings.Trim(param.Text, "`"))
		if p.peek().Type == scan.Comma {
			p.next()
			continue
		}
		break
	}
	p.expect(scan.RightParen, ")")
	body := p.block()
	return &value.WorkDef{Name: strings.Trim(name.Text, "`"), Params: params, Body: body}
}

// parseSubExpr parses one expression out of a nested {expr} span lifted
// from an interpolated string, using a fresh scanner over just that text.
func (p *Parser) parseSubExpr(src string) value.Expr {
	sc := scan.New(p.conf, p.fileName, strings.NewReader(src))
	sub := NewParser(sc, p.conf, p.fileName)
	e := sub.expression()
	for range sc.Tokens {
		// drain so the scanner's goroutine can exit once it hits EOF
	}
	return e
}
