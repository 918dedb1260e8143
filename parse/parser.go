// Package parse turns a scan.Scanner's token channel into the value
// package's Expr/statement AST. A plain recursive-descent expression
// parser (precedence climbing for the binary operators) sits underneath a
// statement parser that understands CL's indentation-delimited blocks.
//
// Grounded on ivy's parse.go Parser: a single-token pushback buffer pulled
// from the scanner's channel, plus errorf flushing to the next newline on
// a syntax error so one bad line doesn't cascade into a wall of spurious
// ones.
package parse

import (
	"fmt"

	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/config"
	"github.com/chem-lang/cl/scan"
	"github.com/chem-lang/cl/value"
)

// Parser holds parse state for one input.
type Parser struct {
	scanner  *scan.Scanner
	conf     *config.Config
	fileName string
	lineNum  int
	peekTok  scan.Token
	hasPeek  bool
}

// NewParser returns a parser reading from scanner. A number literal's
// trailing identifier is attached as its unit name purely syntactically;
// the name is resolved against the real unit registry at eval time, inside
// ConvertExpr/NumberLit.Eval, so the parser itself never needs one. conf is
// threaded through to the nested scanners interpolated strings spin up for
// their {expr} spans.
func NewParser(scanner *scan.Scanner, conf *config.Config, fileName string) *Parser {
	return &Parser{scanner: scanner, conf: conf, fileName: fileName}
}

// fetch pulls the next token off the scanner's channel, converting a
// scanner-level Error token straight into a panic so a bad character never
// has to be special-cased by every parsing function that might see one.
func (p *Parser) fetch() scan.Token {
	tok := <-p.scanner.Tokens
	if tok.Type == scan.Error {
		clerr.Panic(clerr.ScanError, "%s:%d: %s", p.fileName, p.lineNum, tok.Text)
	}
	return tok
}

func (p *Parser) next() scan.Token {
	var tok scan.Token
	if p.hasPeek {
		p.hasPeek = false
		tok = p.peekTok
	} else {
		tok = p.fetch()
	}
	if tok.Type == scan.Newline {
		p.lineNum++
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if !p.hasPeek {
		p.peekTok = p.fetch()
		p.hasPeek = true
	}
	return p.peekTok
}

func (p *Parser) errorf(format string, args ...interface{}) {
	for {
		t := p.peek()
		if t.Type == scan.Newline || t.Type == scan.EOF {
			break
		}
		p.next()
	}
	clerr.Panic(clerr.ParseError, "%s:%d: %s", p.fileName, p.lineNum, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(t scan.Type, what string) scan.Token {
	tok := p.next()
	if tok.Type != t {
		p.errorf("expected %s, got %s", what, tok)
	}
	return tok
}

// Program parses the whole input into a top-level statement list.
func (p *Parser) Program() value.Block {
	var stmts value.Block
	for {
		stmt, ok := p.NextStatement()
		if !ok {
			break
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// NextStatement parses one top-level statement, skipping blank lines.
// ok is false at end of input: the driver loop's signal to stop.
func (p *Parser) NextStatement() (stmt value.Expr, ok bool) {
	for p.peek().Type == scan.Newline {
		p.next()
	}
	if p.peek().Type == scan.EOF {
		return nil, false
	}
	return p.statement(), true
}

// Line reports the 1-based source line the next unconsumed token starts
// on, for a Context's SetPos before evaluating that statement.
func (p *Parser) Line() int { return p.lineNum + 1 }

// FileName is the input name this parser was constructed with.
func (p *Parser) FileName() string { return p.fileName }
