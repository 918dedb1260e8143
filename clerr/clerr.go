// Package clerr defines CL's closed error taxonomy. Every evaluation error
// that can reach a user is one of the Kinds here, carries a source location
// when one is known, and is propagated as a panic of type *Error,
// mirroring ivy's value.Error/Errorf panic-recover channel.
package clerr

import "fmt"

// Kind is one member of the closed error taxonomy.
type Kind string

const (
	ScanError             Kind = "ScanError"
	ParseError             Kind = "ParseError"
	UnknownIdentifier       Kind = "UnknownIdentifier"
	UnknownUnit             Kind = "UnknownUnit"
	UnknownElement          Kind = "UnknownElement"
	FormulaParseError       Kind = "FormulaParseError"
	IncompatibleUnits       Kind = "IncompatibleUnits"
	IncompatibleFormulas    Kind = "IncompatibleFormulas"
	DivisionByZero          Kind = "DivisionByZero"
	UnbalanceableReaction   Kind = "UnbalanceableReaction"
	SpeciesNotInReaction    Kind = "SpeciesNotInReaction"
	ArityError              Kind = "ArityError"
	TypeError               Kind = "TypeError"
)

// Pos is a source location, attached to an error when the raising site knows
// one. The zero value means "unknown" and is omitted from String().
type Pos struct {
	File string
	Line int
}

func (p Pos) String() string {
	if p.File == "" && p.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Error is the single error type every evaluation failure in CL takes. It
// implements the builtin error interface so it can be returned normally from
// leaf packages (decimal, formula, units, quantity, reaction, convert) and
// also panics cleanly through exec's recover loop, the same two-faced role
// ivy's value.Error plays.
type Error struct {
	Kind Kind
	Pos  Pos
	Msg  string
}

func (e *Error) Error() string {
	if loc := e.Pos.String(); loc != "" {
		return fmt.Sprintf("%s: %s: %s", loc, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an *Error of the given kind with no known position; Context.Errorf
// (exec package) fills in Pos when panicking it up to the top level.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// At is like New but attaches a known source location.
func At(pos Pos, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// WithPos returns a copy of err with pos attached, unless err already carries one.
func WithPos(err *Error, pos Pos) *Error {
	if err.Pos.String() != "" {
		return err
	}
	cp := *err
	cp.Pos = pos
	return &cp
}

// Panic raises err as a panic, the mechanism every package above clerr uses
// to abort the current evaluation (ivy's value.Errorf idiom).
func Panic(kind Kind, format string, args ...interface{}) {
	panic(New(kind, format, args...))
}
