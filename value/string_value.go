package value

// StringVal is a plain or interpolated string literal's evaluated result:
// interpolation has already been spliced in by the time one of these
// exists (see InterpStringExpr.Eval, which serves both s"..." literals and
// doc strings).
type StringVal string

func (s StringVal) String() string { return string(s) }
func (s StringVal) Truthy() bool   { return s != "" }

// PathVal names a filesystem destination for the "-> |path|" sink. Kept
// distinct from StringVal so the parser and the sink operator can tell a
// bare string from a path literal without re-parsing the text.
type PathVal string

func (p PathVal) String() string { return string(p) }
func (p PathVal) Truthy() bool   { return p != "" }
