package value

import "fmt"

// Interval is an inclusive integer range, the value a loop header's
// "a..b" bound evaluates to.
type Interval struct {
	Lo, Hi int64
}

func (iv Interval) String() string { return fmt.Sprintf("%d..%d", iv.Lo, iv.Hi) }
func (iv Interval) Truthy() bool   { return iv.Lo <= iv.Hi }
