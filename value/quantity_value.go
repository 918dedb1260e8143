package value

import "github.com/chem-lang/cl/quantity"

// QuantityVal is a Quantity wearing the Value interface. It is by far the
// most common Value in a running program: every number, measurement, and
// pass/fail result is one.
type QuantityVal struct {
	Q quantity.Quantity
}

func Q(q quantity.Quantity) QuantityVal { return QuantityVal{Q: q} }

func (v QuantityVal) String() string { return v.Q.String() }
func (v QuantityVal) Truthy() bool   { return v.Q.Truthy() }

// AsQuantity type-asserts v as a QuantityVal, raising a TypeError through
// ctx if it isn't one.
func AsQuantity(ctx Context, v Value, what string) quantity.Quantity {
	q, ok := v.(QuantityVal)
	if !ok {
		ctx.Errorf("%s must be a quantity, got %s", what, v.String())
	}
	return q.Q
}
