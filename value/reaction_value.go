package value

import "github.com/chem-lang/cl/reaction"

// ReactionVal wraps a reaction literal. It starts as a skeleton (no
// coefficients) and balances itself once, lazily, the first time it is
// its Balanced method is called; the result is cached on this ReactionVal,
// since balancing is the most expensive single operation in the language.
// Each evaluation of a reaction literal builds a new ReactionVal, so the
// cache lasts only as long as that value.
type ReactionVal struct {
	Skeleton reaction.Reaction
	balanced *reaction.Reaction
}

func NewReactionVal(skeleton reaction.Reaction) *ReactionVal {
	return &ReactionVal{Skeleton: skeleton}
}

func (r *ReactionVal) Balanced() (reaction.Reaction, error) {
	if r.balanced != nil {
		return *r.balanced, nil
	}
	b, err := reaction.Balance(r.Skeleton)
	if err != nil {
		return reaction.Reaction{}, err
	}
	r.balanced = &b
	return b, nil
}

func (r *ReactionVal) String() string {
	if r.balanced != nil {
		return r.balanced.String()
	}
	return r.Skeleton.String()
}

func (r *ReactionVal) Truthy() bool { return true }
