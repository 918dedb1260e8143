// Package convert implements CL's "->" operator: direct dimensional
// conversion, formula-mediated conversion (mass <-> moles <-> atoms via
// molar mass and Avogadro's number), and reaction-mediated conversion
// (crossing from one species to another via a balanced reaction's
// coefficient ratio). A chained "a -> b -> c" is just repeated application
// by the caller, left to right, one Convert call per arrow.
package convert

import (
	"github.com/chem-lang/cl/clerr"
	"github.com/chem-lang/cl/decimal"
	"github.com/chem-lang/cl/formula"
	"github.com/chem-lang/cl/quantity"
	"github.com/chem-lang/cl/reaction"
	"github.com/chem-lang/cl/units"
)

// Target is the right-hand side of one "->" step: a unit, a formula
// relabel, or a unit applied to a formula ("g CuSO4" reads as "grams,
// labeled CuSO4").
type Target struct {
	Unit    *units.Unit
	Formula *formula.Formula
}

// Convert applies one "->" step to q. rxn, when non-nil, must already be
// balanced; the evaluator balances each step's reaction literal (through
// value.ReactionVal) before calling Convert.
func Convert(q quantity.Quantity, target Target, rxn *reaction.Reaction, reg *units.Registry) (quantity.Quantity, error) {
	if rxn != nil {
		return convertViaReaction(q, target, *rxn, reg)
	}
	if target.Formula != nil && target.Unit == nil {
		return relabel(q, *target.Formula)
	}
	if target.Unit != nil {
		out, err := convertUnit(q, *target.Unit, reg)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if target.Formula != nil {
			out.Formula = target.Formula
		}
		return out, nil
	}
	return quantity.Quantity{}, clerr.New(clerr.TypeError, "conversion target must name a unit or a formula")
}

// relabel handles "-> F'" with no reaction: the source and target formulas
// must already be equal, it is a pure relabeling, not a stoichiometric hop.
func relabel(q quantity.Quantity, target formula.Formula) (quantity.Quantity, error) {
	if q.Formula == nil || !q.Formula.Equal(target) {
		got := "no formula"
		if q.Formula != nil {
			got = q.Formula.String()
		}
		return quantity.Quantity{}, clerr.New(clerr.IncompatibleFormulas, "cannot relabel %s as %s", got, target.String())
	}
	out := q
	out.Formula = &target
	return out, nil
}

// convertUnit applies a direct scale conversion when the dimensions match,
// else falls back to a formula-mediated hop when the source carries a
// formula. Tie-break: a formula-mediated path is always preferred over
// re-interpreting the raw magnitude once the dimensions actually differ.
func convertUnit(q quantity.Quantity, target units.Unit, reg *units.Registry) (quantity.Quantity, error) {
	if q.Unit.Convertible(target) {
		mag := rescaleTo(q.Magnitude, q.Unit, target)
		mag.SigFigs = q.Magnitude.SigFigs
		mag.Decimals = q.Magnitude.Decimals
		return quantity.Quantity{Magnitude: mag, Unit: target, Formula: q.Formula}, nil
	}
	if q.Formula != nil {
		return formulaHop(q, target, reg)
	}
	return quantity.Quantity{}, clerr.New(clerr.IncompatibleUnits, "%q and %q are not convertible", q.Unit.Symbol, target.Symbol)
}

func rescaleTo(m decimal.Num, from, to units.Unit) decimal.Num {
	return m.Mul(from.RatioTo(to))
}

// formulaHop implements the mass<->moles<->atoms chain: convert q to moles,
// then from moles to whatever dimension target lives in. Molar mass is
// clamped to sig_figs = max(4, sig_figs(source)) so it never limits the
// precision of the source value; the final result's sig_figs is always the
// source's, not the molar mass's or any intermediate's.
func formulaHop(q quantity.Quantity, target units.Unit, reg *units.Registry) (quantity.Quantity, error) {
	molar, err := q.Formula.MolarMass(q.Magnitude.SigFigs)
	if err != nil {
		return quantity.Quantity{}, err
	}
	moles, err := toMoles(q, molar, reg)
	if err != nil {
		return quantity.Quantity{}, err
	}
	out, err := fromMoles(moles, q.Formula, target, molar, reg)
	if err != nil {
		return quantity.Quantity{}, err
	}
	out.Magnitude.SigFigs = q.Magnitude.SigFigs
	return out, nil
}

// toMoles reduces q's magnitude to a mole count, regardless of whether q
// is currently mass-, amount-, or atom-dimensioned.
func toMoles(q quantity.Quantity, molar decimal.Num, reg *units.Registry) (decimal.Num, error) {
	switch {
	case q.Unit.IsMass():
		grams := rescaleTo(q.Magnitude, q.Unit, reg.MustLookup("g"))
		return grams.Div(molar), nil
	case q.Unit.IsAmount():
		return rescaleTo(q.Magnitude, q.Unit, reg.MustLookup("mol")), nil
	case q.Unit.IsAtom:
		return q.Magnitude.Div(units.AvogadroNumber), nil
	default:
		return decimal.Num{}, clerr.New(clerr.IncompatibleUnits, "%q cannot be expressed as a mole count", q.Unit.Symbol)
	}
}

// fromMoles expands a mole count back out into whatever dimension target
// lives in.
func fromMoles(moles decimal.Num, f *formula.Formula, target units.Unit, molar decimal.Num, reg *units.Registry) (quantity.Quantity, error) {
	switch {
	case target.IsMass():
		grams := moles.Mul(molar)
		mag := rescaleTo(grams, reg.MustLookup("g"), target)
		return quantity.Quantity{Magnitude: mag, Unit: target, Formula: f}, nil
	case target.IsAmount():
		mag := rescaleTo(moles, reg.MustLookup("mol"), target)
		return quantity.Quantity{Magnitude: mag, Unit: target, Formula: f}, nil
	case target.IsAtom:
		atoms := moles.Mul(units.AvogadroNumber)
		return quantity.Quantity{Magnitude: atoms, Unit: target, Formula: f}, nil
	default:
		return quantity.Quantity{}, clerr.New(clerr.IncompatibleUnits, "formula-mediated conversion cannot reach unit %q", target.Symbol)
	}
}

// convertViaReaction implements the reaction-mediated hop: convert q to
// moles of its own formula, scale by the coefficient ratio between the
// source and target species, relabel to the target formula, then (if a
// unit was also requested) expand back out via formulaHop's mass/mole/atom
// logic using the target formula's own molar mass.
func convertViaReaction(q quantity.Quantity, target Target, rxn reaction.Reaction, reg *units.Registry) (quantity.Quantity, error) {
	if q.Formula == nil {
		return quantity.Quantity{}, clerr.New(clerr.SpeciesNotInReaction, "source quantity has no formula")
	}
	if target.Formula == nil {
		return quantity.Quantity{}, clerr.New(clerr.TypeError, "reaction-mediated conversion requires a target formula")
	}

	srcCoeff, onReactantSide, err := sideOf(rxn, *q.Formula)
	if err != nil {
		return quantity.Quantity{}, err
	}
	dstCoeff, err := oppositeCoeff(rxn, *target.Formula, onReactantSide)
	if err != nil {
		return quantity.Quantity{}, err
	}

	molar, err := q.Formula.MolarMass(q.Magnitude.SigFigs)
	if err != nil {
		return quantity.Quantity{}, err
	}
	moles, err := toMoles(q, molar, reg)
	if err != nil {
		return quantity.Quantity{}, err
	}

	ratio := decimal.FromInt(int64(dstCoeff)).Div(decimal.FromInt(int64(srcCoeff)))
	scaledMoles := moles.Mul(ratio)

	dstMolar, err := target.Formula.MolarMass(q.Magnitude.SigFigs)
	if err != nil {
		return quantity.Quantity{}, err
	}

	outUnit := target.Unit
	if outUnit == nil {
		mol := reg.MustLookup("mol")
		outUnit = &mol
	}
	out, err := fromMoles(scaledMoles, target.Formula, *outUnit, dstMolar, reg)
	if err != nil {
		return quantity.Quantity{}, err
	}
	out.Magnitude.SigFigs = q.Magnitude.SigFigs
	return out, nil
}

func sideOf(rxn reaction.Reaction, f formula.Formula) (coeff int, onReactantSide bool, err error) {
	if i, ok := rxn.IndexOfReactant(f); ok {
		return rxn.Reactants[i].Coefficient, true, nil
	}
	if i, ok := rxn.IndexOfProduct(f); ok {
		return rxn.Products[i].Coefficient, false, nil
	}
	return 0, false, clerr.New(clerr.SpeciesNotInReaction, "%s is not a species in this reaction", f.String())
}

func oppositeCoeff(rxn reaction.Reaction, f formula.Formula, sourceOnReactantSide bool) (int, error) {
	if sourceOnReactantSide {
		if i, ok := rxn.IndexOfProduct(f); ok {
			return rxn.Products[i].Coefficient, nil
		}
	} else {
		if i, ok := rxn.IndexOfReactant(f); ok {
			return rxn.Reactants[i].Coefficient, nil
		}
	}
	return 0, clerr.New(clerr.SpeciesNotInReaction, "%s is not on the opposite side of this reaction", f.String())
}
