package converter

import "github.com/Veraticus/landconv/internal/landunit"

// Factors used when an effective unit cannot be resolved. A missing source
// contributes nothing; a missing target must never divide by zero.
const (
	unresolvedSourceFactor = 0.0
	unresolvedTargetFactor = 1.0
)

// Endpoint is one side of a conversion after validity correction.
type Endpoint struct {
	System     string
	StoredUnit string
	// Unit is the effective unit; empty when the system has no units.
	Unit     string
	Factor   float64
	Resolved bool
}

// Corrected reports whether the effective unit differs from the stored one.
func (e Endpoint) Corrected() bool {
	return e.Resolved && e.Unit != e.StoredUnit
}

// Conversion is everything derived from a Selection.
type Conversion struct {
	Source Endpoint
	Target Endpoint
	Amount float64
	Value  float64
}

// Convert derives the converted value and both reference factors from sel.
// It never fails: unknown systems and stale units fall back silently.
func Convert(table *landunit.Table, sel Selection) Conversion {
	src := resolve(table, sel.SourceSystem, sel.SourceUnit, unresolvedSourceFactor)
	dst := resolve(table, sel.TargetSystem, sel.TargetUnit, unresolvedTargetFactor)

	return Conversion{
		Source: src,
		Target: dst,
		Amount: sel.Amount,
		Value:  sel.Amount * src.Factor / dst.Factor,
	}
}

func resolve(table *landunit.Table, system, stored string, fallback float64) Endpoint {
	ep := Endpoint{
		System:     system,
		StoredUnit: stored,
		Factor:     fallback,
	}

	units := table.Units(system)
	unit, ok := EffectiveUnit(units, stored)
	if !ok {
		return ep
	}

	ep.Unit = unit
	if factor, found := units.Factor(unit); found {
		ep.Factor = factor
		ep.Resolved = true
	}
	return ep
}
