// Package converter holds the selection state of a land-area conversion and
// derives the converted value from it.
package converter

import (
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/landconv/internal/landunit"
)

// Initial selection values.
const (
	DefaultSourceSystem = landunit.SystemStandard
	DefaultSourceUnit   = "Acre"
	DefaultTargetSystem = landunit.SystemUttarPradesh
	DefaultTargetUnit   = "Bigha"
	DefaultAmount       = 1.0
)

// Selection is the user's current choice of systems, units and amount.
//
// The stored units are kept exactly as chosen, even when a later system
// change makes them invalid for that system. The unit actually used is
// resolved when reading, see EffectiveUnit.
type Selection struct {
	SourceSystem string
	SourceUnit   string
	TargetSystem string
	TargetUnit   string
	Amount       float64
}

// DefaultSelection returns the selection a new form starts with.
func DefaultSelection() Selection {
	return Selection{
		SourceSystem: DefaultSourceSystem,
		SourceUnit:   DefaultSourceUnit,
		TargetSystem: DefaultTargetSystem,
		TargetUnit:   DefaultTargetUnit,
		Amount:       DefaultAmount,
	}
}

// SetSourceSystem replaces the source system. The stored source unit is left alone.
func (s *Selection) SetSourceSystem(name string) {
	s.SourceSystem = name
}

// SetTargetSystem replaces the target system. The stored target unit is left alone.
func (s *Selection) SetTargetSystem(name string) {
	s.TargetSystem = name
}

// SetSourceUnit replaces the source unit.
func (s *Selection) SetSourceUnit(name string) {
	s.SourceUnit = name
}

// SetTargetUnit replaces the target unit.
func (s *Selection) SetTargetUnit(name string) {
	s.TargetUnit = name
}

// SetAmount stores the parsed amount, or 0 if text is not a finite number.
func (s *Selection) SetAmount(text string) {
	s.Amount = ParseAmount(text)
}

// Swap exchanges the stored source and target selections.
func (s *Selection) Swap() {
	s.SourceSystem, s.TargetSystem = s.TargetSystem, s.SourceSystem
	s.SourceUnit, s.TargetUnit = s.TargetUnit, s.SourceUnit
}

// ParseAmount parses user input as a float. Anything that does not parse to a
// finite number yields 0.
func ParseAmount(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// EffectiveUnit resolves the unit used for a stored selection: the stored
// unit when the mapping has it, otherwise the mapping's first unit. It
// reports false only when the mapping is empty.
func EffectiveUnit(units landunit.Units, stored string) (string, bool) {
	if units.Has(stored) {
		return stored, true
	}
	first, ok := units.First()
	if !ok {
		return "", false
	}
	return first.Name, true
}
