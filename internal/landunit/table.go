// Package landunit holds the land-area conversion table: named unit systems,
// each an ordered set of units expressed in square feet.
package landunit

import (
	"fmt"

	"github.com/Veraticus/landconv/internal/common"
)

// BaseUnit is the unit every factor is expressed in.
const BaseUnit = "Sq. Ft"

// Unit is a named land unit and the number of square feet in one of it.
type Unit struct {
	Name   string
	Factor float64
}

// Units is the ordered unit mapping of a single system. The first entry is the
// unit a system falls back to when a selection is not valid for it.
type Units []Unit

// Factor returns the square-feet factor for the named unit.
func (u Units) Factor(name string) (float64, bool) {
	for _, unit := range u {
		if unit.Name == name {
			return unit.Factor, true
		}
	}
	return 0, false
}

// Has reports whether the named unit is part of the mapping.
func (u Units) Has(name string) bool {
	_, ok := u.Factor(name)
	return ok
}

// First returns the first unit in declared order.
func (u Units) First() (Unit, bool) {
	if len(u) == 0 {
		return Unit{}, false
	}
	return u[0], true
}

// Names returns the unit names in declared order.
func (u Units) Names() []string {
	names := make([]string, len(u))
	for i, unit := range u {
		names[i] = unit.Name
	}
	return names
}

// System is a named grouping of units sharing a regional or standard basis.
type System struct {
	Name  string
	Units Units
}

// Table is an immutable, ordered set of unit systems.
type Table struct {
	index   map[string]int
	systems []System
}

// New builds a table from the given systems, preserving their order.
// Every system needs at least one unit and every factor must be positive.
func New(systems ...System) (*Table, error) {
	t := &Table{
		systems: make([]System, 0, len(systems)),
		index:   make(map[string]int, len(systems)),
	}

	for _, sys := range systems {
		if _, dup := t.index[sys.Name]; dup {
			return nil, fmt.Errorf("system %q: %w", sys.Name, common.ErrDuplicateName)
		}
		if err := validateSystem(sys); err != nil {
			return nil, err
		}

		units := make(Units, len(sys.Units))
		copy(units, sys.Units)

		t.index[sys.Name] = len(t.systems)
		t.systems = append(t.systems, System{Name: sys.Name, Units: units})
	}

	return t, nil
}

func validateSystem(sys System) error {
	if len(sys.Units) == 0 {
		return fmt.Errorf("system %q: %w", sys.Name, common.ErrEmptySystem)
	}

	seen := make(map[string]struct{}, len(sys.Units))
	for _, unit := range sys.Units {
		if _, dup := seen[unit.Name]; dup {
			return fmt.Errorf("system %q unit %q: %w", sys.Name, unit.Name, common.ErrDuplicateName)
		}
		seen[unit.Name] = struct{}{}

		// The negated comparison also rejects NaN.
		if !(unit.Factor > 0) {
			return fmt.Errorf("system %q unit %q (%v): %w", sys.Name, unit.Name, unit.Factor, common.ErrInvalidFactor)
		}
	}
	return nil
}

// Units returns the unit mapping of the named system, or an empty mapping if
// the system is unknown. The returned slice must not be modified.
func (t *Table) Units(system string) Units {
	i, ok := t.index[system]
	if !ok {
		return nil
	}
	return t.systems[i].Units
}

// Has reports whether the named system exists.
func (t *Table) Has(system string) bool {
	_, ok := t.index[system]
	return ok
}

// Systems returns the system names in declared order.
func (t *Table) Systems() []string {
	names := make([]string, len(t.systems))
	for i, sys := range t.systems {
		names[i] = sys.Name
	}
	return names
}

// Factor returns the square-feet factor of a unit within a system.
func (t *Table) Factor(system, unit string) (float64, bool) {
	return t.Units(system).Factor(unit)
}

// Lookup resolves a system and unit pair, reporting which part is unknown.
func (t *Table) Lookup(system, unit string) (float64, error) {
	if !t.Has(system) {
		return 0, fmt.Errorf("%q: %w", system, common.ErrUnknownSystem)
	}
	factor, ok := t.Factor(system, unit)
	if !ok {
		return 0, fmt.Errorf("%q in %q: %w", unit, system, common.ErrUnknownUnit)
	}
	return factor, nil
}
