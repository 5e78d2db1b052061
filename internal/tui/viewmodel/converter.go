package viewmodel

import (
	"fmt"

	"github.com/Veraticus/landconv/internal/converter"
	"github.com/Veraticus/landconv/internal/display"
	"github.com/Veraticus/landconv/internal/landunit"
)

// BreakdownNote is the footer shown once either system has units.
const BreakdownNote = "Detailed breakdown available."

// unnamedTargetSystem stands in for a target system that was never chosen.
const unnamedTargetSystem = "State B"

// ConverterView is the display data of a conversion, already formatted.
type ConverterView struct {
	Result         string
	ResultCaption  string
	Source         ReferenceView
	Target         ReferenceView
	Footnote       string
	ShowReferences bool
}

// ReferenceView describes one "square feet per unit" panel.
type ReferenceView struct {
	Caption string
	Value   string
	// Corrected is set when the shown unit replaced a stale selection.
	Corrected bool
}

// NewConverterView formats a conversion for display.
func NewConverterView(conv converter.Conversion) ConverterView {
	targetSystem := conv.Target.System
	if targetSystem == "" {
		targetSystem = unnamedTargetSystem
	}

	view := ConverterView{
		Result:         display.Result(conv.Value),
		ResultCaption:  fmt.Sprintf("%s (in %s)", conv.Target.Unit, targetSystem),
		Source:         newReferenceView(conv.Source),
		Target:         newReferenceView(conv.Target),
		ShowReferences: conv.Source.System != "" && conv.Target.System != "",
	}
	if conv.Source.Resolved || conv.Target.Resolved {
		view.Footnote = BreakdownNote
	}
	return view
}

func newReferenceView(ep converter.Endpoint) ReferenceView {
	return ReferenceView{
		Caption:   fmt.Sprintf("1 %s (%s)", ep.Unit, ep.System),
		Value:     fmt.Sprintf("≈ %s %s", display.Factor(ep.Factor, ep.Resolved), landunit.BaseUnit),
		Corrected: ep.Corrected(),
	}
}
