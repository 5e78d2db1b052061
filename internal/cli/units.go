package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/landconv/internal/common"
	"github.com/Veraticus/landconv/internal/display"
	"github.com/Veraticus/landconv/internal/landunit"
)

// WriteUnits prints the units of each named system with their square-feet
// factors. No names prints every system in declared order.
func WriteUnits(w io.Writer, table *landunit.Table, systems ...string) error {
	if len(systems) == 0 {
		systems = table.Systems()
	}

	for i, system := range systems {
		units := table.Units(system)
		if len(units) == 0 {
			return fmt.Errorf("%q: %w", system, common.ErrUnknownSystem)
		}

		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, StyleTitle(system)); err != nil {
			return err
		}
		if err := writeUnitRows(w, units); err != nil {
			return fmt.Errorf("failed to write units of %s: %w", system, err)
		}
	}
	return nil
}

// writeUnitRows aligns the rows with a tabwriter first and styles whole lines
// afterwards, so escape sequences never count towards column widths.
func writeUnitRows(w io.Writer, units landunit.Units) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)

	fmt.Fprintf(tw, "  UNIT\t%s PER UNIT\n", strings.ToUpper(landunit.BaseUnit))
	for _, unit := range units {
		fmt.Fprintf(tw, "  %s\t%s\n", unit.Name, display.Factor(unit.Factor, true))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			line = TableHeaderStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
