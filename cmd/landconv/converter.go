package main

import (
	"github.com/Veraticus/landconv/internal/common"
	"github.com/Veraticus/landconv/internal/landunit"
	"github.com/Veraticus/landconv/internal/tui"
	"github.com/Veraticus/landconv/internal/tui/themes"
	"github.com/spf13/cobra"
)

// runConverter opens the interactive converter form.
func (a *app) runConverter(cmd *cobra.Command, _ []string) error {
	table := landunit.Default()

	sel, err := a.settings.Start.Selection(table)
	if err != nil {
		return common.NewUserError("invalid starting units", err)
	}

	theme, err := themes.ByName(a.settings.UI.Theme)
	if err != nil {
		return common.NewUserError("invalid theme", err)
	}

	altScreen := a.settings.UI.AltScreen
	if noAlt, _ := cmd.Flags().GetBool("no-alt-screen"); noAlt {
		altScreen = false
	}

	common.LogDebug("Opening converter", common.Fields{
		"from":   sel.SourceSystem + "/" + sel.SourceUnit,
		"to":     sel.TargetSystem + "/" + sel.TargetUnit,
		"amount": sel.Amount,
		"theme":  theme.Name,
	})

	return tui.Run(cmd.Context(),
		tui.WithTable(table),
		tui.WithTheme(theme),
		tui.WithSelection(sel),
		tui.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
		tui.WithAltScreen(altScreen),
		tui.WithKeepLogs(a.settings.Logging.File != ""),
		tui.WithRecordDir(a.settings.UI.RecordDir),
	)
}
