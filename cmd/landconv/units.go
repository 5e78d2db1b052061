package main

import (
	"errors"

	"github.com/Veraticus/landconv/internal/cli"
	"github.com/Veraticus/landconv/internal/common"
	"github.com/Veraticus/landconv/internal/landunit"
	"github.com/spf13/cobra"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [system]",
		Short: "List unit systems and their square-feet factors",
		Long: `List every unit system with its units and the number of square feet in one
of each unit. Pass a system name to list only that system.`,
		Example: `  landconv units
  landconv units "West Bengal"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cli.WriteUnits(cmd.OutOrStdout(), landunit.Default(), args...)
			if errors.Is(err, common.ErrUnknownSystem) {
				return common.NewUserError("no such unit system", err)
			}
			return err
		},
	}
}
