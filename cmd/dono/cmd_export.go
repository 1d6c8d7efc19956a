package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klabast/dono/internal/calendar"
)

var exportFormat string

// exportCmd writes the normalized calendar instead of the heatmap
var exportCmd = &cobra.Command{
	Use:   "export USER_NAME",
	Short: "Export the contribution calendar as CSV or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func initExportFlags() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format: csv or json")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("invalid --format %q: use csv or json", exportFormat)
	}

	cfg, ok, err := loadConfig(cmd)
	if err != nil || !ok {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cal, err := fetchCalendar(cfg, args[0])
	if err != nil {
		return err
	}

	if exportFormat == "json" {
		return calendar.WriteJSON(cmd.OutOrStdout(), args[0], cal)
	}
	return calendar.WriteCSV(cmd.OutOrStdout(), cal)
}
