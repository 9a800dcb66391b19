package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/coursebuilder/internal/config"
	"github.com/at-ishikawa/coursebuilder/internal/database"
	"github.com/at-ishikawa/coursebuilder/internal/legacy"
)

func newDatasyncCommand() *cobra.Command {
	var output string

	command := &cobra.Command{
		Use:   "datasync",
		Short: "Export the legacy schedule database into a schedule workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// config.Load, not loadConfig: the workbook this command
			// writes may not exist yet, and validation would reject a
			// schedule.workbook path with no file behind it.
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("config.Load() > %w", err)
			}

			workbook := output
			if workbook == "" {
				workbook = cfg.Schedule.Workbook
			}
			if workbook == "" {
				return fmt.Errorf("no workbook path to write; set schedule.workbook or --output")
			}

			db, err := database.Open(cfg.LegacyDB)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			exporter := legacy.NewExporter(legacy.NewDBScheduleRepository(db), os.Stdout)
			if _, err := exporter.Export(ctx, workbook, cfg.Schedule.Sheet); err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}
			return nil
		},
	}

	command.Flags().StringVar(&output, "output", "", "Workbook path to write (defaults to schedule.workbook)")
	return command
}
