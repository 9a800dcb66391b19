package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/coursebuilder/internal/canvas"
)

func newDeleteCommand() *cobra.Command {
	var pagesOnly bool
	var assignmentsOnly bool
	var deleteAll bool

	command := &cobra.Command{
		Use:   "delete",
		Short: "Delete the generated pages and assignments from the Canvas course",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Canvas.AccessToken == "" {
				return fmt.Errorf("CANVAS_ACCESS_TOKEN environment variable is required")
			}
			if cfg.Canvas.CourseID == "" {
				return fmt.Errorf("a Canvas course ID is required; set canvas.course_id or the COURSE_ID environment variable")
			}

			scope := canvas.DeleteScope{Pages: pagesOnly, Assignments: assignmentsOnly}
			if deleteAll || (!pagesOnly && !assignmentsOnly) {
				scope = canvas.DeleteScopeAll
			}

			client := canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.CourseID, cfg.Canvas.AccessToken, cfg.Canvas.RetryAttempts)
			deleter := canvas.NewDeleter(client, os.Stdin, os.Stdout)
			if _, _, err := deleter.DeleteMatching(cmd.Context(), scope); err != nil {
				return fmt.Errorf("deleter.DeleteMatching() > %w", err)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&pagesOnly, "pages", false, "Delete only the generated pages")
	command.Flags().BoolVar(&assignmentsOnly, "assignments", false, "Delete only the generated assignments")
	command.Flags().BoolVar(&deleteAll, "all", false, "Delete both the generated pages and assignments (the default when no flag is set)")
	return command
}
