package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/coursebuilder/internal/canvas"
	"github.com/at-ishikawa/coursebuilder/internal/course"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

func newValidateCommand() *cobra.Command {
	var checkLinks bool

	command := &cobra.Command{
		Use:   "validate",
		Short: "Validate the schedule workbook and course metadata for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rows, metadata, err := loadCourseInputs(cfg)
			if err != nil {
				return err
			}

			validator := course.NewValidator(cfg.Schedule.Workbook, rows, metadata)
			result, err := validator.Validate()
			if err != nil {
				return fmt.Errorf("validator.Validate() > %w", err)
			}

			if checkLinks {
				// The calendar only carries real links once they are
				// resolved against the Canvas course files.
				links := &courseLinks{}
				if cfg.Canvas.AccessToken != "" && cfg.Canvas.CourseID != "" {
					client := canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.CourseID, cfg.Canvas.AccessToken, cfg.Canvas.RetryAttempts)
					links, err = resolveCourseLinks(cmd.Context(), client, syllabusPatterns(cfg), metadata)
					if err != nil {
						return err
					}
				}
				calendar, err := metadata.BuildCalendar(rows, schedule.BuildOptions{
					CourseBaseURL:  cfg.Canvas.BaseURL,
					CourseID:       cfg.Canvas.CourseID,
					SampleQuizURLs: links.sampleQuizURLs,
				})
				if err != nil {
					return fmt.Errorf("metadata.BuildCalendar() > %w", err)
				}
				calendar.IconURLs = links.iconURLs

				checker := course.NewLinkChecker(cfg.Canvas.RetryAttempts)
				defer func() {
					_ = checker.Close()
				}()

				urls := course.CollectCalendarURLs(calendar)
				fmt.Printf("Checking %d links...\n", len(urls))
				checker.Check(cmd.Context(), urls, result)
			}

			displayValidationResults(result)

			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)",
					len(result.ScheduleErrors)+len(result.MetadataErrors))
			}
			return nil
		},
	}

	command.Flags().BoolVar(&checkLinks, "links", false, "Also check that links referenced by the calendar respond")
	return command
}

func displayValidationResults(result *course.ValidationResult) {
	totalErrors := len(result.ScheduleErrors) + len(result.MetadataErrors)
	totalWarnings := len(result.Warnings)

	fmt.Println("\n=== Validation Results ===")

	if len(result.ScheduleErrors) > 0 {
		fmt.Printf("✗ Schedule Validation Errors (%d):\n", len(result.ScheduleErrors))
		for _, err := range result.ScheduleErrors {
			fmt.Printf("  - %s\n", err.Error())
		}
		fmt.Println()
	}

	if len(result.MetadataErrors) > 0 {
		fmt.Printf("✗ Metadata Validation Errors (%d):\n", len(result.MetadataErrors))
		for _, err := range result.MetadataErrors {
			fmt.Printf("  - %s\n", err.Error())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("⚠ Warnings (%d):\n", len(result.Warnings))
		for _, warn := range result.Warnings {
			fmt.Printf("  - %s\n", warn.Error())
		}
		fmt.Println()
	}

	fmt.Println("=== Summary ===")
	if totalErrors == 0 && totalWarnings == 0 {
		fmt.Println("✓ All validations passed!")
	} else {
		if totalErrors > 0 {
			fmt.Printf("✗ Total errors: %d\n", totalErrors)
		}
		if totalWarnings > 0 {
			fmt.Printf("⚠ Total warnings: %d\n", totalWarnings)
		}
	}
	fmt.Println()
}
