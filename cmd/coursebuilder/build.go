package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/coursebuilder/internal/canvas"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
	"github.com/at-ishikawa/coursebuilder/internal/site"
)

func newBuildCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "build",
		Short: "Build the weekly, homework, quiz and checkout pages from the schedule workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Canvas.CourseID == "" {
				return fmt.Errorf("a Canvas course ID is required; set canvas.course_id or the COURSE_ID environment variable")
			}

			rows, metadata, err := loadCourseInputs(cfg)
			if err != nil {
				return err
			}

			// Pages link to sample quizzes, images and syllabus PDFs
			// hosted on Canvas. Those lookups need an access token;
			// without one the pages are built with placeholder links.
			links := &courseLinks{}
			if cfg.Canvas.AccessToken != "" {
				client := canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.CourseID, cfg.Canvas.AccessToken, cfg.Canvas.RetryAttempts)
				links, err = resolveCourseLinks(ctx, client, syllabusPatterns(cfg), metadata)
				if err != nil {
					return err
				}
			} else {
				fmt.Println("No CANVAS_ACCESS_TOKEN set; building with placeholder links.")
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

			builder, err := site.NewBuilder(calendar, rows, metadata, site.BuilderOptions{
				CourseBaseURL: cfg.Canvas.BaseURL,
				CourseID:      cfg.Canvas.CourseID,
				UniqueID:      site.NewBuildID(),
				OutputDir:     cfg.Outputs.Directory,
				TemplatesDir:  cfg.Outputs.TemplatesDirectory,
			})
			if err != nil {
				return fmt.Errorf("site.NewBuilder() > %w", err)
			}
			if err := site.SaveSnapshot(builder.OutputDir(), calendar); err != nil {
				return fmt.Errorf("site.SaveSnapshot() > %w", err)
			}

			files, err := builder.BuildAll(links.pdfURLs)
			if err != nil {
				return fmt.Errorf("builder.BuildAll() > %w", err)
			}

			fmt.Printf("Built %d pages for %d weeks:\n", len(files), len(calendar.Weeks))
			for _, file := range files {
				fmt.Printf("  - %s\n", filepath.Base(file))
			}
			fmt.Printf("\nOutput directory: %s\n", builder.OutputDir())
			return nil
		},
	}
	return command
}
