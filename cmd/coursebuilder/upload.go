package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/coursebuilder/internal/canvas"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
	"github.com/at-ishikawa/coursebuilder/internal/site"
)

func newUploadCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "upload",
		Short: "Build the course pages and publish them to Canvas with their assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			rows, metadata, err := loadCourseInputs(cfg)
			if err != nil {
				return err
			}

			client := canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.CourseID, cfg.Canvas.AccessToken, cfg.Canvas.RetryAttempts)
			links, err := resolveCourseLinks(ctx, client, syllabusPatterns(cfg), metadata)
			if err != nil {
				return err
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
			fmt.Printf("Built %d pages in %s\n", len(files), builder.OutputDir())

			bodies, err := site.AssignmentBodies(files)
			if err != nil {
				return fmt.Errorf("site.AssignmentBodies() > %w", err)
			}
			uploader := canvas.NewUploader(client, os.Stdout)

			requests := canvas.PlanAssignments(calendar.Weeks, calendar.LectureInfo.LectureDays(), bodies)
			fmt.Printf("\nCreating %d assignments...\n", len(requests))
			assignmentURLs := uploader.CreateAssignments(ctx, requests)

			// Weekly pages link to the assignments and checkout pages to
			// their homework, so both render again now that the Canvas
			// URLs exist.
			pageURLs := site.SplitPageURLs(assignmentURLs)
			if _, err := builder.BuildWeeklyPages(pageURLs, links.pdfURLs); err != nil {
				return fmt.Errorf("builder.BuildWeeklyPages() > %w", err)
			}
			if _, err := builder.BuildCheckoutPages(pageURLs.Homework); err != nil {
				return fmt.Errorf("builder.BuildCheckoutPages() > %w", err)
			}

			fmt.Println("\nUploading pages...")
			uploaded, err := uploader.UploadPagesDir(ctx, builder.OutputDir())
			if err != nil {
				return fmt.Errorf("uploader.UploadPagesDir() > %w", err)
			}
			fmt.Printf("Uploaded %d of %d pages.\n", len(uploaded), len(files))

			fmt.Println("\nChecking homework PDFs...")
			uploader.VerifyHomeworkPDFs(ctx, schedule.CollectHomeworkNumbers(calendar.Weeks))
			return nil
		},
	}
	return command
}
