package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/coursebuilder/internal/canvas"
	"github.com/at-ishikawa/coursebuilder/internal/config"
	"github.com/at-ishikawa/coursebuilder/internal/course"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}
	return cfg, nil
}

// loadCourseInputs reads the schedule workbook and the metadata documents
// the configuration points at. Lecture days from the configuration fill
// in when the metadata names none.
func loadCourseInputs(cfg *config.Config) ([]schedule.ScheduleRow, *course.Metadata, error) {
	if cfg.Schedule.Workbook == "" {
		return nil, nil, fmt.Errorf("no schedule workbook is configured; set schedule.workbook")
	}
	rows, err := schedule.ReadWorkbook(cfg.Schedule.Workbook, cfg.Schedule.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("schedule.ReadWorkbook() > %w", err)
	}
	metadata, err := course.LoadMetadata(cfg.Metadata.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("course.LoadMetadata() > %w", err)
	}
	if len(metadata.Lecture.Days) == 0 && len(cfg.Schedule.LectureDays) > 0 {
		metadata.Lecture.Days = cfg.Schedule.LectureDays
	}
	return rows, metadata, nil
}

// courseLinks carries the Canvas-hosted content the built pages link to:
// sample quiz pages, icon file previews and the syllabus PDFs.
type courseLinks struct {
	sampleQuizURLs map[string]string
	iconURLs       map[string]string
	pdfURLs        map[string]string
}

// syllabusPatterns returns the configured syllabus filename patterns, or
// the course-code defaults.
func syllabusPatterns(cfg *config.Config) map[string]string {
	if len(cfg.Course.SyllabusPatterns) > 0 {
		return cfg.Course.SyllabusPatterns
	}
	return canvas.DefaultSyllabusPatterns(cfg.Course.Code)
}

// resolveCourseLinks looks the linked content up in the Canvas course.
// The metadata image paths are resolved in place as a side effect.
func resolveCourseLinks(ctx context.Context, api canvas.API, patterns map[string]string, metadata *course.Metadata) (*courseLinks, error) {
	links := &courseLinks{}

	var err error
	links.sampleQuizURLs, err = canvas.FindSampleQuizPages(ctx, api)
	if err != nil {
		return nil, fmt.Errorf("canvas.FindSampleQuizPages() > %w", err)
	}

	imageURLs, err := canvas.FindCourseImages(ctx, api, metadata.ImageNames())
	if err != nil {
		return nil, fmt.Errorf("canvas.FindCourseImages() > %w", err)
	}
	metadata.ResolveImagePaths(imageURLs)

	iconFileURLs, err := canvas.FindCourseImages(ctx, api, metadata.IconFileNames())
	if err != nil {
		return nil, fmt.Errorf("canvas.FindCourseImages() > %w", err)
	}
	links.iconURLs = metadata.ResolveIconURLs(iconFileURLs)

	links.pdfURLs, err = canvas.FindSyllabusPDFs(ctx, api, patterns)
	if err != nil {
		return nil, fmt.Errorf("canvas.FindSyllabusPDFs() > %w", err)
	}
	return links, nil
}
