package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/coursebuilder/internal/pdf"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

type paperSize string

func (p *paperSize) Set(val string) error {
	for _, size := range allPaperSizes {
		if val == string(size) {
			*p = size
			return nil
		}
	}
	return fmt.Errorf("invalid paper size: %s", val)
}

func (p paperSize) String() string {
	return string(p)
}

func (p *paperSize) Type() string {
	return "paperSize"
}

const (
	paperSizeA4     paperSize = "a4"
	paperSizeLetter paperSize = "letter"
)

var (
	_             pflag.Value = (*paperSize)(nil)
	allPaperSizes             = []paperSize{paperSizeA4, paperSizeLetter}
)

func newExportCommand() *cobra.Command {
	var outputDir string
	paper := paperSizeA4

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as a printable PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Course.Code == "" || cfg.Course.Term == "" {
				return fmt.Errorf("course.code and course.term are required to name the exported PDF")
			}

			rows, metadata, err := loadCourseInputs(cfg)
			if err != nil {
				return err
			}
			calendar, err := metadata.BuildCalendar(rows, schedule.BuildOptions{})
			if err != nil {
				return fmt.Errorf("metadata.BuildCalendar() > %w", err)
			}

			paperName := "A4"
			if paper == paperSizeLetter {
				paperName = "Letter"
			}
			pdfPath, err := pdf.ExportSchedule(calendar, cfg.Course.Code, cfg.Course.Term, outputDir, paperName)
			if err != nil {
				return fmt.Errorf("pdf.ExportSchedule() > %w", err)
			}
			fmt.Printf("Exported the schedule to %s\n", pdfPath)
			return nil
		},
	}

	command.Flags().StringVar(&outputDir, "output-dir", "outputs", "Directory for the exported markdown and PDF")
	command.Flags().Var(&paper, "paper", fmt.Sprintf("Paper size for the PDF. Possible values are %v", allPaperSizes))
	return command
}
