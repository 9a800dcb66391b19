package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// ExportSchedule renders the calendar as a printable schedule PDF named
// the way the Canvas course-documents lookup expects,
// "ME211_SyllabusSchedule_W25.pdf". The markdown source is written next
// to the PDF and both paths land in outputDir. An empty paper renders A4.
func ExportSchedule(calendar *schedule.Calendar, courseCode, term, outputDir, paper string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}

	baseName := fmt.Sprintf("%s_SyllabusSchedule_%s", courseCode, term)
	markdownPath := filepath.Join(outputDir, baseName+".md")
	markdown := ScheduleMarkdown(calendar, courseCode, term)
	if err := os.WriteFile(markdownPath, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	pdfPath, err := ConvertMarkdownToPDF(markdownPath, paper)
	if err != nil {
		return "", fmt.Errorf("ConvertMarkdownToPDF > %w", err)
	}
	return pdfPath, nil
}

// ScheduleMarkdown renders the calendar as a markdown document: a title,
// the lecture line, and one day table per week.
func ScheduleMarkdown(calendar *schedule.Calendar, courseCode, term string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Schedule (%s)\n\n", courseCode, term)

	lecture := calendar.LectureInfo
	fmt.Fprintf(&sb, "Lecture: %s", strings.Join(lecture.LectureDays(), ", "))
	if lecture.Time != "" {
		fmt.Fprintf(&sb, " at %s", lecture.Time)
	}
	if lecture.Location != "" {
		fmt.Fprintf(&sb, " in %s", lecture.Location)
	}
	sb.WriteString("\n\n")

	for _, number := range calendar.Weeks.SortedNumbers() {
		week := calendar.Weeks[number]
		fmt.Fprintf(&sb, "## %s\n\n", schedule.WeekTitle(calendar.Weeks, number))
		if week.OverviewStatement != "" {
			fmt.Fprintf(&sb, "%s\n\n", week.OverviewStatement)
		}

		sb.WriteString("| Day | Date | Lesson | Topic | Assigned | Due |\n")
		sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, entry := range schedule.WeekDaysInOrder(week) {
			day := entry.Day
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n",
				tableCell(entry.DisplayName), tableCell(entry.Date), tableCell(day.Lesson),
				tableCell(day.Topic), tableCell(day.Assigned), tableCell(day.Due))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ConvertMarkdownToPDF renders a markdown file as a PDF next to it and
// returns the PDF path. paper is a gofpdf paper size name such as "A4"
// or "Letter"; empty means A4.
func ConvertMarkdownToPDF(markdownPath, paper string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	if paper == "" {
		paper = "A4"
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", paper, pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// tableCell keeps cell text from breaking the markdown table layout.
func tableCell(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "|", "\\|")
}
