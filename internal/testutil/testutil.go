// Package testutil provides shared test helpers for creating schedule
// workbooks, course metadata directories and config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/at-ishikawa/coursebuilder/internal/course"
)

// WriteScheduleWorkbook writes a small two-week schedule workbook to
// path: captions in row 1, the template's blank sub-header row 2, and
// three dated lesson rows. Week 1 assigns HW 1, week 2 holds Quiz 1 and
// the HW 1 due date.
func WriteScheduleWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer func() { require.NoError(t, f.Close()) }()
	sheet := f.GetSheetName(0)

	set := func(cell string, value interface{}) {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}

	captions := map[string]string{
		"B1": "Week", "C1": "Module", "D1": "Lesson", "E1": "Date", "F1": "Topic",
		"H1": "Referenced", "J1": "Assigned", "K1": "Due", "L1": "Prework",
	}
	for cell, title := range captions {
		set(cell, title)
	}

	set("B3", 1)
	set("C3", "Module 1")
	set("D3", "1A")
	set("E3", time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC))
	set("F3", "Intro")
	set("H3", "Ch. 1")
	set("J3", "HW 1")

	set("D4", "1B")
	set("E4", time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC))
	set("F4", "Linear Systems")
	set("L4", "Vectors refresher")

	set("B5", 2)
	set("D5", "1C")
	set("E5", time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC))
	set("F5", "QUIZ 1 & Regression")
	set("K5", "HW 1 due")

	require.NoError(t, f.SaveAs(path))
}

// WriteMetadataFiles writes the course metadata documents matching
// WriteScheduleWorkbook's weeks into dir.
func WriteMetadataFiles(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		course.OverviewFile: `1:
  description: Welcome to the course.
2:
  description: Systems of equations, start to finish.
`,
		course.ObjectivesFile: `1:
  learning_objectives:
    - Solve linear systems of equations
  learning_objectives_topic: Linear Algebra
`,
		course.ImagesFile: `1:
  image_name: week1.png
  alt_text: Bridge truss
2:
  image_name: week2.png
  alt_text: Regression scatter plot
`,
		course.LectureFile: `days:
  - monday
  - wednesday
time: 10:30 AM
location: 1109 FXB
`,
		course.IconsFile: `quiz: quiz_icon.png
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

// SetupTestConfig creates a workbook, a metadata directory and the
// output and upload directories under tmpDir, and writes a config file
// wired to all of them. Returns the config file path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	metadataDir := filepath.Join(tmpDir, "metadata")
	outputsDir := filepath.Join(tmpDir, "outputs")
	uploadsDir := filepath.Join(tmpDir, "uploads")
	for _, dir := range []string{metadataDir, outputsDir, uploadsDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}

	workbook := filepath.Join(tmpDir, "schedule.xlsx")
	WriteScheduleWorkbook(t, workbook)
	WriteMetadataFiles(t, metadataDir)

	configContent := fmt.Sprintf(`canvas:
  base_url: https://canvas.test
  course_id: "101"
schedule:
  workbook: %s
metadata:
  directory: %s
outputs:
  directory: %s
server:
  port: 8080
  upload_directory: %s
course:
  code: ME211
  term: W25
`,
		workbook, metadataDir, outputsDir, uploadsDir)

	configFile := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0o644))
	return configFile
}
