package site

import (
	"fmt"
	"path/filepath"

	"github.com/at-ishikawa/coursebuilder/internal/course"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// snapshotFileName is the calendar snapshot saved next to a session's
// built pages. An upload rebuilds the weekly pages from it once the
// assignment URLs are known, without re-reading the workbook.
const snapshotFileName = "weeks.yml"

// SaveSnapshot writes the calendar into the session directory.
func SaveSnapshot(sessionDir string, calendar *schedule.Calendar) error {
	path := filepath.Join(sessionDir, snapshotFileName)
	if err := course.WriteYamlFile(path, calendar); err != nil {
		return fmt.Errorf("course.WriteYamlFile(%s) > %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a calendar saved by SaveSnapshot.
func LoadSnapshot(sessionDir string) (*schedule.Calendar, error) {
	path := filepath.Join(sessionDir, snapshotFileName)
	calendar, err := course.ReadYamlFile[schedule.Calendar](path)
	if err != nil {
		return nil, fmt.Errorf("course.ReadYamlFile(%s) > %w", path, err)
	}

	calendar.Weeks.MarkModulesResolved()
	return &calendar, nil
}
