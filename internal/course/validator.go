package course

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// ValidationError represents a single validation finding
type ValidationError struct {
	File        string
	Location    string
	Message     string
	Severity    string // "error" or "warning"
	Suggestions []string
}

func (e ValidationError) Error() string {
	location := ""
	if e.Location != "" {
		location = fmt.Sprintf(" (%s)", e.Location)
	}
	msg := fmt.Sprintf("%s%s: %s", e.File, location, e.Message)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" [Suggestion: %s]", strings.Join(e.Suggestions, "; "))
	}
	return msg
}

// ValidationResult contains all validation findings grouped by type
type ValidationResult struct {
	ScheduleErrors []ValidationError
	MetadataErrors []ValidationError
	Warnings       []ValidationError
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.ScheduleErrors) > 0 || len(r.MetadataErrors) > 0
}

func (r *ValidationResult) AddError(category string, err ValidationError) {
	err.Severity = "error"
	switch category {
	case "schedule":
		r.ScheduleErrors = append(r.ScheduleErrors, err)
	case "metadata":
		r.MetadataErrors = append(r.MetadataErrors, err)
	}
}

func (r *ValidationResult) AddWarning(err ValidationError) {
	err.Severity = "warning"
	r.Warnings = append(r.Warnings, err)
}

// Validator checks the schedule sheet and the course metadata against
// each other before anything is built or uploaded.
type Validator struct {
	schedulePath string
	rows         []schedule.ScheduleRow
	metadata     *Metadata
}

// NewValidator creates a new validator
func NewValidator(schedulePath string, rows []schedule.ScheduleRow, metadata *Metadata) *Validator {
	return &Validator{
		schedulePath: schedulePath,
		rows:         rows,
		metadata:     metadata,
	}
}

// Validate performs all validations
func (v *Validator) Validate() (*ValidationResult, error) {
	result := &ValidationResult{}

	weeks, err := schedule.BuildWeeks(v.rows, schedule.BuildOptions{})
	if err != nil {
		result.AddError("schedule", ValidationError{
			File:    v.scheduleFile(),
			Message: err.Error(),
		})
		return result, nil
	}

	v.validateRowDates(result)
	v.validateWeekMetadata(weeks, result)
	v.validateAssessmentOrder(weeks, result)
	v.validateHomeworkDueDates(weeks, result)

	return result, nil
}

func (v *Validator) scheduleFile() string {
	return filepath.Base(v.schedulePath)
}

// validateRowDates reports rows whose date cell does not parse. The week
// walker drops such rows, so every one of them is a lesson that silently
// disappears from the calendar.
func (v *Validator) validateRowDates(result *ValidationResult) {
	for i, row := range v.rows {
		if i == 0 || row.Date != nil {
			continue
		}
		result.AddWarning(ValidationError{
			File:     v.scheduleFile(),
			Location: fmt.Sprintf("row %d", row.Index),
			Message:  fmt.Sprintf("date %q is not a calendar date, so the row is skipped", row.RawDate),
		})
	}
}

func (v *Validator) validateWeekMetadata(weeks schedule.Weeks, result *ValidationResult) {
	seenModules := map[int]bool{}
	for _, number := range weeks.SortedNumbers() {
		week := weeks[number]
		weekLocation := fmt.Sprintf("week %d", number)

		if _, ok := v.metadata.Overviews[number]; !ok {
			result.AddError("metadata", ValidationError{
				File:     OverviewFile,
				Location: weekLocation,
				Message:  "no overview statement for this week",
				Suggestions: []string{
					fmt.Sprintf("add an entry for week %d", number),
				},
			})
		}
		if _, ok := v.metadata.Images[number]; !ok {
			result.AddError("metadata", ValidationError{
				File:     ImagesFile,
				Location: weekLocation,
				Message:  "no image entry for this week",
				Suggestions: []string{
					fmt.Sprintf("add an entry for week %d", number),
				},
			})
		}

		if len(week.Days) == 0 {
			result.AddWarning(ValidationError{
				File:     v.scheduleFile(),
				Location: weekLocation,
				Message:  "no rows with a calendar date fall in this week",
			})
		}

		if !week.ModuleResolved() {
			result.AddError("schedule", ValidationError{
				File:     v.scheduleFile(),
				Location: weekLocation,
				Message:  "no module number resolved from the module column",
				Suggestions: []string{
					"start the week's first module cell with \"Mod\" and a number",
				},
			})
			continue
		}
		if seenModules[week.Module] {
			continue
		}
		seenModules[week.Module] = true
		if _, ok := v.metadata.Objectives[week.Module]; !ok {
			result.AddError("metadata", ValidationError{
				File:     ObjectivesFile,
				Location: fmt.Sprintf("module %d", week.Module),
				Message:  "no learning objectives for this module",
				Suggestions: []string{
					fmt.Sprintf("add an entry for module %d", week.Module),
				},
			})
		}
	}
}

// validateAssessmentOrder checks that quiz and checkout numbering follows
// the calendar. Cross-week lookups pick the next assessment by number, so
// a quiz numbered ahead of an earlier date would be resolved wrongly.
func (v *Validator) validateAssessmentOrder(weeks schedule.Weeks, result *ValidationResult) {
	quizzes := schedule.CollectQuizzes(weeks, v.metadata.Lecture.LectureDays())
	for i := 1; i < len(quizzes); i++ {
		previous, current := quizzes[i-1], quizzes[i]
		if previous.Number == current.Number && previous.Date != current.Date {
			result.AddError("schedule", ValidationError{
				File:     v.scheduleFile(),
				Location: fmt.Sprintf("week %d, %s", current.Week, current.Day),
				Message:  fmt.Sprintf("quiz %d appears on both %s and %s", current.Number, previous.Date, current.Date),
			})
			continue
		}
		previousDate, err := time.Parse(schedule.DateLayout, previous.Date)
		if err != nil {
			continue
		}
		currentDate, err := time.Parse(schedule.DateLayout, current.Date)
		if err != nil {
			continue
		}
		if currentDate.Before(previousDate) {
			result.AddError("schedule", ValidationError{
				File:     v.scheduleFile(),
				Location: fmt.Sprintf("week %d, %s", current.Week, current.Day),
				Message:  fmt.Sprintf("quiz %d on %s is dated before quiz %d on %s", current.Number, current.Date, previous.Number, previous.Date),
			})
		}
	}

	checkouts := schedule.CollectCheckouts(weeks)
	for i := 1; i < len(checkouts); i++ {
		previous, current := checkouts[i-1], checkouts[i]
		if previous.Number == current.Number && previous.Date != current.Date {
			result.AddError("schedule", ValidationError{
				File:     v.scheduleFile(),
				Location: fmt.Sprintf("week %d, %s", current.Week, current.Day),
				Message:  fmt.Sprintf("checkout %d appears on both %s and %s", current.Number, previous.Date, current.Date),
			})
			continue
		}
		previousDate, err := time.Parse(schedule.DateLayout, previous.Date)
		if err != nil {
			continue
		}
		currentDate, err := time.Parse(schedule.DateLayout, current.Date)
		if err != nil {
			continue
		}
		if currentDate.Before(previousDate) {
			result.AddError("schedule", ValidationError{
				File:     v.scheduleFile(),
				Location: fmt.Sprintf("week %d, %s", current.Week, current.Day),
				Message:  fmt.Sprintf("checkout %d on %s is dated before checkout %d on %s", current.Number, current.Date, previous.Number, previous.Date),
			})
		}
	}
}

func (v *Validator) validateHomeworkDueDates(weeks schedule.Weeks, result *ValidationResult) {
	seen := map[string]bool{}
	for _, number := range weeks.SortedNumbers() {
		for _, opening := range schedule.CollectHomeworkOpening(weeks, number) {
			if seen[opening.Number] {
				continue
			}
			seen[opening.Number] = true
			if opening.DueDate != schedule.DueDateTBD {
				continue
			}
			result.AddWarning(ValidationError{
				File:     v.scheduleFile(),
				Location: fmt.Sprintf("week %d, %s", number, opening.Day),
				Message:  fmt.Sprintf("HW %s is assigned but has no due date on the calendar", opening.Number),
				Suggestions: []string{
					fmt.Sprintf("add %q to a later day's due column", "Due HW "+opening.Number),
				},
			})
		}
	}
}
