package schedule

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// moduleMarker is the sentinel checked against the stored module's string
// form before a module cell may overwrite it.
const moduleMarker = "Mod"

// BuildOptions carries the externally resolved values the walker needs,
// passed explicitly so tests can supply deterministic fixtures.
type BuildOptions struct {
	// CourseBaseURL and CourseID build prework page links. Links stay
	// empty when no course ID is configured.
	CourseBaseURL string
	CourseID      string

	// SampleQuizURLs maps quiz numbers to sample quiz page URLs.
	SampleQuizURLs map[string]string
}

// BuildWeeks walks the sheet rows in document order and populates the
// week mapping. Row 0 is the header. Every week number present in the
// forward-filled week column gets a record, whether or not any of its
// rows carried a date.
func BuildWeeks(rows []ScheduleRow, opts BuildOptions) (Weeks, error) {
	weekByRow, err := forwardFillWeeks(rows)
	if err != nil {
		return nil, fmt.Errorf("forwardFillWeeks() > %w", err)
	}

	weeks := Weeks{}
	for _, number := range weekByRow {
		if _, ok := weeks[number]; !ok {
			weeks[number] = &WeekRecord{Number: number, Days: map[string]DayRecord{}}
		}
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		week := weeks[weekByRow[i]]

		// The module rule is positional: an explicit cell overwrites the
		// week's module, an empty cell copies the module of the previous
		// row's week, whichever week that happens to be.
		if !strings.Contains(week.moduleString(), moduleMarker) && row.Module != "" {
			module, err := parseModuleNumber(row.Module)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row.Index, err)
			}
			week.Module = module
			week.moduleSet = true
		} else if row.Module == "" {
			previousWeek, ok := weekByRow[i-1]
			if !ok {
				return nil, fmt.Errorf("row %d: empty module cell with no preceding row to inherit from", row.Index)
			}
			previous := weeks[previousWeek]
			week.Module = previous.Module
			week.moduleSet = previous.moduleSet
		}

		if row.Date == nil {
			slog.Warn("skipping row without a calendar date", "row", row.Index, "value", row.RawDate)
			continue
		}

		day := DayRecord{
			Date:         FormatDate(*row.Date),
			Lesson:       row.Lesson,
			Topic:        row.Topic,
			Referenced:   row.Referenced,
			Assigned:     row.Assigned,
			Due:          row.Due,
			QuizInfo:     QuizInfoFromTopic(row.Topic, opts.SampleQuizURLs),
			CheckoutInfo: CheckoutInfoFromTopic(row.Topic),
		}
		if prework := strings.TrimSpace(row.Prework); prework != "" {
			day.PreworkVideoTitle = fmt.Sprintf("Prework Module %s - %s", week.moduleString(), prework)
			day.PreworkVideoLink = preworkLink(opts, day.PreworkVideoTitle)
		}
		week.Days[WeekdayName(*row.Date)] = day
	}

	return weeks, nil
}

// AttachModuleMetadata joins the loaded course metadata into the week
// records: overview and image by week number, learning objectives by the
// week's resolved module. A missing entry is a hard error, never a
// default, because it means the sheet and the metadata files are out of
// sync and any page built from them would be wrong.
func AttachModuleMetadata(weeks Weeks, overviews map[int]WeekOverview, objectives map[int]ModuleObjectives, images map[int]WeekImage) error {
	for _, number := range weeks.SortedNumbers() {
		week := weeks[number]

		overview, ok := overviews[number]
		if !ok {
			return fmt.Errorf("week %d has no overview entry", number)
		}
		week.OverviewStatement = overview.Description

		image, ok := images[number]
		if !ok {
			return fmt.Errorf("week %d has no image entry", number)
		}
		week.Image = image

		if !week.moduleSet {
			return fmt.Errorf("week %d: no module resolved from the sheet", number)
		}
		moduleObjectives, ok := objectives[week.Module]
		if !ok {
			return fmt.Errorf("module %d has no learning objectives entry", week.Module)
		}
		week.LearningObjectives = moduleObjectives.LearningObjectives
		week.LearningObjectivesTopic = moduleObjectives.LearningObjectivesTopic
	}
	return nil
}

// forwardFillWeeks resolves each data row's week number, carrying the
// most recent explicit value forward over empty cells. The week column
// must start with a value.
func forwardFillWeeks(rows []ScheduleRow) (map[int]int, error) {
	weekByRow := make(map[int]int, len(rows))
	current := 0
	filled := false
	for i, row := range rows {
		if i == 0 {
			continue
		}
		cell := strings.TrimSpace(row.Week)
		if cell != "" {
			number, err := parseWeekNumber(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row.Index, err)
			}
			current = number
			filled = true
		} else if !filled {
			return nil, fmt.Errorf("row %d: week column is empty with no value above it", row.Index)
		}
		weekByRow[i] = current
	}
	return weekByRow, nil
}

func parseWeekNumber(cell string) (int, error) {
	if number, err := strconv.Atoi(cell); err == nil {
		return number, nil
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("week cell %q is not a number", cell)
	}
	return int(value), nil
}

func parseModuleNumber(cell string) (int, error) {
	var digits strings.Builder
	for _, r := range cell {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("module cell %q has no digits", cell)
	}
	module, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi(%s) > %w", digits.String(), err)
	}
	return module, nil
}

func preworkLink(opts BuildOptions, title string) string {
	if opts.CourseID == "" {
		return ""
	}
	return fmt.Sprintf("%s/courses/%s/pages/%s",
		strings.TrimSuffix(opts.CourseBaseURL, "/"), opts.CourseID, TitleToURLSafe(title))
}
