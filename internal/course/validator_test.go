package course

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(schedule.DateLayout, value)
	require.NoError(t, err)
	return &parsed
}

// validMetadata covers weeks 1-2 taught as modules 1-2.
func validMetadata() *Metadata {
	return &Metadata{
		Overviews: map[int]schedule.WeekOverview{
			1: {Description: "Getting started"},
			2: {Description: "Control flow"},
		},
		Objectives: map[int]schedule.ModuleObjectives{
			1: {LearningObjectives: []string{"Explain what a program is"}},
			2: {LearningObjectives: []string{"Use loops"}},
		},
		Images: map[int]schedule.WeekImage{
			1: {ImageName: "week1.png"},
			2: {ImageName: "week2.png"},
		},
		Icons: map[string]string{},
	}
}

func TestValidatorValidate(t *testing.T) {
	t.Run("clean schedule and metadata", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1", Lesson: "1A",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
				Topic: "Getting started", Assigned: "HW 1",
			},
			{
				Index: 2, Week: "1", Lesson: "1B",
				Date: datePtr(t, "01/08/2025"), RawDate: "01/08/2025",
				Topic: "QUIZ 1 & Programs", Due: "Due HW 1",
			},
			{
				Index: 3, Week: "2", Module: "Mod 2", Lesson: "2A",
				Date: datePtr(t, "01/13/2025"), RawDate: "01/13/2025",
				Topic: "Loops",
			},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		assert.False(t, result.HasErrors())
		assert.Empty(t, result.ScheduleErrors)
		assert.Empty(t, result.MetadataErrors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("week walker failure becomes a schedule error", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "", Module: "Mod 1", Date: datePtr(t, "01/06/2025")},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		require.Len(t, result.ScheduleErrors, 1)
		assert.Contains(t, result.ScheduleErrors[0].Message, "week column is empty")
		assert.Equal(t, "schedule.xlsx", result.ScheduleErrors[0].File)
	})

	t.Run("missing metadata entries", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1", Lesson: "1A",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
			},
		}
		metadata := &Metadata{
			Overviews:  map[int]schedule.WeekOverview{},
			Objectives: map[int]schedule.ModuleObjectives{},
			Images:     map[int]schedule.WeekImage{},
		}

		result, err := NewValidator("schedule.xlsx", rows, metadata).Validate()
		require.NoError(t, err)
		require.Len(t, result.MetadataErrors, 3)

		var files []string
		for _, validationErr := range result.MetadataErrors {
			files = append(files, validationErr.File)
		}
		assert.Equal(t, []string{OverviewFile, ImagesFile, ObjectivesFile}, files)
		assert.Equal(t, "week 1", result.MetadataErrors[0].Location)
		assert.Equal(t, "module 1", result.MetadataErrors[2].Location)
	})

	t.Run("objectives error reported once per module", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
			},
			{
				Index: 2, Week: "2", Module: "Mod 1",
				Date: datePtr(t, "01/13/2025"), RawDate: "01/13/2025",
			},
		}
		metadata := validMetadata()
		metadata.Objectives = map[int]schedule.ModuleObjectives{}

		result, err := NewValidator("schedule.xlsx", rows, metadata).Validate()
		require.NoError(t, err)

		var objectiveErrors []ValidationError
		for _, validationErr := range result.MetadataErrors {
			if validationErr.File == ObjectivesFile {
				objectiveErrors = append(objectiveErrors, validationErr)
			}
		}
		require.Len(t, objectiveErrors, 1)
		assert.Equal(t, "module 1", objectiveErrors[0].Location)
	})

	t.Run("row without a calendar date warns and week stays listed", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1", Lesson: "1A",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
			},
			{
				Index: 2, Week: "2", Module: "Mod 2", Lesson: "2A",
				RawDate: "finals week",
			},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		assert.False(t, result.HasErrors())
		require.Len(t, result.Warnings, 2)
		assert.Equal(t, "row 2", result.Warnings[0].Location)
		assert.Contains(t, result.Warnings[0].Message, `"finals week" is not a calendar date`)
		assert.Equal(t, "week 2", result.Warnings[1].Location)
		assert.Contains(t, result.Warnings[1].Message, "no rows with a calendar date")
	})

	t.Run("quiz numbered against the calendar order", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
				Topic: "QUIZ 2 & Getting started",
			},
			{
				Index: 2, Week: "2", Module: "Mod 2",
				Date: datePtr(t, "01/13/2025"), RawDate: "01/13/2025",
				Topic: "QUIZ 1 & Control flow",
			},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		require.Len(t, result.ScheduleErrors, 1)
		assert.Equal(t, "quiz 2 on 01/06/2025 is dated before quiz 1 on 01/13/2025", result.ScheduleErrors[0].Message)
		assert.Equal(t, "week 1, monday", result.ScheduleErrors[0].Location)
	})

	t.Run("duplicate quiz number", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
				Topic: "QUIZ 1 & Getting started",
			},
			{
				Index: 2, Week: "2", Module: "Mod 2",
				Date: datePtr(t, "01/13/2025"), RawDate: "01/13/2025",
				Topic: "QUIZ 1 & Control flow",
			},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		require.Len(t, result.ScheduleErrors, 1)
		assert.Equal(t, "quiz 1 appears on both 01/06/2025 and 01/13/2025", result.ScheduleErrors[0].Message)
	})

	t.Run("checkout numbered against the calendar order", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
				Topic: "CHECKOUT 2",
			},
			{
				Index: 2, Week: "2", Module: "Mod 2",
				Date: datePtr(t, "01/13/2025"), RawDate: "01/13/2025",
				Topic: "CHECKOUT 1",
			},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		require.Len(t, result.ScheduleErrors, 1)
		assert.Equal(t, "checkout 2 on 01/06/2025 is dated before checkout 1 on 01/13/2025", result.ScheduleErrors[0].Message)
	})

	t.Run("homework assigned but never due", func(t *testing.T) {
		rows := []schedule.ScheduleRow{
			{Index: 0},
			{
				Index: 1, Week: "1", Module: "Mod 1",
				Date: datePtr(t, "01/06/2025"), RawDate: "01/06/2025",
				Assigned: "HW 3",
			},
		}

		result, err := NewValidator("schedule.xlsx", rows, validMetadata()).Validate()
		require.NoError(t, err)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "HW 3 is assigned but has no due date on the calendar", result.Warnings[0].Message)
		assert.Equal(t, "week 1, monday", result.Warnings[0].Location)
		assert.Contains(t, result.Warnings[0].Suggestions[0], "Due HW 3")
	})
}

func TestValidationErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "message only",
			err:  ValidationError{File: "images.yml", Message: "no image entry"},
			want: "images.yml: no image entry",
		},
		{
			name: "with location and suggestions",
			err: ValidationError{
				File:        "learning_objectives.yml",
				Location:    "module 3",
				Message:     "no learning objectives for this module",
				Suggestions: []string{"add an entry for module 3"},
			},
			want: "learning_objectives.yml (module 3): no learning objectives for this module [Suggestion: add an entry for module 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
