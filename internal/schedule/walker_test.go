package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	require.NoError(t, err)
	return &parsed
}

func TestBuildWeeks(t *testing.T) {
	t.Run("two row schedule end to end", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "Mod 1", Lesson: "1A", Date: datePtr(t, "01/06/2025"), Assigned: "HW1"},
			{Index: 2, Week: "1", Lesson: "1B", Date: datePtr(t, "01/08/2025"), Topic: "Quiz 1", Due: "HW1"},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)
		require.Len(t, weeks, 1)

		week := weeks[1]
		require.NotNil(t, week)
		assert.Equal(t, 1, week.Module)
		assert.True(t, week.ModuleResolved())

		monday, ok := week.Day("monday")
		require.True(t, ok)
		assert.Equal(t, "01/06/2025", monday.Date)
		assert.Equal(t, "HW1", monday.Assigned)
		assert.Equal(t, "1A", monday.Lesson)

		wednesday, ok := week.Day("wednesday")
		require.True(t, ok)
		assert.True(t, wednesday.HasQuiz)
		assert.Equal(t, "1", wednesday.QuizNumber)
		assert.Equal(t, "HW1", wednesday.Due)

		assert.Equal(t, "01/08/2025", FindDueDateForHomework(weeks, "1"))
	})

	t.Run("week column forward fill", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "1", Date: datePtr(t, "01/06/2025")},
			{Index: 2, Date: datePtr(t, "01/08/2025")},
			{Index: 3, Week: "2", Module: "2", Date: datePtr(t, "01/13/2025")},
			{Index: 4, Date: datePtr(t, "01/15/2025")},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)
		require.Len(t, weeks, 2)

		_, ok := weeks[1].Day("wednesday")
		assert.True(t, ok, "filled row lands in week 1")
		_, ok = weeks[2].Day("wednesday")
		assert.True(t, ok, "filled row lands in week 2")
	})

	t.Run("week column empty at the top", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Module: "1", Date: datePtr(t, "01/06/2025")},
		}

		_, err := BuildWeeks(rows, BuildOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "week column is empty")
	})

	t.Run("module cell without digits", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "Module TBD", Date: datePtr(t, "01/06/2025")},
		}

		_, err := BuildWeeks(rows, BuildOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no digits")
	})

	t.Run("explicit module cell overwrites an earlier one", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "Mod 1", Date: datePtr(t, "01/06/2025")},
			{Index: 2, Module: "Mod 2", Date: datePtr(t, "01/08/2025")},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, weeks[1].Module, "the latest explicit cell wins")
	})

	t.Run("empty module cell copies the previous row's week", func(t *testing.T) {
		// Week 2's first row carries no module, so it copies from the
		// week of the row directly above, which is still week 1. The
		// copy is positional: a later row of week 1 cannot change what
		// week 2 already copied.
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "Mod 3", Date: datePtr(t, "01/06/2025")},
			{Index: 2, Week: "2", Date: datePtr(t, "01/13/2025")},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)
		assert.Equal(t, 3, weeks[2].Module)
		assert.True(t, weeks[2].ModuleResolved())
	})

	t.Run("empty module cell on the first data row", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Date: datePtr(t, "01/06/2025")},
		}

		_, err := BuildWeeks(rows, BuildOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no preceding row")
	})

	t.Run("row without a date contributes no day", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "1", Date: datePtr(t, "01/06/2025")},
			{Index: 2, RawDate: "finals week", Topic: "Review"},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)
		require.Len(t, weeks, 1)
		assert.Len(t, weeks[1].Days, 1, "the undated row is skipped")
	})

	t.Run("duplicate weekday keeps the last row", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "1", Date: datePtr(t, "01/06/2025"), Topic: "First"},
			{Index: 2, Date: datePtr(t, "01/06/2025"), Topic: "Second"},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)

		monday, ok := weeks[1].Day("monday")
		require.True(t, ok)
		assert.Equal(t, "Second", monday.Topic)
	})

	t.Run("prework title and link", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "Mod 2", Date: datePtr(t, "01/06/2025"), Prework: "Intro to Interpolation"},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{
			CourseBaseURL: "https://example.instructure.com",
			CourseID:      "12345",
		})
		require.NoError(t, err)

		monday, ok := weeks[1].Day("monday")
		require.True(t, ok)
		assert.Equal(t, "Prework Module 2 - Intro to Interpolation", monday.PreworkVideoTitle)
		assert.Equal(t,
			"https://example.instructure.com/courses/12345/pages/prework-module-2-intro-to-interpolation",
			monday.PreworkVideoLink)
	})

	t.Run("prework link empty without a course id", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "1", Date: datePtr(t, "01/06/2025"), Prework: "Intro"},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)

		monday, ok := weeks[1].Day("monday")
		require.True(t, ok)
		assert.Equal(t, "Prework Module 1 - Intro", monday.PreworkVideoTitle)
		assert.Empty(t, monday.PreworkVideoLink)
	})

	t.Run("every filled week appears even without days", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Week: "1", Module: "1", Date: datePtr(t, "01/06/2025")},
			{Index: 2, Week: "2", RawDate: "spring break"},
		}

		weeks, err := BuildWeeks(rows, BuildOptions{})
		require.NoError(t, err)
		require.Len(t, weeks, 2)
		assert.Empty(t, weeks[2].Days)
	})
}

func TestAttachModuleMetadata(t *testing.T) {
	overviews := map[int]WeekOverview{
		1: {Description: "Getting started."},
	}
	objectives := map[int]ModuleObjectives{
		1: {
			LearningObjectives:      []string{"LO1: Solve linear systems"},
			LearningObjectivesTopic: "Linear Systems",
		},
	}
	images := map[int]WeekImage{
		1: {ImageName: "week1.png", AltText: "Matrix sketch"},
	}

	tests := []struct {
		name       string
		weeks      Weeks
		overviews  map[int]WeekOverview
		objectives map[int]ModuleObjectives
		images     map[int]WeekImage
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "joins all three sources",
			weeks: Weeks{
				1: {Number: 1, Module: 1, moduleSet: true, Days: map[string]DayRecord{}},
			},
			overviews:  overviews,
			objectives: objectives,
			images:     images,
		},
		{
			name: "missing overview",
			weeks: Weeks{
				2: {Number: 2, Module: 1, moduleSet: true, Days: map[string]DayRecord{}},
			},
			overviews:  overviews,
			objectives: objectives,
			images:     images,
			wantErr:    true,
			wantErrMsg: "week 2 has no overview entry",
		},
		{
			name: "missing image",
			weeks: Weeks{
				1: {Number: 1, Module: 1, moduleSet: true, Days: map[string]DayRecord{}},
			},
			overviews:  overviews,
			objectives: objectives,
			images:     map[int]WeekImage{},
			wantErr:    true,
			wantErrMsg: "week 1 has no image entry",
		},
		{
			name: "missing objectives for the module",
			weeks: Weeks{
				1: {Number: 1, Module: 9, moduleSet: true, Days: map[string]DayRecord{}},
			},
			overviews:  overviews,
			objectives: objectives,
			images:     images,
			wantErr:    true,
			wantErrMsg: "module 9 has no learning objectives entry",
		},
		{
			name: "module never resolved",
			weeks: Weeks{
				1: {Number: 1, Days: map[string]DayRecord{}},
			},
			overviews:  overviews,
			objectives: objectives,
			images:     images,
			wantErr:    true,
			wantErrMsg: "no module resolved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AttachModuleMetadata(tt.weeks, tt.overviews, tt.objectives, tt.images)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			week := tt.weeks[1]
			assert.Equal(t, "Getting started.", week.OverviewStatement)
			assert.Equal(t, "week1.png", week.Image.ImageName)
			assert.Equal(t, []string{"LO1: Solve linear systems"}, week.LearningObjectives)
			assert.Equal(t, "Linear Systems", week.LearningObjectivesTopic)
		})
	}
}
