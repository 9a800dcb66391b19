package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calendarFixture is a three week course slice: HW1 spans weeks 1-2,
// week 2 holds Quiz 1 and HW2, week 3 holds Checkout 1 and Quiz 2.
func calendarFixture() Weeks {
	return Weeks{
		1: {Number: 1, Module: 1, moduleSet: true, Days: map[string]DayRecord{
			"monday": {
				Date: "01/06/2025", Lesson: "1A", Topic: "Intro",
				Assigned: "HW 1",
			},
			"wednesday": {
				Date: "01/08/2025", Lesson: "1B", Topic: "Linear Systems",
			},
		}},
		2: {Number: 2, Module: 1, moduleSet: true, Days: map[string]DayRecord{
			"monday": {
				Date: "01/13/2025", Lesson: "1C", Topic: "QUIZ 1 & Regression",
				QuizInfo: QuizInfo{HasQuiz: true, QuizNumber: "1"},
			},
			"friday": {
				Date: "01/17/2025", Lesson: "1D",
				Assigned: "HW 2", Due: "HW 1 due",
			},
		}},
		3: {Number: 3, Module: 2, moduleSet: true, Days: map[string]DayRecord{
			"monday": {
				Date: "01/20/2025", Lesson: "2A", Topic: "CHECKOUT 1",
			},
			"wednesday": {
				Date: "01/22/2025", Lesson: "2B", Topic: "QUIZ 2 & Interpolation",
				QuizInfo: QuizInfo{HasQuiz: true, QuizNumber: "2"},
				Due:      "HW 2 due",
			},
		}},
	}
}

func TestFindDueDateForHomework(t *testing.T) {
	tests := []struct {
		name   string
		weeks  Weeks
		number string
		want   string
	}{
		{
			name:   "found in a later week",
			weeks:  calendarFixture(),
			number: "1",
			want:   "01/17/2025",
		},
		{
			name:   "no mention yields the TBD sentinel",
			weeks:  calendarFixture(),
			number: "9",
			want:   DueDateTBD,
		},
		{
			name: "substring matching lets 1 hit HW 10",
			weeks: Weeks{
				1: {Number: 1, Days: map[string]DayRecord{
					"monday": {Date: "03/03/2025", Due: "HW 10 due"},
				}},
			},
			number: "1",
			want:   "03/03/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindDueDateForHomework(tt.weeks, tt.number))
		})
	}
}

func TestFindAssignedDateForHomework(t *testing.T) {
	weeks := calendarFixture()
	assert.Equal(t, "01/06/2025", FindAssignedDateForHomework(weeks, "1"))
	assert.Equal(t, "01/17/2025", FindAssignedDateForHomework(weeks, "2"))
	assert.Equal(t, DueDateTBD, FindAssignedDateForHomework(weeks, "9"))
}

func TestFindHomeworkDueForCheckout(t *testing.T) {
	tests := []struct {
		name     string
		week     int
		wantHW   string
		wantDate string
	}{
		{
			name:     "homework due in the checkout week",
			week:     3,
			wantHW:   "2",
			wantDate: "01/22/2025",
		},
		{
			name: "week without homework due",
			week: 1,
		},
		{
			name: "unknown week",
			week: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw, date := FindHomeworkDueForCheckout(calendarFixture(), tt.week)
			assert.Equal(t, tt.wantHW, hw)
			assert.Equal(t, tt.wantDate, date)
		})
	}
}

func TestCollectQuizzes(t *testing.T) {
	weeks := calendarFixture()

	got := CollectQuizzes(weeks, DefaultLectureDays)
	require.Len(t, got, 2)
	assert.Equal(t, QuizOccurrence{Number: 1, Date: "01/13/2025", Week: 2, Day: "monday"}, got[0])
	assert.Equal(t, QuizOccurrence{Number: 2, Date: "01/22/2025", Week: 3, Day: "wednesday"}, got[1])

	t.Run("non lecture days are ignored", func(t *testing.T) {
		weeks := Weeks{
			1: {Number: 1, Days: map[string]DayRecord{
				"saturday": {
					Date:     "01/11/2025",
					QuizInfo: QuizInfo{HasQuiz: true, QuizNumber: "1"},
				},
			}},
		}
		assert.Empty(t, CollectQuizzes(weeks, DefaultLectureDays))
	})

	t.Run("quiz without a date is dropped", func(t *testing.T) {
		weeks := Weeks{
			1: {Number: 1, Days: map[string]DayRecord{
				"monday": {QuizInfo: QuizInfo{HasQuiz: true, QuizNumber: "1"}},
			}},
		}
		assert.Empty(t, CollectQuizzes(weeks, DefaultLectureDays))
	})
}

func TestCollectCheckouts(t *testing.T) {
	got := CollectCheckouts(calendarFixture())
	require.Len(t, got, 1)
	assert.Equal(t, CheckoutOccurrence{
		Number: 1, Date: "01/20/2025", Week: 3, Day: "monday", Module: 1,
	}, got[0])

	t.Run("checkout keeps its slot without a date", func(t *testing.T) {
		weeks := Weeks{
			1: {Number: 1, Days: map[string]DayRecord{
				"sunday": {Topic: "Checkout 4"},
			}},
		}
		got := CollectCheckouts(weeks)
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].Number)
		assert.Equal(t, 4, got[0].Module)
		assert.Empty(t, got[0].Date)
	})
}

func TestFindNextQuiz(t *testing.T) {
	// Quiz 1 on 01/10, quiz 2 on 01/24: a reference date of 01/15 must
	// land on quiz 2.
	weeks := Weeks{
		1: {Number: 1, Days: map[string]DayRecord{
			"friday": {
				Date:     "01/10/2025",
				QuizInfo: QuizInfo{HasQuiz: true, QuizNumber: "1"},
			},
		}},
		2: {Number: 2, Days: map[string]DayRecord{
			"wednesday": {Date: "01/15/2025", Topic: "Interpolation"},
		}},
		3: {Number: 3, Days: map[string]DayRecord{
			"friday": {
				Date:     "01/24/2025",
				QuizInfo: QuizInfo{HasQuiz: true, QuizNumber: "2"},
			},
		}},
	}

	tests := []struct {
		name        string
		currentWeek int
		wantNumber  int
		wantNil     bool
	}{
		{
			name:        "passed quizzes are skipped",
			currentWeek: 2,
			wantNumber:  2,
		},
		{
			name:        "reference on the quiz date keeps it",
			currentWeek: 1,
			wantNumber:  1,
		},
		{
			name:        "week without dated lecture days falls back to the first quiz",
			currentWeek: 9,
			wantNumber:  1,
		},
		{
			name:        "all quizzes passed",
			currentWeek: 4,
			wantNil:     true,
		},
	}

	weeks[4] = &WeekRecord{Number: 4, Days: map[string]DayRecord{
		"monday": {Date: "02/03/2025"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindNextQuiz(weeks, tt.currentWeek, DefaultLectureDays)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantNumber, got.Number)
		})
	}
}

func TestFindNextCheckout(t *testing.T) {
	weeks := Weeks{
		1: {Number: 1, Days: map[string]DayRecord{
			"friday": {Date: "01/10/2025", Topic: "CHECKOUT 1"},
		}},
		2: {Number: 2, Days: map[string]DayRecord{
			"monday": {Date: "01/13/2025", Topic: "Interpolation"},
		}},
		3: {Number: 3, Days: map[string]DayRecord{
			"friday": {Date: "01/24/2025", Topic: "CHECKOUT 2"},
		}},
	}

	next := FindNextCheckout(weeks, 2, DefaultLectureDays)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Number)

	assert.Nil(t, FindNextCheckout(Weeks{}, 1, DefaultLectureDays))
}

func TestCollectHomeworkOpening(t *testing.T) {
	weeks := calendarFixture()

	got := CollectHomeworkOpening(weeks, 1)
	require.Len(t, got, 1)
	assert.Equal(t, HomeworkOccurrence{
		Number:       "1",
		AssignedDate: "01/06/2025",
		DueDate:      "01/17/2025",
		Day:          "monday",
		Key:          "HW01",
		Name:         "HOMEWORK 1",
	}, got[0])

	assert.Empty(t, CollectHomeworkOpening(weeks, 9))
}

func TestCollectHomeworkDue(t *testing.T) {
	weeks := calendarFixture()

	got := CollectHomeworkDue(weeks, 2)
	require.Len(t, got, 1)
	assert.Equal(t, HomeworkOccurrence{
		Number:       "1",
		AssignedDate: "01/06/2025",
		DueDate:      "01/17/2025",
		Day:          "friday",
		Key:          "HW01",
		Name:         "HOMEWORK 1",
	}, got[0])

	assert.Empty(t, CollectHomeworkDue(weeks, 1))
}

func TestCollectHomeworkNumbers(t *testing.T) {
	weeks := calendarFixture()
	weeks[3].Days["friday"] = DayRecord{
		Date: "01/24/2025", Assigned: "hw 10",
	}

	assert.Equal(t, []string{"1", "2", "10"}, CollectHomeworkNumbers(weeks))
	assert.Empty(t, CollectHomeworkNumbers(Weeks{}))
}

func TestLessonRangeForModule(t *testing.T) {
	rows := []ScheduleRow{
		{Index: 0},
		{Index: 1, Module: "Mod 1", Lesson: "1A"},
		{Index: 2, Lesson: "1B"},
		{Index: 3, Lesson: "-"},
		{Index: 4, Lesson: "1C"},
		{Index: 5, Module: "Mod 2", Lesson: "2A"},
		{Index: 6, Lesson: "2B"},
	}

	tests := []struct {
		name   string
		module int
		want   string
	}{
		{
			name:   "range closed by the next module",
			module: 1,
			want:   "1A-1C",
		},
		{
			name:   "last module runs to the end of the sheet",
			module: 2,
			want:   "2A-2B",
		},
		{
			name:   "unknown module falls back to the conventional span",
			module: 5,
			want:   "5A-5D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LessonRangeForModule(rows, tt.module))
		})
	}

	t.Run("single lesson module collapses to one label", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Module: "1", Lesson: "1A"},
			{Index: 2, Module: "2", Lesson: "2A"},
		}
		assert.Equal(t, "1A", LessonRangeForModule(rows, 1))
	})

	t.Run("placeholder rows before a transition are walked over", func(t *testing.T) {
		rows := []ScheduleRow{
			{Index: 0},
			{Index: 1, Module: "1", Lesson: "1A"},
			{Index: 2, Lesson: "1B"},
			{Index: 3, Lesson: "-"},
			{Index: 4, Module: "2", Lesson: "2A"},
		}
		assert.Equal(t, "1A-1B", LessonRangeForModule(rows, 1))
	})
}

func TestHomeworkRangeForModule(t *testing.T) {
	tests := []struct {
		name   string
		weeks  Weeks
		module int
		want   string
	}{
		{
			name:   "two homeworks joined with ampersand",
			weeks:  calendarFixture(),
			module: 1,
			want:   "HW01 & HW02",
		},
		{
			name:   "single homework",
			weeks:  calendarFixture(),
			module: 2,
			want:   "HW02",
		},
		{
			name:   "module without homework falls back",
			weeks:  calendarFixture(),
			module: 7,
			want:   "HW07",
		},
		{
			name: "three or more homeworks become a range",
			weeks: Weeks{
				1: {Number: 1, Module: 4, moduleSet: true, Days: map[string]DayRecord{
					"monday":    {Date: "02/03/2025", Assigned: "HW 7"},
					"wednesday": {Date: "02/05/2025", Assigned: "HW 8", Due: "HW 7"},
					"friday":    {Date: "02/07/2025", Assigned: "HW 9", Due: "HW 8"},
				}},
			},
			module: 4,
			want:   "HW07-HW09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HomeworkRangeForModule(tt.weeks, tt.module))
		})
	}
}

func TestWeekDaysInOrder(t *testing.T) {
	t.Run("sorted by date", func(t *testing.T) {
		week := &WeekRecord{Number: 1, Days: map[string]DayRecord{
			"monday":    {Date: "01/06/2025", Topic: "A"},
			"wednesday": {Date: "01/08/2025", Topic: "B"},
			"friday":    {Date: "01/10/2025", Topic: "C"},
		}}

		got := WeekDaysInOrder(week)
		require.Len(t, got, 3)
		assert.Equal(t, "monday", got[0].DayName)
		assert.Equal(t, "Monday", got[0].DisplayName)
		assert.Equal(t, "wednesday", got[1].DayName)
		assert.Equal(t, "friday", got[2].DayName)
	})

	t.Run("unparseable dates sort last", func(t *testing.T) {
		week := &WeekRecord{Number: 1, Days: map[string]DayRecord{
			"monday":    {Date: "finals"},
			"wednesday": {Date: "01/08/2025"},
		}}

		got := WeekDaysInOrder(week)
		require.Len(t, got, 2)
		assert.Equal(t, "wednesday", got[0].DayName)
		assert.Equal(t, "monday", got[1].DayName)
	})

	t.Run("nil week", func(t *testing.T) {
		assert.Empty(t, WeekDaysInOrder(nil))
	})
}
