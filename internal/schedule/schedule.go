// Package schedule turns the course schedule workbook into per-week and
// per-day records and answers cross-week queries against the finished
// records. The records are built once per run and treated as read-only by
// every query afterwards.
package schedule

import (
	"sort"
	"strconv"
	"time"
)

// DueDateTBD is returned when a homework due date cannot be resolved.
const DueDateTBD = "TBD"

// DateLayout is the MM/DD/YYYY form used at every sheet and page boundary.
// Input may omit leading zeros; output never does.
const DateLayout = "01/02/2006"

// WeekdayNames orders the seven days with Monday first, matching the
// weekday derivation of the sheet's date column. Every scan across a
// week's days walks this order.
var WeekdayNames = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// DefaultLectureDays is the lecture-day list used when the course
// metadata does not configure one.
var DefaultLectureDays = []string{"monday", "wednesday", "friday"}

// dayColumnColors paints day columns left to right on the weekly page.
var dayColumnColors = []string{
	"#c3ddd6",
	"#f6cac9",
	"#d1c3d5",
	"#fcf7d2",
	"#d5e0ec",
	"#e8d5c3",
	"#c3e8d5",
}

// DayColor returns the background color for the day column at index.
func DayColor(index int) string {
	return dayColumnColors[index%len(dayColumnColors)]
}

// WeekdayName returns the lowercase name for t's day of week.
func WeekdayName(t time.Time) string {
	return WeekdayNames[(int(t.Weekday())+6)%7]
}

// ScheduleRow is one line of the schedule workbook. The column layout is a
// fixed contract of the course template; Date is nil when the cell did not
// hold a real calendar date, with the raw text kept for diagnostics.
type ScheduleRow struct {
	Index      int
	Week       string
	Module     string
	Lesson     string
	Date       *time.Time
	RawDate    string
	Topic      string
	Referenced string
	Assigned   string
	Due        string
	Prework    string
}

// QuizInfo is derived from a day's topic text.
type QuizInfo struct {
	HasQuiz       bool   `yaml:"has_quiz"`
	QuizNumber    string `yaml:"quiz_number,omitempty"`
	StudyText     string `yaml:"study_text,omitempty"`
	SampleText    string `yaml:"sample_text,omitempty"`
	SampleQuizURL string `yaml:"sample_quiz_url,omitempty"`
}

// CheckoutInfo is derived from a day's topic text. Checkout N covers
// module N by course convention.
type CheckoutInfo struct {
	HasCheckout    bool   `yaml:"has_checkout"`
	CheckoutNumber string `yaml:"checkout_number,omitempty"`
}

// DayRecord is one weekday's slice of a week: the schedule cells for that
// day plus the quiz/checkout/prework fields derived from them.
type DayRecord struct {
	Date              string `yaml:"date"`
	Lesson            string `yaml:"lesson,omitempty"`
	Topic             string `yaml:"topic,omitempty"`
	Referenced        string `yaml:"referenced,omitempty"`
	Assigned          string `yaml:"assigned,omitempty"`
	Due               string `yaml:"due,omitempty"`
	QuizInfo          `yaml:"quiz_info"`
	CheckoutInfo      `yaml:"checkout_info"`
	PreworkVideoTitle string `yaml:"prework_video_title,omitempty"`
	PreworkVideoLink  string `yaml:"prework_video_link,omitempty"`
}

// WeekOverview is the per-week overview entry of the course metadata.
type WeekOverview struct {
	Description string `yaml:"description"`
}

// ModuleObjectives is the per-module objectives entry of the course
// metadata.
type ModuleObjectives struct {
	LearningObjectives      []string `yaml:"learning_objectives"`
	LearningObjectivesTopic string   `yaml:"learning_objectives_topic"`
}

// WeekImage is the per-week image entry of the course metadata. ImagePath
// is filled in later from the course file store.
type WeekImage struct {
	ImageName string `yaml:"image_name"`
	ImagePath string `yaml:"image_path,omitempty"`
	AltText   string `yaml:"alt_text,omitempty"`
}

// WeekRecord aggregates one calendar week of the course: its module, the
// joined metadata, and the days that had dated rows in the sheet. Not
// every weekday is present.
type WeekRecord struct {
	Number                  int                  `yaml:"number"`
	Module                  int                  `yaml:"module"`
	OverviewStatement       string               `yaml:"overview_statement,omitempty"`
	Image                   WeekImage            `yaml:"image,omitempty"`
	LearningObjectives      []string             `yaml:"learning_objectives,omitempty"`
	LearningObjectivesTopic string               `yaml:"learning_objectives_topic,omitempty"`
	Days                    map[string]DayRecord `yaml:"days,omitempty"`

	moduleSet bool
}

// moduleString is the stored module's string form, empty until a module
// cell has been resolved. The walker's sentinel check reads it.
func (w *WeekRecord) moduleString() string {
	if !w.moduleSet {
		return ""
	}
	return strconv.Itoa(w.Module)
}

// ModuleResolved reports whether any row resolved a module for this week.
func (w *WeekRecord) ModuleResolved() bool {
	return w.moduleSet
}

// Day returns the record for the named weekday.
func (w *WeekRecord) Day(name string) (DayRecord, bool) {
	day, ok := w.Days[name]
	return day, ok
}

// Weeks is the week mapping keyed by week number.
type Weeks map[int]*WeekRecord

// SortedNumbers returns the week numbers in ascending order. Every scan
// across weeks uses this order.
func (w Weeks) SortedNumbers() []int {
	numbers := make([]int, 0, len(w))
	for number := range w {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers
}

// MarkModulesResolved restores the resolved flag on every week. Snapshot
// loading uses it: a snapshot is only written after the metadata join,
// which fails unless every week's module resolved.
func (w Weeks) MarkModulesResolved() {
	for _, week := range w {
		week.moduleSet = true
	}
}

// LectureInfo is pass-through lecture metadata handed to the renderers
// next to the week records.
type LectureInfo struct {
	Days     []string `yaml:"days,omitempty"`
	Time     string   `yaml:"time,omitempty"`
	Location string   `yaml:"location,omitempty"`
}

// LectureDays returns the configured lecture-day list, or the default
// Monday/Wednesday/Friday set.
func (l LectureInfo) LectureDays() []string {
	if len(l.Days) == 0 {
		return DefaultLectureDays
	}
	return l.Days
}

// Calendar is the finished output of one build run: the week records plus
// the two pass-through entries the renderers expect alongside them.
type Calendar struct {
	Weeks       Weeks             `yaml:"weeks"`
	IconURLs    map[string]string `yaml:"icon_urls,omitempty"`
	LectureInfo LectureInfo       `yaml:"lecture_info,omitempty"`
}
