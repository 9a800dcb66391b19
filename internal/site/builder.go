package site

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/at-ishikawa/coursebuilder/internal/course"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// ErrCourseIDRequired is returned when a build is attempted without a
// course ID. The wording shows up verbatim in the web form.
var ErrCourseIDRequired = errors.New("Course ID is required. Please set a Course ID in the Course Configuration section.")

// PageURLs carries the Canvas URLs of already-created assignments so the
// weekly pages can link to them. Keys are assignment names as uploaded:
// "HW01", "Quiz 1", "Checkout1".
type PageURLs struct {
	Homework map[string]string
	Quiz     map[string]string
	Checkout map[string]string
}

// WeekDayColumn is one day column of a weekly page with its header
// color.
type WeekDayColumn struct {
	schedule.DayEntry
	Color string
}

// WeeklyPageData is the render context of one weekly page.
type WeeklyPageData struct {
	Week            *schedule.WeekRecord
	WeekNumber      int
	LastWeekText    template.HTML
	NextWeekText    template.HTML
	CourseID        string
	HomeworkURLs    map[string]string
	QuizURLs        map[string]string
	CheckoutURLs    map[string]string
	NextQuiz        *schedule.QuizOccurrence
	NextCheckout    *schedule.CheckoutOccurrence
	HomeworkOpening []schedule.HomeworkOccurrence
	HomeworkDue     []schedule.HomeworkOccurrence
	IconURLs        map[string]string
	LectureInfo     schedule.LectureInfo
	PDFURLs         map[string]string
	WeekDays        []WeekDayColumn
}

// HomeworkPageData is the render context of one homework page.
type HomeworkPageData struct {
	HomeworkNumber          string
	AssignedDate            string
	DueDate                 string
	ModuleNumber            int
	LearningObjectives      []string
	LearningObjectivesTopic string
	CourseID                string
}

// QuizPageData is the render context of one quiz page.
type QuizPageData struct {
	QuizNumber              int
	QuizDate                string
	FormattedQuizDate       string
	QuizTopic               string
	ModuleNumber            int
	LessonRange             string
	HomeworkRange           string
	LearningObjectives      []string
	LearningObjectivesTopic string
	SampleQuizURL           string
	CourseID                string
}

// CheckoutPageData is the render context of one checkout page.
type CheckoutPageData struct {
	CheckoutNumber           int
	CheckoutDate             string
	FormattedDueDate         string
	ModuleNumber             int
	LearningObjectives       []string
	LearningObjectivesTopic  string
	CollaborationObjectives  []string
	CommunicationsObjectives []string
	TaskText                 template.HTML
	HomeworkNumber           string
	CourseID                 string
}

// BuilderOptions configures a page build session.
type BuilderOptions struct {
	CourseBaseURL string
	CourseID      string
	// UniqueID tags every file name of this session so parallel builds
	// never collide. It also names the session's output subdirectory.
	UniqueID  string
	OutputDir string
	// TemplatesDir overrides the embedded templates when set.
	TemplatesDir string
}

// Builder renders the weekly, homework, quiz and checkout pages of one
// calendar into a session output directory.
type Builder struct {
	weeks       schedule.Weeks
	rows        []schedule.ScheduleRow
	metadata    *course.Metadata
	iconURLs    map[string]string
	lectureInfo schedule.LectureInfo
	lectureDays []string

	courseBaseURL string
	courseID      string
	uid           string
	outputDir     string
	templatesDir  string
}

// NewBuilder creates the session output directory and the builder
// writing into it. The rows are the raw schedule rows the calendar was
// built from; the quiz pages derive lesson ranges from them.
func NewBuilder(calendar *schedule.Calendar, rows []schedule.ScheduleRow, metadata *course.Metadata, opts BuilderOptions) (*Builder, error) {
	outputDir := filepath.Join(opts.OutputDir, opts.UniqueID)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}

	return &Builder{
		weeks:         calendar.Weeks,
		rows:          rows,
		metadata:      metadata,
		iconURLs:      calendar.IconURLs,
		lectureInfo:   calendar.LectureInfo,
		lectureDays:   calendar.LectureInfo.LectureDays(),
		courseBaseURL: strings.TrimSuffix(opts.CourseBaseURL, "/"),
		courseID:      opts.CourseID,
		uid:           opts.UniqueID,
		outputDir:     outputDir,
		templatesDir:  opts.TemplatesDir,
	}, nil
}

// OutputDir returns the session output directory the pages are written
// into.
func (b *Builder) OutputDir() string {
	return b.outputDir
}

// BuildAll renders every page kind and returns the written file paths.
// The weekly pages carry no assignment links yet; rebuild them with
// BuildWeeklyPages once the assignments exist on Canvas.
func (b *Builder) BuildAll(pdfURLs map[string]string) ([]string, error) {
	var files []string

	weekly, err := b.BuildWeeklyPages(PageURLs{}, pdfURLs)
	files = append(files, weekly...)
	if err != nil {
		return files, fmt.Errorf("b.BuildWeeklyPages > %w", err)
	}

	homework, err := b.BuildHomeworkPages()
	files = append(files, homework...)
	if err != nil {
		return files, fmt.Errorf("b.BuildHomeworkPages > %w", err)
	}

	quiz, err := b.BuildQuizPages()
	files = append(files, quiz...)
	if err != nil {
		return files, fmt.Errorf("b.BuildQuizPages > %w", err)
	}

	checkout, err := b.BuildCheckoutPages(nil)
	files = append(files, checkout...)
	if err != nil {
		return files, fmt.Errorf("b.BuildCheckoutPages > %w", err)
	}

	return files, nil
}

// BuildWeeklyPages renders one page per calendar week. The URL maps are
// empty on the first build; once the homework, quiz and checkout
// assignments exist on Canvas, a second build links the weekly pages to
// them.
func (b *Builder) BuildWeeklyPages(urls PageURLs, pdfURLs map[string]string) ([]string, error) {
	if b.courseID == "" {
		return nil, ErrCourseIDRequired
	}

	tmpl, err := parseTemplateWithFallback(b.templatesDir, "weekly-page.html.go.tmpl", fallbackWeeklyPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parseTemplateWithFallback > %w", err)
	}

	var files []string
	numbers := b.weeks.SortedNumbers()
	for i, number := range numbers {
		week := b.weeks[number]

		data := WeeklyPageData{
			Week:            week,
			WeekNumber:      number,
			LastWeekText:    b.weekNavText(number-1, number-1 > 0),
			NextWeekText:    b.weekNavText(number+1, i < len(numbers)-1),
			CourseID:        b.courseID,
			HomeworkURLs:    urls.Homework,
			QuizURLs:        urls.Quiz,
			CheckoutURLs:    urls.Checkout,
			NextQuiz:        schedule.FindNextQuiz(b.weeks, number, b.lectureDays),
			NextCheckout:    schedule.FindNextCheckout(b.weeks, number, b.lectureDays),
			HomeworkOpening: schedule.CollectHomeworkOpening(b.weeks, number),
			HomeworkDue:     schedule.CollectHomeworkDue(b.weeks, number),
			IconURLs:        b.iconURLs,
			LectureInfo:     b.lectureInfo,
			PDFURLs:         pdfURLs,
			WeekDays:        weekDayColumns(week),
		}

		fileName := fmt.Sprintf("week_%d_%s.html", number, b.uid)
		if err := b.renderToFile(tmpl, fileName, data); err != nil {
			return files, err
		}
		files = append(files, filepath.Join(b.outputDir, fileName))
	}

	return files, nil
}

// BuildHomeworkPages renders one page per homework found on the
// calendar. A homework is found on any day whose assigned cell mentions
// HW and yields a number; the due date is resolved across all weeks.
func (b *Builder) BuildHomeworkPages() ([]string, error) {
	tmpl, err := parseTemplateWithFallback(b.templatesDir, "homework-page.html.go.tmpl", fallbackHomeworkPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parseTemplateWithFallback > %w", err)
	}

	var files []string
	for _, number := range b.weeks.SortedNumbers() {
		week := b.weeks[number]
		for _, entry := range weekdayEntries(week) {
			day := entry.Day
			if day.Assigned == "" || !strings.Contains(strings.ToUpper(day.Assigned), "HW") {
				continue
			}
			homeworkNumber, ok := schedule.ExtractHomeworkNumber(day.Assigned)
			if !ok {
				continue
			}

			topic := week.LearningObjectivesTopic
			if topic == "" {
				topic = "General"
			}
			data := HomeworkPageData{
				HomeworkNumber:          homeworkNumber,
				AssignedDate:            day.Date,
				DueDate:                 schedule.FindDueDateForHomework(b.weeks, homeworkNumber),
				ModuleNumber:            week.Module,
				LearningObjectives:      week.LearningObjectives,
				LearningObjectivesTopic: topic,
				CourseID:                b.courseID,
			}

			fileName := fmt.Sprintf("homework_%s_%s.html", homeworkNumber, b.uid)
			if err := b.renderToFile(tmpl, fileName, data); err != nil {
				return files, err
			}
			files = append(files, filepath.Join(b.outputDir, fileName))
		}
	}

	return files, nil
}

// BuildQuizPages renders one page per quiz found on the calendar's
// lecture days.
func (b *Builder) BuildQuizPages() ([]string, error) {
	tmpl, err := parseTemplateWithFallback(b.templatesDir, "quiz-page.html.go.tmpl", fallbackQuizPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parseTemplateWithFallback > %w", err)
	}

	var files []string
	for _, occurrence := range schedule.CollectQuizzes(b.weeks, b.lectureDays) {
		week := b.weeks[occurrence.Week]
		day, _ := week.Day(occurrence.Day)
		objectives, topic := b.moduleObjectives(occurrence.Number)

		formattedDate, _ := schedule.FormatQuizDate(occurrence.Date)
		data := QuizPageData{
			QuizNumber:              occurrence.Number,
			QuizDate:                occurrence.Date,
			FormattedQuizDate:       formattedDate,
			QuizTopic:               schedule.QuizTopic(day.Topic, strconv.Itoa(occurrence.Number)),
			ModuleNumber:            occurrence.Number,
			LessonRange:             schedule.LessonRangeForModule(b.rows, occurrence.Number),
			HomeworkRange:           schedule.HomeworkRangeForModule(b.weeks, occurrence.Number),
			LearningObjectives:      objectives,
			LearningObjectivesTopic: topic,
			SampleQuizURL:           day.SampleQuizURL,
			CourseID:                b.courseID,
		}

		fileName := fmt.Sprintf("quiz_%d_%s.html", occurrence.Number, b.uid)
		if err := b.renderToFile(tmpl, fileName, data); err != nil {
			return files, err
		}
		files = append(files, filepath.Join(b.outputDir, fileName))
	}

	return files, nil
}

// BuildCheckoutPages renders one page per checkout found on the
// calendar. When the homework assignment URLs are known, each page links
// its checkout problem to the homework due that week.
func (b *Builder) BuildCheckoutPages(homeworkURLs map[string]string) ([]string, error) {
	tmpl, err := parseTemplateWithFallback(b.templatesDir, "checkout-page.html.go.tmpl", fallbackCheckoutPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parseTemplateWithFallback > %w", err)
	}

	var files []string
	for _, occurrence := range schedule.CollectCheckouts(b.weeks) {
		homeworkNumber, _ := schedule.FindHomeworkDueForCheckout(b.weeks, occurrence.Week)

		homeworkURL := ""
		if homeworkNumber != "" {
			homeworkURL = homeworkURLs[schedule.HomeworkKey(homeworkNumber)]
		}

		objectives, topic := b.moduleObjectives(occurrence.Module)
		data := CheckoutPageData{
			CheckoutNumber:           occurrence.Number,
			CheckoutDate:             occurrence.Date,
			FormattedDueDate:         schedule.FormatCheckoutDueDate(occurrence.Date),
			ModuleNumber:             occurrence.Module,
			LearningObjectives:       objectives,
			LearningObjectivesTopic:  topic,
			CollaborationObjectives:  CollaborationObjectives,
			CommunicationsObjectives: CommunicationsObjectives,
			TaskText:                 CheckoutTaskText(homeworkNumber, homeworkURL),
			HomeworkNumber:           homeworkNumber,
			CourseID:                 b.courseID,
		}

		fileName := fmt.Sprintf("checkout_%d_%s.html", occurrence.Number, b.uid)
		if err := b.renderToFile(tmpl, fileName, data); err != nil {
			return files, err
		}
		files = append(files, filepath.Join(b.outputDir, fileName))
	}

	return files, nil
}

// weekNavText builds one weekly navigation link. The linked flag follows
// the page layout rather than the calendar: the previous link exists for
// any week number above zero and the next link for any non-final
// position, even when that week is missing from the calendar.
func (b *Builder) weekNavText(weekNumber int, linked bool) template.HTML {
	if !linked {
		return "N/A"
	}

	title := schedule.WeekTitle(b.weeks, weekNumber)
	slug := schedule.TitleToURLSafe(title)
	href := fmt.Sprintf("%s/courses/%s/pages/%s", b.courseBaseURL, b.courseID, slug)
	return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), html.EscapeString(title)))
}

// moduleObjectives looks up a module's learning objectives in the course
// metadata, applying the same defaults the pages show when the metadata
// has no entry.
func (b *Builder) moduleObjectives(moduleNumber int) ([]string, string) {
	if b.metadata == nil {
		return nil, "General"
	}

	objectives, ok := b.metadata.Objectives[moduleNumber]
	if !ok {
		slog.Warn("no learning objectives for module", "module", moduleNumber)
		return nil, "General"
	}
	topic := objectives.LearningObjectivesTopic
	if topic == "" {
		topic = "General"
	}
	return objectives.LearningObjectives, topic
}

func (b *Builder) renderToFile(tmpl *template.Template, fileName string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("tmpl.Execute(%s) > %w", fileName, err)
	}

	outputPath := filepath.Join(b.outputDir, fileName)
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
	}
	return nil
}

func weekDayColumns(week *schedule.WeekRecord) []WeekDayColumn {
	entries := schedule.WeekDaysInOrder(week)
	columns := make([]WeekDayColumn, 0, len(entries))
	for i, entry := range entries {
		columns = append(columns, WeekDayColumn{DayEntry: entry, Color: schedule.DayColor(i)})
	}
	return columns
}

// weekdayEntries walks a week's days in weekday order, skipping weekdays
// the week has no record for.
func weekdayEntries(week *schedule.WeekRecord) []schedule.DayEntry {
	if week == nil {
		return nil
	}

	entries := make([]schedule.DayEntry, 0, len(week.Days))
	for _, name := range schedule.WeekdayNames {
		day, ok := week.Day(name)
		if !ok {
			continue
		}
		entries = append(entries, schedule.DayEntry{DayName: name, Day: day})
	}
	return entries
}
