package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// QuizOccurrence is one quiz found on the calendar.
type QuizOccurrence struct {
	Number int
	Date   string
	Week   int
	Day    string
}

// CheckoutOccurrence is one checkout found on the calendar. Module is
// the checkout number itself: Checkout N reviews Module N.
type CheckoutOccurrence struct {
	Number int
	Date   string
	Week   int
	Day    string
	Module int
}

// HomeworkOccurrence describes one homework visible from a week, with
// the opposite endpoint resolved across the whole calendar.
type HomeworkOccurrence struct {
	Number       string
	AssignedDate string
	DueDate      string
	Day          string
	Key          string
	Name         string
}

var moduleDigitsPattern = regexp.MustCompile(`\d+`)

// hwNumberIn matches only the literal HW spelling. The calendar lookups
// key off the HW label; homework pages also accept the longer spellings
// through ExtractHomeworkNumber.
func hwNumberIn(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if match := homeworkPatterns[0].FindStringSubmatch(text); match != nil {
		return match[1], true
	}
	return "", false
}

// FindDueDateForHomework scans every week's due column for the homework
// number and returns the matching day's date, or DueDateTBD when no cell
// mentions it. The match is raw substring containment, so "1" also
// matches a cell that says HW 10: the first match in calendar order
// wins.
func FindDueDateForHomework(weeks Weeks, number string) string {
	for _, weekNumber := range weeks.SortedNumbers() {
		week := weeks[weekNumber]
		for _, dayName := range WeekdayNames {
			day, ok := week.Days[dayName]
			if !ok {
				continue
			}
			if day.Due != "" && strings.Contains(day.Due, number) {
				return day.Date
			}
		}
	}
	return DueDateTBD
}

// FindAssignedDateForHomework is the assigned-column counterpart of
// FindDueDateForHomework.
func FindAssignedDateForHomework(weeks Weeks, number string) string {
	for _, weekNumber := range weeks.SortedNumbers() {
		week := weeks[weekNumber]
		for _, dayName := range WeekdayNames {
			day, ok := week.Days[dayName]
			if !ok {
				continue
			}
			if day.Assigned != "" && strings.Contains(day.Assigned, number) {
				return day.Date
			}
		}
	}
	return DueDateTBD
}

// FindHomeworkDueForCheckout finds the homework due in the same week as
// a checkout. It returns the homework number and that day's date, or
// empty strings when nothing is due that week.
func FindHomeworkDueForCheckout(weeks Weeks, weekNumber int) (string, string) {
	week, ok := weeks[weekNumber]
	if !ok {
		return "", ""
	}
	for _, dayName := range WeekdayNames {
		day, ok := week.Days[dayName]
		if !ok {
			continue
		}
		if number, ok := hwNumberIn(day.Due); ok {
			return number, day.Date
		}
	}
	return "", ""
}

// CollectQuizzes gathers every quiz on the calendar, checking lecture
// days only. Quizzes without a date are skipped. The result is ordered
// by quiz number.
func CollectQuizzes(weeks Weeks, lectureDays []string) []QuizOccurrence {
	var quizzes []QuizOccurrence
	for _, weekNumber := range weeks.SortedNumbers() {
		week := weeks[weekNumber]
		for _, dayName := range lectureDays {
			day, ok := week.Days[dayName]
			if !ok || !day.HasQuiz {
				continue
			}
			if day.QuizNumber == "" || day.Date == "" {
				continue
			}
			number, err := strconv.Atoi(day.QuizNumber)
			if err != nil {
				continue
			}
			quizzes = append(quizzes, QuizOccurrence{
				Number: number,
				Date:   day.Date,
				Week:   weekNumber,
				Day:    dayName,
			})
		}
	}
	sort.SliceStable(quizzes, func(i, j int) bool {
		return quizzes[i].Number < quizzes[j].Number
	})
	return quizzes
}

// CollectCheckouts gathers every checkout on the calendar, checking all
// weekdays. Unlike quizzes a checkout keeps its slot even when the day
// has no date. The result is ordered by checkout number.
func CollectCheckouts(weeks Weeks) []CheckoutOccurrence {
	var checkouts []CheckoutOccurrence
	for _, weekNumber := range weeks.SortedNumbers() {
		week := weeks[weekNumber]
		for _, dayName := range WeekdayNames {
			day, ok := week.Days[dayName]
			if !ok {
				continue
			}
			numberText, ok := ExtractCheckoutNumber(day.Topic)
			if !ok {
				continue
			}
			number, err := strconv.Atoi(numberText)
			if err != nil {
				continue
			}
			checkouts = append(checkouts, CheckoutOccurrence{
				Number: number,
				Date:   day.Date,
				Week:   weekNumber,
				Day:    dayName,
				Module: number,
			})
		}
	}
	sort.SliceStable(checkouts, func(i, j int) bool {
		return checkouts[i].Number < checkouts[j].Number
	})
	return checkouts
}

// FindNextQuiz returns the first quiz, in number order, whose date is on
// or after the current week's reference date. The reference is the first
// lecture day of the week that has a date. Without a usable reference
// the first quiz is returned; when every quiz has passed, nil.
func FindNextQuiz(weeks Weeks, currentWeek int, lectureDays []string) *QuizOccurrence {
	quizzes := CollectQuizzes(weeks, lectureDays)
	if len(quizzes) == 0 {
		return nil
	}

	reference, ok := weekReferenceDate(weeks, currentWeek, lectureDays)
	if !ok {
		return &quizzes[0]
	}
	for i := range quizzes {
		date, err := time.Parse(DateLayout, quizzes[i].Date)
		if err != nil {
			continue
		}
		if !date.Before(reference) {
			return &quizzes[i]
		}
	}
	return nil
}

// FindNextCheckout is the checkout counterpart of FindNextQuiz.
func FindNextCheckout(weeks Weeks, currentWeek int, lectureDays []string) *CheckoutOccurrence {
	checkouts := CollectCheckouts(weeks)
	if len(checkouts) == 0 {
		return nil
	}

	reference, ok := weekReferenceDate(weeks, currentWeek, lectureDays)
	if !ok {
		return &checkouts[0]
	}
	for i := range checkouts {
		date, err := time.Parse(DateLayout, checkouts[i].Date)
		if err != nil {
			continue
		}
		if !date.Before(reference) {
			return &checkouts[i]
		}
	}
	return nil
}

func weekReferenceDate(weeks Weeks, weekNumber int, lectureDays []string) (time.Time, bool) {
	week, ok := weeks[weekNumber]
	if !ok {
		return time.Time{}, false
	}
	for _, dayName := range lectureDays {
		day, ok := week.Days[dayName]
		if !ok || day.Date == "" {
			continue
		}
		reference, err := time.Parse(DateLayout, day.Date)
		if err != nil {
			return time.Time{}, false
		}
		return reference, true
	}
	return time.Time{}, false
}

// CollectHomeworkOpening lists the homework assigned during a week. The
// due date for each is resolved across the whole calendar.
func CollectHomeworkOpening(weeks Weeks, weekNumber int) []HomeworkOccurrence {
	week, ok := weeks[weekNumber]
	if !ok {
		return nil
	}
	var opening []HomeworkOccurrence
	for _, dayName := range WeekdayNames {
		day, ok := week.Days[dayName]
		if !ok {
			continue
		}
		number, ok := hwNumberIn(day.Assigned)
		if !ok {
			continue
		}
		opening = append(opening, HomeworkOccurrence{
			Number:       number,
			AssignedDate: day.Date,
			DueDate:      FindDueDateForHomework(weeks, number),
			Day:          dayName,
			Key:          HomeworkKey(number),
			Name:         HomeworkName(number),
		})
	}
	return opening
}

// CollectHomeworkDue lists the homework due during a week. The assigned
// date for each is resolved across the whole calendar.
func CollectHomeworkDue(weeks Weeks, weekNumber int) []HomeworkOccurrence {
	week, ok := weeks[weekNumber]
	if !ok {
		return nil
	}
	var due []HomeworkOccurrence
	for _, dayName := range WeekdayNames {
		day, ok := week.Days[dayName]
		if !ok {
			continue
		}
		number, ok := hwNumberIn(day.Due)
		if !ok {
			continue
		}
		due = append(due, HomeworkOccurrence{
			Number:       number,
			AssignedDate: FindAssignedDateForHomework(weeks, number),
			DueDate:      day.Date,
			Day:          dayName,
			Key:          HomeworkKey(number),
			Name:         HomeworkName(number),
		})
	}
	return due
}

// CollectHomeworkNumbers lists every distinct homework number mentioned
// in an assigned or due column anywhere on the calendar, sorted
// numerically.
func CollectHomeworkNumbers(weeks Weeks) []string {
	seen := map[string]struct{}{}
	for _, weekNumber := range weeks.SortedNumbers() {
		week := weeks[weekNumber]
		for _, dayName := range WeekdayNames {
			day, ok := week.Days[dayName]
			if !ok {
				continue
			}
			if number, ok := hwNumberIn(day.Assigned); ok {
				seen[number] = struct{}{}
			}
			if number, ok := hwNumberIn(day.Due); ok {
				seen[number] = struct{}{}
			}
		}
	}

	numbers := make([]string, 0, len(seen))
	for number := range seen {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool {
		left, _ := strconv.Atoi(numbers[i])
		right, _ := strconv.Atoi(numbers[j])
		return left < right
	})
	return numbers
}

// LessonRangeForModule derives the lesson span of a module from the raw
// sheet rows by scanning for rows where the module column changes. Only
// rows with a real lesson label participate: empty cells and the "-"
// placeholder neither open nor close a range. When the module never
// appears the conventional A-D span is returned.
func LessonRangeForModule(rows []ScheduleRow, moduleNumber int) string {
	lessonAt := func(index int) string {
		if index < 0 || index >= len(rows) {
			return ""
		}
		return strings.TrimSpace(rows[index].Lesson)
	}

	ranges := map[int]string{}
	currentModule := 0
	haveModule := false
	startLesson := ""

	closeRange := func(endIndex int) {
		endLesson := startLesson
		if endIndex > 0 {
			if lesson := lessonAt(endIndex); lesson != "" && lesson != "-" {
				endLesson = lesson
			} else {
				for back := endIndex; back > 0; back-- {
					if lesson := lessonAt(back); lesson != "" && lesson != "-" {
						endLesson = lesson
						break
					}
				}
			}
		}
		if startLesson == endLesson {
			ranges[currentModule] = startLesson
		} else {
			ranges[currentModule] = startLesson + "-" + endLesson
		}
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		lessonCell := strings.TrimSpace(row.Lesson)
		if lessonCell == "" || lessonCell == "-" {
			continue
		}

		extracted := 0
		if moduleCell := strings.TrimSpace(row.Module); moduleCell != "" {
			if digits := moduleDigitsPattern.FindString(moduleCell); digits != "" {
				if value, err := strconv.Atoi(digits); err == nil {
					extracted = value
				}
			}
		}

		if !haveModule || (extracted != 0 && extracted != currentModule) {
			if haveModule && startLesson != "" {
				closeRange(i - 1)
			}
			if extracted != 0 {
				currentModule = extracted
				haveModule = true
				startLesson = lessonCell
			}
		}
	}

	if haveModule && startLesson != "" {
		closeRange(len(rows) - 1)
	}

	if lessonRange, ok := ranges[moduleNumber]; ok {
		return lessonRange
	}
	return fmt.Sprintf("%dA-%dD", moduleNumber, moduleNumber)
}

// HomeworkRangeForModule summarizes the homework attached to a module's
// weeks as a label like HW01, HW01 & HW02, or HW01-HW03.
func HomeworkRangeForModule(weeks Weeks, moduleNumber int) string {
	seen := map[int]bool{}
	var numbers []int
	record := func(text string) {
		numberText, ok := hwNumberIn(text)
		if !ok {
			return
		}
		number, err := strconv.Atoi(numberText)
		if err != nil || seen[number] {
			return
		}
		seen[number] = true
		numbers = append(numbers, number)
	}

	for _, weekNumber := range weeks.SortedNumbers() {
		week := weeks[weekNumber]
		if !week.ModuleResolved() || week.Module != moduleNumber {
			continue
		}
		for _, dayName := range WeekdayNames {
			day, ok := week.Days[dayName]
			if !ok {
				continue
			}
			record(day.Assigned)
			record(day.Due)
		}
	}

	if len(numbers) == 0 {
		return fmt.Sprintf("HW%02d", moduleNumber)
	}
	sort.Ints(numbers)
	switch len(numbers) {
	case 1:
		return fmt.Sprintf("HW%02d", numbers[0])
	case 2:
		return fmt.Sprintf("HW%02d & HW%02d", numbers[0], numbers[1])
	default:
		return fmt.Sprintf("HW%02d-HW%02d", numbers[0], numbers[len(numbers)-1])
	}
}

// DayEntry pairs a weekday with its record for ordered rendering.
type DayEntry struct {
	DayName     string
	DisplayName string
	Date        string
	Day         DayRecord
}

// WeekDaysInOrder returns the days present in a week sorted by date.
// Days whose date does not parse sort last, keeping weekday order among
// themselves.
func WeekDaysInOrder(week *WeekRecord) []DayEntry {
	if week == nil {
		return nil
	}
	type candidate struct {
		entry DayEntry
		date  *time.Time
	}
	var found []candidate
	for _, dayName := range WeekdayNames {
		day, ok := week.Days[dayName]
		if !ok {
			continue
		}
		c := candidate{entry: DayEntry{
			DayName:     dayName,
			DisplayName: strings.ToUpper(dayName[:1]) + dayName[1:],
			Date:        day.Date,
			Day:         day,
		}}
		if day.Date != "" {
			if date, err := time.Parse(DateLayout, day.Date); err == nil {
				c.date = &date
			}
		}
		found = append(found, c)
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].date == nil {
			return false
		}
		if found[j].date == nil {
			return true
		}
		return found[i].date.Before(*found[j].date)
	})

	entries := make([]DayEntry, 0, len(found))
	for _, c := range found {
		entries = append(entries, c.entry)
	}
	return entries
}
