package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugNonAlnumPattern  = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphenRunPattern = regexp.MustCompile(`-+`)
)

// FormatDate renders t in the MM/DD/YYYY form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCheckoutDueDate renders a schedule date as "Friday, 1/24/2025",
// without zero padding. The raw string comes back unchanged when it does
// not parse.
func FormatCheckoutDueDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d/%d/%d", t.Weekday(), int(t.Month()), t.Day(), t.Year())
}

// FormatQuizDate renders a schedule date as "Wednesday, January 29th" and
// also returns the lowercase weekday name. An unparseable date falls back
// to the raw string and "wednesday".
func FormatQuizDate(date string) (string, string) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date, "wednesday"
	}

	day := t.Day()
	formatted := fmt.Sprintf("%s, %s %d%s", t.Weekday(), t.Month(), day, ordinalSuffix(day))
	return formatted, strings.ToLower(t.Weekday().String())
}

func ordinalSuffix(day int) string {
	if day%100 >= 10 && day%100 <= 20 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// TitleToURLSafe turns a page title into the URL slug used for links
// between course pages: lowercase, "/" becomes "-slash-", apostrophes are
// dropped, "&" becomes "and", and every other non-alphanumeric run
// collapses to a single hyphen.
func TitleToURLSafe(title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}

	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, "/", "-slash-")
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, "&", "and")
	slug = slugNonAlnumPattern.ReplaceAllString(slug, "-")
	slug = slugHyphenRunPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// HomeworkKey formats a homework number as its two-digit key, "HW01".
func HomeworkKey(number string) string {
	n, err := strconv.Atoi(number)
	if err != nil {
		return "HW" + number
	}
	return fmt.Sprintf("HW%02d", n)
}

// HomeworkName formats a homework number as its page heading, "HOMEWORK 1".
func HomeworkName(number string) string {
	return "HOMEWORK " + number
}

// QuizTopic strips the quiz label from a day topic written as
// "QUIZ 2 & Interpolation", leaving the lecture topic that shares the
// day. Topics without the label come back unchanged.
func QuizTopic(topic, quizNumber string) string {
	return strings.ReplaceAll(topic, fmt.Sprintf("QUIZ %s & ", quizNumber), "")
}

// WeekTitle composes the page title "Week 3: Topic (01/20/2025)" from the
// week's first present weekday, appending " - Quiz N" or " - Checkout N"
// when the week holds one. A week number missing from the mapping yields
// the bare "Week 3".
func WeekTitle(weeks Weeks, weekNumber int) string {
	week, ok := weeks[weekNumber]
	if !ok {
		return fmt.Sprintf("Week %d", weekNumber)
	}

	var topic, date string
	for _, weekday := range WeekdayNames {
		day, ok := week.Days[weekday]
		if !ok {
			continue
		}
		if topic == "" && day.Topic != "" {
			topic = strings.TrimSpace(day.Topic)
		}
		if date == "" && day.Date != "" {
			date = strings.TrimSpace(day.Date)
			break
		}
	}

	var title string
	switch {
	case topic != "" && date != "":
		title = fmt.Sprintf("Week %d: %s (%s)", weekNumber, topic, date)
	case topic != "":
		title = fmt.Sprintf("Week %d: %s", weekNumber, topic)
	default:
		title = fmt.Sprintf("Week %d", weekNumber)
	}

	if suffix := weekQuizOrCheckout(week); suffix != "" {
		title += " - " + suffix
	}
	return title
}

// weekQuizOrCheckout scans the week's topics in weekday order and labels
// the first quiz or checkout it finds, quiz checked first on each day.
func weekQuizOrCheckout(week *WeekRecord) string {
	for _, weekday := range WeekdayNames {
		day, ok := week.Days[weekday]
		if !ok || day.Topic == "" {
			continue
		}

		topic := strings.ToUpper(strings.TrimSpace(day.Topic))
		if strings.Contains(topic, "QUIZ") {
			if number, ok := ExtractQuizNumber(topic); ok {
				return "Quiz " + number
			}
			return "Quiz"
		}
		if strings.Contains(topic, "CHECKOUT") {
			if number, ok := ExtractCheckoutNumber(topic); ok {
				return "Checkout " + number
			}
			return "Checkout"
		}
	}
	return ""
}
