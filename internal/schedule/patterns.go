package schedule

import (
	"regexp"
	"strings"
)

// The extractors pull structured tokens out of free-text cells. A miss is
// a normal outcome, never an error: most cells mention no homework, quiz,
// or checkout at all.
var (
	homeworkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)HW\s*(\d+)`),
		regexp.MustCompile(`(?i)Homework\s*(\d+)`),
		regexp.MustCompile(`(?i)Assignment\s*(\d+)`),
	}
	quizPattern     = regexp.MustCompile(`(?i)Quiz\s*(\d+)`)
	checkoutPattern = regexp.MustCompile(`(?i)Checkout\s*(\d+)`)
)

// ExtractHomeworkNumber returns the homework number in text, trying the
// HW, Homework, and Assignment spellings in that order.
func ExtractHomeworkNumber(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, pattern := range homeworkPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// ExtractQuizNumber returns the quiz number in text.
func ExtractQuizNumber(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if match := quizPattern.FindStringSubmatch(text); match != nil {
		return match[1], true
	}
	return "", false
}

// ExtractCheckoutNumber returns the checkout number in text.
func ExtractCheckoutNumber(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if match := checkoutPattern.FindStringSubmatch(text); match != nil {
		return match[1], true
	}
	return "", false
}

// QuizInfoFromTopic derives a day's quiz fields from its topic text. The
// sample quiz URL comes from the externally resolved map keyed by quiz
// number, so tests can supply deterministic fixtures.
func QuizInfoFromTopic(topic string, sampleQuizURLs map[string]string) QuizInfo {
	var info QuizInfo
	number, ok := ExtractQuizNumber(strings.TrimSpace(topic))
	if !ok {
		return info
	}

	info.HasQuiz = true
	info.QuizNumber = number
	info.StudyText = "Study for Quiz " + number
	info.SampleText = "Sample Quiz " + number
	if url, ok := sampleQuizURLs[number]; ok {
		info.SampleQuizURL = url
	}
	return info
}

// CheckoutInfoFromTopic derives a day's checkout fields from its topic
// text.
func CheckoutInfoFromTopic(topic string) CheckoutInfo {
	var info CheckoutInfo
	number, ok := ExtractCheckoutNumber(strings.TrimSpace(topic))
	if !ok {
		return info
	}

	info.HasCheckout = true
	info.CheckoutNumber = number
	return info
}
