package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHomeworkNumber(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{
			name:      "HW without space",
			text:      "HW1",
			want:      "1",
			wantFound: true,
		},
		{
			name:      "HW with space",
			text:      "HW 2 (Problems 1-4)",
			want:      "2",
			wantFound: true,
		},
		{
			name:      "lowercase hw",
			text:      "hw 3 due",
			want:      "3",
			wantFound: true,
		},
		{
			name:      "Homework spelling",
			text:      "Homework 4",
			want:      "4",
			wantFound: true,
		},
		{
			name:      "Assignment spelling",
			text:      "Assignment 12",
			want:      "12",
			wantFound: true,
		},
		{
			name:      "HW spelling wins over later Assignment",
			text:      "Assignment 5 and HW 6",
			want:      "6",
			wantFound: true,
		},
		{
			name: "no number",
			text: "HW (see Canvas)",
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name: "unrelated text",
			text: "Read chapter 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractHomeworkNumber(tt.text)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractQuizNumber(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{
			name:      "uppercase topic",
			text:      "QUIZ 2 & Interpolation",
			want:      "2",
			wantFound: true,
		},
		{
			name:      "no space",
			text:      "Quiz3",
			want:      "3",
			wantFound: true,
		},
		{
			name: "no quiz",
			text: "Numerical Integration",
		},
		{
			name: "empty",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractQuizNumber(tt.text)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCheckoutNumber(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{
			name:      "uppercase topic",
			text:      "CHECKOUT 1",
			want:      "1",
			wantFound: true,
		},
		{
			name:      "mixed case with trailing text",
			text:      "Checkout 2 - teams",
			want:      "2",
			wantFound: true,
		},
		{
			name: "no checkout",
			text: "Lecture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractCheckoutNumber(tt.text)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizInfoFromTopic(t *testing.T) {
	sampleQuizURLs := map[string]string{
		"2": "https://example.instructure.com/courses/1/pages/sample-quiz-2",
	}

	tests := []struct {
		name  string
		topic string
		want  QuizInfo
	}{
		{
			name:  "quiz with sample page",
			topic: "QUIZ 2 & Interpolation",
			want: QuizInfo{
				HasQuiz:       true,
				QuizNumber:    "2",
				StudyText:     "Study for Quiz 2",
				SampleText:    "Sample Quiz 2",
				SampleQuizURL: "https://example.instructure.com/courses/1/pages/sample-quiz-2",
			},
		},
		{
			name:  "quiz without sample page",
			topic: "Quiz 7",
			want: QuizInfo{
				HasQuiz:    true,
				QuizNumber: "7",
				StudyText:  "Study for Quiz 7",
				SampleText: "Sample Quiz 7",
			},
		},
		{
			name:  "no quiz",
			topic: "Root Finding",
			want:  QuizInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuizInfoFromTopic(tt.topic, sampleQuizURLs))
		})
	}
}

func TestCheckoutInfoFromTopic(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  CheckoutInfo
	}{
		{
			name:  "checkout day",
			topic: "CHECKOUT 3",
			want:  CheckoutInfo{HasCheckout: true, CheckoutNumber: "3"},
		},
		{
			name:  "plain lecture",
			topic: "Linear Systems",
			want:  CheckoutInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckoutInfoFromTopic(tt.topic))
		})
	}
}
