package course

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

func TestCollectCalendarURLs(t *testing.T) {
	calendar := &schedule.Calendar{
		Weeks: schedule.Weeks{
			1: &schedule.WeekRecord{
				Number: 1,
				Image:  schedule.WeekImage{ImagePath: "https://host/images/week1.png"},
				Days: map[string]schedule.DayRecord{
					"monday": {
						PreworkVideoLink: "https://host/courses/7/pages/prework-module-1-vectors",
						QuizInfo: schedule.QuizInfo{
							HasQuiz:       true,
							SampleQuizURL: "https://host/quizzes/sample1",
						},
					},
				},
			},
			2: &schedule.WeekRecord{
				Number: 2,
				Image:  schedule.WeekImage{ImagePath: "https://host/images/week1.png"},
			},
			3: &schedule.WeekRecord{
				Number: 3,
				Image:  schedule.WeekImage{ImagePath: "uploads/local.png"},
			},
		},
		IconURLs: map[string]string{
			"quiz": "https://host/icons/quiz.png",
			"none": "",
		},
	}

	assert.Equal(t, []string{
		"https://host/courses/7/pages/prework-module-1-vectors",
		"https://host/icons/quiz.png",
		"https://host/images/week1.png",
		"https://host/quizzes/sample1",
	}, CollectCalendarURLs(calendar))
}

func TestLinkCheckerCheck(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantRequests int32
		wantWarning  string
	}{
		{
			name:         "reachable link",
			status:       http.StatusOK,
			wantRequests: 1,
		},
		{
			name:         "missing link is not retried",
			status:       http.StatusNotFound,
			wantRequests: 1,
			wantWarning:  "response error 404",
		},
		{
			name:         "server error is retried",
			status:       http.StatusInternalServerError,
			wantRequests: 2,
			wantWarning:  "response error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&requests, 1)
				assert.Equal(t, http.MethodHead, r.Method)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			checker := NewLinkChecker(1)
			defer func() {
				require.NoError(t, checker.Close())
			}()

			result := &ValidationResult{}
			checker.Check(context.Background(), []string{server.URL}, result)

			assert.Equal(t, tt.wantRequests, atomic.LoadInt32(&requests))
			if tt.wantWarning == "" {
				assert.Empty(t, result.Warnings)
				return
			}
			require.Len(t, result.Warnings, 1)
			assert.Equal(t, server.URL, result.Warnings[0].File)
			assert.Contains(t, result.Warnings[0].Message, tt.wantWarning)
		})
	}
}
