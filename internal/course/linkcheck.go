package course

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// LinkChecker verifies that external URLs referenced by a calendar respond.
type LinkChecker struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

func NewLinkChecker(retryAttempts uint) *LinkChecker {
	client := resty.New()
	client.SetTimeout(10 * time.Second)

	return &LinkChecker{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (checker *LinkChecker) Close() error {
	return checker.httpClient.Close()
}

// CollectCalendarURLs gathers the distinct external links a calendar
// references: sample quiz pages, prework pages, week images and icon files.
func CollectCalendarURLs(calendar *schedule.Calendar) []string {
	seen := map[string]bool{}
	var urls []string
	add := func(link string) {
		if link == "" || seen[link] {
			return
		}
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			return
		}
		seen[link] = true
		urls = append(urls, link)
	}

	for _, week := range calendar.Weeks {
		add(week.Image.ImagePath)
		for _, day := range week.Days {
			add(day.SampleQuizURL)
			add(day.PreworkVideoLink)
		}
	}
	for _, link := range calendar.IconURLs {
		add(link)
	}
	sort.Strings(urls)
	return urls
}

// Check requests every URL and records a warning for each one that does
// not respond with a success status.
func (checker *LinkChecker) Check(ctx context.Context, urls []string, result *ValidationResult) {
	for _, link := range urls {
		if err := checker.check(ctx, link); err != nil {
			result.AddWarning(ValidationError{
				File:    link,
				Message: err.Error(),
			})
		}
	}
}

func (checker *LinkChecker) check(ctx context.Context, link string) error {
	return retry.Do(
		func() error {
			response, err := checker.httpClient.R().
				SetContext(ctx).
				Head(link)
			if err != nil {
				return fmt.Errorf("httpClient.Head > %w", err)
			}
			if response.IsError() {
				err := fmt.Errorf("response error %d", response.StatusCode())
				if response.StatusCode() >= 500 || response.StatusCode() == 429 {
					return err
				}
				return retry.Unrecoverable(err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(checker.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}
