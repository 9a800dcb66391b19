package canvas

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

const listPageSize = "100"

// Client talks to the Canvas REST API for one course.
type Client struct {
	httpClient       *resty.Client
	baseURL          string
	courseID         string
	maxRetryAttempts uint
}

// NewClient builds a client for one course on a Canvas host such as
// https://umich.instructure.com.
func NewClient(baseURL, courseID, accessToken string, retryAttempts uint) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", "Bearer "+accessToken)
	return &Client{
		httpClient:       httpClient,
		baseURL:          baseURL,
		courseID:         courseID,
		maxRetryAttempts: retryAttempts,
	}
}

// FilePreviewURL is the student-facing preview link for an uploaded file.
func (c *Client) FilePreviewURL(fileID int64) string {
	return fmt.Sprintf("%s/courses/%s/files/%d/preview", c.baseURL, c.courseID, fileID)
}

// CoursePageURL is the student-facing link for a wiki page slug.
func (c *Client) CoursePageURL(slug string) string {
	return fmt.Sprintf("%s/courses/%s/pages/%s", c.baseURL, c.courseID, slug)
}

// send runs one request attempt under the retry policy. Server errors
// and rate limits retry with backoff; other statuses come back as the
// response so callers can branch on the status code.
func (c *Client) send(ctx context.Context, attempt func() (*resty.Response, error)) (*resty.Response, error) {
	var response *resty.Response
	err := retry.Do(
		func() error {
			res, err := attempt()
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("client.R > %w", err))
			}
			response = res
			statusCode := res.StatusCode()
			if statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests {
				return fmt.Errorf("status code: %d, body: %s", statusCode, string(res.Body()))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// listPaginated follows the Link header's rel="next" URL until the
// listing runs out. The first request sets per_page; the next-page URLs
// come back absolute with the paging parameters already embedded.
func listPaginated[T any](ctx context.Context, c *Client, firstPage string) ([]T, error) {
	var items []T
	url := firstPage
	first := true
	for url != "" {
		var page []T
		res, err := c.send(ctx, func() (*resty.Response, error) {
			request := c.httpClient.R().SetContext(ctx).SetResult(&page)
			if first {
				request.SetQueryParam("per_page", listPageSize)
			}
			return request.Get(url)
		})
		if err != nil {
			return nil, fmt.Errorf("c.send > %w", err)
		}
		if res.IsError() {
			return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
		}
		first = false
		items = append(items, page...)
		url = nextPageURL(res.Header().Get("Link"))
	}
	return items, nil
}

// nextPageURL pulls the rel="next" target out of a Link header, or ""
// when the listing is on its last page.
func nextPageURL(linkHeader string) string {
	for _, link := range strings.Split(linkHeader, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}
		target := strings.TrimSpace(strings.Split(link, ";")[0])
		return strings.Trim(target, "<>")
	}
	return ""
}
