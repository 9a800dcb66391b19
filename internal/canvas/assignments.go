package canvas

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// ListAssignments returns every assignment in the course.
func (c *Client) ListAssignments(ctx context.Context) ([]Assignment, error) {
	assignments, err := listPaginated[Assignment](ctx, c, fmt.Sprintf("/api/v1/courses/%s/assignments", c.courseID))
	if err != nil {
		return nil, fmt.Errorf("listPaginated > %w", err)
	}
	return assignments, nil
}

// CreateAssignment creates a published assignment. Runs are create-only:
// repeating a build duplicates the assignments, which is what the delete
// command cleans up afterwards.
func (c *Client) CreateAssignment(ctx context.Context, req AssignmentRequest) (Assignment, error) {
	var assignment Assignment
	res, err := c.send(ctx, func() (*resty.Response, error) {
		return c.httpClient.R().
			SetContext(ctx).
			SetFormData(assignmentForm(req)).
			SetResult(&assignment).
			Post(fmt.Sprintf("/api/v1/courses/%s/assignments", c.courseID))
	})
	if err != nil {
		return Assignment{}, fmt.Errorf("c.send > %w", err)
	}
	if res.IsError() {
		return Assignment{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return assignment, nil
}

// DeleteAssignment removes one assignment by ID.
func (c *Client) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	res, err := c.send(ctx, func() (*resty.Response, error) {
		return c.httpClient.R().
			SetContext(ctx).
			Delete(fmt.Sprintf("/api/v1/courses/%s/assignments/%d", c.courseID, assignmentID))
	})
	if err != nil {
		return fmt.Errorf("c.send > %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}

// assignmentForm renders the create form for the assignment kind.
// Homework and quizzes collect PDF uploads; checkouts are graded in
// person and take no submission.
func assignmentForm(req AssignmentRequest) map[string]string {
	form := map[string]string{
		"assignment[name]":         req.Name,
		"assignment[description]":  req.Description,
		"assignment[grading_type]": "points",
		"assignment[published]":    "true",
	}

	switch req.Kind {
	case AssignmentQuiz:
		form["assignment[submission_types][]"] = "online_upload"
		form["assignment[points_possible]"] = "25"
		form["assignment[allowed_extensions][]"] = "pdf"
	case AssignmentCheckout:
		form["assignment[submission_types][]"] = "none"
		form["assignment[points_possible]"] = "10"
	default:
		form["assignment[submission_types][]"] = "online_upload"
		form["assignment[points_possible]"] = "100"
		form["assignment[allowed_extensions][]"] = "pdf"
	}

	if dueAt, ok := assignmentDueAt(req.Kind, req.DueDate); ok {
		form["assignment[due_at]"] = dueAt
	}
	return form
}

// assignmentDueAt converts the calendar date into the due timestamp for
// the kind: quizzes are due when class starts at 11:30, everything else
// at the end of the day. TBD dates carry no due date; an unparseable
// date drops it with a warning.
func assignmentDueAt(kind AssignmentKind, dueDate string) (string, bool) {
	if dueDate == "" || dueDate == schedule.DueDateTBD {
		return "", false
	}
	t, err := time.Parse(schedule.DateLayout, dueDate)
	if err != nil {
		slog.Warn("could not parse due date, skipping due date", "due_date", dueDate)
		return "", false
	}

	switch kind {
	case AssignmentQuiz:
		t = time.Date(t.Year(), t.Month(), t.Day(), 11, 30, 0, 0, t.Location())
	default:
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}
	return t.Format("2006-01-02T15:04:05"), true
}
