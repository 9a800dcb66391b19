package canvas

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
)

var nonWordPattern = regexp.MustCompile(`\W+`)

// PageSlug derives the Canvas wiki slug for a page title: lowercased,
// every non-word run collapsed to a single underscore.
func PageSlug(title string) string {
	return strings.Trim(nonWordPattern.ReplaceAllString(strings.ToLower(title), "_"), "_")
}

// ListPages returns every wiki page in the course.
func (c *Client) ListPages(ctx context.Context) ([]Page, error) {
	pages, err := listPaginated[Page](ctx, c, fmt.Sprintf("/api/v1/courses/%s/pages", c.courseID))
	if err != nil {
		return nil, fmt.Errorf("listPaginated > %w", err)
	}
	return pages, nil
}

// UpsertPage creates or updates the published wiki page for title. The
// update of the title's slug runs first; a 404 means the page does not
// exist yet and the create endpoint takes over.
func (c *Client) UpsertPage(ctx context.Context, title, body string) (Page, error) {
	slug := PageSlug(title)
	form := map[string]string{
		"wiki_page[title]":     title,
		"wiki_page[body]":      body,
		"wiki_page[published]": "true",
		"on_duplicate":         "overwrite",
	}

	var page Page
	res, err := c.send(ctx, func() (*resty.Response, error) {
		return c.httpClient.R().
			SetContext(ctx).
			SetFormData(form).
			SetResult(&page).
			Put(fmt.Sprintf("/api/v1/courses/%s/pages/%s", c.courseID, slug))
	})
	if err != nil {
		return Page{}, fmt.Errorf("c.send > %w", err)
	}

	if res.StatusCode() == http.StatusNotFound {
		form["wiki_page[page_url]"] = slug
		res, err = c.send(ctx, func() (*resty.Response, error) {
			return c.httpClient.R().
				SetContext(ctx).
				SetFormData(form).
				SetResult(&page).
				Post(fmt.Sprintf("/api/v1/courses/%s/pages", c.courseID))
		})
		if err != nil {
			return Page{}, fmt.Errorf("c.send > %w", err)
		}
	}
	if res.IsError() {
		return Page{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return page, nil
}

// DeletePage removes the wiki page with the given slug.
func (c *Client) DeletePage(ctx context.Context, slug string) error {
	res, err := c.send(ctx, func() (*resty.Response, error) {
		return c.httpClient.R().
			SetContext(ctx).
			Delete(fmt.Sprintf("/api/v1/courses/%s/pages/%s", c.courseID, slug))
	})
	if err != nil {
		return fmt.Errorf("c.send > %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}
