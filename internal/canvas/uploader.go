package canvas

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// Uploader pushes built HTML pages and assignments into the course.
type Uploader struct {
	api          API
	stdoutWriter io.Writer
}

func NewUploader(api API, stdout io.Writer) *Uploader {
	return &Uploader{
		api:          api,
		stdoutWriter: stdout,
	}
}

// UploadedPage records one page pushed by UploadPagesDir.
type UploadedPage struct {
	FileName string
	Title    string
	Page     Page
}

// UploadPagesDir uploads every .html file in dir as a wiki page, in
// file-name order. The page title derives from the file name:
// underscores become spaces and each word is title-cased. A failed
// upload is reported and the remaining files keep going.
func (u *Uploader) UploadPagesDir(ctx context.Context, dir string) ([]UploadedPage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", dir, err)
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	var uploaded []UploadedPage
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".html") {
			continue
		}

		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return uploaded, fmt.Errorf("os.ReadFile(%s) > %w", name, err)
		}

		title := PageTitleForFile(name)
		page, err := u.api.UpsertPage(ctx, title, string(body))
		if err != nil {
			red.Fprintf(u.stdoutWriter, "✗ Failed to upload %q: %v\n", title, err)
			continue
		}
		green.Fprintf(u.stdoutWriter, "✓ Uploaded page %q (ID: %d) at %s\n",
			page.Title, page.PageID, u.api.CoursePageURL(page.URL))
		uploaded = append(uploaded, UploadedPage{FileName: name, Title: title, Page: page})
	}
	return uploaded, nil
}

// CreateAssignments creates each assignment in order and collects the
// name to Canvas URL map the weekly pages link by. A failed create is
// reported and the remaining assignments keep going.
func (u *Uploader) CreateAssignments(ctx context.Context, requests []AssignmentRequest) map[string]string {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	urls := map[string]string{}
	for _, req := range requests {
		assignment, err := u.api.CreateAssignment(ctx, req)
		if err != nil {
			red.Fprintf(u.stdoutWriter, "✗ Failed to create assignment %q: %v\n", req.Name, err)
			continue
		}
		green.Fprintf(u.stdoutWriter, "✓ Created assignment %q (ID: %d)\n", assignment.Name, assignment.ID)
		urls[req.Name] = assignment.HTMLURL
	}
	return urls
}

// VerifyHomeworkPDFs reports which homework handout and solution PDFs
// already live in the course files, so missing uploads surface before
// students reach an assignment page with no PDF behind it.
func (u *Uploader) VerifyHomeworkPDFs(ctx context.Context, homeworkNumbers []string) map[string]HomeworkPDFs {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	pdfs, err := FindHomeworkPDFs(ctx, u.api, homeworkNumbers)
	if err != nil {
		red.Fprintf(u.stdoutWriter, "✗ Failed to look up homework PDFs: %v\n", err)
		return nil
	}

	for _, number := range homeworkNumbers {
		key := schedule.HomeworkKey(number)
		found := pdfs[key]
		if found.HomeworkPDF != "" && found.SolutionPDF != "" {
			green.Fprintf(u.stdoutWriter, "✓ %s has its handout and solutions PDFs\n", key)
			continue
		}
		var missing []string
		if found.HomeworkPDF == "" {
			missing = append(missing, "handout")
		}
		if found.SolutionPDF == "" {
			missing = append(missing, "solutions")
		}
		yellow.Fprintf(u.stdoutWriter, "⚠ %s is missing its %s PDF\n", key, strings.Join(missing, " and "))
	}
	return pdfs
}

// PageTitleForFile derives the wiki page title from a built page's file
// name: the extension drops, underscores become spaces, each word is
// title-cased. week_1_4f2a.html becomes "Week 1 4F2A".
func PageTitleForFile(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return titleCase(strings.ReplaceAll(stem, "_", " "))
}

// titleCase uppercases the first letter of every letter run and
// lowercases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
			continue
		}
		b.WriteRune(r)
		inWord = false
	}
	return b.String()
}
