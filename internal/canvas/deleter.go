package canvas

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Title shapes of the generated content: weekly pages "Week 3" or
// "Week 3: Topic (01/20/2025)", homework pages and assignments "HW01",
// quiz assignments "Quiz 1", checkout assignments "Checkout1".
var (
	weekPageTitlePattern       = regexp.MustCompile(`(?i)^Week\s+\d+.*$`)
	homeworkTitlePattern       = regexp.MustCompile(`(?i)^HW\d{2}$`)
	checkoutAssignmentPattern  = regexp.MustCompile(`(?i)^Checkout\d+$`)
	quizAssignmentTitlePattern = regexp.MustCompile(`(?i)^Quiz\s+\d+$`)
)

// DeleteScope selects which kinds of generated content a deletion run
// touches. An item kind outside the scope is never listed, so it is
// neither shown in the confirmation summary nor deleted.
type DeleteScope struct {
	Pages       bool
	Assignments bool
}

var DeleteScopeAll = DeleteScope{Pages: true, Assignments: true}

// Deleter clears the generated pages and assignments out of a course so
// a rebuilt schedule can be uploaded without duplicates.
type Deleter struct {
	api          API
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
}

func NewDeleter(api API, stdin io.Reader, stdout io.Writer) *Deleter {
	return &Deleter{
		api:          api,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
	}
}

// PagesToDelete filters course pages down to the generated ones.
func PagesToDelete(pages []Page) []Page {
	var matching []Page
	for _, page := range pages {
		if weekPageTitlePattern.MatchString(page.Title) || homeworkTitlePattern.MatchString(page.Title) {
			matching = append(matching, page)
		}
	}
	return matching
}

// AssignmentsToDelete filters course assignments down to the generated
// ones.
func AssignmentsToDelete(assignments []Assignment) []Assignment {
	var matching []Assignment
	for _, assignment := range assignments {
		if checkoutAssignmentPattern.MatchString(assignment.Name) ||
			quizAssignmentTitlePattern.MatchString(assignment.Name) ||
			homeworkTitlePattern.MatchString(assignment.Name) {
			matching = append(matching, assignment)
		}
	}
	return matching
}

// DeleteMatching lists the generated items within scope, asks for
// confirmation on stdin, and deletes them one by one. Anything but a
// "yes" cancels. It returns how many pages and assignments were
// deleted; individual delete failures are reported and counted against
// the totals.
func (d *Deleter) DeleteMatching(ctx context.Context, scope DeleteScope) (int, int, error) {
	fmt.Fprintln(d.stdoutWriter, "Fetching Canvas items...")

	var pages []Page
	if scope.Pages {
		var err error
		pages, err = d.api.ListPages(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("api.ListPages > %w", err)
		}
	}
	var assignments []Assignment
	if scope.Assignments {
		var err error
		assignments, err = d.api.ListAssignments(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("api.ListAssignments > %w", err)
		}
	}
	fmt.Fprintf(d.stdoutWriter, "Found %d total pages and %d total assignments\n", len(pages), len(assignments))

	pagesToDelete := PagesToDelete(pages)
	assignmentsToDelete := AssignmentsToDelete(assignments)

	fmt.Fprintln(d.stdoutWriter, "\nItems matching deletion criteria:")
	fmt.Fprintf(d.stdoutWriter, "  - Pages to delete: %d\n", len(pagesToDelete))
	fmt.Fprintf(d.stdoutWriter, "  - Assignments to delete: %d\n", len(assignmentsToDelete))

	if len(pagesToDelete) == 0 && len(assignmentsToDelete) == 0 {
		fmt.Fprintln(d.stdoutWriter, "\nNo items found matching the deletion criteria.")
		return 0, 0, nil
	}

	fmt.Fprintln(d.stdoutWriter, "\nItems that will be deleted:")
	fmt.Fprintln(d.stdoutWriter, "Pages:")
	for _, page := range pagesToDelete {
		fmt.Fprintf(d.stdoutWriter, "  - %s\n", page.Title)
	}
	fmt.Fprintln(d.stdoutWriter, "Assignments:")
	for _, assignment := range assignmentsToDelete {
		fmt.Fprintf(d.stdoutWriter, "  - %s\n", assignment.Name)
	}

	total := len(pagesToDelete) + len(assignmentsToDelete)
	fmt.Fprintf(d.stdoutWriter, "\nAre you sure you want to delete %d items? (yes/no): ", total)
	answer, err := d.stdinReader.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("error reading confirmation input: %w", err)
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		fmt.Fprintln(d.stdoutWriter, "Deletion cancelled.")
		return 0, 0, nil
	}

	fmt.Fprintln(d.stdoutWriter, "\nDeleting items...")
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	pagesDeleted := 0
	for _, page := range pagesToDelete {
		if err := d.api.DeletePage(ctx, page.URL); err != nil {
			red.Fprintf(d.stdoutWriter, "✗ Failed to delete page %q: %v\n", page.Title, err)
			continue
		}
		green.Fprintf(d.stdoutWriter, "✓ Deleted page: %q\n", page.Title)
		pagesDeleted++
	}

	assignmentsDeleted := 0
	for _, assignment := range assignmentsToDelete {
		if err := d.api.DeleteAssignment(ctx, assignment.ID); err != nil {
			red.Fprintf(d.stdoutWriter, "✗ Failed to delete assignment %q: %v\n", assignment.Name, err)
			continue
		}
		green.Fprintf(d.stdoutWriter, "✓ Deleted assignment: %q\n", assignment.Name)
		assignmentsDeleted++
	}

	fmt.Fprintln(d.stdoutWriter, "\nDeletion complete!")
	fmt.Fprintf(d.stdoutWriter, "  - Pages deleted: %d/%d\n", pagesDeleted, len(pagesToDelete))
	fmt.Fprintf(d.stdoutWriter, "  - Assignments deleted: %d/%d\n", assignmentsDeleted, len(assignmentsToDelete))

	return pagesDeleted, assignmentsDeleted, nil
}
