package canvas

// Page is a Canvas wiki page. URL is the page slug, not a full link.
type Page struct {
	PageID    int64  `json:"page_id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Published bool   `json:"published"`
}

// Assignment is a Canvas assignment as the API returns it.
type Assignment struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
	DueAt   string `json:"due_at,omitempty"`
}

// AssignmentKind selects the grading payload for a new assignment.
type AssignmentKind string

const (
	AssignmentHomework AssignmentKind = "homework"
	AssignmentQuiz     AssignmentKind = "quiz"
	AssignmentCheckout AssignmentKind = "checkout"
)

// AssignmentRequest describes one assignment to create. DueDate is the
// calendar's MM/DD/YYYY string and may be the TBD sentinel.
type AssignmentRequest struct {
	Name        string
	Description string
	Kind        AssignmentKind
	DueDate     string
}

// Folder is a Canvas file folder.
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// File is an uploaded file inside a Canvas folder.
type File struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// HomeworkPDFs holds the preview URLs for one homework's handout and
// solution uploads. Either field is empty when the folder lacks the
// file.
type HomeworkPDFs struct {
	HomeworkPDF string
	SolutionPDF string
}
