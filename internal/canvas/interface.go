package canvas

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/canvas/mock_api.go -package=mock_canvas

// API is the Canvas course surface the builders, uploader and deleter
// work against. Client implements it over the REST API.
type API interface {
	ListPages(ctx context.Context) ([]Page, error)
	UpsertPage(ctx context.Context, title, body string) (Page, error)
	DeletePage(ctx context.Context, slug string) error

	ListAssignments(ctx context.Context) ([]Assignment, error)
	CreateAssignment(ctx context.Context, req AssignmentRequest) (Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID int64) error

	ListFolders(ctx context.Context) ([]Folder, error)
	ListSubfolders(ctx context.Context, folderID int64) ([]Folder, error)
	ListFiles(ctx context.Context, folderID int64) ([]File, error)

	// FilePreviewURL and CoursePageURL render the student-facing links
	// for a file or page, on the non-API host path.
	FilePreviewURL(fileID int64) string
	CoursePageURL(slug string) string
}
