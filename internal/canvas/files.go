package canvas

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

var quizTitlePattern = regexp.MustCompile(`(?i)Quiz\s*(\d+)`)

// ListFolders returns every folder in the course.
func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	folders, err := listPaginated[Folder](ctx, c, fmt.Sprintf("/api/v1/courses/%s/folders", c.courseID))
	if err != nil {
		return nil, fmt.Errorf("listPaginated > %w", err)
	}
	return folders, nil
}

// ListSubfolders returns the folders nested under one folder.
func (c *Client) ListSubfolders(ctx context.Context, folderID int64) ([]Folder, error) {
	folders, err := listPaginated[Folder](ctx, c, fmt.Sprintf("/api/v1/folders/%d/folders", folderID))
	if err != nil {
		return nil, fmt.Errorf("listPaginated > %w", err)
	}
	return folders, nil
}

// ListFiles returns the files inside one folder.
func (c *Client) ListFiles(ctx context.Context, folderID int64) ([]File, error) {
	files, err := listPaginated[File](ctx, c, fmt.Sprintf("/api/v1/folders/%d/files", folderID))
	if err != nil {
		return nil, fmt.Errorf("listPaginated > %w", err)
	}
	return files, nil
}

// FindFolderByName returns the course folder whose name matches
// case-insensitively, or nil when the course has none.
func FindFolderByName(ctx context.Context, api API, name string) (*Folder, error) {
	folders, err := api.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("api.ListFolders > %w", err)
	}
	for _, folder := range folders {
		if strings.EqualFold(folder.Name, name) {
			return &folder, nil
		}
	}
	return nil, nil
}

// FindCourseImages maps image file names to preview URLs by exact
// display-name match inside the course's Site Data folder. A missing
// folder or missing names degrade to warnings so a build can go on
// without the images.
func FindCourseImages(ctx context.Context, api API, imageNames []string) (map[string]string, error) {
	imageURLs := map[string]string{}

	folder, err := FindFolderByName(ctx, api, "Site Data")
	if err != nil {
		return imageURLs, fmt.Errorf("FindFolderByName > %w", err)
	}
	if folder == nil {
		slog.Warn("no Site Data folder in the Canvas course")
		return imageURLs, nil
	}

	files, err := api.ListFiles(ctx, folder.ID)
	if err != nil {
		return imageURLs, fmt.Errorf("api.ListFiles > %w", err)
	}
	for _, file := range files {
		for _, target := range imageNames {
			if file.DisplayName == target {
				imageURLs[target] = api.FilePreviewURL(file.ID)
				break
			}
		}
	}

	var missing []string
	for _, target := range imageNames {
		if _, ok := imageURLs[target]; !ok {
			missing = append(missing, target)
		}
	}
	if len(missing) > 0 {
		slog.Warn("images missing from the Site Data folder", "images", missing)
	}
	return imageURLs, nil
}

// FindHomeworkPDFs returns the handout and solution PDF preview URLs for
// each homework number, keyed by the two-digit form ("HW01"). A PDF in
// the homework's folder that names the homework is the handout unless it
// also says Solutions; when several match, the one listed last wins.
func FindHomeworkPDFs(ctx context.Context, api API, numbers []string) (map[string]HomeworkPDFs, error) {
	all := map[string]HomeworkPDFs{}
	for _, number := range numbers {
		all[schedule.HomeworkKey(number)] = HomeworkPDFs{}
	}

	assignmentsFolder, err := FindFolderByName(ctx, api, "Assignments")
	if err != nil {
		return all, fmt.Errorf("FindFolderByName > %w", err)
	}
	if assignmentsFolder == nil {
		slog.Warn("no Assignments folder in the Canvas course")
		return all, nil
	}

	subfolders, err := api.ListSubfolders(ctx, assignmentsFolder.ID)
	if err != nil {
		return all, fmt.Errorf("api.ListSubfolders > %w", err)
	}

	for _, number := range numbers {
		key := schedule.HomeworkKey(number)

		var homeworkFolder *Folder
		for _, folder := range subfolders {
			if strings.ToUpper(folder.Name) == key {
				homeworkFolder = &folder
				break
			}
		}
		if homeworkFolder == nil {
			slog.Warn("no folder for homework under Assignments", "homework", key)
			continue
		}

		files, err := api.ListFiles(ctx, homeworkFolder.ID)
		if err != nil {
			return all, fmt.Errorf("api.ListFiles > %w", err)
		}

		var pdfs HomeworkPDFs
		for _, file := range files {
			if !strings.HasSuffix(strings.ToLower(file.DisplayName), ".pdf") {
				continue
			}
			upperName := strings.ToUpper(file.DisplayName)
			if !strings.Contains(upperName, key) {
				continue
			}
			if strings.Contains(upperName, "SOLUTIONS") {
				pdfs.SolutionPDF = api.FilePreviewURL(file.ID)
			} else {
				pdfs.HomeworkPDF = api.FilePreviewURL(file.ID)
			}
		}
		if pdfs.HomeworkPDF == "" || pdfs.SolutionPDF == "" {
			slog.Warn("homework folder is missing PDFs",
				"homework", key,
				"handout_found", pdfs.HomeworkPDF != "",
				"solutions_found", pdfs.SolutionPDF != "",
			)
		}
		all[key] = pdfs
	}
	return all, nil
}

// DefaultSyllabusPatterns names the syllabus PDFs the way the course
// template uploads them: {code}_Syllabus_ and {code}_SyllabusSchedule_.
func DefaultSyllabusPatterns(courseCode string) map[string]string {
	return map[string]string{
		"syllabus":          courseCode + "_Syllabus_",
		"syllabus_schedule": courseCode + "_SyllabusSchedule_",
	}
}

// FindSyllabusPDFs locates the course-document PDFs in the Course
// Information folder. patterns maps a URL key to the filename substring
// identifying its PDF, matched case-sensitively against the uploads.
func FindSyllabusPDFs(ctx context.Context, api API, patterns map[string]string) (map[string]string, error) {
	pdfURLs := map[string]string{}

	folder, err := FindFolderByName(ctx, api, "Course Information")
	if err != nil {
		return pdfURLs, fmt.Errorf("FindFolderByName > %w", err)
	}
	if folder == nil {
		slog.Warn("no Course Information folder in the Canvas course")
		return pdfURLs, nil
	}

	files, err := api.ListFiles(ctx, folder.ID)
	if err != nil {
		return pdfURLs, fmt.Errorf("api.ListFiles > %w", err)
	}
	for _, file := range files {
		if !strings.HasSuffix(strings.ToLower(file.DisplayName), ".pdf") {
			continue
		}
		for key, substring := range patterns {
			if strings.Contains(file.DisplayName, substring) {
				pdfURLs[key] = api.FilePreviewURL(file.ID)
			}
		}
	}

	keys := make([]string, 0, len(patterns))
	for key := range patterns {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := pdfURLs[key]; !ok {
			slog.Warn("PDF missing from the Course Information folder", "pdf", key)
		}
	}
	return pdfURLs, nil
}

// FindSampleQuizPages maps quiz numbers to the course page URLs whose
// titles name the quiz. When two pages claim the same number, the page
// listed last wins.
func FindSampleQuizPages(ctx context.Context, api API) (map[string]string, error) {
	quizPages := map[string]string{}

	pages, err := api.ListPages(ctx)
	if err != nil {
		return quizPages, fmt.Errorf("api.ListPages > %w", err)
	}
	for _, page := range pages {
		match := quizTitlePattern.FindStringSubmatch(page.Title)
		if match == nil {
			continue
		}
		quizPages[match[1]] = api.CoursePageURL(page.URL)
	}
	return quizPages, nil
}
