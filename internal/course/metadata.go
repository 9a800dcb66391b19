package course

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// Metadata file names inside the course metadata directory.
const (
	OverviewFile       = "overview_statements.yml"
	ObjectivesFile     = "learning_objectives.yml"
	ImagesFile         = "images.yml"
	LectureFile        = "lecture_info.yml"
	IconsFile          = "icons.yml"
	placeholderBaseURL = "https://via.placeholder.com/400x300?text="
)

// Metadata bundles the YAML documents that describe a course: per-week
// overview statements and images, per-module learning objectives, lecture
// info and icon file names. Overviews, objectives and images are required,
// lecture info and icons may be absent.
type Metadata struct {
	Overviews  map[int]schedule.WeekOverview
	Objectives map[int]schedule.ModuleObjectives
	Images     map[int]schedule.WeekImage
	Lecture    schedule.LectureInfo
	Icons      map[string]string
}

// LoadMetadata reads the course metadata documents from dir.
func LoadMetadata(dir string) (*Metadata, error) {
	overviews, err := ReadYamlFile[map[int]schedule.WeekOverview](filepath.Join(dir, OverviewFile))
	if err != nil {
		return nil, fmt.Errorf("ReadYamlFile(%s) > %w", OverviewFile, err)
	}
	objectives, err := ReadYamlFile[map[int]schedule.ModuleObjectives](filepath.Join(dir, ObjectivesFile))
	if err != nil {
		return nil, fmt.Errorf("ReadYamlFile(%s) > %w", ObjectivesFile, err)
	}
	images, err := ReadYamlFile[map[int]schedule.WeekImage](filepath.Join(dir, ImagesFile))
	if err != nil {
		return nil, fmt.Errorf("ReadYamlFile(%s) > %w", ImagesFile, err)
	}

	metadata := &Metadata{
		Overviews:  overviews,
		Objectives: objectives,
		Images:     images,
		Icons:      map[string]string{},
	}

	lecturePath := filepath.Join(dir, LectureFile)
	if _, err := os.Stat(lecturePath); err == nil {
		lecture, err := ReadYamlFile[schedule.LectureInfo](lecturePath)
		if err != nil {
			return nil, fmt.Errorf("ReadYamlFile(%s) > %w", LectureFile, err)
		}
		metadata.Lecture = lecture
	}

	iconsPath := filepath.Join(dir, IconsFile)
	if _, err := os.Stat(iconsPath); err == nil {
		icons, err := ReadYamlFile[map[string]string](iconsPath)
		if err != nil {
			return nil, fmt.Errorf("ReadYamlFile(%s) > %w", IconsFile, err)
		}
		metadata.Icons = icons
	}

	return metadata, nil
}

// BuildCalendar builds the week records from the schedule rows and joins
// this metadata into them. Icon URLs are left for the caller to resolve.
func (m *Metadata) BuildCalendar(rows []schedule.ScheduleRow, options schedule.BuildOptions) (*schedule.Calendar, error) {
	weeks, err := schedule.BuildWeeks(rows, options)
	if err != nil {
		return nil, fmt.Errorf("schedule.BuildWeeks > %w", err)
	}
	if err := schedule.AttachModuleMetadata(weeks, m.Overviews, m.Objectives, m.Images); err != nil {
		return nil, fmt.Errorf("schedule.AttachModuleMetadata > %w", err)
	}
	return &schedule.Calendar{
		Weeks:       weeks,
		IconURLs:    map[string]string{},
		LectureInfo: m.Lecture,
	}, nil
}

// ImageNames returns the distinct non-empty image file names across all weeks.
func (m *Metadata) ImageNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, image := range m.Images {
		if image.ImageName == "" || seen[image.ImageName] {
			continue
		}
		seen[image.ImageName] = true
		names = append(names, image.ImageName)
	}
	sort.Strings(names)
	return names
}

// IconFileNames returns the distinct icon file names referenced by the course.
func (m *Metadata) IconFileNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, name := range m.Icons {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveImagePaths fills each week image's path from the file URLs keyed by
// image name. Images without a URL get a placeholder that names the missing
// file.
func (m *Metadata) ResolveImagePaths(urls map[string]string) {
	weeks := make([]int, 0, len(m.Images))
	for week := range m.Images {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	for _, week := range weeks {
		image := m.Images[week]
		if resolved, ok := urls[image.ImageName]; ok && image.ImageName != "" {
			image.ImagePath = resolved
			m.Images[week] = image
			continue
		}
		slog.Warn("no file URL found for week image",
			"week", week,
			"image", image.ImageName,
		)
		name := image.ImageName
		if name == "" {
			name = "Image Not Found"
		}
		image.ImagePath = placeholderBaseURL + url.PathEscape(name)
		m.Images[week] = image
	}
}

// ResolveIconURLs maps each icon key to its file URL. Icons whose file
// has no URL are dropped with a warning: the pages render without the
// decoration rather than with a broken image.
func (m *Metadata) ResolveIconURLs(urls map[string]string) map[string]string {
	iconURLs := map[string]string{}
	for key, fileName := range m.Icons {
		resolved, ok := urls[fileName]
		if !ok || fileName == "" {
			slog.Warn("no file URL found for icon", "icon", key, "file", fileName)
			continue
		}
		iconURLs[key] = resolved
	}
	return iconURLs
}
