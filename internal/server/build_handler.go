// Package server provides the HTTP handlers of the course page build
// service.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/coursebuilder/internal/config"
	"github.com/at-ishikawa/coursebuilder/internal/course"
	"github.com/at-ishikawa/coursebuilder/internal/schedule"
	"github.com/at-ishikawa/coursebuilder/internal/site"
)

// maxUploadMemory caps how much of the multipart form is held in memory
// before spilling to temporary files.
const maxUploadMemory = 32 << 20

// BuildHandler serves the build endpoints: a JSON view of the configured
// schedule and the upload-and-build flow returning a zip of pages.
type BuildHandler struct {
	cfg *config.Config

	// newID is swapped in tests for deterministic session names.
	newID func() string
}

// NewBuildHandler creates a new BuildHandler.
func NewBuildHandler(cfg *config.Config) *BuildHandler {
	return &BuildHandler{
		cfg:   cfg,
		newID: site.NewBuildID,
	}
}

// Healthz reports liveness.
func (h *BuildHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Index builds the calendar from the configured workbook and metadata
// directory and returns the populated weeks as JSON under a message key.
func (h *BuildHandler) Index(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Schedule.Workbook == "" {
		http.Error(w, "no schedule workbook is configured", http.StatusInternalServerError)
		return
	}

	rows, err := schedule.ReadWorkbook(h.cfg.Schedule.Workbook, h.cfg.Schedule.Sheet)
	if err != nil {
		h.serverError(w, "schedule.ReadWorkbook", err)
		return
	}
	metadata, err := course.LoadMetadata(h.cfg.Metadata.Directory)
	if err != nil {
		h.serverError(w, "course.LoadMetadata", err)
		return
	}
	calendar, err := metadata.BuildCalendar(rows, schedule.BuildOptions{
		CourseBaseURL: h.cfg.Canvas.BaseURL,
		CourseID:      h.cfg.Canvas.CourseID,
	})
	if err != nil {
		h.serverError(w, "metadata.BuildCalendar", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"message": calendar.Weeks}); err != nil {
		slog.Error("encoding weeks response", "error", err)
	}
}

// Build accepts a multipart workbook upload, builds the full page set
// for it and responds with a zip of the built files. The uploaded file
// is stored under the upload directory for the duration of the build
// and removed afterwards; the built pages and the weeks snapshot stay
// in the session output directory for the later upload step.
func (h *BuildHandler) Build(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, fmt.Sprintf("invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}
	upload, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "a schedule workbook upload named file is required", http.StatusBadRequest)
		return
	}
	defer func() { _ = upload.Close() }()

	courseID := r.FormValue("course_id")
	if courseID == "" {
		courseID = h.cfg.Canvas.CourseID
	}
	if courseID == "" {
		http.Error(w, site.ErrCourseIDRequired.Error(), http.StatusBadRequest)
		return
	}

	uid := h.newID()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	uploadPath := filepath.Join(h.cfg.Server.UploadDirectory, uid+ext)
	if err := saveUpload(uploadPath, upload); err != nil {
		h.serverError(w, "saveUpload", err)
		return
	}
	defer func() {
		if err := os.Remove(uploadPath); err != nil {
			slog.Warn("removing uploaded workbook", "path", uploadPath, "error", err)
		}
	}()

	rows, err := schedule.ReadWorkbook(uploadPath, h.cfg.Schedule.Sheet)
	if err != nil {
		http.Error(w, fmt.Sprintf("the uploaded file is not a readable workbook: %v", err), http.StatusBadRequest)
		return
	}
	metadata, err := course.LoadMetadata(h.cfg.Metadata.Directory)
	if err != nil {
		h.serverError(w, "course.LoadMetadata", err)
		return
	}
	calendar, err := metadata.BuildCalendar(rows, schedule.BuildOptions{
		CourseBaseURL: h.cfg.Canvas.BaseURL,
		CourseID:      courseID,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("the uploaded schedule does not build: %v", err), http.StatusUnprocessableEntity)
		return
	}

	builder, err := site.NewBuilder(calendar, rows, metadata, site.BuilderOptions{
		CourseBaseURL: h.cfg.Canvas.BaseURL,
		CourseID:      courseID,
		UniqueID:      uid,
		OutputDir:     h.cfg.Outputs.Directory,
		TemplatesDir:  h.cfg.Outputs.TemplatesDirectory,
	})
	if err != nil {
		h.serverError(w, "site.NewBuilder", err)
		return
	}
	if err := site.SaveSnapshot(builder.OutputDir(), calendar); err != nil {
		h.serverError(w, "site.SaveSnapshot", err)
		return
	}
	files, err := builder.BuildAll(nil)
	if err != nil {
		h.serverError(w, "builder.BuildAll", err)
		return
	}
	slog.Info("built course pages",
		"session", uid,
		"files", len(files),
		"course_id", courseID,
	)

	w.Header().Set("Content-Type", site.ZipContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", site.ZipFileName))
	w.Header().Set("Build-Id", uid)
	if err := site.WriteZip(w, files); err != nil {
		// Headers are gone at this point, the client sees a short body.
		slog.Error("writing zip response", "session", uid, "error", err)
	}
}

func (h *BuildHandler) serverError(w http.ResponseWriter, operation string, err error) {
	slog.Error("request failed", "operation", operation, "error", err)
	http.Error(w, fmt.Sprintf("%s > %v", operation, err), http.StatusInternalServerError)
}

func saveUpload(path string, upload multipart.File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, upload); err != nil {
		return fmt.Errorf("io.Copy(%s) > %w", path, err)
	}
	return nil
}
