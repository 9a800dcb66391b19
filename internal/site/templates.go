package site

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/weekly-page.html.go.tmpl
var fallbackWeeklyPageTemplate string

//go:embed templates/homework-page.html.go.tmpl
var fallbackHomeworkPageTemplate string

//go:embed templates/quiz-page.html.go.tmpl
var fallbackQuizPageTemplate string

//go:embed templates/checkout-page.html.go.tmpl
var fallbackCheckoutPageTemplate string

// parseTemplateWithFallback loads fileName from templatesDir when the
// directory is set, and falls back to the embedded template otherwise.
func parseTemplateWithFallback(templatesDir, fileName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if templatesDir == "" {
		tmpl, err := template.New(fileName).Funcs(funcMap).Parse(fallbackTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded template: %w", err)
		}
		return tmpl, nil
	}

	templatePath := filepath.Join(templatesDir, fileName)
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("template file not found or accessible: %w", err)
	}
	tmpl, err := template.New(fileName).Funcs(funcMap).ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", templatePath, err)
	}
	return tmpl, nil
}
