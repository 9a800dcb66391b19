package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// SplitPageURLs buckets a flat name-to-URL map of created assignments
// into the PageURLs shape the weekly pages link by. Names follow the
// upload convention: "HW01", "Quiz 1", "Checkout1". Unrecognized names
// are dropped.
func SplitPageURLs(urls map[string]string) PageURLs {
	split := PageURLs{
		Homework: map[string]string{},
		Quiz:     map[string]string{},
		Checkout: map[string]string{},
	}
	for name, link := range urls {
		switch {
		case strings.HasPrefix(name, "HW"):
			split.Homework[name] = link
		case strings.HasPrefix(name, "Quiz "):
			split.Quiz[name] = link
		case strings.HasPrefix(name, "Checkout"):
			split.Checkout[name] = link
		}
	}
	return split
}

// AssignmentBodies reads built pages back as assignment descriptions,
// keyed by the name of the assignment each page belongs to. Weekly
// pages describe no assignment and are skipped.
func AssignmentBodies(paths []string) (map[string]string, error) {
	bodies := map[string]string{}
	for _, path := range paths {
		key, ok := assignmentKeyForFile(filepath.Base(path))
		if !ok {
			continue
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
		bodies[key] = string(body)
	}
	return bodies, nil
}

// assignmentKeyForFile maps a built page's file name to its assignment
// name: homework_1_4f2a.html belongs to "HW01", quiz_1_4f2a.html to
// "Quiz 1", checkout_1_4f2a.html to "Checkout1".
func assignmentKeyForFile(name string) (string, bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.SplitN(stem, "_", 3)
	if len(parts) < 2 {
		return "", false
	}
	switch parts[0] {
	case "homework":
		return schedule.HomeworkKey(parts[1]), true
	case "quiz":
		return "Quiz " + parts[1], true
	case "checkout":
		return "Checkout" + parts[1], true
	}
	return "", false
}
