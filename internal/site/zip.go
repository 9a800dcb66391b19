package site

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ZipFileName is the download name of a built-pages archive.
const ZipFileName = "all_html_files.zip"

// ZipContentType is the media type the archive is served with.
const ZipContentType = "application/x-zip-compressed"

// WriteZip writes the named files into one deflate-compressed zip
// archive, storing each entry under its base name.
func WriteZip(w io.Writer, filenames []string) error {
	archive := zip.NewWriter(w)
	for _, path := range filenames {
		entry, err := archive.Create(filepath.Base(path))
		if err != nil {
			return fmt.Errorf("archive.Create(%s) > %w", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("entry.Write(%s) > %w", path, err)
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("archive.Close > %w", err)
	}
	return nil
}
