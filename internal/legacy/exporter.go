package legacy

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Exporter pulls the legacy schedule and writes it as a workbook.
type Exporter struct {
	repository ScheduleRepository
	writer     io.Writer
}

// NewExporter creates a new Exporter reporting progress to writer.
func NewExporter(repository ScheduleRepository, writer io.Writer) *Exporter {
	return &Exporter{
		repository: repository,
		writer:     writer,
	}
}

// Export writes every legacy schedule row to workbookPath and returns
// the row count. An empty legacy table is an error, not an empty
// workbook.
func (e *Exporter) Export(ctx context.Context, workbookPath, sheetName string) (int, error) {
	rows, err := e.repository.ListRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository.ListRows > %w", err)
	}
	if len(rows) == 0 {
		return 0, errors.New("the legacy database has no schedule rows")
	}

	if err := WriteWorkbook(rows, workbookPath, sheetName); err != nil {
		return 0, fmt.Errorf("WriteWorkbook > %w", err)
	}

	fmt.Fprintf(e.writer, "Exported %d schedule rows to %s\n", len(rows), workbookPath)
	return len(rows), nil
}
