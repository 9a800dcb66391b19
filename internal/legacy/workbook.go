package legacy

import (
	"database/sql"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column letters of the course planning template, matching the layout
// the schedule reader expects.
const (
	colWeek       = "B"
	colModule     = "C"
	colLesson     = "D"
	colDate       = "E"
	colTopic      = "F"
	colReferenced = "H"
	colAssigned   = "J"
	colDue        = "K"
	colPrework    = "L"
)

// firstDataRow is the first sheet row holding schedule data. Row 1 is
// the caption row the reader drops and row 2 the template's sub-header
// row the walker skips.
const firstDataRow = 3

// WriteWorkbook renders the legacy rows as an .xlsx workbook in the
// course template layout, with real date cells for the taught-on dates.
func WriteWorkbook(rows []Row, path, sheetName string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheetName != "" {
		if err := f.SetSheetName(sheet, sheetName); err != nil {
			return fmt.Errorf("file.SetSheetName(%s) > %w", sheetName, err)
		}
		sheet = sheetName
	}

	set := func(column string, sheetRow int, value interface{}) error {
		cell := fmt.Sprintf("%s%d", column, sheetRow)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("file.SetCellValue(%s) > %w", cell, err)
		}
		return nil
	}
	setText := func(column string, sheetRow int, value sql.NullString) error {
		if !value.Valid || value.String == "" {
			return nil
		}
		return set(column, sheetRow, value.String)
	}

	captions := []struct {
		column string
		title  string
	}{
		{colWeek, "Week"},
		{colModule, "Module"},
		{colLesson, "Lesson"},
		{colDate, "Date"},
		{colTopic, "Topic"},
		{colReferenced, "Referenced"},
		{colAssigned, "Assigned"},
		{colDue, "Due"},
		{colPrework, "Prework"},
	}
	for _, caption := range captions {
		if err := set(caption.column, 1, caption.title); err != nil {
			return err
		}
	}

	for i, row := range rows {
		sheetRow := firstDataRow + i
		if err := setText(colWeek, sheetRow, row.Week); err != nil {
			return err
		}
		if err := setText(colModule, sheetRow, row.ModuleLabel); err != nil {
			return err
		}
		if err := setText(colLesson, sheetRow, row.Lesson); err != nil {
			return err
		}
		if row.TaughtOn.Valid {
			if err := set(colDate, sheetRow, row.TaughtOn.Time); err != nil {
				return err
			}
		}
		if err := setText(colTopic, sheetRow, row.Topic); err != nil {
			return err
		}
		if err := setText(colReferenced, sheetRow, row.Referenced); err != nil {
			return err
		}
		if err := setText(colAssigned, sheetRow, row.Assigned); err != nil {
			return err
		}
		if err := setText(colDue, sheetRow, row.Due); err != nil {
			return err
		}
		if err := setText(colPrework, sheetRow, row.Prework); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("file.SaveAs(%s) > %w", path, err)
	}
	return nil
}
