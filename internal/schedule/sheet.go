package schedule

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column positions of the schedule template, 0-based. The layout is a
// fixed external contract: the sheet this tool reads is always exported
// from the same course planning template.
const (
	columnWeek       = 1
	columnModule     = 2
	columnLesson     = 3
	columnDate       = 4
	columnTopic      = 5
	columnReferenced = 7
	columnAssigned   = 9
	columnDue        = 10
	columnPrework    = 11
)

// dateLayouts accepts dates typed as text. Real date cells arrive as
// serial numbers and do not go through these.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"2006-01-02",
}

var bracketedFormatSection = regexp.MustCompile(`\[[^\]]*\]|"[^"]*"`)

// ReadWorkbook loads the schedule rows from an .xlsx file on disk. An
// empty sheetName selects the workbook's first sheet.
func ReadWorkbook(path, sheetName string) ([]ScheduleRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return readScheduleRows(f, sheetName)
}

// ReadWorkbookFrom loads the schedule rows from an in-memory workbook,
// as received by the build endpoint. An empty sheetName selects the
// workbook's first sheet.
func ReadWorkbookFrom(r io.Reader, sheetName string) ([]ScheduleRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader() > %w", err)
	}
	defer func() { _ = f.Close() }()
	return readScheduleRows(f, sheetName)
}

// readScheduleRows reads one sheet into the row slice shared by the
// walker and the lesson-range queries. The workbook's row 0 carries
// the column captions and is dropped, so row index 0 of the result is
// the template's sub-header row, which the walker skips in turn.
func readScheduleRows(f *excelize.File, sheetName string) ([]ScheduleRow, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]
	if sheetName != "" {
		index, err := f.GetSheetIndex(sheetName)
		if err != nil {
			return nil, fmt.Errorf("file.GetSheetIndex(%s) > %w", sheetName, err)
		}
		if index < 0 {
			return nil, fmt.Errorf("workbook has no sheet named %q", sheetName)
		}
		sheet = sheetName
	}

	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("file.GetRows(%s) > %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("file.GetRows(%s) > %w", sheet, err)
	}
	if len(formatted) == 0 {
		return nil, nil
	}

	rows := make([]ScheduleRow, 0, len(formatted)-1)
	for i := 1; i < len(formatted); i++ {
		cells := formatted[i]
		row := ScheduleRow{
			Index:      i - 1,
			Week:       cellAt(cells, columnWeek),
			Module:     cellAt(cells, columnModule),
			Lesson:     cellAt(cells, columnLesson),
			RawDate:    cellAt(cells, columnDate),
			Topic:      cellAt(cells, columnTopic),
			Referenced: cellAt(cells, columnReferenced),
			Assigned:   cellAt(cells, columnAssigned),
			Due:        cellAt(cells, columnDue),
			Prework:    cellAt(cells, columnPrework),
		}
		var rawCells []string
		if i < len(raw) {
			rawCells = raw[i]
		}
		row.Date = parseDateCell(f, sheet, i, cellAt(rawCells, columnDate), row.RawDate)
		rows = append(rows, row)
	}
	return rows, nil
}

func cellAt(cells []string, column int) string {
	if column >= len(cells) {
		return ""
	}
	return cells[column]
}

// parseDateCell resolves the date column. A genuine date cell is a
// serial number paired with a date number format; a date typed as text
// must match one of the accepted layouts. Anything else leaves Date nil
// and the walker warns on the row instead of failing.
func parseDateCell(f *excelize.File, sheet string, sheetRow int, rawValue, formatted string) *time.Time {
	if serial, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64); err == nil {
		if !cellHasDateFormat(f, sheet, sheetRow) {
			return nil
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		return &t
	}

	text := strings.TrimSpace(formatted)
	if text == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

func cellHasDateFormat(f *excelize.File, sheet string, sheetRow int) bool {
	axis, err := excelize.CoordinatesToCellName(columnDate+1, sheetRow+1)
	if err != nil {
		return false
	}
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtinDateFormat(style.NumFmt) {
		return true
	}
	if style.CustomNumFmt != nil {
		return customFormatIsDate(*style.CustomNumFmt)
	}
	return false
}

// builtinDateFormat reports whether an Excel builtin number format ID
// renders as a date or time.
func builtinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// customFormatIsDate checks a custom number format for date tokens after
// dropping bracketed sections and quoted literals.
func customFormatIsDate(format string) bool {
	stripped := bracketedFormatSection.ReplaceAllString(format, "")
	return strings.ContainsAny(stripped, "dmyhsDMYHS")
}
