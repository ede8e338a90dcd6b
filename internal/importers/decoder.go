package importers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

var (
	zipMagic  = []byte("PK\x03\x04")
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
)

// Row maps a column header to the text of one cell. Blank cells hold "".
type Row map[string]string

// Sheet is the decoded content of a workbook's first worksheet.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
	// Lines holds the 1-based spreadsheet line of each entry in Rows.
	Lines []int
}

// DetectFormat identifies the container from its magic bytes, falling back to the file name.
func DetectFormat(name string, data []byte) (Format, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX, nil
	case bytes.HasPrefix(data, ole2Magic):
		return FormatXLS, nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return "", &DecodeError{Format: FormatXLSX, Err: errors.New("not a valid workbook")}
	case ".xls":
		return "", &DecodeError{Format: FormatXLS, Err: errors.New("not a valid workbook")}
	case "":
		if utf8.Valid(data) {
			return FormatCSV, nil
		}
	}
	return "", &DecodeError{Err: fmt.Errorf("unsupported file type %q", filepath.Ext(name))}
}

// Decode reads the first sheet of an xlsx, xls or csv payload.
func Decode(name string, data []byte) (sheet *Sheet, err error) {
	format, err := DetectFormat(name, data)
	if err != nil {
		return nil, err
	}

	// Both workbook readers panic on some corrupt inputs.
	defer func() {
		if r := recover(); r != nil {
			sheet = nil
			err = &DecodeError{Format: format, Err: fmt.Errorf("corrupt workbook: %v", r)}
		}
	}()

	var (
		sheetName string
		grid      [][]string
	)
	switch format {
	case FormatXLSX:
		sheetName, grid, err = readXLSX(data)
	case FormatXLS:
		sheetName, grid, err = readXLS(data)
	default:
		sheetName, grid, err = readCSV(data)
	}
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}

	return sheetFromGrid(sheetName, grid), nil
}

func readXLSX(data []byte) (string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", nil, err
	}
	return sheets[0], rows, nil
}

func readXLS(data []byte) (string, [][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", nil, err
	}
	if wb.NumSheets() == 0 {
		return "", nil, errors.New("workbook has no sheets")
	}

	ws := wb.GetSheet(0)
	if ws == nil {
		return "", nil, errors.New("workbook has no sheets")
	}

	grid := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		grid = append(grid, cells)
	}
	return ws.Name, grid, nil
}

func readCSV(data []byte) (string, [][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var grid [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, err
		}
		// The reader skips empty lines; pad so grid indexes stay line numbers.
		line, _ := reader.FieldPos(0)
		for len(grid) < line-1 {
			grid = append(grid, nil)
		}
		grid = append(grid, record)
	}
	return "Sheet1", grid, nil
}

// sniffDelimiter picks the most frequent of , ; and tab on the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, candidate := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(candidate))); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}

// sheetFromGrid turns raw cells into header-keyed rows. The first non-blank
// line is the header; blank lines are skipped.
func sheetFromGrid(name string, grid [][]string) *Sheet {
	sheet := &Sheet{Name: name}

	headerLine := -1
	for i, cells := range grid {
		if !isBlank(cells) {
			headerLine = i
			break
		}
	}
	if headerLine < 0 {
		return sheet
	}

	type column struct {
		index int
		key   string
	}
	var columns []column
	seen := make(map[string]int)
	for i, h := range grid[headerLine] {
		if strings.TrimSpace(h) == "" {
			continue
		}
		key := h
		if n, dup := seen[h]; dup {
			key = h + "_" + strconv.Itoa(n)
		}
		seen[h]++
		columns = append(columns, column{index: i, key: key})
		sheet.Headers = append(sheet.Headers, key)
	}

	for i := headerLine + 1; i < len(grid); i++ {
		cells := grid[i]
		if isBlank(cells) {
			continue
		}
		row := make(Row, len(columns))
		for _, col := range columns {
			if col.index < len(cells) {
				row[col.key] = cells[col.index]
			} else {
				row[col.key] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
		sheet.Lines = append(sheet.Lines, i+1)
	}
	return sheet
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
