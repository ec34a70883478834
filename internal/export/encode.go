package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/xuri/excelize/v2"
)

// Format is a downloadable file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the single worksheet written by EncodeXLSX.
const SheetName = "Sheet1"

var xlsxDateFormat = "yyyy-mm-dd"

// ParseFormat accepts "csv" or "xlsx", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", apperrors.Validationf("format", "unsupported export format %q", s)
	}
}

// FileName is the attachment name offered to the browser.
func (f Format) FileName() string { return "tabela." + string(f) }

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Encode dispatches to the encoder of f.
func Encode(f Format, t Table) ([]byte, error) {
	switch f {
	case FormatCSV:
		return EncodeCSV(t)
	case FormatXLSX:
		return EncodeXLSX(t)
	default:
		return nil, &apperrors.ExportError{Format: string(f), Err: errors.New("unsupported format")}
	}
}

// checkUTF8 rejects text that cannot be written as UTF-8.
func checkUTF8(header []string, rows [][]string) error {
	for _, h := range header {
		if !utf8.ValidString(h) {
			return fmt.Errorf("header %q is not valid UTF-8", h)
		}
	}
	for i, row := range rows {
		for j, cell := range row {
			if !utf8.ValidString(cell) {
				return fmt.Errorf("row %d column %q is not valid UTF-8", i+1, header[j])
			}
		}
	}
	return nil
}

// EncodeCSV writes a UTF-8 CSV with a header row and no index column.
func EncodeCSV(t Table) ([]byte, error) {
	header, rows := t.Header(), t.Text()
	if err := checkUTF8(header, rows); err != nil {
		return nil, &apperrors.ExportError{Format: string(FormatCSV), Err: err}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, &apperrors.ExportError{Format: string(FormatCSV), Err: err}
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, &apperrors.ExportError{Format: string(FormatCSV), Err: err}
	}
	return buf.Bytes(), nil
}

// DecodeCSV parses bytes produced by EncodeCSV back into header and rows.
func DecodeCSV(data []byte) (header []string, rows [][]string, err error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.New("decode csv: missing header row")
	}
	return records[0], records[1:], nil
}

// EncodeXLSX writes a workbook with a single sheet, an unstyled header row,
// numeric cells as numbers and purchase dates formatted yyyy-mm-dd.
func EncodeXLSX(t Table) ([]byte, error) {
	fail := func(err error) ([]byte, error) {
		return nil, &apperrors.ExportError{Format: string(FormatXLSX), Err: err}
	}
	if err := checkUTF8(t.Header(), t.Text()); err != nil {
		return fail(err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &xlsxDateFormat})
	if err != nil {
		return fail(fmt.Errorf("date style: %w", err))
	}

	for j, c := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fail(err)
		}
		if err := f.SetCellStr(SheetName, cell, c.Name); err != nil {
			return fail(fmt.Errorf("header %s: %w", cell, err))
		}
	}

	for i, rec := range t.Records {
		for j, c := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fail(err)
			}
			if err := f.SetCellValue(SheetName, cell, c.value(rec)); err != nil {
				return fail(fmt.Errorf("cell %s: %w", cell, err))
			}
			if c.kind == kindDate {
				if err := f.SetCellStyle(SheetName, cell, cell, dateStyle); err != nil {
					return fail(fmt.Errorf("style %s: %w", cell, err))
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fail(err)
	}
	return buf.Bytes(), nil
}
