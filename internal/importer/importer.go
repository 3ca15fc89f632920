package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SourceCSV  = "csv"
	SourceXLSX = "xlsx"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// Row is one person from an uploaded file. Number is the line or sheet row it was read from, the header being row 1.
type Row struct {
	Number       int
	Organization string
	Name         string
	Title        string
	Email        string
	Phone        string
	Location     string
	Department   string
	ManagerEmail string
	IsEpcContact bool
}

type Created struct {
	Row   int     `json:"row"`
	ID    int64   `json:"id"`
	Email *string `json:"email"`
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type Result struct {
	Created []Created  `json:"created"`
	Errors  []RowError `json:"errors"`
}

func NewResult() *Result {
	return &Result{
		Created: []Created{},
		Errors:  []RowError{},
	}
}

// AddErrors adds row errors and keeps all errors ordered by row
func (r *Result) AddErrors(errs ...RowError) {
	r.Errors = append(r.Errors, errs...)
	sort.SliceStable(r.Errors, func(i, j int) bool {
		return r.Errors[i].Row < r.Errors[j].Row
	})
}

// Source returns the person source matching the file name
func Source(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return SourceXLSX
	}
	return SourceCSV
}

// Parse reads people from r. Files named *.xlsx are read as workbooks using the first sheet, anything else as CSV.
// Rows that can not become a person are returned as row errors, only unreadable files fail as a whole.
func Parse(filename string, r io.Reader) ([]Row, []RowError, error) {
	var records [][]string
	var err error
	if Source(filename) == SourceXLSX {
		records, err = readXLSX(r)
	} else {
		records, err = readCSV(r)
	}
	if err != nil {
		return nil, nil, err
	}

	rows := make([]Row, 0)
	rowErrors := make([]RowError, 0)
	if len(records) == 0 {
		return rows, rowErrors, nil
	}

	header := headerIndex(records[0])
	for i, record := range records[1:] {
		number := i + 2
		if isBlank(record) {
			continue
		}

		get := func(column string) string {
			idx, ok := header[column]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		row := Row{
			Number:       number,
			Organization: get("organization"),
			Name:         get("name"),
			Title:        get("title"),
			Email:        get("email"),
			Phone:        get("phone"),
			Location:     get("location"),
			Department:   get("department"),
			ManagerEmail: get("manager_email"),
			IsEpcContact: truthy(get("is_epc_contact")),
		}

		switch {
		case row.Organization == "":
			rowErrors = append(rowErrors, RowError{Row: number, Error: "missing organization"})
		case row.Name == "":
			rowErrors = append(rowErrors, RowError{Row: number, Error: "missing name"})
		default:
			rows = append(rows, row)
		}
	}

	return rows, rowErrors, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return records, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	ret := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, exists := ret[name]; !exists {
			ret[name] = i
		}
	}
	return ret
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
