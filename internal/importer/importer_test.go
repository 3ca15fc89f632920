package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/orgchart/orgchart-backend/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_CSV(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		rows, rowErrors, err := importer.Parse("people.csv", strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Empty(t, rowErrors)
	})

	t.Run("rows are numbered from two", func(t *testing.T) {
		data := "organization,name,title,email,phone,location,department,manager_email,is_epc_contact\n" +
			"Acme,Alice,CEO,alice@acme.test,555,Oslo,Board,,yes\n" +
			"Acme,Bob,VP,bob@acme.test,,,,alice@acme.test,0\n"

		rows, rowErrors, err := importer.Parse("people.csv", strings.NewReader(data))
		require.NoError(t, err)
		assert.Empty(t, rowErrors)
		require.Len(t, rows, 2)

		assert.Equal(t, importer.Row{
			Number:       2,
			Organization: "Acme",
			Name:         "Alice",
			Title:        "CEO",
			Email:        "alice@acme.test",
			Phone:        "555",
			Location:     "Oslo",
			Department:   "Board",
			IsEpcContact: true,
		}, rows[0])
		assert.Equal(t, 3, rows[1].Number)
		assert.Equal(t, "alice@acme.test", rows[1].ManagerEmail)
		assert.False(t, rows[1].IsEpcContact)
	})

	t.Run("headers are case insensitive and may be reordered", func(t *testing.T) {
		data := "\ufeffName, Organization ,IS_EPC_CONTACT\nAlice,Acme,Y\n"

		rows, _, err := importer.Parse("people.CSV", strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Alice", rows[0].Name)
		assert.Equal(t, "Acme", rows[0].Organization)
		assert.True(t, rows[0].IsEpcContact)
	})

	t.Run("truthy values", func(t *testing.T) {
		for value, expected := range map[string]bool{
			"true": true, "TRUE": true, "1": true, "yes": true, "y": true,
			"false": false, "0": false, "no": false, "": false, "maybe": false,
		} {
			data := "organization,name,is_epc_contact\nAcme,Alice," + value + "\n"
			rows, _, err := importer.Parse("people.csv", strings.NewReader(data))
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, expected, rows[0].IsEpcContact, "value %q", value)
		}
	})

	t.Run("missing organization and name become row errors", func(t *testing.T) {
		data := "organization,name\n" +
			",Alice\n" +
			"Acme,\n" +
			"Acme,Cara\n"

		rows, rowErrors, err := importer.Parse("people.csv", strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 4, rows[0].Number)
		assert.Equal(t, []importer.RowError{
			{Row: 2, Error: "missing organization"},
			{Row: 3, Error: "missing name"},
		}, rowErrors)
	})

	t.Run("short rows", func(t *testing.T) {
		data := "organization,name,title,email\nAcme,Alice\n"

		rows, rowErrors, err := importer.Parse("people.csv", strings.NewReader(data))
		require.NoError(t, err)
		assert.Empty(t, rowErrors)
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Email)
	})

	t.Run("malformed csv", func(t *testing.T) {
		_, _, err := importer.Parse("people.csv", strings.NewReader("organization,name\n\"Acme,Alice\n"))
		assert.ErrorContains(t, err, "reading csv")
	})
}

func TestParse_XLSX(t *testing.T) {
	workbook := func(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
		t.Helper()
		f := excelize.NewFile()
		defer f.Close()
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
		}
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		return buf
	}

	t.Run("first sheet is read", func(t *testing.T) {
		buf := workbook(t,
			[]interface{}{"Organization", "Name", "Title", "Email", "Manager_Email", "Is_Epc_Contact"},
			[]interface{}{"Acme", "Alice", "CEO", "alice@acme.test", "", "1"},
			[]interface{}{},
			[]interface{}{"Acme", "Bob", "VP", "bob@acme.test", "alice@acme.test", "no"},
		)

		rows, rowErrors, err := importer.Parse("People.xlsx", buf)
		require.NoError(t, err)
		assert.Empty(t, rowErrors)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Number)
		assert.True(t, rows[0].IsEpcContact)
		assert.Equal(t, 4, rows[1].Number)
		assert.Equal(t, "alice@acme.test", rows[1].ManagerEmail)
	})

	t.Run("missing organization", func(t *testing.T) {
		buf := workbook(t,
			[]interface{}{"organization", "name"},
			[]interface{}{"", "Alice"},
		)

		rows, rowErrors, err := importer.Parse("people.xlsx", buf)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, []importer.RowError{{Row: 2, Error: "missing organization"}}, rowErrors)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, _, err := importer.Parse("people.xlsx", strings.NewReader("organization,name\n"))
		assert.ErrorContains(t, err, "opening workbook")
	})
}

func TestSource(t *testing.T) {
	assert.Equal(t, importer.SourceXLSX, importer.Source("a.XLSX"))
	assert.Equal(t, importer.SourceCSV, importer.Source("a.csv"))
	assert.Equal(t, importer.SourceCSV, importer.Source("upload"))
}

func TestResult_AddErrors(t *testing.T) {
	result := importer.NewResult()
	result.AddErrors(importer.RowError{Row: 5, Error: "b"})
	result.AddErrors(importer.RowError{Row: 2, Error: "a"}, importer.RowError{Row: 9, Error: "c"})
	assert.Equal(t, []importer.RowError{
		{Row: 2, Error: "a"},
		{Row: 5, Error: "b"},
		{Row: 9, Error: "c"},
	}, result.Errors)
	assert.Empty(t, result.Created)
}
