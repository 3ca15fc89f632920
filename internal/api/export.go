package api

import (
	"fmt"
	"net/http"

	"github.com/orgchart/orgchart-backend/internal/api/apierror"
	"github.com/orgchart/orgchart-backend/internal/database"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func errInvalidFormat(format string) error {
	return apierror.New(http.StatusBadRequest, "invalid_format", "Unsupported export format %q, use json or xlsx.", format)
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, r *http.Request, filename string, export *database.Export) {
	f, err := exportWorkbook(export)
	if err != nil {
		h.error(w, r, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.log.WithError(err).Warn("closing export workbook")
		}
	}()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		h.log.WithError(err).Error("writing export workbook")
	}
}

// exportWorkbook returns the account brief as a workbook with one sheet per entity
func exportWorkbook(export *database.Export) (*excelize.File, error) {
	f := excelize.NewFile()

	departments := map[int64]string{}
	for _, d := range export.Departments {
		departments[d.ID] = d.Name
	}
	people := map[int64]string{}
	for _, p := range export.People {
		people[p.ID] = p.FullName
	}

	org := export.Organization
	sheets := []struct {
		name string
		rows [][]any
	}{
		{
			name: "Organization",
			rows: [][]any{
				{"name", "sector", "subsector", "domain", "country", "description", "exported_at"},
				{org.Name, str(org.Sector), str(org.Subsector), str(org.Domain), str(org.Country), str(org.Description), export.ExportedAt.Format("2006-01-02 15:04:05")},
			},
		},
		{
			name: "People",
			rows: peopleRows(export, departments, people),
		},
		{
			name: "Projects",
			rows: projectRows(export, people),
		},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return nil, fmt.Errorf("naming sheet %s: %w", sheet.name, err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", sheet.name, err)
		}

		for n, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, n+1)
			if err != nil {
				return nil, err
			}
			row := row
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return nil, fmt.Errorf("writing sheet %s: %w", sheet.name, err)
			}
		}
	}

	return f, nil
}

// peopleRows uses the import column names so an exported sheet can be imported again
func peopleRows(export *database.Export, departments, people map[int64]string) [][]any {
	emails := map[int64]string{}
	for _, p := range export.People {
		emails[p.ID] = str(p.Email)
	}

	rows := [][]any{{"organization", "name", "title", "email", "phone", "location", "department", "manager_email", "is_epc_contact", "manager"}}
	for _, p := range export.People {
		department, managerEmail, manager := "", "", ""
		if p.DepartmentID != nil {
			department = departments[*p.DepartmentID]
		}
		if p.ManagerID != nil {
			managerEmail = emails[*p.ManagerID]
			manager = people[*p.ManagerID]
		}
		rows = append(rows, []any{
			export.Organization.Name, p.FullName, str(p.Title), str(p.Email), str(p.Phone), str(p.Location),
			department, managerEmail, p.IsEpcContact, manager,
		})
	}
	return rows
}

func projectRows(export *database.Export, people map[int64]string) [][]any {
	rows := [][]any{{"name", "project_type", "status", "site", "start_date", "end_date", "epc_company", "epc_contact"}}
	for _, p := range export.Projects {
		contact := ""
		if p.EpcContactPersonID != nil {
			contact = people[*p.EpcContactPersonID]
		}
		rows = append(rows, []any{
			p.Name, string(p.ProjectType), str(p.Status), str(p.Site), str(formatDate(p.StartDate)), str(formatDate(p.EndDate)),
			str(p.EpcCompany), contact,
		})
	}
	return rows
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
