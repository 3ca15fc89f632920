package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/importer"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type ImportRepo interface {
	ImportPeople(ctx context.Context, rows []importer.Row, source string) (*importer.Result, error)
}

// ImportPeople creates a person per row in a single transaction. Organizations and departments are found by name or
// created. A manager email that does not match anyone in the organization leaves the manager unset. A failing row is
// rolled back to its own savepoint and reported without affecting the other rows.
func (r *repo) ImportPeople(ctx context.Context, rows []importer.Row, source string) (*importer.Result, error) {
	var result *importer.Result

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		result = importer.NewResult()
		txRepo := r.withTx(tx)
		for _, row := range rows {
			var person *gensql.Person
			err := pgx.BeginFunc(ctx, tx, func(savepoint pgx.Tx) error {
				var err error
				person, err = txRepo.withTx(savepoint).importRow(ctx, row, source)
				return err
			})
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				r.log.WithError(err).WithField("row", row.Number).Debug("skipping import row")
				result.AddErrors(importer.RowError{Row: row.Number, Error: importErrorMessage(err)})
				continue
			}

			result.Created = append(result.Created, importer.Created{
				Row:   row.Number,
				ID:    person.ID,
				Email: person.Email,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing people: %w", err)
	}

	r.countImportedRows(ctx, "created", len(result.Created))
	r.countImportedRows(ctx, "failed", len(result.Errors))
	return result, nil
}

func (r *repo) importRow(ctx context.Context, row importer.Row, source string) (*gensql.Person, error) {
	org, err := r.querier.GetOrganizationByName(ctx, row.Organization)
	if errors.Is(err, pgx.ErrNoRows) {
		org, err = r.querier.CreateOrganization(ctx, gensql.CreateOrganizationParams{Name: row.Organization})
	}
	if err != nil {
		return nil, fmt.Errorf("organization %q: %w", row.Organization, mapError(err))
	}

	var departmentID *int64
	if row.Department != "" {
		department, err := r.querier.GetDepartmentByName(ctx, gensql.GetDepartmentByNameParams{
			OrganizationID: org.ID,
			Name:           row.Department,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			department, err = r.querier.CreateDepartment(ctx, gensql.CreateDepartmentParams{
				OrganizationID: org.ID,
				Name:           row.Department,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("department %q: %w", row.Department, mapError(err))
		}
		departmentID = &department.ID
	}

	var managerID *int64
	if row.ManagerEmail != "" {
		manager, err := r.querier.GetPersonByEmail(ctx, gensql.GetPersonByEmailParams{
			OrganizationID: org.ID,
			Email:          &row.ManagerEmail,
		})
		switch {
		case err == nil:
			managerID = &manager.ID
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, fmt.Errorf("manager %q: %w", row.ManagerEmail, err)
		}
	}

	person, err := r.querier.CreatePerson(ctx, gensql.CreatePersonParams{
		OrganizationID: org.ID,
		DepartmentID:   departmentID,
		FullName:       row.Name,
		Title:          optional(row.Title),
		Email:          optional(row.Email),
		Phone:          optional(row.Phone),
		Location:       optional(row.Location),
		IsEpcContact:   row.IsEpcContact,
		Source:         &source,
		ManagerID:      managerID,
	})
	if err != nil {
		return nil, fmt.Errorf("person %q: %w", row.Name, mapError(err))
	}
	return person, nil
}

// countImportedRows records rows of a committed import
func (r *repo) countImportedRows(ctx context.Context, result string, n int) {
	if r.importedRows == nil || n == 0 {
		return
	}
	r.importedRows.Add(ctx, int64(n), metric.WithAttributes(attribute.String("result", result)))
}

// importErrorMessage returns a message for a failed row that is safe to show to the uploader
func importErrorMessage(err error) string {
	if errors.Is(err, ErrConflict) {
		return "a person with this email already exists in the organization"
	}
	var dbErr interface{ SQLState() string }
	if errors.As(err, &dbErr) {
		return "database error"
	}
	return err.Error()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
