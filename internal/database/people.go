package database

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
)

type PersonRepo interface {
	ListPeople(ctx context.Context, filter PeopleFilter) ([]*gensql.Person, int64, error)
	GetPerson(ctx context.Context, id int64) (*gensql.Person, error)
	CreatePerson(ctx context.Context, arg gensql.CreatePersonParams) (*gensql.Person, error)
	UpdatePerson(ctx context.Context, arg gensql.UpdatePersonParams) (*gensql.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// PeopleFilter narrows ListPeople. A Limit of zero or less returns every matching person.
type PeopleFilter struct {
	OrganizationID *int64
	Email          *string
	Limit          int
	Offset         int
}

func (r *repo) ListPeople(ctx context.Context, filter PeopleFilter) ([]*gensql.Person, int64, error) {
	limit := int32(math.MaxInt32)
	if filter.Limit > 0 && filter.Limit < math.MaxInt32 {
		limit = int32(filter.Limit)
	}
	offset := int32(0)
	switch {
	case filter.Offset >= math.MaxInt32:
		offset = math.MaxInt32
	case filter.Offset > 0:
		offset = int32(filter.Offset)
	}

	people, err := r.querier.ListPeople(ctx, gensql.ListPeopleParams{
		OrganizationID: filter.OrganizationID,
		Email:          filter.Email,
		LimitRows:      limit,
		OffsetRows:     offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing people: %w", err)
	}

	total, err := r.querier.CountPeople(ctx, gensql.CountPeopleParams{
		OrganizationID: filter.OrganizationID,
		Email:          filter.Email,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("counting people: %w", err)
	}

	return nonNil(people), total, nil
}

func (r *repo) GetPerson(ctx context.Context, id int64) (*gensql.Person, error) {
	person, err := r.querier.GetPerson(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting person %d: %w", id, mapError(err))
	}
	return person, nil
}

func (r *repo) CreatePerson(ctx context.Context, arg gensql.CreatePersonParams) (*gensql.Person, error) {
	if _, err := r.querier.GetOrganization(ctx, arg.OrganizationID); err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return nil, ErrInvalidOrganization
		}
		return nil, fmt.Errorf("getting organization %d: %w", arg.OrganizationID, err)
	}

	if err := r.checkPersonReferences(ctx, arg.OrganizationID, nil, arg.DepartmentID, arg.ManagerID); err != nil {
		return nil, err
	}

	person, err := r.querier.CreatePerson(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("creating person %q: %w", arg.FullName, mapError(err))
	}
	return person, nil
}

func (r *repo) UpdatePerson(ctx context.Context, arg gensql.UpdatePersonParams) (*gensql.Person, error) {
	var person *gensql.Person
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		txRepo := r.withTx(tx)
		existing, err := txRepo.GetPerson(ctx, arg.ID)
		if err != nil {
			return err
		}

		if err := txRepo.checkPersonReferences(ctx, existing.OrganizationID, &arg.ID, arg.DepartmentID, arg.ManagerID); err != nil {
			return err
		}

		person, err = txRepo.querier.UpdatePerson(ctx, arg)
		if err != nil {
			return fmt.Errorf("updating person %d: %w", arg.ID, mapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (r *repo) DeletePerson(ctx context.Context, id int64) error {
	n, err := r.querier.DeletePerson(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting person %d: %w", id, mapError(err))
	}
	if n == 0 {
		return fmt.Errorf("deleting person %d: %w", id, ErrNotFound)
	}
	return nil
}

// checkPersonReferences makes sure the department and manager of a person belong to its organization, and that the
// manager is not the person or one of its reports. personID is nil for people not yet created.
func (r *repo) checkPersonReferences(ctx context.Context, orgID int64, personID, departmentID, managerID *int64) error {
	if departmentID != nil {
		department, err := r.querier.GetDepartment(ctx, *departmentID)
		if err != nil {
			if errors.Is(mapError(err), ErrNotFound) {
				return ErrInvalidDepartment
			}
			return fmt.Errorf("getting department %d: %w", *departmentID, err)
		}
		if department.OrganizationID != orgID {
			return ErrInvalidDepartment
		}
	}

	if managerID == nil {
		return nil
	}

	manager, err := r.querier.GetPerson(ctx, *managerID)
	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return ErrInvalidManager
		}
		return fmt.Errorf("getting manager %d: %w", *managerID, err)
	}
	if manager.OrganizationID != orgID {
		return ErrInvalidManager
	}

	if personID == nil {
		return nil
	}

	chain, err := r.querier.ManagerChain(ctx, *managerID)
	if err != nil {
		return fmt.Errorf("getting manager chain of %d: %w", *managerID, err)
	}
	if containsID(chain, *personID) {
		return ErrManagerCycle
	}

	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
