package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
)

const uniqueViolation = "23505"

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvalidOrganization = errors.New("organization does not exist")
	ErrInvalidDepartment   = errors.New("department does not belong to the organization")
	ErrInvalidManager      = errors.New("manager does not belong to the organization")
	ErrInvalidPerson       = errors.New("person does not belong to the organization")
	ErrManagerCycle        = errors.New("manager would create a reporting cycle")
)

type TXFunc func(repo Repo) error

type Repo interface {
	OrganizationRepo
	DepartmentRepo
	PersonRepo
	ProjectRepo
	AssignmentRepo
	ImportRepo
	orgchart.Source

	Transaction

	Close()
	Metrics(meter metric.Meter) error
}

type Transaction interface {
	TxFunc(ctx context.Context, fn TXFunc) error
}

type Querier interface {
	gensql.Querier
	WithTx(tx pgx.Tx) *gensql.Queries
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type repo struct {
	querier Querier
	db      txBeginner
	pool    *pgxpool.Pool
	log     logrus.FieldLogger

	importedRows metric.Int64Counter
}

func New(pool *pgxpool.Pool, log logrus.FieldLogger) Repo {
	return &repo{
		querier: gensql.New(pool),
		db:      pool,
		pool:    pool,
		log:     log,
	}
}

func (r *repo) Metrics(meter metric.Meter) (err error) {
	r.importedRows, err = meter.Int64Counter("imported_rows", metric.WithDescription("Number of imported people rows by result"))
	if err != nil {
		return fmt.Errorf("failed to create imported_rows counter: %w", err)
	}

	return nil
}

func (r *repo) TxFunc(ctx context.Context, fn TXFunc) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(r.withTx(tx))
	})
}

func (r *repo) withTx(tx pgx.Tx) *repo {
	return &repo{
		querier:      r.querier.WithTx(tx),
		db:           tx,
		pool:         r.pool,
		log:          r.log,
		importedRows: r.importedRows,
	}
}

func (r *repo) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// mapError translates driver errors into the package sentinel errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName != "" {
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		}
		return ErrConflict
	}

	return err
}
