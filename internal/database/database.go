package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net"
	"net/url"
	"strings"

	"cloud.google.com/go/cloudsqlconn"
	cloudsqlpgx "cloud.google.com/go/cloudsqlconn/postgres/pgxv4"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/orgchart/orgchart-backend/internal/logger"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

const cloudSQLDriver = "cloudsql-postgres"

type closeFuncs []func() error

func (c closeFuncs) Close() error {
	var err error
	for _, f := range c {
		if e := f(); e != nil {
			err = e
		}
	}
	return err
}

//go:embed migrations/0*.sql
var embedMigrations embed.FS

// IsCloudSQL reports whether dsn is a key/value DSN pointing at a Cloud SQL instance rather than a postgres:// URL
func IsCloudSQL(dsn string) bool {
	return !strings.Contains(dsn, "://")
}

// GetInstanceConnectionNameFromDsn returns the host field of a key/value DSN, which for Cloud SQL is the instance
// connection name
func GetInstanceConnectionNameFromDsn(dsn string) (string, error) {
	vals, err := url.ParseQuery(strings.ReplaceAll(dsn, " ", "&"))
	if err != nil {
		return "", err
	}
	host := vals.Get("host")
	if host == "" {
		return "", fmt.Errorf("dsn does not have a host field: %q", dsn)
	}
	return host, nil
}

// NewPool creates a new connection pool. Key/value DSNs are dialed through the Cloud SQL connector using IAM
// authentication.
func NewPool(ctx context.Context, dsn string, log logrus.FieldLogger) (*pgxpool.Pool, closeFuncs, error) {
	closers := closeFuncs{}
	cloudsqlHost := ""
	if IsCloudSQL(dsn) {
		host, err := GetInstanceConnectionNameFromDsn(dsn)
		if err != nil {
			return nil, closers, err
		}
		cloudsqlHost = host
		vals, _ := url.ParseQuery(strings.ReplaceAll(dsn, " ", "&"))
		delete(vals, "host")
		dsn = strings.ReplaceAll(vals.Encode(), "&", " ")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, closers, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	if cloudsqlHost != "" {
		log.WithField("instance", cloudsqlHost).Info("connecting through the Cloud SQL connector")
		dialer, err := cloudsqlconn.NewDialer(ctx, cloudsqlconn.WithIAMAuthN())
		if err != nil {
			return nil, closers, fmt.Errorf("failed to initialize dialer: %w", err)
		}
		closers = append(closers, dialer.Close)
		config.ConnConfig.DialFunc = func(ctx context.Context, _, _ string) (net.Conn, error) {
			return dialer.Dial(ctx, cloudsqlHost)
		}
	}

	conn, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, closers, fmt.Errorf("failed to connect: %w", err)
	}

	return conn, closers, nil
}

// Migrate runs the embedded database migrations
func Migrate(dsn string, log logrus.FieldLogger) error {
	driver := "pgx"
	if IsCloudSQL(dsn) {
		host, err := GetInstanceConnectionNameFromDsn(dsn)
		if err != nil {
			return err
		}
		cleanup, err := cloudsqlpgx.RegisterDriver(cloudSQLDriver, cloudsqlconn.WithIAMAuthN())
		if err != nil {
			return fmt.Errorf("registering cloud sql driver: %w", err)
		}
		defer func() {
			if err := cleanup(); err != nil {
				log.WithError(err).Error("closing cloud sql driver")
			}
		}()
		driver = cloudSQLDriver
		log.WithField("instance", host).Debug("migrating through the Cloud SQL connector")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(logger.Goose(log))

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("closing database migration connection")
		}
	}()

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
