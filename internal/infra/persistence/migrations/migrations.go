// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"embed"
	"log/slog"

	"lodging/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var files embed.FS

// Migrator applies the embedded migrations over a dedicated connection
// borrowed from the gorm pool. Closing it releases only that connection.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// New builds a Migrator on top of db.
func New(ctx context.Context, db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to create migrate driver")
	}

	source, err := iofs.New(files, "sql")
	if err != nil {
		_ = driver.Close()

		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return nil, errors.Wrap(err, "failed to init migrator")
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate up failed")
	}
	mg.logVersion("Migrations applied")

	return nil
}

// Down rolls back steps migrations, or all of them when steps <= 0.
func (mg *Migrator) Down(steps int) error {
	var err error
	if steps > 0 {
		err = mg.m.Steps(-steps)
	} else {
		err = mg.m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate down failed")
	}
	mg.logVersion("Migrations rolled back")

	return nil
}

// Close releases the source and the borrowed connection.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()

	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) logVersion(msg string) {
	version, dirty, err := mg.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		mg.logger.Warn("Failed to read migration version", slog.Any("error", err))

		return
	}

	mg.logger.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
