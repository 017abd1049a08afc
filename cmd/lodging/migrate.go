package main

import (
	"log/slog"
	"strconv"

	"lodging/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *migrations.Migrator) error {
					return m.Up()
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations, all of them when steps is omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 0
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return errors.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = n
				}

				return withMigrator(cmd, func(m *migrations.Migrator) error {
					return m.Down(steps)
				})
			},
		},
	)

	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(*migrations.Migrator) error) error {
	ctx := cmd.Context()

	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	stop, err := startOnce(ctx, injectInfra(), fx.Populate(&db, &logger))
	if err != nil {
		return err
	}
	defer stop()

	migrator, err := migrations.New(ctx, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", err))
		}
	}()

	return fn(migrator)
}
