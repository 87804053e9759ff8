// Command migrate applies, rolls back or reports the database migrations.
//
//	migrate [up|down|status]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gatekeeper/config"
	"gatekeeper/internal/errors"
	logs "gatekeeper/internal/infra/log"
	"gatekeeper/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const usage = "usage: migrate [up|down|status]"

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, command); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if cfg.Postgres == nil {
		return errors.New("postgres config is missing")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	db, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	switch command {
	case "up":
		err = postgres.Migrate(ctx, db)
	case "down":
		err = postgres.MigrateDown(ctx, db)
	case "status":
		err = postgres.MigrationStatus(ctx, db)
	default:
		fmt.Fprintln(os.Stderr, usage)

		return errors.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	logger.Info("Migration command finished", slog.String("command", command))

	return nil
}
