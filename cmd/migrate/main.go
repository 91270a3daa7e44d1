// Command migrate applies the embedded schema migrations.
//
//	migrate up       apply every pending migration
//	migrate down     roll back the latest migration
//	migrate status   list migrations and whether they are applied
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"examhub/config"
	logs "examhub/internal/infra/log"
	"examhub/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const migrateTimeout = 5 * time.Minute

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate [up|down|status]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if err := run(command); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	switch command {
	case "up":
		applied, err := migrations.Up(ctx, sqlDB)
		if err != nil {
			return err
		}
		logger.Info("Migrations applied", slog.Int("count", applied))

	case "down":
		if err := migrations.Down(ctx, sqlDB); err != nil {
			return err
		}
		logger.Info("Latest migration rolled back")

	case "status":
		statuses, err := migrations.List(ctx, sqlDB)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			state := "pending"
			if st.Applied {
				state = "applied " + st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-40s %s\n", st.Version, st.Path, state)
		}

	default:
		flag.Usage()

		return errors.Errorf("unknown command %q", command)
	}

	return nil
}
