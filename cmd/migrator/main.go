package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

// migrator brings the storefront schema up to date before the server
// or the seeder touch the database.

func main() {
	dsn := pflag.StringP("storage-path", "s", "", "postgres DSN")
	dir := pflag.StringP("migrations-path", "m", "", "migrations directory")
	pflag.Parse()

	if err := requireFlags(*dsn, *dir); err != nil {
		slog.Error("too few args", "err", err)
		os.Exit(2)
	}

	if err := migrateUp(*dsn, *dir); err != nil {
		slog.Error("failed to migrate", "err", err)
		os.Exit(2)
	}
}

func requireFlags(dsn, dir string) error {
	var errs []error

	if dsn == "" {
		errs = append(errs, errors.New("--storage-path flag: required"))
	}
	if dir == "" {
		errs = append(errs, errors.New("--migrations-path flag: required"))
	}
	return errors.Join(errs...)
}

func migrateUp(dsn, dir string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", dir),
		fmt.Sprintf("pgx5://%s", dsn),
	)
	if err != nil {
		return err
	}
	m.Log = migrateLogger{slog.Default()}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("schema is up to date")
			return nil
		}
		return err
	}
	m.Log.Printf("schema migrations applied")
	return nil
}

// migrateLogger routes golang-migrate output through slog.
type migrateLogger struct {
	log *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l migrateLogger) Verbose() bool {
	return false
}
