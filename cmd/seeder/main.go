package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/zarshop/storefront/internal/adapter/storage"
	"github.com/zarshop/storefront/internal/core/service"
)

// seeder upserts the built-in catalog dataset into the product store,
// so a fresh deployment serves the same products the fallback does.

const seedTimeout = 30 * time.Second

func main() {
	dsn := pflag.StringP("storage-path", "s", "", "postgres DSN")
	pflag.Parse()

	if *dsn == "" {
		slog.Error("too few args", "err", "--storage-path flag: required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	sqldb, err := storage.NewSQLDB(ctx, *dsn)
	if err != nil {
		slog.Error("failed to open database", "err", err)
		os.Exit(2)
	}
	defer sqldb.Close()

	products := service.FallbackCatalog()
	repo := storage.NewProductsRepository(sqldb)
	if err := repo.SaveProducts(ctx, products); err != nil {
		slog.Error("failed to seed products", "err", err)
		os.Exit(2)
	}

	fmt.Printf("seeded %d products\n", len(products))
}
