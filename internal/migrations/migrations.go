// Package migrations embeds the schema for every supported database driver
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// dialects maps a database/sql driver name to its goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"pgx":     {dialect: "postgres", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies all pending migrations for the given driver.
func Up(ctx context.Context, db *sql.DB, driverName string) error {
	d, ok := dialects[driverName]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driverName)
	}

	goose.SetBaseFS(FS)
	if err := goose.SetDialect(d.dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, d.dir)
}
