package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"go-interview-tracker/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// schemaLockKey serializes schema creation between instances starting together.
const schemaLockKey int64 = 7_142_025

// EnsureSchema creates the candidates, interviews and feedbacks tables when
// they are missing. Every statement is IF NOT EXISTS, so running it on each
// start is safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("list schema files: %w", err)
	}
	sort.Strings(files)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", schemaLockKey); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	for _, name := range files {
		body, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		logger.Log.Debug("Schema file applied", "file", name)
	}

	return tx.Commit(ctx)
}
