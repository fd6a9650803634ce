// Package postgres implements store.DocumentStore on PostgreSQL: one
// documents table keyed by record name, with a revision counter for
// optimistic concurrency. Document updates through Update are
// compare-and-swap with bounded retry, which closes the read-mutate-write
// race across processes that the file backend only narrows.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrConflict is returned when an Update loses the revision race more
// times than the retry budget allows.
var ErrConflict = errors.New("document revision conflict")

const updateRetries = 5

// Store is a DocumentStore backed by a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewStore connects to the database, verifies the connection, and runs
// pending migrations.
func NewStore(ctx context.Context, connString string, logger *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{pool: pool, logger: logger}
	if err := s.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Load returns the stored document for key, seeding and persisting the
// default when no row exists. Read failures fall back to the default
// with a warning so queue operation never halts on a flaky database.
func (s *Store) Load(key string, def []byte) ([]byte, error) {
	ctx := context.Background()
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM documents WHERE key = $1`, key).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		_, err = s.pool.Exec(ctx,
			`INSERT INTO documents (key, doc) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
			key, def)
		if err != nil {
			s.logger.Warn("failed to seed default document",
				zap.String("key", key), zap.Error(err))
		}
		return def, nil
	}
	if err != nil {
		s.logger.Warn("failed to read document, falling back to default",
			zap.String("key", key), zap.Error(err))
		return def, nil
	}
	return doc, nil
}

// Save replaces the document for key, bumping its revision.
func (s *Store) Save(key string, doc []byte) error {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO documents (key, doc) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, revision = documents.revision + 1, updated_at = NOW()
	`, key, doc)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

// Update applies fn to the current document for key under optimistic
// concurrency: the write only lands if the revision read is still
// current, otherwise the cycle retries against the fresh document.
func (s *Store) Update(key string, def []byte, fn func(doc []byte) ([]byte, error)) error {
	ctx := context.Background()
	for attempt := 0; attempt < updateRetries; attempt++ {
		var (
			doc      []byte
			revision int64
		)
		err := s.pool.QueryRow(ctx,
			`SELECT doc, revision FROM documents WHERE key = $1`, key).Scan(&doc, &revision)
		if errors.Is(err, pgx.ErrNoRows) {
			doc, revision = def, 0
		} else if err != nil {
			return fmt.Errorf("failed to read document %s: %w", key, err)
		}

		next, err := fn(doc)
		if err != nil {
			return err
		}

		var tag int64
		if revision == 0 {
			res, err := s.pool.Exec(ctx,
				`INSERT INTO documents (key, doc) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
				key, next)
			if err != nil {
				return fmt.Errorf("failed to insert document %s: %w", key, err)
			}
			tag = res.RowsAffected()
		} else {
			res, err := s.pool.Exec(ctx, `
				UPDATE documents
				SET doc = $2, revision = revision + 1, updated_at = NOW()
				WHERE key = $1 AND revision = $3
			`, key, next, revision)
			if err != nil {
				return fmt.Errorf("failed to update document %s: %w", key, err)
			}
			tag = res.RowsAffected()
		}
		if tag == 1 {
			return nil
		}
		s.logger.Debug("document update lost the revision race, retrying",
			zap.String("key", key), zap.Int("attempt", attempt+1))
	}
	return fmt.Errorf("%w: %s", ErrConflict, key)
}

// Keys lists stored keys with the given prefix, newest first.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT key FROM documents WHERE key LIKE $1 || '%'`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan document key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// runMigrations executes pending SQL migration files in order, tracking
// applied migrations in a schema_migrations table.
func (s *Store) runMigrations(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	rows, err := s.pool.Query(ctx, `SELECT filename FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	applied := make(map[string]bool)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration filename: %w", err)
		}
		applied[filename] = true
	}
	rows.Close()

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}
	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, filename := range sqlFiles {
		if applied[filename] {
			continue
		}
		content, err := fs.ReadFile(migrationsFS, "migrations/"+filename)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", filename, err)
		}

		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for %s: %w", filename, err)
		}
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to execute migration %s: %w", filename, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (filename) VALUES ($1)`, filename); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to record migration %s: %w", filename, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", filename, err)
		}
	}
	return nil
}
