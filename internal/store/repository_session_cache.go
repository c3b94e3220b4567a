package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

// sqliteSessionCache keeps the session secret of this device in a single
// row of the local_session table.
type sqliteSessionCache struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalSessionCache constructs a [LocalSessionCache] over the on-device
// SQLite database.
func NewLocalSessionCache(db *DB, logger *logger.Logger) LocalSessionCache {
	return &sqliteSessionCache{db: db, logger: logger}
}

func (c *sqliteSessionCache) Load(ctx context.Context) (string, error) {
	query, args, err := buildSelectLocalSessionQuery()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var secret string
	if err = c.db.QueryRowContext(ctx, query, args...).Scan(&secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLocalSessionNotFound
		}
		c.logger.Err(err).Str("func", "*sqliteSessionCache.Load").Msg("error reading cached session")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if secret == "" {
		return "", ErrLocalSessionNotFound
	}

	return secret, nil
}

func (c *sqliteSessionCache) Save(ctx context.Context, secret string) error {
	if secret == "" {
		return c.Clear(ctx)
	}

	query, args, err := buildUpsertLocalSessionQuery(secret)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "*sqliteSessionCache.Save").Msg("error caching session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *sqliteSessionCache) Clear(ctx context.Context) error {
	query, args, err := buildDeleteLocalSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "*sqliteSessionCache.Clear").Msg("error clearing cached session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
