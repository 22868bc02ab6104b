package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloodlink/internal/core/domain"
	"bloodlink/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// ArtifactStore implements ports.ContentStore on a PostgreSQL table keyed by
// the hex SHA-256 of the stored bytes. Rows are immutable: a repeated Put of
// the same bytes hits the same key and inserts nothing.
type ArtifactStore struct {
	pool Pool
}

// NewArtifactStore creates a new ArtifactStore.
func NewArtifactStore(pool Pool) *ArtifactStore {
	return &ArtifactStore{pool: pool}
}

// Put stores a blob and returns its content id. Idempotent.
func (s *ArtifactStore) Put(ctx context.Context, data []byte) (string, error) {
	contentID := domain.ContentID(data)

	query := `INSERT INTO test_artifacts (content_id, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (content_id) DO NOTHING`

	_, err := s.pool.Exec(ctx, query, contentID, data, time.Now().UTC())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperror.ErrStorageTimeout(err)
		}
		return "", apperror.ErrStorageUnavailable(fmt.Errorf("insert test artifact: %w", err))
	}
	return contentID, nil
}

// Get fetches a blob by content id.
func (s *ArtifactStore) Get(ctx context.Context, contentID string) ([]byte, error) {
	query := `SELECT payload FROM test_artifacts WHERE content_id = $1`

	var payload []byte
	err := s.pool.QueryRow(ctx, query, contentID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrArtifactNotFound(contentID)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.ErrStorageTimeout(err)
		}
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get test artifact: %w", err))
	}
	return payload, nil
}
