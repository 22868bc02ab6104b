package postgres

import (
	"context"
	"errors"
	"fmt"

	"bloodlink/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HospitalRepo implements ports.HospitalRepository.
type HospitalRepo struct {
	pool Pool
}

// NewHospitalRepo creates a new HospitalRepo.
func NewHospitalRepo(pool Pool) *HospitalRepo {
	return &HospitalRepo{pool: pool}
}

const hospitalColumns = `id, name, city, type, password_hash, created_at`

// Create inserts a new hospital.
func (r *HospitalRepo) Create(ctx context.Context, h *domain.Hospital) error {
	query := `INSERT INTO hospitals (id, name, city, type, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		h.ID, h.Name, h.City, h.Type, h.PasswordHash, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// GetByID fetches a hospital by its UUID.
func (r *HospitalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1`
	return r.scanHospital(r.pool.QueryRow(ctx, query, id), "id")
}

// GetByName fetches a hospital by its unique name.
func (r *HospitalRepo) GetByName(ctx context.Context, name string) (*domain.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE name = $1`
	return r.scanHospital(r.pool.QueryRow(ctx, query, name), "name")
}

func (r *HospitalRepo) scanHospital(row pgx.Row, by string) (*domain.Hospital, error) {
	h := &domain.Hospital{}
	err := row.Scan(&h.ID, &h.Name, &h.City, &h.Type, &h.PasswordHash, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital by %s: %w", by, err)
	}
	return h, nil
}
