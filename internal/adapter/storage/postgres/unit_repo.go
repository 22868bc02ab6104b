package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloodlink/internal/core/domain"
	"bloodlink/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UnitRepo implements ports.UnitRepository.
type UnitRepo struct {
	pool Pool
}

// NewUnitRepo creates a new UnitRepo.
func NewUnitRepo(pool Pool) *UnitRepo {
	return &UnitRepo{pool: pool}
}

const unitColumns = `unit_id, donor_id, blood_group, rh_factor, collected_at, bank_id, status, test_artifact_ref, created_at`

// Create inserts a new blood unit.
func (r *UnitRepo) Create(ctx context.Context, u *domain.BloodUnit) error {
	query := `INSERT INTO blood_units (unit_id, donor_id, blood_group, rh_factor, collected_at, bank_id, status, test_artifact_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		u.UnitID, u.DonorID, u.BloodType.Group, u.BloodType.Rh,
		u.CollectedAt, u.BankID, u.Status, u.TestArtifactRef, u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.ErrDuplicateUnit(u.UnitID)
		}
		return fmt.Errorf("insert blood unit: %w", err)
	}
	return nil
}

// GetByID fetches a blood unit by its external id.
func (r *UnitRepo) GetByID(ctx context.Context, unitID string) (*domain.BloodUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM blood_units WHERE unit_id = $1`

	u, err := scanUnit(r.pool.QueryRow(ctx, query, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood unit by id: %w", err)
	}
	return u, nil
}

// UpdateStatusCAS transitions a unit from one status to another in a single
// conditional UPDATE. The WHERE clause is the compare half of the swap:
// zero rows affected means another writer moved the unit first.
func (r *UnitRepo) UpdateStatusCAS(ctx context.Context, unitID string, from, to domain.UnitStatus, artifactRef *string) (bool, error) {
	query := `UPDATE blood_units
		SET status = $3, test_artifact_ref = COALESCE($4, test_artifact_ref)
		WHERE unit_id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, unitID, from, to, artifactRef)
	if err != nil {
		return false, fmt.Errorf("update blood unit status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListIDsByStatus returns unit ids of a given status in insertion order.
func (r *UnitRepo) ListIDsByStatus(ctx context.Context, status domain.UnitStatus) ([]string, error) {
	query := `SELECT unit_id FROM blood_units WHERE status = $1 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list units by status: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

// ListCompatibleIDs returns TESTED_SAFE unit ids whose blood type is one of
// donorTypes and whose collection date is strictly after the cutoff,
// freshest first.
func (r *UnitRepo) ListCompatibleIDs(ctx context.Context, donorTypes []domain.BloodType, collectedAfter time.Time) ([]string, error) {
	if len(donorTypes) == 0 {
		return nil, nil
	}

	args := []any{domain.UnitStatusTestedSafe, collectedAfter}
	placeholders := make([]string, 0, len(donorTypes))
	for _, bt := range donorTypes {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d)", len(args)+1, len(args)+2))
		args = append(args, bt.Group, bt.Rh)
	}

	query := `SELECT unit_id FROM blood_units
		WHERE status = $1 AND collected_at > $2
		AND (blood_group, rh_factor) IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY collected_at DESC, unit_id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list compatible units: %w", err)
	}
	defer rows.Close()

	return collectIDs(rows)
}

// ScanNonTerminal pages through non-terminal units in ascending unit id
// order, starting strictly after afterUnitID.
func (r *UnitRepo) ScanNonTerminal(ctx context.Context, afterUnitID string, limit int) ([]domain.BloodUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM blood_units
		WHERE unit_id > $1 AND status IN ($2, $3, $4)
		ORDER BY unit_id ASC
		LIMIT $5`

	rows, err := r.pool.Query(ctx, query, afterUnitID,
		domain.UnitStatusNotVerified, domain.UnitStatusTestedSafe, domain.UnitStatusReserved,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scan non-terminal units: %w", err)
	}
	defer rows.Close()

	var units []domain.BloodUnit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan non-terminal units: %w", err)
		}
		units = append(units, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan non-terminal units: %w", err)
	}
	return units, nil
}

func scanUnit(row pgx.Row) (*domain.BloodUnit, error) {
	u := &domain.BloodUnit{}
	err := row.Scan(
		&u.UnitID, &u.DonorID, &u.BloodType.Group, &u.BloodType.Rh,
		&u.CollectedAt, &u.BankID, &u.Status, &u.TestArtifactRef, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func collectIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unit id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading unit ids: %w", err)
	}
	return ids, nil
}
