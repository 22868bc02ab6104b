package postgres

import (
	"context"
	"errors"
	"fmt"

	"bloodlink/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BankRepo implements ports.BankRepository.
type BankRepo struct {
	pool Pool
}

// NewBankRepo creates a new BankRepo.
func NewBankRepo(pool Pool) *BankRepo {
	return &BankRepo{pool: pool}
}

const bankColumns = `id, name, license_number, city, verified, password_hash, created_at`

// Create inserts a new blood bank.
func (r *BankRepo) Create(ctx context.Context, b *domain.BloodBank) error {
	query := `INSERT INTO blood_banks (id, name, license_number, city, verified, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.Name, b.LicenseNumber, b.City, b.Verified, b.PasswordHash, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blood bank: %w", err)
	}
	return nil
}

// GetByID fetches a blood bank by its UUID.
func (r *BankRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BloodBank, error) {
	query := `SELECT ` + bankColumns + ` FROM blood_banks WHERE id = $1`
	return r.scanBank(r.pool.QueryRow(ctx, query, id), "id")
}

// GetByLicense fetches a blood bank by its license number.
func (r *BankRepo) GetByLicense(ctx context.Context, licenseNumber string) (*domain.BloodBank, error) {
	query := `SELECT ` + bankColumns + ` FROM blood_banks WHERE license_number = $1`
	return r.scanBank(r.pool.QueryRow(ctx, query, licenseNumber), "license_number")
}

// SetVerified marks a bank verified. The flag only ever moves one way.
func (r *BankRepo) SetVerified(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE blood_banks SET verified = TRUE WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("set bank verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("blood bank not found: %s", id)
	}
	return nil
}

func (r *BankRepo) scanBank(row pgx.Row, by string) (*domain.BloodBank, error) {
	b := &domain.BloodBank{}
	err := row.Scan(
		&b.ID, &b.Name, &b.LicenseNumber, &b.City, &b.Verified, &b.PasswordHash, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood bank by %s: %w", by, err)
	}
	return b, nil
}
