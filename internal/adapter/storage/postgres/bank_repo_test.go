package postgres

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank() *domain.BloodBank {
	return &domain.BloodBank{
		ID:            uuid.New(),
		Name:          "Central Blood Bank",
		LicenseNumber: "BB-2026-0042",
		City:          "Da Nang",
		Verified:      false,
		PasswordHash:  "$argon2id$v=19$m=65536,t=1,p=4$salt$hash",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func bankRow(b *domain.BloodBank) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "license_number", "city", "verified", "password_hash", "created_at"}).
		AddRow(b.ID, b.Name, b.LicenseNumber, b.City, b.Verified, b.PasswordHash, b.CreatedAt)
}

func TestBankRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	b := newTestBank()

	mock.ExpectExec("INSERT INTO blood_banks").
		WithArgs(b.ID, b.Name, b.LicenseNumber, b.City, b.Verified, b.PasswordHash, b.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_GetByLicense(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	b := newTestBank()

	mock.ExpectQuery("SELECT .+ FROM blood_banks WHERE license_number").
		WithArgs(b.LicenseNumber).
		WillReturnRows(bankRow(b))

	result, err := repo.GetByLicense(context.Background(), b.LicenseNumber)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, b.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_GetByLicense_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM blood_banks WHERE license_number").
		WithArgs("BB-0000-0000").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "license_number", "city", "verified", "password_hash", "created_at"}))

	result, err := repo.GetByLicense(context.Background(), "BB-0000-0000")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_SetVerified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE blood_banks SET verified").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetVerified(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepo_SetVerified_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBankRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE blood_banks SET verified").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SetVerified(context.Background(), id)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
