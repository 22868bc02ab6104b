package ports

import (
	"context"
	"time"

	"bloodlink/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// Token roles identify the kind of authenticated caller.
const (
	RoleBank     = "bank"
	RoleHospital = "hospital"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subjectID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SubjectID uuid.UUID
	Role      string
}

// --- Service Ports (Business Logic) ---

// RegistryService owns the blood unit lifecycle and the compatibility search.
type RegistryService interface {
	RegisterUnit(ctx context.Context, req RegisterUnitRequest) (*domain.Projection, error)
	// SubmitTestPanel validates the panel, persists the artifact, and moves
	// the unit to TESTED_SAFE or DISCARDED.
	SubmitTestPanel(ctx context.Context, unitID string, sub domain.TestPanelSubmission) (*domain.Projection, error)
	GetUnit(ctx context.Context, unitID string) (*domain.Projection, error)
	GetTestArtifact(ctx context.Context, unitID string) (*domain.TestArtifact, error)
	ListUnitsByStatus(ctx context.Context, status domain.UnitStatus) ([]string, error)
	FindCompatibleUnits(ctx context.Context, recipient domain.BloodType) ([]string, error)
	ReserveUnit(ctx context.Context, unitID string) (*domain.Projection, error)
	MarkTransfused(ctx context.Context, unitID string) (*domain.Projection, error)
}

// RegisterUnitRequest holds validated input for unit registration.
type RegisterUnitRequest struct {
	UnitID      string
	DonorID     string
	BloodType   domain.BloodType
	CollectedAt time.Time
	BankID      uuid.UUID
}

// SweeperService expires overdue units in bounded batches.
type SweeperService interface {
	Sweep(ctx context.Context, batchSize int) (SweepReport, error)
}

// SweepReport summarises one sweep call.
type SweepReport struct {
	Examined int `json:"examined"`
	Expired  int `json:"expired"`
}

// AuthService defines bank and hospital account management.
type AuthService interface {
	RegisterBank(ctx context.Context, req RegisterBankRequest) (*domain.BloodBank, error)
	RegisterHospital(ctx context.Context, req RegisterHospitalRequest) (*domain.Hospital, error)
	LoginBank(ctx context.Context, licenseNumber, password string) (string, time.Time, error)
	LoginHospital(ctx context.Context, name, password string) (string, time.Time, error)
	// VerifyBank flips the bank's verified flag; it never unsets it.
	VerifyBank(ctx context.Context, bankID uuid.UUID) error
}

// RegisterBankRequest holds input for bank registration.
type RegisterBankRequest struct {
	Name          string
	LicenseNumber string
	City          string
	Password      string
}

// RegisterHospitalRequest holds input for hospital registration.
type RegisterHospitalRequest struct {
	Name     string
	City     string
	Type     string
	Password string
}
