package ports

import (
	"context"
	"time"

	"bloodlink/internal/core/domain"

	"github.com/google/uuid"
)

// BankRepository defines persistence operations for blood banks.
type BankRepository interface {
	Create(ctx context.Context, bank *domain.BloodBank) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BloodBank, error)
	GetByLicense(ctx context.Context, licenseNumber string) (*domain.BloodBank, error)
	// SetVerified marks the bank verified. Monotonic: a verified bank stays verified.
	SetVerified(ctx context.Context, id uuid.UUID) error
}

// HospitalRepository defines persistence operations for hospitals.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *domain.Hospital) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Hospital, error)
	GetByName(ctx context.Context, name string) (*domain.Hospital, error)
}

// UnitRepository defines persistence operations for blood units. Absent rows
// are reported as (nil, nil).
type UnitRepository interface {
	// Create inserts a unit in NOT_VERIFIED. Fails with DuplicateUnit if the
	// unit id is taken.
	Create(ctx context.Context, unit *domain.BloodUnit) error
	GetByID(ctx context.Context, unitID string) (*domain.BloodUnit, error)
	// UpdateStatusCAS transitions the unit only if its stored status still
	// equals from. Returns false when the precondition failed, so racing
	// writers resolve deterministically. A non-nil artifactRef is recorded
	// with the transition.
	UpdateStatusCAS(ctx context.Context, unitID string, from, to domain.UnitStatus, artifactRef *string) (bool, error)
	// ListIDsByStatus returns unit ids in insertion order.
	ListIDsByStatus(ctx context.Context, status domain.UnitStatus) ([]string, error)
	// ListCompatibleIDs returns TESTED_SAFE units of the given donor types
	// collected strictly after the cutoff, newest-collected first, ties
	// broken by ascending unit id.
	ListCompatibleIDs(ctx context.Context, donorTypes []domain.BloodType, collectedAfter time.Time) ([]string, error)
	// ScanNonTerminal pages through non-terminal units in ascending unit id
	// order, starting strictly after afterUnitID.
	ScanNonTerminal(ctx context.Context, afterUnitID string, limit int) ([]domain.BloodUnit, error)
}

// ContentStore stores immutable blobs keyed by the hex SHA-256 of their bytes.
type ContentStore interface {
	// Put persists the blob durably and returns its content id. Idempotent:
	// identical bytes yield the same id with no duplicate storage.
	Put(ctx context.Context, data []byte) (string, error)
	// Get fetches a blob; unknown ids fail with ArtifactNotFound.
	Get(ctx context.Context, contentID string) ([]byte, error)
}

// SweepCursorStore persists the expiry sweeper's resumable scan position.
// An empty cursor means "start from the beginning".
type SweepCursorStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, cursor string) error
}
