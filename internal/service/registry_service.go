package service

import (
	"context"
	"fmt"
	"time"

	"bloodlink/internal/core/domain"
	"bloodlink/internal/core/ports"
	"bloodlink/internal/metrics"
	"bloodlink/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService. It is the single
// writer path for unit records: every status change goes through a
// compare-and-swap on the expected current status, so concurrent callers
// racing on the same unit resolve to exactly one winner.
type RegistryServiceImpl struct {
	unitRepo       ports.UnitRepository
	bankRepo       ports.BankRepository
	contentStore   ports.ContentStore
	shelfLife      time.Duration
	storageTimeout time.Duration
	now            func() time.Time
	metrics        *metrics.Metrics
	log            zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	unitRepo ports.UnitRepository,
	bankRepo ports.BankRepository,
	contentStore ports.ContentStore,
	shelfLife time.Duration,
	storageTimeout time.Duration,
	m *metrics.Metrics,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		unitRepo:       unitRepo,
		bankRepo:       bankRepo,
		contentStore:   contentStore,
		shelfLife:      shelfLife,
		storageTimeout: storageTimeout,
		now:            time.Now,
		metrics:        m,
		log:            log,
	}
}

// WithClock replaces the service clock. Used by tests.
func (s *RegistryServiceImpl) WithClock(now func() time.Time) *RegistryServiceImpl {
	s.now = now
	return s
}

// RegisterUnit records a newly collected unit in NOT_VERIFIED.
func (s *RegistryServiceImpl) RegisterUnit(ctx context.Context, req ports.RegisterUnitRequest) (*domain.Projection, error) {
	bank, err := s.bankRepo.GetByID(ctx, req.BankID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup bank: %w", err))
	}
	if bank == nil {
		return nil, apperror.ErrUnknownBank(req.BankID.String())
	}

	existing, err := s.unitRepo.GetByID(ctx, req.UnitID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup unit: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateUnit(req.UnitID)
	}

	now := s.now().UTC()
	collectedAt := req.CollectedAt
	if collectedAt.IsZero() {
		collectedAt = now
	}

	unit := &domain.BloodUnit{
		UnitID:      req.UnitID,
		DonorID:     req.DonorID,
		BloodType:   req.BloodType,
		CollectedAt: collectedAt.UTC(),
		BankID:      req.BankID,
		Status:      domain.UnitStatusNotVerified,
		CreatedAt:   now,
	}

	// The repository enforces unit id uniqueness; the lookup above only
	// produces the friendlier error on the common path.
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("unit_id", unit.UnitID).
		Str("bank_id", unit.BankID.String()).
		Str("blood_type", unit.BloodType.String()).
		Msg("blood unit registered")

	p := unit.Project()
	return &p, nil
}

// SubmitTestPanel validates the panel, persists the content-addressed
// artifact, and transitions the unit to TESTED_SAFE or DISCARDED. Validation
// is pure and artifact storage is idempotent by content, so a caller may
// safely retry after a storage failure.
func (s *RegistryServiceImpl) SubmitTestPanel(ctx context.Context, unitID string, sub domain.TestPanelSubmission) (*domain.Projection, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup unit: %w", err))
	}
	if unit == nil {
		return nil, apperror.ErrUnitNotFound(unitID)
	}
	if unit.Status != domain.UnitStatusNotVerified {
		return nil, apperror.ErrInvalidTransition(unitID, string(unit.Status), string(domain.UnitStatusTestedSafe))
	}

	artifact, err := domain.ValidateTestPanel(sub, s.now())
	if err != nil {
		return nil, err
	}

	data, err := artifact.CanonicalBytes()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	putCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	contentID, err := s.contentStore.Put(putCtx, data)
	if err != nil {
		return nil, err
	}
	s.metrics.ArtifactPuts.Inc()

	target := domain.UnitStatusTestedSafe
	if !artifact.IsSafe {
		target = domain.UnitStatusDiscarded
	}

	applied, err := s.unitRepo.UpdateStatusCAS(ctx, unitID, domain.UnitStatusNotVerified, target, &contentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("apply test result: %w", err))
	}
	if !applied {
		s.metrics.TransitionConflict.Inc()
		return nil, apperror.ErrInvalidTransition(unitID, s.currentStatus(ctx, unitID), string(target))
	}
	s.metrics.RecordTransition(string(target))

	s.log.Info().
		Str("unit_id", unitID).
		Str("status", string(target)).
		Str("artifact_ref", contentID).
		Bool("is_safe", artifact.IsSafe).
		Msg("test panel recorded")

	unit.Status = target
	unit.TestArtifactRef = &contentID
	p := unit.Project()
	return &p, nil
}

// GetUnit returns the read-only projection of a unit.
func (s *RegistryServiceImpl) GetUnit(ctx context.Context, unitID string) (*domain.Projection, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup unit: %w", err))
	}
	if unit == nil {
		return nil, apperror.ErrUnitNotFound(unitID)
	}
	p := unit.Project()
	return &p, nil
}

// GetTestArtifact fetches and decodes the unit's test artifact.
func (s *RegistryServiceImpl) GetTestArtifact(ctx context.Context, unitID string) (*domain.TestArtifact, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup unit: %w", err))
	}
	if unit == nil {
		return nil, apperror.ErrUnitNotFound(unitID)
	}
	if unit.TestArtifactRef == nil {
		return nil, apperror.ErrArtifactNotFound(unitID)
	}

	getCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	data, err := s.contentStore.Get(getCtx, *unit.TestArtifactRef)
	if err != nil {
		return nil, err
	}

	artifact, err := domain.DecodeArtifact(data)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return artifact, nil
}

// ListUnitsByStatus returns unit ids with the given status in insertion order.
func (s *RegistryServiceImpl) ListUnitsByStatus(ctx context.Context, status domain.UnitStatus) ([]string, error) {
	ids, err := s.unitRepo.ListIDsByStatus(ctx, status)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list by status: %w", err))
	}
	return ids, nil
}

// FindCompatibleUnits returns TESTED_SAFE, unexpired unit ids whose blood
// type is transfusable into the given recipient, newest-collected first.
func (s *RegistryServiceImpl) FindCompatibleUnits(ctx context.Context, recipient domain.BloodType) ([]string, error) {
	donors, err := domain.CompatibleDonors(recipient)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-s.shelfLife)
	ids, err := s.unitRepo.ListCompatibleIDs(ctx, donors, cutoff)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("compatibility query: %w", err))
	}
	return ids, nil
}

// ReserveUnit moves a TESTED_SAFE unit to RESERVED. Expiry is recomputed
// eagerly here, not just at sweep time: an overdue unit is pushed to EXPIRED
// instead of being handed out.
func (s *RegistryServiceImpl) ReserveUnit(ctx context.Context, unitID string) (*domain.Projection, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup unit: %w", err))
	}
	if unit == nil {
		return nil, apperror.ErrUnitNotFound(unitID)
	}

	if unit.IsExpired(s.now(), s.shelfLife) {
		if applied, casErr := s.unitRepo.UpdateStatusCAS(ctx, unitID, unit.Status, domain.UnitStatusExpired, nil); casErr == nil && applied {
			s.metrics.RecordTransition(string(domain.UnitStatusExpired))
			s.log.Info().Str("unit_id", unitID).Msg("unit expired at reservation time")
		}
		return nil, apperror.ErrInvalidTransition(unitID, string(domain.UnitStatusExpired), string(domain.UnitStatusReserved))
	}

	applied, err := s.unitRepo.UpdateStatusCAS(ctx, unitID, domain.UnitStatusTestedSafe, domain.UnitStatusReserved, nil)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve unit: %w", err))
	}
	if !applied {
		s.metrics.TransitionConflict.Inc()
		return nil, apperror.ErrInvalidTransition(unitID, s.currentStatus(ctx, unitID), string(domain.UnitStatusReserved))
	}
	s.metrics.RecordTransition(string(domain.UnitStatusReserved))

	s.log.Info().Str("unit_id", unitID).Msg("unit reserved")

	unit.Status = domain.UnitStatusReserved
	p := unit.Project()
	return &p, nil
}

// MarkTransfused moves a RESERVED unit to the terminal TRANSFUSED state.
func (s *RegistryServiceImpl) MarkTransfused(ctx context.Context, unitID string) (*domain.Projection, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup unit: %w", err))
	}
	if unit == nil {
		return nil, apperror.ErrUnitNotFound(unitID)
	}

	applied, err := s.unitRepo.UpdateStatusCAS(ctx, unitID, domain.UnitStatusReserved, domain.UnitStatusTransfused, nil)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark transfused: %w", err))
	}
	if !applied {
		s.metrics.TransitionConflict.Inc()
		return nil, apperror.ErrInvalidTransition(unitID, s.currentStatus(ctx, unitID), string(domain.UnitStatusTransfused))
	}
	s.metrics.RecordTransition(string(domain.UnitStatusTransfused))

	s.log.Info().Str("unit_id", unitID).Msg("unit transfused")

	unit.Status = domain.UnitStatusTransfused
	p := unit.Project()
	return &p, nil
}

// currentStatus re-reads the unit's status for error messages after a lost
// CAS. Best effort: an unknown status is reported as such.
func (s *RegistryServiceImpl) currentStatus(ctx context.Context, unitID string) string {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil || unit == nil {
		return "UNKNOWN"
	}
	return string(unit.Status)
}
