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

// SweeperServiceImpl implements ports.SweeperService. Each call examines at
// most one batch of non-terminal units in ascending unit id order, resuming
// from a persisted cursor, and pushes overdue units to EXPIRED with per-unit
// compare-and-swap transitions. The scan never holds a registry-wide lock:
// it snapshots a page of candidates, then applies transitions one by one,
// losing gracefully to any concurrent reservation or test submission.
type SweeperServiceImpl struct {
	unitRepo    ports.UnitRepository
	cursorStore ports.SweepCursorStore
	shelfLife   time.Duration
	now         func() time.Time
	metrics     *metrics.Metrics
	log         zerolog.Logger
}

// NewSweeperService creates a new SweeperServiceImpl.
func NewSweeperService(
	unitRepo ports.UnitRepository,
	cursorStore ports.SweepCursorStore,
	shelfLife time.Duration,
	m *metrics.Metrics,
	log zerolog.Logger,
) *SweeperServiceImpl {
	return &SweeperServiceImpl{
		unitRepo:    unitRepo,
		cursorStore: cursorStore,
		shelfLife:   shelfLife,
		now:         time.Now,
		metrics:     m,
		log:         log,
	}
}

// WithClock replaces the service clock. Used by tests.
func (s *SweeperServiceImpl) WithClock(now func() time.Time) *SweeperServiceImpl {
	s.now = now
	return s
}

// Sweep examines up to batchSize non-terminal units and expires the overdue
// ones. Idempotent: already-expired units are terminal and never rescanned.
// A batchSize of zero is a no-op. Cancellation stops mid-batch and keeps the
// cursor at the last fully examined unit.
func (s *SweeperServiceImpl) Sweep(ctx context.Context, batchSize int) (ports.SweepReport, error) {
	var report ports.SweepReport
	if batchSize <= 0 {
		return report, nil
	}

	cursor, err := s.cursorStore.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("sweep cursor unavailable, restarting scan from the beginning")
		cursor = ""
	}

	units, err := s.unitRepo.ScanNonTerminal(ctx, cursor, batchSize)
	if err != nil {
		return report, apperror.InternalError(fmt.Errorf("scan non-terminal units: %w", err))
	}

	now := s.now()
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			// Preserve the resumable cursor and report what was done.
			break
		}

		report.Examined++
		cursor = unit.UnitID

		if !unit.IsExpired(now, s.shelfLife) {
			continue
		}

		applied, err := s.unitRepo.UpdateStatusCAS(ctx, unit.UnitID, unit.Status, domain.UnitStatusExpired, nil)
		if err != nil {
			s.log.Error().Err(err).Str("unit_id", unit.UnitID).Msg("failed to expire unit")
			continue
		}
		if !applied {
			// Lost a race against a concurrent transition; the next scan
			// picks the unit up again if it is still non-terminal.
			s.metrics.TransitionConflict.Inc()
			continue
		}

		report.Expired++
		s.metrics.RecordTransition(string(domain.UnitStatusExpired))
		s.log.Info().
			Str("unit_id", unit.UnitID).
			Str("previous_status", string(unit.Status)).
			Time("collected_at", unit.CollectedAt).
			Msg("unit expired")
	}

	// A short page means the scan reached the end; wrap to the beginning so
	// the next call starts a fresh pass.
	if len(units) < batchSize {
		cursor = ""
	}
	if err := s.cursorStore.Set(ctx, cursor); err != nil {
		s.log.Warn().Err(err).Str("cursor", cursor).Msg("failed to persist sweep cursor")
	}

	s.metrics.SweepRuns.Inc()
	s.metrics.SweepExamined.Add(float64(report.Examined))
	s.metrics.SweepExpired.Add(float64(report.Expired))

	s.log.Debug().
		Int("examined", report.Examined).
		Int("expired", report.Expired).
		Str("cursor", cursor).
		Msg("sweep batch complete")

	return report, nil
}

// Run executes Sweep on a fixed interval until the context is cancelled.
// The surrounding service owns the schedule; this is the loop it starts.
func (s *SweeperServiceImpl) Run(ctx context.Context, interval time.Duration, batchSize int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx, batchSize); err != nil {
				s.log.Error().Err(err).Msg("scheduled sweep failed")
			}
		}
	}
}
