package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"bloodlink/internal/core/domain"
	"bloodlink/pkg/apperror"

	"github.com/google/uuid"
)

// --- In-Memory Bank Repo ---

type inMemoryBankRepo struct {
	mu    sync.RWMutex
	banks map[uuid.UUID]*domain.BloodBank
}

func newInMemoryBankRepo() *inMemoryBankRepo {
	return &inMemoryBankRepo{banks: make(map[uuid.UUID]*domain.BloodBank)}
}

func (r *inMemoryBankRepo) Create(ctx context.Context, b *domain.BloodBank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.banks[b.ID] = &cp
	return nil
}

func (r *inMemoryBankRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BloodBank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.banks[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBankRepo) GetByLicense(ctx context.Context, license string) (*domain.BloodBank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.banks {
		if b.LicenseNumber == license {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBankRepo) SetVerified(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.banks[id]; ok {
		b.Verified = true
	}
	return nil
}

// --- In-Memory Hospital Repo ---

type inMemoryHospitalRepo struct {
	mu        sync.RWMutex
	hospitals map[uuid.UUID]*domain.Hospital
}

func newInMemoryHospitalRepo() *inMemoryHospitalRepo {
	return &inMemoryHospitalRepo{hospitals: make(map[uuid.UUID]*domain.Hospital)}
}

func (r *inMemoryHospitalRepo) Create(ctx context.Context, h *domain.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *h
	r.hospitals[h.ID] = &cp
	return nil
}

func (r *inMemoryHospitalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hospitals[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *inMemoryHospitalRepo) GetByName(ctx context.Context, name string) (*domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.hospitals {
		if h.Name == name {
			cp := *h
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Unit Repo ---

// inMemoryUnitRepo mirrors the PostgreSQL unit repository's semantics: CAS
// transitions happen atomically under the lock, listing respects insertion
// order, and scans walk units in ascending unit id order.
type inMemoryUnitRepo struct {
	mu    sync.Mutex
	units map[string]*domain.BloodUnit
	order []string // insertion order
}

func newInMemoryUnitRepo() *inMemoryUnitRepo {
	return &inMemoryUnitRepo{units: make(map[string]*domain.BloodUnit)}
}

func (r *inMemoryUnitRepo) Create(ctx context.Context, u *domain.BloodUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.units[u.UnitID]; exists {
		return apperror.ErrDuplicateUnit(u.UnitID)
	}
	cp := *u
	r.units[u.UnitID] = &cp
	r.order = append(r.order, u.UnitID)
	return nil
}

func (r *inMemoryUnitRepo) GetByID(ctx context.Context, unitID string) (*domain.BloodUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.units[unitID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUnitRepo) UpdateStatusCAS(ctx context.Context, unitID string, from, to domain.UnitStatus, artifactRef *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.units[unitID]
	if !ok || u.Status != from {
		return false, nil
	}
	u.Status = to
	if artifactRef != nil {
		ref := *artifactRef
		u.TestArtifactRef = &ref
	}
	return true, nil
}

func (r *inMemoryUnitRepo) ListIDsByStatus(ctx context.Context, status domain.UnitStatus) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, id := range r.order {
		if r.units[id].Status == status {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *inMemoryUnitRepo) ListCompatibleIDs(ctx context.Context, donorTypes []domain.BloodType, collectedAfter time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	compatible := make(map[domain.BloodType]bool, len(donorTypes))
	for _, bt := range donorTypes {
		compatible[bt] = true
	}

	var matched []*domain.BloodUnit
	for _, id := range r.order {
		u := r.units[id]
		if u.Status == domain.UnitStatusTestedSafe && compatible[u.BloodType] && u.CollectedAt.After(collectedAfter) {
			matched = append(matched, u)
		}
	}

	// Freshest first, ties broken by ascending unit id.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CollectedAt.Equal(matched[j].CollectedAt) {
			return matched[i].CollectedAt.After(matched[j].CollectedAt)
		}
		return matched[i].UnitID < matched[j].UnitID
	})

	ids := make([]string, 0, len(matched))
	for _, u := range matched {
		ids = append(ids, u.UnitID)
	}
	return ids, nil
}

func (r *inMemoryUnitRepo) ScanNonTerminal(ctx context.Context, afterUnitID string, limit int) ([]domain.BloodUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.units))
	for id, u := range r.units {
		if id > afterUnitID && !u.Status.IsTerminal() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}

	units := make([]domain.BloodUnit, 0, len(ids))
	for _, id := range ids {
		units = append(units, *r.units[id])
	}
	return units, nil
}

// --- In-Memory Content Store ---

type inMemoryContentStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func newInMemoryContentStore() *inMemoryContentStore {
	return &inMemoryContentStore{blobs: make(map[string][]byte)}
}

func (s *inMemoryContentStore) Put(ctx context.Context, data []byte) (string, error) {
	contentID := domain.ContentID(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blobs[contentID]; !exists {
		cp := make([]byte, len(data))
		copy(cp, data)
		s.blobs[contentID] = cp
	}
	return contentID, nil
}

func (s *inMemoryContentStore) Get(ctx context.Context, contentID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[contentID]
	if !ok {
		return nil, apperror.ErrArtifactNotFound(contentID)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *inMemoryContentStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
