package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnitStatus represents the lifecycle state of a blood unit.
type UnitStatus string

const (
	UnitStatusNotVerified UnitStatus = "NOT_VERIFIED"
	UnitStatusTestedSafe  UnitStatus = "TESTED_SAFE"
	UnitStatusDiscarded   UnitStatus = "DISCARDED"
	UnitStatusReserved    UnitStatus = "RESERVED"
	UnitStatusExpired     UnitStatus = "EXPIRED"
	UnitStatusTransfused  UnitStatus = "TRANSFUSED"
)

// ParseUnitStatus maps the lowercase REST path segment to a status.
func ParseUnitStatus(s string) (UnitStatus, bool) {
	switch s {
	case "not_verified":
		return UnitStatusNotVerified, true
	case "tested_safe":
		return UnitStatusTestedSafe, true
	case "discarded":
		return UnitStatusDiscarded, true
	case "reserved":
		return UnitStatusReserved, true
	case "expired":
		return UnitStatusExpired, true
	case "transfused":
		return UnitStatusTransfused, true
	}
	return "", false
}

// transitions holds the directed edges of the unit state machine. EXPIRED is
// reachable from every non-terminal state; the sweeper is its only writer.
var transitions = map[UnitStatus][]UnitStatus{
	UnitStatusNotVerified: {UnitStatusTestedSafe, UnitStatusDiscarded, UnitStatusExpired},
	UnitStatusTestedSafe:  {UnitStatusReserved, UnitStatusExpired},
	UnitStatusReserved:    {UnitStatusTransfused, UnitStatusExpired},
}

// BloodUnit is a single discrete quantity of collected blood. The record is
// owned by the registry; banks request transitions but never mutate it.
type BloodUnit struct {
	UnitID          string     `json:"unit_id"`
	DonorID         string     `json:"donor_id"`
	BloodType       BloodType  `json:"blood_type"`
	CollectedAt     time.Time  `json:"collected_at"`
	BankID          uuid.UUID  `json:"blood_bank_id"`
	Status          UnitStatus `json:"status"`
	TestArtifactRef *string    `json:"test_artifact_ref,omitempty"` // content id, set once tested
	CreatedAt       time.Time  `json:"created_at"`
}

// IsTerminal returns true if the status has no outgoing edges.
func (s UnitStatus) IsTerminal() bool {
	return s == UnitStatusDiscarded || s == UnitStatusTransfused || s == UnitStatusExpired
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s UnitStatus) CanTransitionTo(next UnitStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsExpired reports whether the unit has outlived its shelf life at the given
// instant. Terminal units are never re-expired.
func (u *BloodUnit) IsExpired(now time.Time, shelfLife time.Duration) bool {
	if u.Status.IsTerminal() {
		return false
	}
	return now.Sub(u.CollectedAt) >= shelfLife
}

// Projection is the read-only view of a unit exposed to callers.
type Projection struct {
	UnitID          string     `json:"unit_id"`
	DonorID         string     `json:"donor_id"`
	BloodGroup      BloodGroup `json:"blood_group"`
	RhFactor        RhFactor   `json:"rh_factor"`
	CollectedAt     time.Time  `json:"collected_at"`
	BankID          uuid.UUID  `json:"blood_bank_id"`
	Status          UnitStatus `json:"status"`
	TestArtifactRef *string    `json:"test_artifact_ref,omitempty"`
}

// Project returns the caller-facing view of the unit.
func (u *BloodUnit) Project() Projection {
	return Projection{
		UnitID:          u.UnitID,
		DonorID:         u.DonorID,
		BloodGroup:      u.BloodType.Group,
		RhFactor:        u.BloodType.Rh,
		CollectedAt:     u.CollectedAt,
		BankID:          u.BankID,
		Status:          u.Status,
		TestArtifactRef: u.TestArtifactRef,
	}
}
