package domain

import (
	"time"

	"github.com/google/uuid"
)

// BloodBank represents a registered blood bank. Verified is monotonic: once an
// authority sets it, it never reverts to false.
type BloodBank struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	City          string    `json:"city"`
	Verified      bool      `json:"verified"`
	PasswordHash  string    `json:"-"` // Never expose
	CreatedAt     time.Time `json:"created_at"`
}

// Hospital represents a care facility that searches for and reserves units.
type Hospital struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Type         string    `json:"type"` // e.g. government, private
	PasswordHash string    `json:"-"`    // Never expose
	CreatedAt    time.Time `json:"created_at"`
}
