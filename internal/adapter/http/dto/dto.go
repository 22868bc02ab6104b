package dto

import "time"

// RegisterBankRequest is the request body for blood bank registration.
type RegisterBankRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	LicenseNumber string `json:"license_number" binding:"required,safe_id,max=50"`
	City          string `json:"city" binding:"required,max=100"`
	Password      string `json:"password" binding:"required,min=8,max=128"`
}

// RegisterHospitalRequest is the request body for hospital registration.
type RegisterHospitalRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	City     string `json:"city" binding:"required,max=100"`
	Type     string `json:"type" binding:"omitempty,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// BankLoginRequest is the request body for bank login.
type BankLoginRequest struct {
	LicenseNumber string `json:"license_number" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

// HospitalLoginRequest is the request body for hospital login.
type HospitalLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAccountResponse is the response body for successful registration.
type RegisterAccountResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Verified *bool  `json:"verified,omitempty"` // banks only
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// RegisterUnitRequest is the request body for blood unit registration.
type RegisterUnitRequest struct {
	UnitID      string     `json:"unit_id" binding:"required,safe_id,max=64"`
	DonorID     string     `json:"donor_id" binding:"required,safe_id,max=64"`
	BloodGroup  string     `json:"blood_group" binding:"required"`
	RhFactor    string     `json:"rh_factor" binding:"required"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
}

// TestPanelRequest is the request body for submitting a disease screening
// panel. Every marker must be present; a missing marker is not a negative one.
type TestPanelRequest struct {
	HIV            *bool `json:"hiv" binding:"required"`
	HepatitisB     *bool `json:"hepatitis_b" binding:"required"`
	HepatitisC     *bool `json:"hepatitis_c" binding:"required"`
	Syphilis       *bool `json:"syphilis" binding:"required"`
	Malaria        *bool `json:"malaria" binding:"required"`
	OtherPathogens *bool `json:"other_pathogens" binding:"required"`
}

// UnitResponse is the caller-facing view of a blood unit.
type UnitResponse struct {
	UnitID          string     `json:"unit_id"`
	DonorID         string     `json:"donor_id"`
	BloodGroup      string     `json:"blood_group"`
	RhFactor        string     `json:"rh_factor"`
	CollectedAt     time.Time  `json:"collected_at"`
	BloodBankID     string     `json:"blood_bank_id"`
	Status          string     `json:"status"`
	TestArtifactRef *string   `json:"test_artifact_ref,omitempty"`
}

// TestPanelResponse echoes a stored screening panel.
type TestPanelResponse struct {
	HIV            bool `json:"hiv"`
	HepatitisB     bool `json:"hepatitis_b"`
	HepatitisC     bool `json:"hepatitis_c"`
	Syphilis       bool `json:"syphilis"`
	Malaria        bool `json:"malaria"`
	OtherPathogens bool `json:"other_pathogens"`
}

// ArtifactResponse is the response body for a stored test artifact.
type ArtifactResponse struct {
	ContentID string            `json:"content_id"`
	Panel     TestPanelResponse `json:"panel"`
	IsSafe    bool              `json:"is_safe"`
}

// UnitListResponse wraps a list of unit ids.
type UnitListResponse struct {
	UnitIDs []string `json:"unit_ids"`
	Count   int      `json:"count"`
}

// SweepResponse reports the outcome of one expiry sweep batch.
type SweepResponse struct {
	Examined int `json:"examined"`
	Expired  int `json:"expired"`
}
