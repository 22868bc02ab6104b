package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"bloodlink/pkg/apperror"
)

// TestPanelSubmission is a raw disease-panel submission. Every field must be
// present; pointers distinguish "absent" from "false".
type TestPanelSubmission struct {
	HIV            *bool `json:"hiv"`
	HepatitisB     *bool `json:"hepatitis_b"`
	HepatitisC     *bool `json:"hepatitis_c"`
	Syphilis       *bool `json:"syphilis"`
	Malaria        *bool `json:"malaria"`
	OtherPathogens *bool `json:"other_pathogens"`
}

// TestPanel is a validated disease panel.
type TestPanel struct {
	HIV            bool `json:"hiv"`
	HepatitisB     bool `json:"hepatitis_b"`
	HepatitisC     bool `json:"hepatitis_c"`
	Syphilis       bool `json:"syphilis"`
	Malaria        bool `json:"malaria"`
	OtherPathogens bool `json:"other_pathogens"`
}

// TestArtifact is the immutable value persisted for a verified panel. IsSafe
// is derived, never client-supplied. CreatedAt records when the artifact was
// first produced; it is not part of the content-addressed bytes, so identical
// panels always hash to the same content id.
type TestArtifact struct {
	Panel     TestPanel `json:"panel"`
	IsSafe    bool      `json:"is_safe"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateTestPanel checks a raw submission and derives the safety verdict.
// It is pure: persistence happens separately, so a failed store can be
// retried without re-validating side effects.
func ValidateTestPanel(sub TestPanelSubmission, now time.Time) (*TestArtifact, error) {
	fields := []struct {
		name  string
		value *bool
	}{
		{"hiv", sub.HIV},
		{"hepatitis_b", sub.HepatitisB},
		{"hepatitis_c", sub.HepatitisC},
		{"syphilis", sub.Syphilis},
		{"malaria", sub.Malaria},
		{"other_pathogens", sub.OtherPathogens},
	}
	for _, f := range fields {
		if f.value == nil {
			return nil, apperror.ErrPanelValidation(f.name, "is required and must be a boolean")
		}
	}

	panel := TestPanel{
		HIV:            *sub.HIV,
		HepatitisB:     *sub.HepatitisB,
		HepatitisC:     *sub.HepatitisC,
		Syphilis:       *sub.Syphilis,
		Malaria:        *sub.Malaria,
		OtherPathogens: *sub.OtherPathogens,
	}

	return &TestArtifact{
		Panel:     panel,
		IsSafe:    !(panel.HIV || panel.HepatitisB || panel.HepatitisC || panel.Syphilis || panel.Malaria || panel.OtherPathogens),
		CreatedAt: now.UTC(),
	}, nil
}

// canonicalArtifact fixes the field order of the hashed representation.
// CreatedAt is deliberately excluded.
type canonicalArtifact struct {
	Panel  TestPanel `json:"panel"`
	IsSafe bool      `json:"is_safe"`
}

// CanonicalBytes returns the deterministic byte encoding of the artifact that
// is stored and hashed. Two artifacts with the same panel content produce
// identical bytes.
func (a *TestArtifact) CanonicalBytes() ([]byte, error) {
	data, err := json.Marshal(canonicalArtifact{Panel: a.Panel, IsSafe: a.IsSafe})
	if err != nil {
		return nil, fmt.Errorf("encoding artifact: %w", err)
	}
	return data, nil
}

// DecodeArtifact parses stored canonical bytes back into an artifact. The
// creation timestamp is not part of the blob and is left zero.
func DecodeArtifact(data []byte) (*TestArtifact, error) {
	var c canonicalArtifact
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}
	return &TestArtifact{Panel: c.Panel, IsSafe: c.IsSafe}, nil
}

// ContentID returns the deterministic identifier of a blob: the hex SHA-256
// digest of its bytes.
func ContentID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
