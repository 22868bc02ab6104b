package service

import (
	"testing"
	"time"

	"bloodlink/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-bytes-long", time.Hour, "bloodlink")
	bankID := uuid.New()

	token, expiry, err := svc.Generate(bankID, ports.RoleBank)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, bankID, claims.SubjectID)
	assert.Equal(t, ports.RoleBank, claims.Role)
}

func TestJWTTokenService_HospitalRole(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-bytes-long", time.Hour, "bloodlink")
	hospitalID := uuid.New()

	token, _, err := svc.Generate(hospitalID, ports.RoleHospital)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, ports.RoleHospital, claims.Role)
}

func TestJWTTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-one-at-least-32-bytes-long!", time.Hour, "bloodlink")
	verifier := NewJWTTokenService("secret-two-at-least-32-bytes-long!", time.Hour, "bloodlink")

	token, _, err := issuer.Generate(uuid.New(), ports.RoleBank)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-bytes-long", -time.Minute, "bloodlink")

	token, _, err := svc.Generate(uuid.New(), ports.RoleBank)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsUnknownRole(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-bytes-long", time.Hour, "bloodlink")

	token, _, err := svc.Generate(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsGarbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-bytes-long", time.Hour, "bloodlink")

	_, err := svc.Validate("not.a.jwt")
	assert.Error(t, err)
}
