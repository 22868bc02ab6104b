package service

import (
	"context"
	"testing"
	"time"

	"bloodlink/internal/core/domain"
	"bloodlink/internal/core/ports"
	"bloodlink/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc          *AuthServiceImpl
	bankRepo     *mocks.MockBankRepository
	hospitalRepo *mocks.MockHospitalRepository
	hashSvc      *mocks.MockHashService
	tokenSvc     *mocks.MockTokenService
	ctrl         *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		bankRepo:     mocks.NewMockBankRepository(ctrl),
		hospitalRepo: mocks.NewMockHospitalRepository(ctrl),
		hashSvc:      mocks.NewMockHashService(ctrl),
		tokenSvc:     mocks.NewMockTokenService(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewAuthService(d.bankRepo, d.hospitalRepo, d.hashSvc, d.tokenSvc, zerolog.Nop())
	return d
}

func TestAuthService_RegisterBank_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterBankRequest{
		Name:          "Central Blood Bank",
		LicenseNumber: "BB-2026-0042",
		City:          "Da Nang",
		Password:      "s3cret-pass",
	}

	d.bankRepo.EXPECT().GetByLicense(ctx, req.LicenseNumber).Return(nil, nil)
	d.hashSvc.EXPECT().Hash(req.Password).Return("$argon2id$hashed", nil)
	d.bankRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, bank *domain.BloodBank) error {
			assert.Equal(t, req.LicenseNumber, bank.LicenseNumber)
			assert.Equal(t, "$argon2id$hashed", bank.PasswordHash)
			assert.False(t, bank.Verified, "banks start unverified")
			return nil
		})

	bank, err := d.svc.RegisterBank(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bank.ID)
}

func TestAuthService_RegisterBank_DuplicateLicense(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.bankRepo.EXPECT().GetByLicense(ctx, "BB-2026-0042").
		Return(&domain.BloodBank{ID: uuid.New(), LicenseNumber: "BB-2026-0042"}, nil)

	_, err := d.svc.RegisterBank(ctx, ports.RegisterBankRequest{
		Name:          "Imposter Bank",
		LicenseNumber: "BB-2026-0042",
		Password:      "whatever",
	})
	requireAppError(t, err, "BANK_001")
}

func TestAuthService_RegisterHospital_DuplicateName(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.hospitalRepo.EXPECT().GetByName(ctx, "General Hospital").
		Return(&domain.Hospital{ID: uuid.New(), Name: "General Hospital"}, nil)

	_, err := d.svc.RegisterHospital(ctx, ports.RegisterHospitalRequest{
		Name:     "General Hospital",
		Password: "whatever",
	})
	requireAppError(t, err, "TEST_001")
}

func TestAuthService_LoginBank_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	bankID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)

	d.bankRepo.EXPECT().GetByLicense(ctx, "BB-2026-0042").
		Return(&domain.BloodBank{ID: bankID, PasswordHash: "$argon2id$hashed"}, nil)
	d.hashSvc.EXPECT().Verify("s3cret-pass", "$argon2id$hashed").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(bankID, ports.RoleBank).Return("token-abc", expiry, nil)

	token, exp, err := d.svc.LoginBank(ctx, "BB-2026-0042", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_LoginBank_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.bankRepo.EXPECT().GetByLicense(ctx, "BB-2026-0042").
		Return(&domain.BloodBank{ID: uuid.New(), PasswordHash: "$argon2id$hashed"}, nil)
	d.hashSvc.EXPECT().Verify("wrong", "$argon2id$hashed").Return(false, nil)

	_, _, err := d.svc.LoginBank(ctx, "BB-2026-0042", "wrong")
	requireAppError(t, err, "AUTH_001")
}

func TestAuthService_LoginBank_UnknownLicense(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.bankRepo.EXPECT().GetByLicense(ctx, "BB-0000-0000").Return(nil, nil)

	// Same error as a wrong password so login never leaks which part failed.
	_, _, err := d.svc.LoginBank(ctx, "BB-0000-0000", "whatever")
	requireAppError(t, err, "AUTH_001")
}

func TestAuthService_LoginHospital_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hospitalID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)

	d.hospitalRepo.EXPECT().GetByName(ctx, "General Hospital").
		Return(&domain.Hospital{ID: hospitalID, PasswordHash: "$argon2id$hashed"}, nil)
	d.hashSvc.EXPECT().Verify("s3cret-pass", "$argon2id$hashed").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(hospitalID, ports.RoleHospital).Return("token-xyz", expiry, nil)

	token, _, err := d.svc.LoginHospital(ctx, "General Hospital", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token-xyz", token)
}

func TestAuthService_VerifyBank_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	bankID := uuid.New()

	d.bankRepo.EXPECT().GetByID(ctx, bankID).
		Return(&domain.BloodBank{ID: bankID, Verified: false}, nil)
	d.bankRepo.EXPECT().SetVerified(ctx, bankID).Return(nil)

	require.NoError(t, d.svc.VerifyBank(ctx, bankID))
}

func TestAuthService_VerifyBank_AlreadyVerifiedIsNoop(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	bankID := uuid.New()

	d.bankRepo.EXPECT().GetByID(ctx, bankID).
		Return(&domain.BloodBank{ID: bankID, Verified: true}, nil)

	require.NoError(t, d.svc.VerifyBank(ctx, bankID))
}

func TestAuthService_VerifyBank_NotFound(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	bankID := uuid.New()

	d.bankRepo.EXPECT().GetByID(ctx, bankID).Return(nil, nil)

	requireAppError(t, d.svc.VerifyBank(ctx, bankID), "BANK_002")
}
