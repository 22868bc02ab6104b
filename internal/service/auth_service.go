package service

import (
	"context"
	"fmt"
	"time"

	"bloodlink/internal/core/domain"
	"bloodlink/internal/core/ports"
	"bloodlink/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService for bank and hospital
// accounts. Authorization itself happens in the transport layer; this
// service only owns credentials and account records.
type AuthServiceImpl struct {
	bankRepo     ports.BankRepository
	hospitalRepo ports.HospitalRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	bankRepo ports.BankRepository,
	hospitalRepo ports.HospitalRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		bankRepo:     bankRepo,
		hospitalRepo: hospitalRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		log:          log,
	}
}

// RegisterBank creates a blood bank account. Banks start unverified; an
// authority flips the flag later via VerifyBank.
func (s *AuthServiceImpl) RegisterBank(ctx context.Context, req ports.RegisterBankRequest) (*domain.BloodBank, error) {
	existing, err := s.bankRepo.GetByLicense(ctx, req.LicenseNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check license: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrLicenseExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	bank := &domain.BloodBank{
		ID:            uuid.New(),
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		City:          req.City,
		Verified:      false,
		PasswordHash:  passwordHash,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.bankRepo.Create(ctx, bank); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create bank: %w", err))
	}

	s.log.Info().
		Str("bank_id", bank.ID.String()).
		Str("license", bank.LicenseNumber).
		Str("city", bank.City).
		Msg("blood bank registered")

	return bank, nil
}

// RegisterHospital creates a hospital account.
func (s *AuthServiceImpl) RegisterHospital(ctx context.Context, req ports.RegisterHospitalRequest) (*domain.Hospital, error) {
	existing, err := s.hospitalRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check hospital name: %w", err))
	}
	if existing != nil {
		return nil, apperror.Validation("hospital name already registered")
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	hospital := &domain.Hospital{
		ID:           uuid.New(),
		Name:         req.Name,
		City:         req.City,
		Type:         req.Type,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.hospitalRepo.Create(ctx, hospital); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create hospital: %w", err))
	}

	s.log.Info().
		Str("hospital_id", hospital.ID.String()).
		Str("city", hospital.City).
		Msg("hospital registered")

	return hospital, nil
}

// LoginBank validates bank credentials and returns a JWT.
func (s *AuthServiceImpl) LoginBank(ctx context.Context, licenseNumber, password string) (string, time.Time, error) {
	bank, err := s.bankRepo.GetByLicense(ctx, licenseNumber)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find bank: %w", err))
	}
	if bank == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, bank.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(bank.ID, ports.RoleBank)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// LoginHospital validates hospital credentials and returns a JWT.
func (s *AuthServiceImpl) LoginHospital(ctx context.Context, name, password string) (string, time.Time, error) {
	hospital, err := s.hospitalRepo.GetByName(ctx, name)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find hospital: %w", err))
	}
	if hospital == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, hospital.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(hospital.ID, ports.RoleHospital)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// VerifyBank marks a bank verified. Monotonic: verifying twice is a no-op.
func (s *AuthServiceImpl) VerifyBank(ctx context.Context, bankID uuid.UUID) error {
	bank, err := s.bankRepo.GetByID(ctx, bankID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find bank: %w", err))
	}
	if bank == nil {
		return apperror.ErrBankNotFound()
	}
	if bank.Verified {
		return nil
	}

	if err := s.bankRepo.SetVerified(ctx, bankID); err != nil {
		return apperror.InternalError(fmt.Errorf("set verified: %w", err))
	}

	s.log.Info().Str("bank_id", bankID.String()).Msg("blood bank verified")
	return nil
}
