package handler

import (
	"net/http"

	"bloodlink/internal/adapter/http/dto"
	"bloodlink/internal/core/ports"
	"bloodlink/pkg/apperror"
	"bloodlink/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles bank and hospital account endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RegisterBank handles POST /api/v1/auth/banks/register.
func (h *AuthHandler) RegisterBank(c *gin.Context) {
	var req dto.RegisterBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bank, err := h.authSvc.RegisterBank(c.Request.Context(), ports.RegisterBankRequest{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		City:          req.City,
		Password:      req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	verified := bank.Verified
	response.Created(c, dto.RegisterAccountResponse{
		ID:       bank.ID.String(),
		Name:     bank.Name,
		Verified: &verified,
	})
}

// RegisterHospital handles POST /api/v1/auth/hospitals/register.
func (h *AuthHandler) RegisterHospital(c *gin.Context) {
	var req dto.RegisterHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	hospital, err := h.authSvc.RegisterHospital(c.Request.Context(), ports.RegisterHospitalRequest{
		Name:     req.Name,
		City:     req.City,
		Type:     req.Type,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RegisterAccountResponse{
		ID:   hospital.ID.String(),
		Name: hospital.Name,
	})
}

// LoginBank handles POST /api/v1/auth/banks/login.
func (h *AuthHandler) LoginBank(c *gin.Context) {
	var req dto.BankLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.authSvc.LoginBank(c.Request.Context(), req.LicenseNumber, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}

// LoginHospital handles POST /api/v1/auth/hospitals/login.
func (h *AuthHandler) LoginHospital(c *gin.Context) {
	var req dto.HospitalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.authSvc.LoginHospital(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}

// VerifyBank handles POST /api/v1/banks/:bank_id/verify.
func (h *AuthHandler) VerifyBank(c *gin.Context) {
	bankID, err := uuid.Parse(c.Param("bank_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid bank id"))
		return
	}

	if err := h.authSvc.VerifyBank(c.Request.Context(), bankID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"verified": true})
}

// HealthCheck handles GET /health, a deep health check verifying all
// dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
