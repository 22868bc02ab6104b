package handler

import (
	"bloodlink/internal/adapter/http/dto"
	"bloodlink/internal/adapter/http/middleware"
	"bloodlink/internal/core/domain"
	"bloodlink/internal/core/ports"
	"bloodlink/pkg/apperror"
	"bloodlink/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitHandler handles blood unit lifecycle endpoints.
type UnitHandler struct {
	registrySvc ports.RegistryService
}

// NewUnitHandler creates a new UnitHandler.
func NewUnitHandler(registrySvc ports.RegistryService) *UnitHandler {
	return &UnitHandler{registrySvc: registrySvc}
}

// RegisterUnit handles POST /api/v1/units. The owning bank is the
// authenticated caller.
func (h *UnitHandler) RegisterUnit(c *gin.Context) {
	var req dto.RegisterUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bloodType, err := domain.ParseBloodType(req.BloodGroup, req.RhFactor)
	if err != nil {
		response.Error(c, err)
		return
	}

	bankID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	unitReq := ports.RegisterUnitRequest{
		UnitID:    req.UnitID,
		DonorID:   req.DonorID,
		BloodType: bloodType,
		BankID:    bankID,
	}
	if req.CollectedAt != nil {
		unitReq.CollectedAt = *req.CollectedAt
	}

	projection, err := h.registrySvc.RegisterUnit(c.Request.Context(), unitReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toUnitResponse(projection))
}

// SubmitTestPanel handles POST /api/v1/units/:unit_id/test-results.
func (h *UnitHandler) SubmitTestPanel(c *gin.Context) {
	var req dto.TestPanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	projection, err := h.registrySvc.SubmitTestPanel(c.Request.Context(), c.Param("unit_id"), domain.TestPanelSubmission{
		HIV:            req.HIV,
		HepatitisB:     req.HepatitisB,
		HepatitisC:     req.HepatitisC,
		Syphilis:       req.Syphilis,
		Malaria:        req.Malaria,
		OtherPathogens: req.OtherPathogens,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toUnitResponse(projection))
}

// GetUnit handles GET /api/v1/units/:unit_id.
func (h *UnitHandler) GetUnit(c *gin.Context) {
	projection, err := h.registrySvc.GetUnit(c.Request.Context(), c.Param("unit_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toUnitResponse(projection))
}

// GetTestArtifact handles GET /api/v1/units/:unit_id/artifact.
func (h *UnitHandler) GetTestArtifact(c *gin.Context) {
	unitID := c.Param("unit_id")

	artifact, err := h.registrySvc.GetTestArtifact(c.Request.Context(), unitID)
	if err != nil {
		response.Error(c, err)
		return
	}

	projection, err := h.registrySvc.GetUnit(c.Request.Context(), unitID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ArtifactResponse{
		IsSafe: artifact.IsSafe,
		Panel: dto.TestPanelResponse{
			HIV:            artifact.Panel.HIV,
			HepatitisB:     artifact.Panel.HepatitisB,
			HepatitisC:     artifact.Panel.HepatitisC,
			Syphilis:       artifact.Panel.Syphilis,
			Malaria:        artifact.Panel.Malaria,
			OtherPathogens: artifact.Panel.OtherPathogens,
		},
	}
	if projection.TestArtifactRef != nil {
		resp.ContentID = *projection.TestArtifactRef
	}

	response.OK(c, resp)
}

// ListUnits handles GET /api/v1/units?status=<status>.
func (h *UnitHandler) ListUnits(c *gin.Context) {
	status, ok := domain.ParseUnitStatus(c.Query("status"))
	if !ok {
		response.Error(c, apperror.Validation("unknown status"))
		return
	}

	ids, err := h.registrySvc.ListUnitsByStatus(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UnitListResponse{UnitIDs: ids, Count: len(ids)})
}

// Reserve handles POST /api/v1/units/:unit_id/reserve.
func (h *UnitHandler) Reserve(c *gin.Context) {
	projection, err := h.registrySvc.ReserveUnit(c.Request.Context(), c.Param("unit_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toUnitResponse(projection))
}

// Transfuse handles POST /api/v1/units/:unit_id/transfuse.
func (h *UnitHandler) Transfuse(c *gin.Context) {
	projection, err := h.registrySvc.MarkTransfused(c.Request.Context(), c.Param("unit_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toUnitResponse(projection))
}

func toUnitResponse(p *domain.Projection) dto.UnitResponse {
	return dto.UnitResponse{
		UnitID:          p.UnitID,
		DonorID:         p.DonorID,
		BloodGroup:      string(p.BloodGroup),
		RhFactor:        string(p.RhFactor),
		CollectedAt:     p.CollectedAt,
		BloodBankID:     p.BankID.String(),
		Status:          string(p.Status),
		TestArtifactRef: p.TestArtifactRef,
	}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxSubjectID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
