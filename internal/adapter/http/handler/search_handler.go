package handler

import (
	"bloodlink/internal/adapter/http/dto"
	"bloodlink/internal/core/domain"
	"bloodlink/internal/core/ports"
	"bloodlink/pkg/response"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles compatibility search endpoints.
type SearchHandler struct {
	registrySvc ports.RegistryService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(registrySvc ports.RegistryService) *SearchHandler {
	return &SearchHandler{registrySvc: registrySvc}
}

// FindCompatible handles GET /api/v1/search/compatible?blood_group=A&rh_factor=positive.
// The recipient's blood type goes in; ids of transfusable units come out.
func (h *SearchHandler) FindCompatible(c *gin.Context) {
	recipient, err := domain.ParseBloodType(c.Query("blood_group"), c.Query("rh_factor"))
	if err != nil {
		response.Error(c, err)
		return
	}

	ids, err := h.registrySvc.FindCompatibleUnits(c.Request.Context(), recipient)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UnitListResponse{UnitIDs: ids, Count: len(ids)})
}
