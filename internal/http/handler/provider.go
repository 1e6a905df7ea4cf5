package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/dto"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
)

type ProviderHandler struct {
	providers service.ProviderService
}

func NewProviderHandler(providers service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// List returns active providers ordered by rating, optionally filtered
// by service type.
func (h *ProviderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var serviceType *model.ServiceType
	if raw := c.Query("service_type"); raw != "" {
		st := model.ServiceType(raw)
		serviceType = &st
	}

	providers, err := h.providers.List(ctx, serviceType)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"providers": dto.ToProviderResponses(providers)})
}

// GetByUser returns the provider profile owned by a user.
func (h *ProviderHandler) GetByUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.providers.GetByUser(ctx, userID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"provider": dto.ToProviderResponse(p)})
}
