package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/dto"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
)

type ServiceRequestHandler struct {
	requests service.RequestService
}

func NewServiceRequestHandler(requests service.RequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{requests: requests}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondErr(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// Create opens a new service request in REQUESTED state.
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.requests.Create(ctx, service.CreateRequestInput{
		ClientID:    req.ClientID,
		ProviderID:  req.ProviderID,
		ServiceType: model.ServiceType(req.ServiceType),
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"request": dto.ToServiceRequestResponse(created)})
}

// Accept moves REQUESTED to ACCEPTED and returns the conversation
// created alongside it.
func (h *ServiceRequestHandler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AcceptServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	conv, err := h.requests.Accept(ctx, requestID, req.ProviderID, req.Notes)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"conversation": dto.ToConversationResponse(conv)})
}

func (h *ServiceRequestHandler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CompleteServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.requests.Complete(ctx, requestID, req.ProviderID, req.CompletionNotes); err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"msg": "service request completed"})
}

func (h *ServiceRequestHandler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ConfirmServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.requests.Confirm(ctx, requestID, req.ClientID, req.Rating); err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"msg": "service request confirmed"})
}

// GetConversation resolves the conversation attached to a request.
func (h *ServiceRequestHandler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	conv, err := h.requests.GetConversation(ctx, requestID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"conversation": dto.ToConversationResponse(conv)})
}

// ListByClient returns a client's requests, newest first, each with the
// provider's contact block.
func (h *ServiceRequestHandler) ListByClient(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.requests.ListByClient(ctx, clientID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	out := make([]dto.RequestWithProviderResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToRequestWithProviderResponse(r))
	}
	respond(c, http.StatusOK, gin.H{"requests": out})
}

// ListByProvider returns a provider's incoming requests with the client
// contact block.
func (h *ServiceRequestHandler) ListByProvider(c *gin.Context) {
	ctx := c.Request.Context()

	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.requests.ListByProvider(ctx, providerID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	out := make([]dto.RequestWithClientResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToRequestWithClientResponse(r))
	}
	respond(c, http.StatusOK, gin.H{"requests": out})
}
