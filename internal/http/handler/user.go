package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/dto"
	"pathway.app/server/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := h.users.Get(ctx, userID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(u)})
}
