package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/service"
)

// Every response carries the {ok: bool} envelope; failures add a
// human-readable msg. Existing consumers depend on this shape.

func respond(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["ok"] = true
	c.JSON(status, payload)
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "msg": msg})
}

// respondServiceErr maps the service error taxonomy onto HTTP statuses.
// Internal details never reach the body; they are logged server-side.
func respondServiceErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondErr(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondErr(c, http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrInvalidState):
		respondErr(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondErr(c, http.StatusForbidden, service.ErrForbidden.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		respondErr(c, http.StatusInternalServerError, "temporarily unavailable, retry")
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled service error", "error", err)
		respondErr(c, http.StatusInternalServerError, "internal error")
	}
}
