package router

import (
	"github.com/gin-gonic/gin"

	"pathway.app/server/internal/http/handler"
)

// ProviderRouter sets up the directory and per-actor listing routes.
func ProviderRouter(
	rg *gin.RouterGroup,
	providers *handler.ProviderHandler,
	users *handler.UserHandler,
	requests *handler.ServiceRequestHandler,
	conversations *handler.ConversationHandler,
) {
	sp := rg.Group("/service-providers")
	{
		sp.GET("", providers.List)
		sp.GET("/:id/requests", requests.ListByProvider)
		sp.GET("/:id/conversations", conversations.ListByProvider)
	}

	userRoutes := rg.Group("/users")
	{
		userRoutes.GET("/:id", users.Get)
		userRoutes.GET("/:id/provider-profile", providers.GetByUser)
		userRoutes.GET("/:id/service-requests", requests.ListByClient)
		userRoutes.GET("/:id/conversations", conversations.ListByUser)
	}
}
