package routes

import (
	"github.com/labstack/echo/v4"

	"MouqabRealEstate/config"
	"MouqabRealEstate/handlers"
	"MouqabRealEstate/utils"
)

// RegisterRoutes wires every endpoint to a controller built from the
// dependencies constructed in main.
func RegisterRoutes(e *echo.Echo, gateway handlers.Gateway, cache *utils.Cache, cfg *config.Config) {
	health := handlers.NewHealthController(gateway, cfg)
	e.GET("/", health.Root)
	e.GET("/test", health.TestDatabase)

	properties := handlers.NewPropertyController(gateway, cache)
	e.POST("/properties/search", properties.Search)
	e.POST("/properties", properties.Create)
	e.GET("/properties/:id", properties.GetByID)

	leads := handlers.NewLeadController(gateway)
	e.POST("/leads", leads.Create)

	viewings := handlers.NewViewingController(gateway)
	e.POST("/viewings", viewings.Create)

	favorites := handlers.NewFavoriteController(gateway)
	e.POST("/favorites", favorites.Create)
	e.GET("/favorites/:user_id", favorites.ListByUser)

	maintenance := handlers.NewMaintenanceController(gateway)
	e.POST("/maintenance-requests", maintenance.Create)
	e.GET("/maintenance-requests", maintenance.List)
	e.PATCH("/maintenance-requests/:id", maintenance.UpdateStatus)

	auth := handlers.NewAuthController()
	e.POST("/auth/login", auth.Login)
}
