package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"MouqabRealEstate/config"
)

type HealthController struct {
	gateway Gateway
	cfg     *config.Config
}

func NewHealthController(gateway Gateway, cfg *config.Config) *HealthController {
	return &HealthController{gateway: gateway, cfg: cfg}
}

func (hc *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Mouqab Al Noor API is running"})
}

// TestDatabase reports store reachability and which connection settings are
// present, without ever failing itself. Collection names are capped at 10.
func (hc *HealthController) TestDatabase(c echo.Context) error {
	ctx := c.Request().Context()

	setOrNot := func(present bool) string {
		if present {
			return "set"
		}
		return "not set"
	}

	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"database_url":      setOrNot(hc.cfg.HasDatabaseURL()),
		"database_name":     setOrNot(hc.cfg.HasDatabaseName()),
		"collections":       []string{},
	}

	if hc.gateway.Available(ctx) {
		names, err := hc.gateway.CollectionNames(ctx)
		if err != nil {
			response["database"] = "connected but error: " + truncateError(err)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["database"] = "connected"
			response["connection_status"] = "connected"
			response["collections"] = names
		}
	}
	return c.JSON(http.StatusOK, response)
}
