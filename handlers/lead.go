package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"MouqabRealEstate/models"
)

type LeadController struct {
	gateway Gateway
}

func NewLeadController(gateway Gateway) *LeadController {
	return &LeadController{gateway: gateway}
}

func (lc *LeadController) Create(c echo.Context) error {
	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		return badRequest(c, "invalid request body")
	}
	lead.SetDefaults()
	if err := c.Validate(&lead); err != nil {
		return validationFail(c, err)
	}
	id, err := lc.gateway.CreateDocument(c.Request().Context(), models.CollectionLead, lead)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id.String()})
}
