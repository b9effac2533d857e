package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"MouqabRealEstate/models"
)

type ViewingController struct {
	gateway Gateway
}

func NewViewingController(gateway Gateway) *ViewingController {
	return &ViewingController{gateway: gateway}
}

func (vc *ViewingController) Create(c echo.Context) error {
	var viewing models.Viewing
	if err := c.Bind(&viewing); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&viewing); err != nil {
		return validationFail(c, err)
	}
	id, err := vc.gateway.CreateDocument(c.Request().Context(), models.CollectionViewing, viewing)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id.String()})
}
