package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"MouqabRealEstate/models"
	"MouqabRealEstate/store"
)

type MaintenanceController struct {
	gateway Gateway
}

func NewMaintenanceController(gateway Gateway) *MaintenanceController {
	return &MaintenanceController{gateway: gateway}
}

func (mc *MaintenanceController) Create(c echo.Context) error {
	var request models.MaintenanceRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	request.SetDefaults()
	if err := c.Validate(&request); err != nil {
		return validationFail(c, err)
	}
	id, err := mc.gateway.CreateDocument(c.Request().Context(), models.CollectionMaintenance, request)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id.String()})
}

func (mc *MaintenanceController) List(c echo.Context) error {
	query := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		query["status"] = status
	}
	items, err := mc.gateway.GetDocuments(c.Request().Context(), models.CollectionMaintenance,
		query, models.ListLimit)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

// UpdateStatus overwrites the status of one request. The value must belong
// to the enumerated set; ordering between statuses is not enforced.
func (mc *MaintenanceController) UpdateStatus(c echo.Context) error {
	id, err := store.ParseDocumentID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid maintenance request ID")
	}
	status := c.QueryParam("status")
	if status == "" {
		return badRequest(c, "status is required")
	}
	if !models.IsValidMaintenanceStatus(status) {
		return badRequest(c, "status must be one of: open, in_progress, resolved, closed")
	}
	err = mc.gateway.SetField(c.Request().Context(), models.CollectionMaintenance, id, "status", status)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Maintenance request not found")
	}
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
