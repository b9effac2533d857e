package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"MouqabRealEstate/models"
)

type FavoriteController struct {
	gateway Gateway
}

func NewFavoriteController(gateway Gateway) *FavoriteController {
	return &FavoriteController{gateway: gateway}
}

func (fc *FavoriteController) Create(c echo.Context) error {
	var favorite models.Favorite
	if err := c.Bind(&favorite); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&favorite); err != nil {
		return validationFail(c, err)
	}
	id, err := fc.gateway.CreateDocument(c.Request().Context(), models.CollectionFavorite, favorite)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id.String()})
}

// ListByUser returns a user's favorites. The path value is matched as the
// stored user_id string, no existence check on the user itself.
func (fc *FavoriteController) ListByUser(c echo.Context) error {
	userID := c.Param("user_id")
	items, err := fc.gateway.GetDocuments(c.Request().Context(), models.CollectionFavorite,
		bson.M{"user_id": userID}, models.ListLimit)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}
