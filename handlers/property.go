package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"MouqabRealEstate/models"
	"MouqabRealEstate/store"
	"MouqabRealEstate/utils"
)

type PropertyController struct {
	gateway Gateway
	cache   *utils.Cache
}

func NewPropertyController(gateway Gateway, cache *utils.Cache) *PropertyController {
	return &PropertyController{gateway: gateway, cache: cache}
}

// Search translates the optional filters into one store query and returns at
// most 100 matches. Results go through the redis cache when one is
// configured; cache trouble falls back to the store silently.
func (pc *PropertyController) Search(c echo.Context) error {
	var filters models.SearchFilters
	if err := c.Bind(&filters); err != nil {
		return badRequest(c, "invalid request body")
	}
	ctx := c.Request().Context()

	key := utils.QueryCacheKey("property-search", filters)
	var items []bson.M
	if hit, err := pc.cache.Get(ctx, key, &items); err == nil && hit {
		return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
	}

	items, err := pc.gateway.GetDocuments(ctx, models.CollectionProperty, filters.BuildQuery(), models.SearchLimit)
	if err != nil {
		return storeFail(c, err)
	}
	_ = pc.cache.Set(ctx, key, items)
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

func (pc *PropertyController) Create(c echo.Context) error {
	var property models.Property
	if err := c.Bind(&property); err != nil {
		return badRequest(c, "invalid request body")
	}
	property.SetDefaults()
	if err := c.Validate(&property); err != nil {
		return validationFail(c, err)
	}
	id, err := pc.gateway.CreateDocument(c.Request().Context(), models.CollectionProperty, property)
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id.String()})
}

func (pc *PropertyController) GetByID(c echo.Context) error {
	id, err := store.ParseDocumentID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid property ID")
	}
	doc, err := pc.gateway.GetDocumentByID(c.Request().Context(), models.CollectionProperty, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Property not found")
	}
	if err != nil {
		return storeFail(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}
