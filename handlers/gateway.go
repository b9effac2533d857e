package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"MouqabRealEstate/store"
	"MouqabRealEstate/utils"
)

// Gateway is what the controllers need from the document store. *store.Store
// satisfies it; tests swap in an in-memory implementation.
type Gateway interface {
	Available(ctx context.Context) bool
	CollectionNames(ctx context.Context) ([]string, error)
	CreateDocument(ctx context.Context, collection string, doc any) (store.DocumentID, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	GetDocumentByID(ctx context.Context, collection string, id store.DocumentID) (bson.M, error)
	SetField(ctx context.Context, collection string, id store.DocumentID, field string, value any) error
}

const maxErrorLen = 200

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return msg
}

// storeFail reports a gateway failure as a 500 carrying the raw reason.
func storeFail(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": truncateError(err)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
}

// validationFail reports decode-time constraint violations field by field.
func validationFail(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "validation failed",
		"details": utils.ValidationDetails(err),
	})
}
