package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"MouqabRealEstate/models"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login is a demo stub: any well-formed credential pair gets the constant
// token. Real authentication is out of scope for this version.
func (ac *AuthController) Login(c echo.Context) error {
	var payload models.LoginPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return validationFail(c, err)
	}
	return c.JSON(http.StatusOK, models.LoginResponse{Token: "demo-token"})
}
