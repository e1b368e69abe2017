package handler

import (
	"net/http"

	"bistro-server/internal/dto"
	"bistro-server/internal/token"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	tokens *token.Service
}

func NewAuthHandler(tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
	}
}

// IssueToken exchanges an identity claim for a signed bearer token.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req dto.IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	signed, err := h.tokens.Issue(req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: signed})
}
