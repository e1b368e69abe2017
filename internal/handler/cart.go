package handler

import (
	"net/http"

	"bistro-server/internal/dto"
	"bistro-server/internal/model"
	"bistro-server/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartRepo repository.CartRepository
}

func NewCartHandler(cartRepo repository.CartRepository) *CartHandler {
	return &CartHandler{
		cartRepo: cartRepo,
	}
}

func (h *CartHandler) ListCartItems(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.cartRepo.FindByEmail(ctx, c.QueryParam("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	item := &model.CartItem{
		ID:         uuid.NewString(),
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	if err := h.cartRepo.Create(ctx, item); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.InsertResult{InsertedID: item.ID})
}

func (h *CartHandler) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.cartRepo.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
