package handler

import (
	"net/http"

	"bistro-server/internal/dto"
	"bistro-server/internal/model"
	"bistro-server/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	menuRepo repository.MenuRepository
}

func NewMenuHandler(menuRepo repository.MenuRepository) *MenuHandler {
	return &MenuHandler{
		menuRepo: menuRepo,
	}
}

func (h *MenuHandler) ListMenu(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.menuRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	item := &model.MenuItem{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: req.Category,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Price:    req.Price,
	}
	if err := h.menuRepo.Create(ctx, item); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.InsertResult{InsertedID: item.ID})
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.menuRepo.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
