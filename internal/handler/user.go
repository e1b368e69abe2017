package handler

import (
	"net/http"

	"bistro-server/internal/dto"
	"bistro-server/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	id, err := h.userService.Register(ctx, req.Email, req.Name)
	if err != nil {
		return err
	}
	if id == "" {
		return c.JSON(http.StatusOK, dto.CreateUserResponse{
			Message:    "User Already Exist",
			InsertedID: nil,
		})
	}

	return c.JSON(http.StatusOK, dto.CreateUserResponse{InsertedID: &id})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.userService.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}

func (h *UserHandler) PromoteUser(c echo.Context) error {
	ctx := c.Request().Context()

	matched, err := h.userService.Promote(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.UpdateResult{
		MatchedCount:  matched,
		ModifiedCount: matched,
	})
}

func (h *UserHandler) AdminStatus(c echo.Context) error {
	ctx := c.Request().Context()

	admin, err := h.userService.IsAdmin(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AdminStatusResponse{Admin: admin})
}
