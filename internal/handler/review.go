package handler

import (
	"net/http"

	"bistro-server/internal/dto"
	"bistro-server/internal/model"
	"bistro-server/internal/repository"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewHandler(reviewRepo repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{
		reviewRepo: reviewRepo,
	}
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.reviewRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	review := &model.Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  req.Rating,
	}
	if err := h.reviewRepo.Create(ctx, review); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, review)
}
