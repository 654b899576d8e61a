package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RateRequest is the body for submitting or replacing a rating.
type RateRequest struct {
	StoreID string `json:"storeId" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=400"`
}

// RatingResponse is the caller's view of their stored rating.
type RatingResponse struct {
	StoreID   uuid.UUID `json:"storeId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoreListingResponse is one row of the public store listing, with the
// aggregate recomputed from the current rating rows.
type StoreListingResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	AvgRating    float64   `json:"avgRating"`
	TotalRatings int64     `json:"totalRatings"`
}

// NewStoreListingResponse maps a store listing to its API view.
func NewStoreListingResponse(listing *entity.StoreListing) StoreListingResponse {
	return StoreListingResponse{
		ID:           listing.ID,
		Name:         listing.Name,
		Email:        listing.Email,
		Address:      listing.Address,
		AvgRating:    listing.Summary.Average,
		TotalRatings: listing.Summary.Count,
	}
}

// RatingHandler holds dependencies for the user-facing rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

// RateStore handles rating submission. Submitting again for the same store
// replaces the previous rating.
func (h *RatingHandler) RateStore(c echo.Context) error {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	rating, err := h.uc.RateStore(c.Request().Context(), &usecase.RateStoreInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RatingResponse{
		StoreID:   rating.StoreID,
		Rating:    rating.Value,
		Comment:   rating.Comment,
		UpdatedAt: rating.UpdatedAt,
	}, "Rating submitted successfully")
}

// ListStores handles the public store listing for signed-in users.
func (h *RatingHandler) ListStores(c echo.Context) error {
	listings, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]StoreListingResponse, 0, len(listings))
	for _, listing := range listings {
		items = append(items, NewStoreListingResponse(listing))
	}

	return response.Success(c, http.StatusOK, items, "Stores retrieved successfully")
}
