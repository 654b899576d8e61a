package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/response"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreRatingItem is one received-rating row on the store dashboard.
type StoreRatingItem struct {
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreRatingsResponse is the store dashboard view: every rating row plus
// the derived aggregate.
type StoreRatingsResponse struct {
	Ratings       []StoreRatingItem `json:"ratings"`
	TotalRatings  int64             `json:"totalRatings"`
	AverageRating float64           `json:"averageRating"`
}

// StoreHandler holds dependencies for the store dashboard handlers.
type StoreHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.RatingUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// Ratings returns the ratings the authenticated store has received. The
// store ID is the verified token subject.
func (h *StoreHandler) Ratings(c echo.Context) error {
	storeID, ok := middleware.SubjectID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid store ID in token")
	}

	output, err := h.uc.StoreRatings(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]StoreRatingItem, 0, len(output.Ratings))
	for _, rating := range output.Ratings {
		items = append(items, StoreRatingItem{
			UserID:    rating.UserID,
			UserEmail: rating.UserEmail,
			Rating:    rating.Value,
			Comment:   rating.Comment,
			CreatedAt: rating.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, StoreRatingsResponse{
		Ratings:       items,
		TotalRatings:  output.Summary.Count,
		AverageRating: output.Summary.Average,
	}, "Ratings retrieved successfully")
}
