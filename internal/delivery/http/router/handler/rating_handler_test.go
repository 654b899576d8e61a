package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	custommiddleware "ratehub/internal/delivery/http/middleware"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRatingUsecase struct {
	rateStoreFn    func(ctx context.Context, input *usecase.RateStoreInput) (*entity.Rating, error)
	listStoresFn   func(ctx context.Context) ([]*entity.StoreListing, error)
	storeRatingsFn func(ctx context.Context, storeID uuid.UUID) (*usecase.StoreRatingsOutput, error)
}

func (f *fakeRatingUsecase) RateStore(ctx context.Context, input *usecase.RateStoreInput) (*entity.Rating, error) {
	return f.rateStoreFn(ctx, input)
}

func (f *fakeRatingUsecase) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	return f.listStoresFn(ctx)
}

func (f *fakeRatingUsecase) StoreRatings(ctx context.Context, storeID uuid.UUID) (*usecase.StoreRatingsOutput, error) {
	return f.storeRatingsFn(ctx, storeID)
}

func TestRatingHandler_RateStore_Success(t *testing.T) {
	e := newHandlerTestServer(t)

	userID := uuid.New()
	storeID := uuid.New()
	uc := &fakeRatingUsecase{
		rateStoreFn: func(ctx context.Context, input *usecase.RateStoreInput) (*entity.Rating, error) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, storeID, input.StoreID)
			assert.Equal(t, 4, input.Value)

			return &entity.Rating{
				ID:        uuid.New(),
				UserID:    input.UserID,
				StoreID:   input.StoreID,
				Value:     input.Value,
				Comment:   input.Comment,
				UpdatedAt: time.Now(),
			}, nil
		},
	}
	h := NewRatingHandler(uc, newDiscardLogger())

	body := `{"storeId":"` + storeID.String() + `","rating":4,"comment":"solid"}`
	req := httptest.NewRequest(http.MethodPost, "/rate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(custommiddleware.ContextKeyUserID, userID)

	require.NoError(t, h.RateStore(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":4`)
}

func TestRatingHandler_RateStore_RejectsOutOfRange(t *testing.T) {
	e := newHandlerTestServer(t)

	h := NewRatingHandler(&fakeRatingUsecase{}, newDiscardLogger())

	body := `{"storeId":"` + uuid.NewString() + `","rating":6}`
	req := httptest.NewRequest(http.MethodPost, "/rate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(custommiddleware.ContextKeyUserID, uuid.New())

	err := h.RateStore(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRatingHandler_ListStores_FieldNames(t *testing.T) {
	e := newHandlerTestServer(t)

	uc := &fakeRatingUsecase{
		listStoresFn: func(ctx context.Context) ([]*entity.StoreListing, error) {
			return []*entity.StoreListing{
				{
					ID:      uuid.New(),
					Name:    "Corner Grocery and General Supplies",
					Email:   "grocery@example.com",
					Address: "5 Market Square",
					Summary: entity.RatingSummary{Count: 2, Average: 4.5},
				},
			}, nil
		},
	}
	h := NewRatingHandler(uc, newDiscardLogger())

	rec, _ := doJSON(t, e, h.ListStores, http.MethodGet, "/users/stores", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, 4.5, envelope.Data[0]["avgRating"])
	assert.Equal(t, float64(2), envelope.Data[0]["totalRatings"])
}

func TestStoreHandler_Ratings(t *testing.T) {
	e := newHandlerTestServer(t)

	storeID := uuid.New()
	uc := &fakeRatingUsecase{
		storeRatingsFn: func(ctx context.Context, id uuid.UUID) (*usecase.StoreRatingsOutput, error) {
			assert.Equal(t, storeID, id)

			return &usecase.StoreRatingsOutput{
				Ratings: []*entity.StoreRating{
					{UserID: uuid.New(), UserEmail: "a@example.com", Value: 5, CreatedAt: time.Now()},
					{UserID: uuid.New(), UserEmail: "b@example.com", Value: 2, CreatedAt: time.Now()},
				},
				Summary: entity.RatingSummary{Count: 2, Average: 3.5},
			}, nil
		},
	}
	h := NewStoreHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/store/ratings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(custommiddleware.ContextKeyUserID, storeID)

	require.NoError(t, h.Ratings(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data StoreRatingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Ratings, 2)
	assert.Equal(t, int64(2), envelope.Data.TotalRatings)
	assert.Equal(t, 3.5, envelope.Data.AverageRating)
	assert.Equal(t, "a@example.com", envelope.Data.Ratings[0].UserEmail)
}

func TestStoreHandler_Ratings_UnknownStore(t *testing.T) {
	e := newHandlerTestServer(t)

	uc := &fakeRatingUsecase{
		storeRatingsFn: func(ctx context.Context, id uuid.UUID) (*usecase.StoreRatingsOutput, error) {
			return nil, domainerrors.ErrStoreNotFound
		},
	}
	h := NewStoreHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/store/ratings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(custommiddleware.ContextKeyUserID, uuid.New())

	err := h.Ratings(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
