package handler

import (
	"log/slog"
	"net/http"

	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateAccountRequest is the body for the admin account-creation endpoints.
// Role is only honored by create-user; create-store always creates a store.
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,userpassword"`
	Address  string `json:"address" validate:"omitempty,max=400"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// AdminHandler holds dependencies for the administrator-only handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stats returns platform-wide user, store and rating counts.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, StatsResponse{
		TotalUsers:   stats.Users,
		TotalStores:  stats.Stores,
		TotalRatings: stats.Ratings,
	}, "Stats retrieved successfully")
}

// ListUsers returns all non-store accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, NewUserResponse(user))
	}

	return response.Success(c, http.StatusOK, items, "Users retrieved successfully")
}

// ListStores returns all stores with their aggregates.
func (h *AdminHandler) ListStores(c echo.Context) error {
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

// CreateUser creates a user or admin account on behalf of an administrator.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewUserResponse(user), "User created successfully")
}

// CreateStore creates a store account. The role field of the request is
// ignored; the account always carries the store role.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), &usecase.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewUserResponse(store), "Store created successfully")
}
