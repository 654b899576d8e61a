package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/validator"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase is a hand-rolled stub for handler tests; each field
// overrides one operation.
type fakeAuthUsecase struct {
	registerFn       func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error)
	loginFn          func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
	storeLoginFn     func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
	changePasswordFn func(ctx context.Context, userID uuid.UUID, newPassword string) error
}

func (f *fakeAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeAuthUsecase) StoreLogin(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return f.storeLoginFn(ctx, input)
}

func (f *fakeAuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return f.changePasswordFn(ctx, userID, newPassword)
}

func newHandlerTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	errorMiddleware := custommiddleware.NewErrorMiddleware(newDiscardLogger())
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	return e
}

func doJSON(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec, c
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newHandlerTestServer(t)

	userID := uuid.New()
	uc := &fakeAuthUsecase{
		registerFn: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "jon@example.com", input.Email)

			return &usecase.AuthOutput{
				User: &entity.User{
					ID:    userID,
					Name:  input.Name,
					Email: input.Email,
					Role:  entity.RoleUser,
				},
				Token: "signed-token",
			}, nil
		},
	}
	h := NewAuthHandler(uc, newDiscardLogger())

	body := `{"name":"Jonathan Maxwell Harrington III","email":"jon@example.com","password":"Abcdef1!","address":"12 Harbor Street"}`
	rec, _ := doJSON(t, e, h.Register, http.MethodPost, "/register", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			User  UserResponse `json:"user"`
			Token string       `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, userID, envelope.Data.User.ID)
	assert.Equal(t, "signed-token", envelope.Data.Token)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_WithoutAddress(t *testing.T) {
	e := newHandlerTestServer(t)

	uc := &fakeAuthUsecase{
		registerFn: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			assert.Empty(t, input.Address)

			return &usecase.AuthOutput{
				User: &entity.User{
					ID:    uuid.New(),
					Name:  input.Name,
					Email: input.Email,
					Role:  entity.RoleUser,
				},
				Token: "signed-token",
			}, nil
		},
	}
	h := NewAuthHandler(uc, newDiscardLogger())

	body := `{"name":"Jonathan Maxwell Harrington III","email":"jon@example.com","password":"Abcdef1!"}`
	rec, _ := doJSON(t, e, h.Register, http.MethodPost, "/register", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
}

func TestAuthHandler_Register_ShortName(t *testing.T) {
	e := newHandlerTestServer(t)

	h := NewAuthHandler(&fakeAuthUsecase{}, newDiscardLogger())

	body := `{"name":"Jane Doe","email":"jane@example.com","password":"Abcdef1!","address":"12 Harbor Street"}`
	rec, _ := doJSON(t, e, h.Register, http.MethodPost, "/register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := newHandlerTestServer(t)

	uc := &fakeAuthUsecase{
		registerFn: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			return nil, domainerrors.ErrEmailTaken
		},
	}
	h := NewAuthHandler(uc, newDiscardLogger())

	body := `{"name":"Jonathan Maxwell Harrington III","email":"taken@example.com","password":"Abcdef1!","address":"12 Harbor Street"}`
	rec, _ := doJSON(t, e, h.Register, http.MethodPost, "/register", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newHandlerTestServer(t)

	uc := &fakeAuthUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(uc, newDiscardLogger())

	rec, _ := doJSON(t, e, h.Login, http.MethodPost, "/login", `{"email":"jon@example.com","password":"wrong-One!"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_StoreLogin_WrapsStoreKey(t *testing.T) {
	e := newHandlerTestServer(t)

	storeID := uuid.New()
	uc := &fakeAuthUsecase{
		storeLoginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{
				User:  &entity.User{ID: storeID, Role: entity.RoleStore},
				Token: "store-token",
			}, nil
		},
	}
	h := NewAuthHandler(uc, newDiscardLogger())

	rec, _ := doJSON(t, e, h.StoreLogin, http.MethodPost, "/store/store-login", `{"email":"store@example.com","password":"Abcdef1!"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Store UserResponse `json:"store"`
			Token string       `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, storeID, envelope.Data.Store.ID)
	assert.Equal(t, "store-token", envelope.Data.Token)
}

func TestAuthHandler_UpdatePassword_Success(t *testing.T) {
	e := newHandlerTestServer(t)

	userID := uuid.New()
	var gotPassword string
	uc := &fakeAuthUsecase{
		changePasswordFn: func(ctx context.Context, id uuid.UUID, newPassword string) error {
			assert.Equal(t, userID, id)
			gotPassword = newPassword

			return nil
		},
	}
	h := NewAuthHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodPut, "/update-password", strings.NewReader(`{"newPassword":"Newpass1!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(custommiddleware.ContextKeyUserID, userID)

	require.NoError(t, h.UpdatePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Newpass1!", gotPassword)
	assert.Contains(t, rec.Body.String(), "Password updated successfully")
}

func TestAuthHandler_UpdatePassword_NoSubject(t *testing.T) {
	e := newHandlerTestServer(t)

	h := NewAuthHandler(&fakeAuthUsecase{}, newDiscardLogger())

	req := httptest.NewRequest(http.MethodPut, "/update-password", strings.NewReader(`{"newPassword":"Newpass1!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpdatePassword(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
