package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roster/config"
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/validator"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	mockService "roster/internal/mocks/service"
	mockUsecase "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// handlerFixtures wires a full echo instance with mocked use cases, so every
// test exercises routing, authentication and error rendering together.
type handlerFixtures struct {
	server     *echo.Echo
	identityUC *mockUsecase.MockIdentityUsecase
	profileUC  *mockUsecase.MockProfileUsecase
	tokenSvc   *mockService.MockTokenService
}

func createTestServer(t *testing.T) handlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		SessionCookie: &config.SessionCookieConfig{
			Name:     "authorization",
			Path:     "/",
			Secure:   true,
			HTTPOnly: true,
			SameSite: "lax",
		},
	}

	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	userHandler := NewUserHandler(identityUC, profileUC, tokenSvc, cfg, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc, cfg)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.POST("/users", userHandler.Register)
	e.POST("/login", userHandler.Login)
	e.GET("/users/:userId", userHandler.GetProfile)

	nameGroup := e.Group("/users/name")
	nameGroup.Use(authMiddleware.Authenticate)
	nameGroup.PUT("", userHandler.ChangeName)
	nameGroup.GET("/history", userHandler.NameHistory)

	return handlerFixtures{
		server:     e,
		identityUC: identityUC,
		profileUC:  profileUC,
		tokenSvc:   tokenSvc,
	}
}

func doJSON(e *echo.Echo, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestUserHandler_Register_Success(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.identityUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		RunAndReturn(func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return &usecase.RegisterOutput{User: &entity.User{
				ID:    userID,
				Email: input.Email,
				Profile: &entity.UserProfile{
					UserID: userID,
					Name:   input.Name,
					Age:    input.Age,
					Gender: "MALE",
				},
			}}, nil
		})

	rec := doJSON(fx.server, http.MethodPost, "/users",
		`{"email":"new@example.com","password":"Str0ng!Password","name":"New User","age":30,"gender":"male"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "new@example.com", data["email"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	profile := data["profile"].(map[string]any)
	assert.Equal(t, "New User", profile["name"])
	assert.Equal(t, "MALE", profile["gender"])
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodPost, "/users",
		`{"password":"Str0ng!Password","name":"No Email"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	fx.identityUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	fx := createTestServer(t)

	fx.identityUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered"))

	rec := doJSON(fx.server, http.MethodPost, "/users",
		`{"email":"taken@example.com","password":"Str0ng!Password","name":"Someone"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_EXISTS")
}

func TestUserHandler_Register_TransactionFailure(t *testing.T) {
	fx := createTestServer(t)

	// A rolled-back write surfaces as a client-visible 400, not a 500.
	fx.identityUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrTransactionFailed.WrapMessage("failed to create user"))

	rec := doJSON(fx.server, http.MethodPost, "/users",
		`{"email":"unlucky@example.com","password":"Str0ng!Password","name":"Unlucky"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "TRANSACTION_FAILED")
}

func TestUserHandler_Login_SetsSessionCookie(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.identityUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken: "signed-token",
			User:        &entity.User{ID: userID, Email: "user@example.com"},
		}, nil)
	fx.tokenSvc.EXPECT().GetAccessTokenDuration().Return(24 * time.Hour)

	rec := doJSON(fx.server, http.MethodPost, "/login",
		`{"email":"user@example.com","password":"Str0ng!Password"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "authorization", cookie.Name)
	assert.Equal(t, "Bearer signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestUserHandler_Login_EmailNotRegistered(t *testing.T) {
	fx := createTestServer(t)

	fx.identityUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrEmailNotRegistered.WrapMessage("login failed"))

	rec := doJSON(fx.server, http.MethodPost, "/login",
		`{"email":"ghost@example.com","password":"whatever1!"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_NOT_REGISTERED")
	assert.Empty(t, rec.Result().Cookies())
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	fx := createTestServer(t)

	fx.identityUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrWrongPassword.WrapMessage("login failed"))

	rec := doJSON(fx.server, http.MethodPost, "/login",
		`{"email":"user@example.com","password":"bad-password"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The error code distinguishes a wrong password from an unknown email.
	assert.Contains(t, rec.Body.String(), "WRONG_PASSWORD")
	assert.NotContains(t, rec.Body.String(), "EMAIL_NOT_REGISTERED")
}

func TestUserHandler_GetProfile_Success(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.profileUC.EXPECT().
		GetProfile(mock.Anything, userID).
		Return(&entity.User{
			ID:    userID,
			Email: "user@example.com",
			Profile: &entity.UserProfile{
				UserID: userID,
				Name:   "User",
				Age:    28,
				Gender: "FEMALE",
			},
		}, nil)

	rec := doJSON(fx.server, http.MethodGet, "/users/"+userID.String(), "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, userID.String(), data["id"])
}

func TestUserHandler_GetProfile_UnknownUserIsEmptyResult(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.profileUC.EXPECT().GetProfile(mock.Anything, userID).Return(nil, nil)

	rec := doJSON(fx.server, http.MethodGet, "/users/"+userID.String(), "", nil)

	// An unknown ID still answers 200, with a null data field.
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestUserHandler_GetProfile_InvalidUUID(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodGet, "/users/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fx.profileUC.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestUserHandler_ChangeName_RequiresAuthentication(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodPut, "/users/name", `{"name":"New Name"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.profileUC.AssertNotCalled(t, "ChangeName", mock.Anything, mock.Anything)
}

func TestUserHandler_ChangeName_WithBearerHeader(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fx.profileUC.EXPECT().
		ChangeName(mock.Anything, &usecase.ChangeNameInput{UserID: userID, NewName: "New Name"}).
		Return(&usecase.ChangeNameOutput{
			Profile: &entity.UserProfile{UserID: userID, Name: "New Name"},
			Record: &entity.NameChangeRecord{
				ID:         uuid.New(),
				UserID:     userID,
				BeforeName: "Old Name",
				AfterName:  "New Name",
			},
		}, nil)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := doJSON(fx.server, http.MethodPut, "/users/name", `{"name":"New Name"}`, header)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Old Name")
	assert.Contains(t, rec.Body.String(), "New Name")
}

func TestUserHandler_ChangeName_WithSessionCookie(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("cookie-token").Return(&service.Claims{UserID: userID}, nil)
	fx.profileUC.EXPECT().
		ChangeName(mock.Anything, &usecase.ChangeNameInput{UserID: userID, NewName: "Renamed"}).
		Return(&usecase.ChangeNameOutput{
			Profile: &entity.UserProfile{UserID: userID, Name: "Renamed"},
			Record:  &entity.NameChangeRecord{UserID: userID, AfterName: "Renamed"},
		}, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/name", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "authorization", Value: "Bearer cookie-token"})

	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_ChangeName_ProfileNotFound(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fx.profileUC.EXPECT().
		ChangeName(mock.Anything, mock.AnythingOfType("*usecase.ChangeNameInput")).
		Return(nil, domainerrors.ErrProfileNotFound.WrapMessage("cannot change name without a profile"))

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := doJSON(fx.server, http.MethodPut, "/users/name", `{"name":"New Name"}`, header)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestUserHandler_ChangeName_InvalidToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().ValidateToken("expired-token").Return(nil, domainerrors.ErrTokenInvalid)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer expired-token")
	rec := doJSON(fx.server, http.MethodPut, "/users/name", `{"name":"New Name"}`, header)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestUserHandler_NameHistory_Success(t *testing.T) {
	fx := createTestServer(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fx.profileUC.EXPECT().
		ListNameChanges(mock.Anything, userID).
		Return([]*entity.NameChangeRecord{
			{ID: uuid.New(), UserID: userID, BeforeName: "Second", AfterName: "Third"},
			{ID: uuid.New(), UserID: userID, BeforeName: "First", AfterName: "Second"},
		}, nil)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := doJSON(fx.server, http.MethodGet, "/users/name/history", "", header)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "Third", first["afterName"])
}

func TestHealthCheck(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
