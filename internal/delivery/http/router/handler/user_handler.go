// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/response"
	"roster/internal/domain/entity"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// --- Request DTOs ---

// RegisterRequest is the payload for creating a new account with its profile.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Age          int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender       string `json:"gender" validate:"omitempty,max=16"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url,max=512"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangeNameRequest is the payload for changing the profile display name.
type ChangeNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// --- Response DTOs ---

// UserData is the outward shape of an account. The password hash never
// leaves the service.
type UserData struct {
	ID        uuid.UUID    `json:"id"`
	Email     string       `json:"email"`
	Profile   *ProfileData `json:"profile,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ProfileData is the outward shape of a user profile.
type ProfileData struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// LoginData carries the session token alongside the account.
type LoginData struct {
	AccessToken string    `json:"accessToken"`
	User        *UserData `json:"user"`
}

// NameChangeData is the outward shape of one audit record.
type NameChangeData struct {
	ID         uuid.UUID `json:"id"`
	BeforeName string    `json:"beforeName"`
	AfterName  string    `json:"afterName"`
	ChangedAt  time.Time `json:"changedAt"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	identityUC usecase.IdentityUsecase
	profileUC  usecase.ProfileUsecase
	tokenSvc   service.TokenService
	cfg        *config.Config
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(identityUC usecase.IdentityUsecase, profileUC usecase.ProfileUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		identityUC: identityUC,
		profileUC:  profileUC,
		tokenSvc:   tokenSvc,
		cfg:        cfg,
		logger:     logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.identityUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserData(output.User), "User registered successfully")
}

// Login handles the login request. On success a session cookie carrying the
// bearer token is set alongside the JSON body.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.identityUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.buildSessionCookie(output.AccessToken))

	return response.Success(c, http.StatusOK, LoginData{
		AccessToken: output.AccessToken,
		User:        toUserData(output.User),
	}, "Login successful")
}

// GetProfile handles the profile lookup request. An unknown user ID is a
// successful request with a null data field, not an error.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "userId must be a valid UUID")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return response.SuccessWithNullData(c, "No user found")
	}

	return response.Success(c, http.StatusOK, toUserData(user), "Profile retrieved successfully")
}

// ChangeName handles the name change request for the authenticated user.
func (h *UserHandler) ChangeName(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	var req ChangeNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.profileUC.ChangeName(c.Request().Context(), &usecase.ChangeNameInput{
		UserID:  userID,
		NewName: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"name":   output.Profile.Name,
		"change": toNameChangeData(output.Record),
	}, "Name changed successfully")
}

// NameHistory handles the request for the authenticated user's name change audit trail.
func (h *UserHandler) NameHistory(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	records, err := h.profileUC.ListNameChanges(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	history := make([]NameChangeData, 0, len(records))
	for _, record := range records {
		history = append(history, toNameChangeData(record))
	}

	return response.Success(c, http.StatusOK, history, "Name history retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// buildSessionCookie renders the session cookie with every attribute set
// explicitly from configuration.
func (h *UserHandler) buildSessionCookie(accessToken string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     "authorization",
		Value:    "Bearer " + accessToken,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.GetAccessTokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if h.cfg == nil || h.cfg.SessionCookie == nil {
		return cookie
	}

	sc := h.cfg.SessionCookie
	if sc.Name != "" {
		cookie.Name = sc.Name
	}
	if sc.Path != "" {
		cookie.Path = sc.Path
	}
	cookie.Domain = sc.Domain
	cookie.Secure = sc.Secure
	cookie.HttpOnly = sc.HTTPOnly
	cookie.SameSite = parseSameSite(sc.SameSite)

	return cookie
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// --- Mapper helpers ---

func toUserData(user *entity.User) *UserData {
	if user == nil {
		return nil
	}

	data := &UserData{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	if user.Profile != nil {
		data.Profile = &ProfileData{
			Name:         user.Profile.Name,
			Age:          user.Profile.Age,
			Gender:       user.Profile.Gender,
			ProfileImage: user.Profile.ProfileImage,
		}
	}

	return data
}

func toNameChangeData(record *entity.NameChangeRecord) NameChangeData {
	return NameChangeData{
		ID:         record.ID,
		BeforeName: record.BeforeName,
		AfterName:  record.AfterName,
		ChangedAt:  record.CreatedAt,
	}
}
