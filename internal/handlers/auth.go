package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rihla/customer-queries/internal/service"
	"github.com/rihla/customer-queries/pkg/db/transactor"
)

type signup struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=24"`
}

type newUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type login struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Fingerprint string `json:"fingerprint" validate:"required"`
}

type session struct {
	Token        string `json:"accessToken"`
	ExpiresAt    int64  `json:"expiresAt"`
	RefreshToken string `json:"refreshToken"`
}

type refresh struct {
	Fingerprint  string `json:"fingerprint" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

type logout struct {
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordResetConfirm struct {
	Token    string `json:"token" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=4,max=24"`
}

// AuthHandler is http handler for auth endpoints
type AuthHandler struct {
	trx     transactor.Transactor
	authSvc service.AuthService
}

// NewAuthHandler builds AuthHandler
func NewAuthHandler(trx transactor.Transactor, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{trx: trx, authSvc: authSvc}
}

// Signup registers new account
// @Summary     Signup new account
// @Description Register new account and stamp its display name
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body	    signup true "New user data"
// @Success     200    {object} newUser
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var su signup
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	nu, err := h.authSvc.Signup(c.Request().Context(), su.Name, su.Email, su.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &newUser{
		ID:          nu.ID,
		Email:       nu.Email,
		DisplayName: nu.DisplayName,
	})
}

// Login verifies credentials and opens a session
// @Summary     Login user
// @Description Verifies provided credentials, signs access and refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body	    login true "User credentials"
// @Success     200    {object} session
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	return h.trx.WithinTransaction(c.Request().Context(), func(ctx context.Context) error {
		jwt, rfrToken, err := h.authSvc.Login(ctx, lgn.Email, lgn.Password, lgn.Fingerprint, time.Now().UTC())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, &session{
			Token:        jwt.Signed,
			ExpiresAt:    jwt.ExpiresAt,
			RefreshToken: rfrToken.ID,
		})
	})
}

// Refresh rotates refresh token and issues new access token
// @Summary     Refresh session
// @Description Rotates refresh token, issues new access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       refresh body     refresh true "Refresh token and fingerprint"
// @Success     200     {object} session
// @Failure     400     {object} echo.HTTPError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var rfr refresh
	if err := c.Bind(&rfr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&rfr); err != nil {
		return err
	}

	return h.trx.WithinTransaction(c.Request().Context(), func(ctx context.Context) error {
		jwt, rfrToken, err := h.authSvc.Refresh(ctx, rfr.RefreshToken, rfr.Fingerprint, time.Now().UTC())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, &session{
			Token:        jwt.Signed,
			ExpiresAt:    jwt.ExpiresAt,
			RefreshToken: rfrToken.ID,
		})
	})
}

// Logout ends the session
// @Summary     Logout user
// @Description Remove any user-related session data
// @Tags        auth
// @Accept      json
// @Param       logout body	    logout true "Refresh token id"
// @Success     200    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var lgt logout
	if err := c.Bind(&lgt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgt); err != nil {
		return err
	}

	if err := h.authSvc.Logout(c.Request().Context(), lgt.RefreshToken); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// RequestPasswordReset dispatches a password reset mail
// @Summary     Request password reset
// @Description Sends password reset mail if the account exists
// @Tags        auth
// @Accept      json
// @Param       reset  body	    passwordResetRequest true "Account email"
// @Success     202    "Accepted status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authSvc.RequestPasswordReset(c.Request().Context(), req.Email, time.Now().UTC()); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}

// ConfirmPasswordReset consumes reset token and stores the new password
// @Summary     Confirm password reset
// @Description Consumes a reset token and replaces the account password
// @Tags        auth
// @Accept      json
// @Param       confirm body	passwordResetConfirm true "Reset token and new password"
// @Success     200     "Successful status code"
// @Failure     400     {object} echo.HTTPError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req passwordResetConfirm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.trx.WithinTransaction(c.Request().Context(), func(ctx context.Context) error {
		if err := h.authSvc.ConfirmPasswordReset(ctx, req.Token, req.Password, time.Now().UTC()); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
}
