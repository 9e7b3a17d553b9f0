package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rihla/customer-queries/internal/auth"
	"github.com/rihla/customer-queries/internal/errors"
	"github.com/rihla/customer-queries/internal/mailer"
	"github.com/rihla/customer-queries/internal/model"
	"github.com/rihla/customer-queries/internal/repository"
)

// AuthService provides authentication business logic
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Logout(ctx context.Context, refreshTokenID string) error
	Refresh(ctx context.Context, refreshTokenID, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
	RequestPasswordReset(ctx context.Context, email string, at time.Time) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string, at time.Time) error
}

// AuthServiceCfg carries token lifetimes for AuthService
type AuthServiceCfg struct {
	RefreshTokenMaxCount    int
	RefreshTokenTimeToLive  time.Duration
	PasswordResetTimeToLive time.Duration
}

type authService struct {
	jwtIssuer   *auth.JwtIssuer
	userRps     repository.UserRepository
	rfrTokenRps repository.RefreshTokenRepository
	resetRps    repository.PasswordResetTokenRepository
	mailPub     mailer.Publisher
	cfg         AuthServiceCfg
}

// NewAuthService builds AuthService
func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	userRps repository.UserRepository,
	rfrTokenRps repository.RefreshTokenRepository,
	resetRps repository.PasswordResetTokenRepository,
	mailPub mailer.Publisher,
	cfg AuthServiceCfg,
) AuthService {
	return &authService{
		jwtIssuer:   jwtIssuer,
		userRps:     userRps,
		rfrTokenRps: rfrTokenRps,
		resetRps:    resetRps,
		mailPub:     mailPub,
		cfg:         cfg,
	}
}

// Signup registers new account and stamps its display name
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.userRps.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, errors.NewBusinessErr("email", "email is already in use")
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  name,
		PasswordHash: hash,
	}

	if err := s.userRps.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues jwt and refresh token. Unknown
// email and wrong password raise the same error so the caller can't tell
// them apart
func (s *authService) Login(ctx context.Context, email, password, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	user, err := s.userRps.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		return nil, nil, errors.NewBusinessErr("credentials", "invalid email or password")
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, errors.NewBusinessErr("credentials", "invalid email or password")
	}

	jwtToken, err := s.jwtIssuer.Sign(auth.Identity{Email: user.Email, DisplayName: user.DisplayName}, at)
	if err != nil {
		return nil, nil, err
	}

	userTkns, err := s.rfrTokenRps.FindTokensByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	if len(userTkns) >= s.cfg.RefreshTokenMaxCount {
		if err := s.rfrTokenRps.DeleteByUserID(ctx, user.ID); err != nil {
			return nil, nil, err
		}
	}

	rfrToken := s.newRefreshToken(user.ID, fingerprint, at)
	if err := s.rfrTokenRps.Create(ctx, rfrToken); err != nil {
		return nil, nil, err
	}
	return jwtToken, rfrToken, nil
}

// Logout drops the refresh token, ending the session
func (s *authService) Logout(ctx context.Context, refreshTokenID string) error {
	return s.rfrTokenRps.DeleteByID(ctx, refreshTokenID)
}

// Refresh rotates the refresh token and issues a fresh jwt. The presented
// token is consumed no matter whether verification succeeds
func (s *authService) Refresh(ctx context.Context, refreshTokenID, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	rfrToken, err := s.rfrTokenRps.FindByID(ctx, refreshTokenID)
	if err != nil {
		return nil, nil, err
	}

	if rfrToken == nil {
		return nil, nil, errors.NewBusinessErr("refreshToken", "non-existent refresh token provided")
	}

	if err := s.rfrTokenRps.DeleteByID(ctx, rfrToken.ID); err != nil {
		return nil, nil, err
	}

	if err := rfrToken.Verify(fingerprint, at); err != nil {
		return nil, nil, errors.NewBusinessErr("refreshToken", err.Error())
	}

	user, err := s.userRps.FindByID(ctx, rfrToken.UserID)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		return nil, nil, errors.NewBusinessErr("refreshToken", "refresh token doesn't belong to any user")
	}

	jwtToken, err := s.jwtIssuer.Sign(auth.Identity{Email: user.Email, DisplayName: user.DisplayName}, at)
	if err != nil {
		return nil, nil, err
	}

	newRfrToken := s.newRefreshToken(user.ID, fingerprint, at)
	if err := s.rfrTokenRps.Create(ctx, newRfrToken); err != nil {
		return nil, nil, err
	}
	return jwtToken, newRfrToken, nil
}

// RequestPasswordReset stores a single-use reset token and hands the mail
// off to the delivery queue. It succeeds silently for unknown emails so
// the endpoint doesn't disclose which accounts exist
func (s *authService) RequestPasswordReset(ctx context.Context, email string, at time.Time) error {
	user, err := s.userRps.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user == nil {
		logrus.Infof("password reset requested for unknown email %s, skipping", email)
		return nil
	}

	token := &model.PasswordResetToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: at.Add(s.cfg.PasswordResetTimeToLive),
	}

	if err := s.resetRps.Create(ctx, token); err != nil {
		return err
	}

	return s.mailPub.PublishPasswordReset(ctx, mailer.ResetMail{Email: user.Email, Token: token.ID})
}

// ConfirmPasswordReset consumes the token and stores the new password hash
func (s *authService) ConfirmPasswordReset(ctx context.Context, token, newPassword string, at time.Time) error {
	resetToken, err := s.resetRps.FindByID(ctx, token)
	if err != nil {
		return err
	}

	if resetToken == nil {
		return errors.NewBusinessErr("token", "unknown password reset token")
	}

	if err := s.resetRps.DeleteByID(ctx, resetToken.ID); err != nil {
		return err
	}

	if resetToken.Expired(at) {
		return errors.NewBusinessErr("token", "password reset token already expired")
	}

	hash, err := auth.GeneratePasswordHash(newPassword)
	if err != nil {
		return err
	}

	return s.userRps.UpdatePasswordHash(ctx, resetToken.UserID, hash)
}

func (s *authService) newRefreshToken(userID, fingerprint string, at time.Time) *model.RefreshToken {
	return &model.RefreshToken{
		ID:          uuid.NewString(),
		UserID:      userID,
		Fingerprint: fingerprint,
		ExpiresIn:   int(s.cfg.RefreshTokenTimeToLive.Seconds()),
		CreatedAt:   at,
	}
}
