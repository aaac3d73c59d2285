package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"unicode"

	"travel-gateway/models"
	"travel-gateway/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	PasswordMinLength = 8

	passwordPolicyMessage = "Password must be at least 8 characters long and include lowercase letters, uppercase letters, and numbers."
	invalidCredentials    = "Invalid Credentials. Please try again."
	genericResetMessage   = "If an account with this email exists, a password reset link has been sent."
)

type AuthService interface {
	SignUp(ctx context.Context, input models.SignUpInput) (*Outcome[models.User], error)
	Login(ctx context.Context, input models.LoginInput) (*models.AuthPayload, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RequestPasswordReset(ctx context.Context, input models.RequestPasswordResetInput) (*models.PasswordResetResult, error)
	ResetPassword(ctx context.Context, input models.ResetPasswordInput) (string, error)
	ChangePassword(ctx context.Context, userID string, input models.ChangePasswordInput) (string, error)
	UpdatePersonalInfo(ctx context.Context, userID string, input models.UpdatePersonalInfoInput) (*Outcome[models.User], error)
	GetCurrentUser(ctx context.Context, userID string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// AuthOptions controls the password reset flow.
type AuthOptions struct {
	// ResetPasswordURL receives the reset token as ?token=.
	ResetPasswordURL string
	// ExposeResetLink returns the reset link to the caller. Never set in
	// production.
	ExposeResetLink bool
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
	mailer   Mailer
	opts     AuthOptions
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService, mailer Mailer, opts AuthOptions) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, mailer: mailer, opts: opts}
}

// ValidPassword reports whether password satisfies the account password
// policy.
func ValidPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

func checkNewPassword(password, confirm string) error {
	if !ValidPassword(password) {
		return models.BadRequest(passwordPolicyMessage)
	}
	if password != confirm {
		return models.BadRequest("New password and confirm password do not match")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *authService) SignUp(ctx context.Context, input models.SignUpInput) (*Outcome[models.User], error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, models.Conflict("An account with this email already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !ValidPassword(input.Password) {
		return nil, models.BadRequest(passwordPolicyMessage)
	}
	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("user registered", "id", user.ID)

	return &Outcome[models.User]{Message: "User registered successfully", Item: user}, nil
}

func (s *authService) Login(ctx context.Context, input models.LoginInput) (*models.AuthPayload, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Unauthorized(invalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, models.Unauthorized(invalidCredentials)
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthPayload{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, User: *user}, nil
}

func (s *authService) issuePair(user *models.User) (*models.TokenPair, error) {
	access, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshToken issues a new pair for a valid refresh token. It is stateless:
// old refresh tokens stay valid until they expire.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, models.Unauthorized("No refresh token provided.")
	}

	claims, err := s.tokens.Parse(refreshToken)
	if err != nil || claims.Purpose != PurposeRefresh {
		return nil, models.Unauthorized("Invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Unauthorized("User not found")
		}
		return nil, err
	}
	return s.issuePair(user)
}

func (s *authService) RequestPasswordReset(ctx context.Context, input models.RequestPasswordResetInput) (*models.PasswordResetResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.PasswordResetResult{Message: genericResetMessage}, nil
		}
		return nil, err
	}

	token, err := s.tokens.IssuePasswordReset(user)
	if err != nil {
		return nil, err
	}
	link := s.resetLink(token)

	err = s.mailer.Send(ctx, Mail{
		To:      user.Email,
		Subject: "Password Reset Request",
		Body:    "Use the link below to reset your password:\n" + link,
	})
	if err != nil {
		return nil, err
	}

	if s.opts.ExposeResetLink {
		return &models.PasswordResetResult{Message: "Password reset link sent", ResetLink: link}, nil
	}
	return &models.PasswordResetResult{Message: genericResetMessage}, nil
}

func (s *authService) resetLink(token string) string {
	sep := "?"
	if strings.Contains(s.opts.ResetPasswordURL, "?") {
		sep = "&"
	}
	return s.opts.ResetPasswordURL + sep + "token=" + url.QueryEscape(token)
}

func (s *authService) ResetPassword(ctx context.Context, input models.ResetPasswordInput) (string, error) {
	claims, err := s.tokens.Parse(input.Token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", models.BadRequest("Token expired")
		}
		return "", models.BadRequest("Invalid token")
	}
	if claims.Purpose != PurposePasswordReset {
		return "", models.BadRequest("Invalid token")
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return "", translateNotFound(err, "User not found")
	}

	if err := checkNewPassword(input.NewPassword, input.ConfirmNewPassword); err != nil {
		return "", err
	}
	if user.Password, err = hashPassword(input.NewPassword); err != nil {
		return "", err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	slog.Info("password reset", "user_id", user.ID)
	return "Password updated successfully", nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, input models.ChangePasswordInput) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", translateNotFound(err, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return "", models.BadRequest("Current password is incorrect")
	}
	if err := checkNewPassword(input.NewPassword, input.ConfirmNewPassword); err != nil {
		return "", err
	}
	if user.Password, err = hashPassword(input.NewPassword); err != nil {
		return "", err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	slog.Info("password changed", "user_id", user.ID)
	return "Password updated successfully", nil
}

func (s *authService) UpdatePersonalInfo(ctx context.Context, userID string, input models.UpdatePersonalInfoInput) (*Outcome[models.User], error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err, "User not found")
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &Outcome[models.User]{Message: "Personal information updated successfully", Item: user}, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return s.GetUser(ctx, userID)
}

func (s *authService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "User not found")
	}
	return user, nil
}
