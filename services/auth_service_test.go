package services

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"travel-gateway/config"
	"travel-gateway/models"
	"travel-gateway/repositories"
	"travel-gateway/test/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Mail
}

func (m *recordingMailer) Send(_ context.Context, mail Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
	return nil
}

var testJWT = config.JWTConfig{
	Secret:     []byte("test-secret"),
	AccessTTL:  time.Hour,
	RefreshTTL: 2 * time.Hour,
	ResetTTL:   time.Hour,
}

const strongPassword = "Sunrise2025"

type AuthServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	users   repositories.UserRepository
	tokens  TokenService
	mailer  *recordingMailer
	service AuthService
	user    *models.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = repositories.NewUserRepository(testdb.New(s.T()))
	s.tokens = NewTokenService(testJWT)
	s.mailer = &recordingMailer{}
	s.service = NewAuthService(s.users, s.tokens, s.mailer, AuthOptions{
		ResetPasswordURL: "https://admin.example.com/reset-password",
		ExposeResetLink:  true,
	})

	out, err := s.service.SignUp(s.ctx, models.SignUpInput{
		Email:     "Admin@Example.com",
		Password:  strongPassword,
		FirstName: "Neema",
		LastName:  "Mollel",
	})
	s.Require().NoError(err)
	s.user = out.Item
}

func (s *AuthServiceTestSuite) TestSignUp() {
	s.Equal("admin@example.com", s.user.Email)
	s.NotEqual(strongPassword, s.user.Password)

	_, err := s.service.SignUp(s.ctx, models.SignUpInput{Email: "admin@example.com", Password: strongPassword})
	s.EqualError(err, "An account with this email already exists.")

	for _, weak := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		_, err = s.service.SignUp(s.ctx, models.SignUpInput{Email: "new@example.com", Password: weak})
		s.EqualError(err, passwordPolicyMessage, weak)
	}
}

func (s *AuthServiceTestSuite) TestLogin() {
	payload, err := s.service.Login(s.ctx, models.LoginInput{Email: "ADMIN@example.com", Password: strongPassword})
	s.Require().NoError(err)
	s.Equal(s.user.ID, payload.User.ID)

	claims, err := s.tokens.ParseAccess(payload.AccessToken)
	s.Require().NoError(err)
	s.Equal(s.user.ID, claims.Subject)
	s.Equal("admin@example.com", claims.Email)

	_, err = s.tokens.ParseAccess(payload.RefreshToken)
	s.ErrorIs(err, ErrTokenPurpose)

	_, err = s.service.Login(s.ctx, models.LoginInput{Email: "admin@example.com", Password: "Wrong12345"})
	var unauthorized models.ErrorUnauthorized
	s.Require().ErrorAs(err, &unauthorized)
	s.Equal("Invalid Credentials. Please try again.", unauthorized.Message)

	_, err = s.service.Login(s.ctx, models.LoginInput{Email: "nobody@example.com", Password: strongPassword})
	s.ErrorAs(err, &unauthorized)
}

func (s *AuthServiceTestSuite) TestRefreshToken() {
	payload, err := s.service.Login(s.ctx, models.LoginInput{Email: "admin@example.com", Password: strongPassword})
	s.Require().NoError(err)

	pair, err := s.service.RefreshToken(s.ctx, payload.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)

	_, err = s.service.RefreshToken(s.ctx, "")
	s.EqualError(err, "No refresh token provided.")

	_, err = s.service.RefreshToken(s.ctx, payload.AccessToken)
	s.EqualError(err, "Invalid or expired refresh token")

	_, err = s.service.RefreshToken(s.ctx, "not.a.token")
	s.EqualError(err, "Invalid or expired refresh token")
}

func resetToken(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("bad reset link %q: %v", link, err)
	}
	return u.Query().Get("token")
}

func (s *AuthServiceTestSuite) TestPasswordReset() {
	result, err := s.service.RequestPasswordReset(s.ctx, models.RequestPasswordResetInput{Email: "admin@example.com"})
	s.Require().NoError(err)
	s.Equal("Password reset link sent", result.Message)
	s.Contains(result.ResetLink, "https://admin.example.com/reset-password?token=")
	s.Require().Len(s.mailer.sent, 1)
	s.Equal("Password Reset Request", s.mailer.sent[0].Subject)
	s.Contains(s.mailer.sent[0].Body, result.ResetLink)

	token := resetToken(s.T(), result.ResetLink)

	_, err = s.service.ResetPassword(s.ctx, models.ResetPasswordInput{Token: token, NewPassword: "Another2025", ConfirmNewPassword: "Another2026"})
	s.EqualError(err, "New password and confirm password do not match")

	msg, err := s.service.ResetPassword(s.ctx, models.ResetPasswordInput{Token: token, NewPassword: "Another2025", ConfirmNewPassword: "Another2025"})
	s.Require().NoError(err)
	s.Equal("Password updated successfully", msg)

	_, err = s.service.Login(s.ctx, models.LoginInput{Email: "admin@example.com", Password: "Another2025"})
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestPasswordReset_UnknownEmail() {
	result, err := s.service.RequestPasswordReset(s.ctx, models.RequestPasswordResetInput{Email: "ghost@example.com"})
	s.Require().NoError(err)
	s.Equal("If an account with this email exists, a password reset link has been sent.", result.Message)
	s.Empty(result.ResetLink)
	s.Empty(s.mailer.sent)
}

func (s *AuthServiceTestSuite) TestResetPassword_RejectsBadTokens() {
	access, err := s.tokens.IssueAccess(s.user)
	s.Require().NoError(err)
	_, err = s.service.ResetPassword(s.ctx, models.ResetPasswordInput{Token: access, NewPassword: "Another2025", ConfirmNewPassword: "Another2025"})
	s.EqualError(err, "Invalid token")

	expired := NewTokenService(config.JWTConfig{Secret: testJWT.Secret, ResetTTL: -time.Minute})
	token, err := expired.IssuePasswordReset(s.user)
	s.Require().NoError(err)
	_, err = s.service.ResetPassword(s.ctx, models.ResetPasswordInput{Token: token, NewPassword: "Another2025", ConfirmNewPassword: "Another2025"})
	s.EqualError(err, "Token expired")
}

func (s *AuthServiceTestSuite) TestChangePassword() {
	_, err := s.service.ChangePassword(s.ctx, s.user.ID, models.ChangePasswordInput{
		CurrentPassword: "Wrong12345", NewPassword: "Changed2025", ConfirmNewPassword: "Changed2025",
	})
	s.EqualError(err, "Current password is incorrect")

	_, err = s.service.ChangePassword(s.ctx, s.user.ID, models.ChangePasswordInput{
		CurrentPassword: strongPassword, NewPassword: "weak", ConfirmNewPassword: "weak",
	})
	s.EqualError(err, passwordPolicyMessage)

	msg, err := s.service.ChangePassword(s.ctx, s.user.ID, models.ChangePasswordInput{
		CurrentPassword: strongPassword, NewPassword: "Changed2025", ConfirmNewPassword: "Changed2025",
	})
	s.Require().NoError(err)
	s.Equal("Password updated successfully", msg)

	_, err = s.service.ChangePassword(s.ctx, "missing", models.ChangePasswordInput{})
	s.EqualError(err, "User not found")
}

func (s *AuthServiceTestSuite) TestUpdatePersonalInfo() {
	out, err := s.service.UpdatePersonalInfo(s.ctx, s.user.ID, models.UpdatePersonalInfoInput{FirstName: strPtr(" Rehema ")})
	s.Require().NoError(err)
	s.Equal("Personal information updated successfully", out.Message)
	s.Equal("Rehema", out.Item.FirstName)
	s.Equal("Mollel", out.Item.LastName)

	me, err := s.service.GetCurrentUser(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Equal("Rehema", me.FirstName)

	users, err := s.service.GetUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Abcdefg1"))
	assert.True(t, ValidPassword("ÄbcdefG9"))
	assert.False(t, ValidPassword("Abcdef1"))
	assert.False(t, ValidPassword("abcdefg1"))
	assert.False(t, ValidPassword(""))
}
