package services

import (
	"errors"
	"time"

	"travel-gateway/config"
	"travel-gateway/models"

	"github.com/golang-jwt/jwt/v4"
)

const (
	PurposeRefresh       = "refresh-token"
	PurposePasswordReset = "password-reset"
)

// TokenClaims are carried by every token the API signs. Access tokens have
// no purpose.
type TokenClaims struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

type TokenService interface {
	IssueAccess(user *models.User) (string, error)
	IssueRefresh(user *models.User) (string, error)
	IssuePasswordReset(user *models.User) (string, error)
	// Parse verifies the signature and expiry of any token.
	Parse(token string) (*TokenClaims, error)
	// ParseAccess additionally rejects tokens issued for another purpose.
	ParseAccess(token string) (*TokenClaims, error)
}

var ErrTokenPurpose = errors.New("token issued for another purpose")

type tokenService struct {
	cfg config.JWTConfig
	now func() time.Time
}

func NewTokenService(cfg config.JWTConfig) TokenService {
	return &tokenService{cfg: cfg, now: time.Now}
}

func (s *tokenService) sign(claims TokenClaims, ttl time.Duration) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.Secret)
}

func (s *tokenService) IssueAccess(user *models.User) (string, error) {
	return s.sign(TokenClaims{
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
	}, s.cfg.AccessTTL)
}

func (s *tokenService) IssueRefresh(user *models.User) (string, error) {
	return s.sign(TokenClaims{
		Purpose:          PurposeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
	}, s.cfg.RefreshTTL)
}

func (s *tokenService) IssuePasswordReset(user *models.User) (string, error) {
	return s.sign(TokenClaims{
		Email:            user.Email,
		Purpose:          PurposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
	}, s.cfg.ResetTTL)
}

func (s *tokenService) Parse(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}

func (s *tokenService) ParseAccess(tokenString string) (*TokenClaims, error) {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "" {
		return nil, ErrTokenPurpose
	}
	return claims, nil
}
