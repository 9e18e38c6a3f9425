package auth

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service is the authentication port consumed by the use cases: password
// hashing and verification, token issuance and decoding, strength policy.
type Service interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	CreateAccessToken(userID uuid.UUID, email string) (string, error)
	DecodeToken(token string) (*Claims, error)
	ValidatePasswordStrength(password string) (bool, string)
	AccessTokenTTL() time.Duration
}

type Config struct {
	SecretKey  string
	TokenTTL   time.Duration
	BcryptCost int
	Issuer     string
}

// JWTAuthService implements Service with bcrypt hashes and HS256 tokens.
type JWTAuthService struct {
	cfg Config
}

func NewService(cfg Config) *JWTAuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	return &JWTAuthService{cfg: cfg}
}

func (s *JWTAuthService) HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (s *JWTAuthService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *JWTAuthService) CreateAccessToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *JWTAuthService) DecodeToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// accept HMAC only
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidatePasswordStrength checks the registration password policy and
// returns the first violated rule as the message.
func (s *JWTAuthService) ValidatePasswordStrength(password string) (bool, string) {
	if len(password) < 8 {
		return false, "password must be at least 8 characters long"
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(specialChars, c):
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return false, "password must contain at least one uppercase letter"
	case !hasLower:
		return false, "password must contain at least one lowercase letter"
	case !hasDigit:
		return false, "password must contain at least one number"
	case !hasSpecial:
		return false, "password must contain at least one special character"
	}
	return true, ""
}

func (s *JWTAuthService) AccessTokenTTL() time.Duration {
	return s.cfg.TokenTTL
}
