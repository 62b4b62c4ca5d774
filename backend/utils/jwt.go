package utils

import (
	"errors"
	"strings"
	"time"

	"quizbuilder/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateJWTToken issues a token whose subject is the user's email.
func GenerateJWTToken(email string, cfg *config.Config) (string, error) {
	return generateJWTTokenAt(email, cfg, time.Now())
}

func generateJWTTokenAt(email string, cfg *config.Config, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken validates signature and expiry and returns the subject email.
// Every failure maps to ErrInvalidToken.
func ParseToken(tokenString string, cfg *config.Config) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// ExtractEmailFromToken reads the Authorization header ("Bearer <token>" or a
// bare token) and returns the token subject.
func ExtractEmailFromToken(c *fiber.Ctx, cfg *config.Config) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return ParseToken(header, cfg)
}
