package utils

import (
	"errors"
	"os"
	"time"

	"terapiku/models"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "terapiku-dev"
	}
	return secret
}

// GenerateToken creates a signed JWT token carrying the user's id, display
// name and role. The token expires after the specified duration.
func GenerateToken(subject, name, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"name": name,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractUserFromToken extracts the acting user's identity from a valid JWT
// token string. The identity is used for audit stamping only.
func ExtractUserFromToken(tokenString string) (models.User, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.User{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.User{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.User{}, errors.New("token does not contain a valid 'sub' claim")
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return models.User{ID: sub, Name: name, Role: role}, nil
}
