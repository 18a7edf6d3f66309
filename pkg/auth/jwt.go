package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(personaID, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("grid-dev-secret")

// SetSecret replaces the signing key. Called once at startup before any
// request is served.
func SetSecret(secret string) {
	secretKey = []byte(secret)
}

type Claims struct {
	PersonaID string `json:"persona_id"`
	Role      string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(personaID, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		PersonaID: personaID,
		Role:      role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "gridcore",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.PersonaID == "" || claims.Issuer != "gridcore" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
