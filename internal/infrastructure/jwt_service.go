package infrastructure

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"realty-server/internal/apperr"
	"realty-server/internal/domain/entities"
)

// AuthClaims is validated once at decode time; no handler re-casts token
// fields afterwards.
type AuthClaims struct {
	AccountId uuid.UUID     `json:"accountId"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Role      entities.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewJWTService(secretKey string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (j *JWTService) GenerateToken(account *entities.Account) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		AccountId: account.Id,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ParseToken verifies signature and expiry. A missing, malformed or
// expired token is the same failure to the caller.
func (j *JWTService) ParseToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthenticated("invalid or expired token")
	}
	if _, err := entities.ParseRole(string(claims.Role)); err != nil {
		return nil, apperr.Unauthenticated("invalid or expired token")
	}
	return claims, nil
}
