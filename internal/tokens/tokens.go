package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims é o conteúdo relevante de um token de sessão.
type Claims struct {
	UserID    uint
	IsAdmin   bool
	JTI       string
	ExpiresAt time.Time
}

// Issue assina um token HS256 com identificador único (jti) para
// permitir revogação no logout.
func Issue(userID uint, isAdmin bool, secret string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":   userID,
		"admin": isAdmin,
		"jti":   uuid.NewString(),
		"exp":   now.Add(TokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida a assinatura e extrai as claims usadas pela aplicação.
func Parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	isAdmin, _ := mapClaims["admin"].(bool)
	jti, _ := mapClaims["jti"].(string)

	var expiresAt time.Time
	if exp, ok := mapClaims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	return &Claims{
		UserID:    uint(sub),
		IsAdmin:   isAdmin,
		JTI:       jti,
		ExpiresAt: expiresAt,
	}, nil
}
