package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/broadcast-service/internal/model"
)

var ErrNoSecret = errors.New("jwt secret is not configured")

type Generator struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (g *Generator) GenerateAccessToken(principal *model.Principal) (string, int64, error) {
	if len(g.secret) == 0 {
		return "", 0, ErrNoSecret
	}

	now := time.Now()
	expiresAt := now.Add(g.ttl)

	claims := model.PrincipalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.AuthID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		BroadcastID: principal.BroadcastID,
		Info:        principal.Info,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateAccessToken(tokenString string) (*model.Principal, error) {
	if len(g.secret) == 0 {
		return nil, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &model.PrincipalClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse access JWT token: %w", err)
	}

	claims, ok := token.Claims.(*model.PrincipalClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid access JWT token")
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("access JWT token has no subject")
	}

	return &model.Principal{
		AuthID:      claims.Subject,
		BroadcastID: claims.BroadcastID,
		Info:        claims.Info,
	}, nil
}
