// Package util contains any functions used across the application that
// don't match any other package
package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// AuthTokenTTL is the validity window of issued bearer tokens and the
// max age of the cookie carrying them
const AuthTokenTTL = 24 * time.Hour

var ErrNoSecret = errors.New("jwt.secret is not set")

// MakeAuthToken signs a bearer token carrying the identity claims of u
// as they are at the time of issuance
func MakeAuthToken(u *model.User) (string, error) {
	secret := viper.GetString("jwt.secret")
	if secret == "" {
		return "", ErrNoSecret
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    u.ID.String(),
		"email": u.Email,
		"role":  string(u.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(AuthTokenTTL).Unix(),
	})

	return t.SignedString([]byte(secret))
}

// ParseAuthToken verifies the signature and expiry of a bearer token
// and returns its claims
func ParseAuthToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return claims, nil
}
