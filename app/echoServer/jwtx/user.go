// app/echoServer/jwtx/user.go
package jwtx

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func claims(c echo.Context) (jwt.MapClaims, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("no jwt token in context")
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	return mc, nil
}

func EmailFromContext(c echo.Context) (string, error) {
	mc, err := claims(c)
	if err != nil {
		return "", err
	}
	if s, ok := mc["email"].(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("email missing in claims")
}

// IsAdmin reports whether the verified token carries the admin role.
func IsAdmin(c echo.Context) bool {
	mc, err := claims(c)
	if err != nil {
		return false
	}
	if s, ok := mc["userType"].(string); ok {
		return s == "admin"
	}
	return false
}

// RawToken returns the caller's bearer token as sent, so it can be
// forwarded to the upstream catalog API. Empty for anonymous requests.
func RawToken(c echo.Context) string {
	h := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if h == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[len("bearer "):])
	}
	return h
}
