// Package auth is the boundary to the external identity provider: it
// tells the orchestrators whether a caller is signed in and yields the
// bearer credential attached to every authenticated upstream call.
package auth

import (
	"context"
	"errors"
)

type TokenSource interface {
	IsAuthenticated() bool
	Token(ctx context.Context) (string, error)
}

type staticSource struct{ token string }

// Static wraps an already-issued bearer token, e.g. the one forwarded
// by the caller of this service.
func Static(token string) TokenSource { return staticSource{token: token} }

// Anonymous is the source for signed-out page views.
func Anonymous() TokenSource { return staticSource{} }

func (s staticSource) IsAuthenticated() bool { return s.token != "" }

func (s staticSource) Token(context.Context) (string, error) {
	if s.token == "" {
		return "", errors.New("auth: no credential for anonymous session")
	}
	return s.token, nil
}
