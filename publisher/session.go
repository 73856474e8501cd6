package publisher

import (
	"context"
	"errors"
	"strings"
)

// ErrNoSession is returned when no storefront credentials are available
var ErrNoSession = errors.New("no storefront session available")

// Session is an offline access session for one store
type Session struct {
	Shop        string
	AccessToken string
}

// SessionStore loads the session used for publishing
type SessionStore interface {
	Load(ctx context.Context) (*Session, error)
}

// StaticSessionStore serves a single session fixed at startup
type StaticSessionStore struct {
	Shop        string
	AccessToken string
}

// Load returns the configured session or ErrNoSession when shop or token is missing
func (s StaticSessionStore) Load(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	shop := strings.TrimSpace(s.Shop)
	token := strings.TrimSpace(s.AccessToken)
	if shop == "" || token == "" {
		return nil, ErrNoSession
	}
	return &Session{Shop: shop, AccessToken: token}, nil
}
