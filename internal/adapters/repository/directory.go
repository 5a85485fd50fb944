package repository

import (
	"context"
	"sync"

	"github.com/hansik/baedal/internal/domain/auth"
)

// TokenDirectory implements Tokens over a static in-memory table keyed
// by opaque bearer token. Tokens map 1:1 to principals; there is no
// expiry, signature, or revocation beyond explicit deletion.
type TokenDirectory struct {
	mu    sync.RWMutex
	byTok map[string]auth.Principal
}

// DirectoryOption applies a configuration option to the TokenDirectory.
type DirectoryOption func(*TokenDirectory)

// WithPrincipals seeds the directory with token -> principal entries.
func WithPrincipals(seed map[string]auth.Principal) DirectoryOption {
	return func(d *TokenDirectory) {
		for tok, p := range seed {
			d.byTok[tok] = p
		}
	}
}

// NewTokenDirectory creates a token directory, empty unless seeded.
func NewTokenDirectory(opts ...DirectoryOption) *TokenDirectory {
	d := &TokenDirectory{byTok: make(map[string]auth.Principal)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Resolve looks up the principal for a token.
func (d *TokenDirectory) Resolve(_ context.Context, token string) (auth.Principal, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.byTok[token]
	return p, ok
}

// Delete removes the principal with the given username along with its
// token. Returns ErrNotFound when the username is unknown.
func (d *TokenDirectory) Delete(_ context.Context, username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for tok, p := range d.byTok {
		if p.Username == username {
			delete(d.byTok, tok)
			return nil
		}
	}
	return ErrNotFound
}

// Len returns the number of known principals.
func (d *TokenDirectory) Len(_ context.Context) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byTok)
}
