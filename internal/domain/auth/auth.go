// Package auth implements token authentication and role-based
// authorization as an ordered pipeline of checks: token presence,
// directory lookup, then an optional capability check. Each step is a
// pure function of its input and the injected directory; the pipeline
// short-circuits on the first failure.
package auth

import "context"

// Role is the closed set of authorization tiers.
type Role int

const (
	// RoleUser is the default tier with no administrative capabilities.
	RoleUser Role = iota
	// RoleAdmin grants all capabilities.
	RoleAdmin
)

// String returns the wire representation of the role.
func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "user"
}

// MarshalText implements encoding.TextMarshaler so roles serialize as
// "admin"/"user" in JSON bodies.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Capability names a guarded operation. Handlers ask whether a role holds
// a capability instead of comparing role strings.
type Capability int

const (
	// CapAdminPanel guards the admin panel view.
	CapAdminPanel Capability = iota
	// CapManageUsers guards destructive user-directory operations.
	CapManageUsers
)

// Can reports whether the role holds the capability.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapAdminPanel, CapManageUsers:
		return r == RoleAdmin
	default:
		return false
	}
}

// Principal is an authenticated identity resolved from a bearer token.
type Principal struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Directory resolves opaque bearer tokens to principals. Lookups are
// read-only; tokens carry no expiry or signature.
type Directory interface {
	Resolve(ctx context.Context, token string) (Principal, bool)
}

// step is one stage of the authentication pipeline. A step either passes
// the request through or terminates it with an error.
type step func(ctx context.Context, token string) error

// Verifier runs the authentication pipeline against a directory.
type Verifier struct {
	dir   Directory
	chain []step
}

// NewVerifier builds a verifier over dir with the fixed check order:
// presence before lookup, since lookup presupposes a token.
func NewVerifier(dir Directory) *Verifier {
	v := &Verifier{dir: dir}
	v.chain = []step{v.checkPresence, v.checkKnown}
	return v
}

func (v *Verifier) checkPresence(_ context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}
	return nil
}

func (v *Verifier) checkKnown(ctx context.Context, token string) error {
	if _, ok := v.dir.Resolve(ctx, token); !ok {
		return ErrUnauthenticated
	}
	return nil
}

// Authenticate runs the pipeline left to right and returns the resolved
// principal, or the first failing step's error.
func (v *Verifier) Authenticate(ctx context.Context, token string) (Principal, error) {
	for _, s := range v.chain {
		if err := s(ctx, token); err != nil {
			return Principal{}, err
		}
	}
	p, _ := v.dir.Resolve(ctx, token)
	return p, nil
}

// Authorize extends the pipeline with a capability check. Authentication
// failures surface as ErrUnauthenticated, capability failures as
// ErrForbidden; the order is fixed because a role check presupposes a
// resolved identity.
func (v *Verifier) Authorize(ctx context.Context, token string, c Capability) (Principal, error) {
	p, err := v.Authenticate(ctx, token)
	if err != nil {
		return Principal{}, err
	}
	if !p.Role.Can(c) {
		return Principal{}, ErrForbidden
	}
	return p, nil
}
