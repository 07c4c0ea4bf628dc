package principal

import (
	"context"
	"net/http"

	apperrors "paintly/pkg/errors"
)

const (
	RolePainter  = "painter"
	RoleCustomer = "customer"

	HeaderID   = "X-Principal-Id"
	HeaderRole = "X-Principal-Role"
)

// Principal is the authenticated identity attached to every request by the
// upstream auth layer. Token issuance and verification live outside this
// service; the gateway forwards the resolved identity in headers.
type Principal struct {
	ID   string
	Role string
}

type contextKey struct{}

func IntoContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// FromRequest extracts the forwarded principal, rejecting requests without
// one or with an unknown role.
func FromRequest(r *http.Request) (Principal, error) {
	id := r.Header.Get(HeaderID)
	role := r.Header.Get(HeaderRole)

	if id == "" {
		return Principal{}, apperrors.Unauthorized("Missing principal identity")
	}
	if role != RolePainter && role != RoleCustomer {
		return Principal{}, apperrors.Unauthorized("Unknown principal role")
	}

	return Principal{ID: id, Role: role}, nil
}

// Require extracts the principal and enforces a role.
func Require(r *http.Request, role string) (Principal, error) {
	p, err := FromRequest(r)
	if err != nil {
		return Principal{}, err
	}
	if p.Role != role {
		return Principal{}, apperrors.Forbidden("Operation not permitted for this role")
	}
	return p, nil
}
