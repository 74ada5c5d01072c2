package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymweeks/pkg"
)

var ErrNoSession = fmt.Errorf("no session: %w", pkg.ErrPermissionDenied)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}

// Session is the authenticated caller of a request.
type Session struct {
	ID        string    `json:"-"`
	UserID    int       `json:"userId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

type sessionCtxKey struct{}

func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}

// RequireSession returns the session of the request. If there is none, it
// writes an error response and returns false.
func RequireSession(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.WriteErrorResponse(w, ErrNoSession)
		return nil, false
	}
	return s, true
}
