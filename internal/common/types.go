package common

import (
	"context"
)

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.ID == "" {
		return Identity{}, false
	}
	return id, true
}

// Stats are per-video interaction counts.
type Stats struct {
	Likes    int64 `json:"likes"`
	Views    int64 `json:"views"`
	Comments int64 `json:"comments"`
}

// Add folds one grouped count into the stats; unknown types are ignored.
func (s *Stats) Add(t InteractionType, n int64) {
	switch t {
	case InteractionLike:
		s.Likes = n
	case InteractionView:
		s.Views = n
	case InteractionComment:
		s.Comments = n
	}
}

// MessageResponse is the body of every error and informational reply.
type MessageResponse struct {
	Status  int          `json:"status,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}
