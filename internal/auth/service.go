package auth

import (
	"context"

	"vidshare/internal/common"
	"vidshare/internal/user"
)

// The development profile every /auth token is issued for.
const (
	DevUsername  = "testUser"
	DevAvatarURL = "https://avatar.iran.liara.run/public"
)

type Service interface {
	// IssueDevToken signs a token for the development profile, creating its
	// user row on first use.
	IssueDevToken(ctx context.Context) (string, error)
}

type authService struct {
	users  user.UserRepository
	issuer common.TokenIssuer
}

func NewService(users user.UserRepository, issuer common.TokenIssuer) Service {
	return &authService{users: users, issuer: issuer}
}

func (s *authService) IssueDevToken(ctx context.Context) (string, error) {
	// nothing is written when the token could not be signed anyway
	if err := s.issuer.Ready(); err != nil {
		return "", err
	}

	avatar := DevAvatarURL
	u, err := s.users.EnsureUser(ctx, DevUsername, &avatar)
	if err != nil {
		return "", err
	}

	id := common.Identity{ID: u.ID, Username: u.Username}
	if u.AvatarURL != nil {
		id.AvatarURL = *u.AvatarURL
	}
	return s.issuer.GenerateToken(id)
}
