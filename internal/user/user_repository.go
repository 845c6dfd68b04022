package user

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vidshare/internal/database"
)

// UserRepository covers the user rows this service needs. Users come from the
// seed utility or the dev auth endpoint; there is no registration flow.
type UserRepository interface {
	CreateUser(ctx context.Context, user *database.User) error
	// EnsureUser returns the user with the given username, creating it with
	// avatarURL when missing.
	EnsureUser(ctx context.Context, username string, avatarURL *string) (*database.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *database.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) EnsureUser(ctx context.Context, username string, avatarURL *string) (*database.User, error) {
	var user database.User
	err := r.db.WithContext(ctx).
		Where(database.User{Username: username}).
		Attrs(database.User{AvatarURL: avatarURL}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("ensure user %q: %w", username, err)
	}
	return &user, nil
}
