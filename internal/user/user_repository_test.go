package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidshare/internal/database"
	"vidshare/internal/testsupport"
)

func TestUserRepository_EnsureUser(t *testing.T) {
	db := testsupport.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	avatar := "https://avatar.iran.liara.run/public"
	first, err := repo.EnsureUser(ctx, "testUser", &avatar)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.NotNil(t, first.AvatarURL)
	assert.Equal(t, avatar, *first.AvatarURL)

	other := "https://elsewhere.example.com/a.png"
	second, err := repo.EnsureUser(ctx, "testUser", &other)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, avatar, *second.AvatarURL, "existing rows are not updated")

	var count int64
	require.NoError(t, db.Model(&database.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_EnsureUserKeepsExistingRow(t *testing.T) {
	db := testsupport.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &database.User{Username: "alice"}
	require.NoError(t, repo.CreateUser(ctx, u))

	avatar := "https://avatar.example.com/alice.png"
	got, err := repo.EnsureUser(ctx, "alice", &avatar)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Nil(t, got.AvatarURL)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := testsupport.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &database.User{Username: "alice"}))
	assert.Error(t, repo.CreateUser(ctx, &database.User{Username: "alice"}))
}

func TestUserRepository_DBError(t *testing.T) {
	db, mock := testsupport.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnError(errors.New("db is down"))

	_, err := repo.EnsureUser(context.Background(), "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensure user")
	assert.Contains(t, err.Error(), "db is down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
