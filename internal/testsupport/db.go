// Package testsupport holds helpers shared by package tests: an in-memory
// SQLite database with the full schema, a sqlmock-backed gorm handle, and
// row factories.
package testsupport

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vidshare/internal/common"
	"vidshare/internal/config"
	"vidshare/internal/database"
)

// NewSQLiteDB opens a private in-memory database and migrates every model.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared&_fk=1",
		},
		Logging: config.LoggingConfig{Level: "error"},
	}

	db, err := database.NewConnection(cfg)
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		database.Close(db)
	})
	return db
}

// NewMockDB returns a gorm handle on the MySQL dialect backed by sqlmock.
func NewMockDB(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return gormDB, mock
}

// CreateUser inserts a user with the given name.
func CreateUser(t testing.TB, db *gorm.DB, username string) *database.User {
	t.Helper()
	avatar := "https://avatar.example.com/" + username + ".png"
	u := &database.User{Username: username, AvatarURL: &avatar}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateVideo inserts a video with metadata owned by owner.
func CreateVideo(t testing.TB, db *gorm.DB, owner *database.User, title string) *database.Video {
	t.Helper()
	v := &database.Video{
		Title:       title,
		Description: "about " + title,
		VideoURL:    "https://cdn.example.com/" + uuid.NewString() + ".mp4",
		UserID:      owner.ID,
		Metadata: &database.VideoMetadata{
			Label:        "label",
			ThumbnailURL: "https://cdn.example.com/thumb.png",
		},
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

// CreateInteraction inserts a raw interaction row.
func CreateInteraction(t testing.TB, db *gorm.DB, typ common.InteractionType, user *database.User, video *database.Video, content *string) *database.Interaction {
	t.Helper()
	in := &database.Interaction{
		Type:    typ,
		UserID:  user.ID,
		VideoID: video.ID,
		Content: content,
	}
	require.NoError(t, db.Create(in).Error)
	return in
}
