package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidshare/internal/common"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	AvatarURL *string   `gorm:"column:avatar_url;size:512" json:"avatarUrl"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Video struct {
	ID          string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	VideoURL    string         `gorm:"column:video_url;size:1024;not null" json:"videoUrl"`
	UserID      string         `gorm:"type:char(36);not null;index" json:"userId"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
	Metadata    *VideoMetadata `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"metadata,omitempty"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VideoMetadata is created together with its Video and never on its own.
type VideoMetadata struct {
	ID           string `gorm:"primaryKey;type:char(36)" json:"id"`
	Label        string `gorm:"size:255" json:"label"`
	ThumbnailURL string `gorm:"column:thumbnail_url;size:1024" json:"thumbnailUrl"`
	VideoID      string `gorm:"type:char(36);uniqueIndex;not null" json:"-"`
}

func (VideoMetadata) TableName() string {
	return "video_metadata"
}

func (m *VideoMetadata) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type Interaction struct {
	ID        string                 `gorm:"primaryKey;type:char(36)" json:"id"`
	Type      common.InteractionType `gorm:"type:varchar(16);not null;index:idx_interactions_video_type,priority:2" json:"type"`
	Content   *string                `gorm:"type:text" json:"content,omitempty"`
	UserID    string                 `gorm:"type:char(36);not null;index" json:"userId"`
	VideoID   string                 `gorm:"type:char(36);not null;index:idx_interactions_video_type,priority:1" json:"videoId"`
	CreatedAt time.Time              `gorm:"autoCreateTime" json:"createdAt"`

	// LikeKey is only set for likes; NULLs do not collide in a unique index,
	// so comments and views stay unlimited.
	LikeKey *string `gorm:"column:like_key;size:80;uniqueIndex" json:"-"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video *Video `gorm:"foreignKey:VideoID" json:"-"`
}

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Type == common.InteractionLike {
		key := LikeKey(i.UserID, i.VideoID)
		i.LikeKey = &key
	} else {
		i.LikeKey = nil
	}
	return nil
}

func LikeKey(userID, videoID string) string {
	return userID + ":" + videoID
}

// Models lists every table, in dependency order, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Video{},
		&VideoMetadata{},
		&Interaction{},
	}
}
