// Package seed fills a database with synthetic users, videos and
// interactions for local development.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"vidshare/internal/auth"
	"vidshare/internal/common"
	"vidshare/internal/database"
	"vidshare/internal/interaction"
	"vidshare/internal/logging"
	"vidshare/internal/user"
	"vidshare/internal/video"
)

type Options struct {
	Users        int
	Videos       int
	Interactions int
	// Seed makes the generated data reproducible; 0 picks a random seed.
	Seed int64
}

func DefaultOptions() Options {
	return Options{Users: 5, Videos: 10, Interactions: 50}
}

// Result counts the rows a run inserted.
type Result struct {
	Users        int
	Videos       int
	Interactions int
	SkippedLikes int
}

type Seeder struct {
	users        user.UserRepository
	videos       video.Repository
	interactions interaction.Repository
	faker        *gofakeit.Faker
}

func New(db *gorm.DB, seed int64) *Seeder {
	return &Seeder{
		users:        user.NewUserRepository(db),
		videos:       video.NewRepository(db),
		interactions: interaction.NewRepository(db),
		faker:        gofakeit.New(seed),
	}
}

// Run upserts the development user and inserts opts.Users users, opts.Videos
// videos owned by random users and opts.Interactions random interactions. A
// like that would duplicate an existing one is skipped.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	avatar := auth.DevAvatarURL
	devUser, err := s.users.EnsureUser(ctx, auth.DevUsername, &avatar)
	if err != nil {
		return res, err
	}
	users := []*database.User{devUser}

	for i := 0; i < opts.Users; i++ {
		u := s.fakeUser(i)
		if err := s.users.CreateUser(ctx, u); err != nil {
			return res, err
		}
		users = append(users, u)
		res.Users++
	}

	videos := make([]*database.Video, 0, opts.Videos)
	for i := 0; i < opts.Videos; i++ {
		v := s.fakeVideo(users[s.faker.Number(0, len(users)-1)].ID)
		if err := s.videos.CreateVideo(ctx, v); err != nil {
			return res, err
		}
		videos = append(videos, v)
		res.Videos++
	}
	if len(videos) == 0 {
		return res, nil
	}

	types := common.InteractionTypes()
	for i := 0; i < opts.Interactions; i++ {
		in := &database.Interaction{
			Type:    types[s.faker.Number(0, len(types)-1)],
			UserID:  users[s.faker.Number(0, len(users)-1)].ID,
			VideoID: videos[s.faker.Number(0, len(videos)-1)].ID,
		}
		if in.Type.AllowsContent() {
			content := s.faker.Sentence(s.faker.Number(3, 12))
			in.Content = &content
		}

		err := s.interactions.CreateInteraction(ctx, in)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			res.SkippedLikes++
			continue
		}
		if err != nil {
			return res, err
		}
		res.Interactions++
	}

	logging.Logger.Info().
		Int("users", res.Users).
		Int("videos", res.Videos).
		Int("interactions", res.Interactions).
		Int("skipped_likes", res.SkippedLikes).
		Msg("seed complete")
	return res, nil
}

func (s *Seeder) fakeUser(i int) *database.User {
	avatar := fmt.Sprintf("https://avatar.iran.liara.run/public/%d", s.faker.Number(1, 100))
	return &database.User{
		// suffix keeps generated names unique within a run
		Username:  fmt.Sprintf("%s_%d_%s", s.faker.Username(), i, s.faker.LetterN(4)),
		AvatarURL: &avatar,
	}
}

func (s *Seeder) fakeVideo(ownerID string) *database.Video {
	return &database.Video{
		Title:       s.faker.Sentence(s.faker.Number(2, 6)),
		Description: s.faker.Paragraph(1, 3, 12, " "),
		VideoURL:    s.faker.URL() + "/" + s.faker.UUID() + ".mp4",
		UserID:      ownerID,
		Metadata: &database.VideoMetadata{
			Label:        s.faker.Word(),
			ThumbnailURL: s.faker.ImageURL(640, 360),
		},
	}
}
