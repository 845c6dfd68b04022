package main

import (
	"context"
	"flag"
	"os"

	"vidshare/internal/config"
	"vidshare/internal/database"
	"vidshare/internal/logging"
	"vidshare/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of random users")
	flag.IntVar(&opts.Videos, "videos", opts.Videos, "number of videos")
	flag.IntVar(&opts.Interactions, "interactions", opts.Interactions, "number of random interactions")
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	cfg := config.LoadConfig()
	logging.Init(cfg.Logging.Level, cfg.Logging.Format, "vidshare-seed")

	db, err := database.NewConnection(cfg)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logging.Logger.Fatal().Err(err).Msg("migration failed")
	}

	if _, err := seed.New(db, opts.Seed).Run(context.Background(), opts); err != nil {
		logging.Logger.Error().Err(err).Msg("seeding failed")
		database.Close(db)
		os.Exit(1)
	}
}
