package main

import (
	"context"
	"fmt"
	"os"

	"timebot/internal/cli"
	"timebot/internal/config"
	"timebot/internal/logging"
	"timebot/internal/remote"
	"timebot/internal/repository/sqlite"
	"timebot/internal/store"
	"timebot/internal/submission"
)

func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the local snapshot repository
	if err := os.MkdirAll(cfg.Cache.Dir, os.FileMode(cfg.Cache.DirPermissions)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating cache directory: %v\n", err)
		os.Exit(1)
	}
	repo, err := sqlite.New(cfg.GetCachePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create the remote service client
	service := remote.NewClient(cfg.API.BaseURL, cfg.API.Timeout, remote.StaticToken(cfg.API.Token))

	// Create the store with snapshot persistence
	timecards := store.NewTimecardStore(service, store.NewSnapshotPersister(repo, cfg.Cache.StoreName))

	// Create context with timeout for the application
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	// Hydrate the cache so previously fetched data is available offline
	if err := timecards.LoadSnapshot(ctx); err != nil {
		logging.Debugf("main: snapshot load failed, starting empty: %v\n", err)
	}

	workflow := submission.NewWorkflow(timecards, cfg.Policy.DefaultStartTime, cfg.Policy.DefaultEndTime)

	root := cli.NewRootCommand(timecards, workflow, service, cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
