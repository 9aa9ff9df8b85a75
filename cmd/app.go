package cmd

import (
	"fmt"
	"strconv"

	"github.com/anidex-cli/anidex/jikan"
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/network"
	"github.com/anidex-cli/anidex/query"
	"github.com/anidex-cli/anidex/repository"
	"github.com/anidex-cli/anidex/store"
	"github.com/anidex-cli/anidex/where"
)

// app bundles the cache and the repository built on top of it.
type app struct {
	store *store.Store
	repo  *repository.Repository
}

func openApp() (*app, error) {
	db, err := store.Open(where.Database())
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	probe, err := network.ProbeFromConfig()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := repository.New(jikan.NewFromConfig(), db, probe, repository.WithHistory(query.History{}))
	return &app{store: db, repo: repo}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Warn(err)
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid anime id: %s", arg)
	}
	return id, nil
}
