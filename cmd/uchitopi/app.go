package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/database"
	"github.com/dukerupert/uchitopi/internal/feed"
	"github.com/dukerupert/uchitopi/internal/service"
	"github.com/dukerupert/uchitopi/internal/store"
)

// app holds the stores and services one command runs against. Every write
// is published to the hub and logged when the command finishes.
type app struct {
	db      *sql.DB
	hub     *feed.Hub
	changes *feed.Subscription
	svc     *service.Services
	logger  *slog.Logger
}

func openApp(cfg config.Config, logger *slog.Logger) (*app, error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	hub := feed.NewHub(cfg.FeedBuffer, logger.With("component", "feed"))
	docs := store.NewDocumentStore(db, hub)
	repos := store.NewRepositories(docs)
	tokens := store.NewPushTokenStore(db)

	return &app{
		db:      db,
		hub:     hub,
		changes: hub.Subscribe(""),
		svc:     service.New(repos, tokens, cfg.InviteTTL, logger),
		logger:  logger,
	}, nil
}

// Close logs the changes the command made and closes the database.
func (a *app) Close() error {
	a.changes.Close()
	for c := range a.changes.C() {
		a.logger.Info("document changed", "type", c.Type, "id", c.ID, "family_id", c.FamilyID)
	}
	return a.db.Close()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
