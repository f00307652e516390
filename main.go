// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/star-wars-characters/characters"
	"github.com/danielhkuo/star-wars-characters/cliparse"
	"github.com/danielhkuo/star-wars-characters/db"
	"github.com/danielhkuo/star-wars-characters/middleware"
	"github.com/danielhkuo/star-wars-characters/router"
	"github.com/danielhkuo/star-wars-characters/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the action journal
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// One store for the life of the process, loading until the first fetch
	s := store.New(store.Reduce, store.InitialState())
	actionLog := db.NewActionLog(dbConn)
	s.Observe(actionLog.Observer(s))

	client := characters.NewClient(cfg.Endpoint, nil)
	slog.Info("Character API", "endpoint", client.Endpoint(), "session_id", s.ID())

	// Create router
	mux := router.NewRouter(router.Deps{
		Store:   s,
		Source:  client,
		Journal: actionLog,
	})

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
