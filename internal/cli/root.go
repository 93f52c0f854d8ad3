// Package cli defines Cobra command definitions for the flashdeck CLI.
// This file contains the root command, version flag, and shared setup.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/flashdeck-dev/flashdeck/internal/config"
	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/deckapi"
	"github.com/flashdeck-dev/flashdeck/internal/log"
	"github.com/flashdeck-dev/flashdeck/internal/store"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
	"github.com/flashdeck-dev/flashdeck/internal/tui/app"
)

var (
	remoteURL string
	dbPath    string
	version   = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Study flashcard decks in the terminal",
	Long: `Flashdeck lists your flashcard decks and runs study sessions that
flip each card front to back and step through the deck. Decks live in a
local SQLite database or on a remote flashdeck server.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a terminal there is nothing to draw; show help instead.
		if !tui.IsTTY() {
			return cmd.Help()
		}
		return runTUI(commandContext(cmd), 0)
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "Base URL of a flashdeck server to read decks from")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the local deck database")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
}

// environment is everything a command needs from the project directory.
type environment struct {
	root   string
	cfg    *config.Config
	logger *log.Logger
}

// loadEnvironment reads config for the working directory and applies the
// persistent flag overrides.
func loadEnvironment() (*environment, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if remoteURL != "" {
		cfg.Remote.URL = remoteURL
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	logger, err := log.NewLogger(root)
	if err != nil {
		// The event log is best-effort; run without it.
		fmt.Fprintf(os.Stderr, "Warning: event log disabled: %v\n", err)
		logger = nil
	}

	return &environment{root: root, cfg: cfg, logger: logger}, nil
}

// openRepository returns the remote client when a remote URL is configured
// and the local store otherwise. The returned close func is never nil.
func (e *environment) openRepository(ctx context.Context) (deck.Repository, func(), error) {
	if e.cfg.Remote.URL != "" {
		client, err := deckapi.NewClient(e.cfg.Remote.URL, time.Duration(e.cfg.Remote.TimeoutMs)*time.Millisecond)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}

	s, err := e.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}

// openStore opens the local database, creating .flashdeck/ as needed.
func (e *environment) openStore(ctx context.Context) (*store.Store, error) {
	path := e.cfg.DatabasePath(e.root)
	if err := os.MkdirAll(config.Dir(e.root), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	s, err := store.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("opening deck database %s: %w", path, err)
	}
	return s, nil
}

// runTUI launches the interactive app, optionally straight into a deck.
func runTUI(ctx context.Context, startDeck int64) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	repo, closeRepo, err := env.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	return tui.Run(app.New(env.cfg, repo, env.logger, startDeck))
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// withTimeout derives a request context from the command's context.
func withTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(commandContext(cmd), d)
}
