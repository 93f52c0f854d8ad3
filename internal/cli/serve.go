// serve.go implements "flashdeck serve", exposing the local decks over HTTP.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flashdeck-dev/flashdeck/internal/deckapi"
	"github.com/flashdeck-dev/flashdeck/internal/log"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local decks over HTTP",
	Long: `Start the deck API so other flashdeck clients can study these decks
with --remote. Serves GET /api/decks and GET /api/decks/{id}/cards.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if env.cfg.Remote.URL != "" {
		return fmt.Errorf("serve reads the local database; unset --remote")
	}

	addr := env.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := env.openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := deckapi.NewServer(s).HTTPServer(addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	env.logger.Record(log.LogEvent{Event: log.EventServerStarted, Addr: addr})
	fmt.Fprintf(cmd.OutOrStdout(), "Serving decks on http://%s (Ctrl+C to stop)\n", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
