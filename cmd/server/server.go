package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/router"
	"github/chapool/mvx-signer/internal/util/command"
	"github/chapool/mvx-signer/internal/wallet"
	"golang.org/x/term"
)

const shutdownTimeout = 30 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the stateless RESTful JSON server

Unlocks the keystore (prompting for its password unless
SERVER_SIGNER_KEYSTORE_PASSWORD is set), then serves the
JSON-RPC endpoint and the confirmation queue.
Requires configuration through ENV or --config.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			runServer(cmd)
		},
	}
}

func runServer(cmd *cobra.Command) {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	command.ConfigureLogger(cfg.Logger)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	var prompt wallet.PasswordPrompt
	if term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec
		prompt = wallet.TerminalPrompt
	}

	if err := s.Unlock(cmd.Context(), prompt); err != nil {
		log.Fatal().Err(err).Msg("Failed to unlock wallet")
	}

	if err := router.Init(s); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize router")
	}

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	log.Info().Str("address", cfg.Echo.ListenAddress).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	log.Info().Msg("Server shut down")
}
