package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/config"
	"github/chapool/mvx-signer/internal/util"
)

const (
	shutdownTimeout = 30 * time.Second
)

// NewSubcommandGroup returns a command only grouping the given subcommands.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s related subcommands", use),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

const ConfigFlag = "config"

// ConfigFromFlags returns the ENV based config merged with the file given by the persistent
// --config flag, if any.
func ConfigFromFlags(cmd *cobra.Command) (config.Server, error) {
	cfg := config.DefaultServiceConfigFromEnv()

	// absent on commands not attached to the root command
	path, _ := cmd.Flags().GetString(ConfigFlag)
	if path == "" {
		return cfg, nil
	}

	if err := config.LoadFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ConfigureLogger applies the logger config to the global zerolog instance.
func ConfigureLogger(cfg config.LoggerServer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Level)

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = "15:04:05"
		}))
	}

	if cfg.LogCaller {
		log.Logger = log.With().Caller().Logger()
	}
}

// WithServer initializes a server from config and runs f with it. The server is shut down
// once f returns; the error of f is returned as is.
func WithServer(ctx context.Context, config config.Server, f func(ctx context.Context, s *api.Server) error) error {
	start := time.Now()

	ConfigureLogger(config.Logger)

	s, err := api.InitNewServer(config)
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	err = f(ctx, s)

	log.Debug().Dur("duration", time.Since(start)).Msg("Command finished")

	return err
}
