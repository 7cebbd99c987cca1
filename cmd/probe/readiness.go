package probe

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/handlers/common"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/util/command"
)

func newReadiness() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Runs readiness probes

This command checks the keystore the same way /-/ready
does (apart from the unlocked wallet, which only exists
inside the running server) and prints the results to
stdout. Fails with non zero exitcode on encountered errors.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			runProbe(cmd, flags, common.ProbeKeystore)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

type probeFunc func(ctx context.Context, s *api.Server) (string, []error)

func runProbe(cmd *cobra.Command, flags Flags, probes ...probeFunc) {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	err = command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		log := util.LogFromContext(ctx)

		var errs []error
		for _, p := range probes {
			str, probeErrs := p(ctx, s)
			errs = append(errs, probeErrs...)

			if flags.Verbose {
				fmt.Fprint(cmd.OutOrStdout(), str)
			}
		}

		if len(errs) > 0 {
			log.Fatal().Errs("errs", errs).Msg("Unhealthy.")
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run probes")
	}
}
