package probe

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/handlers/common"
)

func newLiveness() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Runs liveness probes

In addition to the readiness probes this fetches the
network configuration of every chain listed in
SERVER_MANAGEMENT_PROBE_CHAINS, bounded by
SERVER_MANAGEMENT_LIVENESS_TIMEOUT.`,
		Run: func(cmd *cobra.Command, _ []string /* args */) {
			runProbe(cmd, flags, common.ProbeKeystore, probeNetworksWithTimeout)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func probeNetworksWithTimeout(ctx context.Context, s *api.Server) (string, []error) {
	timeout := s.Config.Management.LivenessTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return common.ProbeNetworks(ctx, s)
}
