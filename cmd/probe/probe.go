package probe

import (
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/internal/util/command"
)

const (
	verboseFlag string = "verbose"
)

type Flags struct {
	Verbose bool
}

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}
