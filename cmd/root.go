package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mvx-signer/cmd/env"
	"github/chapool/mvx-signer/cmd/keystore"
	"github/chapool/mvx-signer/cmd/probe"
	"github/chapool/mvx-signer/cmd/server"
	"github/chapool/mvx-signer/cmd/wallet"
	"github/chapool/mvx-signer/internal/config"
	"github/chapool/mvx-signer/internal/util/command"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A single key MultiversX signer. Every transaction, message and
authentication token is shown in human readable form and signed
only after the user approved it.
Requires configuration through ENV or --config.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.PersistentFlags().String(command.ConfigFlag, "", "Config file (YAML, TOML or JSON) applied on top of ENV.")

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		keystore.New(),
		probe.New(),
		server.New(),
		wallet.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
