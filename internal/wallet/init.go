package wallet

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/keystore"
	"github/chapool/mvx-signer/internal/wallet/seed"
	"golang.org/x/term"
)

const minPasswordLength = 8

// PasswordPrompt reads a password, typically without echo.
type PasswordPrompt func(prompt string) (string, error)

// UnlockOptions controls how the seed is unlocked at startup.
type UnlockOptions struct {
	// Mnemonic bypasses the keystore entirely (development and tests only)
	Mnemonic       string
	Passphrase     string
	DerivationPath string
	// Password unlocks the keystore non interactively; Prompt is used when empty
	Password string
	Prompt   PasswordPrompt
}

// UnlockSeed initializes the seed manager either from a plain mnemonic or by decrypting
// the keystore and verifying the derived address against the one stored alongside it.
func UnlockSeed(ctx context.Context, seedManager seed.Manager, keystoreService keystore.Service, addressService address.Service, opts UnlockOptions) error {
	log := log.With().Str("component", "wallet_init").Logger()

	if opts.Mnemonic != "" {
		log.Warn().Msg("Unlocking from a plain mnemonic, do not use this in production")

		if err := seedManager.Initialize(opts.Mnemonic, opts.Passphrase); err != nil {
			return errors.Wrap(err, "failed to initialize seed manager")
		}

		return nil
	}

	exists, err := keystoreService.Exists(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check keystore existence")
	}
	if !exists {
		return errors.Errorf("keystore %s not found, create one with `app keystore create`", keystoreService.Path())
	}

	password := opts.Password
	if password == "" {
		if opts.Prompt == nil {
			return errors.New("keystore password required")
		}

		log.Info().Str("path", keystoreService.Path()).Msg("Keystore found. Please enter password to unlock...")

		password, err = opts.Prompt("Enter keystore password: ")
		if err != nil {
			return errors.Wrap(err, "failed to read password")
		}
	}

	//nolint:varnamelen // ks is a common abbreviation for keystore
	ks, err := keystoreService.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load keystore")
	}

	mnemonic, err := keystoreService.DecryptMnemonic(ctx, ks, password)
	if err != nil {
		return errors.Wrap(err, "failed to decrypt keystore")
	}

	if err := seedManager.Initialize(mnemonic, opts.Passphrase); err != nil {
		return errors.Wrap(err, "failed to initialize seed manager")
	}

	valid, err := VerifyAddress(ctx, seedManager, addressService, opts.DerivationPath, ks.Address)
	if err != nil {
		seedManager.Clear()
		return errors.Wrap(err, "failed to verify keystore address")
	}

	if !valid {
		seedManager.Clear()
		return errors.New("derived address does not match the keystore address (wrong passphrase?)")
	}

	log.Info().Msg("Seed manager initialized successfully")

	return nil
}

// CreateKeystore generates a new mnemonic, encrypts it with a confirmed password and
// writes the mnemonic to out once so that it can be backed up.
func CreateKeystore(
	ctx context.Context,
	keystoreService keystore.Service,
	addressService address.Service,
	derivationPath string,
	passphrase string,
	prompt PasswordPrompt,
	out io.Writer,
) (*keystore.Keystore, error) {
	mnemonic, err := seed.NewMnemonic()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate mnemonic")
	}

	password, err := prompt(fmt.Sprintf("Enter password for keystore (min %d characters): ", minPasswordLength))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read password")
	}

	if len(password) < minPasswordLength {
		return nil, errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	passwordConfirm, err := prompt("Confirm password: ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read password confirmation")
	}

	if password != passwordConfirm {
		return nil, errors.New("passwords do not match")
	}

	m := seed.NewManager()
	if err := m.Initialize(mnemonic, passphrase); err != nil {
		return nil, errors.Wrap(err, "failed to initialize seed")
	}
	defer m.Clear()

	addr, err := DeriveAccountAddress(ctx, m, addressService, derivationPath)
	if err != nil {
		return nil, err
	}

	ks, err := keystoreService.Create(ctx, mnemonic, password, addr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create keystore")
	}

	if _, err := fmt.Fprintf(out, "\nWrite down your mnemonic and keep it safe. It will not be shown again:\n\n%s\n\nAddress: %s\n", mnemonic, addr); err != nil {
		return nil, errors.Wrap(err, "failed to print mnemonic")
	}

	return ks, nil
}

// TerminalPrompt prompts on stderr and reads the password from stdin without echo.
//
//nolint:forbidigo // Password input requires direct terminal I/O
func TerminalPrompt(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd())) //nolint:gosec
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Fprintln(os.Stderr)

	return string(passwordBytes), nil
}
