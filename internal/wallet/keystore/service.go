package keystore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/util"
)

var ErrKeystoreExists = errors.New("keystore already exists")

type service struct {
	path   string
	params ScryptParams
}

// NewService creates a KeystoreService backed by the file at path
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(path string, params ScryptParams) Service {
	return &service{
		path:   path,
		params: params,
	}
}

func (s *service) Path() string {
	return s.path
}

// Create encrypts the mnemonic and writes the keystore file
func (s *service) Create(ctx context.Context, mnemonic string, password string, addr string) (*Keystore, error) {
	log := util.LogFromContext(ctx)

	exists, err := s.Exists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}
	if exists {
		return nil, ErrKeystoreExists
	}

	ks, err := encryptMnemonic(mnemonic, password, s.params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encrypt mnemonic")
		return nil, errors.Wrap(err, "failed to encrypt mnemonic")
	}
	ks.Address = addr

	data, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal keystore JSON")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil { //nolint:mnd
		return nil, errors.Wrap(err, "failed to create keystore directory")
	}

	// O_EXCL: never overwrite an existing keystore
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:mnd
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrKeystoreExists
		}
		return nil, errors.Wrap(err, "failed to create keystore file")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return nil, errors.Wrap(err, "failed to write keystore file")
	}

	log.Info().Str("path", s.path).Str("address", addr).Msg("Keystore created")

	return ks, nil
}

// DecryptMnemonic decrypts mnemonic from keystore
func (s *service) DecryptMnemonic(ctx context.Context, ks *Keystore, password string) (string, error) {
	mnemonic, err := decryptMnemonic(ks, password)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to decrypt mnemonic")
		return "", err
	}

	return mnemonic, nil
}

func (s *service) Load(_ context.Context) (*Keystore, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keystore file")
	}

	var ks Keystore
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal keystore JSON")
	}

	if ks.Version != Version {
		return nil, errors.Errorf("unsupported keystore version %d", ks.Version)
	}

	return &ks, nil
}

func (s *service) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to stat keystore file")
}
