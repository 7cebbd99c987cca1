package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad forcefully overrides ENV variables through **a maybe available** .env file.
//
// This function always silently ignores errors related to a non existing file.
// Errors in the file itself are fatal.
func DotEnvTryLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) {
	err := DotEnvLoad(absolutePathToEnvFile, setEnvFn)

	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Panic().Err(err).Str("envFile", absolutePathToEnvFile).Msg(".env parse error!")
		}
	} else {
		log.Warn().Str("envFile", absolutePathToEnvFile).Msg(".env overrides ENV variables!")
	}
}

// DotEnvLoad forcefully overrides ENV variables through the supplied .env file.
func DotEnvLoad(absolutePathToEnvFile string, setEnvFn func(key string, value string) error) error {
	file, err := os.Open(absolutePathToEnvFile)
	if err != nil {
		return errors.Wrap(err, "failed to open env file")
	}
	defer file.Close()

	envs, err := gotenv.StrictParse(file)
	if err != nil {
		return errors.Wrap(err, "failed to parse env file")
	}

	for key, value := range envs {
		if err := setEnvFn(key, value); err != nil {
			return errors.Wrapf(err, "failed to set env %s", key)
		}
	}

	return nil
}
