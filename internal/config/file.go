package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// LoadFile merges a YAML, TOML or JSON config file into cfg. Only keys present in the file
// override the values cfg already holds, so ENV defaults remain the base layer.
// Keys match the struct field names case-insensitively, e.g. "network.timeout: 5s".
func LoadFile(path string, cfg *Server) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		zerologLevelHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return errors.Wrapf(err, "failed to decode config file %s", path)
	}

	return nil
}

func zerologLevelHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	level, err := zerolog.ParseLevel(strings.TrimSpace(data.(string))) //nolint:forcetypeassert
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", data)
	}

	return level, nil
}
