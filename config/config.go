// Package config registers defaults, binds TUBEX_* variables and loads tubex.toml.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/quality"
	"github.com/tubex-cli/tubex/where"
)

// EnvKeyReplacer turns config keys into environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, environment and the config file, in increasing priority.
func Setup() error {
	viper.SetConfigName(constant.Tubex)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Tubex)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Validate checks values that would otherwise fail late, during extraction.
func Validate() error {
	if _, err := quality.ParseAll(viper.GetStringSlice(key.ExtractPreferredQualities)); err != nil {
		return fmt.Errorf("%s: %w", key.ExtractPreferredQualities, err)
	}

	for _, k := range []string{key.ExtractDefaultQuality, key.ThumbnailQuality} {
		if _, err := quality.Parse(viper.GetString(k)); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}

	if _, err := time.ParseDuration(viper.GetString(key.NetworkTimeout)); err != nil {
		return fmt.Errorf("%s: %w", key.NetworkTimeout, err)
	}

	return nil
}
