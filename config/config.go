// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/geomtol/internal/log"
	"github.com/katalvlaran/geomtol/tolerance"
)

// DefaultProfile names the profile built from tolerance.default.
const DefaultProfile = "default"

const (
	envPrefix = "GEOMTOL"

	keyDefault  = "tolerance.default"
	keyRelative = "tolerance.relative"
	keyProfiles = "tolerance.profiles"
)

// Config holds one ready Context per profile. It is immutable after Load.
type Config struct {
	contexts map[string]*tolerance.Context
}

// Load reads a YAML document from r.
func Load(r io.Reader) (*Config, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, invalid(errors.Wrap(err, "read"))
	}
	return build(v)
}

// LoadFile reads the configuration file at path. The format follows the
// file extension (yaml, json, toml...).
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, invalid(errors.Wrapf(err, "read %s", path))
	}
	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyDefault, tolerance.DefaultTolerance)
	v.SetDefault(keyRelative, tolerance.DefaultRelativeTolerance)
	return v
}

func build(v *viper.Viper) (*Config, error) {
	logger := log.With("config")

	def, err := toFloat(v.Get(keyDefault), keyDefault)
	if err != nil {
		return nil, err
	}
	rel, err := toFloat(v.Get(keyRelative), keyRelative)
	if err != nil {
		return nil, err
	}

	raw := map[string]float64{DefaultProfile: def}
	for name, val := range v.GetStringMap(keyProfiles) {
		name = strings.ToLower(name)
		if name == DefaultProfile {
			return nil, errors.Wrapf(ErrInvalidConfig, "profile %q is reserved, use %s", name, keyDefault)
		}
		tol, err := toFloat(val, keyProfiles+"."+name)
		if err != nil {
			return nil, err
		}
		raw[name] = tol
	}

	cfg := &Config{contexts: make(map[string]*tolerance.Context, len(raw))}
	for name, tol := range raw {
		ctx, err := tolerance.New(tol, tolerance.WithRelativeTolerance(rel), tolerance.WithLogger(logger))
		if err != nil {
			return nil, invalid(errors.Wrapf(err, "profile %q", name))
		}
		cfg.contexts[name] = ctx
	}

	logger.Info("tolerance profiles loaded",
		zap.Strings("profiles", cfg.Profiles()),
		zap.Float64("default", def),
		zap.Float64("relative", rel))

	return cfg, nil
}

// invalid tags cause with ErrInvalidConfig. Both stay reachable through
// Unwrap, so errors.Is matches either one.
func invalid(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfig, cause)
}

func toFloat(val any, key string) (float64, error) {
	f, err := cast.ToFloat64E(val)
	if err != nil {
		return 0, invalid(errors.Wrapf(err, "%s", key))
	}
	return f, nil
}

// Context returns the Context for profile name. An empty name selects
// DefaultProfile.
func (c *Config) Context(name string) (*tolerance.Context, error) {
	if name == "" {
		name = DefaultProfile
	}
	ctx, ok := c.contexts[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}
	return ctx, nil
}

// Profiles returns the profile names in sorted order, DefaultProfile included.
func (c *Config) Profiles() []string {
	names := lo.Keys(c.contexts)
	slices.Sort(names)
	return names
}
