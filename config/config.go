// Package config resolves solver tuning knobs from an optional YAML file and
// GES_-prefixed environment variables, layered underneath whatever the CLI
// flags already set. Instance path and termination knobs (path, max-time,
// target-routes) stay CLI-first per the engine's external interface; only
// the ambient tuning knobs below go through viper.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Tuning holds the solver knobs this package resolves.
type Tuning struct {
	KMax         int
	PerturbBatch int
	Seed         int64
	MetricsAddr  string
}

// Load resolves Tuning from an optional config file at path (skipped
// entirely when path is empty; an explicit path that cannot be read is an
// error), GES_ prefixed environment variables, and flags (if non-nil, any of
// them explicitly set on the command line win over both), falling back to
// the given defaults for anything none of those sources set.
func Load(path string, defaults Tuning, flags *pflag.FlagSet) (Tuning, error) {
	v := viper.New()
	v.SetEnvPrefix("GES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("k_max", defaults.KMax)
	v.SetDefault("perturb_batch", defaults.PerturbBatch)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("metrics_addr", defaults.MetricsAddr)

	if flags != nil {
		for key, flagName := range map[string]string{
			"k_max":        "k-max",
			"seed":         "seed",
			"metrics_addr": "metrics-addr",
		} {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Tuning{}, err
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return Tuning{}, err
			}
		}
	}

	return Tuning{
		KMax:         v.GetInt("k_max"),
		PerturbBatch: v.GetInt("perturb_batch"),
		Seed:         v.GetInt64("seed"),
		MetricsAddr:  v.GetString("metrics_addr"),
	}, nil
}
