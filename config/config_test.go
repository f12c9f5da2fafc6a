package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWithNoOverrides(t *testing.T) {
	defaults := Tuning{KMax: 3, PerturbBatch: 50, Seed: 0, MetricsAddr: ""}
	tuning, err := Load("", defaults, nil)
	require.NoError(t, err)
	require.Equal(t, defaults, tuning)
}

func TestLoadPrefersExplicitlySetFlagOverDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("k-max", 3, "")
	require.NoError(t, flags.Set("k-max", "5"))

	tuning, err := Load("", Tuning{KMax: 3, PerturbBatch: 50}, flags)
	require.NoError(t, err)
	require.Equal(t, 5, tuning.KMax)
}

func TestLoadIgnoresUnsetFlagInFavorOfDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("k-max", 3, "")
	// Not calling flags.Set: the flag keeps its own default (3), and Load
	// should still surface the caller's default rather than pflag's.
	tuning, err := Load("", Tuning{KMax: 7, PerturbBatch: 50}, flags)
	require.NoError(t, err)
	require.Equal(t, 7, tuning.KMax)
}

func TestLoadReturnsErrorForMissingConfigFileWithExplicitPath(t *testing.T) {
	_, err := Load("/nonexistent/ges-config.yaml", Tuning{}, nil)
	require.Error(t, err)
}
