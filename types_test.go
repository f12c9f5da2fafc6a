package ges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, DefaultKMax, opts.KMax)
	require.Equal(t, DefaultPerturbBatch, opts.PerturbBatch)
	require.Equal(t, LogQuiet, opts.Log)
	require.Zero(t, opts.Seed)
	require.Zero(t, opts.MaxTime)
	require.Zero(t, opts.TargetRoutes)
}

func TestValidateOptionsRejectsNegatives(t *testing.T) {
	cases := []Options{
		{KMax: -1},
		{PerturbBatch: -1},
		{MaxTime: -1},
		{TargetRoutes: -1},
		{LogEvery: -1},
	}
	for _, opts := range cases {
		require.ErrorIs(t, validateOptions(opts), ErrInvalidOptions)
	}
}

func TestValidateOptionsAcceptsDefaults(t *testing.T) {
	require.NoError(t, validateOptions(DefaultOptions()))
}
