package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_RequiresSpecPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "SpecPath is a required configuration field")
}

func TestNewConfig_SelfDocNeedsNoSpecPath(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{SelfDoc: true})

	require.NoError(t, err)
	require.True(t, cfg.SelfDoc)
}

func TestNewConfig_DefaultsFormatToNumpy(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{SpecPath: "./specs"})

	require.NoError(t, err)
	require.Equal(t, "numpy", cfg.Format)
}

func TestNewConfig_KeepsExplicitFormat(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{SpecPath: "./specs", Format: "google"})

	require.NoError(t, err)
	require.Equal(t, "google", cfg.Format)
}
