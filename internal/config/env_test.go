// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvSettings_FromSnapshot(t *testing.T) {
	// Arrange
	snapshot := Snapshot{
		"ROX_COLLECTOR_DISABLE_NETWORK_FLOWS":      "true",
		"ROX_IGNORE_NETWORKS":                      "10.0.0.0/8,192.168.0.0/16",
		"ROX_AFTERGLOW_PERIOD":                     "12.5",
		"ROX_COLLECTOR_CONNECTION_STATS_QUANTILES": "0.5,0.9",
		"ROX_COLLECTOR_SINSP_BUFFER_SIZE":          "1048576",
	}

	// Act
	settings, err := parseEnvSettings(snapshot)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "true", settings.DisableNetworkFlows)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.0.0/16"}, settings.IgnoredNetworks)
	assert.Equal(t, "12.5", settings.AfterglowPeriod)
	assert.Equal(t, "0.5,0.9", settings.ConnectionStatsQuantiles)
	assert.Equal(t, "1048576", settings.BufferSize)

	// Untouched variables stay empty so their defaults stand.
	assert.Empty(t, settings.EnableAfterglow)
	assert.Empty(t, settings.ConnectionStatsWindow)
}

func TestParseEnvSettings_EmptySnapshotUsesListDefault(t *testing.T) {
	settings, err := parseEnvSettings(Snapshot{})

	require.NoError(t, err)
	assert.Equal(t, []string{"169.254.0.0/16", "fe80::/10"}, settings.IgnoredNetworks)
}

func TestParseEnvSettings_NilSnapshotReadsProcessEnv(t *testing.T) {
	t.Setenv("ROX_COLLECTOR_SET_IMPORT_USERS", "true")

	settings, err := parseEnvSettings(nil)

	require.NoError(t, err)
	assert.Equal(t, "true", settings.ImportUsers)
}

func TestProcessEnv(t *testing.T) {
	t.Setenv("ROX_ENABLE_EXTERNAL_IPS", "true")

	snapshot := ProcessEnv()

	assert.Equal(t, "true", snapshot["ROX_ENABLE_EXTERNAL_IPS"])
	assert.Equal(t, os.Getenv("PATH"), snapshot["PATH"])
}

func TestEnvBool(t *testing.T) {
	r := newTestResolver(Snapshot{})

	tests := []struct {
		name     string
		raw      string
		current  bool
		expected bool
	}{
		{"empty keeps current true", "", true, true},
		{"empty keeps current false", "", false, false},
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"one", "1", false, true},
		{"uppercase", "TRUE", false, true},
		{"garbage keeps current", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.envBool("TEST_VAR", tt.raw, tt.current))
		})
	}
}

func TestEnvPositiveInt(t *testing.T) {
	r := newTestResolver(Snapshot{})

	assert.Equal(t, 5, r.envPositiveInt("TEST_VAR", "5", 1))
	assert.Equal(t, 1, r.envPositiveInt("TEST_VAR", "", 1))
	assert.Equal(t, 1, r.envPositiveInt("TEST_VAR", "zero?", 1))
	assert.Equal(t, 1, r.envPositiveInt("TEST_VAR", "0", 1))
	assert.Equal(t, 1, r.envPositiveInt("TEST_VAR", "-3", 1))
}

func TestEnvPositiveFloat(t *testing.T) {
	r := newTestResolver(Snapshot{})

	assert.Equal(t, 0.5, r.envPositiveFloat("TEST_VAR", "0.5", 0.01))
	assert.Equal(t, 0.01, r.envPositiveFloat("TEST_VAR", "", 0.01))
	assert.Equal(t, 0.01, r.envPositiveFloat("TEST_VAR", "half", 0.01))
	assert.Equal(t, 0.01, r.envPositiveFloat("TEST_VAR", "-0.5", 0.01))
}
