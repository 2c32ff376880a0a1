package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionStats_QuantilesOverride(t *testing.T) {
	r := newTestResolver(Snapshot{
		"ROX_COLLECTOR_CONNECTION_STATS_QUANTILES": "0.25,0.75",
	})

	cfg, err := r.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, cfg.ConnectionStatsQuantiles())
}

func TestConnectionStats_MalformedTokensAreDropped(t *testing.T) {
	r := newTestResolver(Snapshot{
		"ROX_COLLECTOR_CONNECTION_STATS_QUANTILES": "0.5,bad,0.99",
	})

	cfg, err := r.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.99}, cfg.ConnectionStatsQuantiles())
}

func TestConnectionStats_OutOfRangeTokensAreDropped(t *testing.T) {
	r := newTestResolver(Snapshot{
		"ROX_COLLECTOR_CONNECTION_STATS_QUANTILES": "0,0.5,1,1.5,-0.1",
	})

	cfg, err := r.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, cfg.ConnectionStatsQuantiles())
}

// The whole default list is discarded as soon as the variable is
// present; if every token is malformed the resolved list is empty and
// that is accepted.
func TestConnectionStats_AllTokensMalformedYieldsEmptyList(t *testing.T) {
	r := newTestResolver(Snapshot{
		"ROX_COLLECTOR_CONNECTION_STATS_QUANTILES": "a,b,c",
	})

	cfg, err := r.Resolve(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.ConnectionStatsQuantiles())
}

func TestConnectionStats_ErrorAndWindowOverrides(t *testing.T) {
	r := newTestResolver(Snapshot{
		"ROX_COLLECTOR_CONNECTION_STATS_ERROR":  "0.05",
		"ROX_COLLECTOR_CONNECTION_STATS_WINDOW": "120",
	})

	cfg, err := r.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.ConnectionStatsError())
	assert.Equal(t, 120, cfg.ConnectionStatsWindow())
}

func TestConnectionStats_MalformedScalarsKeepDefaults(t *testing.T) {
	tests := []struct {
		name string
		env  Snapshot
	}{
		{"non numeric error", Snapshot{"ROX_COLLECTOR_CONNECTION_STATS_ERROR": "tiny"}},
		{"negative error", Snapshot{"ROX_COLLECTOR_CONNECTION_STATS_ERROR": "-0.01"}},
		{"non numeric window", Snapshot{"ROX_COLLECTOR_CONNECTION_STATS_WINDOW": "minute"}},
		{"zero window", Snapshot{"ROX_COLLECTOR_CONNECTION_STATS_WINDOW": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.env)

			cfg, err := r.Resolve(nil)

			require.NoError(t, err)
			assert.Equal(t, 0.01, cfg.ConnectionStatsError())
			assert.Equal(t, 60, cfg.ConnectionStatsWindow())
		})
	}
}
