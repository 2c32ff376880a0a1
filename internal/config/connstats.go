package config

import (
	"strconv"
	"strings"
)

// handleConnectionStats resolves the connection-statistics group:
// quantiles, sketch error tolerance, and sampling window, each with its
// own environment override.
//
// As soon as the quantiles variable is present the whole default list is
// discarded and each comma-separated token is parsed independently;
// malformed or out-of-range tokens are dropped, so the final list may be
// empty.
func (r *Resolver) handleConnectionStats(cfg *Config, s *envSettings) {
	if raw := s.ConnectionStatsQuantiles; raw != "" {
		tokens := strings.Split(raw, ",")
		quantiles := make([]float64, 0, len(tokens))
		for _, token := range tokens {
			value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
			if err != nil || value <= 0 || value >= 1 {
				r.log.Error().Str("value", token).Msg("invalid quantile value")
				continue
			}

			r.log.Info().Float64("quantile", value).Msg("connection statistics quantile")
			quantiles = append(quantiles, value)
		}

		cfg.connectionStatsQuantiles = quantiles
	}

	cfg.connectionStatsError = r.envPositiveFloat("ROX_COLLECTOR_CONNECTION_STATS_ERROR", s.ConnectionStatsError, cfg.connectionStatsError)
	cfg.connectionStatsWindow = r.envPositiveInt("ROX_COLLECTOR_CONNECTION_STATS_WINDOW", s.ConnectionStatsWindow, cfg.connectionStatsWindow)
}
