package config

import (
	"strconv"
	"strings"
)

// handleAfterglow resolves the afterglow group: the enablement flag, the
// period (ROX_AFTERGLOW_PERIOD expresses seconds as a float, stored in
// microseconds), the 5-minute ceiling, and the final enabled/inactive
// decision.
func (r *Resolver) handleAfterglow(cfg *Config, s *envSettings) {
	cfg.enableAfterglow = r.envBool("ROX_ENABLE_AFTERGLOW", s.EnableAfterglow, cfg.enableAfterglow)

	if raw := s.AfterglowPeriod; raw != "" {
		seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			r.log.Warn().Str("var", "ROX_AFTERGLOW_PERIOD").Str("value", raw).Msg("invalid afterglow period, keeping previous")
		} else {
			cfg.afterglowPeriodMicros = int64(seconds * 1_000_000)
		}
	}

	if cfg.afterglowPeriodMicros > maxAfterglowPeriodMicros {
		r.log.Error().
			Int64("periodSeconds", cfg.afterglowPeriodMicros/1_000_000).
			Int64("maxSeconds", maxAfterglowPeriodMicros/1_000_000).
			Msg("afterglow period exceeds the maximum, clamping to the maximum")
		cfg.afterglowPeriodMicros = maxAfterglowPeriodMicros
	}

	if cfg.enableAfterglow && cfg.afterglowPeriodMicros > 0 {
		r.log.Info().Msg("afterglow is enabled")
		return
	}

	if !cfg.enableAfterglow {
		r.log.Info().Msg("afterglow is disabled")
		return
	}

	if cfg.afterglowPeriodMicros < 0 {
		r.log.Error().Int64("periodMicros", cfg.afterglowPeriodMicros).Msg("afterglow period must be positive")
	} else {
		r.log.Error().Msg("afterglow period set to 0")
	}

	cfg.enableAfterglow = false
	r.log.Info().Msg("disabling afterglow")
}
