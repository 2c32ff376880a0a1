// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Snapshot is an environment snapshot: a mapping from variable name to
// raw string value. Passing an explicit snapshot into the resolver keeps
// resolution pure and independently testable; a nil Snapshot means the
// process environment.
type Snapshot map[string]string

// ProcessEnv captures the current process environment as a Snapshot.
func ProcessEnv() Snapshot {
	environ := os.Environ()
	snapshot := make(Snapshot, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			snapshot[name] = value
		}
	}

	return snapshot
}

// envSettings is the raw environment layer of the configuration. All
// fields are strings on purpose: a present-but-unparseable value must
// produce a diagnostic and keep the prior value rather than abort, so
// conversion happens in the resolver passes, not here. An empty string
// means the variable is unset and the compiled-in default stands.
type envSettings struct {
	DisableNetworkFlows       string `env:"ROX_COLLECTOR_DISABLE_NETWORK_FLOWS"`
	ScrapeListenEndpoints     string `env:"ROX_NETWORK_GRAPH_PORTS"`
	NetworkDropIgnored        string `env:"ROX_NETWORK_DROP_IGNORED"`
	CurlVerbose               string `env:"ROX_COLLECTOR_SET_CURL_VERBOSE"`
	EnableAfterglow           string `env:"ROX_ENABLE_AFTERGLOW"`
	EnableCoreDump            string `env:"ENABLE_CORE_DUMP"`
	ProcessesListeningOnPorts string `env:"ROX_PROCESSES_LISTENING_ON_PORT"`
	ImportUsers               string `env:"ROX_COLLECTOR_SET_IMPORT_USERS"`
	CollectConnectionStatus   string `env:"ROX_COLLECT_CONNECTION_STATUS"`
	EnableExternalIPs         string `env:"ROX_ENABLE_EXTERNAL_IPS"`
	EnableConnectionStats     string `env:"ROX_COLLECTOR_ENABLE_CONNECTION_STATS"`

	// Link-local ranges for IPv4 (RFC 3927) and IPv6 (RFC 4862) are
	// ignored unless the operator overrides the list.
	IgnoredNetworks []string `env:"ROX_IGNORE_NETWORKS" envSeparator:"," envDefault:"169.254.0.0/16,fe80::/10"`

	AfterglowPeriod string `env:"ROX_AFTERGLOW_PERIOD"`

	ConnectionStatsQuantiles string `env:"ROX_COLLECTOR_CONNECTION_STATS_QUANTILES"`
	ConnectionStatsError     string `env:"ROX_COLLECTOR_CONNECTION_STATS_ERROR"`
	ConnectionStatsWindow    string `env:"ROX_COLLECTOR_CONNECTION_STATS_WINDOW"`

	CPUPerBuffer    string `env:"ROX_COLLECTOR_SINSP_CPU_PER_BUFFER"`
	BufferSize      string `env:"ROX_COLLECTOR_SINSP_BUFFER_SIZE"`
	ThreadCacheSize string `env:"ROX_COLLECTOR_SINSP_THREAD_CACHE_SIZE"`
}

// parseEnvSettings populates an envSettings from the snapshot using the
// caarlos0/env tag mappings above.
func parseEnvSettings(snapshot Snapshot) (*envSettings, error) {
	if snapshot == nil {
		snapshot = ProcessEnv()
	}

	settings := &envSettings{}
	err := env.ParseWithOptions(settings, env.Options{Environment: snapshot})
	if err != nil {
		return nil, fmt.Errorf("error parsing environment settings: %w", err)
	}

	return settings, nil
}

// envBool interprets raw as a boolean flag value. Empty keeps current;
// malformed input logs a diagnostic and keeps current.
func (r *Resolver) envBool(name, raw string, current bool) bool {
	if raw == "" {
		return current
	}

	value, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		r.log.Warn().Str("var", name).Str("value", raw).Msg("invalid boolean value, keeping previous")
		return current
	}

	return value
}

// envPositiveInt interprets raw as a positive integer. Empty keeps
// current; malformed or non-positive input logs a diagnostic and keeps
// current.
func (r *Resolver) envPositiveInt(name, raw string, current int) int {
	if raw == "" {
		return current
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		r.log.Warn().Str("var", name).Str("value", raw).Msg("invalid positive integer value, keeping previous")
		return current
	}

	return value
}

// envPositiveFloat interprets raw as a positive floating point number.
// Empty keeps current; malformed or non-positive input logs a
// diagnostic and keeps current.
func (r *Resolver) envPositiveFloat(name, raw string, current float64) float64 {
	if raw == "" {
		return current
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value <= 0 {
		r.log.Warn().Str("var", name).Str("value", raw).Msg("invalid positive float value, keeping previous")
		return current
	}

	return value
}
