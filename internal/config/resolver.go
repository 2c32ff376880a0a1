// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/hostmon/collector/internal/logger"
	"github.com/hostmon/collector/internal/netutil"
	"github.com/hostmon/collector/models"
)

// HostLookup resolves the identity of the underlying host.
type HostLookup interface {
	Hostname() string
	HostPath(p string) string
}

// Detector inspects the in-progress configuration against the runtime
// host and returns an override record. The resolver treats it as a
// black box.
type Detector interface {
	Detect(cfg *Config) models.HostConfig
}

// Resolver merges compiled-in defaults, the environment snapshot, the
// user configuration, and host heuristics into one immutable [Config].
type Resolver struct {
	snapshot Snapshot
	host     HostLookup
	detector Detector
	log      *logger.Logger
}

// NewResolver builds a Resolver. A nil snapshot means the process
// environment; a nil detector disables the heuristics pass.
func NewResolver(snapshot Snapshot, host HostLookup, detector Detector, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		snapshot: snapshot,
		host:     host,
		detector: detector,
		log:      log,
	}
}

// pass is one step of the resolution sequence. Later passes override
// earlier ones, so precedence is the order of the list in Resolve and
// nothing else.
type pass struct {
	name string
	run  func(cfg *Config, user *UserConfig) error
}

// Resolve runs the full resolution sequence once and returns the frozen
// configuration. user may be nil. The returned error is non-nil only
// for the fatal conditions (unresolvable hostname, non-numeric
// scrapeInterval); the agent must not start in that case.
func (r *Resolver) Resolve(user *UserConfig) (*Config, error) {
	settings, err := parseEnvSettings(r.snapshot)
	if err != nil {
		return nil, err
	}

	cfg := newDefaultConfig()

	passes := []pass{
		{"environment flags", func(cfg *Config, _ *UserConfig) error {
			r.applyEnvFlags(cfg, settings)
			return nil
		}},
		{"hostname", func(cfg *Config, _ *UserConfig) error {
			return r.resolveHostname(cfg)
		}},
		{"host paths", func(cfg *Config, _ *UserConfig) error {
			cfg.hostProc = r.host.HostPath("/proc")
			return nil
		}},
		{"user configuration", func(cfg *Config, user *UserConfig) error {
			return r.applyUserConfig(cfg, user)
		}},
		{"ignored ports", func(cfg *Config, _ *UserConfig) error {
			r.applyIgnoredPorts(cfg, settings)
			return nil
		}},
		{"ignored networks", func(cfg *Config, _ *UserConfig) error {
			r.applyIgnoredNetworks(cfg, settings)
			return nil
		}},
		{"afterglow", func(cfg *Config, _ *UserConfig) error {
			r.handleAfterglow(cfg, settings)
			return nil
		}},
		{"connection statistics", func(cfg *Config, _ *UserConfig) error {
			r.handleConnectionStats(cfg, settings)
			return nil
		}},
		{"capture buffers", func(cfg *Config, _ *UserConfig) error {
			r.handleCaptureBuffers(cfg, settings)
			return nil
		}},
		{"host heuristics", func(cfg *Config, _ *UserConfig) error {
			r.applyHostHeuristics(cfg)
			return nil
		}},
	}

	for _, p := range passes {
		if err := p.run(cfg, user); err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p.name, err)
		}
	}

	return cfg, nil
}

func (r *Resolver) applyEnvFlags(cfg *Config, s *envSettings) {
	cfg.disableNetworkFlows = r.envBool("ROX_COLLECTOR_DISABLE_NETWORK_FLOWS", s.DisableNetworkFlows, cfg.disableNetworkFlows)
	cfg.scrapeListenEndpoints = r.envBool("ROX_NETWORK_GRAPH_PORTS", s.ScrapeListenEndpoints, cfg.scrapeListenEndpoints)
	cfg.curlVerbose = r.envBool("ROX_COLLECTOR_SET_CURL_VERBOSE", s.CurlVerbose, cfg.curlVerbose)
	cfg.enableCoreDump = r.envBool("ENABLE_CORE_DUMP", s.EnableCoreDump, cfg.enableCoreDump)
	cfg.processesListeningOnPorts = r.envBool("ROX_PROCESSES_LISTENING_ON_PORT", s.ProcessesListeningOnPorts, cfg.processesListeningOnPorts)
	cfg.importUsers = r.envBool("ROX_COLLECTOR_SET_IMPORT_USERS", s.ImportUsers, cfg.importUsers)
	cfg.collectConnectionStatus = r.envBool("ROX_COLLECT_CONNECTION_STATUS", s.CollectConnectionStatus, cfg.collectConnectionStatus)
	cfg.enableExternalIPs = r.envBool("ROX_ENABLE_EXTERNAL_IPS", s.EnableExternalIPs, cfg.enableExternalIPs)
	cfg.enableConnectionStats = r.envBool("ROX_COLLECTOR_ENABLE_CONNECTION_STATS", s.EnableConnectionStats, cfg.enableConnectionStats)
}

func (r *Resolver) resolveHostname(cfg *Config) error {
	name := r.host.Hostname()
	if name == "" {
		return ErrHostnameUnresolved
	}

	cfg.hostname = name
	return nil
}

func (r *Resolver) applyUserConfig(cfg *Config, user *UserConfig) error {
	if user == nil {
		return nil
	}

	// Log level first so the rest of this resolution pass logs at the
	// configured level.
	if user.LogLevel != nil && *user.LogLevel != "" {
		if level, ok := logger.ParseLevel(*user.LogLevel); ok {
			logger.SetGlobalLevel(level)
			r.log.Info().Str("logLevel", *user.LogLevel).Msg("user configured logLevel")
		} else {
			r.log.Warn().Str("logLevel", *user.LogLevel).Msg("user configured logLevel is invalid")
		}
	}

	if user.ScrapeInterval != nil {
		interval, err := strconv.Atoi(user.ScrapeInterval.String())
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidScrapeInterval, user.ScrapeInterval.String())
		}

		cfg.scrapeInterval = interval
		r.log.Info().Int("scrapeInterval", interval).Msg("user configured scrapeInterval")
	}

	if user.TurnOffScrape != nil {
		cfg.turnOffScrape = *user.TurnOffScrape
		r.log.Info().Bool("turnOffScrape", cfg.turnOffScrape).Msg("user configured turnOffScrape")
	}

	if user.Syscalls != nil {
		cfg.syscalls = slices.Clone(user.Syscalls)
		r.log.Info().Strs("syscalls", cfg.syscalls).Msg("user configured syscalls")
	}

	if user.CollectionMethod != "" {
		r.log.Info().Str("collectionMethod", user.CollectionMethod).Msg("user configured collection method")
		method, ok := models.ParseCollectionMethod(user.CollectionMethod)
		if !ok {
			r.log.Warn().Str("collectionMethod", user.CollectionMethod).Msg("invalid collection method, using core_bpf")
		}
		cfg.collectionMethod = method
	}

	if len(user.TLSConfig) > 0 {
		cfg.tlsConfig = slices.Clone(user.TLSConfig)
	}

	return nil
}

func (r *Resolver) applyIgnoredPorts(cfg *Config, s *envSettings) {
	if r.envBool("ROX_NETWORK_DROP_IGNORED", s.NetworkDropIgnored, true) {
		cfg.ignoredProtoPortPairs = slices.Clone(ignoredProtoPortPairs)
	}
}

// applyIgnoredNetworks builds the prefix list as a pure filter over the
// environment-provided entries: parse failures are logged and skipped,
// successes keep their input order.
func (r *Resolver) applyIgnoredNetworks(cfg *Config, s *envSettings) {
	for _, entry := range s.IgnoredNetworks {
		if entry == "" {
			continue
		}

		prefix, ok := netutil.ParseCIDR(entry)
		if !ok {
			r.log.Error().Str("network", entry).Msg("invalid network in ROX_IGNORE_NETWORKS")
			continue
		}

		r.log.Info().Stringer("network", prefix).Msg("ignoring network")
		cfg.ignoredNetworks = append(cfg.ignoredNetworks, prefix)
	}
}

func (r *Resolver) applyHostHeuristics(cfg *Config) {
	if r.detector == nil {
		return
	}

	cfg.hostConfig = r.detector.Detect(cfg)
	if cfg.hostConfig.HasCollectionMethod() {
		r.log.Info().
			Stringer("collectionMethod", cfg.hostConfig.CollectionMethod()).
			Msg("host heuristics overrode the collection method")
	}
}
