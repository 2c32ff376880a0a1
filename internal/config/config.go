// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"slices"

	"github.com/hostmon/collector/internal/logger"
	"github.com/hostmon/collector/internal/netutil"
	"github.com/hostmon/collector/models"
)

// Config is the resolved agent configuration. It is built exactly once
// by [Resolver.Resolve] and never mutated afterwards, so concurrent
// reads from any number of goroutines are safe without synchronization.
// Slice-valued accessors return copies.
type Config struct {
	hostname string
	hostProc string

	collectionMethod models.CollectionMethod
	syscalls         []string
	scrapeInterval   int
	turnOffScrape    bool
	cpuPerBuffer     int
	bufferSize       int
	threadCacheSize  int

	disableNetworkFlows       bool
	scrapeListenEndpoints     bool
	processesListeningOnPorts bool
	ignoredProtoPortPairs     []netutil.ProtoPortPair
	ignoredNetworks           []netip.Prefix
	enableExternalIPs         bool
	collectConnectionStatus   bool

	enableAfterglow       bool
	afterglowPeriodMicros int64

	enableConnectionStats    bool
	connectionStatsQuantiles []float64
	connectionStatsError     float64
	connectionStatsWindow    int

	enableCoreDump bool
	curlVerbose    bool

	importUsers bool

	tlsConfig json.RawMessage

	hostConfig models.HostConfig
}

// Hostname returns the resolved host identity. Never empty on a Config
// produced by a successful Resolve.
func (c *Config) Hostname() string { return c.hostname }

// HostProc returns the path of the host's proc filesystem as seen by the
// agent.
func (c *Config) HostProc() string { return c.hostProc }

// CollectionMethod returns the effective capture mechanism. A host
// heuristics override takes precedence over both the default and any
// user-supplied value.
func (c *Config) CollectionMethod() models.CollectionMethod {
	if c.hostConfig.HasCollectionMethod() {
		return c.hostConfig.CollectionMethod()
	}

	return c.collectionMethod
}

// Syscalls returns the syscalls the capture engine subscribes to.
func (c *Config) Syscalls() []string { return slices.Clone(c.syscalls) }

// ScrapeInterval returns the /proc scrape period in seconds.
func (c *Config) ScrapeInterval() int { return c.scrapeInterval }

// TurnOffScrape reports whether periodic /proc scraping is disabled.
func (c *Config) TurnOffScrape() bool { return c.turnOffScrape }

// CPUPerBuffer returns how many CPUs share one capture ring buffer.
func (c *Config) CPUPerBuffer() int { return c.cpuPerBuffer }

// BufferSize returns the capture ring buffer size in bytes.
func (c *Config) BufferSize() int { return c.bufferSize }

// ThreadCacheSize returns the capture engine's thread table limit.
func (c *Config) ThreadCacheSize() int { return c.threadCacheSize }

// DisableNetworkFlows reports whether network flow processing is off.
func (c *Config) DisableNetworkFlows() bool { return c.disableNetworkFlows }

// ScrapeListenEndpoints reports whether listening sockets are collected
// while reading connection information from /proc.
func (c *Config) ScrapeListenEndpoints() bool { return c.scrapeListenEndpoints }

// ProcessesListeningOnPorts reports whether originator process
// information is attached to listening endpoints.
func (c *Config) ProcessesListeningOnPorts() bool { return c.processesListeningOnPorts }

// IgnoredProtoPortPairs returns the protocol/port pairs whose endpoints
// are dropped from flow reporting.
func (c *Config) IgnoredProtoPortPairs() []netutil.ProtoPortPair {
	return slices.Clone(c.ignoredProtoPortPairs)
}

// IgnoredNetworks returns the network prefixes whose endpoints are
// dropped from flow reporting, in configuration order.
func (c *Config) IgnoredNetworks() []netip.Prefix { return slices.Clone(c.ignoredNetworks) }

// EnableExternalIPs reports whether external addresses are reported
// individually instead of being aggregated.
func (c *Config) EnableExternalIPs() bool { return c.enableExternalIPs }

// CollectConnectionStatus reports whether connection state is tracked.
func (c *Config) CollectConnectionStatus() bool { return c.collectConnectionStatus }

// EnableAfterglow reports whether recently closed connections linger in
// reports.
func (c *Config) EnableAfterglow() bool { return c.enableAfterglow }

// AfterglowPeriod returns the afterglow window in microseconds, always
// within [0, 300000000].
func (c *Config) AfterglowPeriod() int64 { return c.afterglowPeriodMicros }

// EnableConnectionStats reports whether connection statistics are
// aggregated.
func (c *Config) EnableConnectionStats() bool { return c.enableConnectionStats }

// ConnectionStatsQuantiles returns the summary quantiles, each in (0,1).
func (c *Config) ConnectionStatsQuantiles() []float64 {
	return slices.Clone(c.connectionStatsQuantiles)
}

// ConnectionStatsError returns the quantile sketch error tolerance.
func (c *Config) ConnectionStatsError() float64 { return c.connectionStatsError }

// ConnectionStatsWindow returns the statistics sampling window in
// seconds.
func (c *Config) ConnectionStatsWindow() int { return c.connectionStatsWindow }

// CoreDumpEnabled reports whether core dumps are allowed on crash.
func (c *Config) CoreDumpEnabled() bool { return c.enableCoreDump }

// CurlVerbose reports whether HTTP transport debugging is enabled.
func (c *Config) CurlVerbose() bool { return c.curlVerbose }

// ImportUsers reports whether host user and group names are imported.
func (c *Config) ImportUsers() bool { return c.importUsers }

// TLSConfig returns the opaque TLS sub-object from the user
// configuration, or nil. It is passed through without validation;
// consumers decode it at their own boundary.
func (c *Config) TLSConfig() json.RawMessage {
	if c.tlsConfig == nil {
		return nil
	}

	return slices.Clone(c.tlsConfig)
}

// LogLevel returns the name of the effective log level.
func (c *Config) LogLevel() string { return logger.GlobalLevelName() }

// String returns a one-line summary of the key resolved fields, used
// for startup diagnostics.
func (c *Config) String() string {
	return fmt.Sprintf(
		"collection_method:%s, scrape_interval:%d, turn_off_scrape:%t, hostname:%s, "+
			"processes_listening_on_ports:%t, log_level:%s, import_users:%t, "+
			"collect_connection_status:%t, enable_external_ips:%t",
		c.CollectionMethod(), c.ScrapeInterval(), c.TurnOffScrape(), c.Hostname(),
		c.ProcessesListeningOnPorts(), c.LogLevel(), c.ImportUsers(),
		c.CollectConnectionStatus(), c.EnableExternalIPs(),
	)
}
