package config

import (
	"github.com/hostmon/collector/internal/netutil"
	"github.com/hostmon/collector/models"
)

// Compiled-in defaults. Every field of [Config] starts from one of these
// before the environment, user configuration, and host heuristics are
// applied on top.
const (
	defaultScrapeInterval   = 30
	defaultTurnOffScrape    = false
	defaultCollectionMethod = models.CollectionCoreBPF

	// maxAfterglowPeriodMicros caps the afterglow period at 5 minutes.
	maxAfterglowPeriodMicros     = int64(300_000_000)
	defaultAfterglowPeriodMicros = int64(20_000_000)

	defaultConnectionStatsError  = 0.01
	defaultConnectionStatsWindow = 60

	defaultCPUPerBuffer    = 16
	defaultBufferSize      = 8 * 1024 * 1024
	defaultThreadCacheSize = 32768
)

var defaultSyscalls = []string{
	"accept",
	"chdir",
	"clone",
	"close",
	"connect",
	"execve",
	"fchdir",
	"fork",
	"procexit",
	"procinfo",
	"setresgid",
	"setresuid",
	"setgid",
	"setuid",
	"shutdown",
	"vfork",
}

var defaultConnectionStatsQuantiles = []float64{0.50, 0.90, 0.95}

// Endpoints on these protocol/port pairs are dropped from flow reporting
// when ROX_NETWORK_DROP_IGNORED is enabled. udp/9 is the discard
// protocol, commonly used for wake-on-LAN noise.
var ignoredProtoPortPairs = []netutil.ProtoPortPair{
	{Proto: netutil.L4ProtoUDP, Port: 9},
}

func newDefaultConfig() *Config {
	return &Config{
		scrapeInterval:            defaultScrapeInterval,
		turnOffScrape:             defaultTurnOffScrape,
		collectionMethod:          defaultCollectionMethod,
		syscalls:                  append([]string(nil), defaultSyscalls...),
		scrapeListenEndpoints:     true,
		processesListeningOnPorts: true,
		collectConnectionStatus:   true,
		enableConnectionStats:     true,
		enableAfterglow:           true,
		afterglowPeriodMicros:     defaultAfterglowPeriodMicros,
		connectionStatsQuantiles:  append([]float64(nil), defaultConnectionStatsQuantiles...),
		connectionStatsError:      defaultConnectionStatsError,
		connectionStatsWindow:     defaultConnectionStatsWindow,
		cpuPerBuffer:              defaultCPUPerBuffer,
		bufferSize:                defaultBufferSize,
		threadCacheSize:           defaultThreadCacheSize,
	}
}
