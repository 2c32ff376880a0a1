// Package heuristics probes the runtime host to decide whether the
// requested collection method is actually feasible there. Its verdict
// takes precedence over both the compiled-in default and any
// user-supplied method.
package heuristics

import (
	"strconv"
	"strings"

	"github.com/hostmon/collector/internal/config"
	"github.com/hostmon/collector/internal/logger"
	"github.com/hostmon/collector/models"
)

// HostFacts is the part of host introspection the detector relies on.
type HostFacts interface {
	KernelVersion() string
	HasBTF() bool
}

// Detector implements config.Detector against a live host.
type Detector struct {
	host HostFacts
	log  *logger.Logger
}

func New(host HostFacts, log *logger.Logger) *Detector {
	if log == nil {
		log = logger.Nop()
	}

	return &Detector{host: host, log: log}
}

// Detect inspects the in-progress configuration against the host and
// returns an override record. The record is empty when the requested
// method is feasible as-is.
func (d *Detector) Detect(cfg *config.Config) models.HostConfig {
	var override models.HostConfig

	release := d.host.KernelVersion()
	major, minor, ok := parseKernelRelease(release)
	if !ok {
		d.log.Warn().Str("release", release).Msg("could not parse kernel release, skipping collection heuristics")
		return override
	}

	switch cfg.CollectionMethod() {
	case models.CollectionCoreBPF:
		if !d.host.HasBTF() {
			d.log.Warn().Str("release", release).
				Msg("kernel has no BTF type information, falling back to the legacy eBPF probe")
			override.SetCollectionMethod(models.CollectionEBPF)
		}
	case models.CollectionEBPF:
		// The legacy probe is not built for modern kernels; prefer the
		// CO-RE probe whenever the kernel can run it.
		if kernelAtLeast(major, minor, 5, 8) && d.host.HasBTF() {
			d.log.Info().Str("release", release).
				Msg("kernel supports CO-RE BPF, overriding the legacy eBPF probe")
			override.SetCollectionMethod(models.CollectionCoreBPF)
		}
	}

	if !kernelAtLeast(major, minor, 4, 14) {
		d.log.Warn().Str("release", release).Msg("kernel is older than 4.14, event capture may not work")
	}

	return override
}

func kernelAtLeast(major, minor, wantMajor, wantMinor int) bool {
	if major != wantMajor {
		return major > wantMajor
	}

	return minor >= wantMinor
}

// parseKernelRelease extracts major and minor versions from a kernel
// release string such as "5.14.0-362.8.1.el9_3.x86_64".
func parseKernelRelease(release string) (major, minor int, ok bool) {
	parts := strings.SplitN(release, ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	// The minor component may carry a suffix, e.g. "10-rc1".
	minorText, _, _ := strings.Cut(parts[1], "-")
	minor, err = strconv.Atoi(minorText)
	if err != nil {
		return 0, 0, false
	}

	return major, minor, true
}
