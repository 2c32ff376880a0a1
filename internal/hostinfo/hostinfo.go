package hostinfo

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvNodeHostname overrides hostname detection when set.
	EnvNodeHostname = "NODE_HOSTNAME"
	// EnvHostRoot points at the mount of the host filesystem inside the
	// agent container. Empty means the agent runs directly on the host.
	EnvHostRoot = "COLLECTOR_HOST_ROOT"
)

// Info answers questions about the host the agent is monitoring.
type Info struct {
	hostRoot string
}

// New builds an Info rooted at COLLECTOR_HOST_ROOT.
func New() *Info {
	return NewWithRoot(os.Getenv(EnvHostRoot))
}

// NewWithRoot builds an Info with an explicit host root, mainly for tests.
func NewWithRoot(root string) *Info {
	return &Info{hostRoot: root}
}

// HostPath joins p onto the host root so the agent reaches host files
// rather than its own container filesystem.
func (i *Info) HostPath(p string) string {
	if i.hostRoot == "" {
		return p
	}

	return filepath.Join(i.hostRoot, p)
}

// Hostname resolves the machine's hostname. NODE_HOSTNAME wins when set,
// then the host's /etc/hostname, then the kernel's own hostname. An empty
// result means the host identity could not be determined; callers treat
// that as fatal.
func (i *Info) Hostname() string {
	if name := os.Getenv(EnvNodeHostname); name != "" {
		return name
	}

	if data, err := os.ReadFile(i.HostPath("/etc/hostname")); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}

	name, err := os.Hostname()
	if err != nil {
		return ""
	}

	return name
}

// KernelVersion reads the running kernel release string, e.g.
// "5.14.0-362.8.1.el9_3.x86_64". Empty on failure.
func (i *Info) KernelVersion() string {
	data, err := os.ReadFile(i.HostPath("/proc/sys/kernel/osrelease"))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}

// HasBTF reports whether the kernel exposes BTF type information, a
// prerequisite for the CO-RE BPF collection method.
func (i *Info) HasBTF() bool {
	_, err := os.Stat(i.HostPath("/sys/kernel/btf/vmlinux"))
	return err == nil
}
