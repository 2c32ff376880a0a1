package models

// CollectionMethod identifies the kernel event capture mechanism used by
// the agent.
type CollectionMethod int

const (
	// CollectionEBPF is the legacy eBPF probe.
	CollectionEBPF CollectionMethod = iota
	// CollectionCoreBPF is the CO-RE (compile once, run everywhere) BPF
	// probe, which requires kernel BTF support.
	CollectionCoreBPF
)

func (m CollectionMethod) String() string {
	switch m {
	case CollectionEBPF:
		return "ebpf"
	case CollectionCoreBPF:
		return "core_bpf"
	default:
		return "unknown"
	}
}

// ParseCollectionMethod maps the user-facing method name to a
// CollectionMethod. The second return value is false for any name other
// than "ebpf" or "core_bpf"; the caller decides the fallback.
func ParseCollectionMethod(name string) (CollectionMethod, bool) {
	switch name {
	case "ebpf":
		return CollectionEBPF, true
	case "core_bpf":
		return CollectionCoreBPF, true
	default:
		return CollectionCoreBPF, false
	}
}
