package netutil

import (
	"net/netip"
	"strings"
)

// ParseCIDR parses a textual network prefix ("169.254.0.0/16",
// "fe80::/10") into a canonical netip.Prefix. The second return value is
// false for malformed input; the caller decides whether that is fatal.
func ParseCIDR(s string) (netip.Prefix, bool) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(s))
	if err != nil {
		return netip.Prefix{}, false
	}

	return prefix.Masked(), true
}
