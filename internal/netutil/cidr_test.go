package netutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCIDR_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		bits     int
	}{
		{"ipv4 link local", "169.254.0.0/16", "169.254.0.0/16", 16},
		{"ipv6 link local", "fe80::/10", "fe80::/10", 10},
		{"ipv4 single host", "10.0.0.1/32", "10.0.0.1/32", 32},
		{"ipv4 whole space", "0.0.0.0/0", "0.0.0.0/0", 0},
		{"ipv6 documentation", "2001:db8::/32", "2001:db8::/32", 32},
		{"surrounding whitespace", " 192.168.0.0/24 ", "192.168.0.0/24", 24},
		{"non canonical base", "192.168.0.17/24", "192.168.0.0/24", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, ok := ParseCIDR(tt.input)

			require.True(t, ok)
			assert.Equal(t, tt.expected, prefix.String())
			assert.Equal(t, tt.bits, prefix.Bits())
		})
	}
}

func TestParseCIDR_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing prefix length", "169.254.0.0"},
		{"garbage", "not-a-network"},
		{"prefix length too large", "10.0.0.0/33"},
		{"negative prefix length", "10.0.0.0/-1"},
		{"bad address", "300.0.0.0/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseCIDR(tt.input)

			assert.False(t, ok)
		})
	}
}

func TestParseCIDR_RoundTrip(t *testing.T) {
	inputs := []string{"169.254.0.0/16", "fe80::/10", "172.16.0.0/12", "::1/128"}

	for _, input := range inputs {
		prefix, ok := ParseCIDR(input)
		require.True(t, ok)

		again, ok := ParseCIDR(prefix.String())
		require.True(t, ok)
		assert.Equal(t, prefix, again)
	}
}

func TestProtoPortPair_String(t *testing.T) {
	assert.Equal(t, "udp/9", ProtoPortPair{Proto: L4ProtoUDP, Port: 9}.String())
	assert.Equal(t, "tcp/443", ProtoPortPair{Proto: L4ProtoTCP, Port: 443}.String())
	assert.Equal(t, "unknown/0", ProtoPortPair{}.String())
}
