package netutil

import "fmt"

// L4Proto identifies a transport-layer protocol.
type L4Proto int

const (
	L4ProtoUnknown L4Proto = iota
	L4ProtoTCP
	L4ProtoUDP
	L4ProtoICMP
)

func (p L4Proto) String() string {
	switch p {
	case L4ProtoTCP:
		return "tcp"
	case L4ProtoUDP:
		return "udp"
	case L4ProtoICMP:
		return "icmp"
	default:
		return "unknown"
	}
}

// ProtoPortPair is a transport protocol together with a port number.
// Connection endpoints matching a configured pair are dropped from flow
// reporting.
type ProtoPortPair struct {
	Proto L4Proto
	Port  uint16
}

func (p ProtoPortPair) String() string {
	return fmt.Sprintf("%s/%d", p.Proto, p.Port)
}
