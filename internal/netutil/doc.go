// Package netutil provides parsing helpers for network prefixes and
// transport protocol/port pairs used by the network-flow configuration.
package netutil
