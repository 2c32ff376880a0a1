// Package hostinfo resolves the identity of the underlying host: its
// hostname, paths into the host filesystem when the agent runs inside a
// container, and kernel facts consumed by the collection-method
// heuristics.
package hostinfo
