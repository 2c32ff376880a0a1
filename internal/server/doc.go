// Package server exposes the agent's introspection HTTP endpoint:
// readiness and a summary of the resolved configuration. It is
// read-only; nothing served here can change agent state.
package server
