// Package config resolves the agent's runtime configuration from four
// layered sources, in increasing precedence:
//  1. Compiled-in defaults
//  2. Process environment variables
//  3. User-supplied structured configuration (CLI flags / JSON)
//  4. Host heuristics, which may override the collection method
//
// Resolution runs exactly once at startup via [Resolver.Resolve] and
// produces an immutable [Config]. The only fatal conditions are an
// unresolvable hostname and a non-numeric scrapeInterval in the user
// configuration; every other malformed input is logged and the prior or
// default value is kept.
package config
