// Package version reports build information for the ltl command.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/StarQTius/Little-Type-Library/version.Version=1.0.0" ./cmd/ltl
//
// Builds with the ltl_unchecked tag carry a "+unchecked" suffix so that
// binaries without contract checks are recognisable from their version.
package version
