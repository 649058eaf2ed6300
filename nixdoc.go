// Package nixdoc provides a local, CLI-based search tool for Nix option
// documentation. It aggregates the option sets exported by NixOS,
// nix-darwin and home-manager into a uniform searchable index and
// re-fetches the underlying data on demand.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, nix/).
package nixdoc
