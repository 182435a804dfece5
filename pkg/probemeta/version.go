// Package probemeta holds module-level metadata for the probemeta tools.
package probemeta

// Version is the probemeta release version, printed by the CLI.
const Version = "v0.1.0"
