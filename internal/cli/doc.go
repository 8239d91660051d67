// Package cli provides the monju command-line front end.
//
// It wires configuration, logging and the entry repository into an
// EntryService and exposes it as cobra subcommands:
//
//   - add <topic> <text> [--tags T ...]
//   - list [--topic T]
//   - search <query>
//   - vote <id> [--down]
//   - version
//
// A vote on an unknown id prints a message to stderr and still exits 0.
// Storage failures are reported as "Error: ..." and exit 1.
package cli
