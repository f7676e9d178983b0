// Package commands defines the zeroize CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - hold   Read a secret and keep it in wipeable memory until interrupted
//   - check  Drive sample secrets through the wipe lifecycle and verify
//     the contract
//
// # Implementation
//
// The root command builds the shared app context (the secret vault)
// before any subcommand runs.
package commands
