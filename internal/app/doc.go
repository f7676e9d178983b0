// Package app bundles the dependencies shared by CLI subcommands.
package app
