// Package cli wires configuration, the time source and the renderer into the
// fractime command.
//
// Flags override environment variables, which override the defaults taken
// from the locale. See the config package for the variables it reads.
package cli
