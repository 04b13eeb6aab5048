// Package cli checks the command line, reads ambient settings from the
// environment, and handles process-level concerns like exit codes. The only
// positional input is the subcommand; it is passed on untouched so that
// dispatch stays an exact match.
package cli
