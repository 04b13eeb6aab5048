// Package app contains the orchestrator: it loads the toolchain model,
// dispatches a subcommand, compiles the VM sources and, for `run`, executes
// and removes the artifact. It is decoupled from the CLI entry point so that
// tests can drive it with a recording process runner.
package app
