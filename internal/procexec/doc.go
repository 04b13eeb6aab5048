// Package procexec invokes child processes from a structured argument vector.
//
// Nothing here goes through a shell: the compiler and the built artifact are
// started directly, awaited, and reduced to a Result carrying the exit code.
// The Runner interface lets the orchestrator be exercised with a recording
// fake instead of real processes.
package procexec
