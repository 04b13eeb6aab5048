// Package config defines the format-agnostic toolchain model: which compiler
// to call, which sources and flags to hand it, and where the artifact lands.
//
// The defaults reproduce the fixed command line the orchestrator has always
// used. A Loader may overlay values read from a file; concrete loaders, such
// as the HCL one, live in separate packages.
package config
