// Package hcl provides the HCL implementation of config.Loader. It parses the
// optional toolchain file, evaluates each attribute against an `env` object
// built from the process environment, and lays the results over the default
// toolchain model.
package hcl
