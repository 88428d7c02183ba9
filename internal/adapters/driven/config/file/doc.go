// Package file provides the TOML-backed configuration store used by the
// classe CLI. Settings live in ~/.classe/config.toml unless another
// directory is given.
package file
