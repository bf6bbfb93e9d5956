// Package file provides the TOML-backed configuration store.
// Settings persist in the local askdocs config directory.
package file
