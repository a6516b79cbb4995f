// Package config handles configuration loading and management for sheetfn.
//
// It provides functionality for:
//   - Loading .sheetfn.yaml / sheetfn.yaml (or the .json equivalents) from the
//     working directory, then from the XDG config directory
//   - Default configuration values
//   - ${VAR} expansion in default request headers
//
// Command-line flags are merged over the loaded file with Merge.
package config
