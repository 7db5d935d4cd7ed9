// Package paths provides user directory lookups for ado.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance on
// Linux and the native equivalents on macOS and Windows. The configuration
// file search order lives in config.Resolve.
package paths
