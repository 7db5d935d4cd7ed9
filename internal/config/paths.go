package config

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/ado/internal/paths"
)

// FileName is the configuration file name inside each search directory.
const FileName = "config.yaml"

// Resolution is the outcome of config path resolution.
type Resolution struct {
	// Path is the selected file, or "" when nothing was found.
	Path string `json:"path" yaml:"path"`

	// SearchOrder lists every candidate considered, in order.
	SearchOrder []string `json:"search_order" yaml:"search_order"`
}

// Found reports whether a path was selected.
func (r Resolution) Found() bool {
	return r.Path != ""
}

// SearchPaths returns the two default candidates: the XDG location
// (xdgConfigHome when set, else <home>/.config) followed by <home>/.ado.
func SearchPaths(xdgConfigHome, home string) []string {
	xdgDir := filepath.Join(home, ".config")
	if xdgConfigHome != "" {
		xdgDir = xdgConfigHome
	}
	return []string{
		filepath.Join(xdgDir, paths.AppName, FileName),
		filepath.Join(home, "."+paths.AppName, FileName),
	}
}

// Resolver resolves the configuration path. The zero value probes the real filesystem.
type Resolver struct {
	// Exists reports whether a candidate path exists. Defaults to os.Stat.
	Exists func(path string) bool
}

// Resolve picks the configuration file. An explicit path beats envPath, and
// either is returned unchecked as element zero of the search order. Otherwise
// the first existing default candidate wins.
func (r Resolver) Resolve(explicit, envPath, xdgConfigHome, home string) Resolution {
	defaults := SearchPaths(xdgConfigHome, home)

	for _, chosen := range []string{explicit, envPath} {
		if chosen != "" {
			return Resolution{
				Path:        chosen,
				SearchOrder: append([]string{chosen}, defaults...),
			}
		}
	}

	exists := r.Exists
	if exists == nil {
		exists = fileExists
	}
	for _, candidate := range defaults {
		if exists(candidate) {
			return Resolution{Path: candidate, SearchOrder: defaults}
		}
	}
	return Resolution{SearchOrder: defaults}
}

// Resolve is Resolver{}.Resolve.
func Resolve(explicit, envPath, xdgConfigHome, home string) Resolution {
	return Resolver{}.Resolve(explicit, envPath, xdgConfigHome, home)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
