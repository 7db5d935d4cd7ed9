package meta

import (
	"fmt"
	"runtime"
	"strings"
)

// Name is the binary name reported by `ado meta info`.
const Name = "ado"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewBuildInfo combines the ldflags values with the Go runtime details.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Name:      Name,
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// RenderText implements ui.TextRenderer.
func (b BuildInfo) RenderText() (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Version: %s\n", b.Version)
	fmt.Fprintf(&sb, "Commit: %s\n", b.Commit)
	fmt.Fprintf(&sb, "BuildTime: %s\n", b.BuildTime)
	fmt.Fprintf(&sb, "GoVersion: %s\n", b.GoVersion)
	fmt.Fprintf(&sb, "Platform: %s\n", b.Platform)
	return sb.String(), nil
}
