package meta

import "strings"

// compiledFeatures lists experimental features built into this binary.
var compiledFeatures []string

// FeatureList is the payload of `ado meta features`.
type FeatureList struct {
	Features []string `json:"features" yaml:"features"`
}

// Features returns the compiled-in feature flags. The slice is never nil.
func Features() FeatureList {
	return FeatureList{Features: append([]string{}, compiledFeatures...)}
}

// RenderText implements ui.TextRenderer.
func (f FeatureList) RenderText() (string, error) {
	if len(f.Features) == 0 {
		return "No experimental features enabled", nil
	}
	return strings.Join(f.Features, "\n"), nil
}
