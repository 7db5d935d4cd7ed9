package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ado/internal/errors"
	"github.com/thoreinstein/ado/pkg/fileutil"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// knownKeys lists valid top-level config keys.
var knownKeys = map[string]bool{
	"version": true,
}

// ValidationResult is the report produced by Validate.
type ValidationResult struct {
	Valid    bool              `json:"valid" yaml:"valid"`
	Path     string            `json:"path" yaml:"path"`
	Errors   []ValidationIssue `json:"errors" yaml:"errors"`
	Warnings []ValidationIssue `json:"warnings" yaml:"warnings"`
}

// ValidationIssue is a single error or warning. Line is 0 when unknown.
type ValidationIssue struct {
	Message  string `json:"message" yaml:"message"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Severity string `json:"severity" yaml:"severity"`
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// PromoteWarnings turns every warning into an error (strict mode).
func (r *ValidationResult) PromoteWarnings() {
	if !r.HasWarnings() {
		return
	}
	for _, w := range r.Warnings {
		w.Severity = SeverityError
		r.Errors = append(r.Errors, w)
	}
	r.Warnings = []ValidationIssue{}
	r.Valid = false
}

func (r *ValidationResult) fail(line int, format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationIssue{
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Severity: SeverityError,
	})
}

func (r *ValidationResult) warn(line int, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationIssue{
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Severity: SeverityWarning,
	})
}

// Validate checks the config file at path. Problems with the file itself are
// reported in the result; only unexpected I/O failures return an error.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Path:     path,
		Valid:    true,
		Errors:   []ValidationIssue{},
		Warnings: []ValidationIssue{},
	}

	data, err := fileutil.ReadFileWithLimit(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.fail(0, "config file not found: %q", path)
		return result, nil
	case errors.Is(err, fs.ErrPermission):
		result.fail(0, "permission denied: %q", path)
		return result, nil
	case errors.Is(err, fileutil.ErrFileTooLarge):
		result.fail(0, "config file too large: %q", path)
		return result, nil
	case err != nil:
		return nil, errors.Wrap(err, "reading config")
	}

	if len(data) == 0 {
		result.fail(0, "config file is empty")
		return result, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		result.fail(0, "invalid YAML: %s", err)
		return result, nil
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		line := 0
		if root != nil {
			line = root.Line
		}
		result.fail(line, "config must be a mapping of keys to values")
		return result, nil
	}

	var versionNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if !knownKeys[key.Value] {
			result.warn(key.Line, "unknown key %q", key.Value)
			continue
		}
		if key.Value == "version" {
			versionNode = value
		}
	}

	validateVersion(result, versionNode)
	return result, nil
}

func validateVersion(result *ValidationResult, node *yaml.Node) {
	if node == nil {
		result.fail(0, "missing required key \"version\"")
		return
	}

	var version int
	if err := node.Decode(&version); err != nil {
		result.fail(node.Line, "version must be an integer (got %q)", node.Value)
		return
	}
	if version != CurrentVersion {
		result.fail(node.Line, "unsupported config version: %d (expected: %d)", version, CurrentVersion)
	}
}

// documentRoot returns the top-level content node of a parsed document.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}
