package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantValid    bool
		wantErrors   []ValidationIssue
		wantWarnings []ValidationIssue
	}{
		{
			name:      "valid config",
			content:   "version: 1\n",
			wantValid: true,
		},
		{
			name:       "empty file",
			content:    "",
			wantErrors: []ValidationIssue{{Message: "config file is empty", Severity: SeverityError}},
		},
		{
			name:       "missing version",
			content:    "# just a comment\nother: true\n",
			wantErrors: []ValidationIssue{{Message: `missing required key "version"`, Severity: SeverityError}},
			wantWarnings: []ValidationIssue{
				{Message: `unknown key "other"`, Line: 2, Severity: SeverityWarning},
			},
		},
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErrors: []ValidationIssue{
				{Message: "unsupported config version: 2 (expected: 1)", Line: 1, Severity: SeverityError},
			},
		},
		{
			name:    "non integer version",
			content: "version: one\n",
			wantErrors: []ValidationIssue{
				{Message: `version must be an integer (got "one")`, Line: 1, Severity: SeverityError},
			},
		},
		{
			name:      "unknown keys are warnings with lines",
			content:   "version: 1\nfoo: bar\nbaz: 2\n",
			wantValid: true,
			wantWarnings: []ValidationIssue{
				{Message: `unknown key "foo"`, Line: 2, Severity: SeverityWarning},
				{Message: `unknown key "baz"`, Line: 3, Severity: SeverityWarning},
			},
		},
		{
			name:    "sequence instead of mapping",
			content: "- version\n",
			wantErrors: []ValidationIssue{
				{Message: "config must be a mapping of keys to values", Line: 1, Severity: SeverityError},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			got, err := Validate(path)
			require.NoError(t, err)

			assert.Equal(t, path, got.Path)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantErrors == nil {
				tt.wantErrors = []ValidationIssue{}
			}
			if tt.wantWarnings == nil {
				tt.wantWarnings = []ValidationIssue{}
			}
			assert.Equal(t, tt.wantErrors, got.Errors)
			assert.Equal(t, tt.wantWarnings, got.Warnings)
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	got, err := Validate(writeConfig(t, "version: [1\n"))
	require.NoError(t, err)

	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0].Message, "invalid YAML")
}

func TestValidate_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	got, err := Validate(path)
	require.NoError(t, err)

	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0].Message, "config file not found")
}

func TestValidate_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	path := writeConfig(t, "version: 1\n")
	require.NoError(t, os.Chmod(path, 0o000))

	got, err := Validate(path)
	require.NoError(t, err)

	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0].Message, "permission denied")
}

func TestValidationResult_PromoteWarnings(t *testing.T) {
	got, err := Validate(writeConfig(t, "version: 1\nextra: true\n"))
	require.NoError(t, err)
	require.True(t, got.Valid)
	require.True(t, got.HasWarnings())

	got.PromoteWarnings()

	assert.False(t, got.Valid)
	assert.False(t, got.HasWarnings())
	require.True(t, got.HasErrors())
	assert.Equal(t, ValidationIssue{Message: `unknown key "extra"`, Line: 2, Severity: SeverityError}, got.Errors[0])
}

func TestValidationResult_PromoteWarnings_NoWarnings(t *testing.T) {
	r := &ValidationResult{Valid: true, Errors: []ValidationIssue{}, Warnings: []ValidationIssue{}}
	r.PromoteWarnings()
	assert.True(t, r.Valid)
}
