// Package redact masks secret-looking values before they reach logs or
// diagnostic output such as `ado meta env`.
package redact

import (
	"slices"
	"strings"
	"unicode"
)

// keyWords are key segments that mark a key as sensitive. A key is split
// into words on non-alphanumeric runes and lower-to-upper case changes, so
// "api_key" and "apiKey" match KEY while "monkey" does not.
var keyWords = []string{
	"TOKEN",
	"KEY",
	"APIKEY",
	"SECRET",
	"PASSWORD",
	"PASSWD",
	"AUTH",
	"CREDENTIAL",
	"CREDENTIALS",
	"PRIVATE",
}

// tokenPrefixes are well-known credential prefixes that mark a value as
// sensitive regardless of its key.
var tokenPrefixes = []string{
	"ghp_", // GitHub personal access token
	"gho_", // GitHub OAuth token
	"ghs_", // GitHub server-to-server token
	"sk-",
	"AKIA", // AWS access key
	"xoxb-",
	"xoxp-",
}

// Mask is the placeholder for values too short to keep a suffix.
const Mask = "********"

// SensitiveKey reports whether the key name suggests a secret.
func SensitiveKey(key string) bool {
	for _, word := range words(key) {
		if slices.Contains(keyWords, strings.ToUpper(word)) {
			return true
		}
	}
	return false
}

func words(key string) []string {
	var (
		out  []string
		cur  []rune
		prev rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range key {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return out
}

// SensitiveValue reports whether the value starts with a known token prefix.
func SensitiveValue(value string) bool {
	for _, p := range tokenPrefixes {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}

// Value masks value, keeping only its last four characters.
// Values of four characters or fewer are fully masked.
func Value(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return Mask
	}
	return "****" + string(runes[len(runes)-4:])
}

// Field returns value unchanged unless key or value look sensitive.
func Field(key, value string) string {
	if SensitiveKey(key) || SensitiveValue(value) {
		return Value(value)
	}
	return value
}

// Env returns a copy of env with sensitive entries masked.
func Env(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[k] = Field(k, v)
	}
	return out
}
