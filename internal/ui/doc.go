// Package ui renders command payloads as text, JSON, or YAML.
//
// Commands build a structured payload plus a TextRenderer for the human
// readable form, then hand both to Print. Structured output preserves the
// field order of structs and the insertion order of OrderedMap.
package ui
