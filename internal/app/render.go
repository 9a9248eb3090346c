package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes v to w in the requested format. A nil v writes nothing.
func Render(w io.Writer, v any, format string) error {
	if v == nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		return nil
	case FormatYAML, "yml":
		// go through JSON first so keys keep their wire names
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
