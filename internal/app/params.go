package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadParamsFile reads a JSON or YAML params document and decodes it into dst.
func LoadParamsFile(path string, dst any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("params file path is empty")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read params file: %w", err)
	}
	return DecodeParams(raw, filepath.Ext(path), dst)
}

// DecodeParams decodes data into dst. ext selects the format (".json", ".yaml",
// ".yml"); an empty ext tries JSON then YAML.
func DecodeParams(data []byte, ext string, dst any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "json", ext: ".json", fn: json.Unmarshal},
		{name: "yaml", ext: ".yaml", fn: decodeYAMLAsJSON},
		{name: "yaml", ext: ".yml", fn: decodeYAMLAsJSON},
	}

	var errs []error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if err := d.fn(data, dst); err != nil {
			errs = append(errs, fmt.Errorf("decode %s params: %w", d.name, err))
			continue
		}
		return nil
	}
	if len(errs) == 0 {
		return fmt.Errorf("params format %q not recognized (expected YAML or JSON)", ext)
	}
	return errors.Join(errs...)
}

// decodeYAMLAsJSON routes YAML through JSON so field names match the wire
// names (yaml.v3 would otherwise expect lower-cased keys).
func decodeYAMLAsJSON(data []byte, dst any) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	normalizeTimestamps(&root)

	var doc any
	if err := root.Decode(&doc); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// yamlTimestampLayouts are the plain-scalar forms YAML resolves as timestamps.
var yamlTimestampLayouts = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// normalizeTimestamps rewrites unquoted timestamp scalars, including
// date-only values, as RFC 3339 strings. Quoted scalars are left alone.
func normalizeTimestamps(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		for _, layout := range yamlTimestampLayouts {
			if t, err := time.Parse(layout, n.Value); err == nil {
				n.Value = t.UTC().Format(time.RFC3339Nano)
				n.Tag = "!!str"
				break
			}
		}
	}
	for _, c := range n.Content {
		normalizeTimestamps(c)
	}
}
