package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a manifest encoding.
type Format string

// Supported encodings.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Load reads the manifest at path. A manifest without a name takes the file
// name without its extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the caller
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		base := filepath.Base(path)
		m.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return m, nil
}

// Parse decodes data in the given format. Empty input is an empty manifest.
// The result is not validated; Build does that.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("parsing TOML: unknown keys %s", strings.Join(keys, ", "))
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}

	return &m, nil
}
