package injector

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/honkjs/injector/honk"
)

// Format is the encoding of a services file.
type Format string

// Supported services file formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for a services file whose format is not
// one of the supported ones.
var ErrUnsupportedFormat = errors.New("injector: unsupported services format")

// FormatFromPath maps a file extension to a [Format]: ".json", ".yaml",
// ".yml" and ".toml" are recognized, case-insensitively.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadServices reads a services record from a file. The format is taken from
// the file extension (see [FormatFromPath]) and the top level must be an
// object. Values are decoded into plain Go values (strings, numbers, bools,
// slices and nested maps); nothing is validated beyond that.
func LoadServices(path string) (honk.Services, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("injector: read services: %w", err)
	}

	return ParseServices(data, format)
}

// ParseServices decodes a services record from data in the given format.
// Empty input yields an empty record.
func ParseServices(data []byte, format Format) (honk.Services, error) {
	services := honk.Services{}

	if len(bytes.TrimSpace(data)) == 0 {
		return services, nil
	}

	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &services)
	case FormatYAML:
		err = yaml.Unmarshal(data, &services)
	case FormatTOML:
		err = toml.Unmarshal(data, &services)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("injector: parse services: %w", err)
	}

	// A JSON or YAML null document decodes into a nil map.
	if services == nil {
		services = honk.Services{}
	}

	return services, nil
}

// NewFromFile loads a services record with [LoadServices] and returns the
// middleware [New] builds from it. Load errors surface here, before anything
// is installed.
func NewFromFile(path string, opts ...Option) (honk.Middleware, error) {
	services, err := LoadServices(path)
	if err != nil {
		return nil, err
	}

	return New(services, opts...), nil
}
