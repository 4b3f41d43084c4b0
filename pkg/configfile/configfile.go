// Package configfile decodes the YAML/JSON registries (feeds, publishers).
package configfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when no decoder accepts the content.
var ErrUnknownFormat = errors.New("format not recognized (expected YAML or JSON)")

type decoder struct {
	ext string
	fn  func([]byte, any) error
}

var decoders = []decoder{
	{ext: ".yaml", fn: yaml.Unmarshal},
	{ext: ".yml", fn: yaml.Unmarshal},
	{ext: ".json", fn: json.Unmarshal},
}

// Load reads path and decodes it into out, picking the decoder by extension.
func Load(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("file path is empty")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return Decode(raw, filepath.Ext(path), out)
}

// Decode unmarshals data into out. An empty ext tries every known format;
// a known ext reports that decoder's error.
func Decode(data []byte, ext string, out any) error {
	ext = strings.ToLower(strings.TrimSpace(ext))
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		err := d.fn(data, out)
		if err == nil {
			return nil
		}
		if ext != "" {
			return fmt.Errorf("decode %s: %w", ext, err)
		}
	}
	return ErrUnknownFormat
}
