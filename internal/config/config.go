// Package config loads the JSON configuration file of the tagreader command.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebassi/taglib-go/pkg/taglib"
	"github.com/ebassi/taglib-go/pkg/taglib/logging"
)

// Output formats understood by tagreader.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the on-disk configuration. Every field is optional; command-line
// flags override what the file sets.
type Config struct {
	// Unicode sets taglib.SetStringsUnicode. Nil keeps TagLib's default.
	Unicode *bool `json:"unicode,omitempty"`

	// FileTypes maps a file extension (".oga") to the type it should be
	// opened as, for files whose extension TagLib does not know.
	FileTypes map[string]taglib.FileType `json:"file_types,omitempty"`

	// Output is "text" (default) or "json".
	Output string `json:"output,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// Concurrency bounds parallel reads. Zero means one per CPU.
	Concurrency int `json:"concurrency,omitempty"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs sanity checks and normalizes extension keys to lower
// case.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}

	switch c.Output {
	case "", OutputText, OutputJSON:
	default:
		return fmt.Errorf("output: unknown format %q", c.Output)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency: must not be negative, got %d", c.Concurrency)
	}

	normalized := make(map[string]taglib.FileType, len(c.FileTypes))
	for ext, ft := range c.FileTypes {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("file_types: extension %q must start with a dot", ext)
		}
		if !ft.Valid() {
			return fmt.Errorf("file_types[%s]: %w", ext, taglib.ErrInvalidFileType)
		}
		key := strings.ToLower(ext)
		if prev, ok := normalized[key]; ok && prev != ft {
			return fmt.Errorf("file_types: conflicting entries for %q", key)
		}
		normalized[key] = ft
	}
	c.FileTypes = normalized
	return nil
}

// Resolver returns a function suitable for taglib.WithFileTypeResolver. It
// matches extensions case-insensitively.
func (c *Config) Resolver() func(path string) (taglib.FileType, bool) {
	types := c.FileTypes
	return func(path string) (taglib.FileType, bool) {
		ft, ok := types[strings.ToLower(filepath.Ext(path))]
		return ft, ok
	}
}
