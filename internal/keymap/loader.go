package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a keymap file format.
type Format string

const (
	// FormatJSON is the JSON keymap file format.
	FormatJSON Format = "json"
	// FormatTOML is the TOML keymap file format.
	FormatTOML Format = "toml"
	// FormatYAML is the YAML keymap file format.
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Unknown extensions
// default to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader loads keymaps from configuration files.
type Loader struct {
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a file, picking the format by extension.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return l.LoadReader(f, FormatForPath(path))
}

// LoadReader loads a keymap from a reader in the given format.
func (l *Loader) LoadReader(r io.Reader, format Format) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var config keymapConfig
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &config)
	case FormatYAML:
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s keymap: %w", format, err)
	}

	return config.toKeymap(), nil
}

// LoadAll loads every keymap file found in the search paths.
// Unreadable files are skipped; loading is best-effort like the rest of
// the engine.
func (l *Loader) LoadAll() []*Keymap {
	keymaps := make([]*Keymap, 0)

	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.json", "*.toml", "*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			for _, path := range matches {
				km, err := l.LoadFile(path)
				if err != nil {
					continue
				}
				keymaps = append(keymaps, km)
			}
		}
	}

	return keymaps
}

// keymapConfig is the serialized structure for keymap files.
type keymapConfig struct {
	Name     string          `json:"name" toml:"name" yaml:"name"`
	Bindings []bindingConfig `json:"bindings" toml:"bindings" yaml:"bindings"`
}

type bindingConfig struct {
	Keys        string   `json:"keys" toml:"keys" yaml:"keys"`
	Action      string   `json:"action,omitempty" toml:"action,omitempty" yaml:"action,omitempty"`
	Actions     []string `json:"actions,omitempty" toml:"actions,omitempty" yaml:"actions,omitempty"`
	Description string   `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Category    string   `json:"category,omitempty" toml:"category,omitempty" yaml:"category,omitempty"`
}

func (c *keymapConfig) toKeymap() *Keymap {
	km := &Keymap{
		Name:     c.Name,
		Bindings: make([]Binding, 0, len(c.Bindings)),
	}
	for _, bc := range c.Bindings {
		actions := bc.Actions
		if bc.Action != "" {
			actions = append([]string{bc.Action}, actions...)
		}
		km.Bindings = append(km.Bindings, Binding{
			Keys:        bc.Keys,
			Actions:     actions,
			Description: bc.Description,
			Category:    bc.Category,
		})
	}
	return km
}

func (k *Keymap) toConfig() keymapConfig {
	config := keymapConfig{
		Name:     k.Name,
		Bindings: make([]bindingConfig, 0, len(k.Bindings)),
	}
	for _, b := range k.Bindings {
		config.Bindings = append(config.Bindings, bindingConfig{
			Keys:        b.Keys,
			Actions:     b.Actions,
			Description: b.Description,
			Category:    b.Category,
		})
	}
	return config
}

// MarshalJSON serializes the keymap in its file form.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(k.toConfig(), "", "  ")
}

// SaveFile writes the keymap to a JSON file.
func (k *Keymap) SaveFile(path string) error {
	data, err := k.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
