package main

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RawKeyTable is the key code table loaded from YAML.
type RawKeyTable struct {
	Package string       `yaml:"package"`
	Type    string       `yaml:"type"`
	Prefix  string       `yaml:"prefix"` // protocol name prefix, e.g. "KEYCODE_"
	Codes   []RawKeyCode `yaml:"codes"`
}

// RawKeyCode is one entry of the table.
type RawKeyCode struct {
	Name        string `yaml:"name"`
	Value       int32  `yaml:"value"`
	Description string `yaml:"description"`
}

var keyNamePattern = regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)

// LoadKeyTable reads and validates a key code table.
func LoadKeyTable(path string) (*RawKeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseKeyTable(data)
}

// ParseKeyTable parses and validates YAML key table data.
func ParseKeyTable(data []byte) (*RawKeyTable, error) {
	var table RawKeyTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks the table for missing fields and duplicates.
func (t *RawKeyTable) Validate() error {
	if t.Package == "" {
		return fmt.Errorf("package is required")
	}
	if t.Type == "" {
		return fmt.Errorf("type is required")
	}
	if len(t.Codes) == 0 {
		return fmt.Errorf("no key codes")
	}

	names := make(map[string]bool, len(t.Codes))
	values := make(map[int32]string, len(t.Codes))
	idents := make(map[string]string, len(t.Codes))
	for _, c := range t.Codes {
		if !keyNamePattern.MatchString(c.Name) {
			return fmt.Errorf("invalid key name %q", c.Name)
		}
		if c.Value < 0 {
			return fmt.Errorf("key %s: negative value %d", c.Name, c.Value)
		}
		if names[c.Name] {
			return fmt.Errorf("duplicate key name %s", c.Name)
		}
		if other, ok := values[c.Value]; ok {
			return fmt.Errorf("keys %s and %s share value %d", other, c.Name, c.Value)
		}
		ident := goConstName(t.Type, c.Name)
		if other, ok := idents[ident]; ok {
			return fmt.Errorf("keys %s and %s both map to %s", other, c.Name, ident)
		}
		names[c.Name] = true
		values[c.Value] = c.Name
		idents[ident] = c.Name
	}
	return nil
}
