// Package config defines the neatfmt configuration model, the upward
// discovery of .neatfmt.yaml fragments, and the deterministic merge that
// produces the effective configuration for a search root.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration fragment file discovered in each directory.
const FileName = ".neatfmt.yaml"

// maxAncestors bounds how far FindUp climbs above a search root.
const maxAncestors = 25

// LineEnding values accepted by rules.line-ending.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
	LineEndingKeep = "keep"
)

type FilesConfig struct {
	Extensions []string `yaml:"extensions"`
	Ignore     []string `yaml:"ignore"`
}

type RulesConfig struct {
	LineEnding    string `yaml:"line-ending"`
	ExpandTabs    bool   `yaml:"expand-tabs"`
	TabWidth      int    `yaml:"tab-width"`
	TrimTrailing  bool   `yaml:"trim-trailing"`
	MaxBlankLines int    `yaml:"max-blank-lines"`
	FinalNewline  bool   `yaml:"final-newline"`
}

type Config struct {
	Files FilesConfig `yaml:"files"`
	Rules RulesConfig `yaml:"rules"`
}

// Default returns the built-in configuration that fragments merge onto.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Extensions: []string{"go", "c", "h", "cc", "cpp", "hpp", "js", "ts", "py", "rb", "java", "sh", "md", "txt", "yaml", "yml"},
			Ignore:     nil,
		},
		Rules: RulesConfig{
			LineEnding:    LineEndingLF,
			ExpandTabs:    false,
			TabWidth:      4,
			TrimTrailing:  true,
			MaxBlankLines: 2,
			FinalNewline:  true,
		},
	}
}

// ExtensionSet returns the eligible extensions as a lookup set, lowercased and
// without leading dots.
func (c *Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Files.Extensions))
	for _, ext := range c.Files.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}

// Render serializes the configuration as YAML for display.
func (c *Config) Render() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}
	return string(data), nil
}

// Fragment is one discovered configuration file and its parsed settings.
type Fragment struct {
	Path     string
	settings map[string]any
}

// LoadFragment reads and parses one configuration file.
func LoadFragment(path string) (Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fragment{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	settings := make(map[string]any)
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Fragment{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return Fragment{Path: path, settings: settings}, nil
}

// FindUp discovers configuration fragments by walking upward from dir through
// at most maxAncestors parent directories. Fragments are returned in
// ancestor-first order, so closer files win when merged later-over-earlier.
func FindUp(dir string) ([]Fragment, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %q: %w", dir, err)
	}

	var fragments []Fragment
	for depth := 0; depth <= maxAncestors; depth++ {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			fragment, err := LoadFragment(candidate)
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, fragment)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Collected nearest-first while climbing; callers want ancestor-first.
	slices.Reverse(fragments)
	return fragments, nil
}

// Merge layers fragments over the built-in defaults, ancestor-to-descendant,
// later fragments taking per-key precedence. The result is deterministic for
// a fixed fragment order.
func Merge(fragments []Fragment) (*Config, error) {
	base := make(map[string]any)
	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default configuration: %w", err)
	}
	if err := yaml.Unmarshal(defaults, &base); err != nil {
		return nil, fmt.Errorf("failed to decode default configuration: %w", err)
	}

	for _, fragment := range fragments {
		if err := mergo.Merge(&base, fragment.settings, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config file %s: %w", fragment.Path, err)
		}
	}

	merged, err := yaml.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged configuration: %w", err)
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(merged, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode merged configuration: %w", err)
	}
	return cfg, nil
}

// Resolve computes the effective configuration for a search root and logs one
// diagnostic line naming the label and the fragments that contributed.
func Resolve(label, root string) (*Config, error) {
	dir := root
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		dir = filepath.Dir(root)
	}

	fragments, err := FindUp(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := Merge(fragments)
	if err != nil {
		return nil, err
	}

	if len(fragments) == 0 {
		fmt.Fprintf(os.Stderr, "neatfmt: %s: using default configuration\n", label)
	} else {
		paths := make([]string, 0, len(fragments))
		for _, fragment := range fragments {
			paths = append(paths, fragment.Path)
		}
		fmt.Fprintf(os.Stderr, "neatfmt: %s: merged %d config file(s): %s\n", label, len(fragments), strings.Join(paths, ", "))
	}
	return cfg, nil
}
