// Package project locates and loads the optional catlint.toml manifest that
// tunes section recognition and the checker rules.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"catlint/internal/catalog"
	"catlint/internal/check"
	"catlint/internal/parser"
)

// ManifestName is the file catlint looks for when resolving config.
const ManifestName = "catlint.toml"

// Manifest is a loaded catlint.toml with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML layout. Every section is optional; zero values
// fall back to the built-in defaults.
type Config struct {
	Catalog catalogConfig `toml:"catalog"`
	Check   checkConfig   `toml:"check"`
	Files   filesConfig   `toml:"files"`
}

type catalogConfig struct {
	// HeadingStyles: "markdown", "numbered".
	HeadingStyles []string `toml:"heading_styles"`
	TipLabels     []string `toml:"tip_labels"`
	DescLabels    []string `toml:"description_labels"`
	NamePattern   string   `toml:"name_pattern"`
	MaxSections   int      `toml:"max_sections"`
}

type checkConfig struct {
	Ignore                   []string `toml:"ignore"`
	SilentAgreeingDuplicates bool     `toml:"silent_agreeing_duplicates"`
}

type filesConfig struct {
	// Extensions scanned in directory mode, e.g. [".md", ".txt"].
	Extensions []string `toml:"extensions"`
}

// Find walks up from startDir looking for catlint.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load discovers and parses the manifest. ok=false без ошибки, если файла нет.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func decode(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// ParserOptions translates the manifest into parser options, starting from
// the defaults and overriding only what the file sets.
func (m *Manifest) ParserOptions() (parser.Options, error) {
	opts := parser.DefaultOptions()
	if m == nil {
		return opts, nil
	}
	c := m.Config.Catalog

	if len(c.HeadingStyles) > 0 {
		styles := make([]parser.HeadingStyle, 0, len(c.HeadingStyles))
		for _, s := range c.HeadingStyles {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "markdown":
				styles = append(styles, parser.HeadingMarkdown)
			case "numbered":
				styles = append(styles, parser.HeadingNumbered)
			default:
				return opts, fmt.Errorf("%s: unknown heading style %q", m.Path, s)
			}
		}
		opts.Styles = styles
	}
	if len(c.TipLabels) > 0 {
		opts.TipLabels = c.TipLabels
	}
	if len(c.DescLabels) > 0 {
		opts.DescriptionLabels = c.DescLabels
	}
	if c.MaxSections > 0 {
		opts.MaxSections = c.MaxSections
	}
	return opts, nil
}

// CheckConfig translates the manifest into checker config. Ignore names are
// normalized the same way entry names are, so the list is case-insensitive.
func (m *Manifest) CheckConfig() (check.Config, error) {
	var cfg check.Config
	if m == nil {
		return cfg, nil
	}

	if p := strings.TrimSpace(m.Config.Catalog.NamePattern); p != "" {
		re, err := regexp.Compile(p)
		if err != nil {
			return cfg, fmt.Errorf("%s: invalid name_pattern: %w", m.Path, err)
		}
		cfg.NamePattern = re
	}
	if len(m.Config.Check.Ignore) > 0 {
		cfg.Ignore = make(map[string]bool, len(m.Config.Check.Ignore))
		for _, name := range m.Config.Check.Ignore {
			cfg.Ignore[catalog.NormalizeName(name)] = true
		}
	}
	cfg.SilentAgreeingDuplicates = m.Config.Check.SilentAgreeingDuplicates
	return cfg, nil
}

// Extensions returns the directory-mode file extensions, defaulting to
// [".md", ".txt"]. Extensions are normalized to a leading dot, lower case.
func (m *Manifest) Extensions() ([]string, error) {
	if m == nil || len(m.Config.Files.Extensions) == 0 {
		return []string{".md", ".txt"}, nil
	}
	out := make([]string, 0, len(m.Config.Files.Extensions))
	for _, ext := range m.Config.Files.Extensions {
		e := strings.ToLower(strings.TrimSpace(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.ContainsAny(e[1:], "./\\") {
			return nil, fmt.Errorf("%s: invalid extension %q", m.Path, ext)
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return []string{".md", ".txt"}, nil
	}
	return out, nil
}
