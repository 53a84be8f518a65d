package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalName is the per-presentation config file, looked up next to the document.
const LocalName = "plaindeck.toml"

// Loader layers config files over the defaults. Each file only overrides the
// keys it sets.
type Loader struct {
	GlobalPath string
}

// NewLoader returns a Loader using ~/.config/plaindeck/config.toml as the
// global file.
func NewLoader() *Loader {
	l := &Loader{}
	if dir, err := os.UserConfigDir(); err == nil {
		l.GlobalPath = filepath.Join(dir, "plaindeck", "config.toml")
	}
	return l
}

// Load returns defaults overlaid by the global file, the local file beside
// presentationPath and finally explicitPath. Missing global and local files
// are skipped; a missing explicit file is an error.
func (l *Loader) Load(presentationPath, explicitPath string) (*Config, error) {
	cfg := Default()

	if l.GlobalPath != "" {
		if err := decodeOptional(l.GlobalPath, cfg); err != nil {
			return nil, err
		}
	}

	if presentationPath != "" {
		local := filepath.Join(filepath.Dir(presentationPath), LocalName)
		if err := decodeOptional(local, cfg); err != nil {
			return nil, err
		}
	}

	if explicitPath != "" {
		if err := decode(explicitPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func decodeOptional(path string, cfg *Config) error {
	err := decode(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func decode(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 - path is a config location
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parsing TOML from %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	f, err := os.Create(path) // #nosec G304 - path chosen by the user
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	enc.Indent = "  "
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}
	return nil
}
