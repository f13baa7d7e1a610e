// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// load.go - YAML configuration files and the embedded presets.
//
// Format:
//
//	rotors: [II, IV, V]
//	reflector: B
//	rings: [B, U, L]        # letters or numbers 0..25
//	positions: [B, L, A]
//	plugboard: [AV, BS, CG]
//
// Omitted keys keep their value from the base configuration (DefaultConfig
// unless the caller supplies one); unknown keys are rejected.

package machine

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

const presetDir = "presets"

// LoadConfig decodes one YAML document from r on top of DefaultConfig and
// validates the result. An empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	return LoadConfigInto(r, DefaultConfig())
}

// LoadConfigInto decodes one YAML document from r on top of base, so that
// omitted keys keep base's values, and validates the result. base itself is
// not modified.
func LoadConfigInto(r io.Reader, base Config) (Config, error) {
	cfg := base.clone()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseConfig is LoadConfig on an in-memory document.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfigFile reads and decodes the YAML file at name on top of
// DefaultConfig.
func LoadConfigFile(name string) (Config, error) {
	return LoadConfigFileInto(name, DefaultConfig())
}

// LoadConfigFileInto reads and decodes the YAML file at name on top of base.
func LoadConfigFileInto(name string, base Config) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfigInto(f, base)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}

	return cfg, nil
}

// EncodeConfig writes cfg to w as YAML, settings in letter form.
func EncodeConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return enc.Close()
}

// Preset returns the embedded configuration called name.
func Preset(name string) (Config, error) {
	data, err := presetFS.ReadFile(path.Join(presetDir, name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}

		return Config{}, fmt.Errorf("read preset %q: %w", name, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("preset %q: %w", name, err)
	}

	return cfg, nil
}

// PresetNames lists the embedded presets in lexical order.
func PresetNames() []string {
	entries, err := presetFS.ReadDir(presetDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok && !e.IsDir() {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	return names
}
