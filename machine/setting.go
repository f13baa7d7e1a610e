// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// setting.go - Setting, the value of a ring setting or rotor position, and its
// text/YAML forms. A Setting is written either as a letter ("B") or as a
// number ("1"); both denote the same value.

package machine

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/enigma/alphabet"
)

// Setting is a ring setting or rotor position in 0..25.
type Setting int

// Valid reports whether s is in 0..25.
func (s Setting) Valid() bool {
	return s >= 0 && int(s) < alphabet.Size
}

// Letter returns the letter form of s. Only meaningful when s is Valid.
func (s Setting) Letter() rune {
	return alphabet.ToChar(int(s))
}

// String returns the letter form of s, or the number if s is out of range.
func (s Setting) String() string {
	if !s.Valid() {
		return strconv.Itoa(int(s))
	}

	return string(s.Letter())
}

// ParseSetting accepts a single letter A..Z or a decimal number 0..25.
func ParseSetting(text string) (Setting, error) {
	t := strings.TrimSpace(text)
	if rs := []rune(t); len(rs) == 1 && alphabet.Contains(rs[0]) {
		return Setting(alphabet.ToInt(rs[0])), nil
	}

	n, err := strconv.Atoi(t)
	if err != nil || !Setting(n).Valid() {
		return 0, fmt.Errorf("%w: got %q", ErrBadSetting, text)
	}

	return Setting(n), nil
}

// UnmarshalYAML decodes a scalar letter or number.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrBadSetting, node.Line)
	}

	v, err := ParseSetting(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v

	return nil
}

// MarshalYAML encodes s in letter form.
func (s Setting) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Settings is one Setting per rotor slot, left to right.
type Settings [slots]Setting

// ParseSettings reads three settings written either as three letters
// ("BLA") or as a comma-separated list ("1,11,0" or "B, L, 0").
func ParseSettings(text string) (Settings, error) {
	var out Settings

	var parts []string
	if strings.Contains(text, ",") {
		parts = strings.Split(text, ",")
	} else {
		for _, r := range strings.TrimSpace(text) {
			parts = append(parts, string(r))
		}
	}
	if len(parts) != slots {
		return out, fmt.Errorf("%w: want %d settings, got %q", ErrBadSetting, slots, text)
	}

	for i, p := range parts {
		v, err := ParseSetting(p)
		if err != nil {
			return out, err
		}
		out[i] = v
	}

	return out, nil
}

// String returns the three settings as letters, e.g. "BLA".
func (ss Settings) String() string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteString(s.String())
	}

	return b.String()
}

func (ss Settings) ints() [slots]int {
	var out [slots]int
	for i, s := range ss {
		out[i] = int(s)
	}

	return out
}
