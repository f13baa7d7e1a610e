// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// config.go - the typed configuration snapshot a Machine is built from, its
// defaults, validation and the functional options used by Build.
//
// Contract:
//   • Config is plain data: it can be copied and round-tripped
//     through YAML. Changing it never affects a Machine already built.
//   • Validate reports the first problem found, in slot order: rotors,
//     reflector, rings, positions, plugboard.
//   • Option constructors panic on out-of-range settings; catalog names and
//     plugboard pairs are data and are reported by New as errors.

package machine

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/plugboard"
)

// Slot identifies a rotor position in the machine.
type Slot int

// Rotor slots, left (slow) to right (fast).
const (
	Left Slot = iota
	Middle
	Right
)

const slots = 3

// String returns "left", "middle" or "right".
func (s Slot) String() string {
	switch s {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Config is everything needed to assemble a Machine.
type Config struct {
	Rotors    [slots]catalog.RotorType `yaml:"rotors"`              // left, middle, right
	Reflector catalog.ReflectorType    `yaml:"reflector"`           // B or C
	Rings     Settings                 `yaml:"rings"`               // Ringstellung per slot
	Positions Settings                 `yaml:"positions"`           // Grundstellung per slot
	Plugboard []string                 `yaml:"plugboard,omitempty"` // pairs such as "AB"
}

// DefaultConfig returns rotors I-II-III, reflector B, all rings and positions
// at A and an empty plugboard.
func DefaultConfig() Config {
	return Config{
		Rotors:    [slots]catalog.RotorType{catalog.RotorI, catalog.RotorII, catalog.RotorIII},
		Reflector: catalog.ReflectorB,
	}
}

// Validate checks every field without building a machine.
func (c Config) Validate() error {
	for s, name := range c.Rotors {
		if _, err := catalog.Rotor(name); err != nil {
			return fmt.Errorf("%w: %s rotor: %w", ErrBadConfig, Slot(s), err)
		}
	}
	if _, err := catalog.Reflector(c.Reflector); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	for s, v := range c.Rings {
		if !v.Valid() {
			return fmt.Errorf("%w: %s ring %d: %w", ErrBadConfig, Slot(s), int(v), ErrBadSetting)
		}
	}
	for s, v := range c.Positions {
		if !v.Valid() {
			return fmt.Errorf("%w: %s position %d: %w", ErrBadConfig, Slot(s), int(v), ErrBadSetting)
		}
	}
	if _, err := plugboard.New(c.Plugboard...); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	out := c
	if c.Plugboard != nil {
		out.Plugboard = append([]string(nil), c.Plugboard...)
	}

	return out
}

// Option adjusts a Config before Build assembles the machine.
type Option func(*Config)

// WithRotors selects the rotor for each slot.
func WithRotors(left, middle, right catalog.RotorType) Option {
	return func(c *Config) {
		c.Rotors = [slots]catalog.RotorType{left, middle, right}
	}
}

// WithReflector selects the reflector.
func WithReflector(t catalog.ReflectorType) Option {
	return func(c *Config) {
		c.Reflector = t
	}
}

// WithRings sets the ring settings. Panics if any value is outside 0..25.
func WithRings(left, middle, right int) Option {
	rings := mustSettings("WithRings", left, middle, right)
	return func(c *Config) {
		c.Rings = rings
	}
}

// WithPositions sets the starting positions. Panics if any value is outside
// 0..25.
func WithPositions(left, middle, right int) Option {
	pos := mustSettings("WithPositions", left, middle, right)
	return func(c *Config) {
		c.Positions = pos
	}
}

// WithRingLetters sets the ring settings from three letters, e.g. "BUL".
// Panics on anything else.
func WithRingLetters(letters string) Option {
	rings := mustParseLetters("WithRingLetters", letters)
	return func(c *Config) {
		c.Rings = rings
	}
}

// WithPositionLetters sets the starting positions from three letters,
// e.g. "BLA". Panics on anything else.
func WithPositionLetters(letters string) Option {
	pos := mustParseLetters("WithPositionLetters", letters)
	return func(c *Config) {
		c.Positions = pos
	}
}

// WithPlugs sets the plugboard pairs. Pairs are validated by New.
func WithPlugs(pairs ...string) Option {
	ps := append([]string(nil), pairs...)
	return func(c *Config) {
		c.Plugboard = ps
	}
}

func mustSettings(method string, vals ...int) Settings {
	var out Settings
	for i, v := range vals {
		if !Setting(v).Valid() {
			panic(fmt.Sprintf("machine: %s(%d out of range)", method, v))
		}
		out[i] = Setting(v)
	}

	return out
}

func mustParseLetters(method, letters string) Settings {
	var out Settings
	rs := []rune(letters)
	if len(rs) != slots {
		panic(fmt.Sprintf("machine: %s(%q)", method, letters))
	}
	for i, r := range rs {
		if !alphabet.Contains(r) {
			panic(fmt.Sprintf("machine: %s(%q)", method, letters))
		}
		out[i] = Setting(alphabet.ToInt(r))
	}

	return out
}
