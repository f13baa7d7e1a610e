// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// machine.go - assembly, the stepping mechanism and the signal path.
//
// Signal path for one letter (after stepping):
//   plugboard → right → middle → left → reflector → left → middle → right → plugboard
//
// Stepping (once per letter, before the signal path), with both notch tests
// taken on the pre-step positions:
//   1. middle at its notch → middle and left step (double step);
//   2. otherwise right at its notch → middle steps;
//   3. right always steps.

package machine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/plugboard"
	"github.com/katalvlaran/enigma/reflector"
	"github.com/katalvlaran/enigma/rotor"
)

// Machine is a three-rotor Enigma. It owns its rotors (held by value) and its
// plugboard; nothing is shared with other machines or with the Config it was
// built from.
//
// A Machine is not safe for concurrent use. Use one Machine per message
// stream.
type Machine struct {
	rotors    [slots]rotor.Rotor
	reflector reflector.Reflector
	plugboard *plugboard.Plugboard
	cfg       Config
}

// New assembles a fresh machine from cfg: plugboard, reflector, the three
// rotors in left, middle, right order, then ring settings and positions.
// Every call returns an independent machine.
// Complexity: O(26) time and space.
func New(cfg Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pb, err := plugboard.New(cfg.Plugboard...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	w, err := catalog.Reflector(cfg.Reflector)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	rf, err := reflector.New(w)
	if err != nil {
		return nil, fmt.Errorf("%w: reflector %s: %w", ErrBadConfig, cfg.Reflector, err)
	}

	m := &Machine{reflector: rf, plugboard: pb, cfg: cfg.clone()}
	for s, name := range cfg.Rotors {
		spec, err := catalog.Rotor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s rotor: %w", ErrBadConfig, Slot(s), err)
		}
		if m.rotors[s], err = rotor.New(spec); err != nil {
			return nil, fmt.Errorf("%w: %s rotor %s: %w", ErrBadConfig, Slot(s), name, err)
		}
	}

	if err = m.Configure(cfg.Rings.ints(), cfg.Positions.ints()); err != nil {
		return nil, err
	}

	return m, nil
}

// Build applies opts to DefaultConfig and assembles the result with New.
func Build(opts ...Option) (*Machine, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(cfg)
}

// Configure sets the ring setting and position of every rotor, left to
// right. It is part of preparing a message and must not be interleaved with
// enciphering. The values become the state Reset returns to.
func (m *Machine) Configure(rings, positions [slots]int) error {
	for s := Left; s <= Right; s++ {
		if !Setting(rings[s]).Valid() {
			return fmt.Errorf("%s ring %d: %w", s, rings[s], ErrBadSetting)
		}
		if !Setting(positions[s]).Valid() {
			return fmt.Errorf("%s position %d: %w", s, positions[s], ErrBadSetting)
		}
	}

	for s := Left; s <= Right; s++ {
		m.rotors[s].SetRingSetting(rings[s])
		m.rotors[s].SetPosition(positions[s])
		m.cfg.Rings[s] = Setting(rings[s])
		m.cfg.Positions[s] = Setting(positions[s])
	}

	return nil
}

// Reset returns every rotor to the positions last applied by New or
// Configure. The result is indistinguishable from rebuilding the machine.
func (m *Machine) Reset() {
	for s := Left; s <= Right; s++ {
		m.rotors[s].SetRingSetting(int(m.cfg.Rings[s]))
		m.rotors[s].SetPosition(int(m.cfg.Positions[s]))
	}
}

// step advances the rotors for one key press.
func (m *Machine) step() {
	left, middle, right := &m.rotors[Left], &m.rotors[Middle], &m.rotors[Right]

	rightAtNotch := right.IsAtNotch()
	middleAtNotch := middle.IsAtNotch()

	if middleAtNotch {
		middle.Step()
		left.Step()
	} else if rightAtNotch {
		middle.Step()
	}
	right.Step()
}

// Encipher presses one key and returns the lamp that lights. Characters
// outside A..Z are returned unchanged and do not move the rotors.
// Complexity: O(1).
func (m *Machine) Encipher(r rune) rune {
	if !alphabet.Contains(r) {
		return r
	}

	m.step()

	i := m.plugboard.ProcessIndex(alphabet.ToInt(r))
	for s := Right; s >= Left; s-- {
		i = m.rotors[s].Forward(i)
	}
	i = m.reflector.Reflect(i)
	for s := Left; s <= Right; s++ {
		i = m.rotors[s].Backward(i)
	}

	return alphabet.ToChar(m.plugboard.ProcessIndex(i))
}

// EncipherString runs Encipher over every rune of text.
func (m *Machine) EncipherString(text string) string {
	return strings.Map(m.Encipher, text)
}

// DisplayPositions returns the letters in the rotor windows, left to right.
func (m *Machine) DisplayPositions() [slots]rune {
	var out [slots]rune
	for s := range m.rotors {
		out[s] = m.rotors[s].Letter()
	}

	return out
}

// Positions returns the rotor positions 0..25, left to right.
func (m *Machine) Positions() [slots]int {
	var out [slots]int
	for s := range m.rotors {
		out[s] = m.rotors[s].Position()
	}

	return out
}

// Config returns the configuration the machine was built with, including
// any later Configure call, with the plugboard in canonical form.
func (m *Machine) Config() Config {
	out := m.cfg.clone()
	out.Plugboard = nil
	if m.plugboard.Len() > 0 {
		out.Plugboard = m.plugboard.Pairs()
	}

	return out
}
