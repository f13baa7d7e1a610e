// SPDX-License-Identifier: MIT
// Package: enigma/rotor
//
// types.go - the immutable wiring description and the rotor instance.

package rotor

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

// Spec is an immutable rotor wiring: the forward permutation, written as the
// letter each contact A..Z is wired to, and the notch letter.
type Spec struct {
	Wiring string // forward permutation, 26 distinct letters
	Notch  rune   // letter shown in the window when the notch engages
}

// Validate checks that Wiring is a permutation of A..Z and Notch a letter.
// Complexity: O(26).
func (s Spec) Validate() error {
	_, err := s.parse()

	return err
}

// parse validates s and returns its forward table. Validate and New both
// go through here.
func (s Spec) parse() ([alphabet.Size]int, error) {
	fwd, err := parsePermutation(s.Wiring)
	if err != nil {
		return fwd, err
	}
	if !alphabet.Contains(s.Notch) {
		return fwd, fmt.Errorf("%w: got %q", ErrBadNotch, s.Notch)
	}

	return fwd, nil
}

// Rotor is one wheel of the machine. It is a plain value: the wiring tables
// are arrays, so copying a Rotor copies all of its state and two machines
// can never share a rotor by accident.
//
// Invariant: backward[forward[i]] == i for every i in 0..25.
type Rotor struct {
	forward  [alphabet.Size]int // contact → contact, entry side to reflector side
	backward [alphabet.Size]int // inverse of forward
	notch    int                // index of the notch letter
	position int                // 0..25, advances with Step
	ring     int                // 0..25, Ringstellung
}

// parsePermutation converts a 26-letter wiring string into an index table,
// rejecting anything that is not a bijection on A..Z.
func parsePermutation(wiring string) ([alphabet.Size]int, error) {
	var table [alphabet.Size]int
	if len(wiring) != alphabet.Size {
		return table, fmt.Errorf("%w: length %d", ErrBadWiring, len(wiring))
	}

	var seen [alphabet.Size]bool
	for i, r := range wiring {
		j := alphabet.ToInt(r)
		if j < 0 {
			return table, fmt.Errorf("%w: %q at %d", ErrBadWiring, r, i)
		}
		if seen[j] {
			return table, fmt.Errorf("%w: %q repeated", ErrBadWiring, r)
		}
		seen[j] = true
		table[i] = j
	}

	return table, nil
}
