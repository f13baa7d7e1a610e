// SPDX-License-Identifier: MIT
// Package: enigma/reflector
//
// reflector.go - construction, validation and the reflection lookup.
//
// Invariants:
//   • wiring[wiring[i]] == i for every i (involution).
//   • wiring[i] != i for every i (no fixed points).

package reflector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

var (
	// ErrBadWiring indicates a wiring that is not a permutation of A..Z.
	ErrBadWiring = errors.New("reflector: wiring is not a permutation of A..Z")

	// ErrNotInvolution indicates a wiring where some contact is not paired
	// symmetrically, or is wired to itself.
	ErrNotInvolution = errors.New("reflector: wiring is not a fixed-point-free involution")
)

// Reflector is an immutable contact pairing.
type Reflector struct {
	wiring [alphabet.Size]int
}

// New parses a 26-letter wiring string such as "YRUHQSLDPXNGOKMIEBFZCWVJAT".
// Complexity: O(26).
func New(wiring string) (Reflector, error) {
	var rf Reflector
	if len(wiring) != alphabet.Size {
		return rf, fmt.Errorf("%w: length %d", ErrBadWiring, len(wiring))
	}

	var seen [alphabet.Size]bool
	for i, r := range wiring {
		j := alphabet.ToInt(r)
		if j < 0 || seen[j] {
			return rf, fmt.Errorf("%w: %q at %d", ErrBadWiring, r, i)
		}
		seen[j] = true
		rf.wiring[i] = j
	}

	for i, j := range rf.wiring {
		if i == j || rf.wiring[j] != i {
			return rf, fmt.Errorf("%w: %c→%c", ErrNotInvolution, alphabet.ToChar(i), alphabet.ToChar(j))
		}
	}

	return rf, nil
}

// Reflect maps a contact index to its partner.
func (rf Reflector) Reflect(i int) int {
	return rf.wiring[alphabet.Mod(i, alphabet.Size)]
}

// ReflectRune maps a letter to its partner; non-letters are returned as-is.
func (rf Reflector) ReflectRune(r rune) rune {
	i := alphabet.ToInt(r)
	if i < 0 {
		return r
	}

	return alphabet.ToChar(rf.wiring[i])
}

// String returns the wiring in letter form.
func (rf Reflector) String() string {
	b := make([]rune, alphabet.Size)
	for i, j := range rf.wiring {
		b[i] = alphabet.ToChar(j)
	}

	return string(b)
}
