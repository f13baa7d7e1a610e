// SPDX-License-Identifier: MIT
// Package: enigma/plugboard
//
// plugboard.go - the Steckerbrett: a symmetric partial permutation applied
// on entry to and exit from the rotor stack.
//
// Invariants:
//   • wiring[wiring[i]] == i for every i (reciprocity).
//   • Unpaired letters map to themselves.
//   • count == number of i with wiring[i] > i, hence count ≤ 13.

package plugboard

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

// Plugboard is a set of disjoint letter pairs. The zero value is not ready
// for use; call New.
type Plugboard struct {
	wiring [alphabet.Size]int
	count  int
}

// New returns a plugboard wired with the given pairs, e.g. New("AB", "CD").
// It is strict: a malformed pair, a self pair or a letter used twice fails
// the whole call and nothing is applied.
// Complexity: O(26 + len(pairs)).
func New(pairs ...string) (*Plugboard, error) {
	pb := &Plugboard{}
	pb.reset()

	for _, p := range pairs {
		a, b, err := parsePair(p)
		if err != nil {
			return nil, err
		}
		if err = pb.Connect(a, b); err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
	}

	return pb, nil
}

func (pb *Plugboard) reset() {
	for i := range pb.wiring {
		pb.wiring[i] = i
	}
	pb.count = 0
}

// Connect wires a to b. Both must be letters, distinct, and not already
// part of another pair.
func (pb *Plugboard) Connect(a, b rune) error {
	i, j := alphabet.ToInt(a), alphabet.ToInt(b)
	if i < 0 || j < 0 {
		return fmt.Errorf("%w: got %q%q", ErrMalformedPair, a, b)
	}
	if i == j {
		return fmt.Errorf("%w: %c", ErrSelfPair, a)
	}
	if pb.wiring[i] != i {
		return fmt.Errorf("%w: %c", ErrLetterInUse, a)
	}
	if pb.wiring[j] != j {
		return fmt.Errorf("%w: %c", ErrLetterInUse, b)
	}

	pb.wiring[i], pb.wiring[j] = j, i
	pb.count++

	return nil
}

// Disconnect removes the pair containing r. It is a no-op when r is not
// plugged or not a letter.
func (pb *Plugboard) Disconnect(r rune) {
	i := alphabet.ToInt(r)
	if i < 0 || pb.wiring[i] == i {
		return
	}

	j := pb.wiring[i]
	pb.wiring[i], pb.wiring[j] = i, j
	pb.count--
}

// Process returns the partner of r, or r itself when r is unplugged or not
// a letter. It never fails.
func (pb *Plugboard) Process(r rune) rune {
	i := alphabet.ToInt(r)
	if i < 0 {
		return r
	}

	return alphabet.ToChar(pb.wiring[i])
}

// ProcessIndex is Process on contact indices.
func (pb *Plugboard) ProcessIndex(i int) int {
	return pb.wiring[alphabet.Mod(i, alphabet.Size)]
}

// Len returns the number of connected pairs.
func (pb *Plugboard) Len() int { return pb.count }

// Pairs returns the connected pairs in canonical form: each pair written with
// its lower letter first, pairs sorted.
func (pb *Plugboard) Pairs() []string {
	out := make([]string, 0, pb.count)
	for i, j := range pb.wiring {
		if j > i {
			out = append(out, string([]rune{alphabet.ToChar(i), alphabet.ToChar(j)}))
		}
	}

	return out
}

// Normalize resolves a wholesale list of pairs the way a plugboard editor
// rebuilds its state: malformed and self pairs are rejected, but when two
// pairs share a letter the later one wins and the earlier one is dropped.
// The result is canonical (see Pairs) and always accepted by New.
// Complexity: O(26 + len(pairs)).
func Normalize(pairs []string) ([]string, error) {
	pb := &Plugboard{}
	pb.reset()

	for _, p := range pairs {
		a, b, err := parsePair(p)
		if err != nil {
			return nil, err
		}
		pb.Disconnect(a)
		pb.Disconnect(b)
		if err = pb.Connect(a, b); err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
	}

	return pb.Pairs(), nil
}

// parsePair splits a two-letter pair string.
func parsePair(p string) (rune, rune, error) {
	rs := []rune(p)
	if len(rs) != 2 || !alphabet.Contains(rs[0]) || !alphabet.Contains(rs[1]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedPair, p)
	}

	return rs[0], rs[1], nil
}
