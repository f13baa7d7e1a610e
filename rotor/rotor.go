// SPDX-License-Identifier: MIT
// Package: enigma/rotor
//
// rotor.go - construction, stepping and the two signal directions.
//
// Offset model:
//   The wiring core sits at (position − ring) relative to the entry plate.
//   A signal entering at contact x meets core contact x+offset, leaves the
//   core at wiring[x+offset] and exits the rotor at wiring[x+offset]−offset.
//   All arithmetic is modulo 26.

package rotor

import "github.com/katalvlaran/enigma/alphabet"

// New builds a rotor from spec at position A with ring setting A.
// The inverse permutation is computed once here.
// Complexity: O(26).
func New(spec Spec) (Rotor, error) {
	var r Rotor
	fwd, err := spec.parse()
	if err != nil {
		return r, err
	}

	r.forward = fwd
	for i, j := range fwd {
		r.backward[j] = i
	}
	r.notch = alphabet.ToInt(spec.Notch)

	return r, nil
}

// Step advances the rotor by one position and reports whether it was at its
// notch before moving. The notch test is made against the position held
// before this rotor's own rotation.
func (r *Rotor) Step() bool {
	atNotch := r.position == r.notch
	r.position = (r.position + 1) % alphabet.Size

	return atNotch
}

// IsAtNotch reports whether the current position is the notch position.
func (r *Rotor) IsAtNotch() bool {
	return r.position == r.notch
}

// Forward maps a contact index on the entry side to the reflector side.
func (r *Rotor) Forward(i int) int {
	off := r.offset()

	return alphabet.Mod(r.forward[alphabet.Mod(i+off, alphabet.Size)]-off, alphabet.Size)
}

// Backward maps a contact index on the reflector side back to the entry
// side. Backward(Forward(x)) == x for every position and ring setting.
func (r *Rotor) Backward(i int) int {
	off := r.offset()

	return alphabet.Mod(r.backward[alphabet.Mod(i+off, alphabet.Size)]-off, alphabet.Size)
}

func (r *Rotor) offset() int {
	return alphabet.Mod(r.position-r.ring, alphabet.Size)
}

// Position returns the current rotor position, 0..25.
func (r *Rotor) Position() int { return r.position }

// SetPosition moves the rotor to p (wrapped modulo 26).
func (r *Rotor) SetPosition(p int) { r.position = alphabet.Mod(p, alphabet.Size) }

// RingSetting returns the ring offset, 0..25.
func (r *Rotor) RingSetting() int { return r.ring }

// SetRingSetting sets the ring offset to s (wrapped modulo 26).
func (r *Rotor) SetRingSetting(s int) { r.ring = alphabet.Mod(s, alphabet.Size) }

// Letter returns the letter visible in the window.
func (r *Rotor) Letter() rune { return alphabet.ToChar(r.position) }

// Notch returns the notch letter.
func (r *Rotor) Notch() rune { return alphabet.ToChar(r.notch) }
