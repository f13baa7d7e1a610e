// SPDX-License-Identifier: MIT
// Package: enigma/alphabet
//
// alphabet.go - the fixed bijection between the 26 letters A..Z and the
// contact indices 0..25 used by every other package.
//
// Contract:
//   • Only upper-case ASCII letters are part of the alphabet.
//   • ToInt returns -1 for anything else; callers treat -1 as "pass through".
//   • ToChar accepts any int and normalises it modulo Size, so callers may
//     write ToChar(i - shift) without guarding against negatives.
//
// Complexity: every function is O(1) time and allocation-free except List.

package alphabet

// Size is the number of letters (and rotor contacts).
const Size = 26

// Letters is the alphabet in contact order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ToInt maps a letter to its index 0..25, or -1 if r is not in A..Z.
func ToInt(r rune) int {
	if r < 'A' || r > 'Z' {
		return -1
	}

	return int(r - 'A')
}

// ToChar maps an index to its letter. Out-of-range values, negative ones
// included, wrap around modulo Size.
func ToChar(i int) rune {
	return rune('A' + Mod(i, Size))
}

// Contains reports whether r is a cipherable letter.
func Contains(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// List returns the 26 letters in order. The slice is freshly allocated.
func List() []rune {
	return []rune(Letters)
}

// Mod returns the non-negative remainder of n modulo m (m > 0).
func Mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}

	return r
}
