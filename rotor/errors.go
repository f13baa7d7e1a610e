// SPDX-License-Identifier: MIT
// Package: enigma/rotor
//
// errors.go - sentinel errors for the rotor package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package rotor

import "errors"

// ErrBadWiring indicates that a wiring string is not a permutation of the
// 26 letters A..Z (wrong length, a non-letter, or a repeated letter).
var ErrBadWiring = errors.New("rotor: wiring is not a permutation of A..Z")

// ErrBadNotch indicates that a notch is not a letter A..Z.
var ErrBadNotch = errors.New("rotor: notch must be a letter A..Z")
