// SPDX-License-Identifier: MIT
// Package: enigma/machine
//
// errors.go - sentinel errors for the machine package.
//
// Error policy:
//   • Configuration problems are reported as ErrBadConfig, joined with the
//     underlying sentinel of the package that detected them
//     (catalog.ErrInvalidCatalogKey, plugboard.ErrInvalidPair, ErrBadSetting),
//     so errors.Is works on either.
//   • Enciphering never fails: non-letters pass through.
//   • Option constructors (WithX) panic on meaningless numeric input;
//     New and Build never panic.

package machine

import "errors"

// ErrBadConfig indicates that a Config cannot be turned into a Machine.
var ErrBadConfig = errors.New("machine: invalid configuration")

// ErrBadSetting indicates a ring setting or rotor position outside 0..25
// (or a setting string that is neither a letter nor such a number).
var ErrBadSetting = errors.New("machine: setting must be A..Z or 0..25")

// ErrUnknownPreset indicates a preset name that is not embedded.
var ErrUnknownPreset = errors.New("machine: unknown preset")
