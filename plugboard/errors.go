// SPDX-License-Identifier: MIT
// Package: enigma/plugboard
//
// errors.go - sentinel errors for the plugboard package.
//
// Error policy:
//   • ErrInvalidPair is the umbrella class. Every rejection returned by New,
//     Connect or Normalize satisfies errors.Is(err, ErrInvalidPair).
//   • The specific sentinels below wrap ErrInvalidPair, so callers may branch
//     on either level.

package plugboard

import (
	"errors"
	"fmt"
)

// ErrInvalidPair is returned for any plugboard pair that cannot be applied.
var ErrInvalidPair = errors.New("plugboard: invalid pair")

// ErrMalformedPair indicates a pair string that is not exactly two letters A..Z.
var ErrMalformedPair = fmt.Errorf("%w: must be two letters A..Z", ErrInvalidPair)

// ErrSelfPair indicates an attempt to wire a letter to itself.
var ErrSelfPair = fmt.Errorf("%w: letter wired to itself", ErrInvalidPair)

// ErrLetterInUse indicates that a letter already belongs to another pair.
var ErrLetterInUse = fmt.Errorf("%w: letter already plugged", ErrInvalidPair)
