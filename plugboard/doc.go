// Package plugboard implements the Enigma Steckerbrett, a user-configurable
// set of letter swaps applied before the signal enters the rotors and again
// after it leaves them.
//
// Each letter belongs to at most one pair, so at most 13 pairs exist and
// Process is always an involution: Process(Process(c)) == c.
//
// Two construction policies are offered:
//
//   - New / Connect are strict. Malformed pairs, self pairs and reused letters
//     are rejected and nothing is applied on failure. Machine construction
//     uses this policy.
//   - Normalize resolves a whole pair list last-write-wins: when two pairs
//     share a letter the earlier pair is dropped. Use it when an editor
//     rebuilds the pair list wholesale after each change, then pass the result
//     to New.
//
// Errors (sentinel): ErrInvalidPair, and its refinements ErrMalformedPair,
// ErrSelfPair and ErrLetterInUse.
package plugboard
