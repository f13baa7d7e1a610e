// Package rotor implements a single Enigma cipher wheel.
//
// A Rotor couples a fixed wiring permutation (and its inverse, computed once
// at construction) with two offsets:
//
//   - position: the letter shown in the window; advances by one on Step.
//   - ring:     the Ringstellung, fixed for a message; rotates the wiring core
//     against the letter ring without changing when the notch engages.
//
// The signal passes a rotor twice: Forward on the way to the reflector and
// Backward on the way out. Backward(Forward(x)) == x for any position, ring
// setting and contact x.
//
// Rotor is a value type. Every table is an array, so a machine that stores
// rotors by value owns them outright.
//
// Errors (sentinel):
//
//   - ErrBadWiring: the wiring is not a permutation of A..Z.
//   - ErrBadNotch:  the notch is not a letter.
package rotor
