// Package catalog is the fixed library of Enigma I wheels: rotors I–V and
// reflectors B and C, with their historical wirings and notches.
//
// The tables are unexported and never modified after initialisation; every
// lookup returns a copy. Unknown names fail with ErrInvalidCatalogKey rather
// than falling back to a default.
//
// Errors (sentinel): ErrInvalidCatalogKey.
package catalog
