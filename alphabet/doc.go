// Package alphabet is the 26-letter contact alphabet shared by the rotor,
// reflector, plugboard and machine packages.
//
// Letters A..Z map to indices 0..25. Anything outside A..Z is not part of the
// alphabet: ToInt reports it as -1 and the machine passes it through
// unchanged. ToChar wraps any integer, so modular arithmetic on contact
// indices can be written without explicit normalisation.
package alphabet
