// Package enigma is a rotor cipher machine simulator: the three-rotor
// Enigma I with plugboard, double-stepping rotors and reflector, built as a
// set of small, deterministic packages.
//
// What is inside:
//
//	alphabet/   the 26-letter contact alphabet and modular helpers
//	rotor/      one cipher wheel: wiring, inverse, position, ring, notch
//	reflector/  the fixed involutive Umkehrwalze
//	plugboard/  the Steckerbrett: strict pairing plus last-write-wins Normalize
//	catalog/    historical wirings: rotors I to V, reflectors B and C
//	machine/    assembly, stepping, Encipher, typed Config, YAML and presets
//	cmd/enigma  command-line front end
//
// Guarantees:
//
//   - Reciprocal: identically configured machines undo each other.
//   - No letter ever enciphers to itself.
//   - Characters outside A..Z pass through without moving the rotors.
//   - O(1) work per character, no allocations on the Encipher path.
//
// Quick example:
//
//	m, _ := machine.Build()            // I-II-III, reflector B, AAA
//	fmt.Println(m.EncipherString("AAAAA")) // BDZGO
//
// A Machine is single-goroutine state; build one per message stream.
package enigma
