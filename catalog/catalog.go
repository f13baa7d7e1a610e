// SPDX-License-Identifier: MIT
// Package: enigma/catalog
//
// catalog.go - the wiring tables for rotors I..V and reflectors B and C,
// keyed by typed names.

package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/enigma/rotor"
)

// ErrInvalidCatalogKey indicates a rotor or reflector name that is not in
// the catalog.
var ErrInvalidCatalogKey = errors.New("catalog: unknown catalog key")

// RotorType names a rotor in the catalog.
type RotorType string

// Rotor names, in catalog order.
const (
	RotorI   RotorType = "I"
	RotorII  RotorType = "II"
	RotorIII RotorType = "III"
	RotorIV  RotorType = "IV"
	RotorV   RotorType = "V"
)

// ReflectorType names a reflector in the catalog.
type ReflectorType string

// Reflector names, in catalog order.
const (
	ReflectorB ReflectorType = "B"
	ReflectorC ReflectorType = "C"
)

var rotorOrder = [...]RotorType{RotorI, RotorII, RotorIII, RotorIV, RotorV}

var rotorSpecs = map[RotorType]rotor.Spec{
	RotorI:   {Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'},
	RotorII:  {Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'},
	RotorIII: {Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'},
	RotorIV:  {Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'},
	RotorV:   {Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notch: 'Z'},
}

var reflectorOrder = [...]ReflectorType{ReflectorB, ReflectorC}

var reflectorWirings = map[ReflectorType]string{
	ReflectorB: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	ReflectorC: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// Rotor returns the wiring spec of the named rotor.
func Rotor(t RotorType) (rotor.Spec, error) {
	spec, ok := rotorSpecs[t]
	if !ok {
		return rotor.Spec{}, fmt.Errorf("%w: rotor %q", ErrInvalidCatalogKey, string(t))
	}

	return spec, nil
}

// Reflector returns the wiring string of the named reflector.
func Reflector(t ReflectorType) (string, error) {
	w, ok := reflectorWirings[t]
	if !ok {
		return "", fmt.Errorf("%w: reflector %q", ErrInvalidCatalogKey, string(t))
	}

	return w, nil
}

// RotorTypes lists the available rotor names in catalog order.
func RotorTypes() []RotorType {
	out := make([]RotorType, len(rotorOrder))
	copy(out, rotorOrder[:])

	return out
}

// ReflectorTypes lists the available reflector names in catalog order.
func ReflectorTypes() []ReflectorType {
	out := make([]ReflectorType, len(reflectorOrder))
	copy(out, reflectorOrder[:])

	return out
}
