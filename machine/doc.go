// Package machine assembles plugboard, rotors and reflector into a
// three-rotor Enigma and drives it one key press at a time.
//
// Overview:
//
//   - New builds a Machine from a typed Config; Build does the same from
//     functional options applied to DefaultConfig.
//   - Encipher steps the rotors, then sends the letter through
//     plugboard → right, middle, left rotors → reflector → left, middle,
//     right rotors → plugboard. Characters outside A..Z pass through without
//     stepping.
//   - Stepping reproduces the historical double step: when the middle rotor
//     sits at its notch it advances together with the left rotor, so it moves
//     on two consecutive key presses.
//   - DisplayPositions shows the rotor windows; Reset returns to the
//     configured start positions.
//
// Reciprocity:
//
//	Two machines with identical Config produce each other's input:
//	if a.EncipherString(p) == c then b.EncipherString(c) == p.
//
// Configuration files:
//
//	LoadConfig, LoadConfigFile and ParseConfig read YAML documents; Preset
//	returns one of the embedded configurations listed by PresetNames.
//
// Errors (sentinel):
//
//   - ErrBadConfig:      the Config cannot be assembled; the cause is joined
//     (catalog.ErrInvalidCatalogKey, plugboard.ErrInvalidPair, ErrBadSetting).
//   - ErrBadSetting:     a ring setting or position outside A..Z / 0..25.
//   - ErrUnknownPreset:  no embedded preset of that name.
//
// Thread safety:
//
//	A Machine holds mutable rotor positions and is not safe for concurrent
//	use. Build one Machine per message stream; machines share no state.
//
// Example:
//
//	m, err := machine.Build(
//	    machine.WithRotors(catalog.RotorII, catalog.RotorIV, catalog.RotorV),
//	    machine.WithRingLetters("BUL"),
//	    machine.WithPositionLetters("BLA"),
//	    machine.WithPlugs("AV", "BS", "CG"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.EncipherString("HELLO"))
package machine
