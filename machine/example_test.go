package machine_test

import (
	"fmt"

	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/machine"
)

// ExampleBuild enciphers with the default I-II-III machine and shows the
// rotor windows afterwards.
func ExampleBuild() {
	m, err := machine.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.EncipherString("AAAAA"))
	fmt.Println(string(m.Encipher('?')))
	d := m.DisplayPositions()
	fmt.Println(string(d[:]))
	// Output:
	// BDZGO
	// ?
	// AAF
}

// ExampleMachine_Reset shows that a reset machine deciphers its own output.
func ExampleMachine_Reset() {
	m, err := machine.Build(
		machine.WithRotors(catalog.RotorII, catalog.RotorIV, catalog.RotorV),
		machine.WithRingLetters("BUL"),
		machine.WithPositionLetters("BLA"),
		machine.WithPlugs("AV", "BS", "CG", "DL", "FU", "HZ", "IN", "KM", "OW", "RX"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	plain := m.EncipherString("EDPUD NRGYS ZRCXN")
	m.Reset()
	fmt.Println(plain)
	fmt.Println(m.EncipherString(plain))
	// Output:
	// AUFKL XABTE ILUNG
	// EDPUD NRGYS ZRCXN
}

// ExampleParseConfig builds a machine from a YAML key sheet.
func ExampleParseConfig() {
	cfg, err := machine.ParseConfig([]byte(`
rotors: [I, II, III]
reflector: B
rings: [B, B, B]
positions: [A, A, A]
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := machine.New(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.EncipherString("AAAAA"))
	// Output: EWTYX
}
