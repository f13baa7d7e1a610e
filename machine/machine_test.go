package machine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/plugboard"
)

// window formats DisplayPositions as a three-letter string.
func window(m *machine.Machine) string {
	d := m.DisplayPositions()
	return string(d[:])
}

// ------------------------------------------------------------------------
// 1. Known answers.
// ------------------------------------------------------------------------

func TestKnownAnswers(t *testing.T) {
	cases := []struct {
		name   string
		opts   []machine.Option
		in     string
		want   string
		window string
	}{
		{
			name:   "single A",
			in:     "A",
			want:   "B",
			window: "AAB",
		},
		{
			name:   "AAAAA",
			in:     "AAAAA",
			want:   "BDZGO",
			window: "AAF",
		},
		{
			name:   "rings BBB",
			opts:   []machine.Option{machine.WithRingLetters("BBB")},
			in:     "AAAAA",
			want:   "EWTYX",
			window: "AAF",
		},
		{
			name:   "hello world",
			in:     "HELLO, WORLD!",
			want:   "ILBDA, AMTAZ!",
			window: "AAK",
		},
		{
			name:   "reflector C",
			opts:   []machine.Option{machine.WithReflector(catalog.ReflectorC)},
			in:     "AAAAA",
			want:   "PJBUZ",
			window: "AAF",
		},
		{
			name:   "plugboard",
			opts:   []machine.Option{machine.WithPlugs("AB", "CD")},
			in:     "AAAAA",
			want:   "BJLDS",
			window: "AAF",
		},
		{
			name: "everything",
			opts: []machine.Option{
				machine.WithRotors(catalog.RotorIII, catalog.RotorII, catalog.RotorI),
				machine.WithReflector(catalog.ReflectorC),
				machine.WithRings(3, 7, 11),
				machine.WithPositions(5, 9, 16),
				machine.WithPlugs("QW", "ER"),
			},
			in:     "THEQUICKBROWNFOX",
			want:   "CSCAJPZSRZXMFSPJ",
			window: "FKG",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := machine.Build(tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.EncipherString(tc.in))
			assert.Equal(t, tc.window, window(m))
		})
	}
}

// TestBarbarossa decrypts the first part of the 1941 Operation Barbarossa
// message with its historical key.
func TestBarbarossa(t *testing.T) {
	const cipher = "EDPUDNRGYSZRCXNUYTPOMRMBOFKTBZREZKMLXLVEFGUEYSIOZVEQMIKUBPMMYLKLTTDEISMDICAGYKUACTCDOMOHWXMUUIAUBSTSLRNBZSZWNRFXWFYSSXJZVIJHIDISHPRKLKAYUPADTXQSPINQMATLPIFSVKDASCTACDPBOPVHJK"
	const plain = "AUFKLXABTEILUNGXVONXKURTINOWAXKURTINOWAXNORDWESTLXSEBEZXSEBEZXUAFFLIEGERSTRASZERIQTUNGXDUBROWKIXDUBROWKIXOPOTSCHKAXOPOTSCHKAXUMXEINSAQTDREINULLXUHRANGETRETENXANGRIFFXINFXRGTX"

	m, err := machine.Build(
		machine.WithRotors(catalog.RotorII, catalog.RotorIV, catalog.RotorV),
		machine.WithRingLetters("BUL"),
		machine.WithPositionLetters("BLA"),
		machine.WithPlugs("AV", "BS", "CG", "DL", "FU", "HZ", "IN", "KM", "OW", "RX"),
	)
	require.NoError(t, err)
	require.Equal(t, plain, m.EncipherString(cipher))
	assert.Equal(t, "BRS", window(m))
}

// ------------------------------------------------------------------------
// 2. Stepping.
// ------------------------------------------------------------------------

// SteppingSuite drives rotors I-II-III through the notch positions.
type SteppingSuite struct {
	suite.Suite
	m *machine.Machine
}

func (s *SteppingSuite) SetupTest() {
	m, err := machine.Build()
	require.NoError(s.T(), err)
	s.m = m
}

func (s *SteppingSuite) press(n int) {
	for i := 0; i < n; i++ {
		s.m.Encipher('A')
	}
}

// TestDoubleStep: right at V, middle at D, left at A. First press carries
// into the middle rotor (D→E); second press finds the middle rotor at its
// notch and moves it again together with the left rotor.
func (s *SteppingSuite) TestDoubleStep() {
	s.Require().NoError(s.m.Configure([3]int{0, 0, 0}, [3]int{0, 3, 21}))
	s.Equal("ADV", window(s.m))

	s.press(1)
	s.Equal("AEW", window(s.m))
	s.press(1)
	s.Equal("BFX", window(s.m))
	s.press(1)
	s.Equal("BFY", window(s.m), "no further carry")
}

// TestClassicSequence: ADU → ADV → AEW → BFX.
func (s *SteppingSuite) TestClassicSequence() {
	s.Require().NoError(s.m.Configure([3]int{0, 0, 0}, [3]int{0, 3, 20}))
	want := []string{"ADV", "AEW", "BFX"}
	for _, w := range want {
		s.press(1)
		s.Equal(w, window(s.m))
	}
}

// TestRightAlwaysSteps: 26 presses carry the middle rotor exactly once.
func (s *SteppingSuite) TestRightAlwaysSteps() {
	s.press(alphabet.Size)
	s.Equal("ABA", window(s.m))
}

// TestRingDoesNotMoveNotch: ring settings change the wiring offset, not
// when the carry happens.
func (s *SteppingSuite) TestRingDoesNotMoveNotch() {
	s.Require().NoError(s.m.Configure([3]int{5, 9, 13}, [3]int{0, 3, 21}))
	s.press(2)
	s.Equal("BFX", window(s.m))
}

// TestPeriod: I-II-III returns to AAA after 26·25·26 presses.
func (s *SteppingSuite) TestPeriod() {
	const period = 26 * 25 * 26
	s.press(period - 1)
	s.NotEqual("AAA", window(s.m))
	s.press(1)
	s.Equal("AAA", window(s.m))
}

func TestSteppingSuite(t *testing.T) {
	suite.Run(t, new(SteppingSuite))
}

// ------------------------------------------------------------------------
// 3. Properties.
// ------------------------------------------------------------------------

// TestReciprocity: feeding ciphertext through an identically configured
// machine restores the plaintext, and Reset makes one machine do both.
func TestReciprocity(t *testing.T) {
	opts := []machine.Option{
		machine.WithRotors(catalog.RotorV, catalog.RotorI, catalog.RotorIV),
		machine.WithRings(25, 0, 13),
		machine.WithPositionLetters("QEV"),
		machine.WithPlugs("AZ", "BY", "CX", "DW", "EV", "FU", "GT", "HS", "IR", "JQ", "KP", "LO", "MN"),
	}
	plain := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 40)

	a, err := machine.Build(opts...)
	require.NoError(t, err)
	b, err := machine.Build(opts...)
	require.NoError(t, err)

	cipher := a.EncipherString(plain)
	require.NotEqual(t, plain, cipher)
	require.Equal(t, plain, b.EncipherString(cipher))

	a.Reset()
	require.Equal(t, plain, a.EncipherString(cipher))
}

// TestPerLetterReciprocity: with matched state, every letter's image maps
// back to the letter, and no letter maps to itself.
func TestPerLetterReciprocity(t *testing.T) {
	for pos := 0; pos < alphabet.Size; pos++ {
		for _, c := range alphabet.Letters {
			a, err := machine.Build(machine.WithPositions(pos, pos, pos), machine.WithPlugs("KQ"))
			require.NoError(t, err)
			b, err := machine.Build(machine.WithPositions(pos, pos, pos), machine.WithPlugs("KQ"))
			require.NoError(t, err)

			x := a.Encipher(c)
			require.NotEqual(t, c, x, "pos=%d letter %c enciphered to itself", pos, c)
			require.Equal(t, c, b.Encipher(x), "pos=%d letter %c", pos, c)
		}
	}
}

// TestNonLetterPassThrough: non-letters are returned as-is and leave the
// rotors where they were.
func TestNonLetterPassThrough(t *testing.T) {
	m, err := machine.Build(machine.WithPositionLetters("QEV"))
	require.NoError(t, err)

	for _, r := range []rune{' ', '0', '9', '.', ',', '!', '\n', 'a', 'z', 'Ü', '世'} {
		assert.Equal(t, r, m.Encipher(r), "rune %q", r)
		assert.Equal(t, "QEV", window(m))
	}
	assert.Equal(t, "123 ...", m.EncipherString("123 ..."))
	assert.Equal(t, [3]int{16, 4, 21}, m.Positions())
}

// TestIndependentMachines: machines built from one Config share no state.
func TestIndependentMachines(t *testing.T) {
	cfg := machine.DefaultConfig()
	cfg.Plugboard = []string{"AB"}

	a, err := machine.New(cfg)
	require.NoError(t, err)
	b, err := machine.New(cfg)
	require.NoError(t, err)

	a.EncipherString("HELLO")
	assert.Equal(t, "AAF", window(a))
	assert.Equal(t, "AAA", window(b))

	// Mutating the caller's Config does not reach into the machine.
	cfg.Plugboard[0] = "CD"
	cfg.Positions[machine.Right] = 7
	assert.Equal(t, []string{"AB"}, a.Config().Plugboard)
	a.Reset()
	assert.Equal(t, "AAA", window(a))
}

// ------------------------------------------------------------------------
// 4. Configuration.
// ------------------------------------------------------------------------

// TestConfigureRoundTrip: DisplayPositions after Configure matches the
// supplied positions.
func TestConfigureRoundTrip(t *testing.T) {
	m, err := machine.Build()
	require.NoError(t, err)

	require.NoError(t, m.Configure([3]int{1, 20, 11}, [3]int{1, 11, 0}))
	assert.Equal(t, [3]rune{'B', 'L', 'A'}, m.DisplayPositions())
	assert.Equal(t, [3]int{1, 11, 0}, m.Positions())

	cfg := m.Config()
	assert.Equal(t, "BUL", cfg.Rings.String())
	assert.Equal(t, "BLA", cfg.Positions.String())

	m.EncipherString("SOMETEXT")
	m.Reset()
	assert.Equal(t, "BLA", window(m))
}

func TestConfigure_Rejects(t *testing.T) {
	m, err := machine.Build(machine.WithPositionLetters("XYZ"))
	require.NoError(t, err)

	require.ErrorIs(t, m.Configure([3]int{0, 26, 0}, [3]int{0, 0, 0}), machine.ErrBadSetting)
	require.ErrorIs(t, m.Configure([3]int{0, 0, 0}, [3]int{-1, 0, 0}), machine.ErrBadSetting)
	assert.Equal(t, "XYZ", window(m), "failed Configure leaves the machine untouched")
}

func TestNew_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*machine.Config)
		want   []error
	}{
		{
			name:   "unknown rotor",
			mutate: func(c *machine.Config) { c.Rotors[machine.Middle] = "VI" },
			want:   []error{machine.ErrBadConfig, catalog.ErrInvalidCatalogKey},
		},
		{
			name:   "empty rotor",
			mutate: func(c *machine.Config) { c.Rotors[machine.Left] = "" },
			want:   []error{machine.ErrBadConfig, catalog.ErrInvalidCatalogKey},
		},
		{
			name:   "unknown reflector",
			mutate: func(c *machine.Config) { c.Reflector = "A" },
			want:   []error{machine.ErrBadConfig, catalog.ErrInvalidCatalogKey},
		},
		{
			name:   "ring out of range",
			mutate: func(c *machine.Config) { c.Rings[machine.Right] = 26 },
			want:   []error{machine.ErrBadConfig, machine.ErrBadSetting},
		},
		{
			name:   "position out of range",
			mutate: func(c *machine.Config) { c.Positions[machine.Left] = -3 },
			want:   []error{machine.ErrBadConfig, machine.ErrBadSetting},
		},
		{
			name:   "malformed pair",
			mutate: func(c *machine.Config) { c.Plugboard = []string{"ABC"} },
			want:   []error{machine.ErrBadConfig, plugboard.ErrInvalidPair, plugboard.ErrMalformedPair},
		},
		{
			name:   "self pair",
			mutate: func(c *machine.Config) { c.Plugboard = []string{"AA"} },
			want:   []error{machine.ErrBadConfig, plugboard.ErrSelfPair},
		},
		{
			name:   "reused letter",
			mutate: func(c *machine.Config) { c.Plugboard = []string{"AB", "BC"} },
			want:   []error{machine.ErrBadConfig, plugboard.ErrLetterInUse},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := machine.DefaultConfig()
			tc.mutate(&cfg)

			require.Error(t, cfg.Validate())
			m, err := machine.New(cfg)
			require.Nil(t, m)
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

// TestDuplicateRotorTypes: the same wheel may be chosen for several slots;
// each slot still gets its own rotor.
func TestDuplicateRotorTypes(t *testing.T) {
	m, err := machine.Build(machine.WithRotors(catalog.RotorI, catalog.RotorI, catalog.RotorI))
	require.NoError(t, err)
	m.EncipherString(strings.Repeat("A", 17))
	assert.Equal(t, "ABR", window(m))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { machine.WithRings(0, 0, 26) })
	assert.Panics(t, func() { machine.WithPositions(-1, 0, 0) })
	assert.Panics(t, func() { machine.WithRingLetters("AB") })
	assert.Panics(t, func() { machine.WithPositionLetters("ab1") })
	assert.NotPanics(t, func() { machine.WithPositionLetters("ZZZ") })
}

func TestSlotString(t *testing.T) {
	assert.Equal(t, "left", machine.Left.String())
	assert.Equal(t, "middle", machine.Middle.String())
	assert.Equal(t, "right", machine.Right.String())
	assert.Equal(t, "slot(7)", machine.Slot(7).String())
}
