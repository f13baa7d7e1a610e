// Command enigma enciphers text with a configurable three-rotor Enigma.
//
// Usage:
//
//	enigma [flags] [text...]
//
// Text comes from the arguments, or from stdin when there are none. The
// machine starts from --preset (default "default"), then --config, then any
// explicit setting flags, in that order.
//
//	echo "HELLO WORLD" | enigma --rotors II,IV,V --rings BUL --positions BLA --plugs "AV BS CG"
//	enigma -p barbarossa -g 5 EDPUDNRGYSZRCXN
//	enigma --list
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/machine"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	preset      string
	config      string
	rotors      string
	reflector   string
	rings       string
	positions   string
	plugs       string
	group       int
	upper       bool
	list        bool
	printConfig bool
	verbose     bool
}

// exitErr carries the process exit code out of RunE.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "enigma [flags] [text...]",
		Short: "Encipher text with a three-rotor Enigma I",
		Long: `Encipher text with a three-rotor Enigma I.

The machine is reciprocal: running the output through an identically
configured machine gives the input back. Letters outside A..Z pass through
unchanged and do not move the rotors.

CONFIGURATION (applied in order):
  --preset      embedded starting point (see --list)
  --config      YAML file, same keys as --print-config writes
  --rotors, --reflector, --rings, --positions, --plugs`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return encipher(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.preset, "preset", "p", "default", "start from an embedded preset (see --list)")
	f.StringVarP(&o.config, "config", "c", "", "YAML configuration file")
	f.StringVarP(&o.rotors, "rotors", "r", "", "rotors left,middle,right, e.g. I,II,III")
	f.StringVar(&o.reflector, "reflector", "", "reflector, B or C")
	f.StringVar(&o.rings, "rings", "", "ring settings, e.g. AAA or 1,20,11")
	f.StringVar(&o.positions, "positions", "", "start positions, e.g. BLA or 1,11,0")
	f.StringVar(&o.plugs, "plugs", "", `plugboard pairs, e.g. "AV BS CG"`)
	f.IntVarP(&o.group, "group", "g", 0, "drop non-letters and print groups of N letters (0 keeps the text layout)")
	f.BoolVar(&o.upper, "upper", true, "strip accents and upper-case the input before enciphering")
	f.BoolVarP(&o.list, "list", "l", false, "list rotors, reflectors and presets, then exit")
	f.BoolVar(&o.printConfig, "print-config", false, "print the effective configuration as YAML, then exit")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "verbose logging")

	return cmd
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	// Flag parsing and argument errors never reach RunE.
	fmt.Fprintln(stderr, "Error:", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())

	return exitUsage
}

func encipher(cmd *cobra.Command, o *options, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	fail := func(code int, msg string, err error) error {
		logger.Error(msg, "error", err)
		return &exitErr{code: code, err: err}
	}

	if o.group < 0 {
		return fail(exitUsage, "invalid flags", fmt.Errorf("--group must be >= 0, got %d", o.group))
	}
	if o.list {
		printCatalog(stdout)
		return nil
	}

	cfg, err := buildConfig(o)
	if err != nil {
		return fail(exitUsage, "invalid configuration", err)
	}
	if o.printConfig {
		if err := machine.EncodeConfig(stdout, cfg); err != nil {
			return fail(exitError, "print configuration", err)
		}
		return nil
	}

	m, err := machine.New(cfg)
	if err != nil {
		return fail(exitUsage, "build machine", err)
	}
	logger.Debug("machine ready",
		"rotors", cfg.Rotors,
		"reflector", cfg.Reflector,
		"rings", cfg.Rings.String(),
		"positions", cfg.Positions.String(),
		"plugboard", strings.Join(m.Config().Plugboard, " "),
	)

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ") + "\n"
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fail(exitError, "read input", err)
		}
		text = string(data)
	}
	if o.upper {
		text = foldText(text)
	}

	out := m.EncipherString(text)
	if o.group > 0 {
		out = groupLetters(out, o.group) + "\n"
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		return fail(exitError, "write output", err)
	}

	d := m.DisplayPositions()
	logger.Debug("done", "letters", countLetters(text), "window", string(d[:]))

	return nil
}

// buildConfig layers preset, config file and explicit flags.
func buildConfig(o *options) (machine.Config, error) {
	cfg, err := machine.Preset(o.preset)
	if err != nil {
		return machine.Config{}, err
	}
	if o.config != "" {
		if cfg, err = machine.LoadConfigFileInto(o.config, cfg); err != nil {
			return machine.Config{}, err
		}
	}

	if o.rotors != "" {
		names := strings.Split(o.rotors, ",")
		if len(names) != 3 {
			return machine.Config{}, fmt.Errorf("--rotors: want 3 names, got %q", o.rotors)
		}
		for i, n := range names {
			cfg.Rotors[i] = catalog.RotorType(strings.ToUpper(strings.TrimSpace(n)))
		}
	}
	if o.reflector != "" {
		cfg.Reflector = catalog.ReflectorType(strings.ToUpper(strings.TrimSpace(o.reflector)))
	}
	if o.rings != "" {
		if cfg.Rings, err = machine.ParseSettings(strings.ToUpper(o.rings)); err != nil {
			return machine.Config{}, fmt.Errorf("--rings: %w", err)
		}
	}
	if o.positions != "" {
		if cfg.Positions, err = machine.ParseSettings(strings.ToUpper(o.positions)); err != nil {
			return machine.Config{}, fmt.Errorf("--positions: %w", err)
		}
	}
	if o.plugs != "" {
		cfg.Plugboard = strings.Fields(strings.ToUpper(o.plugs))
	}

	return cfg, cfg.Validate()
}

func printCatalog(w io.Writer) {
	rotors := catalog.RotorTypes()
	names := make([]string, len(rotors))
	for i, r := range rotors {
		names[i] = string(r)
	}
	fmt.Fprintf(w, "rotors:     %s\n", strings.Join(names, " "))

	reflectors := catalog.ReflectorTypes()
	names = make([]string, len(reflectors))
	for i, r := range reflectors {
		names[i] = string(r)
	}
	fmt.Fprintf(w, "reflectors: %s\n", strings.Join(names, " "))
	fmt.Fprintf(w, "presets:    %s\n", strings.Join(machine.PresetNames(), " "))
}
