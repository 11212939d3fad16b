package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	colorcmd "nathanbeddoewebdev/huepick/cmd/commands/color"
	cfgcmd "nathanbeddoewebdev/huepick/cmd/commands/config"
	palettecmd "nathanbeddoewebdev/huepick/cmd/commands/palette"
	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/harmony"
	"nathanbeddoewebdev/huepick/internal/logging"
	"nathanbeddoewebdev/huepick/internal/palette"
	"nathanbeddoewebdev/huepick/internal/tui"
	"nathanbeddoewebdev/huepick/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const appName = "huepick"

// app carries state shared between the persistent hooks and the picker.
type app struct {
	cfg    *config.Config
	level  string
	file   string
	closer io.Closer

	// interactive reports whether stdout is a terminal. Tests replace it.
	interactive func() bool
}

func newApp() *app {
	return &app{
		interactive: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
}

// rootCmd represents the base command when called without any subcommands.
func rootCmd(a *app) *cobra.Command {
	var kind harmony.Kind

	var cmd = &cobra.Command{
		Use:   appName,
		Short: "An interactive terminal colour picker and palette generator",
		Long: `huepick edits a five-colour palette (background, three accents and a
highlight) in the terminal. Colours can be typed as hex or RGB, shaded,
nudged in HSV, inverted, or replaced by a palette generated from a colour
harmony. Every change can be undone.

Running huepick without a subcommand opens the picker. The palette that is
current when you quit is printed to stdout.

Quick start:
  huepick                                   # open the picker
  huepick --seed "#00EEEC" --harmony triadic
  huepick palette generate --seed 144,72,93 --harmony analogous
  huepick color shades "#202020"`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPicker(cmd, kind)
		},
	}

	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error or off (overrides config)")
	cmd.PersistentFlags().String("log-file", "", "Append logs to this file (overrides config)")

	cmd.Flags().String("seed", "", "Start from a palette generated from this colour")
	cmd.Flags().Var(&kind, "harmony", "Harmony preselected in the picker and used with --seed")
	cmd.Flags().String("input", "", "Initial input mode: hex or rgb (overrides config)")

	cmd.AddCommand(colorcmd.NewCommand())
	cmd.AddCommand(palettecmd.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// setup loads the config and resolves logging. Subcommands get a logger
// writing to stderr through the command context; the picker builds its own
// file-only logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.level = cfg.LogLevel
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		a.level = f.Value.String()
	}
	a.file = cfg.LogFile
	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		a.file = f.Value.String()
	}

	if cmd == cmd.Root() {
		return nil
	}
	ctx := config.WithContext(cmd.Context(), cfg)

	logger, closer, err := logging.New(appName, logging.Options{
		Level:  a.level,
		File:   a.file,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.closer = closer
	cmd.SetContext(logging.WithContext(ctx, logger))
	return nil
}

func (a *app) runPicker(cmd *cobra.Command, kind harmony.Kind) error {
	if !a.interactive() {
		return errors.New("the picker needs an interactive terminal; use 'huepick palette generate' or 'huepick color' in scripts")
	}

	opts, err := a.pickerOptions(cmd, kind)
	if err != nil {
		return err
	}

	logger, closer, err := logging.ForPicker(appName, a.level, a.file)
	if err != nil {
		return err
	}
	defer closer.Close()
	opts.Logger = logger

	final, err := tui.RunPicker(opts)
	if err != nil {
		return err
	}

	palettecmd.PrintPalette(cmd.OutOrStdout(), final)
	return nil
}

// pickerOptions resolves the starting palette, harmony and input mode from
// flags, falling back to config.
func (a *app) pickerOptions(cmd *cobra.Command, kind harmony.Kind) (tui.PickerOptions, error) {
	if !cmd.Flags().Changed("harmony") {
		kind = a.cfg.Harmony()
	}

	mode := a.cfg.Mode()
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		switch m := util.NormalizeKey(input); m {
		case config.InputModeHex, config.InputModeRGB:
			mode = m
		default:
			return tui.PickerOptions{}, fmt.Errorf("invalid --input %q (valid: %s, %s)", input, config.InputModeHex, config.InputModeRGB)
		}
	}

	initial := palette.Default()
	if seedFlag, _ := cmd.Flags().GetString("seed"); seedFlag != "" {
		seed, err := color.Parse(seedFlag)
		if err != nil {
			return tui.PickerOptions{}, fmt.Errorf("invalid --seed: %w", err)
		}
		initial = harmony.Generate(kind, seed)
	}

	return tui.PickerOptions{
		Initial:   initial,
		InputMode: mode,
		Harmony:   kind,
	}, nil
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	a := newApp()
	var root = rootCmd(a)
	err := root.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
