package palette

import (
	"context"
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/harmony"
	"nathanbeddoewebdev/huepick/internal/logging"
	"nathanbeddoewebdev/huepick/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isInteractive reports whether a prompt can be shown. Tests replace it.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// GenerateCommand returns the "palette generate" command.
func GenerateCommand() *cobra.Command {
	var kind harmony.Kind

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette from a seed colour",
		Long: `Generate a palette from a seed colour with one of the harmonies.

If --harmony is omitted and running in a terminal, an interactive list
previews every harmony for the seed. Otherwise the configured
default-harmony is used (monochromatic when unset).

Examples:
  huepick palette generate --seed "#00EEEC" --harmony triadic
  huepick palette generate --random --harmony analogous -o json
  huepick palette generate --seed 144,72,93 --swatch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, kind)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("seed", "", `Seed colour ("#RRGGBB", "r,g,b" or an alias)`)
	cmd.Flags().Bool("random", false, "Use a random seed colour")
	cmd.Flags().Var(&kind, "harmony", "Harmony to apply ("+harmonyList()+")")
	cmd.Flags().Bool("swatch", false, "Print colour swatches under the table")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	cmd.MarkFlagsMutuallyExclusive("seed", "random")
	cmd.MarkFlagsOneRequired("seed", "random")

	return cmd
}

func runGenerate(cmd *cobra.Command, kind harmony.Kind) error {
	log := logging.FromContext(cmd.Context())

	var seed color.Color
	if random, _ := cmd.Flags().GetBool("random"); random {
		seed = color.Random()
	} else {
		seedFlag, _ := cmd.Flags().GetString("seed")
		c, err := color.Parse(seedFlag)
		if err != nil {
			return fmt.Errorf("invalid --seed: %w", err)
		}
		seed = c
	}

	if !cmd.Flags().Changed("harmony") {
		resolved, err := resolveHarmony(cmd.Context(), seed)
		if err != nil {
			return err
		}
		kind = resolved
	}

	p := harmony.Generate(kind, seed)
	log.Debug("palette generated", "harmony", kind.String(), "seed", seed.Hex())

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		return printPaletteJSON(cmd, newPaletteReport(kind, seed, p))
	case "table", "":
		PrintPalette(cmd.OutOrStdout(), p)
	default:
		return fmt.Errorf("unsupported output format %q (valid: table, json)", output)
	}

	if swatch, _ := cmd.Flags().GetBool("swatch"); swatch {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), paletteStrip(p))
	}
	return nil
}

// resolveHarmony prompts on a terminal and falls back to the configured
// default otherwise. The config comes from ctx when the root command has
// loaded it and is read from disk only when the command runs standalone.
func resolveHarmony(ctx context.Context, seed color.Color) (harmony.Kind, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if !isInteractive() {
		return cfg.Harmony(), nil
	}

	accessible := os.Getenv("ACCESSIBLE") != ""
	kind, err := tui.SelectHarmony(accessible, seed, cfg.Harmony())
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return "", errors.New("palette generation aborted")
		}
		return "", err
	}
	return kind, nil
}
