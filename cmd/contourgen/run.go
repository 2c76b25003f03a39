package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"zappem.net/pub/cad/contour"
)

var (
	configPath string
	verbose    bool
)

var runCmd = &cobra.Command{
	Use:   "run <drawing.toml>",
	Short: "Reconstruct shapes from a drawing file and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "TOML file of Config field overrides")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "print diagnostics recorded during reconstruction")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	prims, err := loadDrawing(args[0])
	if err != nil {
		return err
	}

	cfg := contour.DefaultConfig()
	if configPath != "" {
		if err := loadConfigOverlay(configPath, &cfg); err != nil {
			return err
		}
	}

	doc, err := contour.Run(prims, cfg)
	if err != nil {
		return fmt.Errorf("reconstruction failed: %w", err)
	}

	cmd.Printf("document: %.3f x %.3f, %d shape(s)\n", doc.Width, doc.Height, len(doc.Shapes))
	for i, s := range doc.Shapes {
		cmd.Printf("  shape %d: outer=%d vertices, %d hole(s)\n", i, len(s.Outer), len(s.Holes))
	}
	if verbose {
		for _, d := range doc.Diagnostics {
			if d.Detail == "" {
				cmd.Printf("diag: %s\n", d.Kind)
			} else {
				cmd.Printf("diag: %s: %s\n", d.Kind, d.Detail)
			}
		}
	}
	return nil
}

// loadConfigOverlay decodes a TOML file directly onto an existing
// Config value, so a drawing-specific file only needs to name the
// fields it actually wants to change; every other tolerance keeps
// its DefaultConfig value.
func loadConfigOverlay(path string, cfg *contour.Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config overlay: %w", err)
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parsing config overlay: %w", err)
	}
	return nil
}
