// Command play replays a scenario of render passes against an in-memory map
// and prints what the renderer did to the markers.
//
//	play --scenario testdata/zoom.yaml --verbose
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		scenarioPath string
		fps          int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay render passes of a scenario",
		Long: `Replay render passes of a scenario file against an in-memory map.

Every pass is rendered, animations are stepped frame by frame until they
finish, then the taps of the pass are dispatched.

Examples:
  # Replay a scenario
  play -s testdata/zoom.yaml

  # Show every marker after each pass
  play -s testdata/zoom.yaml --verbose`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.OutOrStdout(), &slog.HandlerOptions{Level: level}))

			sc, err := LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			log.Info("scenario loaded", slog.String("name", sc.Name), slog.Int("passes", len(sc.Passes)))

			_, err = Play(log, sc, fps)
			return err
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Path to scenario file (YAML or JSON)")
	cmd.Flags().IntVar(&fps, "fps", 0, "Animation frames per second (default: scenario fps or 60)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every marker after each pass")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}
