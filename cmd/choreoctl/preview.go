package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/resolve"
)

func newPreviewCmd() *cobra.Command {
	var (
		blueprintPath string
		step          float64
		bpm           float64
		seed          uint32
		restrict      bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Resolve a blueprint along a synthetic audio sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(blueprintPath)
			if err != nil {
				return fmt.Errorf("read blueprint: %w", err)
			}
			bp, err := blueprint.Decode(raw)
			if err != nil {
				return fmt.Errorf("decode blueprint: %w", err)
			}

			engine := resolve.New(resolve.Options{Seed: seed, DisallowSystemExpansion: restrict})
			fmt.Fprintf(cmd.ErrOrStderr(), "seed=%d total=%.1fs\n", engine.Seed(), bp.TotalDuration())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "t\tsystem\tgeom\tspeed\tchaos\thue\tglitch")

			system := ""
			for t := 0.0; t <= bp.TotalDuration(); t += step {
				seg, progress := bp.SegmentAt(t)
				if seg == nil {
					continue
				}
				ctx := &blueprint.Context{
					Progress:      progress,
					AbsoluteTime:  t,
					BPM:           bpm,
					Audio:         sweepAudio(t),
					CurrentSystem: system,
				}
				frame, err := engine.Evaluate(seg, ctx)
				if errors.Is(err, blueprint.ErrLegacySegment) {
					fmt.Fprintf(w, "%.1f\t(legacy segment, skipped)\t\t\t\t\t\n", t)
					continue
				}
				if err != nil {
					return err
				}
				system = frame.System

				geom := "-"
				if frame.Geometry != nil {
					geom = fmt.Sprintf("%d", *frame.Geometry)
				}
				glitch := 0.0
				if g, ok := frame.Extended["glitch"]; ok {
					glitch = g["intensity"]
				}
				fmt.Fprintf(w, "%.1f\t%s\t%s\t%.2f\t%.2f\t%.0f\t%.2f\n",
					t, frame.System, geom,
					frame.Parameters["speed"], frame.Parameters["chaos"],
					frame.Parameters["hue"], glitch)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&blueprintPath, "blueprint", "b", "", "blueprint JSON path")
	cmd.Flags().Float64Var(&step, "step", 1, "sample interval in seconds")
	cmd.Flags().Float64Var(&bpm, "bpm", 120, "synthetic tempo")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "engine seed (0 seeds from the clock)")
	cmd.Flags().BoolVar(&restrict, "restrict-systems", false, "restrict system selectors to the base set")
	_ = cmd.MarkFlagRequired("blueprint")
	return cmd
}

// sweepAudio synthesizes a plausible audio frame for preview: slow energy
// swell with faster band oscillations layered on top.
func sweepAudio(t float64) blueprint.AudioFrame {
	energy := 0.5 + 0.45*math.Sin(2*math.Pi*t/32)
	return blueprint.AudioFrame{
		Energy: clamp01(energy),
		Bass:   clamp01(0.5 + 0.4*math.Sin(2*math.Pi*t/4)),
		Mid:    clamp01(0.4 + 0.3*math.Sin(2*math.Pi*t/2.5+1)),
		High:   clamp01(0.3 + 0.3*math.Sin(2*math.Pi*t/1.5+2)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
