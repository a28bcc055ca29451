package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/timeline"
)

// showConfig is the YAML show description consumed by generate. Every field
// is optional; flags override duration and seed.
type showConfig struct {
	// Duration is the run length in seconds.
	Duration float64 `yaml:"duration"`
	// Seed fixes the generator stream; 0 seeds from the clock.
	Seed uint32 `yaml:"seed"`
	// Systems cycles across segments (default faceted/quantum/holographic).
	Systems []string `yaml:"systems"`
	// Energy is the explicit per-segment energy profile.
	Energy []float64 `yaml:"energy"`
	// Durations pins per-segment durations instead of jittered shares.
	Durations []float64 `yaml:"durations"`
	// Palette is the geometry index palette.
	Palette []float64 `yaml:"palette"`
	// Phases expands to an energy profile when Energy is empty.
	Phases *phaseConfig `yaml:"phases"`
}

type phaseConfig struct {
	Intro   int `yaml:"intro"`
	Build   int `yaml:"build"`
	Peak    int `yaml:"peak"`
	Release int `yaml:"release"`
}

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
		duration   float64
		seed       uint32
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a blueprint from a show config",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg showConfig
			if configPath != "" {
				raw, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("read config: %w", err)
				}
				if err := yaml.Unmarshal(raw, &cfg); err != nil {
					return fmt.Errorf("parse config: %w", err)
				}
			}
			if duration > 0 {
				cfg.Duration = duration
			}
			if seed != 0 {
				cfg.Seed = seed
			}

			opts := timeline.GenerateOptions{
				TotalDuration:     cfg.Duration,
				EnergyProfile:     cfg.Energy,
				Systems:           cfg.Systems,
				DurationOverrides: cfg.Durations,
				GeometryPalette:   cfg.Palette,
			}
			if cfg.Phases != nil {
				opts.Phases = &timeline.PhaseTemplate{
					Intro:   cfg.Phases.Intro,
					Build:   cfg.Phases.Build,
					Peak:    cfg.Phases.Peak,
					Release: cfg.Phases.Release,
				}
			}
			if len(opts.EnergyProfile) == 0 && opts.Phases == nil {
				tpl := timeline.DefaultPhaseTemplate()
				opts.Phases = &tpl
			}

			gen := timeline.New(cfg.Seed)
			bp, err := gen.Generate(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "seed=%d segments=%d\n", gen.Seed(), len(bp.Segments))

			out, err := json.MarshalIndent(bp, "", "  ")
			if err != nil {
				return fmt.Errorf("encode blueprint: %w", err)
			}
			out = append(out, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(outPath, out, 0o644)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML show config path")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "total duration in seconds (overrides config)")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "generator seed (overrides config; 0 seeds from the clock)")
	return cmd
}
