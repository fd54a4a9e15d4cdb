package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tactix/internal/config"
	"github.com/vovakirdan/tactix/internal/dilemma"
)

// buildFlags are the matrix options shared by show, play and dashboard.
// They override the game file field by field.
type buildFlags struct {
	mode         string
	preset       string
	min          uint32
	max          uint32
	labelA       string
	labelB       string
	randomLabels bool
}

var build buildFlags

func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&build.mode, "mode", "", "Builder mode: randomized, seeded, customized")
	f.StringVar(&build.preset, "preset", "", "Start from a registered preset (see 'tactix presets')")
	f.Uint32Var(&build.min, "min", dilemma.DefaultMinValue, "Lowest payoff for random modes")
	f.Uint32Var(&build.max, "max", dilemma.DefaultMaxValue, "Highest payoff for random modes")
	f.StringVar(&build.labelA, "label-a", "", "Label of the first strategy")
	f.StringVar(&build.labelB, "label-b", "", "Label of the second strategy")
	f.BoolVar(&build.randomLabels, "random-labels", false, "Pick a label pair from the catalog")
}

// apply returns cfg with every flag the user set written over it.
func (f buildFlags) apply(cfg config.GameConfig, changed func(name string) bool) config.GameConfig {
	if changed("preset") {
		cfg.Preset = f.preset
		// The preset decides the mode unless --mode says otherwise.
		cfg.Mode = ""
	}
	if changed("mode") {
		cfg.Mode = f.mode
	}
	if changed("min") {
		v := f.min
		cfg.Min = &v
	}
	if changed("max") {
		v := f.max
		cfg.Max = &v
	}
	if changed("label-a") {
		cfg.Labels.A = f.labelA
	}
	if changed("label-b") {
		cfg.Labels.B = f.labelB
	}
	if changed("random-labels") {
		cfg.Labels.Random = f.randomLabels
	}
	return cfg
}

// withSeed puts a non-zero seed into seeded game files that have none.
func withSeed(cfg config.GameConfig, seed int64, explicit bool) config.GameConfig {
	if seed == 0 || cfg.Mode != string(dilemma.ModeSeeded) {
		return cfg
	}
	if cfg.Seed == nil || explicit {
		cfg.Seed = &seed
	}
	return cfg
}

// buildBuilder loads the game file and applies the flags.
func buildBuilder(cmd *cobra.Command) (dilemma.Builder, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return dilemma.Builder{}, err
	}
	logger.Debug("game file", "source", cfg.Source)

	cfg = build.apply(cfg, cmd.Flags().Changed)
	cfg = withSeed(cfg, flagSeed, cmd.Flags().Changed("seed"))

	return cfg.Builder()
}

// buildTable builds the matrix described by the game file and flags.
func buildTable(cmd *cobra.Command) (dilemma.Table, error) {
	b, err := buildBuilder(cmd)
	if err != nil {
		return dilemma.Table{}, err
	}

	tbl := dilemma.NewTable(b.Build())
	logger.Info("matrix built", "mode", b.Mode(), "config", tbl.Configuration().String())
	return tbl, nil
}

// opponentRand returns the generator for random opponent picks.
func opponentRand() *rand.Rand {
	return dilemma.NewRand(flagSeed)
}

// printSummary writes the configuration summary below a rendered grid.
func printSummary(cmd *cobra.Command, tbl dilemma.Table) {
	fmt.Fprint(cmd.OutOrStdout(), tbl.String())
}
