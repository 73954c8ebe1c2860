package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/greenside/links"
	"github.com/spf13/cobra"
)

// params merges the YAML file, if any, with the flags the user set.
func (f *holeFlags) params(cmd *cobra.Command) (links.Params, error) {
	p := links.DefaultParams()
	if f.config != "" {
		var err error
		if p, err = links.LoadParams(f.config); err != nil {
			return links.Params{}, err
		}
	}
	fl := cmd.Flags()
	if f.config == "" || fl.Changed("length") {
		p.Length = f.length
	}
	if f.config == "" || fl.Changed("par") {
		p.Par = f.par
	}
	if f.config == "" || fl.Changed("dogleg") {
		p.Dogleg = f.dogleg
	}
	if f.config == "" || fl.Changed("intensity") {
		p.Intensity = f.intensity
	}
	if f.config == "" || fl.Changed("seed") {
		p.Seed = f.seed
	}
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	p.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return p, nil
}

func runGenerate(cmd *cobra.Command, hf *holeFlags, out string) error {
	p, err := hf.params(cmd)
	if err != nil {
		return err
	}
	course, err := links.GenerateParams(p)
	if err != nil {
		return err
	}
	snap, err := course.Snapshot()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func loadSnapshot(path string) (*links.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap links.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return links.Restore(snap)
}

func runQuery(cmd *cobra.Command, hf *holeFlags, snapshot string, x, z int) error {
	var (
		course *links.Course
		err    error
	)
	if snapshot != "" {
		course, err = loadSnapshot(snapshot)
	} else {
		var p links.Params
		if p, err = hf.params(cmd); err == nil {
			course, err = links.GenerateParams(p)
		}
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	dx, dz := course.Slope(x, z)
	fmt.Fprintf(w, "height:  %.6f\n", course.Height(x, z))
	fmt.Fprintf(w, "slope:   (%.6f, %.6f)\n", dx, dz)
	fmt.Fprintf(w, "band:    %t\n", course.OnFairwayBand(x, z))
	if kind, ok := course.FeatureAt(float64(x), float64(z)); ok {
		fmt.Fprintf(w, "feature: %s\n", kind)
	} else {
		fmt.Fprintf(w, "feature: none\n")
	}
	return nil
}
