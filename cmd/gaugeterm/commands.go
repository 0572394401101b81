// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"fmt"
	"gaugemini/config"
	"gaugemini/gaugeval"
	"gaugemini/termview"
	"gaugemini/widgets"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func loadGaugeFile(path string) (config.GaugeFile, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.GaugeFile{}, err
		}
		path = p
	}
	return config.NewFileConfig(path, log.New(io.Discard, "", 0)).Copy()
}

func newRenderCommand(out io.Writer) *cobra.Command {
	var (
		configPath string
		preset     string
		values     []string
		width      float32
		height     float32
		light      bool
	)
	cmd := &cobra.Command{
		Use:   "render [gauge]",
		Short: "Render a gauge from the gauge file, or a preset with the given values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var c config.GaugeConfig
			if len(args) == 1 {
				f, err := loadGaugeFile(configPath)
				if err != nil {
					return err
				}
				var ok bool
				if c, ok = f.Gauge(args[0]); !ok {
					return fmt.Errorf("unknown gauge %q, run 'gaugeterm list' to see options", args[0])
				}
				light = light || f.LightTheme
			} else {
				c = config.NewGaugeConfig(preset, preset, nil)
			}
			if len(values) > 0 {
				series, err := parseValues(values)
				if err != nil {
					return err
				}
				c.Values = series
			}
			if width > 0 {
				c.Width = width
			}
			if height > 0 {
				c.Height = height
			}
			f := config.GaugeFile{Gauges: []config.GaugeConfig{c}}
			f.Sanitize()
			return termview.RenderGauge(out, f.Gauges[0], light)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "gauge file")
	cmd.Flags().StringVarP(&preset, "preset", "p", widgets.PresetBullet, "preset used without gauge file")
	cmd.Flags().StringArrayVarP(&values, "value", "v", nil, "value as field=value or plain number, may be repeated")
	cmd.Flags().Float32Var(&width, "width", 0, "viewport width")
	cmd.Flags().Float32Var(&height, "height", 0, "viewport height")
	cmd.Flags().BoolVar(&light, "light", false, "use colors for bright terminals")
	return cmd
}

func parseValues(values []string) (gaugeval.ValueSeries, error) {
	series := make(gaugeval.ValueSeries, 0, len(values))
	for _, s := range values {
		fv, err := gaugeval.ParseFieldValue(s)
		if err != nil {
			return nil, err
		}
		series = append(series, fv)
	}
	return series, nil
}

func newListCommand(out io.Writer) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the gauges of the gauge file",
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := loadGaugeFile(configPath)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPRESET\tFIELDS")
			for _, g := range f.Gauges {
				fmt.Fprintf(w, "%s\t%s\t%s\n", g.Name, g.Preset, strings.Join(g.Values.Fields(), ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "gauge file")
	return cmd
}

func newPresetsCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in gauge presets",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tMODE\tTHRESHOLDS\tAXIS")
			for _, name := range []string{widgets.PresetBullet, widgets.PresetProgress} {
				th, err := widgets.NewGaugeTheme(name, false)
				if err != nil {
					return err
				}
				thresholds := lo.Map(th.Colors.OfKind(gaugeval.ColorKindThreshold), func(s gaugeval.ColorStop, _ int) string {
					return gaugeval.Fixed(0, "")(s.Value)
				})
				axis := "-"
				if th.AxesSteps != nil {
					if v, err := th.AxesSteps.MarshalYAML(); err == nil {
						axis = fmt.Sprint(v)
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, th.Mode, strings.Join(thresholds, ","), axis)
			}
			return w.Flush()
		},
	}
}
