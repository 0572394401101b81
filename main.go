// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"context"
	"fmt"
	"gaugemini/config"
	"gaugemini/gaugeviz"
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	root := cobra.Command{
		Use:   config.AppName,
		Short: "gaugemini shows compact bullet and progress gauges declared in a YAML file.",
		RunE: func(_ *cobra.Command, _ []string) error {
			if configPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				configPath = p
			}
			logger := log.Default()
			a := gaugeviz.NewGaugeApp(config.NewFileConfig(configPath, logger), logger)
			go func() {
				if err := a.Run(context.Background()); err != nil {
					logger.Printf("terminating with error: %v", err)
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "gauge file, defaults to the user configuration directory")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
