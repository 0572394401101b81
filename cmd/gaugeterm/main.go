// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "gaugeterm",
		Short:        "Render gauges to the terminal.",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCommand(os.Stdout))
	root.AddCommand(newListCommand(os.Stdout))
	root.AddCommand(newPresetsCommand(os.Stdout))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
