package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layoutkit/layoutkit/internal/laytext"
	"github.com/layoutkit/layoutkit/layout/plan"
)

func init() {
	rootCmd.AddCommand(newPlanCmd())
}

func newPlanCmd() *cobra.Command {
	var iterate bool

	cmd := &cobra.Command{
		Use:   "plan [request]",
		Short: "Compute a layout for a section description",
		Long: `The plan command reads a layout request (count/base/spacing header plus
one record per section) from a file or standard input and writes the computed
layout to standard output: one name/address line per section in ascending
address order, terminated by a line with the new base.

Nothing is written to standard output when planning fails, so downstream
tooling never sees a partial layout.

Example:
  layoutctl plan image.sections
  cat image.sections | layoutctl plan --iterate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPlan(path, iterate, os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&iterate, "iterate", false,
		"Iterate overlap resolution to a fixed point instead of a single pass")
	return cmd
}

func runPlan(path string, iterate bool, out *os.File) error {
	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	specs, params, err := laytext.ParseRequest(data)
	if err != nil {
		return err
	}

	res, err := plan.Compute(specs, params, plan.Options{
		IterateResolution: iterate,
		Logger:            stageLogger(),
	})
	if err != nil {
		return err
	}

	// Render fully before touching stdout: a failure above must leave no
	// partial output behind.
	var buf bytes.Buffer
	if jsonOut {
		return printJSON(res)
	}
	if err := laytext.EmitResult(&buf, res); err != nil {
		return err
	}
	_, err = buf.WriteTo(out)
	return err
}
