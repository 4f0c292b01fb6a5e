package main

import (
	"github.com/spf13/cobra"

	"github.com/layoutkit/layoutkit/internal/laytext"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [request]",
		Short: "Summarize a layout request",
		Long: `The info command parses a layout request and reports its parameters and
section statistics without computing a layout.

Example:
  layoutctl info image.sections
  layoutctl info image.sections --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runInfo(path)
		},
	}
	return cmd
}

func runInfo(path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	specs, params, err := laytext.ParseRequest(data)
	if err != nil {
		return err
	}

	known := 0
	var totalBytes int64
	for _, s := range specs {
		if s.HasOldAddr() {
			known++
		}
		totalBytes += s.Size
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"sections":        len(specs),
			"base":            params.Base,
			"spacing":         params.Spacing,
			"known_address":   known,
			"unknown_address": len(specs) - known,
			"total_bytes":     totalBytes,
		})
	}

	printInfo("Request:\n")
	printInfo("  Sections: %d\n", len(specs))
	printInfo("  Base: %d\n", params.Base)
	printInfo("  Spacing: %d\n", params.Spacing)
	printInfo("  Known addresses: %d\n", known)
	printInfo("  Unknown addresses: %d\n", len(specs)-known)
	printInfo("  Total section bytes: %d\n", totalBytes)
	return nil
}
