package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layoutkit/layoutkit/internal/laytext"
	"github.com/layoutkit/layoutkit/layout/verify"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <request> <layout>",
		Short: "Check a produced layout against its request",
		Long: `The verify command re-checks a layout file against the request it was
computed from: every section placed exactly once, all addresses at or above
the base, no overlapping ranges, spacing respected between relocated
sections, and unmoved sections still at their prior addresses.

Example:
  layoutctl verify image.sections image.layout`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], args[1])
		},
	}
	return cmd
}

func runVerify(requestPath, layoutPath string) error {
	reqData, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	layData, err := os.ReadFile(layoutPath)
	if err != nil {
		return fmt.Errorf("failed to read layout: %w", err)
	}

	specs, params, err := laytext.ParseRequest(reqData)
	if err != nil {
		return err
	}
	res, err := laytext.ParseResult(layData)
	if err != nil {
		return err
	}

	// The layout encoding does not carry kept flags; a section counts as
	// kept when it sits at its prior address.
	old := make(map[string]int64, len(specs))
	for _, s := range specs {
		old[s.Name] = s.OldAddr
	}
	for i, p := range res.Placements {
		if addr, ok := old[p.Name]; ok && addr == p.Addr {
			res.Placements[i].Kept = true
		}
	}

	if err := verify.AllInvariants(specs, res, params); err != nil {
		return fmt.Errorf("layout invalid: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"valid":    true,
			"sections": len(res.Placements),
			"new_base": res.NewBase,
		})
	}
	printInfo("Layout valid: %d sections, new base %d\n", len(res.Placements), res.NewBase)
	return nil
}
