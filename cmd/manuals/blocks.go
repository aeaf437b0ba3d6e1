package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/classify"
)

func blocksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "blocks <manual-file>",
		Short: "Classify a manual and print its typed block stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readManualLines(args[0])
			if err != nil {
				return err
			}

			steps := classify.Scan(lines)
			if check {
				if err := classify.Verify(steps, len(lines)); err != nil {
					return fmt.Errorf("classification invariant violated: %w", err)
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(steps)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify coverage and ordering invariants")
	return cmd
}
