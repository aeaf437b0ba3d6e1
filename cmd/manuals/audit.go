package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/audit"
)

func auditCmd() *cobra.Command {
	var (
		manifestPath string
		dir          string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit rewritten manuals for dropped safety keywords",
		Long: `For each manifest entry with an audit pairing, extracts the text of
the original PDF and flags every keyword that appears there but not
in the rewritten text. Each model is audited independently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}

			pairs := m.AuditPairs()
			if len(pairs) == 0 {
				return fmt.Errorf("manifest has no audit pairings")
			}

			var failed int
			for _, p := range pairs {
				report, err := audit.Check(dir, p, m.Keywords)
				if err != nil {
					fmt.Fprintf(os.Stderr, "✗ %s audit: %v\n", p.Model, err)
					failed++
					continue
				}
				printReport(report)
			}
			if failed > 0 {
				return fmt.Errorf("%d audit(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest of manuals (default: built-in)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory holding original PDFs and rewritten texts")
	return cmd
}

func printReport(r audit.Report) {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("%s audit\n", r.Model)
	fmt.Printf("  original:  %s\n", r.Original)
	fmt.Printf("  rewritten: %s\n", r.Rewritten)
	fmt.Printf("  flagged missing keywords (present in original, absent in rewrite): %d\n", len(r.Missing))
	for _, kw := range r.Missing {
		fmt.Printf("   - %s\n", kw)
	}
}
