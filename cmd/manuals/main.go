package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "manuals",
		Short: "Freedom Tools manual toolkit",
		Long: `Converts plain-text product manuals into professionally formatted
PDF manuals with headers, footers, and page numbers, and audits
rewritten manuals against the originals for dropped safety and
compliance terminology.`,
		Version: version,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(auditCmd())
	rootCmd.AddCommand(blocksCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
