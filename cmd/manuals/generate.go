package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/classify"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/manifest"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/render"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/source"
)

func generateCmd() *cobra.Command {
	var (
		manifestPath string
		dir          string
		outDir       string
		footerPage   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate PDF manuals from text sources",
		Long: `Reads each manual source listed in the manifest, classifies its
lines into typed blocks, and renders a formatted PDF. Without
--manifest the built-in manifest for the four shipped tools is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}

			renderer := render.New(nil)
			opts := render.Options{Brand: m.Brand, FooterPage: footerPage}

			var failed int
			for _, e := range m.Manuals {
				if e.TextFile == "" {
					continue
				}
				if err := generateOne(renderer, opts, dir, outDir, e); err != nil {
					fmt.Fprintf(os.Stderr, "✗ %s: %v\n", e.Model, err)
					failed++
					continue
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d manual(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest of manuals (default: built-in)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory holding manual sources")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for generated PDFs")
	cmd.Flags().BoolVar(&footerPage, "footer-page", false, "append the trailing company page")
	return cmd
}

func generateOne(renderer *render.Renderer, opts render.Options, dir, outDir string, e manifest.Entry) error {
	fmt.Printf("\nGenerating PDF: %s\n", e.OutputPDF)
	fmt.Printf("  Title: %s\n", e.Title)
	fmt.Printf("  Model: %s\n", e.Model)

	lines, err := readManualLines(filepath.Join(dir, e.TextFile))
	if err != nil {
		return err
	}

	doc := manual.Document{Title: e.Title, Model: e.Model}
	doc.Blocks = classify.Blocks(strings.Join(lines, "\n"))

	outPath := filepath.Join(outDir, e.OutputPDF)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	res, err := renderer.Render(doc, opts, out)
	if err != nil {
		return err
	}
	fmt.Printf("✓ PDF created successfully: %s (%d pages)\n", outPath, res.Pages)
	return nil
}

func readManualLines(path string) ([]string, error) {
	reader, err := source.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return reader.Lines(f)
}

func loadManifest(path string) (*manifest.Manifest, error) {
	if path == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(path)
}
