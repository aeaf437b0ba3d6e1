// Package manifest describes the set of manuals a generate or audit
// run operates on.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/audit"
)

// Entry describes one tool's manual: its generation source/output and
// its audit pairing. Audit fields may be empty for generate-only
// entries and vice versa.
type Entry struct {
	Model        string `yaml:"model"`
	Title        string `yaml:"title"`
	TextFile     string `yaml:"text_file"`
	OutputPDF    string `yaml:"output_pdf"`
	OriginalPDF  string `yaml:"original_pdf"`
	RewrittenTxt string `yaml:"rewritten_txt"`
}

// Manifest is the full run description.
type Manifest struct {
	Brand    string   `yaml:"brand"`
	Keywords []string `yaml:"keywords"`
	Manuals  []Entry  `yaml:"manuals"`
}

// Load reads and validates a YAML manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Brand == "" {
		m.Brand = "FREEDOM"
	}
	if len(m.Keywords) == 0 {
		m.Keywords = audit.DefaultKeywords
	}
	for i := range m.Manuals {
		e := &m.Manuals[i]
		if e.OutputPDF == "" && e.TextFile != "" {
			brand := strings.ToLower(m.Brand)
			if brand != "" {
				brand = strings.ToUpper(brand[:1]) + brand[1:]
			}
			e.OutputPDF = fmt.Sprintf("%s_%s_Manual.pdf", brand, e.Model)
		}
	}
}

// Validate rejects entries that can drive neither generation nor audit.
func (m *Manifest) Validate() error {
	if len(m.Manuals) == 0 {
		return fmt.Errorf("manifest lists no manuals")
	}
	for i, e := range m.Manuals {
		if e.Model == "" {
			return fmt.Errorf("manual %d: model is required", i)
		}
		if e.TextFile == "" && e.OriginalPDF == "" {
			return fmt.Errorf("manual %s: needs text_file (generate) or original_pdf (audit)", e.Model)
		}
		if e.OriginalPDF != "" && e.RewrittenTxt == "" {
			return fmt.Errorf("manual %s: original_pdf set without rewritten_txt", e.Model)
		}
	}
	return nil
}

// AuditPairs returns the entries that carry an audit pairing.
func (m *Manifest) AuditPairs() []audit.Pair {
	var pairs []audit.Pair
	for _, e := range m.Manuals {
		if e.OriginalPDF == "" {
			continue
		}
		pairs = append(pairs, audit.Pair{
			Model:        e.Model,
			OriginalPDF:  e.OriginalPDF,
			RewrittenTxt: e.RewrittenTxt,
		})
	}
	return pairs
}

// Default is the built-in manifest matching the four shipped tools.
func Default() *Manifest {
	m := &Manifest{
		Manuals: []Entry{
			{
				Model:        "FT1001",
				Title:        "18V Cordless Drill",
				TextFile:     "FT1001_Drill_Manual_CONDENSED.txt",
				OutputPDF:    "Freedom_FT1001_Drill_Manual_Condensed.pdf",
				OriginalPDF:  "18V Cordless Drill manual new(FT1001)(1).pdf",
				RewrittenTxt: "FT1001_Drill_Manual_REWRITTEN.txt",
			},
			{
				Model:        "FT1002",
				Title:        "18V Cordless Oscillating Multi-Tool",
				TextFile:     "FT1002_OscillatingTool_Manual_CONDENSED.txt",
				OutputPDF:    "Freedom_FT1002_OscillatingTool_Manual_Condensed.pdf",
				OriginalPDF:  "18V cordless oscillating tool manual  new(FT1002)(1).pdf",
				RewrittenTxt: "FT1002_OscillatingTool_Manual_REWRITTEN.txt",
			},
			{
				Model:        "FT1003",
				Title:        "18V Cordless Mini Saw",
				TextFile:     "FT1003_MiniSaw_Manual_CONDENSED.txt",
				OutputPDF:    "Freedom_FT1003_MiniSaw_Manual_Condensed.pdf",
				OriginalPDF:  "18V Cordless Mini Saw manual new(FT1003)(1).pdf",
				RewrittenTxt: "FT1003_MiniSaw_Manual_REWRITTEN.txt",
			},
			{
				Model:        "FT1004",
				Title:        "18V Cordless Rotary Tool",
				TextFile:     "FT1004_RotaryTool_Manual_CONDENSED.txt",
				OutputPDF:    "Freedom_FT1004_RotaryTool_Manual_Condensed.pdf",
				OriginalPDF:  "18V Cordless Rotary tool manual new(FT1004).pdf",
				RewrittenTxt: "FT1004_RotaryTool_Manual_REWRITTEN.txt",
			},
		},
	}
	m.applyDefaults()
	return m
}
