package render

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// TextStyle describes font and color for one block treatment.
type TextStyle struct {
	Font  string
	Style string // "", "B", "I"
	Size  float64
	Color RGB
}

// BoxStyle is a TextStyle drawn inside a filled, bordered box.
type BoxStyle struct {
	TextStyle
	Fill   RGB
	Border RGB
}

// StyleSheet maps every block kind and page decoration to its visual
// treatment. It is constructed explicitly and passed to the renderer;
// there is no process-wide style registry.
type StyleSheet struct {
	CoverBrand    TextStyle
	CoverTitle    TextStyle
	CoverModel    TextStyle
	CoverSubtitle TextStyle

	MajorSection BoxStyle
	Subsection   TextStyle
	Problem      TextStyle
	Warning      BoxStyle
	Note         BoxStyle
	List         TextStyle
	Body         TextStyle

	Accent RGB // header/footer rule lines and brand accents
	Muted  RGB // running header/footer text
}

// DefaultStyles is the Freedom Tools house style: blue headers, red
// boxed warnings, blue boxed notes, 9pt Helvetica body.
func DefaultStyles() *StyleSheet {
	var (
		accent   = RGB{0, 102, 204}   // #0066cc
		deepBlue = RGB{0, 74, 153}    // #004a99
		ink      = RGB{26, 26, 26}    // #1a1a1a
		muted    = RGB{102, 102, 102} // #666666
		alarm    = RGB{204, 0, 0}     // #cc0000
		alarmBG  = RGB{255, 245, 245} // #fff5f5
		noteBG   = RGB{240, 248, 255} // #f0f8ff
	)
	return &StyleSheet{
		CoverBrand:    TextStyle{Font: "Helvetica", Style: "B", Size: 32, Color: accent},
		CoverTitle:    TextStyle{Font: "Helvetica", Style: "B", Size: 24, Color: ink},
		CoverModel:    TextStyle{Font: "Helvetica", Style: "B", Size: 18, Color: accent},
		CoverSubtitle: TextStyle{Font: "Helvetica", Size: 16, Color: muted},

		MajorSection: BoxStyle{
			TextStyle: TextStyle{Font: "Helvetica", Style: "B", Size: 14, Color: RGB{255, 255, 255}},
			Fill:      deepBlue,
			Border:    deepBlue,
		},
		Subsection: TextStyle{Font: "Helvetica", Style: "B", Size: 11, Color: accent},
		Problem:    TextStyle{Font: "Helvetica", Style: "B", Size: 10, Color: ink},
		Warning: BoxStyle{
			TextStyle: TextStyle{Font: "Helvetica", Style: "B", Size: 9, Color: alarm},
			Fill:      alarmBG,
			Border:    alarm,
		},
		Note: BoxStyle{
			TextStyle: TextStyle{Font: "Helvetica", Style: "B", Size: 9, Color: accent},
			Fill:      noteBG,
			Border:    accent,
		},
		List: TextStyle{Font: "Helvetica", Size: 9, Color: ink},
		Body: TextStyle{Font: "Helvetica", Size: 9, Color: ink},

		Accent: accent,
		Muted:  muted,
	}
}
