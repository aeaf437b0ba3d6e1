package audit

// DefaultKeywords is the fixed audit list. A keyword is flagged only
// when it appears in the original document and is missing from the
// rewrite; report order follows this list.
var DefaultKeywords = []string{
	// compliance / regs
	"Proposition 65",
	"OEHHA",
	"California",
	"double insulated",
	"Class II",
	"earthing",
	"RCD",
	"GFCI",
	"EC declaration",
	"CE",
	"RoHS",

	// safety concepts
	"kickback",
	"abrasive",
	"cut-off",
	"wire brush",
	"polishing",
	"sanding",
	"grinding",
	"dust mask",
	"respirator",
	"crystalline silica",
	"lead-based",
	"pressure-treated",
	"arsenic",
	"chromium",
	"wood dust",
	"electromagnetic field",
	"vibration",
	"noise",

	// charger/battery
	"battery",
	"charger",
	"charging",
	"100-240",
	"polarity",

	// disposal / symbols
	"recycle",
	"recycling",
	"WEEE",
	"symbols",
	"read manual",
}
