package report

// fallbackPalette supplies colors for categories that were saved without one.
// Selection is by index so the same input always yields the same colors.
var fallbackPalette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
}

// FallbackColor returns the palette color for the given position, wrapping
// around when the palette is exhausted.
func FallbackColor(index int) string {
	if index < 0 {
		index = -index
	}
	return fallbackPalette[index%len(fallbackPalette)]
}
