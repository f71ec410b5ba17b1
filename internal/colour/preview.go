package colour

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultSwatchWidth = 8

// Swatch returns a solid block of the colour, width characters wide.
// Returns plain spaces when colour output is disabled.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint(strings.Repeat(" ", width))
}

// FormatColourWithPreview formats a colour with its swatch and hex code.
func FormatColourWithPreview(c RGB, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}

// SupportsANSIColours reports whether f is a terminal that will render swatches.
func SupportsANSIColours(f *os.File) bool {
	if color.NoColor {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
