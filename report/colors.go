package report

import (
	"image/color"
	"strings"
)

// ColorToken is a member of the closed palette used for recommendation
// priority banners and row backgrounds. Tokens are semantic, not CSS: each
// renderer maps a token into its own native color space through one of the
// two total lookups below, so an editor can never inject an arbitrary color.
type ColorToken string

const (
	ColorGreen       ColorToken = "green"
	ColorCyan        ColorToken = "cyan"
	ColorOrange      ColorToken = "orange"
	ColorYellow      ColorToken = "yellow"
	ColorGrayLight   ColorToken = "gray-light"
	ColorGrayDefault ColorToken = "gray"
)

// Tokens lists the whole palette in a stable order.
var Tokens = []ColorToken{
	ColorGreen,
	ColorCyan,
	ColorOrange,
	ColorYellow,
	ColorGrayLight,
	ColorGrayDefault,
}

// ParseColorToken normalizes free-form color input into a palette token.
// It accepts both bare token names and the legacy utility-class names
// ("bg-green-600") older documents carry. Anything unrecognized degrades to
// the neutral default instead of failing the render.
func ParseColorToken(s string) ColorToken {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "green"):
		return ColorGreen
	case strings.Contains(v, "cyan"):
		return ColorCyan
	case strings.Contains(v, "orange"):
		return ColorOrange
	case strings.Contains(v, "yellow"):
		return ColorYellow
	case v == string(ColorGrayLight), strings.Contains(v, "gray-100"), strings.Contains(v, "gray-200"):
		return ColorGrayLight
	default:
		return ColorGrayDefault
	}
}

// RGBA is the display-layer mapping used by the layout renderer.
func (t ColorToken) RGBA() color.RGBA {
	switch t {
	case ColorGreen:
		return color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF}
	case ColorCyan:
		return color.RGBA{R: 0x22, G: 0xD3, B: 0xEE, A: 0xFF}
	case ColorOrange:
		return color.RGBA{R: 0xFB, G: 0x92, B: 0x3C, A: 0xFF}
	case ColorYellow:
		return color.RGBA{R: 0xFD, G: 0xE0, B: 0x47, A: 0xFF}
	case ColorGrayLight:
		return color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	default:
		return color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	}
}

// Hex is the document-engine mapping: an RRGGBB fill value for OOXML
// shading and spreadsheet styles. The exact values differ from RGBA (Word
// shading wants brighter fills behind black text) but stay in the same
// color family per token.
func (t ColorToken) Hex() string {
	switch t {
	case ColorGreen:
		return "4CAF50"
	case ColorCyan:
		return "00FFFF"
	case ColorOrange:
		return "FFA500"
	case ColorYellow:
		return "FFFF00"
	case ColorGrayLight:
		return "F0F0F0"
	default:
		return "E0E0E0"
	}
}
