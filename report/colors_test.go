package report

import "testing"

func TestParseColorToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ColorToken
	}{
		{"bare token", "green", ColorGreen},
		{"uppercase", "CYAN", ColorCyan},
		{"padded", "  orange  ", ColorOrange},
		{"legacy utility class", "bg-green-600", ColorGreen},
		{"legacy cyan class", "bg-cyan-400", ColorCyan},
		{"legacy light gray class", "bg-gray-100", ColorGrayLight},
		{"gray-light token", "gray-light", ColorGrayLight},
		{"unknown falls back to gray", "magenta", ColorGrayDefault},
		{"empty falls back to gray", "", ColorGrayDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColorToken(tt.input); got != tt.want {
				t.Fatalf("ParseColorToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorMappingsAreTotal(t *testing.T) {
	// Every token must produce a distinct raster color and a valid hex fill.
	seenRGBA := map[[4]uint8]ColorToken{}
	for _, tok := range Tokens {
		c := tok.RGBA()
		if c.A != 0xFF {
			t.Errorf("token %q: raster color must be opaque, got alpha %d", tok, c.A)
		}
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, dup := seenRGBA[key]; dup && tok != ColorGrayDefault {
			t.Errorf("tokens %q and %q share a raster color", prev, tok)
		}
		seenRGBA[key] = tok

		hex := tok.Hex()
		if len(hex) != 6 {
			t.Errorf("token %q: hex fill %q is not RRGGBB", tok, hex)
		}
	}
}

func TestUnknownTokenUsesDefaultColor(t *testing.T) {
	unknown := ColorToken("hotpink")
	if unknown.RGBA() != ColorGrayDefault.RGBA() {
		t.Errorf("unknown token raster color should match the gray default")
	}
	if unknown.Hex() != ColorGrayDefault.Hex() {
		t.Errorf("unknown token hex fill should match the gray default")
	}
}
