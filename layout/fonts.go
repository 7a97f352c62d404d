package layout

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontStyle selects a face weight/slant within the embedded family.
type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
)

var (
	parseOnce   sync.Once
	parseErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font
	italicFont  *opentype.Font
)

func parseFonts() error {
	parseOnce.Do(func() {
		regularFont, parseErr = opentype.Parse(goregular.TTF)
		if parseErr != nil {
			return
		}
		boldFont, parseErr = opentype.Parse(gobold.TTF)
		if parseErr != nil {
			return
		}
		italicFont, parseErr = opentype.Parse(goitalic.TTF)
	})
	return parseErr
}

type faceKey struct {
	style  fontStyle
	sizePx float64
}

// faceCache hands out font.Face values for the renderer. Rendering always
// uses the embedded Go fonts: report font roles name families like "Arial"
// or "Roboto" that the raster layer maps onto the one family it ships, so
// output stays deterministic on every machine. The role selection still
// matters for the DOCX engine, which records the family name as-is.
type faceCache struct {
	scale int

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

func newFaceCache(scale int) *faceCache {
	return &faceCache{scale: scale, faces: make(map[faceKey]font.Face)}
}

// face returns a cached face of the given style at sizePx document pixels,
// supersampled by the renderer scale.
func (fc *faceCache) face(style fontStyle, sizePx float64) (font.Face, error) {
	if err := parseFonts(); err != nil {
		return nil, fmt.Errorf("layout: parse embedded fonts: %w", err)
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	key := faceKey{style: style, sizePx: sizePx}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}

	src := regularFont
	switch style {
	case styleBold:
		src = boldFont
	case styleItalic:
		src = italicFont
	}

	// Size is given in document pixels; DPI folds in the supersampling
	// factor so glyphs come out at sizePx*scale device pixels.
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72 * float64(fc.scale),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("layout: build face: %w", err)
	}
	fc.faces[key] = f
	return f, nil
}
