// Package layout renders report pages onto fixed-size A4 bitmaps. The
// renderer is a pure function of the report snapshot: identical input
// produces identical pixels, regardless of environment, which is what the
// PDF capture pipeline depends on.
package layout

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"

	"georeport/assets"
	"georeport/report"
)

// Canonical document page size: A4 at 96 dpi.
const (
	PageWidth  = 794
	PageHeight = 1123

	// PageCount is the number of document pages in a report.
	PageCount = 2

	pagePad = 40
)

const (
	companyName    = "AQUA GEO SERVICES"
	companyTagline = "The Professional Ground Water People"
	reportTitle    = "GEOLOGICAL INVESTIGATION REPORT"
	signatoryName  = "(D.V.S.P. Gupta)"
	signatureLine  = "For AQUA GEO SERVICES,"
	footerPrefix   = "Ground Water Survey Report"
)

var companyAddress = []string{
	"H.No. 12-121, P & T Colony,",
	"Dilsukhnagar, Hyderabad - 500 060.",
	"Ph. : 6513 1596, Cell : 98480 15961",
	"E-mail : aquageo.gupta@gmail.com",
}

var (
	colorBlack   = color.RGBA{A: 0xFF}
	colorWhite   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorCompany = color.RGBA{R: 0x00, G: 0x66, B: 0xCC, A: 0xFF}
	colorMuted   = color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF}
	colorFaint   = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
)

// Options configures a Renderer.
type Options struct {
	// Scale is the supersampling factor applied to the canonical page
	// size. 2 doubles the raster resolution for crisp PDF embedding.
	Scale int
	// AssetDir is where relative logo/signature paths resolve.
	AssetDir string
}

// Renderer rasterizes report pages. Rendering is serialized: the cached
// opentype faces are stateful glyph loaders and must not be driven from
// two pages at once.
type Renderer struct {
	mu     sync.Mutex
	scale  int
	loader assets.Loader
	faces  *faceCache

	// Faces at the fixed sizes the layout uses.
	companyFace  font.Face
	taglineFace  font.Face
	addrFace     font.Face
	headerFace   font.Face
	titleFace    font.Face
	bodyFace     font.Face
	boldBodyFace font.Face
	tableFace    font.Face
	supFace      font.Face
	footerFace   font.Face
	smallFace    font.Face
}

// NewRenderer builds a renderer with all typefaces resolved up front.
func NewRenderer(opts Options) (*Renderer, error) {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	r := &Renderer{
		scale:  scale,
		loader: assets.Loader{Dir: opts.AssetDir},
		faces:  newFaceCache(scale),
	}

	var err error
	load := func(dst *font.Face, style fontStyle, size float64) {
		if err != nil {
			return
		}
		*dst, err = r.faces.face(style, size)
	}
	load(&r.companyFace, styleBold, 28)
	load(&r.taglineFace, styleRegular, 13)
	load(&r.addrFace, styleRegular, 11)
	load(&r.headerFace, styleBold, 14)
	load(&r.titleFace, styleBold, 18)
	load(&r.bodyFace, styleRegular, 14)
	load(&r.boldBodyFace, styleBold, 14)
	load(&r.tableFace, styleBold, 12)
	load(&r.supFace, styleBold, 10)
	load(&r.footerFace, styleRegular, 11)
	load(&r.smallFace, styleRegular, 10)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Scale reports the supersampling factor.
func (r *Renderer) Scale() int { return r.scale }

// RenderPage rasterizes document page n (1-based) of the report onto an
// opaque white canvas of PageWidth*scale x PageHeight*scale pixels.
func (r *Renderer) RenderPage(data report.ReportData, n int) (*image.RGBA, error) {
	if n < 1 || n > PageCount {
		return nil, fmt.Errorf("layout: page %d not in document (have %d pages)", n, PageCount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, PageWidth*r.scale, PageHeight*r.scale))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)
	c := &canvas{img: img, scale: r.scale}

	if n == 1 {
		r.renderPage1(c, data)
	} else {
		r.renderPage2(c, data)
	}
	return img, nil
}

// letterhead draws the shared page header and returns the y the content
// starts at.
func (r *Renderer) letterhead(c *canvas, data report.ReportData) float64 {
	const boxSize = 96.0
	x, y := float64(pagePad), float64(pagePad)

	logo, err := r.loader.Load(data.LogoImage)
	if err != nil {
		c.dashedRect(x, y, boxSize, boxSize, colorFaint)
		c.textCentered(x+boxSize/2, y+boxSize/2+4, "No Logo", r.smallFace, colorFaint)
	} else {
		fitted := logo.Fit(int(boxSize), int(boxSize))
		w := float64(fitted.Bounds().Dx())
		h := float64(fitted.Bounds().Dy())
		c.drawImage(fitted, x+(boxSize-w)/2, y+(boxSize-h)/2, w, h)
	}

	tx := x + boxSize + 16
	c.text(tx, y+38, companyName, r.companyFace, colorCompany)
	c.text(tx, y+60, companyTagline, r.taglineFace, colorMuted)

	ay := y + 12.0
	for _, line := range companyAddress {
		c.textRight(PageWidth-pagePad, ay, line, r.addrFace, colorMuted)
		ay += 15
	}

	return y + boxSize + 24
}

// footer draws the page footer rule with surveyor name and page number.
func (r *Renderer) footer(c *canvas, data report.ReportData, page int) {
	y := float64(PageHeight - pagePad - 20)
	c.fillRect(pagePad, y, PageWidth-2*pagePad, 1, colorBlack)
	c.text(pagePad, y+16, fmt.Sprintf("%s – %s", footerPrefix, data.SurveyorName), r.footerFace, colorBlack)
	c.textRight(PageWidth-pagePad, y+16, fmt.Sprintf("Page %d", page), r.footerFace, colorBlack)
}

// labeled renders an underlined bold label followed by body text as one
// wrapped paragraph, returning the next baseline.
func (r *Renderer) labeled(c *canvas, y float64, label, body string) float64 {
	return c.drawRichText(pagePad, y, PageWidth-2*pagePad, 22, []run{
		{text: label, face: r.boldBodyFace, underline: true, col: colorBlack},
		{text: body, face: r.bodyFace, col: colorBlack},
	})
}

func (r *Renderer) renderPage1(c *canvas, data report.ReportData) {
	y := r.letterhead(c, data)

	// S.No / Date line.
	y += 12
	c.text(pagePad, y, "S.No."+data.SNo, r.headerFace, colorBlack)
	c.textRight(PageWidth-pagePad, y, "Date: "+data.Date, r.headerFace, colorBlack)
	y += 28

	// Recipient block.
	c.text(pagePad, y, "To:", r.headerFace, colorBlack)
	y += 20
	y = c.drawRichText(pagePad, y, PageWidth-2*pagePad, 20, []run{
		{text: data.ToAddress, face: r.headerFace, col: colorBlack},
	})
	y += 14

	// Highlighted title banner, centered.
	tw := c.width(r.titleFace, reportTitle)
	bx := (PageWidth - tw) / 2
	c.fillRect(bx-8, y-20, tw+16, 28, report.ColorCyan.RGBA())
	c.fillRect(bx-8, y+6, tw+16, 2, color.RGBA{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF})
	c.text(bx, y, reportTitle, r.titleFace, colorBlack)
	y += 38

	y = r.labeled(c, y, "Location:", data.Location)
	y += 8
	y = r.labeled(c, y, "Physiography of the Area:", data.Physiography)
	y += 8
	y = r.labeled(c, y, "Topographical Features of the Site:", data.Topographical)
	y += 8
	y = r.labeled(c, y, "Geological Condition of the Area:", data.Geological)
	y += 8

	// Thickness of beds list.
	c.text(pagePad, y, "Overall Expected Thickness of Beds", r.bodyFace, colorBlack)
	y += 22
	beds := []struct{ label, value string }{
		{"a) Over burden of the beds", data.ThicknessBeds.A},
		{"b) Weathered zone", data.ThicknessBeds.B},
		{"c) Depth of basement", data.ThicknessBeds.C},
	}
	for _, b := range beds {
		c.text(pagePad+96, y, b.label, r.bodyFace, colorBlack)
		c.text(pagePad+300, y, ": "+b.value, r.bodyFace, colorBlack)
		y += 22
	}
	y += 8

	y = r.labeled(c, y, "Hydrological condition of the Area:", data.Hydrological)
	y += 8
	y = r.labeled(c, y, "Nature of intrusive rocks (if present):", data.IntrusiveRocks)
	y += 8
	y = r.labeled(c, y, "Groundwater conditions of the wells:", data.Groundwater)
	y += 8

	// Geophysical survey details.
	c.text(pagePad, y, "Geophysical Survey Details:", r.boldBodyFace, colorBlack)
	c.fillRect(pagePad, y+2, c.width(r.boldBodyFace, "Geophysical Survey Details:"), 1, colorBlack)
	y += 24
	c.text(pagePad, y, "Type of Survey", r.bodyFace, colorBlack)
	c.text(pagePad+150, y, ":", r.bodyFace, colorBlack)
	c.text(pagePad+162, y, data.Geophysical.Type, r.bodyFace, colorBlack)
	y += 22
	c.text(pagePad, y, "Results", r.bodyFace, colorBlack)
	c.text(pagePad+150, y, ":", r.bodyFace, colorBlack)
	c.text(pagePad+162, y, data.Geophysical.Results, r.bodyFace, colorBlack)

	r.footer(c, data, 1)
}
