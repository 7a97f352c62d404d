package layout

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// canvas wraps the page bitmap with drawing helpers that work in document
// pixels. Every coordinate is multiplied by the supersampling scale at the
// last moment, so layout math stays in the canonical 794x1123 space.
type canvas struct {
	img   *image.RGBA
	scale int
}

func (c *canvas) px(v float64) int {
	return int(v*float64(c.scale) + 0.5)
}

func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	r := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// strokeRect draws a rectangle outline of the given line weight.
func (c *canvas) strokeRect(x, y, w, h, weight float64, col color.Color) {
	c.fillRect(x, y, w, weight, col)
	c.fillRect(x, y+h-weight, w, weight, col)
	c.fillRect(x, y, weight, h, col)
	c.fillRect(x+w-weight, y, weight, h, col)
}

// dashedRect draws a dashed outline, used for the missing-logo placeholder.
func (c *canvas) dashedRect(x, y, w, h float64, col color.Color) {
	const dash, gap = 6.0, 4.0
	for dx := 0.0; dx < w; dx += dash + gap {
		seg := dash
		if dx+seg > w {
			seg = w - dx
		}
		c.fillRect(x+dx, y, seg, 2, col)
		c.fillRect(x+dx, y+h-2, seg, 2, col)
	}
	for dy := 0.0; dy < h; dy += dash + gap {
		seg := dash
		if dy+seg > h {
			seg = h - dy
		}
		c.fillRect(x, y+dy, 2, seg, col)
		c.fillRect(x+w-2, y+dy, 2, seg, col)
	}
}

// drawImage scales src to w x h document pixels and draws it at (x, y).
func (c *canvas) drawImage(src image.Image, x, y, w, h float64) {
	scaled := imaging.Resize(src, c.px(x+w)-c.px(x), c.px(y+h)-c.px(y), imaging.Lanczos)
	r := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h))
	draw.Draw(c.img, r, scaled, image.Point{}, draw.Over)
}

// text draws a single line with its baseline at (x, y) and returns the
// advance width in document pixels.
func (c *canvas) text(x, y float64, s string, face font.Face, col color.Color) float64 {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(c.px(x), c.px(y)),
	}
	d.DrawString(s)
	return c.width(face, s)
}

// width measures a string in document pixels.
func (c *canvas) width(face font.Face, s string) float64 {
	d := font.Drawer{Face: face}
	return float64(d.MeasureString(s)>>6) / float64(c.scale)
}

// textCentered draws s centered on cx with baseline y.
func (c *canvas) textCentered(cx, y float64, s string, face font.Face, col color.Color) {
	w := c.width(face, s)
	c.text(cx-w/2, y, s, face, col)
}

// textRight draws s ending at x with baseline y.
func (c *canvas) textRight(x, y float64, s string, face font.Face, col color.Color) {
	w := c.width(face, s)
	c.text(x-w, y, s, face, col)
}

// run is a styled span inside a rich-text paragraph.
type run struct {
	text      string
	face      font.Face
	underline bool
	col       color.Color
}

type word struct {
	text      string
	face      font.Face
	underline bool
	col       color.Color
	width     float64
	space     float64 // trailing space width in this word's face
	newline   bool    // hard break before this word
}

// splitWords tokenizes runs into wrappable words, keeping per-word style.
func (c *canvas) splitWords(runs []run) []word {
	var words []word
	for _, r := range runs {
		space := c.width(r.face, " ")
		for li, line := range strings.Split(r.text, "\n") {
			for wi, t := range strings.Fields(line) {
				w := word{
					text:      t,
					face:      r.face,
					underline: r.underline,
					col:       r.col,
					width:     c.width(r.face, t),
					space:     space,
				}
				if li > 0 && wi == 0 {
					w.newline = true
				}
				words = append(words, w)
			}
		}
	}
	return words
}

// drawRichText greedily wraps the runs into maxW and draws them starting at
// baseline y. It returns the baseline of the line following the paragraph.
func (c *canvas) drawRichText(x, y, maxW, lineH float64, runs []run) float64 {
	words := c.splitWords(runs)
	cx := x
	for _, w := range words {
		if w.newline || (cx > x && cx+w.width > x+maxW) {
			cx = x
			y += lineH
		}
		c.text(cx, y, w.text, w.face, w.col)
		if w.underline {
			c.fillRect(cx, y+2, w.width, 1, w.col)
		}
		cx += w.width + w.space
	}
	return y + lineH
}

// richTextHeight measures how tall drawRichText output will be, without
// drawing. Used to size background fills before text lands on them.
func (c *canvas) richTextHeight(maxW, lineH float64, runs []run) float64 {
	words := c.splitWords(runs)
	lines := 1
	cx := 0.0
	for _, w := range words {
		if w.newline || (cx > 0 && cx+w.width > maxW) {
			cx = 0
			lines++
		}
		cx += w.width + w.space
	}
	if len(words) == 0 {
		lines = 0
	}
	return float64(lines) * lineH
}
