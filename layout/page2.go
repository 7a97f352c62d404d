package layout

import (
	"strconv"
	"strings"

	"georeport/report"
)

const (
	postTableText = "The above report is based on modern and scientific data and criteria and is only a firm " +
		"indication of high probabilities regarding the quality and quantity of the groundwater. Hence drilling " +
		"of a bore well should be done at cost and consequences of the client only."
	recommendIntro = "Based on the interpretation of geological, hydrogeological, and geophysical data we are " +
		"recommending the following :"
	remarksIntro = "To be on the safe side, cautious and to avoid any confusing situation, the clients are " +
		"advised to make a note of the following facts:"
)

func (r *Renderer) renderPage2(c *canvas, data report.ReportData) {
	y := r.letterhead(c, data)
	y += 8

	c.text(pagePad, y, "Recommendations", r.titleFace, colorBlack)
	c.fillRect(pagePad, y+3, c.width(r.titleFace, "Recommendations"), 1, colorBlack)
	y += 28

	y = c.drawRichText(pagePad, y, PageWidth-2*pagePad, 22, []run{
		{text: recommendIntro, face: r.bodyFace, col: colorBlack},
	})
	y += 4

	y = r.drawTable(c, y, data)
	y += 18

	y = c.drawRichText(pagePad, y, PageWidth-2*pagePad, 22, []run{
		{text: postTableText, face: r.bodyFace, col: colorBlack},
	})
	y += 8

	// Note block on a yellow fill sized to the wrapped text.
	noteRuns := []run{{text: data.Note, face: r.boldBodyFace, col: colorBlack}}
	noteH := c.richTextHeight(PageWidth-2*pagePad-8, 22, noteRuns)
	if noteH > 0 {
		c.fillRect(pagePad, y-16, PageWidth-2*pagePad, noteH+8, report.ColorYellow.RGBA())
		y = c.drawRichText(pagePad+4, y, PageWidth-2*pagePad-8, 22, noteRuns)
	}
	y += 14

	// Remarks as a numbered list with the shared emphasis rules.
	c.text(pagePad, y, "Remarks:", r.boldBodyFace, colorBlack)
	c.fillRect(pagePad, y+2, c.width(r.boldBodyFace, "Remarks:"), 1, colorBlack)
	y += 22
	y = c.drawRichText(pagePad, y, PageWidth-2*pagePad, 22, []run{
		{text: remarksIntro, face: r.bodyFace, col: colorBlack},
	})
	y += 4
	for i, remark := range data.Remarks {
		c.text(pagePad+24, y, numberLabel(i), r.bodyFace, colorBlack)
		runs := make([]run, 0, 4)
		for _, seg := range report.EmphasisSegments(remark) {
			face := r.bodyFace
			if seg.Bold {
				face = r.boldBodyFace
			}
			runs = append(runs, run{text: seg.Text, face: face, col: colorBlack})
		}
		y = c.drawRichText(pagePad+48, y, PageWidth-2*pagePad-48, 22, runs)
		y += 8
	}
	y += 12

	// Signature block.
	c.text(pagePad, y, signatureLine, r.boldBodyFace, colorBlack)
	y += 20
	if sig, err := r.loader.Load(data.SignatureImage); err == nil {
		c.drawImage(sig.Fit(150, 50), pagePad, y, 150, 50)
		y += 58
	} else {
		c.text(pagePad, y+14, "(Signature)", r.footerFace, colorMuted)
		y += 36
	}
	c.text(pagePad, y, signatoryName, r.bodyFace, colorBlack)

	r.footer(c, data, 2)
}

func numberLabel(i int) string {
	return strconv.Itoa(i+1) + "."
}

// columnEdges converts the shared percentage bands into x offsets across
// the table width.
func columnEdges(x, width float64) []float64 {
	edges := make([]float64, 0, len(report.TableBands)+1)
	edges = append(edges, x)
	acc := 0
	for _, band := range report.TableBands {
		acc += band
		edges = append(edges, x+width*float64(acc)/100)
	}
	return edges
}

// drawTable renders the recommendations table and returns the y below it.
func (r *Renderer) drawTable(c *canvas, y float64, data report.ReportData) float64 {
	x := float64(pagePad)
	width := float64(PageWidth - 2*pagePad)
	edges := columnEdges(x, width)
	top := y

	headerFill := report.ColorOrange.RGBA()

	// Header row: labels wrap onto two centered lines.
	const headerH = 44.0
	c.fillRect(x, y, width, headerH, headerFill)
	for i, label := range report.TableHeaders {
		cx := (edges[i] + edges[i+1]) / 2
		lines := strings.Fields(label)
		if len(lines) > 2 {
			lines = []string{strings.Join(lines[:len(lines)-1], " "), lines[len(lines)-1]}
		}
		ly := y + headerH/2 - float64(len(lines)-1)*8 + 4
		for _, line := range lines {
			c.textCentered(cx, ly, line, r.tableFace, colorBlack)
			ly += 16
		}
	}
	y += headerH
	c.fillRect(x, y, width, 1, colorBlack)

	// Units sub-header.
	const unitsH = 22.0
	c.fillRect(x, y, width, unitsH, headerFill)
	for i, unit := range report.TableUnits {
		c.textCentered((edges[i]+edges[i+1])/2, y+15, unit, r.tableFace, colorBlack)
	}
	y += unitsH

	// Column separators skip the banner rows, which span the full width.
	separatorSpans := [][2]float64{{top, y}}

	for _, rec := range data.Recommendations {
		c.fillRect(x, y, width, 1, colorBlack)

		// Priority banner with the ordinal suffix demoted.
		const bannerH = 26.0
		c.fillRect(x, y, width, bannerH, rec.PriorityColor.RGBA())
		r.drawPriorityLabel(c, x+width/2, y+18, rec.PriorityLabel)
		y += bannerH
		c.fillRect(x, y, width, 1, colorBlack)

		// Data row, sized to the tallest multi-line cell.
		cells := []string{rec.PointNo, rec.Depth, rec.YieldVal, rec.Layers, rec.Casing}
		lines := 1
		for _, cell := range cells {
			if n := strings.Count(cell, "\n") + 1; n > lines {
				lines = n
			}
		}
		rowH := float64(lines)*18 + 12
		separatorSpans = append(separatorSpans, [2]float64{y, y + rowH})
		c.fillRect(x, y, width, rowH, rec.RowColor.RGBA())
		for i, cell := range cells {
			cx := (edges[i] + edges[i+1]) / 2
			parts := strings.Split(cell, "\n")
			ly := y + rowH/2 - float64(len(parts)-1)*9 + 4
			for _, part := range parts {
				c.textCentered(cx, ly, part, r.tableFace, colorBlack)
				ly += 18
			}
		}
		y += rowH
	}

	// Grid: column separators over the header and data rows only, then a
	// heavy outer border.
	for _, ex := range edges[1 : len(edges)-1] {
		for _, span := range separatorSpans {
			c.fillRect(ex, span[0], 1, span[1]-span[0], colorBlack)
		}
	}
	c.strokeRect(x-2, top-2, width+4, y-top+4, 2, colorBlack)
	return y + 2
}

// drawPriorityLabel centers a priority label, drawing the first ordinal
// suffix smaller and raised.
func (r *Renderer) drawPriorityLabel(c *canvas, cx, baseline float64, label string) {
	before, number, suffix, after := report.SplitOrdinal(label)
	if number == "" {
		c.textCentered(cx, baseline, label, r.boldBodyFace, colorBlack)
		return
	}
	total := c.width(r.boldBodyFace, before) +
		c.width(r.boldBodyFace, number) +
		c.width(r.supFace, suffix) +
		c.width(r.boldBodyFace, after)
	x := cx - total/2
	x += c.text(x, baseline, before, r.boldBodyFace, colorBlack)
	x += c.text(x, baseline, number, r.boldBodyFace, colorBlack)
	x += c.text(x, baseline-5, suffix, r.supFace, colorBlack)
	c.text(x, baseline, after, r.boldBodyFace, colorBlack)
}
