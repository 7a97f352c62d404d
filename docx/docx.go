// Package docx assembles WordprocessingML documents directly: styled
// paragraph runs, shaded tables, numbered lists and embedded images,
// packed into the OOXML zip container with no intermediate format.
package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Run is a span of identically styled text. Size is in half-points, the
// unit WordprocessingML uses (22 = 11pt). Shade, when set, is an RRGGBB
// fill drawn behind the run.
type Run struct {
	Text      string
	Font      string
	Size      int
	Bold      bool
	Underline bool
	Shade     string
	Color     string
}

// Paragraph is a block of runs. Spacing values are in twentieths of a
// point. Numbered paragraphs join the document's single decimal list.
type Paragraph struct {
	Runs          []Run
	Align         string // "", "center", "right", "both"
	SpacingBefore int
	SpacingAfter  int
	Numbered      bool
}

// Cell is one table cell. WidthPct is the column width as a percentage of
// the table; Span merges that many grid columns.
type Cell struct {
	Paragraph Paragraph
	WidthPct  int
	Fill      string
	Span      int
}

// Row is a table row.
type Row struct {
	Cells []Cell
}

// Table is a full-width bordered table.
type Table struct {
	ColumnsPct []int
	Rows       []Row
}

type media struct {
	name        string
	contentType string
	data        []byte
}

// Document accumulates body blocks until Pack renders the archive.
type Document struct {
	blocks   []string
	media    []media
	numbered bool
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func (r Run) xml() string {
	var b strings.Builder
	b.WriteString("<w:r><w:rPr>")
	if r.Font != "" {
		fmt.Fprintf(&b, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, escape(r.Font), escape(r.Font), escape(r.Font))
	}
	if r.Bold {
		b.WriteString("<w:b/>")
	}
	if r.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if r.Color != "" {
		fmt.Fprintf(&b, `<w:color w:val="%s"/>`, r.Color)
	}
	if r.Size > 0 {
		fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
	}
	if r.Shade != "" {
		fmt.Fprintf(&b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, r.Shade)
	}
	b.WriteString("</w:rPr>")

	// Tabs and line breaks are elements, not characters, in OOXML.
	text := r.Text
	for text != "" {
		i := strings.IndexAny(text, "\t\n")
		if i < 0 {
			fmt.Fprintf(&b, `<w:t xml:space="preserve">%s</w:t>`, escape(text))
			break
		}
		if i > 0 {
			fmt.Fprintf(&b, `<w:t xml:space="preserve">%s</w:t>`, escape(text[:i]))
		}
		if text[i] == '\t' {
			b.WriteString("<w:tab/>")
		} else {
			b.WriteString("<w:br/>")
		}
		text = text[i+1:]
	}
	b.WriteString("</w:r>")
	return b.String()
}

func (p Paragraph) xml() string {
	var b strings.Builder
	b.WriteString("<w:p><w:pPr>")
	if p.Numbered {
		b.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
	}
	if p.SpacingBefore > 0 || p.SpacingAfter > 0 {
		fmt.Fprintf(&b, `<w:spacing w:before="%d" w:after="%d"/>`, p.SpacingBefore, p.SpacingAfter)
	}
	if p.Align != "" {
		fmt.Fprintf(&b, `<w:jc w:val="%s"/>`, p.Align)
	}
	b.WriteString("</w:pPr>")
	for _, r := range p.Runs {
		b.WriteString(r.xml())
	}
	b.WriteString("</w:p>")
	return b.String()
}

// AddParagraph appends a paragraph to the document body.
func (d *Document) AddParagraph(p Paragraph) {
	if p.Numbered {
		d.numbered = true
	}
	d.blocks = append(d.blocks, p.xml())
}

// AddTable appends a bordered table. Column widths come from ColumnsPct;
// table and cell widths are written in fiftieths of a percent per the
// pct width type.
func (d *Document) AddTable(t Table) {
	var b strings.Builder
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/>` +
		`<w:tblBorders>` +
		`<w:top w:val="single" w:sz="8" w:color="000000"/>` +
		`<w:left w:val="single" w:sz="8" w:color="000000"/>` +
		`<w:bottom w:val="single" w:sz="8" w:color="000000"/>` +
		`<w:right w:val="single" w:sz="8" w:color="000000"/>` +
		`<w:insideH w:val="single" w:sz="4" w:color="000000"/>` +
		`<w:insideV w:val="single" w:sz="4" w:color="000000"/>` +
		`</w:tblBorders></w:tblPr>`)

	b.WriteString("<w:tblGrid>")
	for _, pct := range t.ColumnsPct {
		// Grid columns in twips across a ~6.3" usable width.
		fmt.Fprintf(&b, `<w:gridCol w:w="%d"/>`, pct*91)
	}
	b.WriteString("</w:tblGrid>")

	for _, row := range t.Rows {
		b.WriteString("<w:tr>")
		for _, cell := range row.Cells {
			b.WriteString("<w:tc><w:tcPr>")
			fmt.Fprintf(&b, `<w:tcW w:w="%d" w:type="pct"/>`, cell.WidthPct*50)
			if cell.Span > 1 {
				fmt.Fprintf(&b, `<w:gridSpan w:val="%d"/>`, cell.Span)
			}
			if cell.Fill != "" {
				fmt.Fprintf(&b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, cell.Fill)
			}
			b.WriteString(`<w:vAlign w:val="center"/>` +
				`<w:tcMar><w:top w:w="100" w:type="dxa"/><w:bottom w:w="100" w:type="dxa"/>` +
				`<w:left w:w="100" w:type="dxa"/><w:right w:w="100" w:type="dxa"/></w:tcMar>` +
				`</w:tcPr>`)
			b.WriteString(cell.Paragraph.xml())
			b.WriteString("</w:tc>")
		}
		b.WriteString("</w:tr>")
	}
	b.WriteString("</w:tbl>")
	d.blocks = append(d.blocks, b.String())
}

// emusPerPixel converts 96dpi pixels to English Metric Units.
const emusPerPixel = 9525

var imageContentTypes = map[string]string{
	"png": "image/png",
	"jpg": "image/jpeg",
	"gif": "image/gif",
	"bmp": "image/bmp",
}

// AddImage embeds an image as its own paragraph, displayed at widthPx x
// heightPx. Format must be one of png, jpg, gif or bmp.
func (d *Document) AddImage(data []byte, format string, widthPx, heightPx int) error {
	ct, ok := imageContentTypes[format]
	if !ok {
		return fmt.Errorf("docx: unsupported image format %q", format)
	}

	idx := len(d.media) + 1
	name := fmt.Sprintf("image%d.%s", idx, format)
	d.media = append(d.media, media{name: name, contentType: ct, data: data})

	cx := widthPx * emusPerPixel
	cy := heightPx * emusPerPixel
	relID := fmt.Sprintf("rIdImg%d", idx)

	block := fmt.Sprintf(`<w:p><w:r><w:drawing>`+
		`<wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="%d" name="%s"/>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic>`+
		`<pic:nvPicPr><pic:cNvPr id="%d" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic>`+
		`</a:graphicData></a:graphic>`+
		`</wp:inline>`+
		`</w:drawing></w:r></w:p>`,
		cx, cy, idx, name, idx, name, relID, cx, cy)
	d.blocks = append(d.blocks, block)
	return nil
}
