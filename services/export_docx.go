package services

import (
	"fmt"

	"github.com/apex/log"

	"georeport/assets"
	"georeport/docx"
	"georeport/report"
)

// Run sizes in half-points: 11pt body text, 10pt table cells, 14pt title.
const (
	docxBodySize  = 22
	docxCellSize  = 20
	docxTitleSize = 28
)

// GenerateDOCX reconstructs the report as a structured word-processing
// document. Unlike the PDF engine it never touches the rasterizer: the
// output is real paragraphs, a real table and a real numbered list, so it
// stays editable in a word processor. Both engines read the same snapshot
// and the same color palette, which is what keeps them in step.
func GenerateDOCX(loader assets.Loader, data report.ReportData) ([]byte, error) {
	d := docx.New()

	headerFont := data.Fonts.Headers
	bodyFont := data.Fonts.Body

	bold := func(text string) docx.Run {
		return docx.Run{Text: text, Font: headerFont, Size: docxBodySize, Bold: true}
	}
	normal := func(text string) docx.Run {
		return docx.Run{Text: text, Font: bodyFont, Size: docxBodySize}
	}
	underlineBold := func(text string) docx.Run {
		return docx.Run{Text: text, Font: headerFont, Size: docxBodySize, Bold: true, Underline: true}
	}

	// Letterhead logo, when it resolves. The DOCX reproduces content, not
	// the letterhead artwork, so a missing logo is simply omitted.
	if logo, err := loader.Load(data.LogoImage); err == nil {
		w, h := fitBox(logo, 96, 96)
		if imgErr := d.AddImage(logo.Raw, logo.Format, w, h); imgErr != nil {
			log.WithError(imgErr).Warn("docx: skipping logo")
		}
	}

	// S.No / Date header and recipient block.
	d.AddParagraph(docx.Paragraph{
		Runs: []docx.Run{
			bold("S.No." + data.SNo),
			bold("\t\t\t\t\t\t\tDate: " + data.Date),
		},
		SpacingAfter: 200,
	})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{bold("To:")}})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{bold(data.ToAddress)}, SpacingAfter: 400})

	// Shaded report title.
	d.AddParagraph(docx.Paragraph{
		Runs: []docx.Run{{
			Text:  "GEOLOGICAL INVESTIGATION REPORT",
			Font:  data.Fonts.Title,
			Size:  docxTitleSize,
			Bold:  true,
			Shade: report.ColorCyan.Hex(),
		}},
		Align:        "center",
		SpacingAfter: 400,
	})

	// Narrative sections.
	sections := []struct{ label, body string }{
		{"Location: ", data.Location},
		{"Physiography of the Area: ", data.Physiography},
		{"Topographical Features of the Site: ", data.Topographical},
		{"Geological Condition of the Area: ", data.Geological},
	}
	for _, s := range sections {
		d.AddParagraph(docx.Paragraph{
			Runs:         []docx.Run{underlineBold(s.label), normal(s.body)},
			SpacingAfter: 200,
		})
	}

	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("Overall Expected Thickness of Beds")}, SpacingAfter: 100})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("\ta) Over burden of the beds\t: " + data.ThicknessBeds.A)}})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("\tb) Weathered zone\t\t: " + data.ThicknessBeds.B)}})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("\tc) Depth of basement\t\t: " + data.ThicknessBeds.C)}, SpacingAfter: 200})

	more := []struct{ label, body string }{
		{"Hydrological condition of the Area: ", data.Hydrological},
		{"Nature of intrusive rocks (if present): ", data.IntrusiveRocks},
		{"Groundwater conditions of the wells: ", data.Groundwater},
	}
	for _, s := range more {
		d.AddParagraph(docx.Paragraph{
			Runs:         []docx.Run{underlineBold(s.label), normal(s.body)},
			SpacingAfter: 200,
		})
	}

	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{underlineBold("Geophysical Survey Details:")}, SpacingAfter: 100})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("Type of Survey\t: " + data.Geophysical.Type)}})
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("Results\t\t: " + data.Geophysical.Results)}, SpacingAfter: 800})

	// Recommendations heading and table.
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{underlineBold("Recommendations")}, SpacingBefore: 400, SpacingAfter: 200})
	d.AddParagraph(docx.Paragraph{
		Runs:         []docx.Run{normal("Based on the interpretation of geological, hydrogeological, and geophysical data we are recommending the following :")},
		SpacingAfter: 200,
	})
	d.AddTable(recommendationsTable(data))

	d.AddParagraph(docx.Paragraph{
		Runs: []docx.Run{normal("The above report is based on modern and scientific data and criteria and is only a firm " +
			"indication of high probabilities regarding the quality and quantity of the groundwater. Hence drilling of " +
			"a bore well should be done at cost and consequences of the client only.")},
		SpacingBefore: 200,
		SpacingAfter:  200,
	})

	d.AddParagraph(docx.Paragraph{
		Runs: []docx.Run{{
			Text:  data.Note,
			Font:  bodyFont,
			Size:  docxBodySize,
			Bold:  true,
			Shade: report.ColorYellow.Hex(),
		}},
		SpacingAfter: 400,
	})

	// Remarks as a real numbered list, with the shared emphasis rules.
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{underlineBold("Remarks:")}})
	d.AddParagraph(docx.Paragraph{
		Runs:         []docx.Run{normal("To be on the safe side, cautious and to avoid any confusing situation, the clients are advised to make a note of the following facts:")},
		SpacingAfter: 200,
	})
	for _, remark := range data.Remarks {
		var runs []docx.Run
		for _, seg := range report.EmphasisSegments(remark) {
			runs = append(runs, docx.Run{Text: seg.Text, Font: bodyFont, Size: docxBodySize, Bold: seg.Bold})
		}
		d.AddParagraph(docx.Paragraph{Runs: runs, Numbered: true})
	}

	d.AddParagraph(docx.Paragraph{SpacingAfter: 400})

	// Signature block; a broken or missing image degrades to a text
	// placeholder rather than failing the export.
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{{Text: "For AQUA GEO SERVICES,", Font: bodyFont, Size: docxBodySize, Bold: true}}})
	sig, err := loader.Load(data.SignatureImage)
	if err == nil {
		w, h := fitBox(sig, 150, 50)
		err = d.AddImage(sig.Raw, sig.Format, w, h)
	}
	if err != nil {
		log.WithError(err).Warn("docx: signature unavailable, using placeholder")
		d.AddParagraph(docx.Paragraph{Runs: []docx.Run{{Text: "(Signature)", Size: 16, Color: "000000"}}})
	}
	d.AddParagraph(docx.Paragraph{Runs: []docx.Run{normal("(D.V.S.P. Gupta)")}, SpacingBefore: 200})

	out, err := d.Pack()
	if err != nil {
		return nil, fmt.Errorf("pack DOCX: %w", err)
	}
	return out, nil
}

// recommendationsTable builds the fixed header pair plus a priority banner
// row and a data row per recommendation, with column bands and fills taken
// from the shared palette definitions.
func recommendationsTable(data report.ReportData) docx.Table {
	bodyFont := data.Fonts.Body
	headerFont := data.Fonts.Headers
	headerFill := report.ColorOrange.Hex()

	cell := func(text, fill string, widthPct int, boldText bool) docx.Cell {
		return docx.Cell{
			Paragraph: docx.Paragraph{
				Runs:  []docx.Run{{Text: text, Font: bodyFont, Size: docxCellSize, Bold: boldText}},
				Align: "center",
			},
			WidthPct: widthPct,
			Fill:     fill,
		}
	}

	headerRow := func(labels [5]string) docx.Row {
		var row docx.Row
		for i, label := range labels {
			row.Cells = append(row.Cells, cell(label, headerFill, report.TableBands[i], true))
		}
		return row
	}

	t := docx.Table{
		ColumnsPct: report.TableBands[:],
		Rows:       []docx.Row{headerRow(report.TableHeaders), headerRow(report.TableUnits)},
	}

	for _, rec := range data.Recommendations {
		t.Rows = append(t.Rows, docx.Row{Cells: []docx.Cell{{
			Paragraph: docx.Paragraph{
				Runs:  []docx.Run{{Text: rec.PriorityLabel, Font: headerFont, Size: docxCellSize, Bold: true}},
				Align: "center",
			},
			WidthPct: 100,
			Fill:     rec.PriorityColor.Hex(),
			Span:     5,
		}}})

		fill := rec.RowColor.Hex()
		t.Rows = append(t.Rows, docx.Row{Cells: []docx.Cell{
			cell(rec.PointNo, fill, report.TableBands[0], true),
			cell(rec.Depth, fill, report.TableBands[1], true),
			cell(rec.YieldVal, fill, report.TableBands[2], true),
			cell(rec.Layers, fill, report.TableBands[3], true),
			cell(rec.Casing, fill, report.TableBands[4], true),
		}})
	}
	return t
}

// fitBox scales an asset's pixel size to fit within w x h.
func fitBox(img *assets.Image, w, h int) (int, int) {
	b := img.Decoded.Bounds()
	iw, ih := b.Dx(), b.Dy()
	if iw <= 0 || ih <= 0 {
		return w, h
	}
	scale := float64(w) / float64(iw)
	if s := float64(h) / float64(ih); s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return int(float64(iw) * scale), int(float64(ih) * scale)
}
