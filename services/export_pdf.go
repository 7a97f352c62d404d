package services

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/go-pdf/fpdf"

	"georeport/layout"
	"georeport/report"
)

// jpegQuality is the compression level for the rasterized page images
// embedded in the PDF.
const jpegQuality = 95

// A4 dimensions in millimeters; each rasterized page is scaled to fill a
// PDF page of exactly this size.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// GeneratePDF produces the report as a paginated PDF: every document page
// is rasterized at the renderer's canonical size, JPEG-encoded and placed
// full-bleed on its own A4 page. Pages are captured and appended strictly
// in order because the PDF builder is append-only. The caller receives raw
// bytes and decides the delivery path.
func GeneratePDF(rend *layout.Renderer, data report.ReportData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for page := 1; page <= layout.PageCount; page++ {
		img, err := rend.RenderPage(data, page)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", page, err)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", page, err)
		}

		pdf.AddPage()
		name := fmt.Sprintf("page-%d", page)
		opts := fpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.ImageOptions(name, 0, 0, pageWidthMM, pageHeightMM, false, opts, 0, "")
	}

	if pdf.Err() {
		return nil, fmt.Errorf("assemble PDF: %w", pdf.Error())
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return out.Bytes(), nil
}
