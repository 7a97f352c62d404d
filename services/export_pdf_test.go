package services

import (
	"bytes"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"georeport/layout"
	"georeport/report"
)

func testRenderer(t *testing.T) *layout.Renderer {
	t.Helper()
	rend, err := layout.NewRenderer(layout.Options{Scale: 1})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return rend
}

func TestGeneratePDF(t *testing.T) {
	out, err := GeneratePDF(testRenderer(t), report.DefaultReport())
	if err != nil {
		t.Fatalf("GeneratePDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("output does not start with a PDF header")
	}

	ctx, err := api.ReadContext(bytes.NewReader(out), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("output is not a readable PDF: %v", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		t.Fatalf("page count: %v", err)
	}
	if ctx.PageCount != layout.PageCount {
		t.Fatalf("PageCount = %d, want %d", ctx.PageCount, layout.PageCount)
	}
}

func TestGeneratePDFWithMissingImages(t *testing.T) {
	data := report.DefaultReport()
	data.LogoImage = "nope.png"
	data.SignatureImage = "data:image/png;base64,!!!!"

	out, err := GeneratePDF(testRenderer(t), data)
	if err != nil {
		t.Fatalf("missing images must not fail the export: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}
