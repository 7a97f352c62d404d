package layout

import (
	"bytes"
	"image/png"
	"sync"
	"testing"

	"georeport/report"
)

func newTestRenderer(t *testing.T, scale int) *Renderer {
	t.Helper()
	r, err := NewRenderer(Options{Scale: scale})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderPageDimensions(t *testing.T) {
	data := report.DefaultReport()

	for _, scale := range []int{1, 2} {
		r := newTestRenderer(t, scale)
		for page := 1; page <= PageCount; page++ {
			img, err := r.RenderPage(data, page)
			if err != nil {
				t.Fatalf("scale %d page %d: %v", scale, page, err)
			}
			b := img.Bounds()
			if b.Dx() != PageWidth*scale || b.Dy() != PageHeight*scale {
				t.Errorf("scale %d page %d: got %dx%d, want %dx%d",
					scale, page, b.Dx(), b.Dy(), PageWidth*scale, PageHeight*scale)
			}
		}
	}
}

func TestRenderPageRange(t *testing.T) {
	r := newTestRenderer(t, 1)
	data := report.DefaultReport()

	for _, page := range []int{0, -1, PageCount + 1} {
		if _, err := r.RenderPage(data, page); err == nil {
			t.Errorf("page %d: expected an error", page)
		}
	}
}

func TestRenderPageIsDeterministic(t *testing.T) {
	r := newTestRenderer(t, 1)
	data := report.DefaultReport()

	for page := 1; page <= PageCount; page++ {
		first := encodePNG(t, r, data, page)
		second := encodePNG(t, r, data, page)
		if !bytes.Equal(first, second) {
			t.Errorf("page %d: two renders of the same data differ", page)
		}
	}
}

func TestRenderPageBackgroundIsWhite(t *testing.T) {
	r := newTestRenderer(t, 1)
	img, err := r.RenderPage(report.DefaultReport(), 1)
	if err != nil {
		t.Fatal(err)
	}

	// Corners sit outside every layout element.
	for _, pt := range [][2]int{{0, 0}, {PageWidth - 1, 0}, {0, PageHeight - 1}, {PageWidth - 1, PageHeight - 1}} {
		c := img.RGBAAt(pt[0], pt[1])
		if c.R != 0xFF || c.G != 0xFF || c.B != 0xFF || c.A != 0xFF {
			t.Fatalf("corner (%d,%d) = %v, want opaque white", pt[0], pt[1], c)
		}
	}
}

func TestRenderPageConcurrent(t *testing.T) {
	// One renderer serves every session, so page renders arrive from
	// concurrent exports. The cached faces are not safe for parallel
	// glyph loading; RenderPage must serialize without corrupting output.
	r := newTestRenderer(t, 1)
	data := report.DefaultReport()

	want := make([][]byte, PageCount+1)
	for page := 1; page <= PageCount; page++ {
		want[page] = encodePNG(t, r, data, page)
	}

	const workers = 4
	var wg sync.WaitGroup
	got := make([][]byte, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page := i%PageCount + 1
			img, err := r.RenderPage(data, page)
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			got[i] = buf.Bytes()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		page := i%PageCount + 1
		if got[i] != nil && !bytes.Equal(got[i], want[page]) {
			t.Errorf("worker %d: concurrent render of page %d differs from serial render", i, page)
		}
	}
}

func TestRenderPageMissingImagesDoNotFail(t *testing.T) {
	r := newTestRenderer(t, 1)
	data := report.DefaultReport()
	data.LogoImage = "does-not-exist.png"
	data.SignatureImage = ""

	for page := 1; page <= PageCount; page++ {
		if _, err := r.RenderPage(data, page); err != nil {
			t.Fatalf("page %d with missing images: %v", page, err)
		}
	}
}

func encodePNG(t *testing.T, r *Renderer, data report.ReportData, page int) []byte {
	t.Helper()
	img, err := r.RenderPage(data, page)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}
