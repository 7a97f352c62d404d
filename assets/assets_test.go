package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadDataURL(t *testing.T) {
	raw := pngBytes(t, 8, 6)
	src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	img, err := Loader{}.Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Format != "png" {
		t.Errorf("Format = %q, want png", img.Format)
	}
	if !bytes.Equal(img.Raw, raw) {
		t.Error("Raw bytes differ from the payload")
	}
	if b := img.Decoded.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size %dx%d, want 8x6", b.Dx(), b.Dy())
	}
}

func TestLoadDataURLUnpadded(t *testing.T) {
	raw := pngBytes(t, 4, 4)
	payload := strings.TrimRight(base64.StdEncoding.EncodeToString(raw), "=")

	if _, err := (Loader{}).Load("data:image/png;base64," + payload); err != nil {
		t.Fatalf("unpadded Base64 should decode: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), pngBytes(t, 10, 10), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Loader{Dir: dir}.Load("/logo.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Format != "png" {
		t.Errorf("Format = %q, want png", img.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := (Loader{}).Load(""); !errors.Is(err, ErrNoSource) {
		t.Errorf("empty source: err = %v, want ErrNoSource", err)
	}
	if _, err := (Loader{Dir: t.TempDir()}).Load("missing.png"); err == nil {
		t.Error("missing file should error")
	}
	if _, err := (Loader{}).Load("data:image/png;base64,!!!"); err == nil {
		t.Error("bad Base64 should error")
	}
	if _, err := (Loader{}).Load("data:text/plain;base64," +
		base64.StdEncoding.EncodeToString([]byte("hello"))); err == nil {
		t.Error("non-image payload should error")
	}
}

func TestFit(t *testing.T) {
	raw := pngBytes(t, 200, 100)
	img, err := Loader{}.Load("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatal(err)
	}

	fitted := img.Fit(100, 100)
	if b := fitted.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("fitted to %dx%d, want 100x50 (aspect preserved)", b.Dx(), b.Dy())
	}

	small := img.Fit(400, 400)
	if b := small.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Error("images inside the box must come back unchanged")
	}
}
