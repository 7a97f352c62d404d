// Package assets loads the logo and signature images referenced by a
// report, from either a static asset path or an inline Base64 data URL.
package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	_ "golang.org/x/image/bmp"
)

// ErrNoSource means the report carries no reference for this image slot.
var ErrNoSource = errors.New("assets: no image source")

// Image is a decoded asset together with its raw bytes. The DOCX engine
// embeds Raw as-is; the layout renderer draws Decoded.
type Image struct {
	Raw     []byte
	Format  string // "png", "jpg", "gif" or "bmp"
	Decoded image.Image
}

// Loader resolves relative asset paths against a base directory.
type Loader struct {
	Dir string
}

// Load fetches and decodes an image from a data URL or a file path.
// Callers are expected to degrade gracefully on error (placeholder text or
// an empty logo box), never to abort an export over a missing asset.
func (l Loader) Load(src string) (*Image, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrNoSource
	}

	var raw []byte
	var format string
	var err error
	if strings.HasPrefix(src, "data:") {
		raw, format, err = decodeDataURL(src)
	} else {
		raw, format, err = l.readFile(src)
	}
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s image: %w", format, err)
	}
	return &Image{Raw: raw, Format: format, Decoded: img}, nil
}

func (l Loader) readFile(src string) ([]byte, string, error) {
	// Strip any URL-ish prefix the editor may have left on the path.
	name := strings.TrimPrefix(strings.TrimPrefix(src, "./"), "/")
	path := name
	if l.Dir != "" {
		path = filepath.Join(l.Dir, filepath.Clean("/"+name))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("assets: read %s: %w", path, err)
	}

	format := formatFromExtension(name)
	if format == "" {
		format = formatFromMIME(mimetype.Detect(raw).String())
	}
	if format == "" {
		return nil, "", fmt.Errorf("assets: unsupported image type for %s", name)
	}
	return raw, format, nil
}

func decodeDataURL(src string) ([]byte, string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return nil, "", errors.New("assets: malformed data URL")
	}
	mime, _, _ := strings.Cut(meta, ";")

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some encoders emit unpadded Base64.
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("assets: decode data URL: %w", err)
		}
	}

	format := formatFromMIME(mime)
	if format == "" {
		format = formatFromMIME(mimetype.Detect(raw).String())
	}
	if format == "" {
		return nil, "", fmt.Errorf("assets: unsupported image MIME %q", mime)
	}
	return raw, format, nil
}

func formatFromMIME(mime string) string {
	switch {
	case strings.Contains(mime, "jpeg"), strings.Contains(mime, "jpg"):
		return "jpg"
	case strings.Contains(mime, "png"):
		return "png"
	case strings.Contains(mime, "gif"):
		return "gif"
	case strings.Contains(mime, "bmp"):
		return "bmp"
	default:
		return ""
	}
}

func formatFromExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "jpg"
	case ".png":
		return "png"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	default:
		return ""
	}
}

// Fit returns the asset scaled down to fit within w x h, preserving aspect
// ratio. Images already inside the box come back unchanged.
func (a *Image) Fit(w, h int) image.Image {
	b := a.Decoded.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return a.Decoded
	}
	return imaging.Fit(a.Decoded, w, h, imaging.Lanczos)
}
