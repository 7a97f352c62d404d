package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/apex/log"

	"georeport/assets"
	"georeport/layout"
	"georeport/report"
)

// Format identifies an export artifact kind.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a request string onto a known Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string { return "." + string(f) }

// MIME returns the content type for the generated artifact.
func (f Format) MIME() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// GenerationError wraps a failure inside a document engine.
type GenerationError struct {
	Format Format
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Format, e.Err)
}
func (e *GenerationError) Unwrap() error { return e.Err }

// ErrExportInFlight is returned when an export is requested while a
// previous one is still running for the same exporter.
var ErrExportInFlight = errors.New("an export is already in progress")

// Exporter states, observable while an export runs.
const (
	StateIdle       = "idle"
	StateValidating = "validating"
	StateGenerating = "generating"
	StateDelivering = "delivering"
)

const (
	shareTitle = "Survey Report"
	shareText  = "Here is the generated survey report."
)

// Exporter runs the full pipeline for one report at a time: validate,
// generate, deliver. Concurrent Export calls beyond the first are
// rejected rather than queued.
type Exporter struct {
	inFlight atomic.Bool
	state    atomic.Value

	generate map[Format]func(report.ReportData) ([]byte, error)
}

// NewExporter wires the document engines to their formats.
func NewExporter(rend *layout.Renderer, loader assets.Loader) *Exporter {
	e := &Exporter{
		generate: map[Format]func(report.ReportData) ([]byte, error){
			FormatPDF: func(data report.ReportData) ([]byte, error) {
				return GeneratePDF(rend, data)
			},
			FormatDOCX: func(data report.ReportData) ([]byte, error) {
				return GenerateDOCX(loader, data)
			},
			FormatXLSX: GenerateXLSX,
		},
	}
	e.state.Store(StateIdle)
	return e
}

// IsExporting reports whether an export is currently running.
func (e *Exporter) IsExporting() bool { return e.inFlight.Load() }

// State returns the current pipeline phase.
func (e *Exporter) State() string { return e.state.Load().(string) }

// Export runs the pipeline and returns how the file reached the user.
func (e *Exporter) Export(ctx context.Context, format Format, data report.ReportData, dst Delivery) (string, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return "", ErrExportInFlight
	}
	defer func() {
		e.state.Store(StateIdle)
		e.inFlight.Store(false)
	}()

	gen, ok := e.generate[format]
	if !ok {
		return "", fmt.Errorf("unknown export format %q", format)
	}

	start := time.Now()
	logger := log.WithField("format", string(format))

	e.state.Store(StateValidating)
	if err := ValidateForExport(data); err != nil {
		logger.WithError(err).Warn("export rejected")
		return "", err
	}

	e.state.Store(StateGenerating)
	out, err := runGenerator(format, gen, data)
	if err != nil {
		logger.WithError(err).Error("export generation failed")
		return "", err
	}

	e.state.Store(StateDelivering)
	f := File{
		Name: exportFileName(data.FileName) + format.Extension(),
		MIME: format.MIME(),
		Data: out,
	}
	method, err := dst.deliver(ctx, f, shareTitle, shareText)
	if err != nil {
		logger.WithError(err).Error("export delivery failed")
		return "", err
	}

	logger.WithFields(log.Fields{
		"file":     f.Name,
		"bytes":    len(out),
		"method":   method,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("export complete")
	return method, nil
}

// runGenerator shields the pipeline from panics inside a document engine
// so a rendering bug surfaces as an error instead of taking the process.
func runGenerator(format Format, gen func(report.ReportData) ([]byte, error), data report.ReportData) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &GenerationError{Format: format, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	out, err = gen(data)
	if err != nil {
		return nil, &GenerationError{Format: format, Err: err}
	}
	return out, nil
}

// exportFileName sanitizes the user-chosen base name, falling back to
// "report" when nothing usable remains.
func exportFileName(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	clean := strings.TrimSpace(b.String())
	if clean == "" {
		return "report"
	}
	return clean
}
