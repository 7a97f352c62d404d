package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"georeport/assets"
	"georeport/report"
)

func testExporter(t *testing.T) *Exporter {
	t.Helper()
	return NewExporter(testRenderer(t), assets.Loader{})
}

func desktopDelivery(saver *memSaver) Delivery {
	return Delivery{UserAgent: desktopUA, Saver: saver}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"DOCX", FormatDOCX, false},
		{" xlsx ", FormatXLSX, false},
		{"doc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportDownloadsEveryFormat(t *testing.T) {
	exp := testExporter(t)
	data := report.DefaultReport()

	want := map[Format]string{
		FormatPDF:  "%PDF-",
		FormatDOCX: "PK",
		FormatXLSX: "PK",
	}

	for format, magic := range want {
		saver := &memSaver{}
		method, err := exp.Export(context.Background(), format, data, desktopDelivery(saver))
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if method != DeliveredDownload {
			t.Fatalf("%s: method = %q, want download", format, method)
		}
		if len(saver.files) != 1 {
			t.Fatalf("%s: saved %d files, want 1", format, len(saver.files))
		}
		f := saver.files[0]
		if !strings.HasSuffix(f.Name, format.Extension()) {
			t.Errorf("%s: file name %q lacks extension", format, f.Name)
		}
		if f.MIME != format.MIME() {
			t.Errorf("%s: MIME = %q, want %q", format, f.MIME, format.MIME())
		}
		if !strings.HasPrefix(string(f.Data), magic) {
			t.Errorf("%s: output lacks %q magic", format, magic)
		}
	}
}

func TestExportSharesOnMobile(t *testing.T) {
	exp := testExporter(t)
	share := &fakeShare{capable: true}
	saver := &memSaver{}

	method, err := exp.Export(context.Background(), FormatPDF, report.DefaultReport(),
		Delivery{UserAgent: mobileUA, Share: share, Saver: saver})
	if err != nil {
		t.Fatal(err)
	}
	if method != DeliveredShare {
		t.Fatalf("method = %q, want share", method)
	}
	if len(share.shared) != 1 || len(saver.files) != 0 {
		t.Fatal("share must be the only delivery action")
	}
}

func TestExportRejectsInvalidReport(t *testing.T) {
	exp := testExporter(t)
	data := report.DefaultReport()
	data.SurveyorName = ""
	saver := &memSaver{}

	_, err := exp.Export(context.Background(), FormatPDF, data, desktopDelivery(saver))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if len(saver.files) != 0 {
		t.Fatal("nothing may be generated for an invalid report")
	}
	if exp.IsExporting() {
		t.Error("exporter must be idle after a rejected export")
	}
}

func TestExportSingleFlight(t *testing.T) {
	exp := testExporter(t)

	// Hold the generator until the second request has been rejected.
	started := make(chan struct{})
	release := make(chan struct{})
	exp.generate[FormatPDF] = func(report.ReportData) ([]byte, error) {
		close(started)
		<-release
		return []byte("%PDF-stub"), nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := exp.Export(context.Background(), FormatPDF, report.DefaultReport(), desktopDelivery(&memSaver{})); err != nil {
			t.Errorf("first export: %v", err)
		}
	}()

	<-started
	if !exp.IsExporting() {
		t.Error("IsExporting should be true while a generator runs")
	}
	_, err := exp.Export(context.Background(), FormatPDF, report.DefaultReport(), desktopDelivery(&memSaver{}))
	if !errors.Is(err, ErrExportInFlight) {
		t.Errorf("second export error = %v, want ErrExportInFlight", err)
	}

	close(release)
	wg.Wait()
	if exp.IsExporting() {
		t.Error("exporter must return to idle")
	}
}

func TestExportGenerationFailure(t *testing.T) {
	exp := testExporter(t)
	exp.generate[FormatPDF] = func(report.ReportData) ([]byte, error) {
		return nil, errors.New("font table corrupt")
	}

	_, err := exp.Export(context.Background(), FormatPDF, report.DefaultReport(), desktopDelivery(&memSaver{}))
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error type %T, want *GenerationError", err)
	}
	if gerr.Format != FormatPDF {
		t.Errorf("Format = %q, want pdf", gerr.Format)
	}
	if exp.IsExporting() {
		t.Error("exporter must be idle after a failure")
	}
}

func TestExportGeneratorPanicBecomesError(t *testing.T) {
	exp := testExporter(t)
	exp.generate[FormatPDF] = func(report.ReportData) ([]byte, error) {
		panic("index out of range")
	}

	_, err := exp.Export(context.Background(), FormatPDF, report.DefaultReport(), desktopDelivery(&memSaver{}))
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error type %T, want *GenerationError", err)
	}
	if exp.IsExporting() {
		t.Error("exporter must recover to idle after a panic")
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"survey-172", "survey-172"},
		{"  padded  ", "padded"},
		{"", "report"},
		{"   ", "report"},
		{`a/b\c:d`, "a_b_c_d"},
	}
	for _, tt := range tests {
		if got := exportFileName(tt.in); got != tt.want {
			t.Errorf("exportFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
