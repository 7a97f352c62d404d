package services

import (
	"context"
	"errors"
	"testing"
)

const (
	mobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"
	desktopUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
)

type memSaver struct {
	files []File
	err   error
}

func (s *memSaver) Save(f File) error {
	if s.err != nil {
		return s.err
	}
	s.files = append(s.files, f)
	return nil
}

type fakeShare struct {
	capable bool
	err     error
	shared  []File
}

func (s *fakeShare) CanShare(File) bool { return s.capable }

func (s *fakeShare) Share(_ context.Context, f File, _, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.shared = append(s.shared, f)
	return nil
}

func TestIsMobileAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{mobileUA, true},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", true},
		{"Opera Mini/8.0", true},
		{desktopUA, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsMobileAgent(tt.ua); got != tt.want {
			t.Errorf("IsMobileAgent(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}

func TestDeliverSharesOnMobile(t *testing.T) {
	share := &fakeShare{capable: true}
	saver := &memSaver{}
	d := Delivery{UserAgent: mobileUA, Share: share, Saver: saver}

	method, err := d.deliver(context.Background(), File{Name: "r.pdf"}, "t", "x")
	if err != nil {
		t.Fatal(err)
	}
	if method != DeliveredShare {
		t.Fatalf("method = %q, want %q", method, DeliveredShare)
	}
	if len(share.shared) != 1 || len(saver.files) != 0 {
		t.Fatal("exactly one action must run, and it must be the share")
	}
}

func TestDeliverCancelIsNotAnError(t *testing.T) {
	share := &fakeShare{capable: true, err: ErrShareCanceled}
	saver := &memSaver{}
	d := Delivery{UserAgent: mobileUA, Share: share, Saver: saver}

	method, err := d.deliver(context.Background(), File{Name: "r.pdf"}, "t", "x")
	if err != nil {
		t.Fatalf("cancel should not surface as an error: %v", err)
	}
	if method != DeliveredShareCanceled {
		t.Fatalf("method = %q, want %q", method, DeliveredShareCanceled)
	}
	if len(saver.files) != 0 {
		t.Fatal("cancel must not fall back to download")
	}
}

func TestDeliverFallsBackToDownload(t *testing.T) {
	tests := []struct {
		name  string
		ua    string
		share ShareTarget
	}{
		{"desktop agent", desktopUA, &fakeShare{capable: true}},
		{"no share target", mobileUA, nil},
		{"share incapable", mobileUA, &fakeShare{capable: false}},
		{"share fails", mobileUA, &fakeShare{capable: true, err: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &memSaver{}
			d := Delivery{UserAgent: tt.ua, Share: tt.share, Saver: saver}

			method, err := d.deliver(context.Background(), File{Name: "r.pdf"}, "t", "x")
			if err != nil {
				t.Fatal(err)
			}
			if method != DeliveredDownload {
				t.Fatalf("method = %q, want %q", method, DeliveredDownload)
			}
			if len(saver.files) != 1 {
				t.Fatalf("saved %d files, want 1", len(saver.files))
			}
		})
	}
}

func TestDeliverSaverFailure(t *testing.T) {
	d := Delivery{UserAgent: desktopUA, Saver: &memSaver{err: errors.New("disk full")}}

	_, err := d.deliver(context.Background(), File{Name: "r.pdf"}, "t", "x")
	var derr *DeliveryError
	if !errors.As(err, &derr) {
		t.Fatalf("error type %T, want *DeliveryError", err)
	}
}
