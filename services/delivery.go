package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/apex/log"
)

// File is a generated export artifact, named and typed for delivery.
type File struct {
	Name string
	MIME string
	Data []byte
}

// ShareTarget is a native OS sharing capability (share sheet). A target
// must be asked whether it can handle the specific file before Share is
// attempted.
type ShareTarget interface {
	CanShare(f File) bool
	Share(ctx context.Context, f File, title, text string) error
}

// ErrShareCanceled is returned by a ShareTarget when the user dismissed
// the share sheet. Cancellation is a completed delivery, not a failure:
// no download fallback runs and no error reaches the user.
var ErrShareCanceled = errors.New("share canceled by user")

// Saver performs a direct file download/save.
type Saver interface {
	Save(f File) error
}

// DeliveryError wraps a failure of the final delivery step, after any
// share fallback has been exhausted.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("delivery failed: %v", e.Err) }
func (e *DeliveryError) Unwrap() error { return e.Err }

// mobileAgentPattern matches handheld user agents, mirroring the editor's
// share capability detection.
var mobileAgentPattern = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobileAgent reports whether the user agent looks like a handheld
// platform where native sharing is preferred over a plain download.
func IsMobileAgent(ua string) bool {
	return mobileAgentPattern.MatchString(ua)
}

// Delivery bundles the environment an export is delivered into. Share may
// be nil when no native sharing exists (desktop browsers, plain HTTP).
type Delivery struct {
	UserAgent string
	Share     ShareTarget
	Saver     Saver
}

// How an export attempt reached the user.
const (
	DeliveredShare         = "share"
	DeliveredShareCanceled = "share-canceled"
	DeliveredDownload      = "download"
)

// deliver routes the file to exactly one destination: native share on
// mobile when available and willing, otherwise download. Share failures
// other than user cancellation fall back to download.
func (d Delivery) deliver(ctx context.Context, f File, title, text string) (string, error) {
	if IsMobileAgent(d.UserAgent) && d.Share != nil {
		if !d.Share.CanShare(f) {
			log.WithField("file", f.Name).Warn("share target cannot handle file, falling back to download")
		} else {
			err := d.Share.Share(ctx, f, title, text)
			switch {
			case err == nil:
				return DeliveredShare, nil
			case errors.Is(err, ErrShareCanceled):
				return DeliveredShareCanceled, nil
			default:
				log.WithError(err).Warn("share failed, falling back to download")
			}
		}
	}

	if d.Saver == nil {
		return "", &DeliveryError{Err: errors.New("no download target configured")}
	}
	if err := d.Saver.Save(f); err != nil {
		return "", &DeliveryError{Err: err}
	}
	return DeliveredDownload, nil
}
