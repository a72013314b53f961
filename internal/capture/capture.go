// Package capture renders the application's own grid page to a PNG via
// headless Chromium. The page signals readiness through a
// data-ready="true" attribute, so the screenshot never races the render.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Default export dimensions. Larger than the on-screen grid so the image
// stays legible when printed.
const (
	DefaultWidth      = 1600
	DefaultHeight     = 1200
	DefaultTimeoutSec = 30
)

// Options defines parameters for one screenshot capture.
type Options struct {
	// URL of the grid page, e.g. "http://127.0.0.1:8080/grid/busy?export=1".
	URL string

	// Width and Height are the viewport dimensions in pixels. Zero values
	// fall back to the defaults.
	Width  int
	Height int

	// Timeout bounds the entire capture operation.
	Timeout time.Duration
}

// GridPNG navigates a headless Chromium instance to opts.URL, waits for
// the page's data-ready attribute, and returns the PNG screenshot bytes.
// A failed export reports its error here; the session is unaffected and
// the export can simply be retried.
func GridPNG(parentCtx context.Context, opts Options) ([]byte, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("capture: URL is required")
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeoutSec * time.Second
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(opts.URL),
		chromedp.WaitVisible(`[data-ready="true"]`, chromedp.ByQuery),
		// Small extra delay to allow final paints.
		chromedp.Sleep(250 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("capture: chromedp run failed: %w", err)
	}

	return png, nil
}
