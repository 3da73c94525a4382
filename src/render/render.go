package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// ReadFile returns a saved settled bets page as it is on disk.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("[ERROR] Failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// Renderer loads saved pages in headless Chrome, for exports whose bet
// list is only filled in by the page's own scripts.
type Renderer struct {
	driverOpts []chromedp.ExecAllocatorOption
	Timeout    time.Duration
	WaitFor    string
}

func NewRenderer() *Renderer {
	return &Renderer{
		driverOpts: chromedp.DefaultExecAllocatorOptions[:],
		Timeout:    30 * time.Second,
		WaitFor:    `body`,
	}
}

func (r *Renderer) RenderFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("[ERROR] Failed to resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("[ERROR] Failed to open %s: %w", path, err)
	}

	ctx, cancel := chromedp.NewExecAllocator(context.Background(), r.driverOpts...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var domNode string

	err = chromedp.Run(
		ctx,
		chromedp.Navigate("file://"+filepath.ToSlash(abs)),
		chromedp.WaitReady(r.WaitFor, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &domNode, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("[ERROR] Failed to render %s: %w", path, err)
	}

	return domNode, nil
}

// Load reads path directly, or through Chrome when render is set.
func (r *Renderer) Load(path string, render bool) (string, error) {
	if render {
		return r.RenderFile(path)
	}
	return ReadFile(path)
}
