package report

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/verdant/green-matcher/internal/matching"
)

// DefaultPDFTimeout bounds one headless-Chrome print run.
const DefaultPDFTimeout = 30 * time.Second

// WritePDF prints an HTML document to a PDF file using a headless browser.
// Requires Chrome/Chromium to be installed on the system. The write is a
// single blocking attempt with no retry.
func WritePDF(ctx context.Context, html, outPath string, timeout time.Duration) error {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("pdf rendering failed: %w", err)
	}

	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	log.Printf("[REPORT] wrote %s (%d bytes)", outPath, len(pdf))
	return nil
}

// Export renders the match list for one investor and prints it to
// "<investor>_matches.pdf" under dir. Returns the written file path.
func Export(ctx context.Context, investorName string, matches []matching.MatchResult, dir string) (string, error) {
	html, err := RenderHTML(investorName, matches)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(dir, FileName(investorName))
	if err := WritePDF(ctx, html, outPath, DefaultPDFTimeout); err != nil {
		return "", err
	}
	return outPath, nil
}
