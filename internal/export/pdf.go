package export

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jmallet/cv-builder/internal/layout"
)

// DefaultPDFTimeout bounds one print run, browser startup included.
const DefaultPDFTimeout = 60 * time.Second

// Paper dimensions in inches, as the print protocol expects them.
var paperSizes = map[string][2]float64{
	layout.PaperA4:     {8.27, 11.69},
	layout.PaperLetter: {8.5, 11.0},
}

// PDF prints the box tree to PDF bytes through a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func PDF(ctx context.Context, doc *layout.Document) ([]byte, error) {
	html, err := HTML(doc)
	if err != nil {
		return nil, err
	}
	return printHTML(ctx, html, paperOrDefault(doc.Paper))
}

func printHTML(ctx context.Context, html, paper string) ([]byte, error) {
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

	browserCtx, cancel = context.WithTimeout(browserCtx, DefaultPDFTimeout)
	defer cancel()

	size := paperSizes[paper]

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
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(size[0]).
				WithPaperHeight(size[1]).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &Error{Message: "print to pdf", Cause: err}
	}
	return pdf, nil
}
