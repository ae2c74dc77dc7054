package export

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jmallet/cv-builder/internal/templates"
	"github.com/jmallet/cv-builder/internal/types"
)

// maxConcurrentPrints caps parallel browser instances.
const maxConcurrentPrints = 2

// Result holds one finished export.
type Result struct {
	Template string
	PDF      []byte
}

// AllTemplates prints the document once per registered template,
// concurrently. The first failure cancels the remaining prints.
func AllTemplates(ctx context.Context, doc *types.CVDocument, paper string) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPrints)

	var mu sync.Mutex
	var results []Result

	for _, tpl := range templates.All() {
		tpl := tpl
		g.Go(func() error {
			rendered := tpl.Render(doc)
			rendered.Paper = paperOrDefault(paper)
			pdf, err := PDF(ctx, rendered)
			if err != nil {
				return &Error{Message: "export " + tpl.ID(), Cause: err}
			}
			mu.Lock()
			results = append(results, Result{Template: tpl.ID(), PDF: pdf})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
