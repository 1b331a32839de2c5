package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/internal/domain/repository"
)

// HTMLEngine executes the variant's HTML template and hands the result to
// wkhtmltopdf. Requires the wkhtmltopdf binary on PATH.
type HTMLEngine struct {
	registry *Registry
}

// NewHTMLEngine cria o engine HTML sobre o registro de variantes.
func NewHTMLEngine(registry *Registry) repository.ReportRenderer {
	return &HTMLEngine{registry: registry}
}

// Render produces the HTML document for the matching variant and converts
// it to PDF bytes.
func (e *HTMLEngine) Render(ctx context.Context, doc *entity.RenderContext) ([]byte, error) {
	variant := e.registry.Variant(doc.Language)

	var html bytes.Buffer
	if err := variant.HTML.Execute(&html, doc); err != nil {
		return nil, fmt.Errorf("executing report template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("initializing wkhtmltopdf: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html.String()))
	page.EnableLocalFileAccess.Set(false)
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return pdfg.Bytes(), nil
}
