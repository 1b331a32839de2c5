package render

import (
	"fmt"

	"github.com/diillson/evcc-charging-report/internal/domain/repository"
)

// NewEngine resolves the configured PDF engine name. "native" draws the
// report directly with gofpdf; "html" pipes the HTML template through
// wkhtmltopdf.
func NewEngine(engine string) (repository.ReportRenderer, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	switch engine {
	case "", "native":
		return NewNativeEngine(registry), nil
	case "html":
		return NewHTMLEngine(registry), nil
	}
	return nil, fmt.Errorf("unsupported PDF engine: %q", engine)
}
