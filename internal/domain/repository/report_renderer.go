package repository

import (
	"context"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
)

// ReportRenderer turns an assembled render context into PDF bytes. The
// template variant is resolved from the context's language tag, falling
// back to the default variant for unrecognized tags.
type ReportRenderer interface {
	Render(ctx context.Context, doc *entity.RenderContext) ([]byte, error)
}
