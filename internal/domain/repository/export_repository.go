package repository

import (
	"github.com/diillson/evcc-charging-report/internal/domain/entity"
)

// ExportRepository writes report artifacts to the output folder, creating
// it when absent. All writers return the absolute path of the file.
type ExportRepository interface {
	WritePDF(data []byte, prefix, outputDir string, period entity.Period) (string, error)
	ExportToCSV(doc *entity.RenderContext, prefix, outputDir string, period entity.Period) (string, error)
	ExportToJSON(doc *entity.RenderContext, prefix, outputDir string, period entity.Period) (string, error)
}
