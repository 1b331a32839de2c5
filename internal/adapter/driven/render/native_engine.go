package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/internal/domain/repository"
)

// NativeEngine lays the report out directly with gofpdf, without an
// external HTML-to-PDF converter. This is the default engine.
type NativeEngine struct {
	registry *Registry
}

// NewNativeEngine cria o engine nativo sobre o registro de variantes.
func NewNativeEngine(registry *Registry) repository.ReportRenderer {
	return &NativeEngine{registry: registry}
}

// base column widths in mm; scaled to fill the printable width.
var columnWidths = map[entity.Column]float64{
	entity.ColumnStartTime:     30,
	entity.ColumnEndTime:       30,
	entity.ColumnChargingPoint: 30,
	entity.ColumnVehicle:       28,
	entity.ColumnEnergy:        26,
	entity.ColumnPrice:         20,
	entity.ColumnDuration:      26,
}

const printableWidth = 190.0

// Render draws the charging table for the variant matching the document's
// language tag.
func (e *NativeEngine) Render(_ context.Context, doc *entity.RenderContext) ([]byte, error) {
	variant := e.registry.Variant(doc.Language)
	labels := variant.Labels

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	// Bloco do remetente, alinhado à direita
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(printableWidth, 5, tr(doc.Sender.Name), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(printableWidth, 5, tr(doc.Sender.Street), "", 1, "R", false, 0, "")
	pdf.CellFormat(printableWidth, 5, tr(doc.Sender.City), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Título
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr(labels.Title))
	pdf.Ln(8)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+printableWidth, pdf.GetY())
	pdf.Ln(4)

	// Metadados do relatório
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", labels.Period, doc.PeriodLabel)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", labels.CreatedOn, doc.CreationDate)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	widths := e.scaledWidths(doc.Columns)

	// Cabeçalho da tabela
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 9)
	for _, col := range doc.Columns {
		pdf.CellFormat(widths[col], 8, tr(variant.ColumnLabel(string(col))), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Linhas
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	fill := false
	pdf.SetFillColor(240, 240, 240)
	for _, row := range doc.Charges {
		for _, col := range doc.Columns {
			align := "L"
			if col == entity.ColumnEnergy || col == entity.ColumnPrice {
				align = "R"
			}
			pdf.CellFormat(widths[col], 7, tr(cellValue(row, col)), "B", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
	pdf.Ln(6)

	// Totais
	pdf.SetFont("Arial", "B", 10)
	if doc.Has(string(entity.ColumnEnergy)) {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s kWh", labels.TotalEnergy, doc.TotalEnergy)), "", 1, "L", false, 0, "")
	}
	if doc.Has(string(entity.ColumnPrice)) {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", labels.TotalPrice, doc.TotalPrice)), "", 1, "L", false, 0, "")
	}

	// Rodapé
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 5, tr(labels.Footer), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *NativeEngine) scaledWidths(columns []entity.Column) map[entity.Column]float64 {
	total := 0.0
	for _, col := range columns {
		total += columnWidths[col]
	}
	widths := make(map[entity.Column]float64, len(columns))
	if total == 0 {
		return widths
	}
	for _, col := range columns {
		widths[col] = columnWidths[col] / total * printableWidth
	}
	return widths
}

func cellValue(row entity.FormattedRow, col entity.Column) string {
	switch col {
	case entity.ColumnStartTime:
		return row.StartTime
	case entity.ColumnEndTime:
		return row.EndTime
	case entity.ColumnChargingPoint:
		return row.ChargingPoint
	case entity.ColumnVehicle:
		return row.Vehicle
	case entity.ColumnEnergy:
		return row.Energy
	case entity.ColumnPrice:
		return row.Price
	case entity.ColumnDuration:
		return row.Duration
	}
	return ""
}
