package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// canonical CSV headers, matching the raw field mapping of the API.
var csvHeaders = map[entity.Column]string{
	entity.ColumnStartTime:     "Start Time",
	entity.ColumnEndTime:       "End Time",
	entity.ColumnChargingPoint: "Charging Point",
	entity.ColumnVehicle:       "Vehicle",
	entity.ColumnEnergy:        "Energy (kWh)",
	entity.ColumnPrice:         "Price",
	entity.ColumnDuration:      "Charging Duration",
}

// Filename builds the deterministic report file name for a period, with a
// zero-padded two-digit month. Re-running the same period overwrites the
// previous file.
func Filename(prefix string, period entity.Period, extension string) string {
	return fmt.Sprintf("%s_%d-%02d.%s", prefix, period.Year, int(period.Month), extension)
}

// WritePDF writes rendered PDF bytes into the output folder, creating the
// folder when absent, and returns the absolute path.
func (r *ExportRepositoryImpl) WritePDF(data []byte, prefix, outputDir string, period entity.Period) (string, error) {
	outputFilename, err := prepare(prefix, outputDir, period, "pdf")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToCSV writes the formatted table as CSV.
func (r *ExportRepositoryImpl) ExportToCSV(doc *entity.RenderContext, prefix, outputDir string, period entity.Period) (string, error) {
	outputFilename, err := prepare(prefix, outputDir, period, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := make([]string, 0, len(doc.Columns))
	for _, col := range doc.Columns {
		headers = append(headers, csvHeaders[col])
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range doc.Charges {
		record := make([]string, 0, len(doc.Columns))
		for _, col := range doc.Columns {
			record = append(record, columnValue(row, col))
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the full render context (rows plus totals) as JSON.
func (r *ExportRepositoryImpl) ExportToJSON(doc *entity.RenderContext, prefix, outputDir string, period entity.Period) (string, error) {
	outputFilename, err := prepare(prefix, outputDir, period, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	payload := struct {
		Period      string                `json:"period"`
		Charges     []entity.FormattedRow `json:"charges"`
		TotalEnergy string                `json:"total_energy"`
		TotalPrice  string                `json:"total_price"`
	}{
		Period:      doc.PeriodLabel,
		Charges:     doc.Charges,
		TotalEnergy: doc.TotalEnergy,
		TotalPrice:  doc.TotalPrice,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func prepare(prefix, outputDir string, period entity.Period, extension string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating output folder: %w", err)
	}
	return filepath.Join(outputDir, Filename(prefix, period, extension)), nil
}

func columnValue(row entity.FormattedRow, col entity.Column) string {
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
