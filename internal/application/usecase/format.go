package usecase

import (
	"sort"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/pkg/localize"
)

// Format sorts the table by start time where available, renders every
// value as a locale-formatted string, and computes the column totals on
// the numeric values before formatting. Missing numeric values contribute
// nothing to the totals and render as empty strings.
func Format(table entity.SessionTable, loc *localize.Locale) ([]entity.FormattedRow, entity.ReportTotals) {
	rows := make([]entity.NormalizedSession, len(table.Rows))
	copy(rows, table.Rows)

	// Stable sort on the available key: rows without a start time go
	// last and keep their relative order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].StartTime == nil {
			return false
		}
		if rows[j].StartTime == nil {
			return true
		}
		return rows[i].StartTime.Before(*rows[j].StartTime)
	})

	var totals entity.ReportTotals
	formatted := make([]entity.FormattedRow, 0, len(rows))

	for _, row := range rows {
		out := entity.FormattedRow{
			ChargingPoint: row.ChargingPoint,
			Vehicle:       row.Vehicle,
			Duration:      row.Duration,
		}
		if row.StartTime != nil {
			out.StartTime = loc.FormatDateTime(*row.StartTime)
		}
		if row.EndTime != nil {
			out.EndTime = loc.FormatDateTime(*row.EndTime)
		}
		if row.EnergyKwh != nil {
			out.Energy = loc.FormatEnergy(*row.EnergyKwh)
			totals.EnergyKwh += *row.EnergyKwh
		}
		if row.Price != nil {
			out.Price = loc.FormatPrice(*row.Price)
			totals.Price += *row.Price
		}
		formatted = append(formatted, out)
	}

	totals.EnergyRendered = loc.FormatEnergy(totals.EnergyKwh)
	totals.PriceRendered = loc.FormatPrice(totals.Price)

	return formatted, totals
}
