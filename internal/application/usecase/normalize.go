package usecase

import (
	"fmt"
	"time"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
)

// Normalize maps raw API records onto the typed session table. Rows keep
// their input order. A raw field absent from every record produces no
// column; the duration column exists only when both timestamp columns do.
func Normalize(raw []entity.RawSession) entity.SessionTable {
	if len(raw) == 0 {
		return entity.SessionTable{}
	}

	present := columnPresence(raw)
	columns := make([]entity.Column, 0, 7)
	for _, col := range []entity.Column{
		entity.ColumnStartTime,
		entity.ColumnEndTime,
		entity.ColumnChargingPoint,
		entity.ColumnVehicle,
		entity.ColumnEnergy,
		entity.ColumnPrice,
	} {
		if present[col] {
			columns = append(columns, col)
		}
	}
	withDuration := present[entity.ColumnStartTime] && present[entity.ColumnEndTime]
	if withDuration {
		columns = append(columns, entity.ColumnDuration)
	}

	if len(columns) == 0 {
		return entity.SessionTable{}
	}

	rows := make([]entity.NormalizedSession, 0, len(raw))
	for _, record := range raw {
		row := entity.NormalizedSession{
			StartTime: parseTimestamp(record.Created),
			EndTime:   parseTimestamp(record.Finished),
			EnergyKwh: record.ChargedEnergy,
			Price:     record.Price,
		}
		if record.Loadpoint != nil {
			row.ChargingPoint = *record.Loadpoint
		}
		if record.Vehicle != nil {
			row.Vehicle = *record.Vehicle
		}
		if withDuration {
			row.Duration = duration(row.StartTime, row.EndTime)
		}
		rows = append(rows, row)
	}

	return entity.SessionTable{Columns: columns, Rows: rows}
}

func columnPresence(raw []entity.RawSession) map[entity.Column]bool {
	present := make(map[entity.Column]bool)
	for _, record := range raw {
		if record.Created != nil {
			present[entity.ColumnStartTime] = true
		}
		if record.Finished != nil {
			present[entity.ColumnEndTime] = true
		}
		if record.Loadpoint != nil {
			present[entity.ColumnChargingPoint] = true
		}
		if record.Vehicle != nil {
			present[entity.ColumnVehicle] = true
		}
		if record.ChargedEnergy != nil {
			present[entity.ColumnEnergy] = true
		}
		if record.Price != nil {
			present[entity.ColumnPrice] = true
		}
	}
	return present
}

// timestampLayouts are the accepted ISO-8601 forms: with an explicit
// offset (RFC3339) or timezone-naive, as the API emits both.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseTimestamp accepts ISO-8601 timestamps; anything unparseable is
// treated like a missing value.
func parseTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

// duration decomposes end-start into whole hours and whole minutes,
// truncating seconds. Hours are not capped at 24. A missing timestamp or a
// negative span yields the sentinel.
func duration(start, end *time.Time) string {
	if start == nil || end == nil {
		return entity.DurationNotAvailable
	}
	d := end.Sub(*start)
	if d < 0 {
		return entity.DurationNotAvailable
	}
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
