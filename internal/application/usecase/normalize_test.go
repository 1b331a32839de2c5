package usecase

import (
	"testing"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNormalizeEmptyInput(t *testing.T) {
	table := Normalize(nil)
	if !table.Empty() {
		t.Errorf("Normalize(nil).Empty() = false, want true")
	}
	if len(table.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(table.Rows))
	}
}

func TestNormalizeFullSession(t *testing.T) {
	raw := []entity.RawSession{{
		Created:       strPtr("2023-10-01T10:00:00Z"),
		Finished:      strPtr("2023-10-01T12:00:00Z"),
		Loadpoint:     strPtr("Garage"),
		Vehicle:       strPtr("Tesla"),
		ChargedEnergy: floatPtr(50.5),
		Price:         floatPtr(15.0),
	}}

	table := Normalize(raw)
	if table.Empty() {
		t.Fatal("table should not be empty")
	}
	if len(table.Columns) != 7 {
		t.Errorf("len(Columns) = %d, want 7", len(table.Columns))
	}

	row := table.Rows[0]
	if row.Duration != "2h 0m" {
		t.Errorf("Duration = %q, want %q", row.Duration, "2h 0m")
	}
	if row.ChargingPoint != "Garage" {
		t.Errorf("ChargingPoint = %q, want %q", row.ChargingPoint, "Garage")
	}
	if row.EnergyKwh == nil || *row.EnergyKwh != 50.5 {
		t.Errorf("EnergyKwh = %v, want 50.5", row.EnergyKwh)
	}
}

func TestNormalizeMultiDayDuration(t *testing.T) {
	// 25 hours must not wrap around at 24.
	raw := []entity.RawSession{{
		Created:  strPtr("2023-10-01T10:00:00Z"),
		Finished: strPtr("2023-10-02T11:00:00Z"),
	}}

	table := Normalize(raw)
	if got := table.Rows[0].Duration; got != "25h 0m" {
		t.Errorf("Duration = %q, want %q", got, "25h 0m")
	}
}

func TestNormalizeSubHourDuration(t *testing.T) {
	raw := []entity.RawSession{{
		Created:  strPtr("2023-10-01T10:00:00Z"),
		Finished: strPtr("2023-10-01T11:30:45Z"),
	}}

	// seconds are truncated, not rounded
	table := Normalize(raw)
	if got := table.Rows[0].Duration; got != "1h 30m" {
		t.Errorf("Duration = %q, want %q", got, "1h 30m")
	}
}

func TestNormalizeTimezoneNaiveTimestamp(t *testing.T) {
	// the API also emits timestamps without an offset
	raw := []entity.RawSession{{
		Created:  strPtr("2023-10-01T10:00:00"),
		Finished: strPtr("2023-10-01T12:30:00"),
	}}

	table := Normalize(raw)
	row := table.Rows[0]
	if row.StartTime == nil {
		t.Fatal("StartTime = nil, want parsed timezone-naive timestamp")
	}
	if got := row.Duration; got != "2h 30m" {
		t.Errorf("Duration = %q, want %q", got, "2h 30m")
	}
}

func TestNormalizeUnparseableTimestamp(t *testing.T) {
	raw := []entity.RawSession{{
		Created:  strPtr("not-a-timestamp"),
		Finished: strPtr("2023-10-01T12:00:00Z"),
	}}

	table := Normalize(raw)
	row := table.Rows[0]
	if row.StartTime != nil {
		t.Errorf("StartTime = %v, want nil", row.StartTime)
	}
	if row.Duration != entity.DurationNotAvailable {
		t.Errorf("Duration = %q, want %q", row.Duration, entity.DurationNotAvailable)
	}
}

func TestNormalizeNegativeDuration(t *testing.T) {
	// finished before created: treated as invalid, not rendered signed
	raw := []entity.RawSession{{
		Created:  strPtr("2023-10-01T12:00:00Z"),
		Finished: strPtr("2023-10-01T10:00:00Z"),
	}}

	table := Normalize(raw)
	if got := table.Rows[0].Duration; got != entity.DurationNotAvailable {
		t.Errorf("Duration = %q, want %q", got, entity.DurationNotAvailable)
	}
}

func TestNormalizeColumnOmission(t *testing.T) {
	// price absent from every record: no price column at all
	raw := []entity.RawSession{
		{Created: strPtr("2023-10-01T10:00:00Z"), ChargedEnergy: floatPtr(10)},
		{Created: strPtr("2023-10-02T10:00:00Z"), ChargedEnergy: floatPtr(20)},
	}

	table := Normalize(raw)
	if table.HasColumn(entity.ColumnPrice) {
		t.Error("price column should be omitted when absent from every row")
	}
	if !table.HasColumn(entity.ColumnEnergy) {
		t.Error("energy column should be present")
	}
	// duration requires both timestamp columns
	if table.HasColumn(entity.ColumnDuration) {
		t.Error("duration column requires both start and end columns")
	}
}

func TestNormalizeNoExpectedColumns(t *testing.T) {
	raw := []entity.RawSession{{}, {}}

	table := Normalize(raw)
	if !table.Empty() {
		t.Error("rows without any expected field should yield an empty table")
	}
	if len(table.Columns) != 0 {
		t.Errorf("len(Columns) = %d, want 0", len(table.Columns))
	}
}

func TestNormalizePreservesInputOrder(t *testing.T) {
	raw := []entity.RawSession{
		{Vehicle: strPtr("second"), Created: strPtr("2023-10-02T10:00:00Z")},
		{Vehicle: strPtr("first"), Created: strPtr("2023-10-01T10:00:00Z")},
	}

	table := Normalize(raw)
	if table.Rows[0].Vehicle != "second" || table.Rows[1].Vehicle != "first" {
		t.Error("Normalize must preserve input order; sorting is the formatter's job")
	}
}
