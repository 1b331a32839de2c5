package usecase

import (
	"testing"
	"time"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/pkg/localize"
)

func mustLocale(t *testing.T, tag string) *localize.Locale {
	t.Helper()
	loc, err := localize.New(tag)
	if err != nil {
		t.Fatalf("localize.New(%q) returned error: %v", tag, err)
	}
	return loc
}

func timePtr(t time.Time) *time.Time { return &t }

func TestFormatEmptyTable(t *testing.T) {
	rows, totals := Format(entity.SessionTable{}, mustLocale(t, "en_US"))
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
	if totals.EnergyKwh != 0 || totals.Price != 0 {
		t.Errorf("totals = %+v, want zero values", totals)
	}
}

func TestFormatGermanSeparators(t *testing.T) {
	table := entity.SessionTable{
		Columns: []entity.Column{entity.ColumnEnergy},
		Rows:    []entity.NormalizedSession{{EnergyKwh: floatPtr(1234.567)}},
	}

	rows, _ := Format(table, mustLocale(t, "de_DE.UTF-8"))
	if got := rows[0].Energy; got != "1.234,567" {
		t.Errorf("Energy = %q, want %q", got, "1.234,567")
	}
}

func TestFormatEnglishSeparators(t *testing.T) {
	table := entity.SessionTable{
		Columns: []entity.Column{entity.ColumnEnergy},
		Rows:    []entity.NormalizedSession{{EnergyKwh: floatPtr(1234.567)}},
	}

	rows, _ := Format(table, mustLocale(t, "en_US.UTF-8"))
	if got := rows[0].Energy; got != "1,234.567" {
		t.Errorf("Energy = %q, want %q", got, "1,234.567")
	}
}

func TestFormatFractionDigits(t *testing.T) {
	table := entity.SessionTable{
		Columns: []entity.Column{entity.ColumnEnergy, entity.ColumnPrice},
		Rows: []entity.NormalizedSession{{
			EnergyKwh: floatPtr(50.5),
			Price:     floatPtr(15.0),
		}},
	}

	rows, _ := Format(table, mustLocale(t, "en_US"))
	if got := rows[0].Energy; got != "50.500" {
		t.Errorf("Energy = %q, want exactly 3 fraction digits (%q)", got, "50.500")
	}
	if got := rows[0].Price; got != "15.00" {
		t.Errorf("Price = %q, want exactly 2 fraction digits (%q)", got, "15.00")
	}
}

func TestFormatTotalsSumNumericValues(t *testing.T) {
	table := entity.SessionTable{
		Columns: []entity.Column{entity.ColumnEnergy, entity.ColumnPrice},
		Rows: []entity.NormalizedSession{
			{EnergyKwh: floatPtr(1000.25), Price: floatPtr(10.10)},
			{EnergyKwh: floatPtr(500.25), Price: floatPtr(5.05)},
			{EnergyKwh: nil, Price: nil}, // missing values contribute nothing
		},
	}

	rows, totals := Format(table, mustLocale(t, "de_DE"))
	if totals.EnergyKwh != 1500.5 {
		t.Errorf("totals.EnergyKwh = %v, want 1500.5", totals.EnergyKwh)
	}
	if totals.Price != 15.15 {
		t.Errorf("totals.Price = %v, want 15.15", totals.Price)
	}
	// totals are formatted from the numeric sum, never from formatted strings
	if totals.EnergyRendered != "1.500,500" {
		t.Errorf("EnergyRendered = %q, want %q", totals.EnergyRendered, "1.500,500")
	}
	// missing values render empty, not "0"
	if rows[2].Energy != "" || rows[2].Price != "" {
		t.Errorf("missing values rendered as %q/%q, want empty strings", rows[2].Energy, rows[2].Price)
	}
}

func TestFormatSortsByStartTime(t *testing.T) {
	early := time.Date(2023, 10, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2023, 10, 5, 8, 0, 0, 0, time.UTC)

	// rows without a start time sit between timestamped ones; they must
	// not block the timestamped rows from sorting
	table := entity.SessionTable{
		Columns: []entity.Column{entity.ColumnStartTime, entity.ColumnVehicle},
		Rows: []entity.NormalizedSession{
			{StartTime: timePtr(late), Vehicle: "late"},
			{StartTime: nil, Vehicle: "unknown-a"},
			{StartTime: timePtr(early), Vehicle: "early"},
			{StartTime: nil, Vehicle: "unknown-b"},
		},
	}

	rows, _ := Format(table, mustLocale(t, "en_US"))

	var vehicles []string
	for _, r := range rows {
		vehicles = append(vehicles, r.Vehicle)
	}

	// timestamped rows ascending first, then rows without a start time
	// in their original relative order
	want := []string{"early", "late", "unknown-a", "unknown-b"}
	for i, v := range want {
		if vehicles[i] != v {
			t.Fatalf("order after Format = %v, want %v", vehicles, want)
		}
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	table := entity.SessionTable{
		Columns: []entity.Column{entity.ColumnStartTime, entity.ColumnEnergy},
		Rows: []entity.NormalizedSession{{
			StartTime: timePtr(time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC)),
			EnergyKwh: floatPtr(1234.567),
		}},
	}
	loc := mustLocale(t, "de_DE")

	first, firstTotals := Format(table, loc)
	second, secondTotals := Format(table, loc)

	if first[0] != second[0] {
		t.Errorf("repeated formatting differs: %+v vs %+v", first[0], second[0])
	}
	if firstTotals != secondTotals {
		t.Errorf("repeated totals differ: %+v vs %+v", firstTotals, secondTotals)
	}
}
