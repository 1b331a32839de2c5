package entity

import "time"

// RawSession is one charging session record as returned by the evcc
// sessions API. Any field may be absent from the payload, so everything
// is a pointer.
type RawSession struct {
	Created       *string  `json:"created,omitempty"`
	Finished      *string  `json:"finished,omitempty"`
	Loadpoint     *string  `json:"loadpoint,omitempty"`
	Vehicle       *string  `json:"vehicle,omitempty"`
	ChargedEnergy *float64 `json:"chargedEnergy,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

// Column identifies a display column of the session table.
type Column string

const (
	ColumnStartTime     Column = "startTime"
	ColumnEndTime       Column = "endTime"
	ColumnChargingPoint Column = "chargingPoint"
	ColumnVehicle       Column = "vehicle"
	ColumnEnergy        Column = "energyKwh"
	ColumnPrice         Column = "price"
	ColumnDuration      Column = "duration"
)

// DurationNotAvailable is rendered when a session is missing a parseable
// start or end timestamp, or when the span is negative.
const DurationNotAvailable = "N/A"

// NormalizedSession is one row of the session table after field renaming,
// timestamp parsing and duration derivation. Missing values stay nil.
type NormalizedSession struct {
	StartTime     *time.Time
	EndTime       *time.Time
	ChargingPoint string
	Vehicle       string
	EnergyKwh     *float64
	Price         *float64
	Duration      string
}

// SessionTable holds the normalized rows together with the set of columns
// actually present in the source data. A raw field absent from every input
// row yields no column at all, rather than a column of empty values.
type SessionTable struct {
	Columns []Column
	Rows    []NormalizedSession
}

// HasColumn reports whether the given column is present in the table.
func (t SessionTable) HasColumn(c Column) bool {
	for _, col := range t.Columns {
		if col == c {
			return true
		}
	}
	return false
}

// Empty reports whether there is nothing to put on a report: either no
// rows at all, or rows whose fields matched none of the expected columns.
func (t SessionTable) Empty() bool {
	return len(t.Rows) == 0 || len(t.Columns) == 0
}
