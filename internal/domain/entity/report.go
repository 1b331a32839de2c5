package entity

import (
	"fmt"
	"time"
)

// Period identifies the month a report covers.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PreviousMonth returns the period of the calendar month before now.
func PreviousMonth(now time.Time) Period {
	lastOfPrevious := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	return Period{Year: lastOfPrevious.Year(), Month: lastOfPrevious.Month()}
}

// String renders the period as "M/YYYY" for log messages.
func (p Period) String() string {
	return fmt.Sprintf("%d/%d", int(p.Month), p.Year)
}

// SenderInfo is the static identity block printed on the report header.
type SenderInfo struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
}

// FormattedRow is a NormalizedSession with every value rendered as a
// locale-formatted display string. Missing values render as "".
type FormattedRow struct {
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	ChargingPoint string `json:"charging_point,omitempty"`
	Vehicle       string `json:"vehicle,omitempty"`
	Energy        string `json:"energy_kwh,omitempty"`
	Price         string `json:"price,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// ReportTotals carries the column sums, computed on the numeric values
// before any formatting, plus their locale-formatted renditions.
type ReportTotals struct {
	EnergyKwh      float64 `json:"energy_kwh"`
	Price          float64 `json:"price"`
	EnergyRendered string  `json:"energy_rendered"`
	PriceRendered  string  `json:"price_rendered"`
}

// RenderContext is everything a PDF engine needs to lay out the report.
type RenderContext struct {
	Language     string
	Sender       SenderInfo
	CreationDate string
	PeriodLabel  string
	Columns      []Column
	Charges      []FormattedRow
	TotalEnergy  string
	TotalPrice   string
}

// Has reports column presence by name, usable from HTML templates.
func (c *RenderContext) Has(name string) bool {
	for _, col := range c.Columns {
		if string(col) == name {
			return true
		}
	}
	return false
}
