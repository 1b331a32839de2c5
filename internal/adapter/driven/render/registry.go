package render

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Labels holds the static report text for one language. The HTML variants
// carry their own localized text; the native engine draws from this set.
type Labels struct {
	Title         string
	CreatedOn     string
	Period        string
	StartTime     string
	EndTime       string
	ChargingPoint string
	Vehicle       string
	Energy        string
	Price         string
	Duration      string
	TotalEnergy   string
	TotalPrice    string
	Footer        string
}

// Variant is one report layout keyed by a primary language tag.
type Variant struct {
	Language string
	Labels   Labels
	HTML     *template.Template
}

// ColumnLabel maps a table column name to its localized header.
func (v *Variant) ColumnLabel(column string) string {
	switch column {
	case "startTime":
		return v.Labels.StartTime
	case "endTime":
		return v.Labels.EndTime
	case "chargingPoint":
		return v.Labels.ChargingPoint
	case "vehicle":
		return v.Labels.Vehicle
	case "energyKwh":
		return v.Labels.Energy
	case "price":
		return v.Labels.Price
	case "duration":
		return v.Labels.Duration
	}
	return column
}

// Registry is the enumerable set of template variants. Lookup falls back
// to the default (English) variant for unrecognized language tags.
type Registry struct {
	variants map[string]*Variant
	fallback *Variant
}

// NewRegistry parses the embedded templates and assembles the registry.
func NewRegistry() (*Registry, error) {
	en, err := newVariant("en", "template_en.html", Labels{
		Title:         "Charging Cost Summary",
		CreatedOn:     "Created on",
		Period:        "Billing period",
		StartTime:     "Start Time",
		EndTime:       "End Time",
		ChargingPoint: "Charging Point",
		Vehicle:       "Vehicle",
		Energy:        "Energy (kWh)",
		Price:         "Price",
		Duration:      "Charging Duration",
		TotalEnergy:   "Total energy",
		TotalPrice:    "Total price",
		Footer:        "This summary was generated automatically.",
	})
	if err != nil {
		return nil, err
	}

	de, err := newVariant("de", "template_de.html", Labels{
		Title:         "Ladekosten-Übersicht",
		CreatedOn:     "Erstellt am",
		Period:        "Abrechnungszeitraum",
		StartTime:     "Startzeit",
		EndTime:       "Endzeit",
		ChargingPoint: "Ladepunkt",
		Vehicle:       "Fahrzeug",
		Energy:        "Energie (kWh)",
		Price:         "Preis",
		Duration:      "Ladedauer",
		TotalEnergy:   "Gesamtenergie",
		TotalPrice:    "Gesamtpreis",
		Footer:        "Diese Übersicht wurde automatisch erstellt.",
	})
	if err != nil {
		return nil, err
	}

	return &Registry{
		variants: map[string]*Variant{"en": en, "de": de},
		fallback: en,
	}, nil
}

func newVariant(lang, templateFile string, labels Labels) (*Variant, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/"+templateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %q: %w", templateFile, err)
	}
	return &Variant{Language: lang, Labels: labels, HTML: tmpl.Lookup(templateFile)}, nil
}

// Variant resolves a template variant by primary language tag.
func (r *Registry) Variant(lang string) *Variant {
	if v, ok := r.variants[lang]; ok {
		return v
	}
	return r.fallback
}
