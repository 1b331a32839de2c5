// Package localize turns the configured LOCALE tag into an explicit
// formatting value that is threaded through the pipeline instead of any
// process-wide locale state.
package localize

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale bundles every locale-dependent formatting decision: decimal and
// grouping separators, date layouts, month names and the primary language
// tag used for template variant selection.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
	monday  monday.Locale

	// Language is the primary language subtag, e.g. "de" for de_DE.UTF-8.
	Language string

	dateTimeLayout string
	dateLayout     string
}

// layouts per primary language; anything unlisted uses the default.
var dateLayouts = map[string]struct{ dateTime, date string }{
	"de": {"02.01.2006 15:04", "02.01.2006"},
	"en": {"2006-01-02 15:04", "2006-01-02"},
}

var mondayLocales = map[string]monday.Locale{
	"de": monday.LocaleDeDE,
	"en": monday.LocaleEnUS,
	"fr": monday.LocaleFrFR,
	"es": monday.LocaleEsES,
	"it": monday.LocaleItIT,
	"nl": monday.LocaleNlNL,
}

// New resolves a locale tag such as "de_DE.UTF-8", "de-DE" or "en". The
// encoding suffix is ignored. An unparseable tag returns an error; callers
// typically log it and fall back to Default().
func New(tag string) (*Locale, error) {
	normalized := strings.SplitN(tag, ".", 2)[0]
	normalized = strings.ReplaceAll(normalized, "_", "-")

	parsed, err := language.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("unrecognized locale %q: %w", tag, err)
	}

	base, _ := parsed.Base()
	lang := base.String()

	layouts, ok := dateLayouts[lang]
	if !ok {
		layouts = dateLayouts["en"]
	}

	ml, ok := mondayLocales[lang]
	if !ok {
		ml = monday.LocaleEnUS
	}

	return &Locale{
		tag:            parsed,
		printer:        message.NewPrinter(parsed),
		monday:         ml,
		Language:       lang,
		dateTimeLayout: layouts.dateTime,
		dateLayout:     layouts.date,
	}, nil
}

// Default is the en_US fallback locale.
func Default() *Locale {
	loc, _ := New("en_US")
	return loc
}

// FormatEnergy renders an energy value with exactly three fraction digits
// and locale grouping, e.g. 1234.567 -> "1.234,567" under de_DE.
func (l *Locale) FormatEnergy(v float64) string {
	return l.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(3), number.MaxFractionDigits(3)))
}

// FormatPrice renders a price value with exactly two fraction digits and
// locale grouping.
func (l *Locale) FormatPrice(v float64) string {
	return l.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDateTime renders a timestamp using the locale's date-time layout.
func (l *Locale) FormatDateTime(t time.Time) string {
	return t.Format(l.dateTimeLayout)
}

// FormatDate renders a date using the locale's date layout.
func (l *Locale) FormatDate(t time.Time) string {
	return t.Format(l.dateLayout)
}

// MonthName returns the localized full month name, e.g. "März" under de.
func (l *Locale) MonthName(m time.Month) string {
	return monday.Format(time.Date(2000, m, 1, 0, 0, 0, 0, time.UTC), "January", l.monday)
}
