package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const isoDate = "2006-01-02"

// Formatter renders currency amounts and ISO dates for display. Export rows never go
// through it; they carry raw values.
type Formatter struct {
	printer    *message.Printer
	decimalSep string
	symbol     string
	dateLayout string
}

// New builds a Formatter for a BCP 47 locale tag. Unknown tags fall back to English.
func New(locale, symbol, dateLayout string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	if dateLayout == "" {
		dateLayout = "Jan 2, 2006"
	}
	printer := message.NewPrinter(tag)
	return &Formatter{
		printer:    printer,
		decimalSep: decimalSeparator(printer),
		symbol:     symbol,
		dateLayout: dateLayout,
	}
}

// Currency formats amount with two decimals, locale digit grouping and the currency symbol.
// Only the whole part goes through the printer, so the digits stay exact.
func (f *Formatter) Currency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + f.symbol + f.groupDigits(whole) + f.decimalSep + frac
}

func (f *Formatter) groupDigits(whole string) string {
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return whole
	}
	return f.printer.Sprintf("%d", n)
}

// decimalSeparator asks the locale how it writes 1.5 and keeps what sits between the digits.
func decimalSeparator(printer *message.Printer) string {
	sep := strings.Trim(printer.Sprintf("%.1f", 1.5), "15")
	if sep == "" {
		return "."
	}
	return sep
}

// Date renders an ISO date (or RFC 3339 timestamp) with the configured layout. Values
// that do not parse are returned unchanged.
func (f *Formatter) Date(iso string) string {
	if iso == "" {
		return ""
	}
	raw := iso
	if len(raw) > len(isoDate) {
		raw = raw[:len(isoDate)]
	}
	t, err := time.Parse(isoDate, raw)
	if err != nil {
		return iso
	}
	return t.Format(f.dateLayout)
}
