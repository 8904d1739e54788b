package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormat renders statistic values for item descriptions using the
// configured locale: grouped integers ("1,234") and two-decimal doubles ("1,234.50").
type NumberFormat struct {
	printer *message.Printer
}

// NewNumberFormat creates a formatter for the given locale
func NewNumberFormat(tag language.Tag) *NumberFormat {
	return &NumberFormat{printer: message.NewPrinter(tag)}
}

// ParseLocale parses a BCP-47 tag, falling back to American English
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// FormatInt formats a counter
func (f *NumberFormat) FormatInt(n int) string {
	return f.printer.Sprintf("%d", n)
}

// FormatDouble formats an accumulated amount with two decimals
func (f *NumberFormat) FormatDouble(d float64) string {
	return f.printer.Sprintf("%.2f", d)
}
