package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// newPrinter returns a printer that groups digits (1,234,567), keeping
// large nanosecond counts and iteration totals readable in text output.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}
