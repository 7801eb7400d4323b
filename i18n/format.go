package i18n

import (
	"math"

	"github.com/showroom-motors/site/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printers = map[string]*message.Printer{
	EN: message.NewPrinter(language.English),
	AR: message.NewPrinter(language.Arabic),
}

func printer(lang string) *message.Printer {
	if p, ok := printers[lang]; ok {
		return p
	}
	return printers[EN]
}

// FormatNumber groups digits the way lang writes them.
func FormatNumber(lang string, n int) string {
	return printer(lang).Sprintf("%d", n)
}

// FormatPrice rounds to whole units and adds the currency code.
func FormatPrice(lang string, price float64) string {
	amount := FormatNumber(lang, int(math.Round(price)))
	if lang == AR {
		return amount + " " + config.Currency
	}
	return config.Currency + " " + amount
}
