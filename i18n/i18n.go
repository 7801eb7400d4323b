// Package i18n negotiates the page language and holds the interface strings
// for the English and Arabic versions of the site.
package i18n

import (
	"golang.org/x/text/language"
)

const (
	EN = "en"
	AR = "ar"
)

// Supported lists the site languages; the first is the fallback.
var Supported = []string{EN, AR}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Negotiate picks the page language. An explicit cookie choice wins over the
// Accept-Language header; anything unrecognised falls back to English.
func Negotiate(cookie, acceptLanguage string) string {
	if IsSupported(cookie) {
		return cookie
	}
	if acceptLanguage == "" {
		return EN
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return EN
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return EN
	}
	return Supported[index]
}

func IsSupported(lang string) bool {
	return lang == EN || lang == AR
}

// Dir returns the HTML dir attribute for lang.
func Dir(lang string) string {
	if lang == AR {
		return "rtl"
	}
	return "ltr"
}

// Pick returns the field matching lang, falling back to English when the
// Arabic text is empty.
func Pick(lang, en, ar string) string {
	if lang == AR && ar != "" {
		return ar
	}
	return en
}

// T looks up an interface string. Missing Arabic entries fall back to
// English and unknown keys return the key itself.
func T(lang, key string) string {
	if lang == AR {
		if s, ok := arabic[key]; ok {
			return s
		}
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}
