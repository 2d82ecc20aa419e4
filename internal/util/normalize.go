package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lowerRU = cases.Lower(language.Russian)

// NormalizeWord prepares user input for lookup: NFC (so "й" typed as
// и + breve matches), Russian lower-casing, surrounding space and stress
// marks removed.
func NormalizeWord(s string) string {
	s = norm.NFD.String(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if r == '\u0301' || r == '\u0300' { // stress marks
			return -1
		}
		return r
	}, s)
	return lowerRU.String(norm.NFC.String(s))
}
