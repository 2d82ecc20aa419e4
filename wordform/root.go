package wordform

import (
	"unicode/utf8"

	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/morph"
)

// alternations are the root-final consonant pairs accepted as the same
// root. The second entry is a Latin self-pair that never matches Cyrillic
// roots; it is kept so the table matches the published behaviour.
var alternations = [][2]rune{
	{'г', 'ж'},
	{'a', 'a'},
}

// sameRoot decides whether a root change old→cur still counts as the same
// root. Roots of different length are not judged here and pass.
func sameRoot(old, cur string) bool {
	if utf8.RuneCountInString(old) != utf8.RuneCountInString(cur) {
		return true
	}
	x, y := lastRune(old), lastRune(cur)
	for _, p := range alternations {
		if sameSet(x, y, p[0], p[1]) {
			return true
		}
	}
	return false
}

// sameSet compares {x, y} and {p, q} as sets.
func sameSet(x, y, p, q rune) bool {
	in := func(r, a, b rune) bool { return r == a || r == b }
	return in(x, p, q) && in(y, p, q) && in(p, x, y) && in(q, x, y)
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRoot(m *morph.Multimap) string {
	if roots := m.Get(model.Root); len(roots) > 0 {
		return roots[0]
	}
	return ""
}
