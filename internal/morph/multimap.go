// Package morph turns morpheme decompositions into comparable structures:
// an insertion-ordered type → texts multimap and a per-type structural diff.
package morph

import "github.com/Alfex4936/wordform/internal/model"

// Multimap groups segment texts by morpheme type, keeping the order in
// which types were first seen. Ending-like types are always present and
// always empty.
type Multimap struct {
	keys []model.MorphemeType
	vals map[model.MorphemeType][]string
}

// NewMultimap groups segs by type, then blanks model.EndingTypes
// (appending their keys when absent).
func NewMultimap(segs []model.Segment) *Multimap {
	m := &Multimap{vals: make(map[model.MorphemeType][]string, len(segs)+len(model.EndingTypes))}
	for _, s := range segs {
		if s.Type.IsEnding() {
			m.set(s.Type, []string{})
			continue
		}
		m.set(s.Type, append(m.vals[s.Type], s.Text))
	}
	for _, t := range model.EndingTypes {
		m.set(t, []string{})
	}
	return m
}

func (m *Multimap) set(t model.MorphemeType, v []string) {
	if _, ok := m.vals[t]; !ok {
		m.keys = append(m.keys, t)
	}
	m.vals[t] = v
}

// Keys returns the morpheme types in first-seen order.
func (m *Multimap) Keys() []model.MorphemeType {
	out := make([]model.MorphemeType, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the texts recorded for t (nil if t never occurred).
func (m *Multimap) Get(t model.MorphemeType) []string { return m.vals[t] }

// Has reports whether t is a key, even with an empty list.
func (m *Multimap) Has(t model.MorphemeType) bool {
	_, ok := m.vals[t]
	return ok
}
