package morph

import (
	"fmt"
	"strings"

	"github.com/Alfex4936/wordform/internal/model"
)

// Action is the kind of edit applied to one position of a type's list.
type Action string

const (
	Add    Action = "add"
	Remove Action = "remove"
	Change Action = "change"
)

// Edit is the single record shape of a Diff.
// Old is empty for Add, New is empty for Remove.
type Edit struct {
	Type   model.MorphemeType `json:"type"`
	Action Action             `json:"action"`
	Index  int                `json:"index"`
	Old    string             `json:"old,omitempty"`
	New    string             `json:"new,omitempty"`
}

func (e Edit) String() string {
	switch e.Action {
	case Add:
		return fmt.Sprintf("+%s[%d]=%q", e.Type, e.Index, e.New)
	case Remove:
		return fmt.Sprintf("-%s[%d]=%q", e.Type, e.Index, e.Old)
	default:
		return fmt.Sprintf("~%s[%d]=%q→%q", e.Type, e.Index, e.Old, e.New)
	}
}

// Diff lists the edits turning one Multimap into another, grouped by type
// in key order.
type Diff []Edit

// Compare diffs a against b. Keys are visited in a's order, then the keys
// only b has, so the result is deterministic for equal inputs.
func Compare(a, b *Multimap) Diff {
	var d Diff
	for _, t := range a.Keys() {
		d = append(d, compareList(t, a.Get(t), b.Get(t))...)
	}
	for _, t := range b.Keys() {
		if !a.Has(t) {
			d = append(d, compareList(t, nil, b.Get(t))...)
		}
	}
	return d
}

func compareList(t model.MorphemeType, old, cur []string) []Edit {
	var out []Edit
	n := min(len(old), len(cur))
	for i := 0; i < n; i++ {
		if old[i] != cur[i] {
			out = append(out, Edit{Type: t, Action: Change, Index: i, Old: old[i], New: cur[i]})
		}
	}
	for i := n; i < len(cur); i++ {
		out = append(out, Edit{Type: t, Action: Add, Index: i, New: cur[i]})
	}
	for i := n; i < len(old); i++ {
		out = append(out, Edit{Type: t, Action: Remove, Index: i, Old: old[i]})
	}
	return out
}

// Find returns the first edit with the given action on morpheme type t.
func (d Diff) Find(action Action, t model.MorphemeType) (Edit, bool) {
	for _, e := range d {
		if e.Action == action && e.Type == t {
			return e, true
		}
	}
	return Edit{}, false
}

// Has is Find without the edit.
func (d Diff) Has(action Action, t model.MorphemeType) bool {
	_, ok := d.Find(action, t)
	return ok
}

func (d Diff) String() string {
	parts := make([]string, len(d))
	for i, e := range d {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
