package wordform

import (
	"testing"

	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/morph"
)

func TestSameRoot(t *testing.T) {
	tests := []struct {
		old, cur string
		want     bool
	}{
		{"друг", "друж", true}, // г/ж alternation
		{"друж", "друг", true}, // pairs are unordered
		{"вод", "вож", false},  // д/ж is not accepted
		{"бежа", "беж", true},  // length differs, not judged
		{"кот", "кит", false},  // same last letter but not a listed pair
		{"мост", "мостик", true},
	}
	for _, tt := range tests {
		if got := sameRoot(tt.old, tt.cur); got != tt.want {
			t.Errorf("sameRoot(%q, %q) = %v, want %v", tt.old, tt.cur, got, tt.want)
		}
	}
}

func TestDecide_Priority(t *testing.T) {
	les := []model.Segment{{Text: "лес", Type: model.Root}}
	podlesok := []model.Segment{
		{Text: "под", Type: model.Prefix},
		{Text: "лес", Type: model.Root},
		{Text: "ок", Type: model.Suffix},
	}
	podles := podlesok[:2]
	lesok := podlesok[1:]
	vozhok := []model.Segment{
		{Text: "под", Type: model.Prefix},
		{Text: "вож", Type: model.Root},
		{Text: "ок", Type: model.Suffix},
	}

	tests := []struct {
		name       string
		from, to   []model.Segment
		pos1, pos2 model.PosTag
		want       model.Kind
	}{
		{"PS before P", les, podlesok, model.NOUN, model.NOUN, model.KindPrefixSuffixal},
		{"P when PS pair missing", les, podlesok, model.ADJF, model.ADJF, model.KindPrefixal},
		{"S when no prefix", les, lesok, model.NOUN, model.NOUN, model.KindSuffixal},
		{"BS falls after S", les, lesok, model.ADVB, model.ADJF, model.KindBackFormation},
		{"prefix with unlisted pair", les, podles, model.NOUN, model.VERB, model.KindUnknown},
		{"empty diff", les, les, model.NOUN, model.NOUN, model.KindUnknown},
		{"unknown POS", les, podlesok, model.PosUnknown, model.NOUN, model.KindUnknown},
		{"root gate first", les, vozhok, model.NOUN, model.NOUN, model.KindDifferentRoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decide(morph.NewMultimap(tt.from), morph.NewMultimap(tt.to), tt.pos1, tt.pos2)
			if got != tt.want {
				t.Fatalf("decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecide_SecondRootChangeJudgesFirstRoots(t *testing.T) {
	// Both first roots are "вод": same length, last letters {д} are no
	// accepted alternation, so the gate fires.
	a := []model.Segment{{Text: "вод", Type: model.Root}, {Text: "о", Type: model.Interfix}, {Text: "воз", Type: model.Root}}
	b := []model.Segment{{Text: "вод", Type: model.Root}, {Text: "о", Type: model.Interfix}, {Text: "вож", Type: model.Root}}
	if got := decide(morph.NewMultimap(a), morph.NewMultimap(b), model.NOUN, model.NOUN); got != model.KindDifferentRoot {
		t.Fatalf("decide() = %s, want %s", got, model.KindDifferentRoot)
	}
}

func TestKindLabel(t *testing.T) {
	for k, want := range map[model.Kind]string{
		model.KindSuffixal:          "суффиксальный",
		model.KindPrefixSuffixal:    "приставочно-суффиксальный",
		model.KindPrefixal:          "приставочный",
		model.KindBackFormation:     "бессуффиксный",
		model.KindDifferentRoot:     "",
		model.KindUnknownParseError: "",
		model.KindUnknown:           "",
	} {
		if got := k.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", k, got, want)
		}
	}
}
