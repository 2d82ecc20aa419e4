package bench

import (
	"context"
	"testing"

	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/morph"
	"github.com/Alfex4936/wordform/wordform"
)

// lexicon-backed classifier built once, reused in all benches.
var (
	lex = func() *wordform.Lexicon {
		lx := wordform.NewLexicon()
		lx.Add("лес", model.NOUN,
			model.Segment{Text: "лес", Type: model.Root},
			model.Segment{Text: "", Type: model.ZeroEnding})
		lx.Add("подлесок", model.NOUN,
			model.Segment{Text: "под", Type: model.Prefix},
			model.Segment{Text: "лес", Type: model.Root},
			model.Segment{Text: "ок", Type: model.Suffix},
			model.Segment{Text: "", Type: model.ZeroEnding})
		return lx
	}()
	clf = wordform.New(lex, lex)
)

func BenchmarkClassify(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_ = clf.Classify(ctx, "лес", "подлесок")
	}
}

func BenchmarkCompare(b *testing.B) {
	ctx := context.Background()
	s1, _ := lex.Decompose(ctx, "лес")
	s2, _ := lex.Decompose(ctx, "подлесок")
	for i := 0; i < b.N; i++ {
		_ = morph.Compare(morph.NewMultimap(s1), morph.NewMultimap(s2)) // 2 adds
	}
}
