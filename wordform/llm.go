package wordform

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	internalllm "github.com/Alfex4936/wordform/internal/llm"
	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/util"
)

// analyzer is the part of *llm.Client the LLM backend uses.
type analyzer interface {
	Analyze(ctx context.Context, word string) (*internalllm.Analysis, error)
}

// LLM decomposes and tags words with a language model. One answer serves
// both: it is kept for a short while so Decompose and Tag of the same word
// cost a single request.
type LLM struct {
	c       analyzer
	answers *cache.Cache
}

// NewLLM wraps c.
func NewLLM(c *internalllm.Client) *LLM {
	return newLLM(c)
}

func newLLM(c analyzer) *LLM {
	return &LLM{c: c, answers: cache.New(5*time.Minute, 10*time.Minute)}
}

func (l *LLM) analyze(ctx context.Context, word string) (*internalllm.Analysis, error) {
	if v, ok := l.answers.Get(word); ok {
		return v.(*internalllm.Analysis), nil
	}
	a, err := l.c.Analyze(ctx, word)
	if err != nil {
		return nil, err
	}
	l.answers.Set(word, a, cache.DefaultExpiration)
	return a, nil
}

// Decompose implements Decomposer.
func (l *LLM) Decompose(ctx context.Context, word string) ([]model.Segment, error) {
	a, err := l.analyze(ctx, word)
	if err != nil {
		return nil, &model.LookupError{Word: word, Reason: err}
	}
	if got := util.NormalizeWord(a.Word); got != "" && got != util.NormalizeWord(word) {
		return nil, &model.LookupError{Word: word, Got: a.Word, Reason: model.ErrMismatchedWord}
	}
	if len(a.Morphemes) == 0 {
		return nil, &model.LookupError{Word: word, Reason: model.ErrSegmentsNotFound}
	}

	segs := make([]model.Segment, 0, len(a.Morphemes))
	for _, m := range a.Morphemes {
		segs = append(segs, model.Segment{Text: m.Text, Type: model.ParseMorphemeType(m.Type)})
	}
	return segs, nil
}

// Tag implements Tagger.
func (l *LLM) Tag(ctx context.Context, word string) (model.PosTag, error) {
	a, err := l.analyze(ctx, word)
	if err != nil {
		return model.PosUnknown, err
	}
	return model.ParsePosTag(a.POS), nil
}
