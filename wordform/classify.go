// Package wordform classifies how one Russian word is derived from another
// (приставочный, суффиксальный, приставочно-суффиксальный, бессуффиксный)
// by diffing their morpheme decompositions and checking the POS pair.
package wordform

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/morph"
)

// Decomposer returns a word's morphemes in order. Failures should wrap
// model.ErrMismatchedWord or model.ErrSegmentsNotFound when they mean
// "no usable decomposition"; any other error is treated the same way.
type Decomposer interface {
	Decompose(ctx context.Context, word string) ([]model.Segment, error)
}

// Tagger returns the part of speech of the first-ranked reading of word.
type Tagger interface {
	Tag(ctx context.Context, word string) (model.PosTag, error)
}

// Classifier is safe for concurrent use; it holds no per-request state.
type Classifier struct {
	Decomposer Decomposer
	Tagger     Tagger
	// Verbose logs the diff and POS pair of every request.
	Verbose bool
}

// New returns a Classifier over the given collaborators.
func New(d Decomposer, t Tagger) *Classifier {
	return &Classifier{Decomposer: d, Tagger: t}
}

// Classify reports how word2 is formed from word1.
//
// Both words are decomposed in parallel; if either lookup fails the result
// is UNKNOWN_PARSE_ERROR. Otherwise the morpheme diff word1→word2 and the
// POS pair pick exactly one of the remaining kinds.
func (c *Classifier) Classify(ctx context.Context, word1, word2 string) *model.Result {
	segs1, segs2, err := c.decomposePair(ctx, word1, word2)
	if err != nil {
		log.Printf("wordform: cannot parse: %v", err)
		res := model.NewResult(model.KindUnknownParseError, word1, word2)
		res.Reason = err.Error()
		return res
	}

	m1, m2 := morph.NewMultimap(segs1), morph.NewMultimap(segs2)
	pos1, pos2 := c.tag(ctx, word1), c.tag(ctx, word2)
	if c.Verbose {
		log.Printf("wordform: %s (%s) -> %s (%s): %v", word1, pos1, word2, pos2, morph.Compare(m1, m2))
	}

	kind := decide(m1, m2, pos1, pos2)
	if c.Verbose {
		log.Printf("wordform: %s -> %s: %s", word1, word2, kind)
	}

	res := model.NewResult(kind, word1, word2)
	res.POS1, res.POS2 = pos1, pos2
	if kind != model.KindUnknown {
		res.Segments1, res.Segments2 = segs1, segs2
	}
	return res
}

// decide diffs m1→m2, applies the root gate and then the rule tables in
// priority order.
func decide(m1, m2 *morph.Multimap, pos1, pos2 model.PosTag) model.Kind {
	diff := morph.Compare(m1, m2)
	prefixAdded := diff.Has(morph.Add, model.Prefix)
	suffixAdded := diff.Has(morph.Add, model.Suffix)

	// Single root assumed: whichever root changed, the first roots are
	// the ones judged.
	if diff.Has(morph.Change, model.Root) && !sameRoot(firstRoot(m1), firstRoot(m2)) {
		return model.KindDifferentRoot
	}

	switch {
	case prefixSuffixPairs.has(pos1, pos2) && prefixAdded && suffixAdded:
		return model.KindPrefixSuffixal
	case prefixPairs.has(pos1, pos2) && prefixAdded:
		return model.KindPrefixal
	case suffixPairs.has(pos1, pos2) && suffixAdded:
		return model.KindSuffixal
	// Back-formation keys on an added suffix, not a removed one.
	case backFormationPairs.has(pos1, pos2) && suffixAdded:
		return model.KindBackFormation
	}
	return model.KindUnknown
}

func (c *Classifier) decomposePair(ctx context.Context, word1, word2 string) (segs1, segs2 []model.Segment, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		segs1, err = c.decompose(gctx, word1)
		return err
	})
	g.Go(func() (err error) {
		segs2, err = c.decompose(gctx, word2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return segs1, segs2, nil
}

func (c *Classifier) decompose(ctx context.Context, word string) ([]model.Segment, error) {
	if c.Decomposer == nil {
		return nil, ErrNoDecomposer
	}
	segs, err := c.Decomposer.Decompose(ctx, word)
	if err != nil {
		var le *model.LookupError
		if !errors.As(err, &le) {
			err = &model.LookupError{Word: word, Reason: err}
		}
		return nil, err
	}
	return segs, nil
}

func (c *Classifier) tag(ctx context.Context, word string) model.PosTag {
	if c.Tagger == nil {
		return model.PosUnknown
	}
	pos, err := c.Tagger.Tag(ctx, word)
	if err != nil {
		log.Printf("wordform: tag %q: %v", word, err)
		return model.PosUnknown
	}
	return pos
}
