package wordform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Alfex4936/wordform/internal/model"
)

// ErrNotInLexicon is returned by Lexicon.Tag for unknown words.
var ErrNotInLexicon = errors.New("wordform: word not in lexicon")

// Entry is what a Lexicon knows about one word. Either field may be empty.
type Entry struct {
	POS       model.PosTag    `json:"pos,omitempty" yaml:"pos,omitempty"`
	Morphemes []model.Segment `json:"morphemes,omitempty" yaml:"morphemes,omitempty"`
}

// Lexicon is a user-maintained word list that answers both lookups. It
// fixes words the remote sources get wrong and backs offline use.
//
// File form (JSON or YAML):
//
//	words:
//	  дружба:
//	    pos: NOUN
//	    morphemes:
//	      - {text: друж, type: корень}
//	      - {text: б, type: суффикс}
//	      - {text: а, type: окончание}
type Lexicon struct {
	Words map[string]Entry `json:"words" yaml:"words"`
}

// NewLexicon returns an empty Lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{Words: make(map[string]Entry)}
}

// LoadLexicon reads a .json file as JSON and anything else as YAML.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lx := NewLexicon()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, lx)
	} else {
		err = yaml.Unmarshal(data, lx)
	}
	if err != nil {
		return nil, fmt.Errorf("wordform: lexicon %s: %w", path, err)
	}
	if lx.Words == nil {
		lx.Words = make(map[string]Entry)
	}
	for w, e := range lx.Words {
		for i := range e.Morphemes {
			e.Morphemes[i].Type = model.ParseMorphemeType(string(e.Morphemes[i].Type))
		}
		e.POS = model.ParsePosTag(string(e.POS))
		lx.Words[w] = e
	}
	return lx, nil
}

// Add records pos and morphemes for word, replacing any previous entry.
func (l *Lexicon) Add(word string, pos model.PosTag, morphemes ...model.Segment) {
	l.Words[word] = Entry{POS: pos, Morphemes: morphemes}
}

// Decompose implements Decomposer.
func (l *Lexicon) Decompose(_ context.Context, word string) ([]model.Segment, error) {
	e, ok := l.Words[word]
	if !ok || len(e.Morphemes) == 0 {
		return nil, &model.LookupError{Word: word, Reason: model.ErrSegmentsNotFound}
	}
	out := make([]model.Segment, len(e.Morphemes))
	copy(out, e.Morphemes)
	return out, nil
}

// Tag implements Tagger.
func (l *Lexicon) Tag(_ context.Context, word string) (model.PosTag, error) {
	e, ok := l.Words[word]
	if !ok || e.POS == model.PosUnknown {
		return model.PosUnknown, ErrNotInLexicon
	}
	return e.POS, nil
}

// Decomposer answers from the lexicon and falls back to next.
func (l *Lexicon) Decomposer(next Decomposer) Decomposer {
	return overlayDecomposer{l, next}
}

// Tagger answers from the lexicon and falls back to next.
func (l *Lexicon) Tagger(next Tagger) Tagger {
	return overlayTagger{l, next}
}

type overlayDecomposer struct {
	lx   *Lexicon
	next Decomposer
}

func (o overlayDecomposer) Decompose(ctx context.Context, word string) ([]model.Segment, error) {
	if segs, err := o.lx.Decompose(ctx, word); err == nil || o.next == nil {
		return segs, err
	}
	return o.next.Decompose(ctx, word)
}

type overlayTagger struct {
	lx   *Lexicon
	next Tagger
}

func (o overlayTagger) Tag(ctx context.Context, word string) (model.PosTag, error) {
	if pos, err := o.lx.Tag(ctx, word); err == nil || o.next == nil {
		return pos, err
	}
	return o.next.Tag(ctx, word)
}
