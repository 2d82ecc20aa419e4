package wordform

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/net"
	"github.com/Alfex4936/wordform/internal/parse"
)

// pageFetcher is the part of *net.Client Kartaslov uses.
type pageFetcher interface {
	FetchMorphemics(ctx context.Context, word string) ([]byte, error)
}

// Kartaslov decomposes words by scraping kartaslov.ru.
type Kartaslov struct {
	fetch pageFetcher
}

// NewKartaslov uses c, or the shared default client when c is nil.
func NewKartaslov(c *net.Client) (*Kartaslov, error) {
	if c == nil {
		var err error
		if c, err = net.Default(); err != nil {
			return nil, err
		}
	}
	return &Kartaslov{fetch: c}, nil
}

// Decompose implements Decomposer.
//
// The page may describe a different word than requested (the site maps
// "пять" to "пятить"); that is reported as model.ErrMismatchedWord rather
// than silently accepted.
func (k *Kartaslov) Decompose(ctx context.Context, word string) ([]model.Segment, error) {
	body, err := k.fetch.FetchMorphemics(ctx, word)
	if err != nil {
		var se *net.StatusError
		if errors.As(err, &se) && se.Code == 404 {
			return nil, &model.LookupError{Word: word, Reason: model.ErrSegmentsNotFound}
		}
		return nil, &model.LookupError{Word: word, Reason: err}
	}

	page, err := parse.Parse(body)
	if err != nil {
		return nil, &model.LookupError{Word: word, Reason: fmt.Errorf("%w: %v", ErrParse, err)}
	}
	if page.Title == "" {
		return nil, &model.LookupError{Word: word, Reason: ErrParse}
	}
	if page.Headword != word {
		return nil, &model.LookupError{Word: word, Got: page.Headword, Reason: model.ErrMismatchedWord}
	}
	if !page.HasTable {
		return nil, &model.LookupError{Word: word, Reason: model.ErrSegmentsNotFound}
	}

	segs := make([]model.Segment, 0, len(page.Rows))
	for _, r := range page.Rows {
		segs = append(segs, model.Segment{Text: r.Text, Type: model.ParseMorphemeType(r.Type)})
	}
	return segs, nil
}
