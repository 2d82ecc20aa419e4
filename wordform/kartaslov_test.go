package wordform

import (
	"context"
	"errors"
	"testing"

	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/net"
)

type stubFetcher struct {
	body string
	err  error
}

func (s stubFetcher) FetchMorphemics(context.Context, string) ([]byte, error) {
	return []byte(s.body), s.err
}

const drugPage = `<html><body>
<h1 class="v2-h1">Разбор слова «дружба» по составу</h1>
<table class="morphemics-table">
  <tr><td class="td-morpheme-text">друж</td><td class="td-morpheme-type">корень</td></tr>
  <tr><td class="td-morpheme-text">б</td><td class="td-morpheme-type">суффикс</td></tr>
  <tr><td class="td-morpheme-text">а</td><td class="td-morpheme-type">окончание</td></tr>
</table>
</body></html>`

func TestKartaslov_Decompose(t *testing.T) {
	k := &Kartaslov{fetch: stubFetcher{body: drugPage}}
	got, err := k.Decompose(context.Background(), "дружба")
	if err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}
	want := []model.Segment{
		{Text: "друж", Type: model.Root},
		{Text: "б", Type: model.Suffix},
		{Text: "а", Type: model.Ending},
	}
	if len(got) != len(want) {
		t.Fatalf("Decompose() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestKartaslov_Failures(t *testing.T) {
	tests := []struct {
		name    string
		fetch   stubFetcher
		word    string
		wantErr error
		wantGot string
	}{
		{"redirected headword", stubFetcher{body: drugPage}, "друг", model.ErrMismatchedWord, "дружба"},
		{"no table", stubFetcher{body: `<h1 class="v2-h1">Разбор слова «ой» по составу</h1>`}, "ой", model.ErrSegmentsNotFound, ""},
		{"not found", stubFetcher{err: &net.StatusError{Code: 404}}, "ыыы", model.ErrSegmentsNotFound, ""},
		{"no heading", stubFetcher{body: `<h1>Ошибка</h1>`}, "дом", ErrParse, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &Kartaslov{fetch: tt.fetch}
			_, err := k.Decompose(context.Background(), tt.word)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decompose() error = %v, want %v", err, tt.wantErr)
			}
			var le *model.LookupError
			if !errors.As(err, &le) {
				t.Fatalf("error %T is not a *model.LookupError", err)
			}
			if le.Word != tt.word || le.Got != tt.wantGot {
				t.Fatalf("LookupError = %+v, want Word %q Got %q", le, tt.word, tt.wantGot)
			}
		})
	}
}

func TestKartaslov_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: timeout")
	k := &Kartaslov{fetch: stubFetcher{err: boom}}
	if _, err := k.Decompose(context.Background(), "дом"); !errors.Is(err, boom) {
		t.Fatalf("Decompose() error = %v, want %v", err, boom)
	}
}
