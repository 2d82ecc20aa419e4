package local

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/Alfex4936/wordform/internal/model"
)

func TestNew_RejectsUnknownModule(t *testing.T) {
	if _, err := New("", "mystem"); err == nil {
		t.Fatal("New(mystem) error = nil, want error")
	}
}

func TestPymorphy_Tag(t *testing.T) {
	if _, err := exec.LookPath(DefaultPython); err != nil {
		t.Skip("python3 not installed")
	}
	p, err := New("", "")
	if err != nil {
		t.Skipf("pymorphy2 unavailable: %v", err)
	}
	defer p.Close()

	tests := []struct {
		word string
		want model.PosTag
	}{
		{"хомяк", model.NOUN},
		{"говорить", model.INFN},
		{"хороший", model.ADJF},
	}
	for _, tt := range tests {
		got, err := p.Tag(context.Background(), tt.word)
		if err != nil {
			t.Fatalf("Tag(%q) error: %v", tt.word, err)
		}
		if got != tt.want {
			t.Errorf("Tag(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

type bufCloser struct{ bytes.Buffer }

func (*bufCloser) Close() error { return nil }

func TestPymorphy_TagHonoursContext(t *testing.T) {
	in := &bufCloser{}
	p := &Pymorphy{stdin: in, lines: make(chan string), sem: make(chan struct{}, 1)}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := p.Tag(ctx, "хомяк"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Tag() error = %v, want deadline exceeded", err)
	}
	if p.stale != 1 {
		t.Fatalf("stale = %d, want 1", p.stale)
	}

	// The late answer for "хомяк" arrives first and must be skipped.
	go func() {
		p.lines <- "NOUN"
		p.lines <- "INFN"
	}()
	got, err := p.Tag(context.Background(), "говорить")
	if err != nil {
		t.Fatalf("Tag() error: %v", err)
	}
	if got != model.INFN {
		t.Fatalf("Tag(говорить) = %q, want INFN", got)
	}
	if in.String() != "хомяк\nговорить\n" {
		t.Fatalf("written = %q", in.String())
	}
}

func TestPymorphy_TagWhileBusy(t *testing.T) {
	p := &Pymorphy{stdin: &bufCloser{}, lines: make(chan string), sem: make(chan struct{}, 1)}
	p.sem <- struct{}{} // another call holds the process

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := p.Tag(ctx, "хомяк"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Tag() error = %v, want deadline exceeded", err)
	}
}
