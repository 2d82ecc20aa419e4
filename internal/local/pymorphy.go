// Package local provides a POS tagger backed by a pymorphy process.
// It talks a one-word-per-line pipe protocol to an embedded script.
package local

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Alfex4936/wordform/internal/model"
)

const (
	DefaultPython = "python3"
	DefaultModule = "pymorphy2"
)

// script reads a word per line and answers the POS of the first parse,
// or "-" when the analyzer has none. It prints "ready" once loaded.
const script = `import sys
from %s import MorphAnalyzer
m = MorphAnalyzer()
sys.stdout.write("ready\n")
sys.stdout.flush()
for line in sys.stdin:
    w = line.strip()
    pos = m.parse(w)[0].tag.POS if w else None
    sys.stdout.write((pos or "-") + "\n")
    sys.stdout.flush()
`

// Pymorphy wraps a running analyzer process. One word is in flight at a
// time; answers to words whose caller gave up are skipped by the next call.
type Pymorphy struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	lines chan string
	sem   chan struct{}
	stale int // answers still owed to abandoned calls; guarded by sem
}

// New starts the analyzer.
// python: interpreter path ("" → python3).
// module: pymorphy2 or pymorphy3 ("" → pymorphy2).
func New(python, module string) (*Pymorphy, error) {
	if python == "" {
		python = DefaultPython
	}
	if module == "" {
		module = DefaultModule
	}
	if module != "pymorphy2" && module != "pymorphy3" {
		return nil, fmt.Errorf("local: unsupported module %q", module)
	}

	cmd := exec.Command(python, "-u", "-c", fmt.Sprintf(script, module))
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("local: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("local: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("local: %s start (is %s installed?): %w", python, module, err)
	}

	out := bufio.NewReader(stdout)
	// Wait for the "ready" banner; dictionary loading takes a second or two.
	line, err := out.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ready" {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		if err == nil {
			err = fmt.Errorf("unexpected banner %q", line)
		}
		return nil, fmt.Errorf("local: %s init failed: %w", module, err)
	}

	p := &Pymorphy{
		cmd:   cmd,
		stdin: stdin,
		lines: make(chan string),
		sem:   make(chan struct{}, 1),
	}
	go p.readLines(out)
	return p, nil
}

func (p *Pymorphy) readLines(r *bufio.Reader) {
	defer close(p.lines)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		p.lines <- strings.TrimSpace(line)
	}
}

// Tag returns the POS of the analyzer's first-ranked parse of word.
// Words the analyzer gives no POS for yield model.PosUnknown. ctx bounds
// both the wait for the process and the wait for its answer.
func (p *Pymorphy) Tag(ctx context.Context, word string) (model.PosTag, error) {
	word = strings.TrimSpace(word)
	if strings.ContainsAny(word, "\r\n") {
		return model.PosUnknown, fmt.Errorf("local: word contains a line break")
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return model.PosUnknown, ctx.Err()
	}
	defer func() { <-p.sem }()

	for p.stale > 0 {
		if _, err := p.next(ctx); err != nil {
			return model.PosUnknown, err
		}
		p.stale--
	}

	if _, err := fmt.Fprintf(p.stdin, "%s\n", word); err != nil {
		return model.PosUnknown, fmt.Errorf("local: write: %w", err)
	}
	line, err := p.next(ctx)
	if err != nil {
		if ctx.Err() != nil {
			p.stale++
		}
		return model.PosUnknown, err
	}
	return model.ParsePosTag(line), nil
}

func (p *Pymorphy) next(ctx context.Context) (string, error) {
	select {
	case line, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("local: analyzer exited")
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the analyzer.
func (p *Pymorphy) Close() error {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()
	_ = p.stdin.Close()
	for range p.lines {
	}
	return p.cmd.Wait()
}
