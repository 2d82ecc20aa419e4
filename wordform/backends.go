package wordform

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Alfex4936/wordform/internal/config"
	internalllm "github.com/Alfex4936/wordform/internal/llm"
	"github.com/Alfex4936/wordform/internal/local"
	"github.com/Alfex4936/wordform/internal/net"
	"github.com/Alfex4936/wordform/internal/store"
)

// Backends is a Classifier plus the resources behind it.
type Backends struct {
	*Classifier
	DecomposerName string
	TaggerName     string
	closers        []func() error
}

// Close stops the tagger process and closes the store, if any.
func (b *Backends) Close() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Build wires a Classifier from cfg. A configured lexicon overlays the
// chosen backends; when the backend is "lexicon" it is used alone.
func Build(ctx context.Context, cfg *config.AppConfig) (*Backends, error) {
	b := &Backends{
		Classifier:     &Classifier{Verbose: cfg.Verbose},
		DecomposerName: cfg.Decomposer,
		TaggerName:     cfg.Tagger,
	}

	var lx *Lexicon
	if cfg.Lexicon != "" {
		var err error
		if lx, err = LoadLexicon(cfg.Lexicon); err != nil {
			return nil, err
		}
	}

	var shared *LLM
	llmBackend := func() (*LLM, error) {
		if shared != nil {
			return shared, nil
		}
		c, err := newLLMClient(ctx, cfg.LLM)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, c.Close)
		log.Printf("wordform: llm backend %s (model=%s)", c.Provider(), c.Model())
		shared = NewLLM(c)
		return shared, nil
	}

	// decomposer
	var d Decomposer
	switch cfg.Decomposer {
	case "kartaslov":
		nc, err := net.NewClient(net.Options{
			Base:           cfg.Kartaslov.BaseURL,
			TimeoutSeconds: cfg.Kartaslov.TimeoutSecs,
			Insecure:       cfg.Kartaslov.Insecure,
		})
		if err != nil {
			return nil, err
		}
		k, err := NewKartaslov(nc)
		if err != nil {
			return nil, err
		}
		d = k
	case "llm":
		l, err := llmBackend()
		if err != nil {
			b.Close()
			return nil, err
		}
		d = l
	case "lexicon":
		if lx == nil {
			return nil, fmt.Errorf("wordform: decomposer %q needs a lexicon file", cfg.Decomposer)
		}
	default:
		return nil, fmt.Errorf("%w: decomposer %q", ErrUnknownBackend, cfg.Decomposer)
	}

	if d != nil && cfg.Cache.TTLSecs > 0 {
		cd := NewCachedDecomposer(d, cfg.Decomposer, cfg.Cache.TTL())
		if dsn := envValue(cfg.Cache.PostgresDSNEnv); dsn != "" {
			db, err := store.Open(ctx, dsn)
			if err != nil {
				b.Close()
				return nil, err
			}
			repo := store.NewDecompositionRepo(db)
			if err := repo.EnsureSchema(ctx); err != nil {
				db.Close()
				b.Close()
				return nil, fmt.Errorf("wordform: store schema: %w", err)
			}
			b.closers = append(b.closers, db.Close)
			if maxAge := cfg.Cache.MaxAge(); maxAge > 0 {
				n, err := repo.PurgeOlderThan(ctx, maxAge)
				if err != nil {
					log.Printf("wordform: purge stale decompositions: %v", err)
				} else if n > 0 {
					log.Printf("wordform: purged %d stale decompositions", n)
				}
			}
			cd.WithStore(repo, cfg.Cache.MaxAge())
			log.Printf("wordform: decomposition store enabled (max age %v)", cfg.Cache.MaxAge())
		}
		d = cd
	}

	// tagger
	var t Tagger
	switch cfg.Tagger {
	case "pymorphy":
		p, err := local.New(cfg.Pymorphy.Python, cfg.Pymorphy.Module)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, p.Close)
		t = p
	case "llm":
		l, err := llmBackend()
		if err != nil {
			b.Close()
			return nil, err
		}
		t = l
	case "lexicon":
		if lx == nil {
			b.Close()
			return nil, fmt.Errorf("wordform: tagger %q needs a lexicon file", cfg.Tagger)
		}
	default:
		b.Close()
		return nil, fmt.Errorf("%w: tagger %q", ErrUnknownBackend, cfg.Tagger)
	}

	if lx != nil {
		d, t = lx.Decomposer(d), lx.Tagger(t)
	}
	b.Decomposer, b.Tagger = d, t
	return b, nil
}

func newLLMClient(ctx context.Context, cfg config.LLMConfig) (*internalllm.Client, error) {
	key := envValue(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("wordform: llm backend requires %s", cfg.APIKeyEnv)
	}
	switch cfg.Provider {
	case internalllm.ProviderGemini:
		return internalllm.NewGemini(ctx, key, cfg.Model)
	case internalllm.ProviderOpenAI, "":
		return internalllm.New(key, cfg.Model, cfg.BaseURL), nil
	}
	return nil, fmt.Errorf("%w: llm provider %q", ErrUnknownBackend, cfg.Provider)
}

func envValue(key string) string {
	if key == "" {
		return ""
	}
	return os.Getenv(key)
}
