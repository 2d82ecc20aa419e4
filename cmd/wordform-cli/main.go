// Command wordform-cli classifies word pairs and prints the JSON result.
//
// Usage:
//
//	wordform-cli друг дружба
//	echo "готовить приготовить" | wordform-cli
//	wordform-cli -f pairs.txt -decomposer llm -tagger llm
//	wordform-cli -lexicon words.yaml -decomposer lexicon -tagger lexicon лес лесок
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Alfex4936/wordform/internal/config"
	"github.com/Alfex4936/wordform/internal/model"
	"github.com/Alfex4936/wordform/internal/util"
	"github.com/Alfex4936/wordform/wordform"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "", "config YAML (default: ./wordform.yaml, ~/.config/wordform/config.yaml)")
	file := flag.String("f", "", "file with \"word1 word2\" pairs, one per line, instead of stdin")
	timeout := flag.Duration("t", 15*time.Second, "timeout per pair")
	decomposer := flag.String("decomposer", "", "override decomposer: kartaslov | llm | lexicon")
	tagger := flag.String("tagger", "", "override tagger: pymorphy | llm | lexicon")
	lexicon := flag.String("lexicon", "", "lexicon file (JSON or YAML)")
	verbose := flag.Bool("v", false, "log the morpheme diff and POS pair")
	writeCfg := flag.Bool("write-config", false, "write the effective config to ~/.config/wordform/config.yaml and exit")
	flag.Parse()

	var (
		cfg *config.AppConfig
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	must(err)

	if *decomposer != "" {
		cfg.Decomposer = *decomposer
	}
	if *tagger != "" {
		cfg.Tagger = *tagger
	}
	if *lexicon != "" {
		cfg.Lexicon = *lexicon
	}
	if *verbose {
		cfg.Verbose = true
	}

	if *writeCfg {
		path, err := config.DefaultUserPath()
		must(err)
		must(config.Save(path, cfg))
		fmt.Println(path)
		return
	}

	b, err := wordform.Build(context.Background(), cfg)
	must(err)
	defer b.Close()

	pairs := [][2]string{}
	if args := flag.Args(); len(args) > 0 {
		if len(args) != 2 {
			must(fmt.Errorf("want exactly two words, got %d", len(args)))
		}
		pairs = append(pairs, [2]string{args[0], args[1]})
	} else {
		var r io.Reader = os.Stdin
		if *file != "" {
			f, err := os.Open(*file)
			must(err)
			defer f.Close()
			r = f
		}
		pairs, err = readPairs(r)
		must(err)
	}

	results := make([]*model.Result, 0, len(pairs))
	for _, p := range pairs {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		results = append(results, b.Classify(ctx, util.NormalizeWord(p[0]), util.NormalizeWord(p[1])))
		cancel()
	}

	if len(results) == 1 {
		must(util.WriteJSON(os.Stdout, results[0], true))
		return
	}
	must(util.WriteJSON(os.Stdout, results, true))
}

// readPairs reads "word1 word2" lines; blank lines and #-comments are skipped.
func readPairs(r io.Reader) ([][2]string, error) {
	var pairs [][2]string
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: want \"word1 word2\", got %q", n, line)
		}
		pairs = append(pairs, [2]string{f[0], f[1]})
	}
	return pairs, sc.Err()
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordform-cli:", err)
		os.Exit(1)
	}
}
