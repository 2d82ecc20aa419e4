// Command wordform-server provides an HTTP REST API for word-formation
// classification.
//
// Usage:
//
//	wordform-server -p 8080
//	wordform-server -p 8080 -decomposer llm -tagger llm
//	WORDFORM_PG_DSN=postgres://... wordform-server -config wordform.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Alfex4936/wordform/internal/config"
	"github.com/Alfex4936/wordform/wordform"
)

func main() {
	_ = godotenv.Load()

	port := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	cfgPath := flag.String("config", envOr("WORDFORM_CONFIG", ""), "config YAML")
	decomposer := flag.String("decomposer", envOr("DECOMPOSER", ""), "override decomposer: kartaslov | llm | lexicon")
	tagger := flag.String("tagger", envOr("TAGGER", ""), "override tagger: pymorphy | llm | lexicon")
	lexicon := flag.String("lexicon", envOr("LEXICON", ""), "lexicon file (JSON or YAML)")
	origins := flag.String("cors", envOr("CORS_ORIGINS", "*"), "comma-separated allowed origins")
	verbose := flag.Bool("v", false, "log the morpheme diff and POS pair")
	flag.Parse()

	var (
		cfg  *config.AppConfig
		path string
		err  error
	)
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
		path = *cfgPath
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
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
	if cfg.Cache.PostgresDSNEnv == "" && os.Getenv("WORDFORM_PG_DSN") != "" {
		cfg.Cache.PostgresDSNEnv = "WORDFORM_PG_DSN"
	}

	b, err := wordform.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("backend init failed: %v", err)
	}
	defer b.Close()

	if path == "" {
		path = "(defaults)"
	}
	log.Printf("   config     : %s\n", path)
	log.Printf("   decomposer : %s\n", cfg.Decomposer)
	log.Printf("   tagger     : %s\n", cfg.Tagger)
	if cfg.Lexicon != "" {
		log.Printf("   lexicon    : %s\n", cfg.Lexicon)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/classify", wordform.ClassifyHandler(b.Classifier))
	mux.HandleFunc("/health", wordform.HealthHandler(b))
	mux.HandleFunc("/openapi.json", wordform.OpenAPIHandler)
	mux.HandleFunc("/", wordform.DocsHandler)

	handler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(*origins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("wordform server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/classify\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
