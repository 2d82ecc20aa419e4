package wordform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Alfex4936/wordform/internal/util"
)

// DefaultTimeout bounds one classification when the request sets none.
var DefaultTimeout = 15 * time.Second

// ClassifyRequest is the HTTP request body for /v1/classify
type ClassifyRequest struct {
	Word1   string `json:"word1"`             // исходное слово (обязательно)
	Word2   string `json:"word2"`             // производное слово (обязательно)
	Timeout int    `json:"timeout,omitempty"` // таймаут в секундах
}

// ClassifyHandler handles POST /v1/classify requests
func ClassifyHandler(c *Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ClassifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		word1, word2 := util.NormalizeWord(req.Word1), util.NormalizeWord(req.Word2)
		if word1 == "" || word2 == "" {
			http.Error(w, "Invalid request: word1 and word2 are required", http.StatusBadRequest)
			return
		}

		timeout := DefaultTimeout
		if req.Timeout > 0 {
			timeout = time.Duration(req.Timeout) * time.Second
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res := c.Classify(ctx, word1, word2)

		w.Header().Set("Content-Type", "application/json")
		_ = util.WriteJSON(w, res, true)
	}
}

// HealthHandler reports which backends b runs on at GET /health.
func HealthHandler(b *Backends) http.HandlerFunc {
	body := map[string]string{
		"status":     "ok",
		"service":    "wordform",
		"decomposer": b.DecomposerName,
		"tagger":     b.TaggerName,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = util.WriteJSON(w, body, false)
	}
}

// OpenAPIHandler serves the API description at GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(openAPISpec))
}

// DocsHandler renders the API description with Redoc at GET /
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Wordform API",
    "description": "Определение способа словообразования русских слов по морфемному составу и частям речи",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/classify": {
      "post": {
        "summary": "Classify",
        "description": "Определяет, каким способом word2 образовано от word1: приставочный (P), суффиксальный (S), приставочно-суффиксальный (PS), бессуффиксный (BS). DIFF_ROOT означает разные корни, UNKNOWN_PARSE_ERROR означает, что разбор одного из слов не найден.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/ClassifyRequest" },
              "examples": {
                "суффиксальный": {
                  "value": { "word1": "друг", "word2": "дружба" }
                },
                "приставочный": {
                  "value": { "word1": "готовить", "word2": "приготовить" }
                },
                "таймаут": {
                  "value": { "word1": "лес", "word2": "подлесок", "timeout": 30 }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Результат классификации",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" },
                "example": {
                  "kind": "P",
                  "label": "приставочный",
                  "word1": "готовить",
                  "word2": "приготовить",
                  "pos1": "INFN",
                  "pos2": "INFN",
                  "segments1": [
                    { "text": "готов", "type": "корень" },
                    { "text": "и", "type": "суффикс" },
                    { "text": "ть", "type": "глагольноеокончание" }
                  ],
                  "segments2": [
                    { "text": "при", "type": "приставка" },
                    { "text": "готов", "type": "корень" },
                    { "text": "и", "type": "суффикс" },
                    { "text": "ть", "type": "глагольноеокончание" }
                  ]
                }
              }
            }
          },
          "400": { "description": "Неверный запрос (ошибка JSON, пустое слово)" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Сервис работает",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "wordform" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "ClassifyRequest": {
        "type": "object",
        "required": ["word1", "word2"],
        "properties": {
          "word1":   { "type": "string", "description": "Исходное слово", "example": "друг" },
          "word2":   { "type": "string", "description": "Производное слово", "example": "дружба" },
          "timeout": { "type": "integer", "description": "Таймаут (сек, по умолчанию 15)", "example": 15 }
        }
      },
      "Segment": {
        "type": "object",
        "properties": {
          "text": { "type": "string", "description": "Морфема" },
          "type": { "type": "string", "description": "Тип морфемы без пробелов, в нижнем регистре" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "kind":      { "type": "string", "enum": ["P", "S", "PS", "BS", "DIFF_ROOT", "UNKNOWN_PARSE_ERROR", "UNKNOWN"] },
          "label":     { "type": "string", "description": "Название способа словообразования или пустая строка" },
          "word1":     { "type": "string" },
          "word2":     { "type": "string" },
          "pos1":      { "type": "string", "description": "Часть речи word1 (OpenCorpora)" },
          "pos2":      { "type": "string", "description": "Часть речи word2 (OpenCorpora)" },
          "segments1": { "type": "array", "items": { "$ref": "#/components/schemas/Segment" } },
          "segments2": { "type": "array", "items": { "$ref": "#/components/schemas/Segment" } },
          "reason":    { "type": "string", "description": "Причина ошибки разбора (только UNKNOWN_PARSE_ERROR)" }
        }
      }
    }
  }
}`

const docsPage = `<!DOCTYPE html>
<html lang="ru">
<meta charset="utf-8">
<title>Wordform API</title>
<body style="margin:0">
<div id="docs"></div>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
<script>Redoc.init("/openapi.json", {hideDownloadButton: true}, document.getElementById("docs"))</script>
</body>
</html>`
