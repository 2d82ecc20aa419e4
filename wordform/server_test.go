package wordform

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Alfex4936/wordform/internal/model"
)

func TestClassifyHandler(t *testing.T) {
	h := ClassifyHandler(New(testWords, testTags))

	body := `{"word1": " Лес ", "word2": "подлесо́к"}`
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var res model.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Kind != model.KindPrefixSuffixal || res.Label != "приставочно-суффиксальный" {
		t.Fatalf("result = %+v", res)
	}
	if res.Word1 != "лес" || res.Word2 != "подлесок" {
		t.Fatalf("words = %q, %q; want normalised input", res.Word1, res.Word2)
	}
}

func TestClassifyHandler_BadRequests(t *testing.T) {
	h := ClassifyHandler(New(testWords, testTags))
	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"invalid JSON", http.MethodPost, "{", http.StatusBadRequest},
		{"missing word", http.MethodPost, `{"word1": "лес"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(tt.method, "/v1/classify", strings.NewReader(tt.body)))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestClassifyHandler_ParseErrorIsOK(t *testing.T) {
	h := ClassifyHandler(New(testWords, testTags))
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(`{"word1":"пять","word2":"друг"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"UNKNOWN_PARSE_ERROR"`) {
		t.Fatalf("body = %s", rec.Body)
	}
}

func TestDocsHealthAndOpenAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	OpenAPIHandler(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi.json is not valid JSON: %v", err)
	}

	rec = httptest.NewRecorder()
	DocsHandler(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("DocsHandler(/nope) status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	b := &Backends{Classifier: New(testWords, testTags), DecomposerName: "kartaslov", TaggerName: "pymorphy"}
	HealthHandler(b)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("health body %s: %v", rec.Body, err)
	}
	if health["status"] != "ok" || health["decomposer"] != "kartaslov" || health["tagger"] != "pymorphy" {
		t.Fatalf("health = %v", health)
	}

	rec = httptest.NewRecorder()
	DocsHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rec.Body.String(), `Redoc.init("/openapi.json"`) {
		t.Fatalf("docs page does not load /openapi.json: %s", rec.Body)
	}
}
