package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStripMarkdownFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```\n{}\n```  ", "{}"},
	}
	for _, tt := range tests {
		if got := stripMarkdownFence(tt.in); got != tt.want {
			t.Errorf("stripMarkdownFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyze_OpenAI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer k" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer k")
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || !strings.Contains(req.Messages[1].Content, "дружба") {
			t.Errorf("messages = %+v, want the word in the user message", req.Messages)
		}
		content := "```json\n" + `{"word":"дружба","pos":"NOUN","morphemes":[{"text":"друж","type":"корень"},{"text":"б","type":"суффикс"},{"text":"а","type":"окончание"}]}` + "\n```"
		resp := map[string]any{"choices": []any{map[string]any{"message": map[string]string{"content": content}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := New("k", "", srv.URL+"/")
	a, err := c.Analyze(context.Background(), "дружба")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if a.POS != "NOUN" || len(a.Morphemes) != 3 || a.Morphemes[0].Text != "друж" {
		t.Fatalf("Analyze() = %+v", a)
	}
}

func TestAnalyze_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	_, err := New("x", "m", srv.URL).Analyze(context.Background(), "дом")
	if err == nil || !strings.Contains(err.Error(), "bad key") {
		t.Fatalf("Analyze() error = %v, want API error", err)
	}
}

func TestNewGemini_EmptyKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), "  ", ""); err == nil {
		t.Fatal("NewGemini() error = nil, want empty key error")
	}
}

func TestClient_Defaults(t *testing.T) {
	c := New("k", "", "")
	if c.Provider() != ProviderOpenAI || c.Model() != DefaultModel {
		t.Fatalf("Provider() = %q, Model() = %q", c.Provider(), c.Model())
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() on an OpenAI client = %v, want nil", err)
	}
}
