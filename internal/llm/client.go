// Package llm asks a language model for a word's morphemes and part of
// speech. OpenAI-compatible chat completions and Gemini are supported.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	DefaultModel       = "gpt-5-mini"
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultGeminiModel = "gemini-2.5-flash"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Client analyses words with one provider.
type Client struct {
	provider string
	baseURL  string
	apiKey   string
	model    string
	client   *http.Client

	gemini *genai.Client
	gm     *genai.GenerativeModel
}

// New creates an OpenAI-compatible Client.
// Unset fields fall back to their defaults.
func New(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		provider: ProviderOpenAI,
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// NewGemini creates a Client for the Gemini API. The underlying connection
// is opened once and released by Close.
func NewGemini(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("llm: gemini API key is empty")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("llm: gemini client: %w", err)
	}

	m := cl.GenerativeModel(model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	return &Client{provider: ProviderGemini, apiKey: apiKey, model: model, gemini: cl, gm: m}, nil
}

// Close releases the Gemini connection; it is a no-op for OpenAI.
func (c *Client) Close() error {
	if c.gemini == nil {
		return nil
	}
	return c.gemini.Close()
}

// Provider is ProviderOpenAI or ProviderGemini.
func (c *Client) Provider() string { return c.provider }

// Model is the model name requests go to.
func (c *Client) Model() string { return c.model }

// --- response structs ---

type Morpheme struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Analysis is the model's answer for one word. Types and POS are raw
// strings; the caller canonicalises them.
type Analysis struct {
	Word      string     `json:"word"`
	POS       string     `json:"pos"`
	Morphemes []Morpheme `json:"morphemes"`
}

// Analyze returns the morphemes and POS of word.
func (c *Client) Analyze(ctx context.Context, word string) (*Analysis, error) {
	var (
		content string
		err     error
	)
	switch c.provider {
	case ProviderGemini:
		content, err = c.generateGemini(ctx, word)
	default:
		content, err = c.complete(ctx, word)
	}
	if err != nil {
		return nil, err
	}

	content = stripMarkdownFence(content)
	var a Analysis
	if err := json.Unmarshal([]byte(content), &a); err != nil {
		return nil, fmt.Errorf("llm: parse JSON output: %w\ncontent: %s", err, content)
	}
	return &a, nil
}

// --- OpenAI wire types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) complete(ctx context.Context, word string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage(word)},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read body: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(raw, &chatResp); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("llm: API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("llm: empty choices (status %d)", resp.StatusCode)
	}
	return chatResp.Choices[0].Message.Content, nil
}

func (c *Client) generateGemini(ctx context.Context, word string) (string, error) {
	resp, err := c.gm.GenerateContent(ctx, genai.Text(userMessage(word)))
	if err != nil {
		return "", fmt.Errorf("llm: gemini: %w", err)
	}
	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("llm: gemini: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }

func userMessage(word string) string {
	return "Слово: " + word
}

// stripMarkdownFence removes optional ```json ... ``` wrapping from LLM output.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

const systemPrompt = `Ты — специалист по морфемике русского языка. Разбери слово по составу и определи часть речи. Отвечай только JSON.

Правила:
- Морфемы перечисляй в порядке следования в слове; конкатенация text всех морфем (кроме нулевого окончания) должна давать слово.
- type — одно из: "приставка", "корень", "соединительная гласная", "суффикс", "окончание", "глагольное окончание", "нулевое окончание", "постфикс".
- Нулевое окончание указывай с пустым text.
- pos — тег OpenCorpora для самого частотного разбора: NOUN, ADJF, ADJS, COMP, VERB, INFN, PRTF, PRTS, GRND, NUMR, ADVB, NPRO, PRED, PREP, CONJ, PRCL, INTJ.
- word — разбираемое слово без изменений.

Формат (только JSON, без Markdown):
{
  "word": "<слово>",
  "pos": "<тег>",
  "morphemes": [
    {"text": "<морфема>", "type": "<тип>"}
  ]
}`
