// Package net fetches pages through a browser-fingerprinted TLS client so
// that kartaslov serves the same markup it serves to Chrome.
package net

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// DefaultBase is the kartaslov origin.
const DefaultBase = "https://kartaslov.ru"

// morphemicsPath is the "разбор слова по составу" section.
const morphemicsPath = "разбор-слова-по-составу"

// Client wraps a tls-client session (keep-alive, TLS session reuse).
type Client struct {
	base string
	hc   tls_client.HttpClient
}

// Options configures NewClient. Zero values fall back to defaults.
type Options struct {
	Base           string
	TimeoutSeconds int
	// Insecure skips certificate verification (test servers only).
	Insecure bool
}

// NewClient builds a Client with a Chrome profile.
func NewClient(opt Options) (*Client, error) {
	if opt.Base == "" {
		opt.Base = DefaultBase
	}
	if opt.TimeoutSeconds <= 0 {
		opt.TimeoutSeconds = 10
	}
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(opt.TimeoutSeconds),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	}
	if opt.Insecure {
		options = append(options, tls_client.WithInsecureSkipVerify())
	}
	hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("net: tls client: %w", err)
	}
	return &Client{base: strings.TrimRight(opt.Base, "/"), hc: hc}, nil
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the shared client for DefaultBase.
func Default() (*Client, error) {
	defaultOnce.Do(func() { defaultClient, defaultErr = NewClient(Options{}) })
	return defaultClient, defaultErr
}

// MorphemicsURL is the page describing word's morpheme structure.
func (c *Client) MorphemicsURL(word string) string {
	return c.base + "/" + url.PathEscape(morphemicsPath) + "/" + url.PathEscape(word)
}

// FetchMorphemics GETs the morphemics page for word. A non-200 status is an
// error; the body is returned as-is.
func (c *Client) FetchMorphemics(ctx context.Context, word string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.MorphemicsURL(word), nil)
	if err != nil {
		return nil, err
	}
	req.Header = http.Header{
		"accept":          {"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		"accept-language": {"ru-RU,ru;q=0.9,en;q=0.8"},
		"user-agent":      {ua},
		http.HeaderOrderKey: {
			"accept",
			"accept-language",
			"user-agent",
		},
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("net: GET %s: %w", word, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("net: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return body, &StatusError{Code: resp.StatusCode}
	}
	return body, nil
}

// StatusError is a non-200 answer from kartaslov.
type StatusError struct{ Code int }

func (e *StatusError) Error() string { return fmt.Sprintf("net: unexpected status %d", e.Code) }

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
