package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/entaudit"
)

// DefaultLanguageEndpoint is the Google Cloud Natural Language
// analyzeEntities endpoint.
const DefaultLanguageEndpoint = "https://language.googleapis.com/v1/documents:analyzeEntities"

// MaxAnalyzeChars caps the text sent to the Natural Language API.
// Longer input is truncated before the call.
const MaxAnalyzeChars = 100000

// Ensure EntityExtractor implements entaudit.EntityExtractor at compile time.
var _ entaudit.EntityExtractor = (*EntityExtractor)(nil)

// EntityExtractor detects salient entities using the Google Cloud
// Natural Language REST API.
type EntityExtractor struct {
	client   *http.Client
	apiKey   string
	endpoint string
	maxChars int
}

// ExtractorOption configures an EntityExtractor.
type ExtractorOption func(*EntityExtractor)

// WithEndpoint overrides the API endpoint. Used by tests.
func WithEndpoint(endpoint string) ExtractorOption {
	return func(e *EntityExtractor) {
		e.endpoint = endpoint
	}
}

// WithMaxChars overrides the truncation limit for analyzed text.
func WithMaxChars(n int) ExtractorOption {
	return func(e *EntityExtractor) {
		e.maxChars = n
	}
}

// NewEntityExtractor creates an EntityExtractor authenticating with the
// given API key.
func NewEntityExtractor(apiKey string, opts ...ExtractorOption) *EntityExtractor {
	e := &EntityExtractor{
		client:   &http.Client{Timeout: 30 * time.Second},
		apiKey:   apiKey,
		endpoint: DefaultLanguageEndpoint,
		maxChars: MaxAnalyzeChars,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// truncateRunes caps text at max characters without splitting a rune.
func truncateRunes(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max])
}

// analyzeRequest is the REST request body.
type analyzeRequest struct {
	Document     analyzeDocument `json:"document"`
	EncodingType string          `json:"encodingType"`
}

type analyzeDocument struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// analyzeResponse is the subset of the REST response the pipeline uses.
type analyzeResponse struct {
	Entities []struct {
		Name     string  `json:"name"`
		Salience float64 `json:"salience"`
	} `json:"entities"`
}

// ExtractEntities returns the entities the Natural Language API detects
// in text, in the API's own (salience-descending) order. Text beyond
// the truncation limit is dropped before the call. An empty entity list
// is a valid result.
func (e *EntityExtractor) ExtractEntities(ctx context.Context, text string) ([]entaudit.RawEntity, error) {
	if text == "" {
		return []entaudit.RawEntity{}, nil
	}
	text = truncateRunes(text, e.maxChars)

	body, err := json.Marshal(analyzeRequest{
		Document:     analyzeDocument{Type: "PLAIN_TEXT", Content: text},
		EncodingType: "UTF8",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+"?key="+e.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, entaudit.Errorf(entaudit.EUNAVAILABLE, "natural language API unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, entaudit.Errorf(entaudit.EUNAVAILABLE, "natural language API returned HTTP %d: %s", resp.StatusCode, detail)
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding analyzeEntities response: %w", err)
	}

	entities := make([]entaudit.RawEntity, 0, len(parsed.Entities))
	for _, ent := range parsed.Entities {
		if ent.Name == "" {
			continue
		}
		entities = append(entities, entaudit.RawEntity{Name: ent.Name, Salience: ent.Salience})
	}

	return entities, nil
}
