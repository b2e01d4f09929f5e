package gemini

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/fwojciec/entaudit"
	"google.golang.org/genai"
)

// MaxExtractChars caps the text sent to Gemini for entity extraction,
// matching the Natural Language extractor's limit.
const MaxExtractChars = 100000

// Ensure EntityExtractor implements entaudit.EntityExtractor at compile time.
var _ entaudit.EntityExtractor = (*EntityExtractor)(nil)

// EntityExtractor detects salient entities using Gemini with a
// schema-constrained JSON response. It is a fallback for runs without
// a Natural Language API key; salience scores are model estimates
// rather than corpus statistics.
type EntityExtractor struct {
	client *genai.Client
	model  string
}

// NewEntityExtractor creates a Gemini-backed EntityExtractor.
// An empty model selects DefaultModel.
func NewEntityExtractor(client *genai.Client, model string) *EntityExtractor {
	if model == "" {
		model = DefaultModel
	}
	return &EntityExtractor{client: client, model: model}
}

// ExtractEntities returns the entities Gemini detects in text with
// estimated salience scores. An empty entity list is a valid result.
func (e *EntityExtractor) ExtractEntities(ctx context.Context, text string) ([]entaudit.RawEntity, error) {
	if text == "" {
		return []entaudit.RawEntity{}, nil
	}
	if utf8.RuneCountInString(text) > MaxExtractChars {
		text = string([]rune(text)[:MaxExtractChars])
	}

	prompt := BuildExtractPrompt(text)
	config := BuildExtractConfig()

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, entaudit.Errorf(entaudit.EUNAVAILABLE, "gemini entity extraction failed: %v", err)
	}
	if result == nil {
		return nil, entaudit.Errorf(entaudit.EINTERNAL, "gemini returned nil result")
	}

	return ParseEntities(result.Text())
}

// BuildExtractConfig returns the GenerateContentConfig for extraction
// calls. The response schema constrains Gemini to an entity array.
func BuildExtractConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"entities": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":     {Type: genai.TypeString},
							"salience": {Type: genai.TypeNumber},
						},
						Required: []string{"name", "salience"},
					},
				},
			},
			Required: []string{"entities"},
		},
	}
}

// BuildExtractPrompt builds the entity extraction prompt.
func BuildExtractPrompt(text string) string {
	return "Extract the named entities and salient topics from the following text. " +
		"For each entity, estimate a salience score between 0 and 1 reflecting how " +
		"central it is to the text. Order entities by salience, most salient first.\n\n" +
		"Text:\n" + text
}

// entitiesResponse mirrors the extraction response schema.
type entitiesResponse struct {
	Entities []struct {
		Name     string  `json:"name"`
		Salience float64 `json:"salience"`
	} `json:"entities"`
}

// ParseEntities parses the model's JSON response into raw entities.
func ParseEntities(text string) ([]entaudit.RawEntity, error) {
	var parsed entitiesResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, entaudit.Errorf(entaudit.EINTERNAL, "unparseable extraction response: %v", err)
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
