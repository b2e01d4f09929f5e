// Package gemini implements entaudit collaborators backed by the
// Google Gemini API: the content auditor and a schema-constrained
// entity extractor usable when no Natural Language API key is
// available.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/entaudit"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Auditor implements entaudit.Auditor at compile time.
var _ entaudit.Auditor = (*Auditor)(nil)

// Auditor implements entaudit.Auditor using Google Gemini.
type Auditor struct {
	client *genai.Client
	model  string
}

// NewAuditor creates a new Auditor. An empty model selects DefaultModel.
func NewAuditor(client *genai.Client, model string) *Auditor {
	if model == "" {
		model = DefaultModel
	}
	return &Auditor{client: client, model: model}
}

// Audit asks Gemini whether the detected entities match the page's
// likely topic and returns the structured verdict.
func (a *Auditor) Audit(ctx context.Context, req entaudit.AuditRequest) (*entaudit.AuditVerdict, error) {
	if req.Main.Name == "" {
		return nil, entaudit.Errorf(entaudit.EINVALID, "main entity required")
	}

	prompt := BuildAuditPrompt(req)
	config := BuildAuditConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, entaudit.Errorf(entaudit.EUNAVAILABLE, "gemini audit failed: %v", err)
	}
	if result == nil {
		return nil, entaudit.Errorf(entaudit.EINTERNAL, "gemini returned nil result")
	}

	return ParseVerdict(result.Text())
}

// BuildAuditConfig returns the GenerateContentConfig for audit calls.
// The response schema constrains Gemini to the verdict JSON shape.
func BuildAuditConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"verdict": {
					Type: genai.TypeString,
					Enum: []string{"Pass", "Fail", "Review"},
				},
				"reasoning":      {Type: genai.TypeString},
				"recommendation": {Type: genai.TypeString},
			},
			Required: []string{"verdict", "reasoning", "recommendation"},
		},
	}
}

// BuildAuditPrompt builds the audit prompt from the detected entities.
func BuildAuditPrompt(req entaudit.AuditRequest) string {
	subNames := make([]string, 0, len(req.Subs))
	for _, sub := range req.Subs {
		subNames = append(subNames, sub.Name)
	}

	var sb strings.Builder
	sb.WriteString("You are a technical SEO Auditor.\n")
	if req.URL != "" {
		fmt.Fprintf(&sb, "URL: %s\n", req.URL)
	}
	fmt.Fprintf(&sb, "Main Entity Detected: %q (Salience Score: %.2f)\n", req.Main.Name, req.Main.Score)
	fmt.Fprintf(&sb, "Sub-Entities Detected: %s\n", strings.Join(subNames, ", "))
	if req.TargetFocus != "" {
		fmt.Fprintf(&sb, "Intended Topic: %s\n", req.TargetFocus)
	}
	sb.WriteString("\nTask: Audit if the content actually focuses on the user's search intent.\n\n")
	sb.WriteString("1. If Main Entity is generic (e.g. 'Home', 'Login', 'Cookies', Brand Name), ignore it.\n")
	sb.WriteString("2. Look at the Sub-Entities. Do they match the likely topic of the page?\n")
	if req.TargetFocus != "" {
		sb.WriteString("3. Does the content match the intended topic stated above?\n")
		sb.WriteString("4. Is the content 'thin' or 'off-topic'?\n")
	} else {
		sb.WriteString("3. Is the content 'thin' or 'off-topic'?\n")
	}
	return sb.String()
}

// verdictResponse mirrors the response schema.
type verdictResponse struct {
	Verdict        string `json:"verdict"`
	Reasoning      string `json:"reasoning"`
	Recommendation string `json:"recommendation"`
}

// ParseVerdict parses the model's JSON response into an AuditVerdict.
// An unparseable response is an internal error, not a verdict.
func ParseVerdict(text string) (*entaudit.AuditVerdict, error) {
	var parsed verdictResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, entaudit.Errorf(entaudit.EINTERNAL, "unparseable audit response: %v", err)
	}
	if parsed.Verdict == "" {
		return nil, entaudit.Errorf(entaudit.EINTERNAL, "audit response missing verdict")
	}

	verdict := &entaudit.AuditVerdict{
		Status:         entaudit.ParseVerdictStatus(parsed.Verdict),
		Reasoning:      parsed.Reasoning,
		Recommendation: parsed.Recommendation,
	}
	if verdict.Reasoning == "" {
		verdict.Reasoning = "no reasoning provided"
	}
	if verdict.Recommendation == "" {
		verdict.Recommendation = "No action suggested"
	}
	return verdict, nil
}
