// Package gemini implements data enrichment using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/shopsight"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// categorizeSampleSize bounds how many products are summarized in the
// categorization prompt.
const categorizeSampleSize = 20

// Ensure Enricher implements shopsight.Enricher at compile time.
var _ shopsight.Enricher = (*Enricher)(nil)

// Enricher implements shopsight.Enricher using Google Gemini.
type Enricher struct {
	client *genai.Client
}

// NewEnricher creates a new Enricher.
func NewEnricher(client *genai.Client) *Enricher {
	return &Enricher{client: client}
}

// StructureFAQs asks the model to clean up raw FAQ pairs. An empty input is
// returned as-is without a model call; a response that yields no pairs
// falls back to the input.
func (e *Enricher) StructureFAQs(ctx context.Context, faqs []shopsight.FAQ) ([]shopsight.FAQ, error) {
	if len(faqs) == 0 {
		return faqs, nil
	}

	text, err := e.generate(ctx, "You are a helpful assistant that structures FAQ data.", BuildFAQPrompt(faqs))
	if err != nil {
		return nil, err
	}

	var payload struct {
		FAQs []shopsight.FAQ `json:"faqs"`
	}
	if err := json.Unmarshal([]byte(StripJSONFence(text)), &payload); err != nil {
		return nil, shopsight.Errorf(shopsight.ELLM, "unparsable FAQ structuring response: %v", err)
	}
	if len(payload.FAQs) == 0 {
		return faqs, nil
	}
	return payload.FAQs, nil
}

// EnhanceDescription rewrites a brand description to be clearer and more
// engaging while preserving its meaning.
func (e *Enricher) EnhanceDescription(ctx context.Context, description string) (string, error) {
	if description == "" {
		return "", nil
	}

	text, err := e.generate(ctx, "You are a brand copywriter that enhances brand descriptions.", BuildDescriptionPrompt(description))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// CategorizeProducts groups products into logical categories. At most
// categorizeSampleSize products are included in the prompt.
func (e *Enricher) CategorizeProducts(ctx context.Context, products []shopsight.Product) (map[string][]string, error) {
	if len(products) == 0 {
		return map[string][]string{}, nil
	}

	text, err := e.generate(ctx, "You are a product categorization expert.", BuildCategorizePrompt(products))
	if err != nil {
		return nil, err
	}

	var categories map[string][]string
	if err := json.Unmarshal([]byte(StripJSONFence(text)), &categories); err != nil {
		return nil, shopsight.Errorf(shopsight.ELLM, "unparsable categorization response: %v", err)
	}
	return categories, nil
}

func (e *Enricher) generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if e.client == nil {
		return "", shopsight.Errorf(shopsight.ECONFIG, "gemini client not configured")
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(systemInstruction),
	)
	if err != nil {
		return "", shopsight.Errorf(shopsight.ELLM, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", shopsight.Errorf(shopsight.ELLM, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(systemInstruction string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// BuildFAQPrompt builds the user prompt for FAQ structuring.
func BuildFAQPrompt(faqs []shopsight.FAQ) string {
	var sb strings.Builder
	sb.WriteString("Structure the following FAQ data into a clean format. For each FAQ, ensure the question and answer are clear and properly formatted.\n\n")
	for i, faq := range faqs {
		fmt.Fprintf(&sb, "%d. Q: %s\n   A: %s\n\n", i+1, faq.Question, faq.Answer)
	}
	sb.WriteString("Return a JSON object of the form {\"faqs\": [{\"question\": \"...\", \"answer\": \"...\"}]}. Return only valid JSON.")
	return sb.String()
}

// BuildDescriptionPrompt builds the user prompt for description enhancement.
func BuildDescriptionPrompt(description string) string {
	var sb strings.Builder
	sb.WriteString("Enhance and structure the following brand description. Make it more professional and engaging while maintaining accuracy:\n\n")
	sb.WriteString(description)
	sb.WriteString("\n\nReturn only the enhanced description, no additional text.")
	return sb.String()
}

// BuildCategorizePrompt builds the user prompt for product categorization.
func BuildCategorizePrompt(products []shopsight.Product) string {
	if len(products) > categorizeSampleSize {
		products = products[:categorizeSampleSize]
	}
	var sb strings.Builder
	sb.WriteString("Categorize the following products into logical categories. Return a JSON object with categories as keys and lists of product IDs as values.\n\nProducts:\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "ID: %s, Title: %s, Type: %s\n", p.ID, p.Title, p.ProductType)
	}
	sb.WriteString("\nReturn only valid JSON.")
	return sb.String()
}

// StripJSONFence removes a surrounding Markdown code fence from a model
// response, tolerating an optional language tag.
func StripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
