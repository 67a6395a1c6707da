package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
	"google.golang.org/genai"
)

var _ port.Assistant = (*GeminiAssistant)(nil)

const defaultModel = "gemini-2.0-flash"

// GeminiAssistant backs the shopping assistant with the Gemini API.
type GeminiAssistant struct {
	client *genai.Client
	model  string
}

func NewGeminiAssistant(
	ctx context.Context, apiKey, model string,
) (*GeminiAssistant, error) {
	const op = "NewGeminiAssistant"

	if apiKey == "" {
		return nil, fmt.Errorf("%s: api key is required", op)
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &GeminiAssistant{client: client, model: model}, nil
}

func (a *GeminiAssistant) Chat(
	ctx context.Context, message string,
	history []domain.ChatMessage, productContext string,
) (string, error) {
	const op = "GeminiAssistant.Chat"

	var b strings.Builder
	b.WriteString("You are a helpful shopping assistant for a women's ")
	b.WriteString("fashion store. Answer briefly and concretely, and only ")
	b.WriteString("recommend items from the catalog below.\n\nCatalog:\n")
	b.WriteString(productContext)
	b.WriteString("\n\nConversation:\n")
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Text)
	}
	fmt.Fprintf(&b, "user: %s\n", message)

	answer, err := a.generate(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return answer, nil
}

var idListRe = regexp.MustCompile(`\[[\d,\s]*\]`)

func (a *GeminiAssistant) RecommendIDs(
	ctx context.Context, q domain.RecommendationQuery,
	products []domain.Product,
) ([]int64, error) {
	const op = "GeminiAssistant.RecommendIDs"

	var b strings.Builder
	b.WriteString("Pick up to 6 products matching the shopper. Reply with ")
	b.WriteString("ONLY a JSON array of product ids, e.g. [1, 4, 7].\n\n")
	fmt.Fprintf(&b, "Preferences: %s\n", strings.Join(q.Preferences, ", "))
	if q.Budget != nil {
		fmt.Fprintf(&b, "Budget: %.2f\n", *q.Budget)
	}
	if q.Occasion != "" {
		fmt.Fprintf(&b, "Occasion: %s\n", q.Occasion)
	}
	if q.Style != "" {
		fmt.Fprintf(&b, "Style: %s\n", q.Style)
	}
	b.WriteString("\nCatalog:\n")
	writeProductLines(&b, products)

	answer, err := a.generate(ctx, b.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	match := idListRe.FindString(answer)
	if match == "" {
		return nil, fmt.Errorf("%s: no id list in model reply", op)
	}

	var ids []int64
	if err := json.Unmarshal([]byte(match), &ids); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

func (a *GeminiAssistant) StyleAdvice(
	ctx context.Context, q domain.StyleQuery,
	products []domain.Product,
) (domain.StyleAdvice, error) {
	const op = "GeminiAssistant.StyleAdvice"

	var b strings.Builder
	b.WriteString("You are a personal stylist. Reply with ONLY a JSON ")
	b.WriteString(`object {"tips": [...], "product_ids": [...]} holding `)
	b.WriteString("3-5 styling tips and up to 3 catalog product ids.\n\n")
	fmt.Fprintf(&b, "Body type: %s\n", q.BodyType)
	fmt.Fprintf(&b, "Preferences: %s\n", strings.Join(q.Preferences, ", "))
	if q.Occasion != "" {
		fmt.Fprintf(&b, "Occasion: %s\n", q.Occasion)
	}
	b.WriteString("\nCatalog:\n")
	writeProductLines(&b, products)

	answer, err := a.generate(ctx, b.String())
	if err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}

	var parsed struct {
		Tips       []string `json:"tips"`
		ProductIDs []int64  `json:"product_ids"`
	}
	jsonPart := answer
	if i := strings.Index(answer, "{"); i >= 0 {
		if j := strings.LastIndex(answer, "}"); j > i {
			jsonPart = answer[i : j+1]
		}
	}
	if err := json.Unmarshal([]byte(jsonPart), &parsed); err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	var recs []domain.Product
	for _, id := range parsed.ProductIDs {
		if p, ok := byID[id]; ok {
			recs = append(recs, p)
		}
	}

	return domain.StyleAdvice{
		BodyType:        q.BodyType,
		Tips:            parsed.Tips,
		Recommendations: recs,
	}, nil
}

func (a *GeminiAssistant) generate(
	ctx context.Context, prompt string,
) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := a.client.Models.GenerateContent(
		ctx, a.model, contents, nil,
	)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty model reply")
	}
	return text, nil
}

func writeProductLines(b *strings.Builder, products []domain.Product) {
	for _, p := range products {
		fmt.Fprintf(b,
			"id=%d name=%q category=%s style=%s price=%.2f\n",
			p.ID, p.Name, p.Category, p.Style, p.Price,
		)
	}
}
