package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

// AssistantService fronts the generative-language collaborator. Every
// surface degrades to local rule-based logic when the collaborator is
// not configured, errors out or declines to answer.
type AssistantService struct {
	assistant port.Assistant
	catalog   port.CatalogBrowser
}

func NewAssistant(
	assistant port.Assistant, catalog port.CatalogBrowser,
) AssistantService {
	return AssistantService{assistant, catalog}
}

func (s AssistantService) Chat(
	ctx context.Context, message string, history []domain.ChatMessage,
) (domain.ChatReply, error) {
	const op = "AssistantService.Chat"

	if err := ctx.Err(); err != nil {
		return domain.ChatReply{}, fmt.Errorf("%s: %w", op, err)
	}

	products := s.catalogSnapshot(ctx)

	if s.assistant != nil {
		answer, err := s.assistant.Chat(
			ctx, message, history, productContext(products),
		)
		if err == nil && answer != "" {
			return domain.ChatReply{
				Message:     answer,
				Suggestions: suggestionsFor(message, answer),
			}, nil
		}
		if err != nil {
			slog.Warn("assistant chat failed, using rule-based reply",
				"op", op, "err", err)
		}
	}

	return fallbackReply(message), nil
}

func (s AssistantService) Recommend(
	ctx context.Context, q domain.RecommendationQuery,
) ([]domain.Product, error) {
	const op = "AssistantService.Recommend"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := s.catalogSnapshot(ctx)

	if s.assistant != nil {
		ids, err := s.assistant.RecommendIDs(ctx, q, products)
		if err == nil && len(ids) > 0 {
			return pickByID(products, ids), nil
		}
		if err != nil {
			slog.Warn("assistant recommendation failed, using relevance ranking",
				"op", op, "err", err)
		}
	}

	filtered := domain.FilterCatalog(products, q.Criteria())
	return domain.RankByPreferences(filtered, q.Preferences), nil
}

func (s AssistantService) StyleAdvice(
	ctx context.Context, q domain.StyleQuery,
) (domain.StyleAdvice, error) {
	const op = "AssistantService.StyleAdvice"

	if err := ctx.Err(); err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}

	products := s.catalogSnapshot(ctx)

	if s.assistant != nil {
		advice, err := s.assistant.StyleAdvice(ctx, q, products)
		if err == nil {
			return advice, nil
		}
		slog.Warn("assistant style advice failed, using rule-based tips",
			"op", op, "err", err)
	}

	return fallbackStyleAdvice(q, products), nil
}

func (s AssistantService) catalogSnapshot(ctx context.Context) []domain.Product {
	ps, err := s.catalog.Browse(ctx, domain.FilterCriteria{})
	if err != nil {
		return nil
	}
	return ps
}

// productContext renders the catalog as a short plain-text listing for
// the collaborator prompt.
func productContext(products []domain.Product) string {
	const maxContextProducts = 20

	var b strings.Builder
	for i, p := range products {
		if i == maxContextProducts {
			break
		}
		fmt.Fprintf(&b, "- %s (%s, %s): $%.2f - %s\n",
			p.Name, p.Category, p.Style, p.Price, p.Description)
	}
	return b.String()
}

func pickByID(products []domain.Product, ids []int64) []domain.Product {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	picked := make([]domain.Product, 0, len(ids))
	for _, p := range products {
		if _, ok := wanted[p.ID]; !ok {
			continue
		}
		picked = append(picked, p)
		if len(picked) == domain.MaxRecommendations {
			break
		}
	}
	return picked
}

type chatRule struct {
	keywords    []string
	message     string
	suggestions []string
}

var chatRules = []chatRule{
	{
		keywords: []string{"size", "fit"},
		message: "I can help you find the perfect size! Our size guide is " +
			"available on each product page. Would you like me to recommend " +
			"a size based on your measurements?",
		suggestions: []string{"Yes, please", "Show size guide", "Continue shopping"},
	},
	{
		keywords: []string{"return", "refund"},
		message: "We offer a 30-day return policy! You can return items in " +
			"their original condition for a full refund. Would you like help " +
			"with processing a return?",
		suggestions: []string{"Start return", "Check return policy", "Need more help"},
	},
	{
		keywords: []string{"shipping", "delivery"},
		message: "We offer free shipping on orders over $50! Standard " +
			"delivery takes 3-5 business days. Express shipping (2-3 days) " +
			"is available for an additional $10.",
		suggestions: []string{"Check order status", "Track package", "Shipping options"},
	},
	{
		keywords: []string{"recommend", "suggest"},
		message: "I'd love to help you find the perfect outfit! What's the " +
			"occasion? (work, party, casual, sport)",
		suggestions: []string{"Work", "Party", "Casual", "Sport"},
	},
	{
		keywords: []string{"price", "cost"},
		message: "Our prices range from $24.99 to $249.99. We frequently " +
			"have sales and promotions! Would you like to see items in a " +
			"specific price range?",
		suggestions: []string{"Under $50", "$50-$100", "Over $100", "View all"},
	},
}

func fallbackReply(message string) domain.ChatReply {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return domain.ChatReply{
					Message:     rule.message,
					Suggestions: rule.suggestions,
				}
			}
		}
	}
	return domain.ChatReply{
		Message: "I'm here to help with your fashion needs! I can assist " +
			"with size recommendations, styling advice, returns, shipping, " +
			"and product suggestions. What would you like to know?",
		Suggestions: []string{
			"Product recommendations", "Size help", "Shipping info", "Returns",
		},
	}
}

type suggestionRule struct {
	messageKeywords  []string
	responseKeywords []string
	suggestions      []string
}

var suggestionRules = []suggestionRule{
	{
		messageKeywords: []string{"party", "event", "occasion"},
		suggestions:     []string{"Show me dresses", "What about shoes?", "Accessories too", "View all products"},
	},
	{
		messageKeywords: []string{"summer", "beach", "casual"},
		suggestions:     []string{"Show casual wear", "Summer dresses", "Comfortable shoes", "Browse all"},
	},
	{
		messageKeywords: []string{"work", "professional", "office"},
		suggestions:     []string{"Show blazers", "Professional attire", "Work shoes", "View collection"},
	},
	{
		messageKeywords:  []string{"size", "fit"},
		responseKeywords: []string{"size"},
		suggestions:      []string{"Yes, help me", "Show size guide", "Continue shopping"},
	},
	{
		messageKeywords:  []string{"return", "refund"},
		responseKeywords: []string{"return"},
		suggestions:      []string{"Return policy", "Start return", "Contact support"},
	},
	{
		messageKeywords:  []string{"shipping", "delivery"},
		responseKeywords: []string{"shipping"},
		suggestions:      []string{"Track order", "Shipping options", "Delivery time"},
	},
	{
		messageKeywords: []string{"price", "cost", "budget"},
		suggestions:     []string{"Under $50", "$50-$100", "Over $100", "View all"},
	},
	{
		responseKeywords: []string{"recommend", "suggest", "options"},
		suggestions:      []string{"Show me more", "Different style", "View products", "Tell me more"},
	},
}

// suggestionsFor derives quick replies from the user message and the
// assistant answer.
func suggestionsFor(message, answer string) []string {
	lowerMsg := strings.ToLower(message)
	lowerAns := strings.ToLower(answer)

	for _, rule := range suggestionRules {
		for _, kw := range rule.messageKeywords {
			if strings.Contains(lowerMsg, kw) {
				return rule.suggestions
			}
		}
		for _, kw := range rule.responseKeywords {
			if strings.Contains(lowerAns, kw) {
				return rule.suggestions
			}
		}
	}
	return []string{"Browse products", "Get recommendations", "Size help", "Shipping info"}
}

func fallbackStyleAdvice(
	q domain.StyleQuery, products []domain.Product,
) domain.StyleAdvice {
	const maxStylePicks = 3

	advice := domain.StyleAdvice{BodyType: q.BodyType}
	if advice.BodyType == "" {
		advice.BodyType = "regular"
	}

	switch strings.ToLower(q.BodyType) {
	case "petite":
		advice.Tips = []string{
			"Choose high-waisted pieces to elongate your frame",
			"Opt for fitted clothing to avoid overwhelming your frame",
		}
		advice.Recommendations = pickByCategory(
			products, maxStylePicks, "Tops", "Dresses",
		)
	case "tall":
		advice.Tips = []string{
			"Longer silhouettes will complement your height",
			"Experiment with layering for visual interest",
		}
		advice.Recommendations = pickByCategory(
			products, maxStylePicks, "Outerwear", "Dresses",
		)
	default:
		advice.Tips = []string{
			"Balance is key - pair fitted with loose pieces",
			"Create vertical lines with your outfits to appear taller",
		}
		if len(products) > maxStylePicks {
			products = products[:maxStylePicks]
		}
		advice.Recommendations = products
	}

	if q.Occasion != "" {
		advice.Tips = append(advice.Tips, fmt.Sprintf(
			"For %s, consider pieces that reflect your personal style "+
				"while being appropriate for the setting.", q.Occasion,
		))
	}
	return advice
}

func pickByCategory(
	products []domain.Product, limit int, categories ...string,
) []domain.Product {
	var picked []domain.Product
	for _, p := range products {
		if !containsCategory(categories, p.Category) {
			continue
		}
		picked = append(picked, p)
		if len(picked) == limit {
			break
		}
	}
	return picked
}

func containsCategory(cs []string, v string) bool {
	for _, c := range cs {
		if c == v {
			return true
		}
	}
	return false
}
