package domain

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role ChatRole
	Text string
}

// A ChatReply is the assistant answer plus follow-up suggestions
// rendered as quick-reply chips.
type ChatReply struct {
	Message     string
	Suggestions []string
}

// A RecommendationQuery collects the shopper inputs for the
// recommendation surface.
type RecommendationQuery struct {
	Preferences []string
	Budget      *float64
	Occasion    string
	Style       string
}

// Criteria maps the query onto catalog filter criteria for the
// non-generative fallback path.
func (q RecommendationQuery) Criteria() FilterCriteria {
	return FilterCriteria{
		Style:    q.Style,
		Budget:   q.Budget,
		Occasion: q.Occasion,
	}
}

type StyleQuery struct {
	BodyType    string
	Preferences []string
	Occasion    string
}

type StyleAdvice struct {
	BodyType        string
	Tips            []string
	Recommendations []Product
}

// A ProductView records one product-detail visit for popularity
// aggregation.
type ProductView struct {
	ProductID int64
	UserID    int64
	At        time.Time
}

type ProductViewCount struct {
	ProductID int64
	Count     int64
}
