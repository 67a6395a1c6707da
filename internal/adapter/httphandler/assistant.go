package httphandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zarshop/storefront/internal/core/domain"
)

// POST v1/assistant/chat JSON {"message", "history"} (200 OK)
// POST v1/assistant/recommendations JSON {"preferences", "budget", "occasion", "style"} (200 OK)
// POST v1/assistant/style-advisor JSON {"body_type", "preferences", "occasion"} (200 OK)

type assistantService interface {
	Chat(ctx context.Context, message string, history []domain.ChatMessage) (domain.ChatReply, error)
	Recommend(ctx context.Context, q domain.RecommendationQuery) ([]domain.Product, error)
	StyleAdvice(ctx context.Context, q domain.StyleQuery) (domain.StyleAdvice, error)
}

type AssistantHandler struct {
	assistant assistantService
}

func RegisterAssistant(mux *http.ServeMux, assistant assistantService) {
	h := AssistantHandler{assistant}
	mux.HandleFunc("POST /v1/assistant/chat", h.PostChat)
	mux.HandleFunc("POST /v1/assistant/recommendations", h.PostRecommendations)
	mux.HandleFunc("POST /v1/assistant/style-advisor", h.PostStyleAdvisor)
}

func (h AssistantHandler) PostChat(w http.ResponseWriter, r *http.Request) {
	const op = "AssistantHandler.PostChat"
	log := slog.With("op", op)

	var req struct {
		Message string        `json:"message"`
		History []ChatMessage `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply, err := h.assistant.Chat(
		r.Context(), req.Message, toChatHistory(req.History),
	)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ChatReply{
		Message:     reply.Message,
		Suggestions: reply.Suggestions,
	})
}

func (h AssistantHandler) PostRecommendations(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "AssistantHandler.PostRecommendations"
	log := slog.With("op", op)

	var req struct {
		Preferences []string `json:"preferences"`
		Budget      *float64 `json:"budget"`
		Occasion    string   `json:"occasion"`
		Style       string   `json:"style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	ps, err := h.assistant.Recommend(r.Context(), domain.RecommendationQuery{
		Preferences: req.Preferences,
		Budget:      req.Budget,
		Occasion:    req.Occasion,
		Style:       req.Style,
	})
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h AssistantHandler) PostStyleAdvisor(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "AssistantHandler.PostStyleAdvisor"
	log := slog.With("op", op)

	var req struct {
		BodyType    string   `json:"body_type"`
		Preferences []string `json:"preferences"`
		Occasion    string   `json:"occasion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	advice, err := h.assistant.StyleAdvice(r.Context(), domain.StyleQuery{
		BodyType:    req.BodyType,
		Preferences: req.Preferences,
		Occasion:    req.Occasion,
	})
	if err != nil {
		writeErr(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, StyleAdvice{
		BodyType:        advice.BodyType,
		Tips:            advice.Tips,
		Recommendations: toProducts(advice.Recommendations),
	})
}
