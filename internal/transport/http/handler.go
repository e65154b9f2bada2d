package http

import (
	"encoding/json"
	"net/http"

	"slopbowl-service/internal/app"
	"slopbowl-service/internal/domain"
)

// maxNameLength bounds the display name embedded in generation prompts.
const maxNameLength = 70

// Handler exposes the quiz API over plain HTTP/JSON.
type Handler struct {
	roasts *app.RoastService
	orders *app.OrderService
}

func NewHandler(roasts *app.RoastService, orders *app.OrderService) *Handler {
	return &Handler{roasts: roasts, orders: orders}
}

// Register wires the API routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/questions", h.Questions)
	mux.HandleFunc("/api/score", h.ScoreAnswers)
	mux.HandleFunc("/api/result", h.GenerateResult)
	mux.HandleFunc("/api/order-count", h.OrderCount)
}

// Questions serves the active question catalog.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.roasts.Catalog(r.Context()))
}

type scoreRequest struct {
	Answers []domain.Answer `json:"answers"`
}

type scoreResponse struct {
	Winner      domain.Category        `json:"winner"`
	Scores      domain.ScoreVector     `json:"scores"`
	Percentages []domain.CategoryShare `json:"percentages"`
}

// ScoreAnswers computes the winning category and display percentages for a
// full answer set.
func (h *Handler) ScoreAnswers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, percentages := h.roasts.ScoreAnswers(r.Context(), req.Answers)
	writeJSON(w, http.StatusOK, scoreResponse{
		Winner:      result.Winner,
		Scores:      result.Scores,
		Percentages: percentages,
	})
}

type resultRequest struct {
	Category domain.Category `json:"category"`
	Answers  []domain.Answer `json:"answers"`
	Name     string          `json:"name"`
}

// GenerateResult produces the roast triple for an already-scored submission.
// The submitted category is echoed back unchanged; generation failures are
// absorbed by the service, so this endpoint never returns an error state for
// a valid request.
func (h *Handler) GenerateResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Category.Valid() {
		http.Error(w, domain.ErrUnknownCategory.Error(), http.StatusBadRequest)
		return
	}

	name := req.Name
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	roast := h.roasts.GenerateRoast(r.Context(), req.Category, req.Answers, name)
	writeJSON(w, http.StatusOK, roast)
}

type countResponse struct {
	Count int `json:"count"`
}

// OrderCount reads (GET) or increments (POST) the shared order counter.
func (h *Handler) OrderCount(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, countResponse{Count: h.orders.Count(r.Context())})
	case http.MethodPost:
		writeJSON(w, http.StatusOK, countResponse{Count: h.orders.PlaceOrder(r.Context())})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
