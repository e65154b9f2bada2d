package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"slopbowl-service/internal/app"
	"slopbowl-service/internal/domain"
	"slopbowl-service/internal/infra/memory"
)

func TestScoreEndpointResolvesTieBreak(t *testing.T) {
	server, _, _ := newTestServer(&stubGenerator{})
	defer server.Close()

	body := `{"answers":[
		{"questionId":"base","optionId":"soldier","category":"Sweetgreen","weight":3},
		{"questionId":"protein","optionId":"invisibility","category":"Chipotle","weight":2},
		{"questionId":"toppings","optionId":"circles","category":"Chipotle","weight":2},
		{"questionId":"extras","optionId":"gossip","category":"Sweetgreen","weight":1}
	]}`

	resp, err := http.Post(server.URL+"/api/score", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post score: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Winner      domain.Category        `json:"winner"`
		Scores      map[string]int         `json:"scores"`
		Percentages []domain.CategoryShare `json:"percentages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Winner != domain.CategorySweetgreen {
		t.Fatalf("expected Sweetgreen via base tiebreak, got %s", out.Winner)
	}
	if out.Scores["Chipotle"] != 4 || out.Scores["Sweetgreen"] != 4 || out.Scores["Cava"] != 0 {
		t.Fatalf("unexpected scores: %+v", out.Scores)
	}
	if out.Percentages[0].Category != domain.CategorySweetgreen || out.Percentages[0].Percent != 51 {
		t.Fatalf("expected winner first at 51%%, got %+v", out.Percentages)
	}
}

func TestResultEndpointReturnsGeneratedRoast(t *testing.T) {
	generator := &stubGenerator{
		roast: domain.Roast{Roast: "fresh roast", SecretWeapon: "fresh weapon", Blurb: "fresh blurb"},
	}
	server, history, _ := newTestServer(generator)
	defer server.Close()

	resp := postResult(t, server.URL, `{"category":"Chipotle","answers":[],"name":"Alice"}`)
	if resp.Category != domain.CategoryChipotle || resp.Roast != "fresh roast" {
		t.Fatalf("unexpected result: %+v", resp)
	}

	recent := history.Recent(context.Background(), domain.CategoryChipotle)
	if len(recent) != 1 || recent[0].Roast != "fresh roast" {
		t.Fatalf("expected history write, got %+v", recent)
	}
}

func TestResultEndpointFallsBackOnGeneratorFailure(t *testing.T) {
	server, history, _ := newTestServer(&stubGenerator{err: errors.New("timeout")})
	defer server.Close()

	resp := postResult(t, server.URL, `{"category":"Cava","answers":[],"name":"Bob"}`)
	want := app.FallbackRoast(domain.CategoryCava)
	if resp != want {
		t.Fatalf("expected fallback %+v, got %+v", want, resp)
	}

	if recent := history.Recent(context.Background(), domain.CategoryCava); len(recent) != 0 {
		t.Fatalf("fallback must not write history, got %+v", recent)
	}
}

func TestResultEndpointTruncatesLongNames(t *testing.T) {
	generator := &stubGenerator{
		roast: domain.Roast{Roast: "r", SecretWeapon: "w", Blurb: "b"},
	}
	server, _, _ := newTestServer(generator)
	defer server.Close()

	longName := strings.Repeat("a", 120)
	body, _ := json.Marshal(map[string]any{"category": "Chipotle", "answers": []any{}, "name": longName})
	res, err := http.Post(server.URL+"/api/result", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post result: %v", err)
	}
	res.Body.Close()

	if len(generator.lastReq.Name) != maxNameLength {
		t.Fatalf("expected name truncated to %d, got %d", maxNameLength, len(generator.lastReq.Name))
	}
}

func TestResultEndpointRejectsUnknownCategory(t *testing.T) {
	server, _, _ := newTestServer(&stubGenerator{})
	defer server.Close()

	res, err := http.Post(server.URL+"/api/result", "application/json",
		strings.NewReader(`{"category":"Wendys","answers":[],"name":"Eve"}`))
	if err != nil {
		t.Fatalf("post result: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestQuestionsEndpointServesCatalog(t *testing.T) {
	server, _, _ := newTestServer(&stubGenerator{})
	defer server.Close()

	res, err := http.Get(server.URL + "/api/questions")
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	defer res.Body.Close()

	var catalog domain.Catalog
	if err := json.NewDecoder(res.Body).Decode(&catalog); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(catalog.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(catalog.Questions))
	}
	if catalog.Questions[0].ID != "base" || catalog.Questions[0].Weight != 3 {
		t.Fatalf("unexpected first question: %+v", catalog.Questions[0])
	}
}

func TestOrderCountEndpoints(t *testing.T) {
	server, _, _ := newTestServer(&stubGenerator{})
	defer server.Close()

	if n := getCount(t, server.URL); n != 0 {
		t.Fatalf("expected 0 before first order, got %d", n)
	}

	res, err := http.Post(server.URL+"/api/order-count", "application/json", nil)
	if err != nil {
		t.Fatalf("post order-count: %v", err)
	}
	var out countResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if out.Count != 1 {
		t.Fatalf("expected 1 after increment, got %d", out.Count)
	}

	if n := getCount(t, server.URL); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}

func newTestServer(generator app.Generator) (*httptest.Server, *memory.HistoryStore, *app.OrderService) {
	history := memory.NewHistoryStore()
	catalogs := memory.NewCatalogRepository(
		memory.NewStaticCatalogLoader(domain.DefaultCatalog()),
		domain.DefaultCatalogID,
		time.Minute,
	)
	roasts := app.NewRoastService(catalogs, history, generator)
	orders := app.NewOrderService(memory.NewOrderCounter())

	mux := http.NewServeMux()
	NewHandler(roasts, orders).Register(mux)
	mux.HandleFunc("/ws/orders", NewOrderTicker(orders).ServeWS)
	return httptest.NewServer(mux), history, orders
}

func postResult(t *testing.T, baseURL, body string) domain.Roast {
	t.Helper()
	res, err := http.Post(baseURL+"/api/result", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post result: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var roast domain.Roast
	if err := json.NewDecoder(res.Body).Decode(&roast); err != nil {
		t.Fatalf("decode roast: %v", err)
	}
	return roast
}

func getCount(t *testing.T, baseURL string) int {
	t.Helper()
	res, err := http.Get(baseURL + "/api/order-count")
	if err != nil {
		t.Fatalf("get order-count: %v", err)
	}
	defer res.Body.Close()
	var out countResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode count: %v", err)
	}
	return out.Count
}

type stubGenerator struct {
	roast   domain.Roast
	err     error
	lastReq app.GenerateRequest
}

func (g *stubGenerator) Generate(_ context.Context, req app.GenerateRequest) (domain.Roast, error) {
	g.lastReq = req
	if g.err != nil {
		return domain.Roast{}, g.err
	}
	return g.roast, nil
}
