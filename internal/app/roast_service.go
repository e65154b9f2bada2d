package app

import (
	"context"
	"log"

	"slopbowl-service/internal/domain"
)

// CatalogRepository loads the question catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}

// HistoryStore keeps the recent roasts per category. Both operations are
// best-effort: Recent returns an empty slice and Record drops the write when
// the store is unavailable, so generation never fails on history problems.
type HistoryStore interface {
	Recent(ctx context.Context, category domain.Category) []domain.HistoryEntry
	Record(ctx context.Context, category domain.Category, entry domain.HistoryEntry)
}

// GenerateRequest carries everything the text generator needs for one roast.
type GenerateRequest struct {
	Category domain.Category
	Answers  []domain.Answer
	Name     string
	Recent   []domain.HistoryEntry
}

// Generator produces a roast triple from a request, or an error on any
// transport, timeout, or parse failure.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (domain.Roast, error)
}

// RoastService contains the scoring and roast-generation use cases.
type RoastService struct {
	catalogs  CatalogRepository
	history   HistoryStore
	generator Generator
}

func NewRoastService(catalogs CatalogRepository, history HistoryStore, generator Generator) *RoastService {
	return &RoastService{catalogs: catalogs, history: history, generator: generator}
}

// Catalog returns the configured question set, falling back to the built-in
// catalog when the backing store is unreachable. Quiz delivery stays up even
// if Postgres is down.
func (s *RoastService) Catalog(ctx context.Context) domain.Catalog {
	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		log.Printf("catalog load failed, using built-in catalog: %v", err)
		return domain.DefaultCatalog()
	}
	return catalog
}

// ScoreAnswers computes the winning category, the raw score vector, and the
// display percentages for one submission.
func (s *RoastService) ScoreAnswers(ctx context.Context, answers []domain.Answer) (domain.Result, []domain.CategoryShare) {
	catalog := s.Catalog(ctx)
	scores := Score(answers)
	winner := Winner(scores, answers, catalog.PrimaryQuestionID())
	return domain.Result{Winner: winner, Scores: scores}, Percentages(scores, winner)
}

// GenerateRoast produces the roast triple for an already-decided category.
// Every generation failure is downgraded to the static fallback for that
// category; the caller always gets a complete triple and the category is
// echoed back unchanged.
func (s *RoastService) GenerateRoast(ctx context.Context, category domain.Category, answers []domain.Answer, name string) domain.Roast {
	recent := s.history.Recent(ctx, category)

	roast, err := s.generator.Generate(ctx, GenerateRequest{
		Category: category,
		Answers:  answers,
		Name:     name,
		Recent:   recent,
	})
	if err != nil {
		log.Printf("roast generation failed for %s, serving fallback: %v", category, err)
		return FallbackRoast(category)
	}

	roast.Category = category
	s.history.Record(ctx, category, domain.HistoryEntry{
		Roast:        roast.Roast,
		SecretWeapon: roast.SecretWeapon,
	})
	return roast
}
