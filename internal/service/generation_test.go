package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/arthroviz/andry-engine/internal/artwork"
	"github.com/arthroviz/andry-engine/internal/mocks"
	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/repository"
)

func seededRand() func() artwork.Rand {
	return func() artwork.Rand { return artwork.NewSeededRand(42) }
}

func newTestGeneration(t *testing.T, articles ...model.Article) (*Generation, repository.ArtworkRepository) {
	t.Helper()
	artworks := repository.NewMemoryArtworkRepository()
	gen, err := NewGeneration(repository.NewMemoryArticleRepository(articles...), artworks, seededRand())
	if err != nil {
		t.Fatalf("NewGeneration failed: %v", err)
	}
	return gen, artworks
}

func TestProcessArticleEndToEnd(t *testing.T) {
	article := model.Article{
		ID:    "study-1",
		Title: "Outcome study",
		RawContent: "This study shows a 95% success rate with p<0.05 evidence of healing " +
			"and recovery in 50 patients (n=50), though results may vary",
	}
	gen, artworks := newTestGeneration(t, article)

	generated, err := gen.ProcessArticle(context.Background(), "study-1")
	if err != nil {
		t.Fatalf("ProcessArticle failed: %v", err)
	}

	// No subspecialty keywords match, so the default wins.
	if generated.Metadata.Subspecialty != model.SportsMedicine {
		t.Errorf("Subspecialty = %s, want sportsMedicine", generated.Metadata.Subspecialty)
	}
	// "healing" and "recovery" outweigh every other marker.
	if generated.Metadata.DominantEmotion != model.EmotionHealing {
		t.Errorf("DominantEmotion = %s, want healing", generated.Metadata.DominantEmotion)
	}

	// 95%, p<0.05 and n=50 each become one flow curve.
	if got := strings.Count(generated.SVG, "<path d="); got != 3 {
		t.Errorf("Data flow curves = %d, want 3", got)
	}
	if !strings.Contains(generated.SVG, `data-emotion="healing"`) {
		t.Error("Expected a healing emotional field in the markup")
	}
	if !strings.HasPrefix(generated.SVG, "<svg") {
		t.Error("Output should be an SVG document")
	}
	if len(generated.Metadata.PatternFingerprint) != 16 {
		t.Errorf("Fingerprint length = %d, want 16", len(generated.Metadata.PatternFingerprint))
	}

	stored, err := artworks.GetByArticleID(context.Background(), "study-1")
	if err != nil {
		t.Fatalf("Artwork was not persisted: %v", err)
	}
	if stored.SVG != generated.SVG {
		t.Error("Persisted SVG must match the returned one")
	}
}

func TestProcessArticleMissingArticle(t *testing.T) {
	gen, _ := newTestGeneration(t)

	if _, err := gen.ProcessArticle(context.Background(), "ghost"); err == nil {
		t.Error("Expected error for unknown article id")
	}
}

func TestGenerateNilArticle(t *testing.T) {
	gen, _ := newTestGeneration(t)

	if _, err := gen.Generate(context.Background(), nil); err == nil {
		t.Error("Expected error for nil article")
	}
}

func TestGenerateHonorsValidSubspecialtyHint(t *testing.T) {
	gen, _ := newTestGeneration(t)

	generated, err := gen.Generate(context.Background(), &model.Article{
		ID:               "hinted",
		RawContent:       "shoulder arthroscopy with rotator cuff repair",
		SubspecialtyHint: "trauma",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if generated.Metadata.Subspecialty != model.Trauma {
		t.Errorf("Valid hint must win over classification, got %s", generated.Metadata.Subspecialty)
	}
}

func TestGenerateIgnoresInvalidSubspecialtyHint(t *testing.T) {
	gen, _ := newTestGeneration(t)

	generated, err := gen.Generate(context.Background(), &model.Article{
		ID:               "bad-hint",
		RawContent:       "plain text with no specialty keywords",
		SubspecialtyHint: "podiatry",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if generated.Metadata.Subspecialty != model.SportsMedicine {
		t.Errorf("Invalid hint should fall back to classification, got %s",
			generated.Metadata.Subspecialty)
	}
}

func TestGenerateReproducibleIdentity(t *testing.T) {
	gen, _ := newTestGeneration(t)
	article := &model.Article{ID: "repro", RawContent: "healing and recovery after repair"}

	first, err := gen.Generate(context.Background(), article)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := gen.Generate(context.Background(), article)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first.Metadata.PatternFingerprint != second.Metadata.PatternFingerprint {
		t.Error("Same seed and article must reproduce the fingerprint")
	}
	if first.Metadata.RenderingComplexity != second.Metadata.RenderingComplexity {
		t.Error("Same seed and article must reproduce the complexity score")
	}
	if first.Metadata.SignatureID == second.Metadata.SignatureID {
		t.Error("Signatures must differ between runs")
	}
}

func TestProcessSubmittedStoresArticleAndArtwork(t *testing.T) {
	articles := repository.NewMemoryArticleRepository()
	artworks := repository.NewMemoryArtworkRepository()
	gen, err := NewGeneration(articles, artworks, seededRand())
	if err != nil {
		t.Fatalf("NewGeneration failed: %v", err)
	}

	_, err = gen.ProcessSubmitted(context.Background(), model.Article{
		ID:         "submitted-1",
		Title:      "Webhook submission",
		RawContent: "fracture fixation with successful union",
	})
	if err != nil {
		t.Fatalf("ProcessSubmitted failed: %v", err)
	}

	if _, err := articles.GetByID(context.Background(), "submitted-1"); err != nil {
		t.Errorf("Article was not persisted: %v", err)
	}
	if _, err := artworks.GetByArticleID(context.Background(), "submitted-1"); err != nil {
		t.Errorf("Artwork was not persisted: %v", err)
	}
}

func TestBatchSkipsAlreadyGenerated(t *testing.T) {
	articles := repository.NewMemoryArticleRepository(
		model.Article{ID: "a", RawContent: "healing after surgery"},
		model.Article{ID: "b", RawContent: "recovery study"},
	)
	artworks := repository.NewMemoryArtworkRepository()
	artworks.Store(context.Background(), model.Artwork{
		ArticleID: "b",
		SVG:       "<svg/>",
		Metadata:  model.GenerationMetadata{SignatureID: "AKX-EXISTING"},
	})

	gen, err := NewGeneration(articles, artworks, seededRand())
	if err != nil {
		t.Fatalf("NewGeneration failed: %v", err)
	}

	if err := NewBatch(gen).Process(context.Background()); err != nil {
		t.Fatalf("Batch failed: %v", err)
	}

	existing, _ := artworks.GetByArticleID(context.Background(), "b")
	if existing.Metadata.SignatureID != "AKX-EXISTING" {
		t.Error("Batch must not regenerate an already stored artwork")
	}
	if _, err := artworks.GetByArticleID(context.Background(), "a"); err != nil {
		t.Errorf("Batch should have generated artwork for pending article: %v", err)
	}
}

func TestBatchReportsPerArticleFailures(t *testing.T) {
	articles := &mocks.MockArticleRepo{
		ListPendingFunc: func(ctx context.Context) ([]model.Article, error) {
			return []model.Article{{ID: "broken"}, {ID: "ok", RawContent: "healing"}}, nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*model.Article, error) {
			if id == "broken" {
				return nil, fmt.Errorf("backend unavailable")
			}
			return &model.Article{ID: id, RawContent: "healing"}, nil
		},
	}
	stored := map[string]bool{}
	artworks := &mocks.MockArtworkRepo{
		StoreFunc: func(ctx context.Context, a model.Artwork) error {
			stored[a.ArticleID] = true
			return nil
		},
	}

	gen, err := NewGeneration(articles, artworks, seededRand())
	if err != nil {
		t.Fatalf("NewGeneration failed: %v", err)
	}

	err = NewBatch(gen).Process(context.Background())
	if err == nil {
		t.Fatal("Batch should surface per-article failures")
	}
	if !strings.Contains(err.Error(), "1 failed") {
		t.Errorf("Error should count failures, got %v", err)
	}
	if !stored["ok"] {
		t.Error("Healthy articles must still be processed")
	}
}
