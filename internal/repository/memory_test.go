package repository

import (
	"context"
	"testing"

	"github.com/arthroviz/andry-engine/internal/model"
)

func TestMemoryArticleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryArticleRepository(
		model.Article{ID: "b-article", Title: "Rotator cuff repair outcomes"},
	)

	if err := repo.Store(ctx, model.Article{ID: "a-article", Title: "ACL reconstruction"}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	article, err := repo.GetByID(ctx, "a-article")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if article.Title != "ACL reconstruction" {
		t.Errorf("Title = %q, want ACL reconstruction", article.Title)
	}

	if _, err := repo.GetByID(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Missing id should return ErrNotFound, got %v", err)
	}

	pending, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending articles, got %d", len(pending))
	}
	if pending[0].ID != "a-article" || pending[1].ID != "b-article" {
		t.Errorf("Pending list should be sorted by id, got %s, %s", pending[0].ID, pending[1].ID)
	}
}

func TestMemoryArticleRepositoryStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryArticleRepository()

	repo.Store(ctx, model.Article{ID: "x", Title: "first"})
	repo.Store(ctx, model.Article{ID: "x", Title: "second"})

	article, err := repo.GetByID(ctx, "x")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if article.Title != "second" {
		t.Errorf("Title = %q, want second", article.Title)
	}
}

func TestMemoryArtworkRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryArtworkRepository()

	generated, err := repo.IsGenerated(ctx, "article-1")
	if err != nil {
		t.Fatalf("IsGenerated failed: %v", err)
	}
	if generated {
		t.Error("Empty store should report nothing as generated")
	}

	artwork := model.Artwork{
		ArticleID: "article-1",
		SVG:       "<svg/>",
		Metadata:  model.GenerationMetadata{SignatureID: "AKX-TEST", Subspecialty: model.Trauma},
	}
	if err := repo.Store(ctx, artwork); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	repo.Store(ctx, model.Artwork{ArticleID: "article-0", SVG: "<svg/>"})

	got, err := repo.GetByArticleID(ctx, "article-1")
	if err != nil {
		t.Fatalf("GetByArticleID failed: %v", err)
	}
	if got.Metadata.SignatureID != "AKX-TEST" {
		t.Errorf("SignatureID = %q, want AKX-TEST", got.Metadata.SignatureID)
	}

	if _, err := repo.GetByArticleID(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Missing artwork should return ErrNotFound, got %v", err)
	}

	generated, _ = repo.IsGenerated(ctx, "article-1")
	if !generated {
		t.Error("Stored artwork should report as generated")
	}

	index, err := repo.LoadIndex(ctx)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if len(index) != 2 || index[0] != "article-0" || index[1] != "article-1" {
		t.Errorf("Index = %v, want sorted [article-0 article-1]", index)
	}
}
