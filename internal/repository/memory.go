package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/arthroviz/andry-engine/internal/model"
)

type memoryArticleRepository struct {
	mutex    sync.RWMutex
	articles map[string]model.Article
}

// NewMemoryArticleRepository creates an in-memory article store, optionally
// seeded. Used for local runs and tests.
func NewMemoryArticleRepository(seed ...model.Article) ArticleRepository {
	articles := make(map[string]model.Article, len(seed))
	for _, a := range seed {
		articles[a.ID] = a
	}
	return &memoryArticleRepository{articles: articles}
}

func (r *memoryArticleRepository) Store(ctx context.Context, article model.Article) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.articles[article.ID] = article
	return nil
}

func (r *memoryArticleRepository) GetByID(ctx context.Context, id string) (*model.Article, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	article, exists := r.articles[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &article, nil
}

func (r *memoryArticleRepository) ListPending(ctx context.Context) ([]model.Article, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	articles := make([]model.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articles = append(articles, a)
	}
	// Map iteration order is random; batch runs should be stable.
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	return articles, nil
}

func (r *memoryArticleRepository) Close() error {
	return nil
}

type memoryArtworkRepository struct {
	mutex    sync.RWMutex
	artworks map[string]model.Artwork
}

// NewMemoryArtworkRepository creates an in-memory artwork store.
func NewMemoryArtworkRepository() ArtworkRepository {
	return &memoryArtworkRepository{artworks: make(map[string]model.Artwork)}
}

func (r *memoryArtworkRepository) Store(ctx context.Context, artwork model.Artwork) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.artworks[artwork.ArticleID] = artwork
	return nil
}

func (r *memoryArtworkRepository) GetByArticleID(ctx context.Context, articleID string) (*model.Artwork, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	artwork, exists := r.artworks[articleID]
	if !exists {
		return nil, ErrNotFound
	}
	return &artwork, nil
}

func (r *memoryArtworkRepository) IsGenerated(ctx context.Context, articleID string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.artworks[articleID]
	return exists, nil
}

func (r *memoryArtworkRepository) LoadIndex(ctx context.Context) ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ids := make([]string, 0, len(r.artworks))
	for id := range r.artworks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *memoryArtworkRepository) Close() error {
	return nil
}
