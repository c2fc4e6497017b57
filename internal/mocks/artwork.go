package mocks

import (
	"context"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/repository"
)

// Mock Artwork Repository
type MockArtworkRepo struct {
	StoreFunc          func(ctx context.Context, artwork model.Artwork) error
	GetByArticleIDFunc func(ctx context.Context, articleID string) (*model.Artwork, error)
	IsGeneratedFunc    func(ctx context.Context, articleID string) (bool, error)
	LoadIndexFunc      func(ctx context.Context) ([]string, error)
}

func (m *MockArtworkRepo) Store(ctx context.Context, artwork model.Artwork) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, artwork)
	}
	return nil
}

func (m *MockArtworkRepo) GetByArticleID(ctx context.Context, articleID string) (*model.Artwork, error) {
	if m.GetByArticleIDFunc != nil {
		return m.GetByArticleIDFunc(ctx, articleID)
	}
	return nil, repository.ErrNotFound
}

func (m *MockArtworkRepo) IsGenerated(ctx context.Context, articleID string) (bool, error) {
	if m.IsGeneratedFunc != nil {
		return m.IsGeneratedFunc(ctx, articleID)
	}
	return false, nil
}

func (m *MockArtworkRepo) LoadIndex(ctx context.Context) ([]string, error) {
	if m.LoadIndexFunc != nil {
		return m.LoadIndexFunc(ctx)
	}
	return nil, nil
}

func (m *MockArtworkRepo) Close() error {
	return nil
}
