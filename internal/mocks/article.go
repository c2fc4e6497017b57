package mocks

import (
	"context"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/repository"
)

// Mock Article Repository
type MockArticleRepo struct {
	StoreFunc       func(ctx context.Context, article model.Article) error
	GetByIDFunc     func(ctx context.Context, id string) (*model.Article, error)
	ListPendingFunc func(ctx context.Context) ([]model.Article, error)
}

func (m *MockArticleRepo) Store(ctx context.Context, article model.Article) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, article)
	}
	return nil
}

func (m *MockArticleRepo) GetByID(ctx context.Context, id string) (*model.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockArticleRepo) ListPending(ctx context.Context) ([]model.Article, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleRepo) Close() error {
	return nil
}
