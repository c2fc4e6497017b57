// Package repository defines the persistence boundaries for articles and
// generated artworks, with in-memory and Cloud Storage backed implementations.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/arthroviz/andry-engine/internal/model"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = fmt.Errorf("record not found")

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ArticleRepository stores the source articles awaiting generation.
type ArticleRepository interface {
	Store(ctx context.Context, article model.Article) error
	GetByID(ctx context.Context, id string) (*model.Article, error)
	ListPending(ctx context.Context) ([]model.Article, error)
	Close() error
}

// ArtworkRepository stores generated artworks keyed by article id.
type ArtworkRepository interface {
	Store(ctx context.Context, artwork model.Artwork) error
	GetByArticleID(ctx context.Context, articleID string) (*model.Artwork, error)
	IsGenerated(ctx context.Context, articleID string) (bool, error)
	LoadIndex(ctx context.Context) ([]string, error)
	Close() error
}
