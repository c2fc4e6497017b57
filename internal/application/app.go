// Package application wires configuration, repositories, services and the
// HTTP layer into one runnable unit.
package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arthroviz/andry-engine/internal/artwork"
	"github.com/arthroviz/andry-engine/internal/infrastructure"
	"github.com/arthroviz/andry-engine/internal/repository"
	"github.com/arthroviz/andry-engine/internal/service"
	"github.com/arthroviz/andry-engine/internal/transport"
)

// Application represents the application with all business logic components
type Application struct {
	Config     *infrastructure.Config
	Generation *service.Generation
	Batch      *service.Batch
	Handler    http.Handler
	cleanup    func() error
}

// New creates a new application instance with all dependencies
func New(ctx context.Context) (*Application, error) {
	// Load configuration
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Create repositories
	articleRepo := repository.NewMemoryArticleRepository()
	artworkRepo, err := newArtworkRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating artwork repository: %w", err)
	}

	// Create services (business logic)
	generation, err := service.NewGeneration(articleRepo, artworkRepo, artwork.NewEntropyRand)
	if err != nil {
		artworkRepo.Close()
		return nil, fmt.Errorf("creating generation service: %w", err)
	}
	batch := service.NewBatch(generation)

	// Create HTTP layer
	server := transport.NewServer(generation, cfg.AuthToken)

	// Cleanup function
	cleanup := func() error {
		if err := articleRepo.Close(); err != nil {
			return err
		}
		return artworkRepo.Close()
	}

	return &Application{
		Config:     cfg,
		Generation: generation,
		Batch:      batch,
		Handler:    server.SetupRoutes(),
		cleanup:    cleanup,
	}, nil
}

func newArtworkRepository(ctx context.Context, cfg *infrastructure.Config) (repository.ArtworkRepository, error) {
	switch cfg.StoreType {
	case "memory":
		return repository.NewMemoryArtworkRepository(), nil
	case "cloud-storage":
		return repository.NewGCSArtworkRepository(ctx, cfg.GCSBucket)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
	}
}

// Close cleans up application resources
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
