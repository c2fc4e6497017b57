package service

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Batch sweeps the pending articles and generates artwork for every one that
// does not have a stored composition yet.
type Batch struct {
	generation *Generation
}

func NewBatch(generation *Generation) *Batch {
	return &Batch{generation: generation}
}

// Process runs one batch sweep. Per-article failures are logged and skipped
// so one malformed article cannot stall the rest of the run; the error
// reports how many articles failed.
func (b *Batch) Process(ctx context.Context) error {
	startTime := time.Now()
	log.Printf("🌳 Batch generation started")

	index, err := b.generation.artworks.LoadIndex(ctx)
	if err != nil {
		return fmt.Errorf("loading artwork index: %w", err)
	}
	log.Printf("📋 Artwork index loaded: %d entries", len(index))

	pending, err := b.generation.articles.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("listing pending articles: %w", err)
	}

	generated := make(map[string]bool, len(index))
	for _, id := range index {
		generated[id] = true
	}

	var processed, failed int
	for _, article := range pending {
		if generated[article.ID] {
			continue
		}
		if _, err := b.generation.ProcessArticle(ctx, article.ID); err != nil {
			log.Printf("Error processing article %s: %v", article.ID, err)
			failed++
			continue
		}
		processed++
	}

	log.Printf("✅ Batch generation completed processed=%d failed=%d skipped=%d duration_ms=%d",
		processed, failed, len(pending)-processed-failed, time.Since(startTime).Milliseconds())

	if failed > 0 {
		return fmt.Errorf("batch completed with %d failed articles", failed)
	}
	return nil
}
