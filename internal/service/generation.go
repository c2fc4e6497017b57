// Package service runs the generation pipeline: analyze an article, grow the
// Andry Tree composition, render it, and persist the result.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/arthroviz/andry-engine/internal/analysis"
	"github.com/arthroviz/andry-engine/internal/artwork"
	"github.com/arthroviz/andry-engine/internal/metadata"
	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/render"
	"github.com/arthroviz/andry-engine/internal/repository"
)

// Generation wires the analysis and generation stages to the repositories.
type Generation struct {
	articles repository.ArticleRepository
	artworks repository.ArtworkRepository

	extractor  *analysis.Extractor
	journey    *analysis.JourneyAnalyzer
	classifier *analysis.Classifier
	renderer   *render.SVGRenderer

	newRand func() artwork.Rand
}

// NewGeneration builds the pipeline service. The random source factory is
// injectable so tests can reproduce a layout; production passes
// artwork.NewEntropyRand.
func NewGeneration(
	articles repository.ArticleRepository,
	artworks repository.ArtworkRepository,
	newRand func() artwork.Rand,
) (*Generation, error) {
	renderer, err := render.NewSVGRenderer(artwork.DefaultCanvasSize, artwork.DefaultCanvasSize)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	if newRand == nil {
		newRand = artwork.NewEntropyRand
	}
	return &Generation{
		articles:   articles,
		artworks:   artworks,
		extractor:  analysis.NewExtractor(),
		journey:    analysis.NewJourneyAnalyzer(),
		classifier: analysis.NewClassifier(),
		renderer:   renderer,
		newRand:    newRand,
	}, nil
}

// ProcessArticle runs the full pipeline for one stored article and persists
// the resulting artwork. Returns the stored artwork.
func (g *Generation) ProcessArticle(ctx context.Context, articleID string) (*model.Artwork, error) {
	startTime := time.Now()
	log.Printf("🎨 Generation started article=%s", articleID)

	article, err := g.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("loading article %s: %w", articleID, err)
	}

	generated, err := g.Generate(ctx, article)
	if err != nil {
		return nil, err
	}

	if err := g.artworks.Store(ctx, *generated); err != nil {
		return nil, fmt.Errorf("storing artwork %s: %w", articleID, err)
	}

	log.Printf("✅ Generation completed article=%s signature=%s elements=%d duration_ms=%d",
		articleID, generated.Metadata.SignatureID, generated.Metadata.VisualElementCount,
		time.Since(startTime).Milliseconds())
	return generated, nil
}

// Generate runs analysis and rendering for one article without persisting.
func (g *Generation) Generate(ctx context.Context, article *model.Article) (*model.Artwork, error) {
	artwork, _, err := g.GenerateScene(ctx, article)
	return artwork, err
}

// GenerateScene is Generate plus the raw element list, for callers that need
// to re-render the scene in another format.
func (g *Generation) GenerateScene(ctx context.Context, article *model.Article) (*model.Artwork, []model.Element, error) {
	if article == nil {
		return nil, nil, fmt.Errorf("article is nil")
	}

	subspecialty := g.resolveSubspecialty(article)
	features := g.extractor.ExtractFeatures(article.RawContent, subspecialty)
	journey := g.journey.Analyze(article.RawContent)

	size := artwork.DefaultCanvasSize
	generator := artwork.NewGenerator(g.newRand())
	elements, err := generator.Generate(features, journey, subspecialty, size, size)
	if err != nil {
		return nil, nil, fmt.Errorf("generating elements for %s: %w", article.ID, err)
	}

	meta := metadata.Build(elements, journey, subspecialty, size, size)
	svg := g.renderer.Render(elements, subspecialty, render.Annotation{
		Title: article.Title,
		Desc: fmt.Sprintf("Generative composition %s, %s, dominant emotion %s",
			meta.SignatureID, subspecialty, journey.DominantEmotion),
	})

	return &model.Artwork{
		ArticleID: article.ID,
		SVG:       svg,
		Metadata:  meta,
	}, elements, nil
}

// ProcessSubmitted stores an incoming article and generates its artwork in
// one step. Used by the webhook path, so logs go through the per-request
// writer the Functions runtime provides.
func (g *Generation) ProcessSubmitted(ctx context.Context, article model.Article) (*model.Artwork, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	logger.Printf("On-demand generation started article=%s", article.ID)

	if err := g.articles.Store(ctx, article); err != nil {
		logger.Printf("Error storing article %s: %v", article.ID, err)
		return nil, fmt.Errorf("storing article %s: %w", article.ID, err)
	}

	generated, err := g.Generate(ctx, &article)
	if err != nil {
		logger.Printf("Error generating artwork for %s: %v", article.ID, err)
		return nil, err
	}

	if err := g.artworks.Store(ctx, *generated); err != nil {
		logger.Printf("Error storing artwork %s: %v", article.ID, err)
		return nil, fmt.Errorf("storing artwork %s: %w", article.ID, err)
	}

	logger.Printf("On-demand generation completed article=%s signature=%s duration_ms=%d",
		article.ID, generated.Metadata.SignatureID, time.Since(startTime).Milliseconds())
	return generated, nil
}

// GetArtwork loads a stored artwork by article id.
func (g *Generation) GetArtwork(ctx context.Context, articleID string) (*model.Artwork, error) {
	return g.artworks.GetByArticleID(ctx, articleID)
}

// resolveSubspecialty honors a valid hint on the article, otherwise
// classifies from the content.
func (g *Generation) resolveSubspecialty(article *model.Article) model.Subspecialty {
	if hint := model.Subspecialty(article.SubspecialtyHint); hint != "" && hint.Valid() {
		return hint
	}
	return g.classifier.Classify(article.RawContent)
}
