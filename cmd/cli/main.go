package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthroviz/andry-engine/internal/artwork"
	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/render"
	"github.com/arthroviz/andry-engine/internal/repository"
	"github.com/arthroviz/andry-engine/internal/service"
)

func main() {
	var (
		input        = flag.String("input", "", "Path to the article text file (required)")
		title        = flag.String("title", "", "Article title (defaults to the file stem)")
		subspecialty = flag.String("subspecialty", "", "Subspecialty hint, e.g. trauma")
		seed         = flag.Int64("seed", 0, "Fixed random seed (0 = entropy)")
		thumbSize    = flag.Int("thumb-size", 128, "Thumbnail edge in pixels")
		showHelp     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *showHelp || *input == "" {
		fmt.Printf("Andry Engine CLI\n\n")
		fmt.Printf("Reads an article text file and writes <stem>.svg, <stem>.png,\n")
		fmt.Printf("<stem>.thumb.png and <stem>.metadata.json next to it.\n\n")
		fmt.Printf("Usage: %s -input article.txt [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  ARTWORK_FONT          TTF path for the PNG signature label\n")
		if *input == "" && !*showHelp {
			os.Exit(2)
		}
		os.Exit(0)
	}

	content, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	stem := strings.TrimSuffix(*input, filepath.Ext(*input))
	articleTitle := *title
	if articleTitle == "" {
		articleTitle = filepath.Base(stem)
	}

	newRand := artwork.NewEntropyRand
	if *seed != 0 {
		fixed := *seed
		newRand = func() artwork.Rand { return artwork.NewSeededRand(fixed) }
	}

	gen, err := service.NewGeneration(
		repository.NewMemoryArticleRepository(),
		repository.NewMemoryArtworkRepository(),
		newRand,
	)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}

	generated, elements, err := gen.GenerateScene(context.Background(), &model.Article{
		ID:               filepath.Base(stem),
		Title:            articleTitle,
		RawContent:       string(content),
		SubspecialtyHint: *subspecialty,
	})
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if err := writeOutputs(generated, elements, stem, *thumbSize); err != nil {
		log.Fatalf("Writing outputs failed: %v", err)
	}

	fmt.Printf("Generated %s (%s, %d elements)\n",
		generated.Metadata.SignatureID, generated.Metadata.Subspecialty,
		generated.Metadata.VisualElementCount)
}

func writeOutputs(art *model.Artwork, elements []model.Element, stem string, thumbSize int) error {
	if err := os.WriteFile(stem+".svg", []byte(art.SVG), 0o644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}

	metadataJSON, err := json.MarshalIndent(art.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := os.WriteFile(stem+".metadata.json", metadataJSON, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	rasterizer, err := render.NewPNGRenderer(art.Metadata.CanvasWidth, art.Metadata.CanvasHeight)
	if err != nil {
		return fmt.Errorf("creating rasterizer: %w", err)
	}
	if fontPath := os.Getenv("ARTWORK_FONT"); fontPath != "" {
		face, err := render.LoadFontFace(fontPath, 14)
		if err != nil {
			return fmt.Errorf("loading label font: %w", err)
		}
		rasterizer.SetFontFace(face)
	}

	buf, err := rasterizer.Render(elements, art.Metadata.Subspecialty, render.Annotation{
		Title: art.Metadata.SignatureID,
	})
	if err != nil {
		return fmt.Errorf("rendering PNG: %w", err)
	}
	pngBytes := buf.Bytes()
	if err := os.WriteFile(stem+".png", pngBytes, 0o644); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return fmt.Errorf("decoding PNG for thumbnail: %w", err)
	}
	thumbFile, err := os.Create(stem + ".thumb.png")
	if err != nil {
		return fmt.Errorf("creating thumbnail file: %w", err)
	}
	defer thumbFile.Close()

	if err := png.Encode(thumbFile, render.Thumbnail(img, thumbSize)); err != nil {
		return fmt.Errorf("encoding thumbnail: %w", err)
	}
	return nil
}
