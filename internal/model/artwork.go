package model

import "time"

// GenerationMetadata is the provenance record emitted next to every scene.
//
// SignatureID embeds the generation timestamp and a random suffix and is
// deliberately NOT reproducible from the inputs; PatternFingerprint and
// RenderingComplexity are the reproducible identity of the element list.
type GenerationMetadata struct {
	SignatureID         string       `json:"signature_id"`
	RarityScore         float64      `json:"rarity_score"`
	PatternFingerprint  string       `json:"pattern_fingerprint"`
	CanvasWidth         int          `json:"canvas_width"`
	CanvasHeight        int          `json:"canvas_height"`
	VisualElementCount  int          `json:"visual_element_count"`
	RenderingComplexity float64      `json:"rendering_complexity"`
	Subspecialty        Subspecialty `json:"subspecialty"`
	DominantEmotion     Emotion      `json:"dominant_emotion"`
	GeneratedAt         time.Time    `json:"generated_at"`
}

// Artwork is what the engine hands to the persistence layer: the rendered
// vector scene plus its metadata, keyed by article id.
type Artwork struct {
	ArticleID string             `json:"article_id"`
	SVG       string             `json:"svg"`
	Metadata  GenerationMetadata `json:"metadata"`
}
