package model

import "time"

// Article is the raw input record handed to the engine by the persistence
// layer. SubspecialtyHint is an optional pre-classification the pipeline may
// trust or re-derive.
type Article struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	RawContent       string    `json:"raw_content"`
	SubspecialtyHint string    `json:"subspecialty_hint,omitempty"`
	PublishedAt      time.Time `json:"published_at,omitempty"`
}
