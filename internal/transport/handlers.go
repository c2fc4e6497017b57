package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arthroviz/andry-engine/internal/model"
	"github.com/arthroviz/andry-engine/internal/repository"
)

// GenerateRequest targets a stored article by id, or carries the article
// inline.
type GenerateRequest struct {
	ArticleID string          `json:"article_id,omitempty"`
	Article   *WebhookRequest `json:"article,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	if r.ArticleID == "" && r.Article == nil {
		return &ValidationError{Field: "article_id", Message: "article_id or article is required"}
	}
	if r.Article != nil {
		return r.Article.Validate()
	}
	return nil
}

type WebhookRequest struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Content          string `json:"content"`
	SubspecialtyHint string `json:"subspecialty_hint,omitempty"`
}

func (r *WebhookRequest) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "id", Message: "id is required"}
	}
	if r.Content == "" {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	return nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// generateHandler runs the pipeline for an already stored article.
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Article != nil {
		artwork, err := s.generation.ProcessSubmitted(r.Context(), model.Article{
			ID:               req.Article.ID,
			Title:            req.Article.Title,
			RawContent:       req.Article.Content,
			SubspecialtyHint: req.Article.SubspecialtyHint,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, artwork)
		return
	}

	artwork, err := s.generation.ProcessArticle(r.Context(), req.ArticleID)
	if err != nil {
		if repository.IsNotFound(err) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("article %s not found", req.ArticleID))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, artwork)
}

// artworkHandler returns the stored artwork record as JSON.
func (s *Server) artworkHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	artwork, err := s.generation.GetArtwork(r.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("artwork for article %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, artwork)
}

// svgHandler returns just the vector scene with the right content type.
func (s *Server) svgHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	artwork, err := s.generation.GetArtwork(r.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("artwork for article %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(artwork.SVG))
}

// webhookHandler stores an inline article and generates its artwork in one
// call.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	artwork, err := s.generation.ProcessSubmitted(r.Context(), model.Article{
		ID:               req.ID,
		Title:            req.Title,
		RawContent:       req.Content,
		SubspecialtyHint: req.SubspecialtyHint,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, artwork)
}
