package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/arthroviz/andry-engine/internal/model"
)

const artworkPrefix = "artworks/"

type gcsArtworkRepository struct {
	client     *storage.Client
	bucketName string
}

// NewGCSArtworkRepository stores artworks as JSON objects in a Cloud Storage
// bucket under the artworks/ prefix.
func NewGCSArtworkRepository(ctx context.Context, bucketName string) (ArtworkRepository, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &gcsArtworkRepository{client: client, bucketName: bucketName}, nil
}

func (r *gcsArtworkRepository) objectName(articleID string) string {
	return artworkPrefix + articleID + ".json"
}

func (r *gcsArtworkRepository) Store(ctx context.Context, artwork model.Artwork) error {
	data, err := json.Marshal(artwork)
	if err != nil {
		return fmt.Errorf("marshaling artwork %s: %w", artwork.ArticleID, err)
	}

	obj := r.client.Bucket(r.bucketName).Object(r.objectName(artwork.ArticleID))
	writer := obj.NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing artwork object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing artwork writer: %w", err)
	}
	return nil
}

func (r *gcsArtworkRepository) GetByArticleID(ctx context.Context, articleID string) (*model.Artwork, error) {
	obj := r.client.Bucket(r.bucketName).Object(r.objectName(articleID))

	reader, err := obj.NewReader(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("opening artwork reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading artwork object: %w", err)
	}

	var artwork model.Artwork
	if err := json.Unmarshal(data, &artwork); err != nil {
		return nil, fmt.Errorf("unmarshaling artwork %s: %w", articleID, err)
	}
	return &artwork, nil
}

func (r *gcsArtworkRepository) IsGenerated(ctx context.Context, articleID string) (bool, error) {
	obj := r.client.Bucket(r.bucketName).Object(r.objectName(articleID))

	if _, err := obj.Attrs(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return false, nil
		}
		return false, fmt.Errorf("getting artwork attributes: %w", err)
	}
	return true, nil
}

func (r *gcsArtworkRepository) LoadIndex(ctx context.Context) ([]string, error) {
	bucket := r.client.Bucket(r.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: artworkPrefix})

	var ids []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing artwork objects: %w", err)
		}

		name := strings.TrimPrefix(attrs.Name, artworkPrefix)
		name = strings.TrimSuffix(name, ".json")
		if name != "" {
			ids = append(ids, name)
		}
	}
	return ids, nil
}

func (r *gcsArtworkRepository) Close() error {
	return r.client.Close()
}
