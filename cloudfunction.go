// Package cloudfunctions exposes the artwork engine as a Cloud Function.
package cloudfunctions

import (
	"log"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/arthroviz/andry-engine/internal/application"
)

func init() {
	// Register HTTP function for webhooks and manual triggers
	functions.HTTP("GenerateArtwork", GenerateArtwork)
}

// GenerateArtwork is the HTTP entry point. It builds the application per
// invocation so cold starts pick up fresh configuration.
func GenerateArtwork(w http.ResponseWriter, r *http.Request) {
	app, err := application.New(r.Context())
	if err != nil {
		log.Printf("Failed to create application: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer app.Close()

	app.Handler.ServeHTTP(w, r)
}
