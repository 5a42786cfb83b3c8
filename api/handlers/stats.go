package handlers

import (
	"net/http"

	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
)

// Stats exported for testing purposes
type Stats struct {
	DB   databases.ForumDatabase
	Last func() (models.ForumStats, bool)
}

// StatsHandler returns the document count of every forum collection. The
// scheduler's latest counts are served once it has run.
func (s Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if s.Last != nil {
		if stats, ok := s.Last(); ok {
			writeJSON(w, http.StatusOK, stats)
			return
		}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	stats, err := s.DB.CountDocuments(ctx)
	if err != nil {
		config.ErrorStatus("failed to count documents", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
