package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
	"github.com/linesmerrill/stument-forum-api/schemas"
)

// Mentor exported for testing purposes
type Mentor struct {
	DB databases.ForumDatabase
}

// CreateMentorHandler adds a new mentor
func (m Mentor) CreateMentorHandler(w http.ResponseWriter, r *http.Request) {
	var req models.MentorUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "name", req.Name, "email", req.Email, "expertise", req.Expertise) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := m.DB.AddMentor(ctx, req.Name, req.Email, req.Expertise)
	if err != nil {
		config.ErrorStatus("failed to create mentor", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.CreatedResponse{ID: id.Hex()})
}

// MentorByEmailHandler returns the mentor with the email given in the query string
func (m Mentor) MentorByEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !requireFields(w, "email", email) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	mentor, err := m.DB.FindMentorByEmail(ctx, email)
	if err != nil {
		config.ErrorStatus("failed to get mentor by email", http.StatusInternalServerError, w, err)
		return
	}
	if mentor == nil {
		config.ErrorStatus("mentor not found", http.StatusNotFound, w, nil)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpMentor(*mentor))
}

// SearchMentorsHandler returns every mentor, optionally filtered by expertise
func (m Mentor) SearchMentorsHandler(w http.ResponseWriter, r *http.Request) {
	expertise := r.URL.Query().Get("expertise")

	zap.S().Debugf("expertise: '%v'", expertise)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	mentors, err := m.DB.SearchMentors(ctx, expertise)
	if err != nil {
		config.ErrorStatus("failed to search mentors", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpMentors(mentors))
}

// UpdateMentorHandler replaces the name, email and expertise of a mentor
func (m Mentor) UpdateMentorHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	var req models.MentorUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "name", req.Name, "email", req.Email, "expertise", req.Expertise) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := m.DB.UpdateMentorByID(ctx, mentorID, req)
	if err != nil {
		storeErrorStatus("failed to update mentor", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ModifiedResponse{ModifiedCount: n})
}

// DeleteMentorHandler removes a mentor. Their connections and messages are left in place.
func (m Mentor) DeleteMentorHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := m.DB.DeleteMentor(ctx, mentorID)
	if err != nil {
		storeErrorStatus("failed to delete mentor", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.DeletedResponse{DeletedCount: n})
}
