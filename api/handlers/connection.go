package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
	"github.com/linesmerrill/stument-forum-api/schemas"
)

// Connection exported for testing purposes
type Connection struct {
	DB databases.ForumDatabase
}

// CreateConnectionHandler connects a student to a mentor
func (c Connection) CreateConnectionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ConnectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "student_email", req.StudentEmail, "mentor_email", req.MentorEmail) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := c.DB.ConnectStudentToMentor(ctx, req.StudentEmail, req.MentorEmail)
	if err != nil {
		config.ErrorStatus("failed to create connection", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.CreatedResponse{ID: id.Hex()})
}

// ConnectionsByStudentEmailHandler returns every connection of a student
func (c Connection) ConnectionsByStudentEmailHandler(w http.ResponseWriter, r *http.Request) {
	c.connectionsHandler(w, r, c.DB.FindConnectionsByStudentEmail)
}

// ConnectionsByMentorEmailHandler returns every connection of a mentor
func (c Connection) ConnectionsByMentorEmailHandler(w http.ResponseWriter, r *http.Request) {
	c.connectionsHandler(w, r, c.DB.FindConnectionsByMentorEmail)
}

func (c Connection) connectionsHandler(w http.ResponseWriter, r *http.Request,
	find func(context.Context, string) (*databases.ConnectionCursor, error)) {
	email := mux.Vars(r)["email"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cursor, err := find(ctx, email)
	if err != nil {
		config.ErrorStatus("failed to get connections", http.StatusInternalServerError, w, err)
		return
	}
	defer cursor.Close(ctx)

	conns := []schemas.Connection{}
	for cursor.Next(ctx) {
		conn, err := cursor.Connection()
		if err != nil {
			config.ErrorStatus("failed to decode connection", http.StatusInternalServerError, w, err)
			return
		}
		conns = append(conns, schemas.DumpConnection(conn))
	}
	if err := cursor.Err(); err != nil {
		config.ErrorStatus("failed to get connections", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, conns)
}

// ConnectionByIDHandler returns a connection by ID
func (c Connection) ConnectionByIDHandler(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connection_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	conn, err := c.DB.FindConnectionByID(ctx, connectionID)
	if err != nil {
		storeErrorStatus("failed to get connection by ID", w, err)
		return
	}
	if conn == nil {
		config.ErrorStatus("connection not found", http.StatusNotFound, w, nil)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpConnection(*conn))
}

// DeleteConnectionHandler removes a connection
func (c Connection) DeleteConnectionHandler(w http.ResponseWriter, r *http.Request) {
	connectionID := mux.Vars(r)["connection_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := c.DB.DeleteConnection(ctx, connectionID)
	if err != nil {
		storeErrorStatus("failed to delete connection", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.DeletedResponse{DeletedCount: n})
}
