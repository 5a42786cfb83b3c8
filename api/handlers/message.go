package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/models"
	"github.com/linesmerrill/stument-forum-api/schemas"
)

// Message exported for testing purposes
type Message struct {
	DB databases.ForumDatabase
}

// PostMessageHandler stores a message in a room. The room is not required to exist.
func (m Message) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["room_id"]

	var req models.MessageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "sender_email", req.SenderEmail, "message", req.Message) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := m.DB.PostMessage(ctx, roomID, req.SenderEmail, req.Message)
	if err != nil {
		config.ErrorStatus("failed to post message", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.CreatedResponse{ID: id.Hex()})
}

// MessagesByRoomHandler returns every message posted to a room
func (m Message) MessagesByRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["room_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	msgs, err := m.DB.GetMessagesByRoom(ctx, roomID)
	if err != nil {
		config.ErrorStatus("failed to get messages", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpMessages(msgs))
}
