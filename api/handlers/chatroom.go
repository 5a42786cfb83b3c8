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

// ChatRoom exported for testing purposes
type ChatRoom struct {
	DB databases.ForumDatabase
}

// CreateRoomHandler creates a chat room with its initial participants
func (c ChatRoom) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "room_name", req.RoomName) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := c.DB.CreateRoom(ctx, req.RoomName, req.Participants)
	if err != nil {
		config.ErrorStatus("failed to create room", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.CreatedResponse{ID: id.Hex()})
}

// RoomsHandler returns every chat room
func (c ChatRoom) RoomsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rooms, err := c.DB.GetRooms(ctx)
	if err != nil {
		config.ErrorStatus("failed to get rooms", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpChatRooms(rooms))
}

// RoomByIDHandler returns a chat room by ID
func (c ChatRoom) RoomByIDHandler(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["room_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	room, err := c.DB.GetRoomByID(ctx, roomID)
	if err != nil {
		storeErrorStatus("failed to get room by ID", w, err)
		return
	}
	if room == nil {
		config.ErrorStatus("room not found", http.StatusNotFound, w, nil)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpChatRoom(*room))
}

// RoomByParticipantsHandler returns the room whose participant list exactly
// matches the one in the request body, order included
func (c ChatRoom) RoomByParticipantsHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ParticipantsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	room, err := c.DB.FindRoomByParticipants(ctx, req.Participants)
	if err != nil {
		config.ErrorStatus("failed to find room by participants", http.StatusInternalServerError, w, err)
		return
	}
	if room == nil {
		config.ErrorStatus("room not found", http.StatusNotFound, w, nil)
		return
	}
	writeJSON(w, http.StatusOK, schemas.DumpChatRoom(*room))
}

// JoinRoomHandler adds a participant to a room, ignoring duplicates
func (c ChatRoom) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	c.membershipHandler(w, r, c.DB.JoinRoom, "joined room")
}

// LeaveRoomHandler removes a participant from a room
func (c ChatRoom) LeaveRoomHandler(w http.ResponseWriter, r *http.Request) {
	c.membershipHandler(w, r, c.DB.LeaveRoom, "left room")
}

func (c ChatRoom) membershipHandler(w http.ResponseWriter, r *http.Request,
	update func(ctx context.Context, id, email string) error, done string) {
	roomID := mux.Vars(r)["room_id"]

	var req models.MembershipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, "email", req.Email) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := update(ctx, roomID, req.Email); err != nil {
		storeErrorStatus("failed to update room participants", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: done})
}

// DeleteRoomHandler removes a chat room. Its messages are left in place.
func (c ChatRoom) DeleteRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["room_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	n, err := c.DB.DeleteRoom(ctx, roomID)
	if err != nil {
		storeErrorStatus("failed to delete room", w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.DeletedResponse{DeletedCount: n})
}
