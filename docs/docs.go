// Package docs Stument Forum API.
//
// Documentation of the Stument Forum API, the student and mentor forum backend.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/stument-forum-api/api"
	"github.com/linesmerrill/stument-forum-api/models"
	"github.com/linesmerrill/stument-forum-api/schemas"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/students students createStudent
// Adds a student.
// responses:
//   201: createdResponse
//   400: errorResponse

// swagger:route POST /api/v1/mentors mentors createMentor
// Adds a mentor.
// responses:
//   201: createdResponse
//   400: errorResponse

// swagger:route POST /api/v1/connections connections createConnection
// Connects a student to a mentor.
// responses:
//   201: createdResponse
//   400: errorResponse

// swagger:route POST /api/v1/rooms rooms createRoom
// Creates a chat room.
// responses:
//   201: createdResponse
//   400: errorResponse

// swagger:route POST /api/v1/rooms/{room_id}/messages messages postMessage
// Posts a message to a room.
// responses:
//   201: createdResponse
//   400: errorResponse

// The id of the newly inserted document
// swagger:response createdResponse
type createdResponseWrapper struct {
	// in:body
	Body models.CreatedResponse
}

// swagger:parameters createStudent updateStudent
type createStudentParams struct {
	// in:body
	Body models.StudentUpdate
}

// swagger:parameters createMentor updateMentor
type mentorParams struct {
	// in:body
	Body models.MentorUpdate
}

// swagger:parameters createConnection
type createConnectionParams struct {
	// in:body
	Body models.ConnectionRequest
}

// swagger:parameters createRoom
type createRoomParams struct {
	// in:body
	Body models.RoomRequest
}

// swagger:parameters postMessage
type postMessageParams struct {
	// in:path
	RoomID string `json:"room_id"`
	// in:body
	Body models.MessageRequest
}

// swagger:route GET /api/v1/students students studentByEmail
// Gets a single student by email.
// responses:
//   200: studentResponse
//   404: errorResponse

// swagger:parameters studentByEmail mentorByEmail
type emailQueryParams struct {
	// in:query
	// required: true
	Email string `json:"email"`
}

// Shows a single student
// swagger:response studentResponse
type studentResponseWrapper struct {
	// in:body
	Body schemas.Student
}

// swagger:route GET /api/v1/mentors mentors mentorByEmail
// Gets a single mentor by email.
// responses:
//   200: mentorResponse
//   404: errorResponse

// Shows a single mentor
// swagger:response mentorResponse
type mentorResponseWrapper struct {
	// in:body
	Body schemas.Mentor
}

// swagger:route GET /api/v1/mentors/search mentors searchMentors
// Lists mentors, optionally filtered by expertise.
// responses:
//   200: mentorsResponse

// swagger:parameters searchMentors
type searchMentorsParams struct {
	// in:query
	Expertise string `json:"expertise"`
}

// Shows a list of mentors
// swagger:response mentorsResponse
type mentorsResponseWrapper struct {
	// in:body
	Body []schemas.Mentor
}

// swagger:route PUT /api/v1/students/{student_id} students updateStudent
// Replaces the name and email of a student.
// responses:
//   200: modifiedResponse
//   400: errorResponse

// swagger:route PUT /api/v1/mentors/{mentor_id} mentors updateMentor
// Replaces the name, email and expertise of a mentor.
// responses:
//   200: modifiedResponse
//   400: errorResponse

// The number of documents changed
// swagger:response modifiedResponse
type modifiedResponseWrapper struct {
	// in:body
	Body models.ModifiedResponse
}

// swagger:route DELETE /api/v1/students/{student_id} students deleteStudent
// Removes a student.
// responses:
//   200: deletedResponse

// swagger:route DELETE /api/v1/mentors/{mentor_id} mentors deleteMentor
// Removes a mentor.
// responses:
//   200: deletedResponse

// swagger:route DELETE /api/v1/connections/{connection_id} connections deleteConnection
// Removes a connection.
// responses:
//   200: deletedResponse

// swagger:route DELETE /api/v1/rooms/{room_id} rooms deleteRoom
// Removes a chat room.
// responses:
//   200: deletedResponse

// The number of documents removed
// swagger:response deletedResponse
type deletedResponseWrapper struct {
	// in:body
	Body models.DeletedResponse
}

// swagger:route GET /api/v1/connections/student/{email} connections connectionsByStudentEmail
// Lists the connections of a student.
// responses:
//   200: connectionsResponse

// swagger:route GET /api/v1/connections/mentor/{email} connections connectionsByMentorEmail
// Lists the connections of a mentor.
// responses:
//   200: connectionsResponse

// Shows a list of connections
// swagger:response connectionsResponse
type connectionsResponseWrapper struct {
	// in:body
	Body []schemas.Connection
}

// swagger:route GET /api/v1/connections/{connection_id} connections connectionByID
// Gets a single connection by ID.
// responses:
//   200: connectionResponse
//   404: errorResponse

// Shows a single connection
// swagger:response connectionResponse
type connectionResponseWrapper struct {
	// in:body
	Body schemas.Connection
}

// swagger:route GET /api/v1/rooms rooms rooms
// Lists every chat room.
// responses:
//   200: roomsResponse

// Shows a list of chat rooms
// swagger:response roomsResponse
type roomsResponseWrapper struct {
	// in:body
	Body []schemas.ChatRoom
}

// swagger:route GET /api/v1/rooms/{room_id} rooms roomByID
// Gets a single chat room by ID.
// responses:
//   200: roomResponse
//   404: errorResponse

// swagger:route POST /api/v1/rooms/find rooms roomByParticipants
// Finds the room whose participant list exactly matches, order included.
// responses:
//   200: roomResponse
//   404: errorResponse

// swagger:parameters roomByParticipants
type roomByParticipantsParams struct {
	// in:body
	Body models.ParticipantsRequest
}

// Shows a single chat room
// swagger:response roomResponse
type roomResponseWrapper struct {
	// in:body
	Body schemas.ChatRoom
}

// swagger:route PUT /api/v1/rooms/{room_id}/join rooms joinRoom
// Adds a participant to a room.
// responses:
//   200: messageResponse

// swagger:route PUT /api/v1/rooms/{room_id}/leave rooms leaveRoom
// Removes a participant from a room.
// responses:
//   200: messageResponse

// swagger:parameters joinRoom leaveRoom
type membershipParams struct {
	// in:body
	Body models.MembershipRequest
}

// swagger:response messageResponse
type messageResponseWrapper struct {
	// in:body
	Body models.MessageResponse
}

// swagger:route GET /api/v1/rooms/{room_id}/messages messages messagesByRoom
// Lists the messages posted to a room.
// responses:
//   200: messagesResponse

// Shows a list of messages
// swagger:response messagesResponse
type messagesResponseWrapper struct {
	// in:body
	Body []schemas.Message
}

// swagger:route GET /api/v1/stats stats stats
// Shows the document count of every forum collection.
// responses:
//   200: statsResponse
//   500: errorResponse

// swagger:response statsResponse
type statsResponseWrapper struct {
	// in:body
	Body models.ForumStats
}

// swagger:route GET /api/v1/metrics metrics metrics
// Shows request counts and latencies per route.
// responses:
//   200: metricsResponse

// swagger:response metricsResponse
type metricsResponseWrapper struct {
	// in:body
	Body api.MetricsSummary
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
