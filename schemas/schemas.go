// Package schemas shapes forum documents for transport. Identifiers are
// rendered as hex strings and timestamps as RFC 3339 text. Every field is
// always present in the output; a value missing from the document (zero id,
// zero time, empty string, nil list) is emitted as null.
package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/models"
)

// TimeFormat is the textual timestamp format used by every schema
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Student is the outbound shape of a student
type Student struct {
	ID        *string `json:"_id"`
	Type      *string `json:"type"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	CreatedAt *string `json:"created_at"`
}

// Mentor is the outbound shape of a mentor
type Mentor struct {
	ID        *string `json:"_id"`
	Type      *string `json:"type"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Expertise *string `json:"expertise"`
	CreatedAt *string `json:"created_at"`
}

// Connection is the outbound shape of a student-mentor connection
type Connection struct {
	ID           *string `json:"_id"`
	StudentEmail *string `json:"student_email"`
	MentorEmail  *string `json:"mentor_email"`
	ConnectedAt  *string `json:"connected_at"`
}

// ChatRoom is the outbound shape of a chat room
type ChatRoom struct {
	ID           *string  `json:"_id"`
	RoomName     *string  `json:"room_name"`
	CreatedAt    *string  `json:"created_at"`
	Participants []string `json:"participants"`
}

// Message is the outbound shape of a chat message
type Message struct {
	ID          *string `json:"_id"`
	RoomID      *string `json:"room_id"`
	SenderEmail *string `json:"sender_email"`
	Message     *string `json:"message"`
	Timestamp   *string `json:"timestamp"`
}

func dumpID(id primitive.ObjectID) *string {
	if id.IsZero() {
		return nil
	}
	s := id.Hex()
	return &s
}

func dumpString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dumpTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(TimeFormat)
	return &s
}

// DumpStudent shapes a single student
func DumpStudent(s models.Student) Student {
	return Student{
		ID:        dumpID(s.ID),
		Type:      dumpString(s.Type),
		Name:      dumpString(s.Name),
		Email:     dumpString(s.Email),
		CreatedAt: dumpTime(s.CreatedAt),
	}
}

// DumpMentor shapes a single mentor
func DumpMentor(m models.Mentor) Mentor {
	return Mentor{
		ID:        dumpID(m.ID),
		Type:      dumpString(m.Type),
		Name:      dumpString(m.Name),
		Email:     dumpString(m.Email),
		Expertise: dumpString(m.Expertise),
		CreatedAt: dumpTime(m.CreatedAt),
	}
}

// DumpConnection shapes a single connection
func DumpConnection(c models.Connection) Connection {
	return Connection{
		ID:           dumpID(c.ID),
		StudentEmail: dumpString(c.StudentEmail),
		MentorEmail:  dumpString(c.MentorEmail),
		ConnectedAt:  dumpTime(c.ConnectedAt),
	}
}

// DumpChatRoom shapes a single chat room
func DumpChatRoom(r models.ChatRoom) ChatRoom {
	return ChatRoom{
		ID:           dumpID(r.ID),
		RoomName:     dumpString(r.RoomName),
		CreatedAt:    dumpTime(r.CreatedAt),
		Participants: r.Participants,
	}
}

// DumpMessage shapes a single message
func DumpMessage(m models.Message) Message {
	return Message{
		ID:          dumpID(m.ID),
		RoomID:      dumpString(m.RoomID),
		SenderEmail: dumpString(m.SenderEmail),
		Message:     dumpString(m.Message),
		Timestamp:   dumpTime(m.Timestamp),
	}
}

// DumpStudents shapes a list of students, never returning nil
func DumpStudents(in []models.Student) []Student {
	out := make([]Student, 0, len(in))
	for _, s := range in {
		out = append(out, DumpStudent(s))
	}
	return out
}

// DumpMentors shapes a list of mentors, never returning nil
func DumpMentors(in []models.Mentor) []Mentor {
	out := make([]Mentor, 0, len(in))
	for _, m := range in {
		out = append(out, DumpMentor(m))
	}
	return out
}

// DumpConnections shapes a list of connections, never returning nil
func DumpConnections(in []models.Connection) []Connection {
	out := make([]Connection, 0, len(in))
	for _, c := range in {
		out = append(out, DumpConnection(c))
	}
	return out
}

// DumpChatRooms shapes a list of chat rooms, never returning nil
func DumpChatRooms(in []models.ChatRoom) []ChatRoom {
	out := make([]ChatRoom, 0, len(in))
	for _, r := range in {
		out = append(out, DumpChatRoom(r))
	}
	return out
}

// DumpMessages shapes a list of messages, never returning nil
func DumpMessages(in []models.Message) []Message {
	out := make([]Message, 0, len(in))
	for _, m := range in {
		out = append(out, DumpMessage(m))
	}
	return out
}
