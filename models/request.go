package models

// ConnectionRequest is the body accepted when connecting a student to a mentor
type ConnectionRequest struct {
	StudentEmail string `json:"student_email"`
	MentorEmail  string `json:"mentor_email"`
}

// RoomRequest is the body accepted when creating a chat room
type RoomRequest struct {
	RoomName     string   `json:"room_name"`
	Participants []string `json:"participants"`
}

// ParticipantsRequest is the body accepted when looking a room up by its participants
type ParticipantsRequest struct {
	Participants []string `json:"participants"`
}

// MembershipRequest is the body accepted when joining or leaving a room
type MembershipRequest struct {
	Email string `json:"email"`
}

// MessageRequest is the body accepted when posting a message
type MessageRequest struct {
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message"`
}
