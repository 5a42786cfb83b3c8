package models

// ForumStats holds the document count of each forum collection
type ForumStats struct {
	Students    int64 `json:"students"`
	Mentors     int64 `json:"mentors"`
	Connections int64 `json:"connections"`
	ChatRooms   int64 `json:"chat_rooms"`
	Messages    int64 `json:"messages"`
}
