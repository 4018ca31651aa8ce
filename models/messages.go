package models

// Message is a single chat message inside a session
type Message struct {
	MessageID string `json:"messageId"`
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
	FromMe    bool   `json:"fromMe"`
	Timestamp int64  `json:"timestamp"` // milliseconds, non-decreasing within a session
}

// ChatSession is a conversation thread shown in the chat list
type ChatSession struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profileId"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	LastMessage string `json:"lastMessage"`
	Unread      int    `json:"unread"`
}
