package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"pulse_server/models"
)

// ErrSessionNotFound is returned when a chat session id is unknown
var ErrSessionNotFound = errors.New("chat session not found")

// ChatService keeps the in-memory conversation threads. Message lists are
// append-only; within a session timestamps never decrease.
type ChatService struct {
	mu       sync.Mutex
	order    []string
	sessions map[string]*models.ChatSession
	messages map[string][]models.Message

	// Now is the timestamp source, injectable for tests
	Now func() time.Time
}

// NewChatService seeds the store with the given sessions and message
// histories. Inputs are copied.
func NewChatService(sessions []models.ChatSession, messages map[string][]models.Message) *ChatService {
	s := &ChatService{
		sessions: make(map[string]*models.ChatSession, len(sessions)),
		messages: make(map[string][]models.Message, len(messages)),
		Now:      time.Now,
	}
	for i := range sessions {
		session := sessions[i]
		s.order = append(s.order, session.ID)
		s.sessions[session.ID] = &session
	}
	for id, msgs := range messages {
		s.messages[id] = append([]models.Message(nil), msgs...)
	}
	return s
}

// ListSessions returns all chat sessions in creation order
func (s *ChatService) ListSessions() []models.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatSession, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.sessions[id])
	}
	return out
}

// GetSession returns one session by id
func (s *ChatService) GetSession(sessionID string) (models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return models.ChatSession{}, ErrSessionNotFound
	}
	return *session, nil
}

// GetMessages returns the message sequence for a session in append order.
// An unknown id yields an empty sequence, not an error.
func (s *ChatService) GetMessages(sessionID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages[sessionID]...)
}

// AppendMessage adds a message to a session and returns it. Timestamps
// come from a monotonic source at append time; a clock that stands still
// or jumps back never breaks the ordering invariant.
func (s *ChatService) AppendMessage(sessionID, text string, fromMe bool) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.Message{}, ErrSessionNotFound
	}

	ts := s.Now().UnixMilli()
	if msgs := s.messages[sessionID]; len(msgs) > 0 && ts < msgs[len(msgs)-1].Timestamp {
		ts = msgs[len(msgs)-1].Timestamp
	}

	msg := models.Message{
		MessageID: uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		FromMe:    fromMe,
		Timestamp: ts,
	}
	s.messages[sessionID] = append(s.messages[sessionID], msg)

	session.LastMessage = text
	if !fromMe {
		session.Unread++
	}

	log.Printf("📩 Message %s appended to session %s", msg.MessageID, sessionID)
	return msg, nil
}

// MarkRead clears the unread counter for a session
func (s *ChatService) MarkRead(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.Unread = 0
	return nil
}
