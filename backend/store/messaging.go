package store

import (
	"strings"

	"eduplatform/backend/models"

	"github.com/google/uuid"
)

// SendMessage appends a message and repoints the conversation's lastMessage.
// Blank content and signed-out senders are rejected. Sending never touches
// the conversation's unread counter; only MarkConversationRead clears it.
func (s *Store) SendMessage(conversationID, content string, attachments []models.Attachment) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return fail("Sign in to send messages.")
	}
	if strings.TrimSpace(content) == "" {
		return fail("Message content cannot be empty.")
	}

	ci := -1
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			ci = i
			break
		}
	}
	if ci < 0 {
		return fail("Conversation not found.")
	}

	msg := models.Message{
		ID:             "msg-" + uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       s.currentUser.ID,
		Content:        content,
		Timestamp:      s.timestamp(),
		Attachments:    attachments,
	}
	s.messages = append(s.messages, msg)
	s.conversations[ci].LastMessage = &msg
	s.persist()
	return ok()
}

// Conversations returns every conversation the current user participates in.
func (s *Store) Conversations() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	var out []models.Conversation
	for _, c := range s.conversations {
		for _, p := range c.Participants {
			if p == s.currentUser.ID {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// GetConversationMessages returns the ordered message list of a conversation.
func (s *Store) GetConversationMessages(conversationID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out
}

// MarkConversationRead resets the conversation's unread counter and marks its
// messages read.
func (s *Store) MarkConversationRead(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			s.conversations[i].UnreadCount = 0
			break
		}
	}
	for i := range s.messages {
		if s.messages[i].ConversationID == conversationID {
			s.messages[i].Read = true
		}
	}
	s.persist()
}

// TotalUnreadMessages sums unread counters across the user's conversations.
func (s *Store) TotalUnreadMessages() int {
	total := 0
	for _, c := range s.Conversations() {
		total += c.UnreadCount
	}
	return total
}

// StartConversation opens a direct or group conversation.
func (s *Store) StartConversation(participants []string, convType, name string) (models.Conversation, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return models.Conversation{}, fail("Sign in to start a conversation.")
	}
	if convType != "direct" && convType != "group" {
		return models.Conversation{}, fail("Conversation type must be direct or group.")
	}
	conv := models.Conversation{
		ID:           "conv-" + uuid.NewString(),
		Participants: participants,
		Type:         convType,
		Name:         name,
		CreatedAt:    s.timestamp(),
	}
	s.conversations = append(s.conversations, conv)
	s.persist()
	return conv, ok()
}
