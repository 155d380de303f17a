package store

import (
	"eduplatform/backend/models"

	"github.com/google/uuid"
)

// LiveSessions returns all broadcasts, any status.
func (s *Store) LiveSessions() []models.LiveSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LiveSession, len(s.liveSessions))
	copy(out, s.liveSessions)
	return out
}

// AddLiveSession schedules a broadcast.
func (s *Store) AddLiveSession(session models.LiveSession) models.LiveSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = "live-" + uuid.NewString()
	if session.Status == "" {
		session.Status = models.LiveScheduled
	}
	if session.Attendees == nil {
		session.Attendees = []string{}
	}
	if session.ChatMessages == nil {
		session.ChatMessages = []models.LiveChatMessage{}
	}
	s.liveSessions = append(s.liveSessions, session)
	s.persist()
	return session
}

// UpdateLiveStatus moves a session forward through scheduled -> live -> ended.
// Backward transitions are rejected.
func (s *Store) UpdateLiveStatus(id string, next models.LiveStatus) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.liveSessions {
		if s.liveSessions[i].ID != id {
			continue
		}
		if !s.liveSessions[i].Status.CanTransitionTo(next) {
			return fail("Live session status can only move forward.")
		}
		s.liveSessions[i].Status = next
		switch next {
		case models.LiveActive:
			s.liveSessions[i].StartedAt = s.timestamp()
		case models.LiveEnded:
			s.liveSessions[i].EndedAt = s.timestamp()
		}
		s.persist()
		return ok()
	}
	return fail("Live session not found.")
}

// JoinLiveSession adds the current user to the attendee list and bumps the
// viewer count. Joining twice is a no-op.
func (s *Store) JoinLiveSession(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return fail("Sign in to join a live session.")
	}
	for i := range s.liveSessions {
		if s.liveSessions[i].ID != id {
			continue
		}
		for _, a := range s.liveSessions[i].Attendees {
			if a == s.currentUser.ID {
				return ok()
			}
		}
		s.liveSessions[i].Attendees = append(s.liveSessions[i].Attendees, s.currentUser.ID)
		s.liveSessions[i].Viewers++
		s.persist()
		return ok()
	}
	return fail("Live session not found.")
}

// AddLiveChatMessage appends to the session's inline chat.
func (s *Store) AddLiveChatMessage(id, message string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return fail("Sign in to chat.")
	}
	for i := range s.liveSessions {
		if s.liveSessions[i].ID != id {
			continue
		}
		s.liveSessions[i].ChatMessages = append(s.liveSessions[i].ChatMessages, models.LiveChatMessage{
			User:    s.currentUser.Name,
			Message: message,
			Time:    "Just now",
		})
		s.persist()
		return ok()
	}
	return fail("Live session not found.")
}
