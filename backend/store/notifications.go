package store

import (
	"fmt"
	"math/rand"

	"eduplatform/backend/models"
)

// AddNotification assigns a time-based id and prepends, most recent first.
func (s *Store) AddNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addNotificationLocked(n)
	s.persist()
}

func (s *Store) addNotificationLocked(n models.Notification) {
	n.ID = fmt.Sprintf("n-%d-%04x", s.now().UnixMilli(), rand.Intn(0x10000))
	s.notifications = append([]models.Notification{n}, s.notifications...)
}

// Notifications returns the current user's notifications, most recent first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	var out []models.Notification
	for _, n := range s.notifications {
		if n.UserID == s.currentUser.ID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadNotificationCount counts the current user's unread notifications.
func (s *Store) UnreadNotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return 0
	}
	count := 0
	for _, n := range s.notifications {
		if n.UserID == s.currentUser.ID && !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead flips one notification to read. Monotonic: there is no
// mark-unread path.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			break
		}
	}
	s.persist()
}

// MarkAllNotificationsRead flips every notification of the current user.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return
	}
	for i := range s.notifications {
		if s.notifications[i].UserID == s.currentUser.ID {
			s.notifications[i].Read = true
		}
	}
	s.persist()
}

// DeleteNotification removes by id. No undo.
func (s *Store) DeleteNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			break
		}
	}
	s.persist()
}
