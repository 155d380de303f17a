package store

import "eduplatform/backend/models"

// Hydrate restores the store from the mirror's snapshot for the given session
// key, then enables mirror writes. Any field that is a present array
// overrides the in-memory default; a missing or corrupt blob silently leaves
// defaults in place. Must run before the first mutation.
func (s *Store) Hydrate(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.hydrated = true }()
	s.hydrateLocked(sessionKey)
}

// hydrateLocked loads the snapshot for one session key. Also reused when
// reconciliation resolves an identity after a guest-key startup, so the user's
// own cached state wins over the boot defaults.
func (s *Store) hydrateLocked(sessionKey string) {
	if s.mirror == nil {
		return
	}

	snap, err := s.mirror.LoadSnapshot(sessionKey)
	if err != nil {
		s.log.Warn("snapshot load failed, using defaults", "key", sessionKey, "error", err)
		return
	}
	if snap == nil {
		return
	}
	if snap.CurrentUser != nil {
		u := *snap.CurrentUser
		u.Role = models.NormalizeRole(string(u.Role))
		s.currentUser = &u
	}
	if snap.AllUsers != nil {
		s.allUsers = snap.AllUsers
	}
	if snap.Enrollments != nil {
		s.enrollments = snap.Enrollments
	}
	if snap.Notifications != nil {
		s.notifications = snap.Notifications
	}
	if snap.Conversations != nil {
		s.conversations = snap.Conversations
	}
	if snap.Messages != nil {
		s.messages = snap.Messages
	}
	if snap.LiveSessions != nil {
		s.liveSessions = snap.LiveSessions
	}
	if snap.DiscountCodes != nil {
		s.discountCodes = snap.DiscountCodes
	}
	if snap.Achievements != nil {
		s.achievements = snap.Achievements
	}

	s.hydrateFavoritesLocked(sessionKey)
	if s.currentUser != nil && s.currentUser.ID != sessionKey {
		s.hydrateFavoritesLocked(s.currentUser.ID)
	}
}

func (s *Store) hydrateFavoritesLocked(key string) {
	ids, err := s.mirror.LoadFavorites(key)
	if err != nil {
		s.log.Warn("favorites load failed, using defaults", "key", key, "error", err)
		return
	}
	if ids != nil {
		s.favorites[key] = ids
	}
}
