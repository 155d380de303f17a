package store

// favoritesKeyLocked partitions favorites per user, with the guest sentinel
// for anonymous sessions.
func (s *Store) favoritesKeyLocked() string {
	if s.currentUser != nil {
		return s.currentUser.ID
	}
	return GuestKey
}

// ToggleFavorite adds or removes a course from the session's favorite set.
func (s *Store) ToggleFavorite(courseID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.favoritesKeyLocked()
	ids := s.favorites[key]
	for i, id := range ids {
		if id == courseID {
			s.favorites[key] = append(ids[:i], ids[i+1:]...)
			s.persistFavorites(key)
			return
		}
	}
	s.favorites[key] = append(ids, courseID)
	s.persistFavorites(key)
}

// IsFavorite reports membership in the session's favorite set.
func (s *Store) IsFavorite(courseID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.favorites[s.favoritesKeyLocked()] {
		if id == courseID {
			return true
		}
	}
	return false
}

// Favorites returns the session's favorite course ids.
func (s *Store) Favorites() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.favorites[s.favoritesKeyLocked()]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
