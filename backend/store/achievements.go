package store

import "eduplatform/backend/models"

// UnlockAchievement stamps the badge's unlock time and notifies the current
// user. Unlocking an already-unlocked badge is a no-op, so the notification
// fires exactly once per badge.
func (s *Store) UnlockAchievement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlockAchievementLocked(id)
	s.persist()
}

func (s *Store) unlockAchievementLocked(id string) {
	for i := range s.achievements {
		if s.achievements[i].ID != id {
			continue
		}
		if s.achievements[i].UnlockedAt != "" {
			return
		}
		s.achievements[i].UnlockedAt = s.timestamp()
		if s.currentUser != nil {
			s.addNotificationLocked(models.Notification{
				UserID:  s.currentUser.ID,
				Type:    models.NotifAchievement,
				Title:   "Achievement Unlocked!",
				Message: "You earned a new badge!",
				Time:    "Just now",
			})
		}
		return
	}
}
