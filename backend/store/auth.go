package store

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eduplatform/backend/models"
)

// Login resolves a user by case-insensitive email. Locally created accounts
// get their bcrypt hash checked; seeded demo accounts carry no hash and accept
// any password. When the identity adapter is configured this path is disabled
// entirely.
func (s *Store) Login(email, password string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.localAuthEnabled {
		return fail("Local sign-in is disabled. Use the identity provider.")
	}

	for i := range s.allUsers {
		if strings.EqualFold(s.allUsers[i].Email, email) {
			if hash, exists := s.passwordHashes[strings.ToLower(email)]; exists {
				if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
					return fail("Incorrect password.")
				}
			}
			u := s.allUsers[i]
			s.currentUser = &u
			s.persist()
			return ok()
		}
	}
	return fail("User not found. Please check your email.")
}

// Signup creates a user with default settings and signs it in. Duplicate
// emails are rejected case-insensitively.
func (s *Store) Signup(name, email, password string, role models.Role) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.localAuthEnabled {
		return fail("Local sign-up is disabled. Use the identity provider.")
	}

	for i := range s.allUsers {
		if strings.EqualFold(s.allUsers[i].Email, email) {
			return fail("Email already registered.")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fail("Could not process password.")
	}
	s.passwordHashes[strings.ToLower(email)] = string(hash)

	user := models.User{
		ID:       fmt.Sprintf("%s-%d", role, s.now().UnixMilli()),
		Name:     name,
		Email:    email,
		Role:     role,
		JoinedAt: s.now().UTC().Format("2006-01-02"),
		Settings: models.DefaultSettings(),
	}
	s.allUsers = append(s.allUsers, user)
	s.currentUser = &user
	s.persist()
	return ok()
}

// Logout drops the current user from memory. The persisted snapshot for the
// session is rewritten so a rehydration does not resurrect the identity.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.sessionKey()
	s.currentUser = nil
	if s.mirror != nil && s.hydrated {
		if err := s.mirror.SaveSnapshot(key, s.snapshotLocked()); err != nil {
			s.log.Warn("snapshot write failed", "key", key, "error", err)
		}
	}
}

// UpdateUser shallow-merges the update into the current user and the known
// users list. No-op when nobody is signed in.
func (s *Store) UpdateUser(update models.UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return
	}
	u := *s.currentUser
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.IsPremium != nil {
		u.IsPremium = *update.IsPremium
	}
	if update.Settings != nil {
		u.Settings = *update.Settings
	}
	s.currentUser = &u
	s.upsertUserLocked(u)
	s.persist()
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

func (s *Store) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// CanAccess reports whether the current user's role is among the given ones.
func (s *Store) CanAccess(roles ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return false
	}
	for _, r := range roles {
		if s.currentUser.Role == r {
			return true
		}
	}
	return false
}

// UserByID looks a user up in the known-users list.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.allUsers {
		if s.allUsers[i].ID == id {
			return s.allUsers[i], true
		}
	}
	return models.User{}, false
}

func (s *Store) upsertUserLocked(u models.User) {
	for i := range s.allUsers {
		if s.allUsers[i].ID == u.ID {
			s.allUsers[i] = u
			return
		}
	}
	s.allUsers = append(s.allUsers, u)
}
