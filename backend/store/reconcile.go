package store

import (
	"context"
	"errors"

	"eduplatform/backend/models"
)

// ErrUnauthorized is the identity adapter's signal for an absent or invalid
// session.
var ErrUnauthorized = errors.New("unauthorized")

// IdentityProvider is the external session adapter. FetchIdentity returns
// ErrUnauthorized when no session exists.
type IdentityProvider interface {
	FetchIdentity(ctx context.Context) (models.Identity, error)
}

// Reconcile merges the authoritative identity into the cached user. The
// server session wins for identity fields; locally-known fields (bio, avatar,
// settings, streak, hours) are preserved. Repeating the merge with the same
// payload yields the same user record.
//
// A failed fetch degrades to signed-out, except in demo mode where the cached
// identity is kept.
func (s *Store) Reconcile(ctx context.Context, provider IdentityProvider, demoMode bool) error {
	if provider == nil {
		return nil
	}

	identity, err := provider.FetchIdentity(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			if !demoMode {
				s.mu.Lock()
				s.currentUser = nil
				s.persist()
				s.mu.Unlock()
			}
			return nil
		}
		s.log.Warn("identity fetch failed", "error", err)
		if !demoMode {
			s.mu.Lock()
			s.currentUser = nil
			s.persist()
			s.mu.Unlock()
		}
		return err
	}

	s.ApplyIdentity(identity)
	return nil
}

// ApplyIdentity upserts the server-reported identity into the current user
// and the known-users list. Idempotent.
func (s *Store) ApplyIdentity(identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Startup hydrates the guest key before the adapter answers. Once the
	// subject is known, their own snapshot is the authoritative cache, so a
	// restart never drops enrollments persisted under the user's key.
	if s.currentUser == nil || s.currentUser.ID != identity.UserID {
		s.hydrateLocked(identity.UserID)
	}

	var base models.User
	if s.currentUser != nil && s.currentUser.ID == identity.UserID {
		base = *s.currentUser
	} else if existing, found := s.userByIDLocked(identity.UserID); found {
		base = existing
	} else {
		base = models.User{
			ID:       identity.UserID,
			JoinedAt: s.now().UTC().Format("2006-01-02"),
			Settings: models.DefaultSettings(),
		}
	}

	base.ID = identity.UserID
	base.Name = identity.FullName
	base.Role = models.NormalizeRole(identity.Role)
	if identity.Email != "" {
		base.Email = identity.Email
	}

	s.currentUser = &base
	s.upsertUserLocked(base)
	s.persist()
}

func (s *Store) userByIDLocked(id string) (models.User, bool) {
	for i := range s.allUsers {
		if s.allUsers[i].ID == id {
			return s.allUsers[i], true
		}
	}
	return models.User{}, false
}
