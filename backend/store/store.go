package store

import (
	"sync"
	"time"

	"eduplatform/backend/models"
	"eduplatform/backend/utils"
)

// GuestKey partitions persisted state for unauthenticated sessions.
const GuestKey = "guest"

// Catalog resolves course structure for progress and unlock computation. The
// store never caches unlock state, so the catalog is consulted on every read.
type Catalog interface {
	Course(id int) (models.Course, bool)
	Courses() []models.Course
}

// Mirror persists the platform snapshot and the per-user favorite sets.
// Implementations live in backend/mirror.
type Mirror interface {
	SaveSnapshot(key string, snap models.Snapshot) error
	LoadSnapshot(key string) (*models.Snapshot, error)
	SaveFavorites(key string, courseIDs []int) error
	LoadFavorites(key string) ([]int, error)
}

// Result is the typed outcome of store mutations that can fail validation.
// Precondition no-ops (double enrollment, re-completing a lesson) are not
// failures and return ok.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result             { return Result{Success: true} }
func fail(msg string) Result { return Result{Success: false, Error: msg} }

// Store is the single in-memory source of truth for per-session platform
// state. All access goes through its methods under one lock; handlers receive
// an explicit *Store instead of reaching for ambient globals.
type Store struct {
	mu sync.RWMutex

	currentUser   *models.User
	allUsers      []models.User
	enrollments   []models.Enrollment
	notifications []models.Notification
	conversations []models.Conversation
	messages      []models.Message
	favorites     map[string][]int // user id (or guest) -> course ids
	liveSessions  []models.LiveSession
	discountCodes []models.DiscountCode
	achievements  []models.Achievement

	// passwordHashes holds bcrypt hashes for locally created accounts, keyed
	// by lowercased email. Never serialized into snapshots.
	passwordHashes map[string]string

	catalog Catalog
	mirror  Mirror
	log     *utils.Logger

	// localAuthEnabled is false when the external identity adapter is
	// configured; Login/Signup then refuse with a guidance error.
	localAuthEnabled bool

	// hydrated gates mirror writes so transient defaults never clobber a
	// persisted snapshot during the hydration window.
	hydrated bool

	now func() time.Time
}

type Options struct {
	Catalog Catalog
	Mirror  Mirror
	Logger  *utils.Logger

	// LocalAuth enables the demo login/signup path.
	LocalAuth bool

	// Seed loads the demo dataset instead of starting empty.
	Seed bool

	// Now overrides the clock, for tests.
	Now func() time.Time
}

func New(opts Options) *Store {
	s := &Store{
		favorites:        map[string][]int{},
		passwordHashes:   map[string]string{},
		catalog:          opts.Catalog,
		mirror:           opts.Mirror,
		log:              opts.Logger,
		localAuthEnabled: opts.LocalAuth,
		now:              opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = utils.NopLogger()
	}
	// Badge and discount definitions are static platform content, not demo
	// data; they ship in every mode. The demo seed overlays unlock stamps and
	// usage counters on top.
	s.achievements = defaultAchievements()
	s.discountCodes = defaultDiscountCodes()
	if opts.Seed {
		s.seed()
	}
	return s
}

// persist writes the full snapshot for the active session key. Mirror
// failures are logged and swallowed: losing a snapshot write must never fail
// the mutation that triggered it. Callers hold the write lock.
func (s *Store) persist() {
	if s.mirror == nil || !s.hydrated {
		return
	}
	if err := s.mirror.SaveSnapshot(s.sessionKey(), s.snapshotLocked()); err != nil {
		s.log.Warn("snapshot write failed", "key", s.sessionKey(), "error", err)
	}
}

func (s *Store) persistFavorites(key string) {
	if s.mirror == nil || !s.hydrated {
		return
	}
	if err := s.mirror.SaveFavorites(key, s.favorites[key]); err != nil {
		s.log.Warn("favorites write failed", "key", key, "error", err)
	}
}

func (s *Store) sessionKey() string {
	if s.currentUser != nil {
		return s.currentUser.ID
	}
	return GuestKey
}

func (s *Store) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		CurrentUser:   s.currentUser,
		AllUsers:      s.allUsers,
		Enrollments:   s.enrollments,
		Notifications: s.notifications,
		Conversations: s.conversations,
		Messages:      s.messages,
		LiveSessions:  s.liveSessions,
		DiscountCodes: s.discountCodes,
		Achievements:  s.achievements,
	}
}

// Snapshot returns a copy of the current persisted-state shape.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// AllUsers returns the known-users list, for admin and teacher surfaces.
func (s *Store) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.allUsers))
	copy(out, s.allUsers)
	return out
}

// Achievements returns every badge definition with its unlock state.
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}
