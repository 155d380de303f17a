package store_test

import (
	"testing"

	"eduplatform/backend/mirror"
	"eduplatform/backend/models"
	"eduplatform/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDemoStore builds a seeded store over an in-memory mirror, hydrated and
// ready for mutations.
func newDemoStore(t *testing.T, m store.Mirror) *store.Store {
	t.Helper()
	s := store.New(store.Options{
		Catalog:   store.DefaultCatalog(),
		Mirror:    m,
		LocalAuth: true,
		Seed:      true,
	})
	s.Hydrate(store.GuestKey)
	return s
}

func signIn(t *testing.T, s *store.Store) {
	t.Helper()
	result := s.Login("ron.richards@gmail.com", "anything")
	require.True(t, result.Success, result.Error)
}

// fixtureCatalog is a small course split across three modules so the
// flattened lesson order crosses module boundaries.
func fixtureCatalog() *store.StaticCatalog {
	return store.NewStaticCatalog([]models.Course{
		{
			ID: 42, Title: "Fixture Course", TotalLessons: 7,
			Modules: []models.CourseModule{
				{Title: "One", Lessons: []models.Lesson{
					{ID: 1, Title: "L1", Type: "video"},
					{ID: 2, Title: "L2", Type: "video"},
					{ID: 3, Title: "L3", Type: "video"},
				}},
				{Title: "Two", Lessons: []models.Lesson{
					{ID: 4, Title: "L4", Type: "video"},
					{ID: 5, Title: "L5", Type: "quiz"},
				}},
				{Title: "Three", Lessons: []models.Lesson{
					{ID: 6, Title: "L6", Type: "video"},
					{ID: 7, Title: "L7", Type: "exercise"},
				}},
			},
		},
	})
}

func newFixtureStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.Options{
		Catalog:   fixtureCatalog(),
		LocalAuth: true,
	})
	s.Hydrate(store.GuestKey)
	require.True(t, s.Signup("Test User", "test@example.com", "password1", models.RoleStudent).Success)
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := mirror.NewMemoryMirror()
	s := newDemoStore(t, m)
	signIn(t, s)
	s.EnrollInCourse(3)
	s.CompleteLesson(3, 1)

	before := s.Snapshot()

	// A fresh unseeded store hydrated from the same mirror must come back
	// identical.
	restored := store.New(store.Options{
		Catalog:   store.DefaultCatalog(),
		Mirror:    m,
		LocalAuth: true,
	})
	restored.Hydrate("student-1")

	assert.Equal(t, before, restored.Snapshot())
}

func TestHydrationGatesWrites(t *testing.T) {
	m := mirror.NewMemoryMirror()
	s := store.New(store.Options{
		Catalog:   store.DefaultCatalog(),
		Mirror:    m,
		LocalAuth: true,
		Seed:      true,
	})

	// Mutations before Hydrate must not reach the mirror.
	require.True(t, s.Login("ron.richards@gmail.com", "x").Success)
	snap, err := m.LoadSnapshot("student-1")
	require.NoError(t, err)
	assert.Nil(t, snap)

	s.Hydrate("student-1")
	s.EnrollInCourse(3)
	snap, err = m.LoadSnapshot("student-1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.NotNil(t, snap.CurrentUser)
}

func TestHydrateCorruptSnapshotFallsBack(t *testing.T) {
	m := mirror.NewMemoryMirror()
	first := newDemoStore(t, m)
	signIn(t, first)
	first.EnrollInCourse(3)
	m.Corrupt("student-1")

	s := store.New(store.Options{
		Catalog:   store.DefaultCatalog(),
		Mirror:    m,
		LocalAuth: true,
		Seed:      true,
	})
	s.Hydrate("student-1")

	// Defaults survive; nobody is signed in after a corrupt blob.
	assert.Nil(t, s.CurrentUser())
	assert.Len(t, s.AllUsers(), 3)
}

func TestHydrateOverridesDefaults(t *testing.T) {
	m := mirror.NewMemoryMirror()
	err := m.SaveSnapshot(store.GuestKey, models.Snapshot{
		CurrentUser: &models.User{ID: "u-1", Name: "Cached User", Role: "instructor"},
		AllUsers:    []models.User{{ID: "u-1", Name: "Cached User"}},
	})
	require.NoError(t, err)

	s := store.New(store.Options{
		Catalog:   store.DefaultCatalog(),
		Mirror:    m,
		LocalAuth: true,
		Seed:      true,
	})
	s.Hydrate(store.GuestKey)

	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
	// Cached roles go through normalization on the way in.
	assert.Equal(t, models.RoleTeacher, user.Role)
	assert.Len(t, s.AllUsers(), 1)
}
