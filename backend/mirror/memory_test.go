package mirror_test

import (
	"testing"

	"eduplatform/backend/mirror"
	"eduplatform/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMirrorSnapshotRoundTrip(t *testing.T) {
	m := mirror.NewMemoryMirror()

	snap := models.Snapshot{
		CurrentUser: &models.User{ID: "u-1", Name: "Test"},
		Enrollments: []models.Enrollment{{CourseID: 1, UserID: "u-1", Progress: 50, CompletedLessons: []int{1, 2}}},
	}
	require.NoError(t, m.SaveSnapshot("u-1", snap))

	loaded, err := m.LoadSnapshot("u-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "u-1", loaded.CurrentUser.ID)
	assert.Equal(t, []int{1, 2}, loaded.Enrollments[0].CompletedLessons)
}

func TestMemoryMirrorMissingKey(t *testing.T) {
	m := mirror.NewMemoryMirror()

	snap, err := m.LoadSnapshot("nope")
	require.NoError(t, err)
	assert.Nil(t, snap)

	ids, err := m.LoadFavorites("nope")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestMemoryMirrorCorruptBlobLoadsAsMissing(t *testing.T) {
	m := mirror.NewMemoryMirror()
	require.NoError(t, m.SaveSnapshot("u-1", models.Snapshot{}))

	m.Corrupt("u-1")

	snap, err := m.LoadSnapshot("u-1")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestMemoryMirrorFavoritesRoundTrip(t *testing.T) {
	m := mirror.NewMemoryMirror()
	require.NoError(t, m.SaveFavorites("u-1", []int{3, 5}))

	ids, err := m.LoadFavorites("u-1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ids)
}
