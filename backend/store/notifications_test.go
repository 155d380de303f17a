package store_test

import (
	"testing"

	"eduplatform/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNotificationPrepends(t *testing.T) {
	s := newSeededSignedInStore(t)

	s.AddNotification(models.Notification{
		UserID: "student-1", Type: models.NotifUpdate,
		Title: "Newest", Message: "m", Time: "Just now",
	})

	list := s.Notifications()
	require.NotEmpty(t, list)
	assert.Equal(t, "Newest", list[0].Title)
	assert.NotEmpty(t, list[0].ID)
}

func TestNotificationsFilteredByUser(t *testing.T) {
	s := newSeededSignedInStore(t)

	for _, n := range s.Notifications() {
		assert.Equal(t, "student-1", n.UserID)
	}
}

func TestUnreadNotificationCount(t *testing.T) {
	s := newSeededSignedInStore(t)

	// Seed ships n1-n3 unread, n4-n7 read.
	assert.Equal(t, 3, s.UnreadNotificationCount())

	s.MarkNotificationRead("n1")
	assert.Equal(t, 2, s.UnreadNotificationCount())

	// Marking a read notification again changes nothing.
	s.MarkNotificationRead("n1")
	assert.Equal(t, 2, s.UnreadNotificationCount())
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s := newSeededSignedInStore(t)

	s.MarkAllNotificationsRead()

	assert.Equal(t, 0, s.UnreadNotificationCount())
}

func TestDeleteNotification(t *testing.T) {
	s := newSeededSignedInStore(t)
	before := len(s.Notifications())

	s.DeleteNotification("n2")

	assert.Len(t, s.Notifications(), before-1)
	for _, n := range s.Notifications() {
		assert.NotEqual(t, "n2", n.ID)
	}
}

func TestNotificationsWhileSignedOut(t *testing.T) {
	s := newSeededSignedInStore(t)
	s.Logout()

	assert.Nil(t, s.Notifications())
	assert.Equal(t, 0, s.UnreadNotificationCount())
}
